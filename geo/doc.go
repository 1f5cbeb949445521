// Package geo supplies the locatable collaborator for distance-matrix
// construction: a plain 2-D point, the usual planar metrics over it, and
// a small "x,y" coordinate parser.
//
// The core packages (matrix, edgefold, route) never depend on geo — they
// accept any element type plus a pairwise distance function. geo exists so
// callers have a ready-made one.
//
// ⚙️ Usage:
//
//	import "github.com/KiyoMenager/distance-matrix/geo"
//
//	p, err := geo.Parse("1,2")       // Point{X: 1, Y: 2}
//	d := geo.Euclidean(p, geo.Point{X: 4, Y: 6}) // 5
package geo
