// Package distancematrix is a small toolkit for pairwise-distance grids and
// route-length evaluation over a fixed set of locatable elements.
//
// 🚀 What is distance-matrix?
//
//	A library core with three independent layers:
//		• matrix/   — dense, flat, row-major container built once from a
//		              (row, col) → value generator; O(1) bounds-checked lookup
//		• edgefold/ — generic map/reduce over the edges of any ordered
//		              sequence, as an open path (Acyclic) or closed tour (Cyclic)
//		• route/    — the composition: N×N distance matrix over your elements
//		              plus Length(route, mode) folding lookups over the route
//
//	and one optional collaborator:
//		• geo/      — 2-D points, Euclidean/Manhattan metrics, "x,y" parsing
//
// ✨ Why choose distance-matrix?
//
//   - Minimal API, clear naming — build once, query forever
//   - Strict contracts — sentinel errors, no silent clamping, no hidden state
//   - Generic core — any element type, any cell type, any fold result
//   - Opt-in concurrency — parallel matrix fill on a bounded worker pool
//
// Quick ASCII example:
//
//	    (1,2)───(2,4)        route [1,2,0]
//	      │       │          Acyclic: 1→2→0
//	    (3,2)─────┘          Cyclic:  1→2→0→1
//
//	stops := []geo.Point{{X: 1, Y: 2}, {X: 2, Y: 4}, {X: 3, Y: 2}}
//	dm, _ := route.New(stops, geo.Euclidean)
//	total, _ := dm.Length([]int{1, 2, 0}, edgefold.Cyclic)
//
// Each subpackage carries its own doc.go with contracts, degenerate-case
// tables and complexity notes. Route solving (TSP and friends) is out of
// scope: this library evaluates the length of a route you already have.
package distancematrix
