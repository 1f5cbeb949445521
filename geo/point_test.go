// Package geo_test covers the planar metrics and the coordinate parser.
package geo_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/KiyoMenager/distance-matrix/geo"
)

// TestEuclidean checks the 3-4-5 triangle and the zero self-distance.
func TestEuclidean(t *testing.T) {
	a := geo.Point{X: 1, Y: 2}
	b := geo.Point{X: 4, Y: 6}

	require.Equal(t, 5.0, geo.Euclidean(a, b))
	require.Equal(t, 5.0, geo.Euclidean(b, a)) // symmetric by construction
	require.Equal(t, 0.0, geo.Euclidean(a, a))
}

// TestManhattan checks the taxicab metric on the same points.
func TestManhattan(t *testing.T) {
	a := geo.Point{X: 1, Y: 2}
	b := geo.Point{X: 4, Y: 6}

	require.Equal(t, 7.0, geo.Manhattan(a, b))
	require.Equal(t, 7.0, geo.Manhattan(b, a))
	require.Equal(t, 0.0, geo.Manhattan(b, b))
}

// TestParse covers accepted spellings and every malformed shape.
func TestParse(t *testing.T) {
	for _, tc := range []struct {
		name  string
		input string
		want  geo.Point
		ok    bool
	}{
		{"plain", "1,2", geo.Point{X: 1, Y: 2}, true},
		{"spaced", "  3.5 , -4 ", geo.Point{X: 3.5, Y: -4}, true},
		{"scientific", "1e2,0.5", geo.Point{X: 100, Y: 0.5}, true},
		{"missing component", "7", geo.Point{}, false},
		{"extra component", "1,2,3", geo.Point{}, false},
		{"non-numeric", "a,2", geo.Point{}, false},
		{"empty", "", geo.Point{}, false},
		{"nan", "NaN,0", geo.Point{}, false},
		{"inf", "0,+Inf", geo.Point{}, false},
	} {
		t.Run(tc.name, func(t *testing.T) {
			p, err := geo.Parse(tc.input)
			if !tc.ok {
				require.ErrorIs(t, err, geo.ErrBadCoordinate)

				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.want, p)
		})
	}
}
