package geo

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrBadCoordinate indicates that a coordinate string is not of the form
// "x,y" with two finite decimal numbers.
var ErrBadCoordinate = errors.New("geo: malformed coordinate")

// Point is a location in the Euclidean plane.
type Point struct {
	X, Y float64
}

// Euclidean returns the straight-line distance between a and b.
// Symmetric and non-negative by construction.
// Complexity: O(1).
func Euclidean(a, b Point) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y

	return math.Sqrt(dx*dx + dy*dy)
}

// Manhattan returns the taxicab distance between a and b.
// Complexity: O(1).
func Manhattan(a, b Point) float64 {
	return math.Abs(a.X-b.X) + math.Abs(a.Y-b.Y)
}

// Parse decodes a "x,y" coordinate pair into a Point.
// Whitespace around either component is tolerated; anything else — a
// missing component, extra components, or a non-numeric/non-finite value —
// returns ErrBadCoordinate.
func Parse(s string) (Point, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return Point{}, fmt.Errorf("%q: %w", s, ErrBadCoordinate)
	}

	x, err := parseCoord(parts[0])
	if err != nil {
		return Point{}, fmt.Errorf("%q: %w", s, ErrBadCoordinate)
	}
	y, err := parseCoord(parts[1])
	if err != nil {
		return Point{}, fmt.Errorf("%q: %w", s, ErrBadCoordinate)
	}

	return Point{X: x, Y: y}, nil
}

// parseCoord parses one trimmed component, rejecting NaN and ±Inf.
func parseCoord(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, ErrBadCoordinate
	}

	return v, nil
}
