package patrol

import (
	"errors"
	"maps"
	"slices"
	"strings"
)

const obstacleGlyph = '#'

// ErrMissingAgent is returned by Parse when the grid holds no heading glyph.
var ErrMissingAgent = errors.New("patrol: could not locate guard")

// Area is the parsed patrol grid. It is never mutated once built and may be
// shared by any number of patrols.
type Area struct {
	Width, Height int
	Start         Point
	StartHeading  Heading

	obstacles map[Point]struct{}
	// rows[y] holds the sorted x of every obstacle in row y, cols[x] the
	// sorted y of every obstacle in column x.
	rows map[int][]int
	cols map[int][]int
}

// Parse reads a rectangular grid. The width comes from the first line. The
// first heading glyph in row-major order is the guard; any later one is floor.
func Parse(input string) (*Area, error) {
	a := &Area{
		obstacles: make(map[Point]struct{}),
		rows:      make(map[int][]int),
		cols:      make(map[int][]int),
	}

	found := false
	for y, line := range strings.Split(strings.TrimSpace(input), "\n") {
		line = strings.TrimRight(line, "\r")
		a.Height++
		if a.Width == 0 {
			a.Width = len(line)
		}

		// Cells past the first line's width are outside the grid.
		for x := 0; x < len(line) && x < a.Width; x++ {
			c := line[x]
			if c == obstacleGlyph {
				a.addObstacle(Point{X: x, Y: y})
				continue
			}
			if found {
				continue
			}
			if h, ok := HeadingFromGlyph(c); ok {
				a.Start = Point{X: x, Y: y}
				a.StartHeading = h
				found = true
			}
		}
	}

	if !found {
		return nil, ErrMissingAgent
	}
	return a, nil
}

// addObstacle appends in scan order, which keeps rows and cols sorted.
func (a *Area) addObstacle(p Point) {
	a.obstacles[p] = struct{}{}
	a.rows[p.Y] = append(a.rows[p.Y], p.X)
	a.cols[p.X] = append(a.cols[p.X], p.Y)
}

// WithObstacle returns a copy of the area with one more obstacle at p. The
// receiver is left untouched.
func (a *Area) WithObstacle(p Point) *Area {
	if a.IsObstacle(p) {
		return a
	}

	b := *a
	b.obstacles = maps.Clone(a.obstacles)
	b.obstacles[p] = struct{}{}
	b.rows = maps.Clone(a.rows)
	b.rows[p.Y] = insertSorted(a.rows[p.Y], p.X)
	b.cols = maps.Clone(a.cols)
	b.cols[p.X] = insertSorted(a.cols[p.X], p.Y)
	return &b
}

func insertSorted(line []int, v int) []int {
	i, _ := slices.BinarySearch(line, v)
	return slices.Insert(slices.Clone(line), i, v)
}

func (a *Area) InBounds(p Point) bool {
	return p.X >= 0 && p.X < a.Width && p.Y >= 0 && p.Y < a.Height
}

func (a *Area) IsObstacle(p Point) bool {
	_, ok := a.obstacles[p]
	return ok
}

// Obstacles lists every obstacle in row-major order.
func (a *Area) Obstacles() []Point {
	out := make([]Point, 0, len(a.obstacles))
	for p := range a.obstacles {
		out = append(out, p)
	}
	slices.SortFunc(out, func(p, q Point) int {
		if p.Y != q.Y {
			return p.Y - q.Y
		}
		return p.X - q.X
	})
	return out
}

// CastRay finds the nearest obstacle strictly ahead of from along heading h.
// It reports false when the ray leaves the grid without a hit.
func (a *Area) CastRay(from Point, h Heading) (Point, bool) {
	v := h.Vector()

	// The fixed axis selects the line, the moving axis is searched.
	line, pos := a.rows[from.Y], from.X
	if v.X == 0 {
		line, pos = a.cols[from.X], from.Y
	}

	i, exact := slices.BinarySearch(line, pos)
	var at int
	if v.X+v.Y > 0 {
		if exact {
			i++
		}
		if i >= len(line) {
			return Point{}, false
		}
		at = line[i]
	} else {
		if i == 0 {
			return Point{}, false
		}
		at = line[i-1]
	}

	if v.X == 0 {
		return Point{X: from.X, Y: at}, true
	}
	return Point{X: at, Y: from.Y}, true
}

// exitDistance is the number of steps from p along h to the first cell
// outside the grid.
func (a *Area) exitDistance(p Point, h Heading) int {
	switch h {
	case East:
		return a.Width - p.X
	case West:
		return p.X + 1
	case South:
		return a.Height - p.Y
	default:
		return p.Y + 1
	}
}
