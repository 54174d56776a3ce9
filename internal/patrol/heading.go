package patrol

import "fmt"

// Point is a zero-based grid coordinate. Y grows downwards.
type Point struct {
	X, Y int
}

func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

func (p Point) Scale(n int) Point {
	return Point{X: p.X * n, Y: p.Y * n}
}

func (p Point) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

// Heading is one of the four cardinal directions the guard can face.
type Heading int

const (
	North Heading = iota
	East
	South
	West
)

var headingVectors = [...]Point{
	North: {X: 0, Y: -1},
	East:  {X: 1, Y: 0},
	South: {X: 0, Y: 1},
	West:  {X: -1, Y: 0},
}

var headingGlyphs = [...]byte{
	North: '^',
	East:  '>',
	South: 'v',
	West:  '<',
}

var headingArrows = [...]rune{
	North: '▲',
	East:  '▶',
	South: '▼',
	West:  '◀',
}

var headingNames = [...]string{
	North: "North",
	East:  "East",
	South: "South",
	West:  "West",
}

// HeadingFromGlyph maps an input glyph to its heading.
func HeadingFromGlyph(c byte) (Heading, bool) {
	for h, g := range headingGlyphs {
		if g == c {
			return Heading(h), true
		}
	}
	return North, false
}

// TurnRight rotates the heading 90° clockwise.
func (h Heading) TurnRight() Heading {
	return (h + 1) % 4
}

// Vector is the unit step for the heading.
func (h Heading) Vector() Point {
	return headingVectors[h]
}

func (h Heading) Glyph() byte {
	return headingGlyphs[h]
}

func (h Heading) Arrow() rune {
	return headingArrows[h]
}

func (h Heading) String() string {
	if h < North || h > West {
		return fmt.Sprintf("Heading(%d)", int(h))
	}
	return headingNames[h]
}
