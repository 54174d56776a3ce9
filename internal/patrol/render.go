package patrol

import (
	"fmt"
	"strings"
)

// Cell classifies what occupies a grid cell at the current point of a patrol.
type Cell int

const (
	CellFloor Cell = iota
	CellObstacle
	CellVisited
	CellGuard
)

// CellAt reports the contents of p. The guard takes precedence over the
// visited mark.
func (p *Patrol) CellAt(at Point) Cell {
	switch {
	case p.area.IsObstacle(at):
		return CellObstacle
	case p.guard.Position == at && p.area.InBounds(at):
		return CellGuard
	case p.guard.HasVisited(at):
		return CellVisited
	default:
		return CellFloor
	}
}

// Render draws the area in the input alphabet: '#' for obstacles, the
// heading glyph for the guard, '.' for everything else.
func (p *Patrol) Render() string {
	var b strings.Builder
	b.Grow((p.area.Width + 1) * p.area.Height)
	for y := 0; y < p.area.Height; y++ {
		for x := 0; x < p.area.Width; x++ {
			switch p.CellAt(Point{X: x, Y: y}) {
			case CellObstacle:
				b.WriteByte(obstacleGlyph)
			case CellGuard:
				b.WriteByte(p.guard.Heading.Glyph())
			default:
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// Pretty draws the patrol with block characters, marking visited cells, and
// appends the guard position.
func (p *Patrol) Pretty() string {
	var b strings.Builder
	for y := 0; y < p.area.Height; y++ {
		for x := 0; x < p.area.Width; x++ {
			b.WriteRune(p.Rune(Point{X: x, Y: y}))
		}
		b.WriteByte('\n')
	}
	fmt.Fprintf(&b, "Guard at %s", p.guard.Position)
	return b.String()
}

// Rune is the block character Pretty uses for the cell at.
func (p *Patrol) Rune(at Point) rune {
	switch p.CellAt(at) {
	case CellObstacle:
		return '█'
	case CellGuard:
		return p.guard.Heading.Arrow()
	case CellVisited:
		return '◈'
	default:
		return '░'
	}
}
