package patrol

import "github.com/povarna/advent-of-code-2024/internal/utils"

// Guard is the mutable agent state of one patrol.
type Guard struct {
	Position Point
	Heading  Heading
	// Traveled counts in-grid cells entered since the start.
	Traveled int

	visited map[Point]struct{}
}

func NewGuard(start Point, heading Heading) *Guard {
	return &Guard{
		Position: start,
		Heading:  heading,
		visited:  map[Point]struct{}{start: {}},
	}
}

// Visited is the number of distinct in-grid cells the guard has occupied.
func (g *Guard) Visited() int {
	return len(g.visited)
}

func (g *Guard) HasVisited(p Point) bool {
	_, ok := g.visited[p]
	return ok
}

// VisitedCells returns the visited set in no particular order.
func (g *Guard) VisitedCells() []Point {
	out := make([]Point, 0, len(g.visited))
	for p := range g.visited {
		out = append(out, p)
	}
	return out
}

func (g *Guard) TurnRight() {
	g.Heading = g.Heading.TurnRight()
}

// Move advances the guard along its heading. With a hit the guard stops on
// the cell before the obstacle. Without one it moves onto the synthetic exit
// cell just past the boundary; that cell is never added to the visited set.
// Move returns the number of in-grid cells entered.
func (g *Guard) Move(area *Area, hit Point, ok bool) int {
	v := g.Heading.Vector()

	var steps, cells int
	if ok {
		steps = distance(g.Position, hit) - 1
		cells = steps
	} else {
		steps = area.exitDistance(g.Position, g.Heading)
		cells = steps - 1
	}

	for i := 1; i <= cells; i++ {
		g.visited[g.Position.Add(v.Scale(i))] = struct{}{}
	}
	g.Position = g.Position.Add(v.Scale(steps))
	g.Traveled += cells
	return cells
}

// distance is the manhattan distance between p and q.
func distance(p, q Point) int {
	return utils.AbsInt(p.X, q.X) + utils.AbsInt(p.Y, q.Y)
}
