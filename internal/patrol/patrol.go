package patrol

import "errors"

// ErrLooping is returned by Run when the guard walks a closed circuit and can
// never leave the area.
var ErrLooping = errors.New("patrol: guard is stuck in a loop")

// State of a patrol.
type State int

const (
	Patrolling State = iota
	Exited
	Looping
)

func (s State) String() string {
	switch s {
	case Patrolling:
		return "patrolling"
	case Exited:
		return "exited"
	case Looping:
		return "looping"
	default:
		return "unknown"
	}
}

type pose struct {
	at      Point
	heading Heading
}

// Patrol drives one guard across an area until it leaves the grid.
type Patrol struct {
	area  *Area
	guard *Guard
	state State
	seen  map[pose]struct{}
}

func New(area *Area) *Patrol {
	return &Patrol{
		area:  area,
		guard: NewGuard(area.Start, area.StartHeading),
		state: Patrolling,
		seen:  make(map[pose]struct{}),
	}
}

func (p *Patrol) Area() *Area   { return p.area }
func (p *Patrol) Guard() *Guard { return p.guard }
func (p *Patrol) State() State  { return p.state }

// Visited is the number of distinct in-grid cells visited so far.
func (p *Patrol) Visited() int {
	return p.guard.Visited()
}

// Step casts one ray and moves the guard up to the obstacle or off the grid,
// turning right after a hit. It reports whether the guard is still patrolling.
func (p *Patrol) Step() bool {
	if p.state != Patrolling {
		return false
	}

	now := pose{at: p.guard.Position, heading: p.guard.Heading}
	if _, ok := p.seen[now]; ok {
		p.state = Looping
		return false
	}
	p.seen[now] = struct{}{}

	hit, ok := p.area.CastRay(p.guard.Position, p.guard.Heading)
	p.guard.Move(p.area, hit, ok)
	if !ok {
		p.state = Exited
		return false
	}

	p.guard.TurnRight()
	return true
}

// Run steps the patrol until it terminates and returns the number of
// distinct cells visited.
func (p *Patrol) Run() (int, error) {
	for p.Step() {
	}

	if p.state == Looping {
		return p.Visited(), ErrLooping
	}
	return p.Visited(), nil
}

// LoopObstructions counts the cells where a single new obstacle traps the
// guard. Only cells on the unobstructed route can change it, and the start
// cell is off limits.
func LoopObstructions(area *Area) (int, error) {
	route := New(area)
	if _, err := route.Run(); err != nil {
		return 0, err
	}

	count := 0
	for _, c := range route.Guard().VisitedCells() {
		if c == area.Start {
			continue
		}

		_, err := New(area.WithObstacle(c)).Run()
		switch {
		case errors.Is(err, ErrLooping):
			count++
		case err != nil:
			return 0, err
		}
	}

	return count, nil
}
