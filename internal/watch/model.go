// Package watch animates a patrol in the terminal, one step per frame.
package watch

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/povarna/advent-of-code-2024/internal/patrol"
)

var (
	floorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	obstacleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	visitedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("36"))
	guardStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("208")).Bold(true)
	statusStyle   = lipgloss.NewStyle().Faint(true)
)

type tickMsg time.Time

func tick(delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Model steps the patrol on every tick and keeps the last frame on screen
// once the guard has left (or is found looping) until the user quits.
type Model struct {
	patrol   *patrol.Patrol
	delay    time.Duration
	steps    int
	quitting bool
}

func New(p *patrol.Patrol, delay time.Duration) Model {
	return Model{
		patrol: p,
		delay:  delay,
	}
}

func (m Model) Init() tea.Cmd {
	return tick(m.delay)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		}
	case tickMsg:
		if m.Done() {
			return m, nil
		}
		m.steps++
		if m.patrol.Step() {
			return m, tick(m.delay)
		}
		return m, nil
	}
	return m, nil
}

// Done reports whether the patrol has terminated.
func (m Model) Done() bool {
	return m.patrol.State() != patrol.Patrolling
}

func (m Model) Steps() int {
	return m.steps
}

func (m Model) Patrol() *patrol.Patrol {
	return m.patrol
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	area := m.patrol.Area()
	var b strings.Builder
	for y := 0; y < area.Height; y++ {
		for x := 0; x < area.Width; x++ {
			at := patrol.Point{X: x, Y: y}
			b.WriteString(cellStyle(m.patrol.CellAt(at)).Render(string(m.patrol.Rune(at))))
		}
		b.WriteByte('\n')
	}

	guard := m.patrol.Guard()
	status := fmt.Sprintf("Step: %d  Heading: %s  Visited: %d  Traveled: %d",
		m.steps, guard.Heading, m.patrol.Visited(), guard.Traveled)
	b.WriteString(statusStyle.Render(status))
	b.WriteByte('\n')

	switch m.patrol.State() {
	case patrol.Exited:
		fmt.Fprintf(&b, "Guard left the area at %s after visiting %d distinct positions.\n",
			guard.Position, m.patrol.Visited())
	case patrol.Looping:
		b.WriteString("Guard is stuck in a loop.\n")
	}

	b.WriteString("\nPress q to quit.\n")
	return b.String()
}

func cellStyle(c patrol.Cell) lipgloss.Style {
	switch c {
	case patrol.CellObstacle:
		return obstacleStyle
	case patrol.CellVisited:
		return visitedStyle
	case patrol.CellGuard:
		return guardStyle
	default:
		return floorStyle
	}
}
