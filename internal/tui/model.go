// Package tui is a terminal floor-plan editor. Equipment is dragged with the
// mouse through the same drag controller the HTTP API uses.
package tui

import (
	"context"
	"fmt"
	"strings"

	"studio-planner/internal/planner/app"
	"studio-planner/internal/planner/drag"
	"studio-planner/internal/planner/models"
	"studio-planner/internal/planner/service"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// headerLines is the number of rows printed above the plan.
const headerLines = 2

// nudge is the keyboard step in feet.
const nudge = 0.5

// Model is the bubbletea model for the planner.
type Model struct {
	planner  *app.Planner
	cursor   int
	status   string
	quitting bool
}

func New(p *app.Planner) Model {
	return Model{planner: p}
}

// Run starts the program with mouse motion reporting.
func Run(ctx context.Context, p *app.Planner) error {
	prog := tea.NewProgram(New(p), tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx))
	_, err := prog.Run()
	return err
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		return m.handleMouse(msg), nil
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	p := m.planner
	items := p.Store.All()
	m.status = ""

	switch msg.String() {
	case "q", "ctrl+c", "esc":
		p.Drag.End()
		m.quitting = true
		return m, tea.Quit
	case "tab", "j":
		if len(items) > 0 {
			m.cursor = (m.cursor + 1) % len(items)
		}
	case "shift+tab", "k":
		if len(items) > 0 {
			m.cursor = (m.cursor - 1 + len(items)) % len(items)
		}
	case "up":
		p.Store.Move(m.selected(items), 0, -nudge, p.Room.Space())
	case "down":
		p.Store.Move(m.selected(items), 0, nudge, p.Room.Space())
	case "left":
		p.Store.Move(m.selected(items), -nudge, 0, p.Room.Space())
	case "right":
		p.Store.Move(m.selected(items), nudge, 0, p.Room.Space())
	case "r":
		p.Store.Rotate(m.selected(items))
	case "p":
		p.Store.TogglePurchased(m.selected(items))
	case "d", "delete":
		id := m.selected(items)
		p.Store.Remove(id)
		p.Drag.Forget(id)
		m.status = "removed " + id
	case "u":
		m.toggle(func(c service.RoomConfig) service.RoomPatch {
			v := !c.ShowUtilities
			return service.RoomPatch{ShowUtilities: &v}
		})
	case "c":
		m.toggle(func(c service.RoomConfig) service.RoomPatch {
			v := !c.ShowKilnClearance
			return service.RoomPatch{ShowKilnClearance: &v}
		})
	case "w":
		m.toggle(func(c service.RoomConfig) service.RoomPatch {
			v := !c.ShowKilnWall
			return service.RoomPatch{ShowKilnWall: &v}
		})
	}

	m.clampCursor()
	return m, nil
}

func (m *Model) toggle(fn func(service.RoomConfig) service.RoomPatch) {
	m.planner.Room.Apply(fn(m.planner.Room.Config()))
}

// handleMouse maps terminal cells onto the controller's pixel space: one
// cell is one unit, so the drag scale is cellsPerFoot horizontally. Rows
// are rescaled to the same unit before publishing.
func (m Model) handleMouse(msg tea.MouseMsg) Model {
	p := m.planner
	px, py := toPointer(msg.X, msg.Y)

	switch {
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		items := p.Store.All()
		idx := hit(items, px/cellsPerFoot, py/cellsPerFoot)
		if idx < 0 {
			return m
		}
		m.cursor = idx
		if err := p.Drag.Begin(items[idx].ID, px, py, cellsPerFoot); err != nil {
			m.status = err.Error()
		}
	case msg.Action == tea.MouseActionMotion:
		p.Bus.Publish(drag.Event{Kind: drag.PointerMove, X: px, Y: py})
	case msg.Action == tea.MouseActionRelease:
		p.Bus.Publish(drag.Event{Kind: drag.PointerUp, X: px, Y: py})
	}
	return m
}

// toPointer converts a terminal cell to pointer units, cellsPerFoot per foot
// on both axes, relative to the room origin.
func toPointer(col, row int) (float64, float64) {
	return float64(col - 1), float64(row-headerLines-1) * cellsPerFoot
}

// hit returns the index of the topmost item under (x, y) feet, or -1.
func hit(items []models.Equipment, x, y float64) int {
	for i := len(items) - 1; i >= 0; i-- {
		r := items[i].Footprint()
		if x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom() {
			return i
		}
	}
	return -1
}

func (m Model) selected(items []models.Equipment) string {
	if m.cursor < 0 || m.cursor >= len(items) {
		return ""
	}
	return items[m.cursor].ID
}

func (m *Model) clampCursor() {
	n := m.planner.Store.Len()
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	p := m.planner
	cfg := p.Room.Config()
	items := p.Store.All()
	selected := m.selected(items)

	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("Pottery Studio  %g' × %g'", cfg.Width, cfg.Depth)))
	b.WriteString("  ")
	b.WriteString(dimStyle.Render(p.Drag.State().String()))
	b.WriteString("\n\n")

	plan := draw(cfg.Space(), items, cfg.Overlays(), selected).String()
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, plan, "  ", m.sidePanel(items)))
	b.WriteString("\n")
	if m.status != "" {
		b.WriteString(warnStyle.Render(m.status))
		b.WriteString("\n")
	}
	b.WriteString(dimStyle.Render("tab select · arrows nudge · drag with mouse · r rotate · p purchased · d delete · u/c/w overlays · q quit"))
	return b.String()
}

func (m Model) sidePanel(items []models.Equipment) string {
	var b strings.Builder
	for i, item := range items {
		marker := "  "
		style := labelStyle
		if i == m.cursor {
			marker = "▸ "
			style = selectedStyle
		}
		check := " "
		if item.Purchased {
			check = "✓"
		}
		b.WriteString(style.Render(fmt.Sprintf("%s%s %-4s %s", marker, check, initials(item.Name), item.Name)))
		b.WriteString("\n")
	}

	if i := m.cursor; i >= 0 && i < len(items) {
		item := items[i]
		b.WriteString("\n")
		b.WriteString(labelStyle.Render("size  ") + valueStyle.Render(fmt.Sprintf("%g' × %g'  %d°", item.Width, item.Depth, item.Rotation)))
		b.WriteString("\n")
		b.WriteString(labelStyle.Render("pos   ") + valueStyle.Render(fmt.Sprintf("%.1f, %.1f", item.X, item.Y)))
		b.WriteString("\n")
		b.WriteString(labelStyle.Render("cost  ") + valueStyle.Render(item.EstimatedCost))
		b.WriteString("\n")
	}

	budget := service.Summarize(items)
	b.WriteString("\n")
	b.WriteString(labelStyle.Render("remaining ") + valueStyle.Render(fmt.Sprintf("$%.0f", budget.Remaining)))
	b.WriteString("\n")
	b.WriteString(labelStyle.Render("essential ") + valueStyle.Render(fmt.Sprintf("%d pending", budget.EssentialPending)))
	return panelStyle.Render(b.String())
}
