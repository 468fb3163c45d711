package tui

import (
	"math"
	"strings"

	"studio-planner/internal/planner/layout"
	"studio-planner/internal/planner/models"
)

// Each foot is cellsPerFoot columns wide and one row tall, which keeps the
// plan roughly square in a terminal.
const cellsPerFoot = 2

type cellKind int

const (
	cellFloor cellKind = iota
	cellWall
	cellDoor
	cellClearance
	cellEnclosure
	cellMarker
	cellEssential
	cellRecommended
	cellOptional
	cellPurchased
	cellSelected
)

type cell struct {
	r    rune
	kind cellKind
}

// canvas is the room interior plus a one-cell wall on every side.
type canvas struct {
	cols, rows int
	cells      [][]cell
}

func newCanvas(space models.Space) *canvas {
	cols := int(math.Ceil(space.Width*cellsPerFoot)) + 2
	rows := int(math.Ceil(space.Depth)) + 2
	c := &canvas{cols: cols, rows: rows, cells: make([][]cell, rows)}
	for y := range c.cells {
		c.cells[y] = make([]cell, cols)
		for x := range c.cells[y] {
			switch {
			case y == 0 || y == rows-1:
				c.cells[y][x] = cell{'─', cellWall}
			case x == 0 || x == cols-1:
				c.cells[y][x] = cell{'│', cellWall}
			default:
				c.cells[y][x] = cell{'·', cellFloor}
			}
		}
	}
	c.cells[0][0] = cell{'╭', cellWall}
	c.cells[0][cols-1] = cell{'╮', cellWall}
	c.cells[rows-1][0] = cell{'╰', cellWall}
	c.cells[rows-1][cols-1] = cell{'╯', cellWall}
	return c
}

func (c *canvas) set(x, y int, r rune, kind cellKind) {
	if y < 0 || y >= c.rows || x < 0 || x >= c.cols {
		return
	}
	c.cells[y][x] = cell{r, kind}
}

// cellRange maps a span in feet onto interior cells.
func cellRange(start, length, perFoot float64) (int, int) {
	from := int(math.Floor(start*perFoot)) + 1
	to := int(math.Ceil((start+length)*perFoot)) + 1
	if to <= from {
		to = from + 1
	}
	return from, to
}

// fill paints r over a rect in feet.
func (c *canvas) fill(rect models.Rect, r rune, kind cellKind) {
	x0, x1 := cellRange(rect.X, rect.Width, cellsPerFoot)
	y0, y1 := cellRange(rect.Y, rect.Height, 1)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			c.set(x, y, r, kind)
		}
	}
}

// outline paints only the edge of a rect.
func (c *canvas) outline(rect models.Rect, r rune, kind cellKind) {
	x0, x1 := cellRange(rect.X, rect.Width, cellsPerFoot)
	y0, y1 := cellRange(rect.Y, rect.Height, 1)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			if y == y0 || y == y1-1 || x == x0 || x == x1-1 {
				c.set(x, y, r, kind)
			}
		}
	}
}

// label writes text inside a rect, clipped to its width.
func (c *canvas) label(rect models.Rect, text string, kind cellKind) {
	x0, x1 := cellRange(rect.X, rect.Width, cellsPerFoot)
	y0, y1 := cellRange(rect.Y, rect.Height, 1)
	y := (y0 + y1 - 1) / 2
	for i, r := range []rune(text) {
		if x0+i >= x1 {
			break
		}
		c.set(x0+i, y, r, kind)
	}
}

// door marks a door opening on the wall cells.
func (c *canvas) door(d models.Door) {
	switch d.Wall {
	case models.WallBottom:
		x0, x1 := cellRange(d.Rect.X, d.Rect.Width, cellsPerFoot)
		for x := x0; x < x1; x++ {
			c.set(x, c.rows-1, '═', cellDoor)
		}
	case models.WallLeft, models.WallRight:
		x := 0
		if d.Wall == models.WallRight {
			x = c.cols - 1
		}
		y0, y1 := cellRange(d.Offset, d.Width, 1)
		for y := y0; y < y1; y++ {
			c.set(x, y, '║', cellDoor)
		}
	}
}

func (c *canvas) String() string {
	var b strings.Builder
	for y, row := range c.cells {
		if y > 0 {
			b.WriteByte('\n')
		}
		for _, cl := range row {
			b.WriteString(cellStyles[cl.kind].Render(string(cl.r)))
		}
	}
	return b.String()
}

// draw renders the plan. selected is the highlighted item id.
func draw(space models.Space, items []models.Equipment, overlays layout.Overlays, selected string) *canvas {
	c := newCanvas(space)

	if kiln, ok := layout.Find(items, models.RoleKiln); ok {
		if overlays.KilnWall {
			c.outline(layout.KilnEnclosure(kiln), '▒', cellEnclosure)
		}
		if overlays.KilnClearance {
			c.fill(layout.KilnClearanceZone(kiln), '░', cellClearance)
		}
	}

	for _, d := range layout.Doors(space) {
		c.door(d)
	}

	for _, item := range items {
		kind := itemKind(item)
		if item.ID == selected {
			kind = cellSelected
		}
		rect := item.Footprint()
		c.fill(rect, ' ', kind)
		c.outline(rect, '▪', kind)
		c.label(rect, initials(item.Name), kind)
	}

	if overlays.Utilities {
		for _, m := range layout.UtilityMarkers(items) {
			x, _ := cellRange(m.Anchor.X, 0, cellsPerFoot)
			y, _ := cellRange(m.Anchor.Y, 0, 1)
			c.set(x, y, '+', cellMarker)
		}
	}
	return c
}

func itemKind(item models.Equipment) cellKind {
	if item.Purchased {
		return cellPurchased
	}
	switch item.Priority {
	case models.PriorityEssential:
		return cellEssential
	case models.PriorityRecommended:
		return cellRecommended
	default:
		return cellOptional
	}
}

func initials(name string) string {
	var b strings.Builder
	for _, word := range strings.Fields(name) {
		b.WriteRune([]rune(word)[0])
	}
	return strings.ToUpper(b.String())
}
