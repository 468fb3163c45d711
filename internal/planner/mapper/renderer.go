package mapper

import (
	"fmt"
	"html"
	"math"
	"strconv"
	"strings"

	"studio-planner/internal/planner/layout"
	"studio-planner/internal/planner/models"
)

// ============================================================
// Renderer
// ============================================================

// Plan is what gets drawn.
type Plan struct {
	Space    models.Space
	Items    []models.Equipment
	Overlays layout.Overlays
	// Scale in pixels per foot; zero means desktop scale.
	Scale float64
}

type Renderer struct{}

func NewRenderer() *Renderer {
	return &Renderer{}
}

// Render draws the studio plan as a standalone SVG document.
func (r *Renderer) Render(plan Plan) (string, error) {
	if plan.Space.Width <= 0 || plan.Space.Depth <= 0 {
		return "", fmt.Errorf("room has no area: %gx%g", plan.Space.Width, plan.Space.Depth)
	}
	scale := plan.Scale
	if scale <= 0 {
		scale = 30
	}

	width := plan.Space.Width * scale
	height := plan.Space.Depth * scale

	var elements []string
	elements = append(elements, fmt.Sprintf(`<rect x="0" y="0" width="%s" height="%s" fill="#f1f5f9" stroke="#cbd5e1" stroke-width="2" />`,
		formatFloat(width), formatFloat(height)))
	elements = append(elements, r.renderGrid(plan.Space, scale)...)
	elements = append(elements, r.renderDoors(plan.Space, scale)...)
	elements = append(elements, r.renderZones(plan, scale)...)
	elements = append(elements, r.renderItems(plan.Items, scale)...)
	if plan.Overlays.Utilities {
		elements = append(elements, r.renderMarkers(plan.Items, plan.Space, scale)...)
	}

	var builder strings.Builder
	builder.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	builder.WriteString(fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" width="%s" height="%s" viewBox="0 0 %s %s">`,
		formatFloat(width), formatFloat(height), formatFloat(width), formatFloat(height)))
	builder.WriteString("\n")

	for _, elem := range elements {
		builder.WriteString("  ")
		builder.WriteString(elem)
		builder.WriteString("\n")
	}

	builder.WriteString(`</svg>`)
	return builder.String(), nil
}

// ============================================================
// Element renderers
// ============================================================

// renderGrid draws a line every foot and a heavier one every 5 ft.
func (r *Renderer) renderGrid(space models.Space, scale float64) []string {
	var out []string
	w, h := space.Width*scale, space.Depth*scale

	line := func(x1, y1, x2, y2 float64, stroke string, sw int, opacity string) string {
		return fmt.Sprintf(`<line x1="%s" y1="%s" x2="%s" y2="%s" stroke="%s" stroke-width="%d" opacity="%s" />`,
			formatFloat(x1), formatFloat(y1), formatFloat(x2), formatFloat(y2), stroke, sw, opacity)
	}

	for i := 0; i <= int(math.Floor(space.Width)); i++ {
		x := float64(i) * scale
		out = append(out, line(x, 0, x, h, "#cbd5e1", 1, "0.3"))
	}
	for i := 0; i <= int(math.Floor(space.Depth)); i++ {
		y := float64(i) * scale
		out = append(out, line(0, y, w, y, "#cbd5e1", 1, "0.3"))
	}
	for i := 0; i <= int(math.Floor(space.Width/5)); i++ {
		x := float64(i*5) * scale
		out = append(out, line(x, 0, x, h, "#94a3b8", 2, "0.5"))
	}
	for i := 0; i <= int(math.Floor(space.Depth/5)); i++ {
		y := float64(i*5) * scale
		out = append(out, line(0, y, w, y, "#94a3b8", 2, "0.5"))
	}
	return out
}

func (r *Renderer) renderDoors(space models.Space, scale float64) []string {
	var out []string
	for _, door := range layout.Doors(space) {
		rect := scaled(door.Rect, scale)
		out = append(out, fmt.Sprintf(`<rect id="door-%s" x="%s" y="%s" width="%s" height="%s" fill="#475569" stroke="#334155" stroke-width="2" />`,
			door.Kind, formatFloat(rect.X), formatFloat(rect.Y), formatFloat(rect.Width), formatFloat(rect.Height)))

		c := rect.Center()
		transform := ""
		if door.Wall == models.WallLeft || door.Wall == models.WallRight {
			transform = fmt.Sprintf(` transform="rotate(-90 %s %s)"`, formatFloat(c.X), formatFloat(c.Y))
		}
		out = append(out, fmt.Sprintf(`<text x="%s" y="%s" text-anchor="middle" dominant-baseline="middle" fill="white" font-size="10"%s>%s</text>`,
			formatFloat(c.X), formatFloat(c.Y), transform, html.EscapeString(door.Label)))
	}
	return out
}

func (r *Renderer) renderZones(plan Plan, scale float64) []string {
	kiln, ok := layout.Find(plan.Items, models.RoleKiln)
	if !ok {
		return nil
	}

	var out []string
	if plan.Overlays.KilnClearance {
		zone := scaled(layout.KilnClearanceZone(kiln), scale)
		out = append(out, fmt.Sprintf(`<rect id="kiln-clearance" x="%s" y="%s" width="%s" height="%s" fill="#fecaca" fill-opacity="0.3" stroke="#ef4444" stroke-width="2" stroke-dasharray="6 4" />`,
			formatFloat(zone.X), formatFloat(zone.Y), formatFloat(zone.Width), formatFloat(zone.Height)))
	}
	if plan.Overlays.KilnWall {
		zone := scaled(layout.KilnEnclosure(kiln), scale)
		out = append(out, fmt.Sprintf(`<rect id="kiln-enclosure" x="%s" y="%s" width="%s" height="%s" fill="#e9d5ff" fill-opacity="0.2" stroke="#7e22ce" stroke-width="4" />`,
			formatFloat(zone.X), formatFloat(zone.Y), formatFloat(zone.Width), formatFloat(zone.Height)))
		out = append(out, fmt.Sprintf(`<text x="%s" y="%s" text-anchor="middle" fill="#7e22ce" font-size="10">%s</text>`,
			formatFloat(zone.Center().X), formatFloat(zone.Bottom()-6),
			html.EscapeString("Optional Fire-Rated Kiln Room ("+layout.KilnEnclosureLabel(kiln)+")")))
	}
	return out
}

func (r *Renderer) renderItems(items []models.Equipment, scale float64) []string {
	var out []string
	for _, item := range items {
		rect := scaled(item.Footprint(), scale)
		c := rect.Center()

		out = append(out, fmt.Sprintf(`<rect id="%s" x="%s" y="%s" width="%s" height="%s" rx="3" fill="%s" opacity="0.9" />`,
			html.EscapeString(item.ID), formatFloat(rect.X), formatFloat(rect.Y), formatFloat(rect.Width), formatFloat(rect.Height), itemColor(item)))
		out = append(out, fmt.Sprintf(`<text x="%s" y="%s" text-anchor="middle" dominant-baseline="middle" fill="white" font-size="10">%s</text>`,
			formatFloat(c.X), formatFloat(c.Y), html.EscapeString(item.Name)))
		out = append(out, fmt.Sprintf(`<text x="%s" y="%s" text-anchor="end" fill="white" font-size="8">%s</text>`,
			formatFloat(rect.Right()-2), formatFloat(rect.Bottom()-2), html.EscapeString(Dimensions(item))))
	}
	return out
}

func (r *Renderer) renderMarkers(items []models.Equipment, space models.Space, scale float64) []string {
	var out []string
	for _, m := range layout.UtilityMarkers(items) {
		x, y := m.Anchor.X*scale, m.Anchor.Y*scale
		out = append(out, fmt.Sprintf(`<circle cx="%s" cy="%s" r="4" fill="%s" />`, formatFloat(x), formatFloat(y), markerColor(m.Kind)))
		out = append(out, fmt.Sprintf(`<text x="%s" y="%s" text-anchor="middle" fill="#0f172a" font-size="9">%s</text>`,
			formatFloat(x), formatFloat(y-6), html.EscapeString(m.Label)))
	}
	out = append(out, fmt.Sprintf(`<text x="8" y="%s" fill="#0f172a" font-size="9">%s</text>`,
		formatFloat(space.Depth*scale-4), html.EscapeString(layout.OutletNote)))
	return out
}

// ============================================================
// Helpers
// ============================================================

func itemColor(item models.Equipment) string {
	if item.Purchased {
		return "#cbd5e1"
	}
	switch item.Priority {
	case models.PriorityEssential:
		return "#3b82f6"
	case models.PriorityRecommended:
		return "#22c55e"
	case models.PriorityOptional:
		return "#f59e0b"
	}
	return "#64748b"
}

func markerColor(kind layout.MarkerKind) string {
	switch kind {
	case layout.MarkerPower:
		return "#eab308"
	case layout.MarkerVent:
		return "#06b6d4"
	case layout.MarkerWater:
		return "#3b82f6"
	}
	return "#93c5fd"
}

// Dimensions formats a footprint as 2'×2.5'.
func Dimensions(item models.Equipment) string {
	return formatFloat(item.Width) + "'×" + formatFloat(item.Depth) + "'"
}

func scaled(r models.Rect, scale float64) models.Rect {
	return models.Rect{X: r.X * scale, Y: r.Y * scale, Width: r.Width * scale, Height: r.Height * scale}
}

func formatFloat(val float64) string {
	return strconv.FormatFloat(val, 'f', -1, 64)
}
