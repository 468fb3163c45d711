// Package layout holds the geometry of the studio floor plan: where an item
// may be placed, how it rotates, and how feet map onto the rendered room.
//
// Every function here is pure. Items are passed by value and the room
// dimensions are supplied on each call; nothing keeps a reference to the
// collection.
package layout

import (
	"math"

	"studio-planner/internal/planner/models"
)

// Margin is kept free along every wall for items without a wall rule.
const Margin = 0.5

// Clamp limits v to [lo, hi]. When hi < lo the lower bound wins, which is
// what an item larger than the room collapses to.
func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// Place returns the legal position closest to the requested (x, y).
func Place(item models.Equipment, x, y float64, space models.Space) models.Point {
	maxY := space.Depth - item.Depth - Margin

	if item.EffectiveRole() == models.RoleSink {
		// plumbing runs through the exterior wall
		return models.Point{
			X: space.Width - item.Width,
			Y: Clamp(y, Margin, maxY),
		}
	}

	return models.Point{
		X: Clamp(x, Margin, space.Width-item.Width-Margin),
		Y: Clamp(y, Margin, maxY),
	}
}

// Move displaces item by (dx, dy) feet and returns it at its new legal position.
func Move(item models.Equipment, dx, dy float64, space models.Space) models.Equipment {
	p := Place(item, item.X+dx, item.Y+dy, space)
	out := item.Clone()
	out.X, out.Y = p.X, p.Y
	return out
}

// OutOfBounds reports whether the footprint crosses a room edge. Rotation
// and resize do not re-clamp, so this is how callers find protrusions.
func OutOfBounds(item models.Equipment, space models.Space) bool {
	return !space.Bounds().Contains(item.Footprint())
}

// Overlap names two items whose footprints intersect.
type Overlap struct {
	A string `json:"a"`
	B string `json:"b"`
}

// Overlaps lists intersecting pairs in collection order. Placement never
// consults it; it only feeds the layout report.
func Overlaps(items []models.Equipment) []Overlap {
	var out []Overlap
	for i := 0; i < len(items); i++ {
		for j := i + 1; j < len(items); j++ {
			if items[i].Footprint().Intersects(items[j].Footprint()) {
				out = append(out, Overlap{A: items[i].ID, B: items[j].ID})
			}
		}
	}
	return out
}
