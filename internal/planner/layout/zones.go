package layout

import (
	"fmt"

	"studio-planner/internal/planner/models"
)

const (
	// KilnClearance is the 18" safety margin around the kiln.
	KilnClearance = 1.5
	// kilnWallGap separates an enclosure wall from the kiln footprint.
	kilnWallGap = 2.0
)

// Find returns the first item carrying role.
func Find(items []models.Equipment, role models.Role) (models.Equipment, bool) {
	for _, item := range items {
		if item.EffectiveRole() == role {
			return item, true
		}
	}
	return models.Equipment{}, false
}

// KilnClearanceZone inflates the kiln footprint on every side.
func KilnClearanceZone(kiln models.Equipment) models.Rect {
	return kiln.Footprint().Inflate(KilnClearance)
}

// KilnEnclosure is the optional fire-rated room: it runs from the top wall
// down to 2 ft past the kiln and extends 2 ft beside it.
func KilnEnclosure(kiln models.Equipment) models.Rect {
	return models.Rect{
		X:      kiln.X - kilnWallGap,
		Y:      0,
		Width:  kiln.Width + 2*kilnWallGap,
		Height: kiln.Y + kiln.Depth + kilnWallGap,
	}
}

// KilnEnclosureLabel describes the enclosure size, e.g. "6.5' x 5.5'".
func KilnEnclosureLabel(kiln models.Equipment) string {
	r := KilnEnclosure(kiln)
	return fmt.Sprintf("%.1f' x %.1f'", r.Width, r.Height)
}

// KilnEnclosureEntry is where the entry note sits below the enclosure.
func KilnEnclosureEntry(kiln models.Equipment) models.Point {
	return models.Point{X: kiln.X, Y: kiln.Y + kiln.Depth + 2.5}
}

// Doors lists the fixed architectural openings of the space.
func Doors(space models.Space) []models.Door {
	return []models.Door{
		{
			Kind:   models.DoorGarage,
			Label:  fmt.Sprintf("GARAGE DOOR (%s')", trimFloat(space.Width)),
			Wall:   models.WallBottom,
			Offset: 0,
			Width:  space.Width,
			Rect:   models.Rect{X: 0, Y: space.Depth - models.DoorThickness, Width: space.Width, Height: models.DoorThickness},
		},
		{
			Kind:   models.DoorMan,
			Label:  "DOOR",
			Wall:   models.WallLeft,
			Offset: space.ManDoorPosition,
			Width:  models.DoorWidth,
			Rect:   models.Rect{X: 0, Y: space.ManDoorPosition, Width: models.DoorThickness, Height: models.DoorWidth},
		},
		{
			Kind:   models.DoorExterior,
			Label:  "DOOR",
			Wall:   models.WallRight,
			Offset: models.ExteriorDoorPosition,
			Width:  models.DoorWidth,
			Rect: models.Rect{
				X:      space.Width - models.DoorThickness,
				Y:      models.ExteriorDoorPosition,
				Width:  models.DoorThickness,
				Height: models.DoorWidth,
			},
		},
	}
}

// ============================================================
// Utilities overlay
// ============================================================

type MarkerKind string

const (
	MarkerPower  MarkerKind = "power"
	MarkerVent   MarkerKind = "vent"
	MarkerWater  MarkerKind = "water"
	MarkerNotice MarkerKind = "notice"
)

// Marker is a utility annotation anchored at a point in feet.
type Marker struct {
	Kind   MarkerKind   `json:"kind"`
	Label  string       `json:"label"`
	Anchor models.Point `json:"anchor"`
}

// UtilityMarkers annotates the kiln and sink service points.
func UtilityMarkers(items []models.Equipment) []Marker {
	var out []Marker
	if kiln, ok := Find(items, models.RoleKiln); ok {
		out = append(out,
			Marker{Kind: MarkerPower, Label: "240V/50A", Anchor: kiln.Footprint().Center()},
			Marker{Kind: MarkerVent, Label: "Vent to Ext.", Anchor: models.Point{X: kiln.X + kiln.Width + 0.5, Y: kiln.Y}},
		)
	}
	if sink, ok := Find(items, models.RoleSink); ok {
		center := sink.Footprint().Center()
		out = append(out,
			Marker{Kind: MarkerWater, Label: "Water + Drain", Anchor: center},
			Marker{Kind: MarkerNotice, Label: "Sediment trap required", Anchor: models.Point{X: center.X, Y: sink.Y + sink.Depth + 0.3}},
		)
	}
	return out
}

// OutletNote is shown with the utilities overlay.
const OutletNote = "120V outlets every 6' along walls"

func trimFloat(v float64) string {
	return fmt.Sprintf("%g", v)
}
