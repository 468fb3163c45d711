package layout

import "studio-planner/internal/planner/models"

// Percent maps a length in feet onto a room dimension. A zero dimension
// maps everything to 0 instead of producing NaN.
func Percent(value, dimension float64) float64 {
	if dimension == 0 {
		return 0
	}
	return value / dimension * 100
}

// Project expresses r relative to the room bounds. Overlays and items all go
// through this so they stay aligned whatever the rendered size.
func Project(r models.Rect, space models.Space) models.PercentRect {
	return models.PercentRect{
		Left:   Percent(r.X, space.Width),
		Top:    Percent(r.Y, space.Depth),
		Width:  Percent(r.Width, space.Width),
		Height: Percent(r.Height, space.Depth),
	}
}

func ProjectItem(item models.Equipment, space models.Space) models.PercentRect {
	return Project(item.Footprint(), space)
}

// ProjectPoint returns (left%, top%) for an anchor point such as a marker.
func ProjectPoint(p models.Point, space models.Space) models.Point {
	return models.Point{X: Percent(p.X, space.Width), Y: Percent(p.Y, space.Depth)}
}
