package mapper

import (
	"fmt"

	"studio-planner/internal/planner/layout"
	"studio-planner/internal/planner/models"
)

// CentimetersPerFoot converts plan feet into react-planner units.
const CentimetersPerFoot = 30.48

// ============================================================
// Scene exporter
// ============================================================

type Exporter struct{}

func NewExporter() *Exporter {
	return &Exporter{}
}

// Export builds a react-planner scene: the four walls as lines, the doors
// as holes on them and every item at its footprint centre.
func (e *Exporter) Export(space models.Space, items []models.Equipment) *models.Scene {
	w := space.Width * CentimetersPerFoot
	d := space.Depth * CentimetersPerFoot

	corners := []models.Point{{X: 0, Y: 0}, {X: w, Y: 0}, {X: w, Y: d}, {X: 0, Y: d}}
	walls := []models.Wall{models.WallTop, models.WallRight, models.WallBottom, models.WallLeft}

	vertices := make(map[string]models.Vertex, len(corners))
	lines := make(map[string]models.Line, len(walls))
	lineByWall := make(map[models.Wall]string, len(walls))

	for i, p := range corners {
		id := fmt.Sprintf("v%d", i)
		vertices[id] = models.Vertex{
			ID: id, Name: "Vertex", Type: "", Prototype: "vertices",
			X: p.X, Y: p.Y,
			Lines: []string{}, Areas: []string{"studio"},
		}
	}
	for i, wall := range walls {
		id := "wall-" + string(wall)
		a, b := fmt.Sprintf("v%d", i), fmt.Sprintf("v%d", (i+1)%len(corners))
		lines[id] = models.Line{
			ID: id, Name: "Wall", Type: "wall", Prototype: "lines",
			Vertices:   []string{a, b},
			Holes:      []string{},
			Properties: wallProperties(),
		}
		lineByWall[wall] = id
		for _, v := range []string{a, b} {
			vx := vertices[v]
			vx.Lines = append(vx.Lines, id)
			vertices[v] = vx
		}
	}

	holes := make(map[string]models.Hole)
	for _, door := range layout.Doors(space) {
		lineID := lineByWall[door.Wall]
		line := lines[lineID]
		id := "door-" + string(door.Kind)

		holes[id] = models.Hole{
			ID: id, Name: door.Label, Type: "door", Prototype: "holes",
			Line:       lineID,
			Offset:     holeOffset(door, space),
			Properties: doorProperties(door.Width * CentimetersPerFoot),
		}
		line.Holes = append(line.Holes, id)
		lines[lineID] = line
	}

	sceneItems := make(map[string]models.Item, len(items))
	for i, item := range items {
		c := item.Footprint().Center()
		misc := map[string]any{"role": string(item.EffectiveRole()), "order": i}
		if len(item.Extra) > 0 {
			misc["extra"] = item.Extra
		}
		brands := item.Brands
		if brands == nil {
			brands = []string{}
		}
		sceneItems[item.ID] = models.Item{
			ID: item.ID, Name: item.Name, Type: "equipment", Prototype: "items",
			X:        c.X * CentimetersPerFoot,
			Y:        c.Y * CentimetersPerFoot,
			Rotation: float64(item.Rotation),
			Properties: map[string]any{
				"width":         map[string]any{"length": item.Width * CentimetersPerFoot},
				"depth":         map[string]any{"length": item.Depth * CentimetersPerFoot},
				"category":      item.Category,
				"priority":      string(item.Priority),
				"purchased":     item.Purchased,
				"estimatedCost": item.EstimatedCost,
				"brands":        brands,
				"notes":         item.Notes,
			},
			Misc: misc,
		}
	}

	area := models.Area{
		ID: "studio", Name: "Studio", Type: "area", Prototype: "areas",
		Vertices:   []string{"v0", "v1", "v2", "v3"},
		Holes:      []string{},
		Properties: defaultAreaProperties(),
	}

	layer := models.Layer{
		ID:       "layer-1",
		Altitude: 0,
		Order:    0,
		Opacity:  1,
		Name:     "default",
		Visible:  true,
		Vertices: vertices,
		Lines:    lines,
		Holes:    holes,
		Areas:    map[string]models.Area{area.ID: area},
		Items:    sceneItems,
		Selected: models.ElementsSet{Vertices: []string{}, Lines: []string{}, Holes: []string{}, Areas: []string{}, Items: []string{}},
	}

	return &models.Scene{
		Unit:          "cm",
		Layers:        map[string]models.Layer{"layer-1": layer},
		SelectedLayer: "layer-1",
		Grids:         defaultGrids(),
		Groups:        map[string]any{},
		Width:         w,
		Height:        d,
		Meta:          map[string]any{"source": "studio-planner", "unit": "ft"},
		Guides:        defaultGuides(),
	}
}

// holeOffset is the door centre as a fraction of its wall, measured from
// the wall's first vertex (walls run clockwise from the top-left corner).
func holeOffset(door models.Door, space models.Space) float64 {
	center := door.Rect.Center()
	switch door.Wall {
	case models.WallTop:
		return layout.Clamp(center.X/space.Width, 0, 1)
	case models.WallRight:
		return layout.Clamp(center.Y/space.Depth, 0, 1)
	case models.WallBottom:
		return layout.Clamp(1-center.X/space.Width, 0, 1)
	case models.WallLeft:
		return layout.Clamp(1-center.Y/space.Depth, 0, 1)
	}
	return 0
}

// ============================================================
// Defaults
// ============================================================

func wallProperties() map[string]any {
	return map[string]any{
		"height":    map[string]any{"length": 300.0},
		"thickness": map[string]any{"length": 20.0},
	}
}

func doorProperties(width float64) map[string]any {
	return map[string]any{
		"width":           map[string]any{"length": width},
		"height":          map[string]any{"length": 215.0},
		"altitude":        map[string]any{"length": 0.0},
		"thickness":       map[string]any{"length": models.DoorThickness * CentimetersPerFoot},
		"flip_orizzontal": false,
	}
}

func defaultAreaProperties() map[string]any {
	return map[string]any{
		"patternColor": "#F5F5F5",
		"thickness":    map[string]any{"length": 0.0},
	}
}

func defaultGrids() map[string]models.Grid {
	return map[string]models.Grid{
		"h1": {
			ID:   "h1",
			Type: "horizontal-streak",
			Properties: map[string]any{
				"step":   CentimetersPerFoot,
				"colors": []string{"#808080", "#ddd", "#ddd", "#ddd", "#ddd"},
			},
		},
		"v1": {
			ID:   "v1",
			Type: "vertical-streak",
			Properties: map[string]any{
				"step":   CentimetersPerFoot,
				"colors": []string{"#808080", "#ddd", "#ddd", "#ddd", "#ddd"},
			},
		},
	}
}

func defaultGuides() models.Guides {
	return models.Guides{
		Horizontal: map[string]any{},
		Vertical:   map[string]any{},
		Circular:   map[string]any{},
	}
}
