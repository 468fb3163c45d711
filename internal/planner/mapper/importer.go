package mapper

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"

	"studio-planner/internal/planner/models"
)

// ============================================================
// Scene importer
// ============================================================

type Importer struct{}

func NewImporter() *Importer {
	return &Importer{}
}

// Import reads a react-planner scene back into a room and its equipment.
// The room is the bounding box of the layer's vertices; items are read from
// their centre and width/depth properties. Items keep their exported order;
// items without one follow, sorted by key. Empty ids take the map key,
// duplicate ids are rejected and non-positive sizes fall back to 2 ft.
func (im *Importer) Import(scene *models.Scene) (models.Space, []models.Equipment, error) {
	if scene == nil {
		return models.Space{}, nil, fmt.Errorf("scene is nil")
	}

	layer, err := pickLayer(scene)
	if err != nil {
		return models.Space{}, nil, err
	}

	unit := CentimetersPerFoot
	if scene.Unit == "ft" {
		unit = 1
	}

	space := models.DefaultSpace()
	minX, minY := math.MaxFloat64, math.MaxFloat64
	maxX, maxY := -math.MaxFloat64, -math.MaxFloat64
	for _, v := range layer.Vertices {
		minX, maxX = math.Min(minX, v.X), math.Max(maxX, v.X)
		minY, maxY = math.Min(minY, v.Y), math.Max(maxY, v.Y)
	}
	if minX != math.MaxFloat64 && maxX > minX && maxY > minY {
		space.Width = (maxX - minX) / unit
		space.Depth = (maxY - minY) / unit
	} else {
		minX, minY = 0, 0
	}

	if hole, ok := layer.Holes["door-"+string(models.DoorMan)]; ok {
		// left wall runs bottom-up
		centre := (1 - hole.Offset) * space.Depth
		space.ManDoorPosition = centre - models.DoorWidth/2
	}

	keys := make([]string, 0, len(layer.Items))
	for key := range layer.Items {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		oi, iok := orderOf(layer.Items[keys[i]])
		oj, jok := orderOf(layer.Items[keys[j]])
		switch {
		case iok && jok && oi != oj:
			return oi < oj
		case iok != jok:
			return iok
		}
		return keys[i] < keys[j]
	})

	seen := make(map[string]bool, len(keys))
	items := make([]models.Equipment, 0, len(keys))
	for _, key := range keys {
		it := layer.Items[key]
		id := it.ID
		if id == "" {
			id = key
		}
		if id == "" {
			return models.Space{}, nil, fmt.Errorf("item without id")
		}
		if seen[id] {
			return models.Space{}, nil, fmt.Errorf("duplicate item id %q", id)
		}
		seen[id] = true

		width := positiveOr(lengthFromProperties(it.Properties, "width", 2*unit)/unit, 2)
		depth := positiveOr(lengthFromProperties(it.Properties, "depth", 2*unit)/unit, 2)

		eq := models.Equipment{
			ID:            id,
			Name:          it.Name,
			Category:      stringProperty(it.Properties, "category", "Other"),
			Width:         width,
			Depth:         depth,
			X:             (it.X-minX)/unit - width/2,
			Y:             (it.Y-minY)/unit - depth/2,
			Priority:      models.Priority(stringProperty(it.Properties, "priority", string(models.PriorityOptional))),
			EstimatedCost: stringProperty(it.Properties, "estimatedCost", "$0"),
			Brands:        stringsProperty(it.Properties, "brands"),
			Notes:         stringProperty(it.Properties, "notes", ""),
			Rotation:      models.SnapRotation(it.Rotation),
			Extra:         extraFromMisc(it.Misc),
		}
		if purchased, ok := it.Properties["purchased"].(bool); ok {
			eq.Purchased = purchased
		}
		if role, ok := it.Misc["role"].(string); ok && role != string(models.RoleGeneric) {
			eq.Role = models.Role(role)
		}
		items = append(items, eq)
	}

	return space, items, nil
}

func pickLayer(scene *models.Scene) (models.Layer, error) {
	if len(scene.Layers) == 0 {
		return models.Layer{}, fmt.Errorf("scene has no layers")
	}

	if scene.SelectedLayer != "" {
		if layer, ok := scene.Layers[scene.SelectedLayer]; ok {
			return layer, nil
		}
	}

	var ids []string
	for id := range scene.Layers {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return scene.Layers[ids[0]], nil
}

func lengthFromProperties(props map[string]any, key string, def float64) float64 {
	if props == nil {
		return def
	}

	if raw, ok := props[key]; ok {
		switch v := raw.(type) {
		case float64:
			return v
		case map[string]any:
			if val, ok := v["length"]; ok {
				if f, ok := val.(float64); ok {
					return f
				}
			}
		}
	}
	return def
}

func stringProperty(props map[string]any, key, def string) string {
	if s, ok := props[key].(string); ok && s != "" {
		return s
	}
	return def
}

func positiveOr(v, def float64) float64 {
	if v > 0 && !math.IsInf(v, 0) {
		return v
	}
	return def
}

func orderOf(it models.Item) (float64, bool) {
	switch v := it.Misc["order"].(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	}
	return 0, false
}

func stringsProperty(props map[string]any, key string) []string {
	out := []string{}
	switch v := props[key].(type) {
	case []string:
		out = append(out, v...)
	case []any:
		for _, raw := range v {
			if s, ok := raw.(string); ok {
				out = append(out, s)
			}
		}
	}
	return out
}

// extraFromMisc restores the unknown equipment fields carried in misc.extra.
func extraFromMisc(misc map[string]any) map[string]json.RawMessage {
	switch v := misc["extra"].(type) {
	case map[string]json.RawMessage:
		out := make(map[string]json.RawMessage, len(v))
		for k, raw := range v {
			out[k] = append(json.RawMessage(nil), raw...)
		}
		return out
	case map[string]any:
		out := make(map[string]json.RawMessage, len(v))
		for k, raw := range v {
			data, err := json.Marshal(raw)
			if err != nil {
				continue
			}
			out[k] = data
		}
		return out
	}
	return nil
}
