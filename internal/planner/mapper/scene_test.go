package mapper

import (
	"encoding/json"
	"testing"

	"studio-planner/internal/planner/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportStructure(t *testing.T) {
	plan := samplePlan()
	scene := NewExporter().Export(plan.Space, plan.Items)

	require.Contains(t, scene.Layers, "layer-1")
	layer := scene.Layers["layer-1"]

	assert.Len(t, layer.Vertices, 4)
	assert.Len(t, layer.Lines, 4)
	assert.Len(t, layer.Holes, 3)
	assert.Len(t, layer.Items, 3)
	assert.InDelta(t, 12*CentimetersPerFoot, scene.Width, 1e-9)

	assert.Equal(t, "wall-bottom", layer.Holes["door-garage"].Line)
	assert.Equal(t, "wall-right", layer.Holes["door-exterior"].Line)
	assert.Contains(t, layer.Lines["wall-left"].Holes, "door-man")
	assert.Equal(t, []string{"wall-top", "wall-left"}, layer.Vertices["v0"].Lines)

	kiln := layer.Items["kiln-1"]
	assert.InDelta(t, 10.25*CentimetersPerFoot, kiln.X, 1e-9)
	assert.Equal(t, "kiln", kiln.Misc["role"])
}

func TestExportImportRoundTrip(t *testing.T) {
	space := models.NewSpace(14, 22, 6)
	plan := samplePlan()
	plan.Items[2].Rotation = 90
	plan.Items[0].EstimatedCost = "$1500-$4000"
	plan.Items[0].Brands = []string{"L&L", "Skutt", "Olympic"}
	plan.Items[0].Notes = "Needs a 240V outlet."
	plan.Items[0].Extra = map[string]json.RawMessage{"photo": json.RawMessage(`"kiln.jpg"`)}
	ordered := []models.Equipment{plan.Items[2], plan.Items[0], plan.Items[1]}

	data, err := json.Marshal(NewExporter().Export(space, ordered))
	require.NoError(t, err)

	var scene models.Scene
	require.NoError(t, json.Unmarshal(data, &scene))

	gotSpace, items, err := NewImporter().Import(&scene)
	require.NoError(t, err)

	assert.InDelta(t, 14, gotSpace.Width, 1e-9)
	assert.InDelta(t, 22, gotSpace.Depth, 1e-9)
	assert.InDelta(t, 6, gotSpace.ManDoorPosition, 1e-9)

	require.Len(t, items, 3)
	assert.Equal(t, []string{"wheel-2", "kiln-1", "sink-1"}, []string{items[0].ID, items[1].ID, items[2].ID})

	byID := map[string]models.Equipment{}
	for _, item := range items {
		byID[item.ID] = item
	}
	for _, want := range plan.Items {
		got := byID[want.ID]
		assert.Equal(t, want.Name, got.Name)
		assert.InDelta(t, want.X, got.X, 1e-9, want.ID)
		assert.InDelta(t, want.Y, got.Y, 1e-9, want.ID)
		assert.InDelta(t, want.Width, got.Width, 1e-9, want.ID)
		assert.Equal(t, want.Rotation, got.Rotation)
		assert.Equal(t, want.Purchased, got.Purchased)
		assert.Equal(t, want.Priority, got.Priority)
		assert.Equal(t, want.EffectiveRole(), got.EffectiveRole())
	}

	kiln := byID["kiln-1"]
	assert.Equal(t, "$1500-$4000", kiln.EstimatedCost)
	assert.Equal(t, []string{"L&L", "Skutt", "Olympic"}, kiln.Brands)
	assert.Equal(t, "Needs a 240V outlet.", kiln.Notes)
	assert.JSONEq(t, `"kiln.jpg"`, string(kiln.Extra["photo"]))
	assert.Equal(t, []string{}, byID["sink-1"].Brands)
}

func TestImportSortsItemsAndDefaults(t *testing.T) {
	scene := &models.Scene{
		Unit: "ft",
		Layers: map[string]models.Layer{"l": {
			Items: map[string]models.Item{
				"b": {ID: "b", Name: "B", X: 3, Y: 3},
				"a": {ID: "a", Name: "A", X: 5, Y: 5, Properties: map[string]any{"width": 4.0}},
			},
		}},
	}

	space, items, err := NewImporter().Import(scene)
	require.NoError(t, err)
	assert.Equal(t, models.DefaultSpace(), space)

	require.Len(t, items, 2)
	assert.Equal(t, "a", items[0].ID)
	assert.Equal(t, 4.0, items[0].Width)
	assert.Equal(t, 3.0, items[0].X)
	assert.Equal(t, "Other", items[1].Category)
	assert.Equal(t, models.PriorityOptional, items[1].Priority)
	assert.Equal(t, "$0", items[1].EstimatedCost)
	assert.Equal(t, []string{}, items[1].Brands)
}

func TestImportErrors(t *testing.T) {
	_, _, err := NewImporter().Import(nil)
	assert.Error(t, err)

	_, _, err = NewImporter().Import(&models.Scene{})
	assert.ErrorContains(t, err, "no layers")

	withItems := func(items map[string]models.Item) *models.Scene {
		return &models.Scene{Unit: "ft", Layers: map[string]models.Layer{"l": {Items: items}}}
	}

	_, _, err = NewImporter().Import(withItems(map[string]models.Item{
		"a": {ID: "wheel-1"},
		"b": {ID: "wheel-1"},
	}))
	assert.ErrorContains(t, err, `duplicate item id "wheel-1"`)

	_, _, err = NewImporter().Import(withItems(map[string]models.Item{"": {}}))
	assert.ErrorContains(t, err, "item without id")

	_, _, err = NewImporter().Import(withItems(map[string]models.Item{
		"a":     {ID: "b"},
		"b":     {},
		"other": {ID: "a"},
	}))
	assert.ErrorContains(t, err, "duplicate item id")
}

func TestImportNormalizesItems(t *testing.T) {
	scene := &models.Scene{
		Unit: "ft",
		Layers: map[string]models.Layer{"l": {
			Items: map[string]models.Item{
				"keyed":   {Name: "No id", X: 5, Y: 5},
				"flat":    {ID: "flat", Rotation: 100, Properties: map[string]any{"width": -3.0, "depth": 0.0}},
				"turned":  {ID: "turned", Rotation: -90},
				"wrapped": {ID: "wrapped", Rotation: 450},
			},
		}},
	}

	_, items, err := NewImporter().Import(scene)
	require.NoError(t, err)
	require.Len(t, items, 4)

	byID := map[string]models.Equipment{}
	for _, item := range items {
		byID[item.ID] = item
	}

	require.Contains(t, byID, "keyed")
	assert.Equal(t, "No id", byID["keyed"].Name)

	flat := byID["flat"]
	assert.Equal(t, 2.0, flat.Width)
	assert.Equal(t, 2.0, flat.Depth)
	assert.Equal(t, models.Rotation(90), flat.Rotation)
	assert.Equal(t, models.Rotation(270), byID["turned"].Rotation)
	assert.Equal(t, models.Rotation(90), byID["wrapped"].Rotation)
}
