package layout

import (
	"testing"

	"studio-planner/internal/planner/models"

	"github.com/stretchr/testify/assert"
)

func TestPercent(t *testing.T) {
	assert.Equal(t, 50.0, Percent(6, 12))
	assert.Equal(t, 0.0, Percent(6, 0))
	assert.InDelta(t, 12.5, Percent(2.5, 20), 1e-9)
}

func TestProjectItem(t *testing.T) {
	item := models.Equipment{X: 1.5, Y: 16.5, Width: 2, Depth: 2.5}
	r := ProjectItem(item, room())

	assert.InDelta(t, 12.5, r.Left, 1e-9)
	assert.InDelta(t, 82.5, r.Top, 1e-9)
	assert.InDelta(t, 16.6667, r.Width, 1e-4)
	assert.InDelta(t, 12.5, r.Height, 1e-9)
}

func TestProjectPoint(t *testing.T) {
	p := ProjectPoint(models.Point{X: 3, Y: 5}, room())
	assert.Equal(t, models.Point{X: 25, Y: 25}, p)
}

func TestProjectionStaysAlignedWithZones(t *testing.T) {
	kiln := models.Equipment{ID: "kiln-1", X: 9, Y: 1, Width: 2.5, Depth: 2.5}
	item := ProjectItem(kiln, room())
	zone := Project(KilnClearanceZone(kiln), room())

	assert.InDelta(t, item.Left-Percent(KilnClearance, 12), zone.Left, 1e-9)
	assert.InDelta(t, item.Top-Percent(KilnClearance, 20), zone.Top, 1e-9)
}
