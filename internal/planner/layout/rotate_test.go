package layout

import (
	"testing"

	"studio-planner/internal/planner/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRotateOnce(t *testing.T) {
	item := models.Equipment{ID: "wheel-1", Width: 2, Depth: 2.5, X: 1.5, Y: 16.5}

	out := Rotate(item)
	assert.Equal(t, models.Rotation(90), out.Rotation)
	assert.Equal(t, 2.5, out.Width)
	assert.Equal(t, 2.0, out.Depth)
	assert.Equal(t, 1.5, out.X)
	assert.Equal(t, 16.5, out.Y)
}

func TestRotateSequence(t *testing.T) {
	item := models.Equipment{Width: 2, Depth: 3}

	steps := []struct {
		rotation     models.Rotation
		width, depth float64
	}{
		{90, 3, 2},
		{180, 3, 2},
		{270, 2, 3},
		{0, 2, 3},
	}
	for _, step := range steps {
		item = Rotate(item)
		require.Equal(t, step.rotation, item.Rotation)
		assert.Equal(t, step.width, item.Width, "width at %d", step.rotation)
		assert.Equal(t, step.depth, item.Depth, "depth at %d", step.rotation)
	}
}

func TestRotateFourTimesRoundTrips(t *testing.T) {
	for _, start := range []models.Rotation{0, 90, 180, 270} {
		item := models.Equipment{Width: 1.5, Depth: 4, Rotation: start}
		out := item
		for i := 0; i < 4; i++ {
			out = Rotate(out)
		}
		assert.Equal(t, item.Rotation, out.Rotation)
		assert.Equal(t, item.Width, out.Width)
		assert.Equal(t, item.Depth, out.Depth)
	}
}

func TestRotateAllowsProtrusion(t *testing.T) {
	item := models.Equipment{X: 9.5, Y: 1, Width: 2, Depth: 4}
	require.False(t, OutOfBounds(item, room()))

	out := Rotate(item)
	assert.Equal(t, 9.5, out.X)
	assert.True(t, OutOfBounds(out, room()))
}

func TestRotationPatch(t *testing.T) {
	item := models.Equipment{ID: "a", Width: 2, Depth: 3, Rotation: 90}

	patch := RotationPatch(item)
	require.NotNil(t, patch.Rotation)
	assert.Equal(t, models.Rotation(180), *patch.Rotation)
	assert.Nil(t, patch.Width)

	assert.Equal(t, Rotate(item), patch.Apply(item))

	item.Rotation = 0
	patch = RotationPatch(item)
	require.NotNil(t, patch.Width)
	assert.Equal(t, 3.0, *patch.Width)
}
