package service

import (
	"testing"

	"studio-planner/internal/planner/models"

	"github.com/stretchr/testify/assert"
)

func TestSuggestKnown(t *testing.T) {
	est, ok := Suggest("Bailey Slab Roller")
	assert.True(t, ok)
	assert.Equal(t, "Clay Prep", est.Category)
	assert.Equal(t, 3.0, est.Width)
	assert.Equal(t, 4.0, est.Depth)

	est, ok = Suggest("  GLAZE MIXER ")
	assert.True(t, ok)
	assert.Equal(t, models.PriorityRecommended, est.Priority)
}

func TestSuggestFirstRuleWins(t *testing.T) {
	// "stool" is listed before "tools"
	est, ok := Suggest("tall stool")
	assert.True(t, ok)
	assert.Equal(t, "Seating", est.Category)
}

func TestSuggestFallbacks(t *testing.T) {
	est, ok := Suggest("mystery box")
	assert.False(t, ok)
	assert.Equal(t, 2.0, est.Width)
	assert.Equal(t, "$100-$300", est.EstimatedCost)

	est, _ = Suggest("Large crate")
	assert.Equal(t, 4.0, est.Width)
	assert.Equal(t, 3.0, est.Depth)

	est, _ = Suggest("mini crate")
	assert.Equal(t, 1.0, est.Width)
	assert.Equal(t, "$20-$100", est.EstimatedCost)
}

func TestSuggestReturnsFreshBrands(t *testing.T) {
	est, _ := Suggest("extruder")
	est.Brands[0] = "changed"

	again, _ := Suggest("extruder")
	assert.Equal(t, "Kemper", again.Brands[0])
}

func TestEstimateAsNew(t *testing.T) {
	est, _ := Suggest("banding wheel")
	n := est.AsNew("Banding Wheel")

	assert.Equal(t, "Banding Wheel", n.Name)
	assert.Equal(t, est.Width, n.Width)
	assert.Equal(t, est.Brands, n.Brands)
}
