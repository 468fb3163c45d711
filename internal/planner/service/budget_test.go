package service

import (
	"testing"

	"studio-planner/internal/planner/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCostMidpoint(t *testing.T) {
	cases := map[string]float64{
		"$800-$2000": 1400,
		"$300-$800":  550,
		"$0":         0,
		"$150":       75,
		"":           0,
		"call us":    0,
		"$1,500":     0.5,
	}
	for cost, want := range cases {
		assert.Equal(t, want, CostMidpoint(cost), cost)
	}
}

func TestSummarize(t *testing.T) {
	items := []models.Equipment{
		{ID: "a", Priority: models.PriorityEssential, EstimatedCost: "$100-$300"},
		{ID: "b", Priority: models.PriorityEssential, EstimatedCost: "$1000-$3000", Purchased: true},
		{ID: "c", Priority: models.PriorityOptional, EstimatedCost: "$50-$150"},
	}

	b := Summarize(items)
	assert.Equal(t, Budget{Remaining: 300, EssentialPending: 1, Purchased: 1, Total: 3}, b)
}

func TestSummarizeDefaults(t *testing.T) {
	b := Summarize(DefaultEquipment())
	assert.Equal(t, len(DefaultEquipment()), b.Total)
	assert.Zero(t, b.Purchased)
	assert.Positive(t, b.Remaining)
}

func TestGroupByCategory(t *testing.T) {
	items := []models.Equipment{
		{ID: "1", Category: "Wheels"},
		{ID: "2", Category: "Kilns"},
		{ID: "3", Category: "Wheels"},
	}

	groups := GroupByCategory(items)
	require.Len(t, groups, 2)
	assert.Equal(t, "Wheels", groups[0].Category)
	assert.Len(t, groups[0].Items, 2)
	assert.Equal(t, "3", groups[0].Items[1].ID)
	assert.Equal(t, "Kilns", groups[1].Category)
}
