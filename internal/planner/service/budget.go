package service

import (
	"strconv"
	"strings"
	"unicode"

	"studio-planner/internal/planner/models"
)

// ============================================================
// Budget
// ============================================================

type Budget struct {
	// Remaining is the estimated spend on items not yet purchased.
	Remaining        float64 `json:"remaining"`
	EssentialPending int     `json:"essentialPending"`
	Purchased        int     `json:"purchased"`
	Total            int     `json:"total"`
}

func Summarize(items []models.Equipment) Budget {
	b := Budget{Total: len(items)}
	for _, item := range items {
		if item.Purchased {
			b.Purchased++
			continue
		}
		b.Remaining += CostMidpoint(item.EstimatedCost)
		if item.Priority == models.PriorityEssential {
			b.EssentialPending++
		}
	}
	return b
}

// CostMidpoint reads a range like "$800-$2000" as the sum of its parts over
// two. A single amount is halved too; that is how the figures have always
// been totalled. Parts without leading digits count as zero.
func CostMidpoint(cost string) float64 {
	cost = strings.ReplaceAll(cost, "$", "")
	var sum float64
	for _, part := range strings.Split(cost, "-") {
		sum += leadingInt(part)
	}
	return sum / 2
}

func leadingInt(s string) float64 {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0
	}
	v, err := strconv.ParseFloat(s[:end], 64)
	if err != nil {
		return 0
	}
	return v
}

// ============================================================
// Grouping
// ============================================================

type Group struct {
	Category string             `json:"category"`
	Items    []models.Equipment `json:"items"`
}

// GroupByCategory keeps categories in first-seen order.
func GroupByCategory(items []models.Equipment) []Group {
	var groups []Group
	index := map[string]int{}
	for _, item := range items {
		i, ok := index[item.Category]
		if !ok {
			i = len(groups)
			index[item.Category] = i
			groups = append(groups, Group{Category: item.Category})
		}
		groups[i].Items = append(groups[i].Items, item)
	}
	return groups
}
