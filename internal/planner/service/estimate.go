package service

import (
	"strings"

	"studio-planner/internal/planner/models"
)

// ============================================================
// Estimate suggestions
// ============================================================

// Estimate prefills the add form from an equipment name.
type Estimate struct {
	Category      string          `json:"category"`
	Width         float64         `json:"width"`
	Depth         float64         `json:"depth"`
	Priority      models.Priority `json:"priority"`
	EstimatedCost string          `json:"estimatedCost"`
	Brands        []string        `json:"brands"`
	Notes         string          `json:"notes"`
}

// AsNew turns the estimate into an add request for name.
func (e Estimate) AsNew(name string) NewEquipment {
	return NewEquipment{
		Name:          name,
		Category:      e.Category,
		Width:         e.Width,
		Depth:         e.Depth,
		Priority:      e.Priority,
		EstimatedCost: e.EstimatedCost,
		Brands:        append([]string(nil), e.Brands...),
		Notes:         e.Notes,
	}
}

type estimateRule struct {
	keywords []string
	estimate Estimate
}

// Rules are tried in order; the first keyword hit wins.
var estimateRules = []estimateRule{
	{[]string{"slab roller"}, Estimate{"Clay Prep", 3, 4, models.PriorityRecommended, "$400-$1200",
		[]string{"Bailey", "Northstar", "Brent"},
		"Manual slab rollers are $400-$600. Motorized models $800-$1200. Great for consistent slab thickness. Table-top models available."}},
	{[]string{"stool"}, Estimate{"Seating", 1.5, 1.5, models.PriorityRecommended, "$50-$150",
		[]string{"Speedball", "Continental Clay", "Adjustable shop stool"},
		"Adjustable height stools work best. Look for easy-clean vinyl seats. Get one per wheel plus extras for hand-building."}},
	{[]string{"extruder"}, Estimate{"Clay Prep", 1.5, 2, models.PriorityOptional, "$150-$500",
		[]string{"Kemper", "Bailey", "Scott Creek"},
		"Wall-mounted or table-mounted. Great for handles, coils, and decorative elements. Includes multiple dies."}},
	{[]string{"glaze mixer", "mixer"}, Estimate{"Storage", 1, 1, models.PriorityRecommended, "$50-$200",
		[]string{"Jiffy Mixer", "DeWalt drill with mixer paddle"},
		"Drill-powered mixer attachment works well. Essential for keeping glazes in suspension. Get multiple paddles."}},
	{[]string{"spray booth"}, Estimate{"Other", 3, 3, models.PriorityOptional, "$300-$1500",
		[]string{"Paasche", "Continental Clay", "DIY build"},
		"Necessary for spray glazing. Requires ventilation to exterior. Can build DIY with box fan and furnace filters."}},
	{[]string{"work bench", "workbench"}, Estimate{"Work Surfaces", 4, 2.5, models.PriorityRecommended, "$150-$400",
		[]string{"DIY", "Husky", "Gladiator"},
		"Sturdy construction essential. Easy-clean surface. Counter height (36\") or adjustable. Add casters for mobility."}},
	{[]string{"ware cart", "ware rack"}, Estimate{"Storage", 2, 3, models.PriorityRecommended, "$200-$500",
		[]string{"Bailey", "Continental Clay", "Metro wire shelving"},
		"Rolling cart for moving greenware safely. Multiple shelf levels. Consider one for greenware, one for bisque."}},
	{[]string{"drying cabinet"}, Estimate{"Storage", 2.5, 2, models.PriorityOptional, "$400-$900",
		[]string{"DIY with dehumidifier", "Commercial pottery suppliers"},
		"Controlled drying prevents cracking. Can DIY with shelving unit and dehumidifier. Great for large or thick pieces."}},
	{[]string{"banding wheel", "turntable"}, Estimate{"Work Surfaces", 1, 1, models.PriorityRecommended, "$30-$150",
		[]string{"Speedball", "Brent", "Shimpo"},
		"Essential for hand-building and decorating. Ball-bearing models spin smoothest. Get multiple sizes."}},
	{[]string{"kiln furniture", "shelves"}, Estimate{"Kilns", 2, 2, models.PriorityEssential, "$200-$600",
		[]string{"L&L", "Advancer", "Continental Clay"},
		"Shelves, posts, stilts for kiln stacking. Buy specific to your kiln size. Get extras - they crack over time."}},
	{[]string{"wedging table"}, Estimate{"Work Surfaces", 2.5, 2, models.PriorityEssential, "$200-$500",
		[]string{"DIY plaster/canvas top", "Bailey", "Continental Clay"},
		"Plaster top with canvas cover ideal. Counter height (36\"). Can DIY with concrete/plaster and wooden frame."}},
	{[]string{"heat gun", "torch"}, Estimate{"Other", 0.5, 0.5, models.PriorityOptional, "$20-$80",
		[]string{"DeWalt", "Milwaukee", "Wagner"},
		"Useful for drying joints, smoothing surfaces, and warming clay. Heat guns safer than torches in studio."}},
	{[]string{"scale"}, Estimate{"Other", 1, 1, models.PriorityRecommended, "$20-$100",
		[]string{"Escali", "Ohaus", "digital kitchen scale"},
		"Essential for accurate glaze mixing. Get one that weighs up to 10-20 lbs. Digital with tare function."}},
	{[]string{"chair"}, Estimate{"Seating", 2, 2, models.PriorityOptional, "$50-$200",
		[]string{"Office chair", "shop chair"},
		"For hand-building or teaching. Look for easy-clean materials. Adjustable height helpful."}},
	{[]string{"fan", "ventilation"}, Estimate{"Other", 1.5, 1.5, models.PriorityRecommended, "$50-$200",
		[]string{"Shop fan", "box fan", "exhaust fan"},
		"Good ventilation essential for clay dust and kiln fumes. Consider ceiling-mounted or window exhaust fan."}},
	{[]string{"tool kit", "tools"}, Estimate{"Storage", 1, 1, models.PriorityEssential, "$50-$200",
		[]string{"Kemper", "Xiem", "Mudtools", "Speedball"},
		"Basic kit: ribs, needle tool, wire tool, sponges, trimming tools. Build collection over time."}},
	{[]string{"apron"}, Estimate{"Other", 0.5, 0.5, models.PriorityRecommended, "$20-$60",
		[]string{"Canvas apron", "leather apron"},
		"Heavy canvas or leather. Cross-back style reduces neck strain. Get multiple for washing rotation."}},
}

const genericEstimateNote = "Estimated from the name. Please verify dimensions and pricing for your specific needs."

// Suggest returns an estimate for name and whether a known item matched.
func Suggest(name string) (Estimate, bool) {
	lower := strings.ToLower(strings.TrimSpace(name))

	for _, rule := range estimateRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				est := rule.estimate
				est.Brands = append([]string(nil), est.Brands...)
				return est, true
			}
		}
	}

	est := Estimate{
		Category:      "Other",
		Width:         2,
		Depth:         2,
		Priority:      models.PriorityOptional,
		EstimatedCost: "$100-$300",
		Brands:        []string{"Various"},
		Notes:         genericEstimateNote,
	}
	switch {
	case strings.Contains(lower, "large"), strings.Contains(lower, "big"):
		est.Width, est.Depth, est.EstimatedCost = 4, 3, "$300-$800"
	case strings.Contains(lower, "small"), strings.Contains(lower, "mini"):
		est.Width, est.Depth, est.EstimatedCost = 1, 1, "$20-$100"
	}
	return est, false
}
