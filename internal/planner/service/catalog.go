package service

import "studio-planner/internal/planner/models"

// DefaultEquipment is the starter layout for a 12' x 20' garage bay.
func DefaultEquipment() []models.Equipment {
	item := func(id, name, category string, w, d, x, y float64, p models.Priority, cost string, brands []string, notes string) models.Equipment {
		return models.Equipment{
			ID: id, Name: name, Category: category,
			Width: w, Depth: d, X: x, Y: y,
			Priority: p, EstimatedCost: cost, Brands: brands, Notes: notes,
		}
	}

	kiln := item("kiln-1", "Electric Kiln", "Kilns", 2.5, 2.5, 9, 1, models.PriorityEssential, "$1500-$4000",
		[]string{"L&L", "Skutt", "Olympic"},
		"Skutt KM-1027 (10 cu ft) is great for home studios. Needs 240V outlet. Keep 18\" clearance.")
	kiln.Role = models.RoleKiln

	sink := item("sink-1", "Clay Sink w/ Trap", "Plumbing", 2, 2, 10, 10, models.PriorityEssential, "$300-$800",
		[]string{"Plaster trap (DIY)", "Continental Clay", "Bluebird"},
		"MUST have sediment trap to prevent clay clogging plumbing. Never wash clay down regular drain.")
	sink.Role = models.RoleSink

	return []models.Equipment{
		item("wheel-1", "Pottery Wheel", "Wheels", 2, 2.5, 1.5, 16.5, models.PriorityEssential, "$800-$2000",
			[]string{"Shimpo", "Brent", "Speedball"},
			"Shimpo VL-Whisper is quiet and reliable. Brent Model C is industry standard."),
		item("wheel-2", "Pottery Wheel (Optional)", "Wheels", 2, 2.5, 4.5, 16.5, models.PriorityOptional, "$800-$2000",
			[]string{"Shimpo", "Brent", "Speedball"},
			"Second wheel if you plan to teach or work with others."),
		kiln,
		item("worktable-1", "Wedging/Work Table", "Work Surfaces", 3, 2.5, 5, 7, models.PriorityEssential, "$200-$600",
			[]string{"Custom/DIY", "Continental Clay", "Bailey"},
			"Canvas-covered plaster surface ideal for wedging. Counter height (36\")."),
		item("worktable-2", "Hand-building Table", "Work Surfaces", 4, 3, 1, 12.5, models.PriorityEssential, "$150-$400",
			[]string{"DIY", "IKEA (modified)", "Adjustable workbench"},
			"Sturdy table for slab building and handwork. 30-36\" height."),
		sink,
		item("shelving-1", "Greenware Drying Shelf #1", "Storage", 2, 1.5, 1, 1, models.PriorityEssential, "$150-$400",
			[]string{"Continental Clay", "Bailey", "Wire shelving (DIY)"},
			"For drying greenware. Needs good airflow between shelves. 4-6 shelves high."),
		item("shelving-2", "Greenware Drying Shelf #2", "Storage", 2, 1.5, 4, 1, models.PriorityRecommended, "$150-$400",
			[]string{"Continental Clay", "Bailey", "Wire shelving (DIY)"},
			"Additional drying space. You can never have too many drying shelves!"),
		item("shelving-3", "Glaze/Tool Storage", "Storage", 2, 1.5, 7, 1, models.PriorityRecommended, "$100-$300",
			[]string{"Wire shelving", "Gladiator garage system", "Husky"},
			"Store glazes, tools, and supplies. Keep organized and labeled."),
		item("shelving-4", "Finished Ware Storage", "Storage", 2, 1.5, 10, 5, models.PriorityRecommended, "$100-$300",
			[]string{"Wire shelving", "Metro shelving", "Gladiator"},
			"For storing bisque-fired and finished pieces. Keep separate from greenware."),
		item("clay-storage", "Clay Storage", "Storage", 2, 2, 10, 14.5, models.PriorityEssential, "$50-$200",
			[]string{"Rubbermaid containers", "Trash cans with lids"},
			"Keep clay moist. Airtight containers or lined trash cans work well. Store 100-200 lbs."),
		item("reclaim-station", "Clay Reclaim/Slop Buckets", "Clay Prep", 2, 2, 7.5, 14.5, models.PriorityRecommended, "$30-$100",
			[]string{"5-gallon buckets", "Rubbermaid", "Home Depot buckets"},
			"For clay scraps and throwing slurry. Let settle, pour off water, reclaim clay. Get 4-6 buckets."),
		item("pugmill", "Pug Mill (Optional)", "Clay Prep", 2, 3, 5.5, 14.5, models.PriorityOptional, "$1500-$3500",
			[]string{"Peter Pugger", "Venco", "Bluebird"},
			"For recycling clay. Not essential when starting out. Can wedge by hand."),
		item("bat-storage", "Bat & Board Rack", "Storage", 1.5, 1, 7.5, 16.5, models.PriorityRecommended, "$50-$150",
			[]string{"DIY wall-mounted", "Continental Clay"},
			"Wall-mounted or standing rack for wheel bats and drying boards. Essential for throwing."),
		item("tool-cart", "Rolling Tool Cart", "Storage", 1.5, 2, 1, 4, models.PriorityRecommended, "$100-$300",
			[]string{"Husky rolling cart", "IKEA Raskog", "Harbor Freight"},
			"Mobile storage for frequently used tools. Keep by your wheel/work area."),
	}
}
