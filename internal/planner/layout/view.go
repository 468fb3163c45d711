package layout

import "studio-planner/internal/planner/models"

// Overlays selects which derived zones a view carries.
type Overlays struct {
	KilnClearance bool `json:"showKilnClearance"`
	KilnWall      bool `json:"showKilnWall"`
	Utilities     bool `json:"showUtilities"`
}

type ItemView struct {
	ID        string             `json:"id"`
	Name      string             `json:"name"`
	Category  string             `json:"category"`
	Priority  models.Priority    `json:"priority"`
	Purchased bool               `json:"purchased"`
	Rotation  models.Rotation    `json:"rotation"`
	Role      models.Role        `json:"role"`
	Feet      models.Rect        `json:"feet"`
	Rect      models.PercentRect `json:"rect"`
	Protrudes bool               `json:"protrudes"`
}

type ZoneView struct {
	Label string             `json:"label,omitempty"`
	Feet  models.Rect        `json:"feet"`
	Rect  models.PercentRect `json:"rect"`
}

type DoorView struct {
	models.Door
	Percent models.PercentRect `json:"percent"`
}

type MarkerView struct {
	Marker
	Percent models.Point `json:"percent"`
}

// View is everything the visual layer needs to draw the room.
type View struct {
	Space         models.Space `json:"space"`
	Items         []ItemView   `json:"items"`
	Doors         []DoorView   `json:"doors"`
	KilnClearance *ZoneView    `json:"kilnClearance,omitempty"`
	KilnEnclosure *ZoneView    `json:"kilnEnclosure,omitempty"`
	Markers       []MarkerView `json:"markers,omitempty"`
	Overlaps      []Overlap    `json:"overlaps,omitempty"`
}

func BuildView(space models.Space, items []models.Equipment, overlays Overlays) View {
	view := View{
		Space: space,
		Items: make([]ItemView, 0, len(items)),
	}

	for _, item := range items {
		view.Items = append(view.Items, ItemView{
			ID:        item.ID,
			Name:      item.Name,
			Category:  item.Category,
			Priority:  item.Priority,
			Purchased: item.Purchased,
			Rotation:  item.Rotation,
			Role:      item.EffectiveRole(),
			Feet:      item.Footprint(),
			Rect:      ProjectItem(item, space),
			Protrudes: OutOfBounds(item, space),
		})
	}

	for _, door := range Doors(space) {
		view.Doors = append(view.Doors, DoorView{Door: door, Percent: Project(door.Rect, space)})
	}

	kiln, hasKiln := Find(items, models.RoleKiln)
	if hasKiln && overlays.KilnClearance {
		zone := KilnClearanceZone(kiln)
		view.KilnClearance = &ZoneView{Label: "Kiln Safety Zone (18\")", Feet: zone, Rect: Project(zone, space)}
	}
	if hasKiln && overlays.KilnWall {
		zone := KilnEnclosure(kiln)
		view.KilnEnclosure = &ZoneView{
			Label: "Optional Fire-Rated Kiln Room (" + KilnEnclosureLabel(kiln) + ")",
			Feet:  zone,
			Rect:  Project(zone, space),
		}
	}

	if overlays.Utilities {
		for _, m := range UtilityMarkers(items) {
			view.Markers = append(view.Markers, MarkerView{Marker: m, Percent: ProjectPoint(m.Anchor, space)})
		}
	}

	view.Overlaps = Overlaps(items)
	return view
}
