package models

import (
	"encoding/json"
	"math"
	"sort"
)

// ============================================================
// Equipment
// ============================================================

type Priority string

const (
	PriorityEssential   Priority = "essential"
	PriorityRecommended Priority = "recommended"
	PriorityOptional    Priority = "optional"
)

// Role selects the placement and overlay rules that apply to an item.
type Role string

const (
	RoleGeneric Role = "generic"
	RoleKiln    Role = "kiln"
	RoleSink    Role = "sink"
)

// Legacy identities used by records saved before the role field existed.
const (
	LegacyKilnID = "kiln-1"
	LegacySinkID = "sink-1"
)

// Rotation in degrees, one of 0, 90, 180, 270.
type Rotation int

func (r Rotation) Quarter() bool {
	return r == 90 || r == 270
}

func (r Rotation) Valid() bool {
	return r == 0 || r == 90 || r == 180 || r == 270
}

// SnapRotation rounds an arbitrary angle to the nearest quarter turn in
// [0, 360).
func SnapRotation(deg float64) Rotation {
	if math.IsNaN(deg) || math.IsInf(deg, 0) {
		return 0
	}
	q := int(math.Round(deg/90)) % 4
	if q < 0 {
		q += 4
	}
	return Rotation(q * 90)
}

type Equipment struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Category      string   `json:"category"`
	Width         float64  `json:"width"`
	Depth         float64  `json:"depth"`
	X             float64  `json:"x"`
	Y             float64  `json:"y"`
	Purchased     bool     `json:"purchased"`
	Priority      Priority `json:"priority"`
	EstimatedCost string   `json:"estimatedCost"`
	Brands        []string `json:"brands"`
	Notes         string   `json:"notes"`
	Rotation      Rotation `json:"rotation"`
	Role          Role     `json:"role,omitempty"`

	// Extra keeps fields written by other versions of the app so a
	// load/save cycle does not drop them.
	Extra map[string]json.RawMessage `json:"-"`
}

// EffectiveRole resolves the role, falling back to the legacy id table.
func (e Equipment) EffectiveRole() Role {
	if e.Role != "" {
		return e.Role
	}
	switch e.ID {
	case LegacyKilnID:
		return RoleKiln
	case LegacySinkID:
		return RoleSink
	}
	return RoleGeneric
}

func (e Equipment) Footprint() Rect {
	return Rect{X: e.X, Y: e.Y, Width: e.Width, Height: e.Depth}
}

// Clone returns a copy that shares no slices or maps with e.
func (e Equipment) Clone() Equipment {
	out := e
	if e.Brands != nil {
		out.Brands = append([]string(nil), e.Brands...)
	}
	if e.Extra != nil {
		out.Extra = make(map[string]json.RawMessage, len(e.Extra))
		for k, v := range e.Extra {
			out.Extra[k] = append(json.RawMessage(nil), v...)
		}
	}
	return out
}

// ============================================================
// JSON
// ============================================================

type equipmentAlias Equipment

var knownFields = map[string]struct{}{
	"id": {}, "name": {}, "category": {}, "width": {}, "depth": {}, "x": {}, "y": {},
	"purchased": {}, "priority": {}, "estimatedCost": {}, "brands": {}, "notes": {},
	"rotation": {}, "role": {},
}

func (e *Equipment) UnmarshalJSON(data []byte) error {
	var alias equipmentAlias
	if err := json.Unmarshal(data, &alias); err != nil {
		return err
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	for key, value := range raw {
		if _, ok := knownFields[key]; ok {
			continue
		}
		if alias.Extra == nil {
			alias.Extra = make(map[string]json.RawMessage)
		}
		alias.Extra[key] = value
	}

	*e = Equipment(alias)
	return nil
}

func (e Equipment) MarshalJSON() ([]byte, error) {
	data, err := json.Marshal(equipmentAlias(e))
	if err != nil || len(e.Extra) == 0 {
		return data, err
	}

	var merged map[string]json.RawMessage
	if err := json.Unmarshal(data, &merged); err != nil {
		return nil, err
	}
	keys := make([]string, 0, len(e.Extra))
	for k := range e.Extra {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if _, known := knownFields[k]; known {
			continue
		}
		merged[k] = e.Extra[k]
	}
	return json.Marshal(merged)
}

// ============================================================
// Partial updates
// ============================================================

// Patch carries the fields of an update; nil fields are left untouched.
type Patch struct {
	Name          *string   `json:"name,omitempty"`
	Category      *string   `json:"category,omitempty"`
	Width         *float64  `json:"width,omitempty"`
	Depth         *float64  `json:"depth,omitempty"`
	X             *float64  `json:"x,omitempty"`
	Y             *float64  `json:"y,omitempty"`
	Purchased     *bool     `json:"purchased,omitempty"`
	Priority      *Priority `json:"priority,omitempty"`
	EstimatedCost *string   `json:"estimatedCost,omitempty"`
	Brands        []string  `json:"brands,omitempty"`
	Notes         *string   `json:"notes,omitempty"`
	Rotation      *Rotation `json:"rotation,omitempty"`
	Role          *Role     `json:"role,omitempty"`
}

func (p Patch) Empty() bool {
	return p.Name == nil && p.Category == nil && p.Width == nil && p.Depth == nil &&
		p.X == nil && p.Y == nil && p.Purchased == nil && p.Priority == nil &&
		p.EstimatedCost == nil && p.Brands == nil && p.Notes == nil &&
		p.Rotation == nil && p.Role == nil
}

// Apply merges p into e and returns the result.
func (p Patch) Apply(e Equipment) Equipment {
	out := e.Clone()
	if p.Name != nil {
		out.Name = *p.Name
	}
	if p.Category != nil {
		out.Category = *p.Category
	}
	if p.Width != nil {
		out.Width = *p.Width
	}
	if p.Depth != nil {
		out.Depth = *p.Depth
	}
	if p.X != nil {
		out.X = *p.X
	}
	if p.Y != nil {
		out.Y = *p.Y
	}
	if p.Purchased != nil {
		out.Purchased = *p.Purchased
	}
	if p.Priority != nil {
		out.Priority = *p.Priority
	}
	if p.EstimatedCost != nil {
		out.EstimatedCost = *p.EstimatedCost
	}
	if p.Brands != nil {
		out.Brands = append([]string(nil), p.Brands...)
	}
	if p.Notes != nil {
		out.Notes = *p.Notes
	}
	if p.Rotation != nil {
		out.Rotation = *p.Rotation
	}
	if p.Role != nil {
		out.Role = *p.Role
	}
	return out
}

// Position builds a patch that only moves an item.
func Position(x, y float64) Patch {
	return Patch{X: &x, Y: &y}
}
