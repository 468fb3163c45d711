package models

// ============================================================
// Layout Space
// ============================================================

const (
	DefaultRoomWidth       = 12.0
	DefaultRoomDepth       = 20.0
	DefaultManDoorPosition = 8.0

	// Doors are 3 ft wide; thickness is only used for drawing.
	DoorWidth     = 3.0
	DoorThickness = 0.5

	// ExteriorDoorPosition is the fixed offset of the exterior door along the right wall.
	ExteriorDoorPosition = 16.0
)

// Space is the room. Dimensions are in feet and are not validated against
// the items placed inside it.
type Space struct {
	Width           float64 `json:"width"`
	Depth           float64 `json:"depth"`
	ManDoorPosition float64 `json:"manDoorPosition"`
}

func NewSpace(width, depth, manDoorPosition float64) Space {
	return Space{Width: width, Depth: depth, ManDoorPosition: manDoorPosition}
}

func DefaultSpace() Space {
	return NewSpace(DefaultRoomWidth, DefaultRoomDepth, DefaultManDoorPosition)
}

func (s Space) Bounds() Rect {
	return Rect{Width: s.Width, Height: s.Depth}
}

// ============================================================
// Architectural features
// ============================================================

type Wall string

const (
	WallTop    Wall = "top"
	WallRight  Wall = "right"
	WallBottom Wall = "bottom"
	WallLeft   Wall = "left"
)

type DoorKind string

const (
	DoorGarage   DoorKind = "garage"
	DoorMan      DoorKind = "man"
	DoorExterior DoorKind = "exterior"
)

type Door struct {
	Kind  DoorKind `json:"kind"`
	Label string   `json:"label"`
	Wall  Wall     `json:"wall"`
	// Offset along the wall, feet.
	Offset float64 `json:"offset"`
	Width  float64 `json:"width"`
	Rect   Rect    `json:"rect"`
}

// ============================================================
// Geometry primitives
// ============================================================

type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Rect is an axis-aligned rectangle in feet, top-left anchored.
type Rect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

func (r Rect) Right() float64  { return r.X + r.Width }
func (r Rect) Bottom() float64 { return r.Y + r.Height }

func (r Rect) Center() Point {
	return Point{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// Inflate grows r by d on every side.
func (r Rect) Inflate(d float64) Rect {
	return Rect{X: r.X - d, Y: r.Y - d, Width: r.Width + 2*d, Height: r.Height + 2*d}
}

// Intersects reports whether r and o share a region of positive area.
func (r Rect) Intersects(o Rect) bool {
	return r.X < o.Right() && o.X < r.Right() && r.Y < o.Bottom() && o.Y < r.Bottom()
}

// Contains reports whether o lies fully inside r.
func (r Rect) Contains(o Rect) bool {
	return o.X >= r.X && o.Y >= r.Y && o.Right() <= r.Right() && o.Bottom() <= r.Bottom()
}

// PercentRect is a rectangle expressed as percentages of the room bounds.
type PercentRect struct {
	Left   float64 `json:"left"`
	Top    float64 `json:"top"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}
