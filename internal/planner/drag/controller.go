// Package drag turns pointer gestures into placement updates.
//
// The controller is a two-state machine, idle and dragging. A drag starts on
// pointer-down over an item, commits a store update on every pointer move and
// ends on pointer-up. Only one item can be dragged at a time.
package drag

import (
	"errors"
	"sync"

	"studio-planner/internal/common/metrics"
	"studio-planner/internal/planner/layout"
	"studio-planner/internal/planner/models"

	"github.com/charmbracelet/log"
)

var (
	// ErrBusy is returned when a drag starts while another is active.
	ErrBusy = errors.New("another item is being dragged")
	// ErrNotDragging is returned by Move when no drag is active.
	ErrNotDragging = errors.New("no drag in progress")
	// ErrUnknownItem is returned by Begin for an id the store does not hold.
	ErrUnknownItem = errors.New("unknown item")
)

// Pixels per foot by device class.
const (
	MobileScale      = 20.0
	DesktopScale     = 30.0
	MobileBreakpoint = 768.0
)

// ScaleForViewport picks the pixel-per-foot factor for a viewport width.
func ScaleForViewport(width float64) float64 {
	if width > 0 && width < MobileBreakpoint {
		return MobileScale
	}
	return DesktopScale
}

type State int

const (
	Idle State = iota
	Dragging
)

func (s State) String() string {
	if s == Dragging {
		return "dragging"
	}
	return "idle"
}

// Store is the part of the collection store the controller writes through.
type Store interface {
	Get(id string) (models.Equipment, bool)
	Update(id string, patch models.Patch)
}

// session is the state captured on pointer-down.
type session struct {
	itemID         string
	startX, startY float64
	initialX       float64
	initialY       float64
	scale          float64
	unsubscribe    func()
	lastX, lastY   float64
	moves          int
}

// Status is a snapshot of the controller.
type Status struct {
	State  string  `json:"state"`
	ItemID string  `json:"itemId,omitempty"`
	Scale  float64 `json:"scale,omitempty"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	Moves  int     `json:"moves,omitempty"`
}

// ============================================================
// Controller
// ============================================================

type Controller struct {
	mu      sync.Mutex
	store   Store
	space   func() models.Space
	bus     *Bus
	logger  *log.Logger
	active  *session
	hover   map[string]bool
	tooltip map[string]bool
}

// NewController wires the controller to a store and a room source. bus may
// be nil when pointer events are delivered by calling Move and End directly.
func NewController(store Store, space func() models.Space, bus *Bus, logger *log.Logger) *Controller {
	return &Controller{
		store:   store,
		space:   space,
		bus:     bus,
		logger:  logger,
		hover:   make(map[string]bool),
		tooltip: make(map[string]bool),
	}
}

func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.active != nil {
		return Dragging
	}
	return Idle
}

func (c *Controller) Status() Status {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.active == nil {
		return Status{State: Idle.String()}
	}
	return Status{
		State:  Dragging.String(),
		ItemID: c.active.itemID,
		Scale:  c.active.scale,
		X:      c.active.lastX,
		Y:      c.active.lastY,
		Moves:  c.active.moves,
	}
}

// Begin is pointer-down over item id at viewport pixel (px, py). scale is
// the pixel-per-foot factor in effect. A second Begin while dragging is
// rejected with ErrBusy and leaves the active drag untouched.
func (c *Controller) Begin(id string, px, py, scale float64) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.active != nil {
		metrics.DragEvents.WithLabelValues("rejected").Inc()
		c.logger.Debug("[DRAG] begin ignored, drag active", "id", id, "active", c.active.itemID)
		return ErrBusy
	}

	item, ok := c.store.Get(id)
	if !ok {
		return ErrUnknownItem
	}
	if scale <= 0 {
		scale = DesktopScale
	}

	s := &session{
		itemID:   id,
		startX:   px,
		startY:   py,
		initialX: item.X,
		initialY: item.Y,
		scale:    scale,
		lastX:    item.X,
		lastY:    item.Y,
	}
	if c.bus != nil {
		s.unsubscribe = c.bus.Subscribe(c.handle)
	}
	c.active = s

	metrics.DragEvents.WithLabelValues("begin").Inc()
	c.logger.Debug("[DRAG] begin", "id", id, "x", item.X, "y", item.Y, "scale", scale)
	return nil
}

// Move is a pointer sample while dragging. The delta from the captured start
// is converted to feet, placed and committed straight to the store.
func (c *Controller) Move(px, py float64) (models.Point, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.move(px, py)
}

func (c *Controller) move(px, py float64) (models.Point, error) {
	s := c.active
	if s == nil {
		return models.Point{}, ErrNotDragging
	}

	item, ok := c.store.Get(s.itemID)
	if !ok {
		// deleted mid-drag; nothing left to move
		c.logger.Debug("[DRAG] item vanished, ending drag", "id", s.itemID)
		c.end()
		return models.Point{}, ErrUnknownItem
	}

	dx := (px - s.startX) / s.scale
	dy := (py - s.startY) / s.scale
	p := layout.Place(item, s.initialX+dx, s.initialY+dy, c.space())

	c.store.Update(s.itemID, models.Position(p.X, p.Y))
	s.lastX, s.lastY = p.X, p.Y
	s.moves++
	metrics.DragEvents.WithLabelValues("move").Inc()
	return p, nil
}

// End is pointer-up. It reports whether a drag was active.
func (c *Controller) End() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.end()
}

func (c *Controller) end() bool {
	s := c.active
	if s == nil {
		return false
	}
	c.active = nil
	if s.unsubscribe != nil {
		s.unsubscribe()
	}
	metrics.DragEvents.WithLabelValues("end").Inc()
	c.logger.Debug("[DRAG] end", "id", s.itemID, "moves", s.moves, "x", s.lastX, "y", s.lastY)
	return true
}

// handle receives bus events while a drag is active.
func (c *Controller) handle(e Event) {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch e.Kind {
	case PointerMove:
		if _, err := c.move(e.X, e.Y); err != nil && !errors.Is(err, ErrNotDragging) {
			c.logger.Debug("[DRAG] move", "err", err)
		}
	case PointerUp:
		c.end()
	}
}

// ============================================================
// Hover & tooltip
// ============================================================

// SetHover toggles the contextual controls (rotate, delete) for an item.
func (c *Controller) SetHover(id string, on bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	setFlag(c.hover, id, on)
}

func (c *Controller) SetTooltip(id string, on bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	setFlag(c.tooltip, id, on)
}

func (c *Controller) Hovered(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.hover[id]
}

// TooltipVisible is false for the item being dragged.
func (c *Controller) TooltipVisible(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.active != nil && c.active.itemID == id {
		return false
	}
	return c.tooltip[id]
}

// Forget drops the flags of a deleted item.
func (c *Controller) Forget(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.hover, id)
	delete(c.tooltip, id)
}

func setFlag(m map[string]bool, id string, on bool) {
	if on {
		m[id] = true
		return
	}
	delete(m, id)
}
