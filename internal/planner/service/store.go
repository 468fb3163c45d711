// Package service owns the planner state: the equipment collection, the room
// configuration and the read-only views derived from them.
package service

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"sync"
	"time"

	"studio-planner/internal/common/metrics"
	"studio-planner/internal/planner/layout"
	"studio-planner/internal/planner/models"
	"studio-planner/internal/planner/repository"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// ErrUnknownEquipment is returned by lookups, never by mutations.
var ErrUnknownEquipment = errors.New("unknown equipment")

// Staging position for newly added items. It is not checked against the
// room or the other items.
const (
	StagingX = 1.0
	StagingY = 5.0
)

const writeTimeout = 5 * time.Second

// ============================================================
// Collection Store
// ============================================================

// Store is the ordered equipment collection and the only writer of its
// persisted form. Every mutation rewrites the whole collection.
type Store struct {
	mu    sync.RWMutex
	items []models.Equipment

	// writeMu orders mutations with their writes, so the last snapshot
	// stored is always the newest one.
	writeMu sync.Mutex

	kv     repository.Storage
	logger *log.Logger
	newID  func() string
	now    func() time.Time
}

func NewStore(kv repository.Storage, logger *log.Logger) *Store {
	return &Store{
		kv:     kv,
		logger: logger,
		newID:  func() string { return "custom-" + uuid.NewString() },
		now:    time.Now,
	}
}

// Load reads the persisted collection once. A missing key seeds the default
// studio; unreadable data is logged and replaced by the defaults as well.
func (s *Store) Load(ctx context.Context) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	return s.load(ctx)
}

func (s *Store) load(ctx context.Context) error {
	raw, err := s.kv.Get(ctx, KeyEquipment)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		s.replace(DefaultEquipment())
		s.logger.Info("[STORE] seeded default equipment", "items", len(s.items))
		s.persist()
		return nil
	case err != nil:
		return err
	}

	items, err := DecodeEquipment([]byte(raw))
	if err != nil {
		s.logger.Warn("[STORE] stored equipment unreadable, using defaults", "err", err)
		s.replace(DefaultEquipment())
		return nil
	}

	s.replace(items)
	s.logger.Debug("[STORE] loaded equipment", "items", len(items))
	return nil
}

func (s *Store) replace(items []models.Equipment) {
	s.mu.Lock()
	s.items = items
	s.mu.Unlock()
	metrics.Equipment.Set(float64(len(items)))
}

// All returns a copy of the collection in display order.
func (s *Store) All() []models.Equipment {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Equipment, len(s.items))
	for i, item := range s.items {
		out[i] = item.Clone()
	}
	return out
}

func (s *Store) Get(id string) (models.Equipment, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if i := s.index(id); i >= 0 {
		return s.items[i].Clone(), true
	}
	return models.Equipment{}, false
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

func (s *Store) index(id string) int {
	for i := range s.items {
		if s.items[i].ID == id {
			return i
		}
	}
	return -1
}

// NewEquipment is the user-supplied part of an item; identity, position and
// rotation are assigned by Add.
type NewEquipment struct {
	Name          string          `json:"name"`
	Category      string          `json:"category"`
	Width         float64         `json:"width"`
	Depth         float64         `json:"depth"`
	Purchased     bool            `json:"purchased"`
	Priority      models.Priority `json:"priority"`
	EstimatedCost string          `json:"estimatedCost"`
	Brands        []string        `json:"brands"`
	Notes         string          `json:"notes"`
	Role          models.Role     `json:"role,omitempty"`
}

// withDefaults fills the blanks the way the add form does.
func (n NewEquipment) withDefaults() NewEquipment {
	if n.Category == "" {
		n.Category = "Other"
	}
	if n.Width <= 0 {
		n.Width = 2
	}
	if n.Depth <= 0 {
		n.Depth = 2
	}
	if n.Priority == "" {
		n.Priority = models.PriorityOptional
	}
	if n.EstimatedCost == "" {
		n.EstimatedCost = "$0"
	}
	if n.Brands == nil {
		n.Brands = []string{}
	}
	return n
}

// Add appends a new item at the staging position and returns it.
func (s *Store) Add(n NewEquipment) models.Equipment {
	n = n.withDefaults()
	item := models.Equipment{
		ID:            s.newID(),
		Name:          n.Name,
		Category:      n.Category,
		Width:         n.Width,
		Depth:         n.Depth,
		X:             StagingX,
		Y:             StagingY,
		Purchased:     n.Purchased,
		Priority:      n.Priority,
		EstimatedCost: n.EstimatedCost,
		Brands:        append([]string(nil), n.Brands...),
		Notes:         n.Notes,
		Rotation:      0,
		Role:          n.Role,
	}

	s.write("add", item.ID, func() bool {
		s.mu.Lock()
		s.items = append(s.items, item)
		count := len(s.items)
		s.mu.Unlock()
		metrics.Equipment.Set(float64(count))
		return true
	})
	return item.Clone()
}

// Update merges patch into the item with id. Unknown ids are ignored.
func (s *Store) Update(id string, patch models.Patch) {
	s.write("update", id, func() bool {
		return s.mutate(id, func(item models.Equipment) models.Equipment { return patch.Apply(item) })
	})
}

// Remove deletes the item with id. Unknown ids are ignored.
func (s *Store) Remove(id string) {
	s.write("remove", id, func() bool {
		s.mu.Lock()
		i := s.index(id)
		if i < 0 {
			s.mu.Unlock()
			s.logger.Debug("[STORE] remove: no such item", "id", id)
			return false
		}
		s.items = append(s.items[:i:i], s.items[i+1:]...)
		count := len(s.items)
		s.mu.Unlock()

		metrics.Equipment.Set(float64(count))
		return true
	})
}

// TogglePurchased flips the purchased flag. Unknown ids are ignored.
func (s *Store) TogglePurchased(id string) {
	s.write("toggle_purchased", id, func() bool {
		return s.mutate(id, func(item models.Equipment) models.Equipment {
			item.Purchased = !item.Purchased
			return item
		})
	})
}

// Rotate turns the item a quarter; see layout.Rotate.
func (s *Store) Rotate(id string) {
	s.write("rotate", id, func() bool { return s.mutate(id, layout.Rotate) })
}

// Move displaces the item by (dx, dy) feet under the placement rules.
func (s *Store) Move(id string, dx, dy float64, space models.Space) {
	s.write("move", id, func() bool {
		return s.mutate(id, func(item models.Equipment) models.Equipment {
			return layout.Move(item, dx, dy, space)
		})
	})
}

// mutate replaces the item with fn(item) and reports whether it existed.
func (s *Store) mutate(id string, fn func(models.Equipment) models.Equipment) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.index(id)
	if i < 0 {
		s.logger.Debug("[STORE] mutation on unknown id ignored", "id", id)
		return false
	}
	s.items[i] = fn(s.items[i].Clone())
	return true
}

// Replace swaps the whole collection, e.g. after importing a scene.
func (s *Store) Replace(items []models.Equipment) {
	copied := make([]models.Equipment, len(items))
	for i, item := range items {
		copied[i] = item.Clone()
	}
	s.write("replace", "*", func() bool {
		s.replace(copied)
		return true
	})
}

// Reset drops the persisted collection and reseeds the defaults.
func (s *Store) Reset(ctx context.Context) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	if err := s.kv.Delete(ctx, KeyEquipment); err != nil {
		return err
	}
	return s.load(ctx)
}

// ============================================================
// Persistence
// ============================================================

// write runs fn and, when it changed the collection, persists the result
// before the next mutation may start.
func (s *Store) write(op, id string, fn func() bool) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	if !fn() {
		return
	}
	metrics.Mutations.WithLabelValues(op).Inc()
	s.logger.Debug("[STORE] "+op, "id", id)
	s.persist()
}

// persist writes the full collection. Callers hold writeMu. Failures are
// logged and dropped so the interaction that caused the write carries on.
func (s *Store) persist() {
	s.mu.RLock()
	data, err := EncodeEquipment(s.items)
	s.mu.RUnlock()
	if err != nil {
		s.logger.Error("[STORE] encode equipment", "err", err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()

	if err := s.kv.Set(ctx, KeyEquipment, string(data)); err != nil {
		metrics.PersistFailures.WithLabelValues(KeyEquipment).Inc()
		s.logger.Warn("[STORE] persist equipment failed", "err", err)
		return
	}
	stampSaved(ctx, s.kv, s.now(), s.logger)
}

func stampSaved(ctx context.Context, kv repository.Storage, now time.Time, logger *log.Logger) {
	if err := kv.Set(ctx, KeyLastSaved, strconv.FormatInt(now.UnixMilli(), 10)); err != nil {
		metrics.PersistFailures.WithLabelValues(KeyLastSaved).Inc()
		logger.Warn("[STORE] stamp last saved failed", "err", err)
	}
}

// EncodeEquipment serializes the collection as a JSON array.
func EncodeEquipment(items []models.Equipment) ([]byte, error) {
	if items == nil {
		items = []models.Equipment{}
	}
	return json.Marshal(items)
}

// DecodeEquipment parses a persisted collection. Records without a
// rotation come back at 0; other off-grid angles snap to a quarter turn.
func DecodeEquipment(data []byte) ([]models.Equipment, error) {
	var items []models.Equipment
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, err
	}
	if items == nil {
		items = []models.Equipment{}
	}
	for i := range items {
		if !items[i].Rotation.Valid() {
			items[i].Rotation = models.SnapRotation(float64(items[i].Rotation))
		}
	}
	return items, nil
}
