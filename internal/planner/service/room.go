package service

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"strconv"
	"strings"
	"sync"
	"time"

	"studio-planner/internal/common/metrics"
	"studio-planner/internal/planner/layout"
	"studio-planner/internal/planner/models"
	"studio-planner/internal/planner/repository"

	"github.com/charmbracelet/log"
)

// ============================================================
// Room configuration
// ============================================================

type RoomConfig struct {
	Width             float64 `json:"width"`
	Depth             float64 `json:"depth"`
	ManDoorPosition   float64 `json:"manDoorPosition"`
	ShowUtilities     bool    `json:"showUtilities"`
	ShowKilnClearance bool    `json:"showKilnClearance"`
	ShowKilnWall      bool    `json:"showKilnWall"`
}

func DefaultRoomConfig() RoomConfig {
	return RoomConfig{
		Width:             models.DefaultRoomWidth,
		Depth:             models.DefaultRoomDepth,
		ManDoorPosition:   models.DefaultManDoorPosition,
		ShowUtilities:     false,
		ShowKilnClearance: true,
		ShowKilnWall:      false,
	}
}

func (c RoomConfig) Space() models.Space {
	return models.NewSpace(c.Width, c.Depth, c.ManDoorPosition)
}

func (c RoomConfig) Overlays() layout.Overlays {
	return layout.Overlays{
		KilnClearance: c.ShowKilnClearance,
		KilnWall:      c.ShowKilnWall,
		Utilities:     c.ShowUtilities,
	}
}

// RoomPatch updates a subset of the room keys.
type RoomPatch struct {
	Width             *float64 `json:"width,omitempty"`
	Depth             *float64 `json:"depth,omitempty"`
	ManDoorPosition   *float64 `json:"manDoorPosition,omitempty"`
	ShowUtilities     *bool    `json:"showUtilities,omitempty"`
	ShowKilnClearance *bool    `json:"showKilnClearance,omitempty"`
	ShowKilnWall      *bool    `json:"showKilnWall,omitempty"`
}

// Room caches the room configuration. Each key is stored and parsed on its
// own, so one bad value only resets that value.
type Room struct {
	mu      sync.RWMutex
	writeMu sync.Mutex
	cfg     RoomConfig
	kv      repository.Storage
	logger  *log.Logger
	now     func() time.Time
}

func NewRoom(kv repository.Storage, logger *log.Logger) *Room {
	return &Room{cfg: DefaultRoomConfig(), kv: kv, logger: logger, now: time.Now}
}

func (r *Room) Load(ctx context.Context) error {
	def := DefaultRoomConfig()
	cfg := RoomConfig{
		Width:             r.readDimension(ctx, KeyWidth, def.Width),
		Depth:             r.readDimension(ctx, KeyDepth, def.Depth),
		ManDoorPosition:   r.readNumber(ctx, KeyDoorPosition, def.ManDoorPosition),
		ShowUtilities:     r.readBool(ctx, KeyShowUtilities, def.ShowUtilities),
		ShowKilnClearance: r.readBool(ctx, KeyShowKilnClearance, def.ShowKilnClearance),
		ShowKilnWall:      r.readBool(ctx, KeyShowKilnWall, def.ShowKilnWall),
	}

	r.mu.Lock()
	r.cfg = cfg
	r.mu.Unlock()
	return nil
}

func (r *Room) Config() RoomConfig {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.cfg
}

func (r *Room) Space() models.Space {
	return r.Config().Space()
}

// Apply updates the cached config and writes only the changed keys.
func (r *Room) Apply(patch RoomPatch) RoomConfig {
	r.writeMu.Lock()
	defer r.writeMu.Unlock()

	r.mu.Lock()
	cfg := r.cfg
	writes := map[string]string{}

	if patch.Width != nil {
		cfg.Width = *patch.Width
		writes[KeyWidth] = FormatNumber(cfg.Width)
	}
	if patch.Depth != nil {
		cfg.Depth = *patch.Depth
		writes[KeyDepth] = FormatNumber(cfg.Depth)
	}
	if patch.ManDoorPosition != nil {
		cfg.ManDoorPosition = *patch.ManDoorPosition
		writes[KeyDoorPosition] = FormatNumber(cfg.ManDoorPosition)
	}
	if patch.ShowUtilities != nil {
		cfg.ShowUtilities = *patch.ShowUtilities
		writes[KeyShowUtilities] = strconv.FormatBool(cfg.ShowUtilities)
	}
	if patch.ShowKilnClearance != nil {
		cfg.ShowKilnClearance = *patch.ShowKilnClearance
		writes[KeyShowKilnClearance] = strconv.FormatBool(cfg.ShowKilnClearance)
	}
	if patch.ShowKilnWall != nil {
		cfg.ShowKilnWall = *patch.ShowKilnWall
		writes[KeyShowKilnWall] = strconv.FormatBool(cfg.ShowKilnWall)
	}
	r.cfg = cfg
	r.mu.Unlock()

	if len(writes) == 0 {
		return cfg
	}

	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()
	for key, value := range writes {
		if err := r.kv.Set(ctx, key, value); err != nil {
			metrics.PersistFailures.WithLabelValues(key).Inc()
			r.logger.Warn("[ROOM] persist failed", "key", key, "err", err)
		}
	}
	stampSaved(ctx, r.kv, r.now(), r.logger)
	return cfg
}

// Reset removes every room key and returns to the defaults.
func (r *Room) Reset(ctx context.Context) error {
	for _, key := range []string{KeyWidth, KeyDepth, KeyDoorPosition, KeyShowUtilities, KeyShowKilnClearance, KeyShowKilnWall} {
		if err := r.kv.Delete(ctx, key); err != nil {
			return err
		}
	}
	r.mu.Lock()
	r.cfg = DefaultRoomConfig()
	r.mu.Unlock()
	return nil
}

// ============================================================
// Parsing
// ============================================================

func (r *Room) read(ctx context.Context, key string) (string, bool) {
	raw, err := r.kv.Get(ctx, key)
	if errors.Is(err, repository.ErrNotFound) {
		return "", false
	}
	if err != nil {
		r.logger.Warn("[ROOM] read failed, using default", "key", key, "err", err)
		return "", false
	}
	return raw, raw != ""
}

func (r *Room) readNumber(ctx context.Context, key string, def float64) float64 {
	raw, ok := r.read(ctx, key)
	if !ok {
		return def
	}
	v, ok := ParseNumber(raw)
	if !ok {
		r.logger.Warn("[ROOM] invalid number, using default", "key", key, "value", raw)
		return def
	}
	return v
}

// readDimension additionally rejects zero and negative room sizes.
func (r *Room) readDimension(ctx context.Context, key string, def float64) float64 {
	v := r.readNumber(ctx, key, def)
	if v <= 0 {
		r.logger.Warn("[ROOM] non-positive dimension, using default", "key", key, "value", v)
		return def
	}
	return v
}

func (r *Room) readBool(ctx context.Context, key string, def bool) bool {
	raw, ok := r.read(ctx, key)
	if !ok {
		return def
	}
	var v bool
	if err := json.Unmarshal([]byte(strings.TrimSpace(raw)), &v); err != nil {
		r.logger.Warn("[ROOM] invalid flag, using default", "key", key, "value", raw)
		return def
	}
	return v
}

// ParseNumber accepts a finite decimal number.
func ParseNumber(raw string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
