package service

import (
	"context"
	"testing"
	"time"

	"studio-planner/internal/common/logging"
	"studio-planner/internal/planner/layout"
	"studio-planner/internal/planner/models"
	"studio-planner/internal/planner/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadRoom(t *testing.T, kv repository.Storage) *Room {
	t.Helper()
	r := NewRoom(kv, logging.Discard())
	r.now = func() time.Time { return time.UnixMilli(42) }
	require.NoError(t, r.Load(context.Background()))
	return r
}

func TestRoomDefaults(t *testing.T) {
	r := loadRoom(t, repository.NewMemory())

	assert.Equal(t, DefaultRoomConfig(), r.Config())
	assert.Equal(t, models.NewSpace(12, 20, 8), r.Space())
	assert.Equal(t, layout.Overlays{KilnClearance: true}, r.Config().Overlays())
}

func TestRoomLoadFallbacks(t *testing.T) {
	kv := repository.NewMemory()
	ctx := context.Background()
	require.NoError(t, kv.Set(ctx, KeyWidth, "14.5"))
	require.NoError(t, kv.Set(ctx, KeyDepth, "abc"))
	require.NoError(t, kv.Set(ctx, KeyDoorPosition, "NaN"))
	require.NoError(t, kv.Set(ctx, KeyShowUtilities, "true"))
	require.NoError(t, kv.Set(ctx, KeyShowKilnClearance, "yes"))
	require.NoError(t, kv.Set(ctx, KeyShowKilnWall, "false"))

	cfg := loadRoom(t, kv).Config()
	assert.Equal(t, 14.5, cfg.Width)
	assert.Equal(t, 20.0, cfg.Depth)
	assert.Equal(t, 8.0, cfg.ManDoorPosition)
	assert.True(t, cfg.ShowUtilities)
	assert.True(t, cfg.ShowKilnClearance, "unparseable flag keeps its default")
	assert.False(t, cfg.ShowKilnWall)
}

func TestRoomRejectsNonPositiveDimensions(t *testing.T) {
	kv := repository.NewMemory()
	ctx := context.Background()
	require.NoError(t, kv.Set(ctx, KeyWidth, "0"))
	require.NoError(t, kv.Set(ctx, KeyDepth, "-4"))

	cfg := loadRoom(t, kv).Config()
	assert.Equal(t, 12.0, cfg.Width)
	assert.Equal(t, 20.0, cfg.Depth)
}

func TestRoomApplyWritesChangedKeys(t *testing.T) {
	kv := repository.NewMemory()
	r := loadRoom(t, kv)
	ctx := context.Background()

	width := 16.0
	wall := true
	cfg := r.Apply(RoomPatch{Width: &width, ShowKilnWall: &wall})

	assert.Equal(t, 16.0, cfg.Width)
	assert.True(t, cfg.ShowKilnWall)

	v, err := kv.Get(ctx, KeyWidth)
	require.NoError(t, err)
	assert.Equal(t, "16", v)
	v, err = kv.Get(ctx, KeyShowKilnWall)
	require.NoError(t, err)
	assert.Equal(t, "true", v)
	_, err = kv.Get(ctx, KeyDepth)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	assert.Equal(t, cfg, loadRoom(t, kv).Config())
}

func TestRoomApplyEmptyPatchWritesNothing(t *testing.T) {
	kv := repository.NewMemory()
	r := loadRoom(t, kv)

	r.Apply(RoomPatch{})
	assert.Equal(t, 0, kv.Len())
}

func TestRoomReset(t *testing.T) {
	kv := repository.NewMemory()
	r := loadRoom(t, kv)

	depth := 30.0
	r.Apply(RoomPatch{Depth: &depth})
	require.NoError(t, r.Reset(context.Background()))

	assert.Equal(t, DefaultRoomConfig(), r.Config())
	_, err := kv.Get(context.Background(), KeyDepth)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestParseNumber(t *testing.T) {
	for raw, want := range map[string]float64{"12": 12, " 7.5 ": 7.5, "-3": -3, "1e1": 10} {
		v, ok := ParseNumber(raw)
		assert.True(t, ok, raw)
		assert.Equal(t, want, v, raw)
	}
	for _, raw := range []string{"", "abc", "NaN", "Inf", "12ft"} {
		_, ok := ParseNumber(raw)
		assert.False(t, ok, raw)
	}
	assert.Equal(t, "12.5", FormatNumber(12.5))
	assert.Equal(t, "20", FormatNumber(20))
}
