package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"studio-planner/internal/common/logging"
	"studio-planner/internal/planner/models"
	"studio-planner/internal/planner/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errDiskFull = errors.New("quota exceeded")

// failingStorage reads from an inner store but rejects every write.
type failingStorage struct {
	repository.Storage
	writes int
}

func (f *failingStorage) Set(context.Context, string, string) error {
	f.writes++
	return errDiskFull
}

// gatedStorage holds the first equipment write until release is closed.
type gatedStorage struct {
	repository.Storage
	once    sync.Once
	entered chan struct{}
	release chan struct{}
}

func newGatedStorage() *gatedStorage {
	return &gatedStorage{
		Storage: repository.NewMemory(),
		entered: make(chan struct{}),
		release: make(chan struct{}),
	}
}

func (g *gatedStorage) Set(ctx context.Context, key, value string) error {
	if key == KeyEquipment {
		first := false
		g.once.Do(func() { first = true })
		if first {
			close(g.entered)
			<-g.release
		}
	}
	return g.Storage.Set(ctx, key, value)
}

func newTestStore(t *testing.T, kv repository.Storage) *Store {
	t.Helper()
	s := NewStore(kv, logging.Discard())
	n := 0
	s.newID = func() string {
		n++
		return fmt.Sprintf("custom-%d", n)
	}
	s.now = func() time.Time { return time.UnixMilli(1_700_000_000_000) }
	require.NoError(t, s.Load(context.Background()))
	return s
}

func stored(t *testing.T, kv repository.Storage) string {
	t.Helper()
	raw, err := kv.Get(context.Background(), KeyEquipment)
	require.NoError(t, err)
	return raw
}

func TestLoadSeedsDefaults(t *testing.T) {
	kv := repository.NewMemory()
	s := newTestStore(t, kv)

	assert.Equal(t, len(DefaultEquipment()), s.Len())

	items, err := DecodeEquipment([]byte(stored(t, kv)))
	require.NoError(t, err)
	assert.Equal(t, s.All(), items)

	saved, err := kv.Get(context.Background(), KeyLastSaved)
	require.NoError(t, err)
	assert.Equal(t, "1700000000000", saved)
}

func TestLoadReadsPersisted(t *testing.T) {
	kv := repository.NewMemory()
	require.NoError(t, kv.Set(context.Background(), KeyEquipment,
		`[{"id":"wheel-1","name":"Pottery Wheel","width":2,"depth":2.5,"x":1.5,"y":16.5}]`))

	s := newTestStore(t, kv)
	require.Equal(t, 1, s.Len())
	item, ok := s.Get("wheel-1")
	require.True(t, ok)
	assert.Equal(t, models.Rotation(0), item.Rotation)
}

func TestLoadCorruptFallsBackToDefaults(t *testing.T) {
	kv := repository.NewMemory()
	require.NoError(t, kv.Set(context.Background(), KeyEquipment, `{not json`))

	s := newTestStore(t, kv)
	assert.Equal(t, len(DefaultEquipment()), s.Len())
	assert.Equal(t, `{not json`, stored(t, kv), "bad data is only replaced on the next mutation")
}

func TestAdd(t *testing.T) {
	kv := repository.NewMemory()
	s := newTestStore(t, kv)
	before := s.Len()

	item := s.Add(NewEquipment{Name: "Slab Roller", Width: 3, Depth: 4})

	assert.Equal(t, "custom-1", item.ID)
	assert.Equal(t, StagingX, item.X)
	assert.Equal(t, StagingY, item.Y)
	assert.Equal(t, models.Rotation(0), item.Rotation)
	assert.Equal(t, "Other", item.Category)
	assert.Equal(t, models.PriorityOptional, item.Priority)
	assert.Equal(t, "$0", item.EstimatedCost)
	assert.NotNil(t, item.Brands)

	all := s.All()
	require.Len(t, all, before+1)
	assert.Equal(t, item, all[len(all)-1])
	assert.Contains(t, stored(t, kv), `"custom-1"`)
}

func TestAddDefaultsSize(t *testing.T) {
	s := newTestStore(t, repository.NewMemory())
	item := s.Add(NewEquipment{Name: "Thing"})
	assert.Equal(t, 2.0, item.Width)
	assert.Equal(t, 2.0, item.Depth)
}

func TestUpdate(t *testing.T) {
	kv := repository.NewMemory()
	s := newTestStore(t, kv)

	notes := "moved to the corner"
	s.Update("wheel-1", models.Patch{Notes: &notes})

	item, ok := s.Get("wheel-1")
	require.True(t, ok)
	assert.Equal(t, notes, item.Notes)
	assert.Contains(t, stored(t, kv), notes)
}

func TestUpdateUnknownIDIsNoop(t *testing.T) {
	kv := repository.NewMemory()
	s := newTestStore(t, kv)
	require.NoError(t, kv.Set(context.Background(), KeyLastSaved, "1"))

	before := stored(t, kv)
	beforeItems := s.All()

	name := "ghost"
	s.Update("nope", models.Patch{Name: &name})
	s.TogglePurchased("nope")
	s.Rotate("nope")
	s.Move("nope", 1, 1, models.DefaultSpace())
	s.Remove("nope")

	assert.Equal(t, before, stored(t, kv))
	assert.Equal(t, beforeItems, s.All())

	saved, err := kv.Get(context.Background(), KeyLastSaved)
	require.NoError(t, err)
	assert.Equal(t, "1", saved, "no write happened")
}

func TestRemove(t *testing.T) {
	s := newTestStore(t, repository.NewMemory())
	before := s.Len()

	s.Remove("pugmill")

	assert.Equal(t, before-1, s.Len())
	_, ok := s.Get("pugmill")
	assert.False(t, ok)
}

func TestTogglePurchased(t *testing.T) {
	s := newTestStore(t, repository.NewMemory())

	s.TogglePurchased("kiln-1")
	kiln, _ := s.Get("kiln-1")
	assert.True(t, kiln.Purchased)

	s.TogglePurchased("kiln-1")
	kiln, _ = s.Get("kiln-1")
	assert.False(t, kiln.Purchased)
}

func TestRotateAndMove(t *testing.T) {
	s := newTestStore(t, repository.NewMemory())

	s.Rotate("wheel-1")
	wheel, _ := s.Get("wheel-1")
	assert.Equal(t, models.Rotation(90), wheel.Rotation)
	assert.Equal(t, 2.5, wheel.Width)
	assert.Equal(t, 2.0, wheel.Depth)

	s.Move("sink-1", -50, 3, models.DefaultSpace())
	sink, _ := s.Get("sink-1")
	assert.Equal(t, 10.0, sink.X)
	assert.Equal(t, 13.0, sink.Y)
}

func TestReplace(t *testing.T) {
	kv := repository.NewMemory()
	s := newTestStore(t, kv)

	s.Replace([]models.Equipment{{ID: "only", Name: "Only", Width: 1, Depth: 1}})
	assert.Equal(t, 1, s.Len())

	items, err := DecodeEquipment([]byte(stored(t, kv)))
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "only", items[0].ID)
}

func TestReset(t *testing.T) {
	s := newTestStore(t, repository.NewMemory())
	s.Remove("kiln-1")

	require.NoError(t, s.Reset(context.Background()))
	_, ok := s.Get("kiln-1")
	assert.True(t, ok)
}

func TestWriteFailureIsSwallowed(t *testing.T) {
	kv := &failingStorage{Storage: repository.NewMemory()}
	s := newTestStore(t, kv)

	assert.NotPanics(t, func() {
		s.Add(NewEquipment{Name: "Stool"})
		s.TogglePurchased("kiln-1")
	})
	assert.Equal(t, len(DefaultEquipment())+1, s.Len())
	assert.Positive(t, kv.writes)
}

func TestAllReturnsCopies(t *testing.T) {
	s := newTestStore(t, repository.NewMemory())

	items := s.All()
	items[0].Name = "changed"
	items[0].Brands[0] = "changed"

	first := s.All()[0]
	assert.NotEqual(t, "changed", first.Name)
	assert.NotEqual(t, "changed", first.Brands[0])
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	items := DefaultEquipment()
	items[0].Rotation = 270
	items[1].Purchased = true

	data, err := EncodeEquipment(items)
	require.NoError(t, err)
	out, err := DecodeEquipment(data)
	require.NoError(t, err)
	assert.Equal(t, items, out)

	data, err = EncodeEquipment(nil)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
}

func TestConcurrentMutationsPersistNewestSnapshot(t *testing.T) {
	seed, err := EncodeEquipment(DefaultEquipment())
	require.NoError(t, err)
	kv := newGatedStorage()
	require.NoError(t, kv.Storage.Set(context.Background(), KeyEquipment, string(seed)))
	s := newTestStore(t, kv)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		s.TogglePurchased("wheel-1")
	}()
	<-kv.entered
	go func() {
		defer wg.Done()
		s.Remove("kiln-1")
	}()
	time.Sleep(20 * time.Millisecond)
	close(kv.release)
	wg.Wait()

	items, err := DecodeEquipment([]byte(stored(t, kv)))
	require.NoError(t, err)
	assert.Equal(t, s.All(), items)
	assert.Len(t, items, len(DefaultEquipment())-1)
}

func TestDecodeSnapsRotation(t *testing.T) {
	items, err := DecodeEquipment([]byte(`[{"id":"a","rotation":45},{"id":"b","rotation":-90},{"id":"c","rotation":270}]`))
	require.NoError(t, err)

	assert.Equal(t, models.Rotation(90), items[0].Rotation)
	assert.Equal(t, models.Rotation(270), items[1].Rotation)
	assert.Equal(t, models.Rotation(270), items[2].Rotation)
}
