// Package app assembles the planner: storage, collection store, room and
// drag controller, loaded once at startup.
package app

import (
	"context"

	"studio-planner/internal/common/config"
	"studio-planner/internal/planner/drag"
	"studio-planner/internal/planner/repository"
	"studio-planner/internal/planner/service"

	"github.com/charmbracelet/log"
)

type Planner struct {
	KV     repository.Storage
	Store  *service.Store
	Room   *service.Room
	Bus    *drag.Bus
	Drag   *drag.Controller
	Logger *log.Logger
}

// Open connects the configured storage and loads the planner state.
func Open(ctx context.Context, cfg *config.Config, logger *log.Logger) (*Planner, error) {
	kv, err := repository.Open(ctx, cfg)
	if err != nil {
		return nil, err
	}

	p, err := New(ctx, kv, logger)
	if err != nil {
		kv.Close()
		return nil, err
	}
	logger.Info("[APP] planner loaded", "storage", cfg.Storage, "items", p.Store.Len())
	return p, nil
}

// New loads the planner state from an already open storage.
func New(ctx context.Context, kv repository.Storage, logger *log.Logger) (*Planner, error) {
	room := service.NewRoom(kv, logger)
	if err := room.Load(ctx); err != nil {
		return nil, err
	}

	store := service.NewStore(kv, logger)
	if err := store.Load(ctx); err != nil {
		return nil, err
	}

	bus := drag.NewBus()
	return &Planner{
		KV:     kv,
		Store:  store,
		Room:   room,
		Bus:    bus,
		Drag:   drag.NewController(store, room.Space, bus, logger),
		Logger: logger,
	}, nil
}

func (p *Planner) Close() error {
	p.Drag.End()
	return p.KV.Close()
}

// Reset ends any drag, wipes storage and reseeds the defaults.
func (p *Planner) Reset(ctx context.Context) error {
	p.Drag.End()
	if err := p.KV.Clear(ctx); err != nil {
		return err
	}
	if err := p.Room.Reset(ctx); err != nil {
		return err
	}
	return p.Store.Load(ctx)
}
