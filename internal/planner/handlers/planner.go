package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"studio-planner/internal/planner/app"
	"studio-planner/internal/planner/drag"
	"studio-planner/internal/planner/layout"
	"studio-planner/internal/planner/mapper"
	"studio-planner/internal/planner/models"
	"studio-planner/internal/planner/repository"
	"studio-planner/internal/planner/service"

	"github.com/charmbracelet/log"
	"github.com/gofiber/fiber/v3"
)

// ============================================================
// Planner Handler
// ============================================================

type PlannerHandler struct {
	planner  *app.Planner
	store    *service.Store
	room     *service.Room
	drag     *drag.Controller
	kv       repository.Storage
	renderer *mapper.Renderer
	exporter *mapper.Exporter
	importer *mapper.Importer
	logger   *log.Logger
	now      func() time.Time
}

func NewPlannerHandler(p *app.Planner) *PlannerHandler {
	return &PlannerHandler{
		planner:  p,
		store:    p.Store,
		room:     p.Room,
		drag:     p.Drag,
		kv:       p.KV,
		renderer: mapper.NewRenderer(),
		exporter: mapper.NewExporter(),
		importer: mapper.NewImporter(),
		logger:   p.Logger,
		now:      time.Now,
	}
}

// Register mounts the planner routes on r.
func (h *PlannerHandler) Register(r fiber.Router) {
	r.Get("/equipment", h.ListEquipment)
	r.Post("/equipment", h.AddEquipment)
	r.Get("/equipment/:id", h.GetEquipment)
	r.Patch("/equipment/:id", h.UpdateEquipment)
	r.Delete("/equipment/:id", h.RemoveEquipment)
	r.Post("/equipment/:id/purchased", h.TogglePurchased)
	r.Post("/equipment/:id/rotate", h.RotateEquipment)
	r.Post("/equipment/:id/move", h.MoveEquipment)
	r.Put("/equipment/:id/hover", h.SetHover)
	r.Put("/equipment/:id/tooltip", h.SetTooltip)

	r.Get("/drag", h.DragStatus)
	r.Post("/drag/start", h.DragStart)
	r.Post("/drag/move", h.DragMove)
	r.Post("/drag/end", h.DragEnd)

	r.Get("/room", h.GetRoom)
	r.Put("/room", h.UpdateRoom)
	r.Get("/layout", h.Layout)
	r.Get("/budget", h.Budget)
	r.Get("/suggest", h.Suggest)
	r.Get("/render.svg", h.RenderSVG)
	r.Get("/scene", h.ExportScene)
	r.Post("/scene", h.ImportScene)
	r.Post("/reset", h.Reset)
}

// ============================================================
// Equipment
// ============================================================

// ListEquipment returns the collection, grouped by category with ?grouped=true.
func (h *PlannerHandler) ListEquipment(c fiber.Ctx) error {
	items := h.store.All()
	if c.Query("grouped") == "true" {
		return c.JSON(service.GroupByCategory(items))
	}
	return c.JSON(items)
}

func (h *PlannerHandler) GetEquipment(c fiber.Ctx) error {
	item, ok := h.store.Get(c.Params("id"))
	if !ok {
		return errorJSON(c, http.StatusNotFound, service.ErrUnknownEquipment.Error())
	}
	return c.JSON(item)
}

func (h *PlannerHandler) AddEquipment(c fiber.Ctx) error {
	var req service.NewEquipment
	if err := decode(c, &req); err != nil {
		return errorJSON(c, http.StatusBadRequest, "invalid json")
	}
	if req.Name == "" {
		return errorJSON(c, http.StatusBadRequest, "name required")
	}

	item := h.store.Add(req)
	h.logger.Info("[PLANNER] equipment added", "id", item.ID, "name", item.Name)
	return c.Status(http.StatusCreated).JSON(item)
}

// UpdateEquipment merges the body into the item. An unknown id is a no-op
// answered with 204.
func (h *PlannerHandler) UpdateEquipment(c fiber.Ctx) error {
	var patch models.Patch
	if err := decode(c, &patch); err != nil {
		return errorJSON(c, http.StatusBadRequest, "invalid json")
	}
	if (patch.Width != nil && *patch.Width <= 0) || (patch.Depth != nil && *patch.Depth <= 0) {
		return errorJSON(c, http.StatusBadRequest, "width and depth must be positive")
	}
	if patch.Rotation != nil && !patch.Rotation.Valid() {
		return errorJSON(c, http.StatusBadRequest, "rotation must be 0, 90, 180 or 270")
	}

	id := c.Params("id")
	h.store.Update(id, patch)
	return h.respondItem(c, id)
}

func (h *PlannerHandler) RemoveEquipment(c fiber.Ctx) error {
	id := c.Params("id")
	h.store.Remove(id)
	h.drag.Forget(id)
	return c.SendStatus(http.StatusNoContent)
}

func (h *PlannerHandler) TogglePurchased(c fiber.Ctx) error {
	id := c.Params("id")
	h.store.TogglePurchased(id)
	return h.respondItem(c, id)
}

func (h *PlannerHandler) RotateEquipment(c fiber.Ctx) error {
	id := c.Params("id")
	h.store.Rotate(id)
	return h.respondItem(c, id)
}

type moveRequest struct {
	DX float64 `json:"dx"`
	DY float64 `json:"dy"`
}

// MoveEquipment applies a displacement in feet under the placement rules.
func (h *PlannerHandler) MoveEquipment(c fiber.Ctx) error {
	var req moveRequest
	if err := decode(c, &req); err != nil {
		return errorJSON(c, http.StatusBadRequest, "invalid json")
	}
	id := c.Params("id")
	h.store.Move(id, req.DX, req.DY, h.room.Space())
	return h.respondItem(c, id)
}

type flagRequest struct {
	On bool `json:"on"`
}

func (h *PlannerHandler) SetHover(c fiber.Ctx) error {
	var req flagRequest
	if err := decode(c, &req); err != nil {
		return errorJSON(c, http.StatusBadRequest, "invalid json")
	}
	h.drag.SetHover(c.Params("id"), req.On)
	return c.SendStatus(http.StatusNoContent)
}

func (h *PlannerHandler) SetTooltip(c fiber.Ctx) error {
	var req flagRequest
	if err := decode(c, &req); err != nil {
		return errorJSON(c, http.StatusBadRequest, "invalid json")
	}
	h.drag.SetTooltip(c.Params("id"), req.On)
	return c.SendStatus(http.StatusNoContent)
}

func (h *PlannerHandler) respondItem(c fiber.Ctx, id string) error {
	item, ok := h.store.Get(id)
	if !ok {
		return c.SendStatus(http.StatusNoContent)
	}
	return c.JSON(item)
}

// ============================================================
// Drag
// ============================================================

type dragStartRequest struct {
	ID            string  `json:"id"`
	X             float64 `json:"x"`
	Y             float64 `json:"y"`
	ViewportWidth float64 `json:"viewportWidth"`
}

type pointerRequest struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func (h *PlannerHandler) DragStatus(c fiber.Ctx) error {
	return c.JSON(h.drag.Status())
}

func (h *PlannerHandler) DragStart(c fiber.Ctx) error {
	var req dragStartRequest
	if err := decode(c, &req); err != nil {
		return errorJSON(c, http.StatusBadRequest, "invalid json")
	}

	err := h.drag.Begin(req.ID, req.X, req.Y, drag.ScaleForViewport(req.ViewportWidth))
	switch err {
	case nil:
		return c.JSON(h.drag.Status())
	case drag.ErrBusy:
		return errorJSON(c, http.StatusConflict, err.Error())
	case drag.ErrUnknownItem:
		return errorJSON(c, http.StatusNotFound, err.Error())
	default:
		return errorJSON(c, http.StatusInternalServerError, err.Error())
	}
}

func (h *PlannerHandler) DragMove(c fiber.Ctx) error {
	var req pointerRequest
	if err := decode(c, &req); err != nil {
		return errorJSON(c, http.StatusBadRequest, "invalid json")
	}

	p, err := h.drag.Move(req.X, req.Y)
	switch err {
	case nil:
		return c.JSON(p)
	case drag.ErrNotDragging:
		return errorJSON(c, http.StatusConflict, err.Error())
	case drag.ErrUnknownItem:
		return errorJSON(c, http.StatusNotFound, err.Error())
	default:
		return errorJSON(c, http.StatusInternalServerError, err.Error())
	}
}

func (h *PlannerHandler) DragEnd(c fiber.Ctx) error {
	return c.JSON(fiber.Map{"ended": h.drag.End()})
}

// ============================================================
// Room & views
// ============================================================

func (h *PlannerHandler) GetRoom(c fiber.Ctx) error {
	return c.JSON(h.room.Config())
}

func (h *PlannerHandler) UpdateRoom(c fiber.Ctx) error {
	var patch service.RoomPatch
	if err := decode(c, &patch); err != nil {
		return errorJSON(c, http.StatusBadRequest, "invalid json")
	}
	if (patch.Width != nil && *patch.Width <= 0) || (patch.Depth != nil && *patch.Depth <= 0) {
		return errorJSON(c, http.StatusBadRequest, "room dimensions must be positive")
	}
	return c.JSON(h.room.Apply(patch))
}

type itemInteraction struct {
	ID       string `json:"id"`
	Hover    bool   `json:"hover"`
	Tooltip  bool   `json:"tooltip"`
	Dragging bool   `json:"dragging"`
}

type layoutResponse struct {
	layout.View
	Interaction []itemInteraction `json:"interaction"`
	Drag        drag.Status       `json:"drag"`
}

// Layout returns the projected room, items and overlays.
func (h *PlannerHandler) Layout(c fiber.Ctx) error {
	cfg := h.room.Config()
	items := h.store.All()
	status := h.drag.Status()

	resp := layoutResponse{
		View: layout.BuildView(cfg.Space(), items, cfg.Overlays()),
		Drag: status,
	}
	for _, item := range items {
		resp.Interaction = append(resp.Interaction, itemInteraction{
			ID:       item.ID,
			Hover:    h.drag.Hovered(item.ID),
			Tooltip:  h.drag.TooltipVisible(item.ID),
			Dragging: status.ItemID == item.ID,
		})
	}
	return c.JSON(resp)
}

type budgetResponse struct {
	service.Budget
	LastSaved string `json:"lastSaved"`
}

func (h *PlannerHandler) Budget(c fiber.Ctx) error {
	return c.JSON(budgetResponse{
		Budget:    service.Summarize(h.store.All()),
		LastSaved: service.LastSaved(c.Context(), h.kv, h.now()),
	})
}

func (h *PlannerHandler) Suggest(c fiber.Ctx) error {
	name := c.Query("name")
	if name == "" {
		return errorJSON(c, http.StatusBadRequest, "name required")
	}
	est, known := service.Suggest(name)
	return c.JSON(fiber.Map{"estimate": est, "known": known})
}

// RenderSVG draws the plan; ?viewport= picks the device scale.
func (h *PlannerHandler) RenderSVG(c fiber.Ctx) error {
	cfg := h.room.Config()
	viewport := fiber.Query[float64](c, "viewport", 0)

	svg, err := h.renderer.Render(mapper.Plan{
		Space:    cfg.Space(),
		Items:    h.store.All(),
		Overlays: cfg.Overlays(),
		Scale:    drag.ScaleForViewport(viewport),
	})
	if err != nil {
		h.logger.Error("[RENDER] render failed", "err", err)
		return errorJSON(c, http.StatusInternalServerError, err.Error())
	}

	c.Set("Content-Type", "image/svg+xml")
	return c.SendString(svg)
}

func (h *PlannerHandler) ExportScene(c fiber.Ctx) error {
	return c.JSON(h.exporter.Export(h.room.Space(), h.store.All()))
}

// ImportScene replaces the room size and the collection with a scene's content.
func (h *PlannerHandler) ImportScene(c fiber.Ctx) error {
	if len(c.Body()) == 0 {
		return errorJSON(c, http.StatusBadRequest, "body required")
	}

	var scene models.Scene
	if err := json.Unmarshal(c.Body(), &scene); err != nil {
		return errorJSON(c, http.StatusBadRequest, "invalid JSON payload")
	}

	space, items, err := h.importer.Import(&scene)
	if err != nil {
		return errorJSON(c, http.StatusBadRequest, err.Error())
	}

	h.drag.End()
	h.room.Apply(service.RoomPatch{Width: &space.Width, Depth: &space.Depth, ManDoorPosition: &space.ManDoorPosition})
	h.store.Replace(items)
	h.logger.Info("[PLANNER] scene imported", "items", len(items))
	return c.JSON(h.store.All())
}

// Reset clears all persisted planner data and reseeds the defaults.
func (h *PlannerHandler) Reset(c fiber.Ctx) error {
	if err := h.planner.Reset(c.Context()); err != nil {
		h.logger.Error("[PLANNER] reset failed", "err", err)
		return errorJSON(c, http.StatusInternalServerError, "reset failed")
	}
	return c.JSON(h.store.All())
}

// ============================================================
// Helpers
// ============================================================

func decode(c fiber.Ctx, v any) error {
	if len(c.Body()) == 0 {
		return nil
	}
	return json.Unmarshal(c.Body(), v)
}

func errorJSON(c fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(fiber.Map{"error": msg})
}
