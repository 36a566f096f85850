package manifest

import (
	"errors"

	"loadout-manager/core/destiny"
	"loadout-manager/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for manifest definitions.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the manifest routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/manifest")
	group.Get("/", h.HandleInfo)
	group.Post("/reload", h.HandleReload)
	group.Get("/:component/:hash", h.HandleDefinition)
}

// HandleInfo returns the resident manifest summary.
// @Summary Manifest Info
// @Description Returns the version of the resident manifest and the entry count of every loaded component. Initialises the manifest on first use.
// @Tags manifest
// @Produce json
// @Success 200 {object} Info "Manifest summary"
// @Failure 502 {object} map[string]string "Remote unavailable"
// @Router /manifest [get]
func (h *Handler) HandleInfo(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	info, err := h.service.Info(c.Context())
	if err != nil {
		return h.fail(c, l, err)
	}
	return c.JSON(info)
}

// HandleReload re-initialises the manifest.
// @Summary Reload Manifest
// @Description Drops the resident manifest and initialises it again against the current remote version.
// @Tags manifest
// @Produce json
// @Success 200 {object} Info "Manifest summary"
// @Failure 502 {object} map[string]string "Remote unavailable"
// @Router /manifest/reload [post]
func (h *Handler) HandleReload(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	info, err := h.service.Reload(c.Context())
	if err != nil {
		return h.fail(c, l, err)
	}
	l.Info("Manifest reloaded", zap.String("version", info.Version))
	return c.JSON(info)
}

// HandleDefinition returns one raw definition.
// @Summary Get Definition
// @Tags manifest
// @Produce json
// @Param component path string true "Component name, e.g. DestinyInventoryItemDefinition"
// @Param hash path string true "Content hash"
// @Success 200 {object} map[string]interface{} "Definition"
// @Failure 400 {object} map[string]string "Invalid hash"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /manifest/{component}/{hash} [get]
func (h *Handler) HandleDefinition(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	raw, err := h.service.Definition(c.Context(), c.Params("component"), c.Params("hash"))
	if err != nil {
		return h.fail(c, l, err)
	}
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.Send(raw)
}

func (h *Handler) fail(c *fiber.Ctx, l *zap.Logger, err error) error {
	var status int
	switch {
	case errors.Is(err, ErrInvalidHash):
		status = fiber.StatusBadRequest
	case errors.Is(err, ErrComponentNotLoaded), errors.Is(err, ErrDefinitionNotFound):
		status = fiber.StatusNotFound
	case errors.Is(err, destiny.ErrRemoteUnavailable):
		status = fiber.StatusBadGateway
		l.Error("Manifest unavailable", zap.Error(err))
	default:
		status = fiber.StatusInternalServerError
		l.Error("Manifest request failed", zap.Error(err))
	}
	return c.Status(status).JSON(fiber.Map{
		"error": err.Error(),
	})
}
