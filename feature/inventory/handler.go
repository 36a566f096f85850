package inventory

import (
	"errors"
	"strconv"
	"strings"

	"loadout-manager/core/destiny"
	"loadout-manager/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"golang.org/x/oauth2"
)

// Handler handles HTTP requests for inventories.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// LoadSummary is the response of a successful load.
type LoadSummary struct {
	MembershipType int    `json:"membership_type"`
	MembershipID   string `json:"membership_id"`
	Items          int    `json:"items"`
}

// RegisterRoutes registers the inventory routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/inventory/:membershipType/:membershipId")
	group.Post("/load", h.HandleLoad)
	group.Get("/items", h.HandleLookupItems)
	group.Get("/items/:instanceId", h.HandleGetItem)
	group.Get("/items/:instanceId/mods", h.HandleGetMods)
	group.Get("/subclasses/:class", h.HandleGetSubclasses)
}

// HandleLoad fetches and assembles the account inventory.
// @Summary Load Inventory
// @Description Fetch the account snapshot from Bungie.net and assemble the inventory. The Authorization bearer token is forwarded.
// @Tags inventory
// @Produce json
// @Param membershipType path int true "Membership type"
// @Param membershipId path string true "Membership id"
// @Success 200 {object} LoadSummary "Load summary"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 502 {object} map[string]string "Remote unavailable"
// @Router /inventory/{membershipType}/{membershipId}/load [post]
func (h *Handler) HandleLoad(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	ref, err := accountRef(c)
	if err != nil {
		return h.fail(c, l, err)
	}

	inv, err := h.service.Load(c.Context(), ref, bearerToken(c))
	if err != nil {
		return h.fail(c, l, err)
	}

	l.Info("Inventory loaded", zap.String("membership_id", ref.MembershipID), zap.Int("items", inv.Len()))
	return c.JSON(LoadSummary{
		MembershipType: ref.MembershipType,
		MembershipID:   ref.MembershipID,
		Items:          inv.Len(),
	})
}

// HandleLookupItems filters the loaded inventory.
// @Summary Lookup Items
// @Description Filter the loaded inventory. At least one filter is required. Ornaments are never returned.
// @Tags inventory
// @Produce json
// @Param membershipType path int true "Membership type"
// @Param membershipId path string true "Membership id"
// @Param type query string false "Item type (name or number)"
// @Param sub_type query string false "Item sub type (name or number)"
// @Param class query string false "Class (titan, hunter, warlock)"
// @Param slot query string false "Slot (name or bucket hash)"
// @Success 200 {array} Item "Items"
// @Failure 400 {object} map[string]string "Invalid query"
// @Failure 409 {object} map[string]string "Inventory not loaded"
// @Router /inventory/{membershipType}/{membershipId}/items [get]
func (h *Handler) HandleLookupItems(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	mgr, err := h.manager(c)
	if err != nil {
		return h.fail(c, l, err)
	}

	filters, err := queryFilters(c)
	if err != nil {
		return h.fail(c, l, err)
	}

	items, err := mgr.LookupItems(filters...)
	if err != nil {
		return h.fail(c, l, err)
	}
	return c.JSON(items)
}

// HandleGetItem returns one item by instance id.
// @Summary Get Item
// @Tags inventory
// @Produce json
// @Param membershipType path int true "Membership type"
// @Param membershipId path string true "Membership id"
// @Param instanceId path string true "Item instance id"
// @Success 200 {object} Item "Item"
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 409 {object} map[string]string "Inventory not loaded"
// @Router /inventory/{membershipType}/{membershipId}/items/{instanceId} [get]
func (h *Handler) HandleGetItem(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	_, item, err := h.item(c)
	if err != nil {
		return h.fail(c, l, err)
	}
	return c.JSON(item)
}

// HandleGetMods returns the owned mods that fit each mod socket of an item.
// @Summary Get Mods For Item
// @Tags inventory
// @Produce json
// @Param membershipType path int true "Membership type"
// @Param membershipId path string true "Membership id"
// @Param instanceId path string true "Item instance id"
// @Success 200 {object} map[string][]Item "Mods by socket position"
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 409 {object} map[string]string "Inventory not loaded"
// @Router /inventory/{membershipType}/{membershipId}/items/{instanceId}/mods [get]
func (h *Handler) HandleGetMods(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	mgr, item, err := h.item(c)
	if err != nil {
		return h.fail(c, l, err)
	}

	mods, err := mgr.GetModsForItem(item)
	if err != nil {
		return h.fail(c, l, err)
	}
	if mods == nil {
		mods = map[int][]*Item{}
	}
	return c.JSON(mods)
}

// HandleGetSubclasses returns the subclasses owned for a class.
// @Summary Get Available Subclasses
// @Tags inventory
// @Produce json
// @Param membershipType path int true "Membership type"
// @Param membershipId path string true "Membership id"
// @Param class path string true "Class (titan, hunter, warlock)"
// @Success 200 {array} Item "Subclasses"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 409 {object} map[string]string "Inventory not loaded"
// @Router /inventory/{membershipType}/{membershipId}/subclasses/{class} [get]
func (h *Handler) HandleGetSubclasses(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	mgr, err := h.manager(c)
	if err != nil {
		return h.fail(c, l, err)
	}

	class, err := destiny.ParseClassType(c.Params("class"))
	if err != nil {
		return h.fail(c, l, badRequest(err))
	}

	items, err := mgr.GetAvailableSubclasses(class)
	if err != nil {
		return h.fail(c, l, err)
	}
	return c.JSON(items)
}

var errItemNotFound = errors.New("item not found")

type requestError struct{ err error }

func (e requestError) Error() string { return e.err.Error() }
func (e requestError) Unwrap() error { return e.err }

func badRequest(err error) error {
	return requestError{err: err}
}

func (h *Handler) fail(c *fiber.Ctx, l *zap.Logger, err error) error {
	status := fiber.StatusInternalServerError
	var reqErr requestError
	switch {
	case errors.As(err, &reqErr), errors.Is(err, ErrInvalidQuery):
		status = fiber.StatusBadRequest
	case errors.Is(err, errItemNotFound):
		status = fiber.StatusNotFound
	case errors.Is(err, ErrInventoryNotLoaded):
		status = fiber.StatusConflict
	case errors.Is(err, destiny.ErrRemoteUnavailable):
		status = fiber.StatusBadGateway
	}

	if status >= fiber.StatusInternalServerError {
		l.Error("Inventory request failed", zap.Error(err))
	} else {
		l.Debug("Inventory request rejected", zap.Error(err))
	}
	return c.Status(status).JSON(fiber.Map{
		"error": err.Error(),
	})
}

func (h *Handler) manager(c *fiber.Ctx) (*Manager, error) {
	ref, err := accountRef(c)
	if err != nil {
		return nil, err
	}
	return h.service.Manager(ref)
}

func (h *Handler) item(c *fiber.Ctx) (*Manager, *Item, error) {
	mgr, err := h.manager(c)
	if err != nil {
		return nil, nil, err
	}
	inv, err := mgr.Inventory()
	if err != nil {
		return nil, nil, err
	}
	item, ok := inv.FindByInstanceID(c.Params("instanceId"))
	if !ok {
		return nil, nil, errItemNotFound
	}
	return mgr, item, nil
}

func accountRef(c *fiber.Ctx) (destiny.AccountRef, error) {
	membershipType, err := strconv.Atoi(c.Params("membershipType"))
	if err != nil {
		return destiny.AccountRef{}, badRequest(errors.New("invalid membership type"))
	}
	id := c.Params("membershipId")
	if id == "" {
		return destiny.AccountRef{}, badRequest(errors.New("missing membership id"))
	}
	return destiny.AccountRef{MembershipType: membershipType, MembershipID: id}, nil
}

func bearerToken(c *fiber.Ctx) *oauth2.Token {
	header := c.Get(fiber.HeaderAuthorization)
	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "bearer") || token == "" {
		return nil
	}
	return &oauth2.Token{AccessToken: token, TokenType: "Bearer"}
}

func queryFilters(c *fiber.Ctx) ([]Filter, error) {
	var filters []Filter
	if v := c.Query("type"); v != "" {
		t, err := destiny.ParseItemType(v)
		if err != nil {
			return nil, badRequest(err)
		}
		filters = append(filters, ByType(t))
	}
	if v := c.Query("sub_type"); v != "" {
		t, err := destiny.ParseItemSubType(v)
		if err != nil {
			return nil, badRequest(err)
		}
		filters = append(filters, BySubType(t))
	}
	if v := c.Query("class"); v != "" {
		cl, err := destiny.ParseClassType(v)
		if err != nil {
			return nil, badRequest(err)
		}
		filters = append(filters, ByClass(cl))
	}
	if v := c.Query("slot"); v != "" {
		b, err := destiny.ParseBucket(v)
		if err != nil {
			return nil, badRequest(err)
		}
		filters = append(filters, BySlot(b))
	}
	return filters, nil
}
