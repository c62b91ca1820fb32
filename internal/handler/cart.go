package handler

import (
	"net/http"

	"apparel-storefront/internal/cart"
	"apparel-storefront/internal/dto"
	"apparel-storefront/internal/middleware"
	"apparel-storefront/internal/service"

	"github.com/labstack/echo/v4"
)

type CartHandler struct {
	cartStore      *cart.Store
	catalogService service.CatalogService
}

func NewCartHandler(cartStore *cart.Store, catalogService service.CatalogService) *CartHandler {
	return &CartHandler{
		cartStore:      cartStore,
		catalogService: catalogService,
	}
}

func (h *CartHandler) GetCart(c echo.Context) error {
	ctx := c.Request().Context()
	sessionID := middleware.SessionID(c)

	return c.JSON(http.StatusOK, h.cartStore.Snapshot(ctx, sessionID))
}

func (h *CartHandler) AddItem(c echo.Context) error {
	ctx := c.Request().Context()
	sessionID := middleware.SessionID(c)

	var req dto.AddCartItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}
	if req.ProductID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "missing product_id")
	}

	// Price and name are resolved server-side, then snapshotted into the line.
	product, err := h.catalogService.GetProduct(ctx, req.ProductID)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "product not found")
	}

	snapshot := h.cartStore.Add(ctx, sessionID, cart.LineInput{
		ProductID: product.ID,
		Name:      product.Name,
		UnitPrice: product.Price,
		ImageKey:  product.ImageKey,
		Color:     req.Color,
		Size:      req.Size,
	})

	return c.JSON(http.StatusOK, snapshot)
}

func (h *CartHandler) UpdateItem(c echo.Context) error {
	ctx := c.Request().Context()
	sessionID := middleware.SessionID(c)
	lineID := c.Param("lineID")

	var req dto.UpdateCartItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}

	snapshot, err := h.cartStore.SetQuantity(ctx, sessionID, lineID, req.Quantity)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "cart line not found")
	}

	return c.JSON(http.StatusOK, snapshot)
}

func (h *CartHandler) RemoveItem(c echo.Context) error {
	ctx := c.Request().Context()
	sessionID := middleware.SessionID(c)
	lineID := c.Param("lineID")

	return c.JSON(http.StatusOK, h.cartStore.Remove(ctx, sessionID, lineID))
}

func (h *CartHandler) ClearCart(c echo.Context) error {
	ctx := c.Request().Context()
	sessionID := middleware.SessionID(c)

	h.cartStore.Clear(ctx, sessionID)
	return c.NoContent(http.StatusNoContent)
}
