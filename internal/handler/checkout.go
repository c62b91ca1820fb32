package handler

import (
	"errors"
	"net/http"

	"apparel-storefront/internal/dto"
	"apparel-storefront/internal/middleware"
	"apparel-storefront/internal/service"

	"github.com/labstack/echo/v4"
)

type CheckoutHandler struct {
	checkoutService service.CheckoutService
	baseURL         string
}

func NewCheckoutHandler(checkoutService service.CheckoutService, baseURL string) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutService: checkoutService,
		baseURL:         baseURL,
	}
}

func (h *CheckoutHandler) Checkout(c echo.Context) error {
	ctx := c.Request().Context()
	sessionID := middleware.SessionID(c)

	var req dto.CheckoutRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}

	result, err := h.checkoutService.PlaceOrder(ctx, sessionID, &req)
	if err != nil {
		var vErr *service.ValidationError
		switch {
		case errors.As(err, &vErr):
			return echo.NewHTTPError(http.StatusBadRequest, vErr.Error())
		case errors.Is(err, service.ErrEmptyCart):
			return echo.NewHTTPError(http.StatusBadRequest, "cart is empty")
		case errors.Is(err, service.ErrCheckoutInFlight):
			return echo.NewHTTPError(http.StatusConflict, "checkout already in progress")
		case errors.Is(err, service.ErrPaymentNotReady):
			return echo.NewHTTPError(http.StatusServiceUnavailable, "payment system loading")
		case errors.Is(err, service.ErrProductUnavailable):
			return echo.NewHTTPError(http.StatusConflict, "a product is no longer available")
		}
		return err
	}

	return c.JSON(http.StatusOK, result)
}

// Callback is where the payment provider redirects the buyer after a
// successful payment.
func (h *CheckoutHandler) Callback(c echo.Context) error {
	ctx := c.Request().Context()
	sessionID := middleware.SessionID(c)

	reference := c.QueryParam("reference")
	if reference == "" {
		return c.String(http.StatusBadRequest, "missing payment reference")
	}

	order, err := h.checkoutService.ConfirmPayment(ctx, sessionID, reference)
	if err != nil {
		return err
	}

	return c.Redirect(http.StatusFound, h.baseURL+"/orders/"+order.OrderNumber)
}

// Abandon is reported by the frontend when the buyer closes the payment page.
func (h *CheckoutHandler) Abandon(c echo.Context) error {
	ctx := c.Request().Context()
	sessionID := middleware.SessionID(c)
	orderNumber := c.Param("number")

	if err := h.checkoutService.Abandon(ctx, sessionID, orderNumber); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "order not found")
		}
		return err
	}

	return c.NoContent(http.StatusOK)
}

func (h *CheckoutHandler) ListOrders(c echo.Context) error {
	ctx := c.Request().Context()
	sessionID := middleware.SessionID(c)

	orders, err := h.checkoutService.ListOrders(ctx, sessionID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, orders)
}

func (h *CheckoutHandler) GetOrder(c echo.Context) error {
	ctx := c.Request().Context()
	sessionID := middleware.SessionID(c)
	orderNumber := c.Param("number")

	order, err := h.checkoutService.GetOrder(ctx, sessionID, orderNumber)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "order not found")
		}
		return err
	}

	return c.JSON(http.StatusOK, order)
}
