package handler

import (
	"errors"
	"net/http"

	"apparel-storefront/internal/dto"
	"apparel-storefront/internal/middleware"
	"apparel-storefront/internal/service"

	"github.com/labstack/echo/v4"
)

type AddressHandler struct {
	addressService service.AddressService
}

func NewAddressHandler(addressService service.AddressService) *AddressHandler {
	return &AddressHandler{
		addressService: addressService,
	}
}

func (h *AddressHandler) ListAddresses(c echo.Context) error {
	ctx := c.Request().Context()
	sessionID := middleware.SessionID(c)

	addresses, err := h.addressService.List(ctx, sessionID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, addresses)
}

func (h *AddressHandler) CreateAddress(c echo.Context) error {
	ctx := c.Request().Context()
	sessionID := middleware.SessionID(c)

	var req dto.CreateAddressRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}

	address, err := h.addressService.Create(ctx, sessionID, &req)
	if err != nil {
		var vErr *service.ValidationError
		if errors.As(err, &vErr) {
			return echo.NewHTTPError(http.StatusBadRequest, vErr.Error())
		}
		return err
	}

	return c.JSON(http.StatusCreated, address)
}
