package server

import (
	"apparel-storefront/internal/handler"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	storemw "apparel-storefront/internal/middleware"
)

type Server struct {
	echo                *echo.Echo
	cartHandler         *handler.CartHandler
	checkoutHandler     *handler.CheckoutHandler
	catalogHandler      *handler.CatalogHandler
	addressHandler      *handler.AddressHandler
	notificationHandler *handler.NotificationHandler
}

func NewServer(
	cartHandler *handler.CartHandler,
	checkoutHandler *handler.CheckoutHandler,
	catalogHandler *handler.CatalogHandler,
	addressHandler *handler.AddressHandler,
	notificationHandler *handler.NotificationHandler,
) *Server {
	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	s := &Server{
		echo:                e,
		cartHandler:         cartHandler,
		checkoutHandler:     checkoutHandler,
		catalogHandler:      catalogHandler,
		addressHandler:      addressHandler,
		notificationHandler: notificationHandler,
	}

	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	api := s.echo.Group("/api")
	api.Use(storemw.SessionMiddleware())

	api.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok"})
	})

	// -------- catalog --------
	api.GET("/products", s.catalogHandler.ListProducts)
	api.GET("/products/:id", s.catalogHandler.GetProduct)

	// -------- cart --------
	api.GET("/cart", s.cartHandler.GetCart)
	api.POST("/cart/items", s.cartHandler.AddItem)
	api.PATCH("/cart/items/:lineID", s.cartHandler.UpdateItem)
	api.DELETE("/cart/items/:lineID", s.cartHandler.RemoveItem)
	api.DELETE("/cart", s.cartHandler.ClearCart)

	// -------- addresses --------
	api.GET("/addresses", s.addressHandler.ListAddresses)
	api.POST("/addresses", s.addressHandler.CreateAddress)

	// -------- checkout / payment callbacks --------
	api.POST("/checkout", s.checkoutHandler.Checkout)
	api.GET("/checkout/callback", s.checkoutHandler.Callback)
	api.POST("/checkout/:number/abandon", s.checkoutHandler.Abandon)

	// -------- orders --------
	api.GET("/orders", s.checkoutHandler.ListOrders)
	api.GET("/orders/:number", s.checkoutHandler.GetOrder)

	// -------- notifications --------
	api.GET("/notifications", s.notificationHandler.ListNotifications)
	api.DELETE("/notifications/:id", s.notificationHandler.DismissNotification)
}

func (s *Server) Start(address string) error {
	return s.echo.Start(address)
}

func (s *Server) Shutdown() error {
	return s.echo.Close()
}
