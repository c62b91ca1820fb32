package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"apparel-storefront/internal/cache"
	"apparel-storefront/internal/cart"
	"apparel-storefront/internal/client"
	"apparel-storefront/internal/config"
	"apparel-storefront/internal/handler"
	"apparel-storefront/internal/notify"
	"apparel-storefront/internal/repository"
	"apparel-storefront/internal/server"
	"apparel-storefront/internal/service"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

func main() {
	// load .env into os.Environ
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found (ok in prod)")
	}

	cfg := &config.Config{}
	if err := env.Parse(cfg); err != nil {
		fmt.Printf("Failed to parse config: %v\n", err)
		os.Exit(1)
	}

	db := client.InitSqliteClient(cfg.Database.Path)

	redisClient, err := client.InitRedisClient(cfg.Redis.Addr, cfg.Redis.DB)
	if err != nil {
		log.Fatal("failed to connect to redis:", err)
	}

	paymentClient := client.NewPaymentClient(&cfg.Payment)

	orderRepo := repository.NewOrderRepository(db)
	productRepo := repository.NewProductRepository(db)
	addressRepo := repository.NewAddressRepository(db)

	if err := productRepo.Seed(context.Background()); err != nil {
		log.Fatal("failed to seed products:", err)
	}

	cartStore := cart.NewStore(cart.NewRedisPersister(redisClient, cfg.Cart.KeyPrefix), cfg.Cart.MaxQuantity)
	hub := notify.NewHub(cfg.Notify.TTL)

	catalogService := service.NewCatalogService(productRepo, cache.NewRedisCache(redisClient))
	addressService := service.NewAddressService(addressRepo)
	checkoutService := service.NewCheckoutService(
		orderRepo,
		productRepo,
		addressRepo,
		cartStore,
		paymentClient,
		hub,
		cfg.Payment.Currency,
	)

	srv := server.NewServer(
		handler.NewCartHandler(cartStore, catalogService),
		handler.NewCheckoutHandler(checkoutService, cfg.BaseURL),
		handler.NewCatalogHandler(catalogService),
		handler.NewAddressHandler(addressService),
		handler.NewNotificationHandler(hub),
	)

	serverAddr := cfg.HTTP.Host + ":" + cfg.HTTP.Port

	log.Println("Starting HTTP server on", serverAddr)
	go func() {
		if err := srv.Start(serverAddr); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server error")
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)

	<-sigChan
	log.Println("Signal received, starting graceful shutdown...")

	_, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(); err != nil {
		log.Fatal("HTTP server shutdown error")
	}
}
