package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/mrachkov/shop_cart/internal/config"
	"github.com/mrachkov/shop_cart/internal/events"
	"github.com/mrachkov/shop_cart/internal/httpserver"
	"github.com/mrachkov/shop_cart/internal/logging"
	loggingmw "github.com/mrachkov/shop_cart/internal/middleware/logging"
	"github.com/mrachkov/shop_cart/internal/repo"
	"github.com/mrachkov/shop_cart/internal/service"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("config load error: %v", err)
	}

	logger := logging.New(cfg.LOG_LEVEL)

	e := echo.New()
	e.HideBanner = true

	e.Server.ReadTimeout = 10 * time.Second
	e.Server.WriteTimeout = 15 * time.Second
	e.Server.ReadHeaderTimeout = 3 * time.Second

	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(loggingmw.RequestLogger(logger))

	initCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	db, err := config.InitDB(initCtx, cfg)
	cancel()
	if err != nil {
		log.Fatalf("db init error: %v", err)
	}

	producer := events.NewProducer(cfg.KAFKA_ADDRESS)

	gormRepo := &repo.GormRepo{
		DB: db,
	}

	productService := &service.ProductService{
		Repo: gormRepo,
	}

	cartService := &service.CartService{
		Repo: gormRepo,
	}

	httpserver.Register(e, &httpserver.Deps{
		ProductHandler: &httpserver.ProductHTTP{Svc: productService, Producer: producer},
		CartHandler:    &httpserver.CartHTTP{Svc: cartService, Producer: producer},
		MemberHandler:  &httpserver.MemberHTTP{Svc: cartService},
		CartService:    cartService,
	})

	port := cfg.SERVER_PORT
	if port == "" {
		port = "8080"
	}

	go func() {
		log.Printf("Starting cart service on port %s...", port)
		if err := e.Start(":" + port); err != nil && err != http.ErrServerClosed {
			log.Fatalf("echo start: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt)
	<-stop
	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Printf("echo shutdown: %v", err)
	}

	if err := producer.Close(); err != nil {
		log.Printf("kafka close: %v", err)
	}

	sqlDB, err := db.DB()
	if err == nil {
		sqlDB.Close()
	}

	log.Println("Server stopped")
}
