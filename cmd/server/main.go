package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/MasonLiao319/wallpaperDepot/internal/config"
	"github.com/MasonLiao319/wallpaperDepot/internal/es"
	"github.com/MasonLiao319/wallpaperDepot/internal/httpserver"
	"github.com/MasonLiao319/wallpaperDepot/internal/logging"
	"github.com/MasonLiao319/wallpaperDepot/internal/mykafka"
	"github.com/MasonLiao319/wallpaperDepot/internal/repo"
	"github.com/MasonLiao319/wallpaperDepot/internal/service"
	"github.com/MasonLiao319/wallpaperDepot/internal/session"
)

func main() {
	configuration, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}

	logger := logging.New(configuration.LOG_LEVEL)

	db, err := config.InitDB(context.Background(), configuration)
	if err != nil {
		log.Fatalf("db init error: %v", err)
	}

	var events service.Publisher
	var producer *mykafka.Producer
	if configuration.KAFKA_ADDRESS != "" {
		producer = mykafka.NewProducer([]string{configuration.KAFKA_ADDRESS})
		events = producer
	}

	sessions := session.NewMemoryStore(session.DefaultTTL)
	defer sessions.Close()

	r := &repo.GormRepo{DB: db}
	accountSvc := &service.AccountService{Repo: r, Events: events}
	cartSvc := &service.CartService{Repo: r}
	checkoutSvc := &service.CheckoutService{Repo: r, Events: events}
	catalogSvc := &service.CatalogService{Repo: r}

	e := echo.New()
	e.HideBanner = true
	e.Pre(middleware.RemoveTrailingSlash())
	e.Use(middleware.Recover(), middleware.RequestID())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{configuration.CORS_ORIGIN},
		AllowCredentials: true,
	}))
	e.Use(logging.RequestLogger(logger))

	deps := httpserver.Deps{
		UserHandler: &httpserver.UserHTTP{
			Account:  accountSvc,
			Checkout: checkoutSvc,
			Sessions: sessions,
			Secure:   configuration.Production(),
		},
		CartHandler:    &httpserver.CartHTTP{Cart: cartSvc, Checkout: checkoutSvc},
		ProductHandler: &httpserver.ProductHTTP{Catalog: catalogSvc},
		Auth:           &httpserver.SessionAuth{Sessions: sessions},
	}

	if configuration.ES_URL != "" {
		esClient, err := es.NewClient(configuration)
		if err != nil {
			log.Fatalf("elasticsearch init error: %v", err)
		}
		deps.SearchHandler = &httpserver.SearchHTTP{ES: esClient, Index: es.ProductIndex}
	}

	httpserver.Register(e, &deps)

	srv := &http.Server{
		Addr:         ":" + configuration.PORT,
		Handler:      e,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server listening", "port", configuration.PORT)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("http server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("server shutdown error: %v", err)
	}

	if sqlDB, err := db.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			log.Printf("db close error: %v", err)
		}
	}

	if producer != nil {
		if err := producer.Close(); err != nil {
			log.Printf("kafka close error: %v", err)
		}
	}

	logger.Info("shutdown complete")
}
