package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"storefront-service/config"
	"storefront-service/handlers"
	"storefront-service/internal/auth"
	"storefront-service/internal/cart"
	"storefront-service/internal/catalog"
	"storefront-service/internal/consul"
	"storefront-service/internal/products"
	"storefront-service/internal/stores/kafka"
	"storefront-service/internal/stores/postgres"
	"storefront-service/internal/wishlist"

	"github.com/joho/godotenv"
)

const catalogRefreshInterval = 5 * time.Minute

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	if err := run(); err != nil {
		log.Fatalf("startup: %v", err)
	}
}

func run() error {
	cfg := config.Load()

	db, err := postgres.OpenDB()
	if err != nil {
		return err
	}
	defer db.Close()
	if err := postgres.RunMigrations(db); err != nil {
		return err
	}

	repo, err := products.NewPostgresRepository(db)
	if err != nil {
		return err
	}
	conf, err := products.NewConf(repo)
	if err != nil {
		return err
	}

	publicPEM, err := os.ReadFile(cfg.AuthPublicKeyFile)
	if err != nil {
		return err
	}
	keys, err := auth.NewKeys(publicPEM)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Kafka is optional; without brokers the catalog cache refreshes on an
	// interval only.
	var producer *kafka.Producer
	var consumer *kafka.Consumer
	if len(cfg.KafkaBrokers) > 0 {
		producer, err = kafka.NewProducer(cfg.KafkaBrokers)
		if err != nil {
			return err
		}
		defer producer.Close()

		consumer, err = kafka.NewConsumer(cfg.KafkaBrokers, kafka.ConsumerGroup)
		if err != nil {
			return err
		}
		defer consumer.Close()
	} else {
		slog.Warn("KAFKA_BROKERS not set, catalog cache will refresh on interval only")
	}

	cache := catalog.NewCache(conf)
	if err := cache.Refresh(ctx); err != nil {
		return err
	}
	go cache.Run(ctx, consumer, catalogRefreshInterval)

	if cfg.ConsulAddr != "" {
		client, err := consul.NewClient()
		if err != nil {
			return err
		}
		port, _ := strconv.Atoi(cfg.Port)
		if err := consul.RegisterService(client, "storefront", getHostname(), port); err != nil {
			return err
		}
	}

	carts := cart.NewStore()
	wishes := wishlist.NewStore()
	engine := handlers.API(cfg, conf, cache, carts, wishes, producer, keys)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      engine,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	serverErrors := make(chan error, 1)
	go func() {
		slog.Info("listening", slog.String("Port", cfg.Port), slog.String("Env", cfg.Env))
		serverErrors <- srv.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
	case <-ctx.Done():
		slog.Info("shutdown signal received")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			_ = srv.Close()
			return err
		}
	}
	return nil
}

func getHostname() string {
	if host := os.Getenv("SERVICE_HOST"); host != "" {
		return host
	}
	host, err := os.Hostname()
	if err != nil {
		return "localhost"
	}
	return host
}
