package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/happnhere-api/config"
	"github.com/oksasatya/happnhere-api/internal/container"
	"github.com/oksasatya/happnhere-api/internal/infrastructure/search"
	"github.com/oksasatya/happnhere-api/internal/interface/middleware"
	"github.com/oksasatya/happnhere-api/internal/router"
	"github.com/oksasatya/happnhere-api/pkg/helpers"
	"github.com/oksasatya/happnhere-api/pkg/validation"
)

func main() {
	_ = godotenv.Load() // load .env if present

	cfg := config.Load()
	logger := helpers.NewLogger(cfg.AppName, cfg.Env)
	gin.SetMode(cfg.GinMode)
	validation.Init()

	ctx := context.Background()
	infra, closeInfra := connectInfra(ctx, cfg, logger)
	defer closeInfra()

	c := container.New(cfg, logger, infra)

	r := gin.New()
	if err := middleware.TrustProxies(r, cfg.TrustedProxies(), cfg.TrustedPlatform); err != nil {
		logger.Fatalf("trusted proxies: %v", err)
	}
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.RealIP())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins(),
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", middleware.RequestIDHeader},
		ExposeHeaders:    []string{"Content-Length", middleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	if cfg.HTTPLogEnabled {
		r.Use(gin.Logger())
	}

	reg := router.NewRegistry(r)
	router.InitModules(reg, c)
	reg.RegisterAll()

	srv := &http.Server{Addr: ":" + cfg.Port, Handler: r, ReadHeaderTimeout: 10 * time.Second}
	go func() {
		logger.Infof("server starting on :%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("listen: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server")

	ctxShutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctxShutdown); err != nil {
		logger.Fatalf("server forced to shutdown: %v", err)
	}
	logger.Info("server exited properly")
}

// connectInfra dials every optional backend that has an address configured.
// A backend that fails to connect is logged and left out so the API still
// serves from memory.
func connectInfra(ctx context.Context, cfg *config.Config, logger *logrus.Logger) (container.Infra, func()) {
	var (
		infra   container.Infra
		closers []func()
	)

	if cfg.RedisAddr != "" {
		rdb, err := helpers.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			logger.WithError(err).Warn("redis unavailable; sessions and rate limits disabled")
		} else {
			infra.Redis = rdb
			closers = append(closers, func() { _ = rdb.Close() })
		}
	}

	if cfg.RabbitMQURL != "" {
		pub, err := helpers.NewRabbitPublisher(cfg.RabbitMQURL, cfg.RabbitMQExchange)
		if err != nil {
			logger.WithError(err).Warn("rabbitmq unavailable; domain events disabled")
		} else {
			infra.Publisher = pub
			closers = append(closers, pub.Close)
		}
	}

	if addrs := cfg.ESAddrs(); len(addrs) > 0 {
		es, err := helpers.NewESClient(addrs, cfg.ElasticsearchUser, cfg.ElasticsearchPass)
		if err != nil {
			logger.WithError(err).Warn("elasticsearch unavailable; search scans memory")
		} else {
			infra.Index = search.NewEventIndex(es, cfg.ESEventsIndex)
		}
	}

	if cfg.GCSBucket != "" {
		gcs, err := helpers.NewGCSClient(ctx, cfg.GCSCredentialsJSONPath)
		if err != nil {
			logger.WithError(err).Warn("gcs unavailable; profile picture uploads disabled")
		} else {
			infra.Storage = helpers.NewGCSUploader(gcs, cfg.GCSBucket)
			closers = append(closers, func() { _ = gcs.Close() })
		}
	}

	return infra, func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}
}
