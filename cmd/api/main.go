package main

import (
	"fmt"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joefazee/surebook/app"
	"github.com/joefazee/surebook/app/api"
	"github.com/joefazee/surebook/app/bookmakers"
	"github.com/joefazee/surebook/app/database"
	"github.com/joefazee/surebook/app/ledger"
	"github.com/joefazee/surebook/app/rates"
	"github.com/joefazee/surebook/app/surebet"
	"github.com/joefazee/surebook/internal/cache"
	"github.com/joefazee/surebook/internal/deps"
	"github.com/joefazee/surebook/internal/logger"
	"github.com/joefazee/surebook/internal/router"
	"github.com/joefazee/surebook/internal/sanitizer"
)

// @title Surebook API
// @version 1.0
// @description Surebet ticket management: stake allocation, scenario evaluation, bookmaker balances and settlement.

// @host localhost:8080
// @BasePath /
// @schemes http
func main() {
	cfg, err := app.LoadConfig()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	db, err := database.New(&cfg.DB)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	appLogger := logger.NewZeroLogger(os.Stdout, logger.ParseLevel(cfg.LogLevel), logger.Fields{
		"service": "surebook",
		"env":     cfg.Env,
	})

	cacheService := cache.New[string](cfg.CacheBackend, &cache.RedisOptions{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	container := deps.NewContainer(db, sanitizer.NewHTMLStripper(), appLogger, cacheService)
	bookmakers.InitRepositories(container)
	rates.InitRepositories(container)
	ledger.InitRepositories(container)
	surebet.InitRepositories(container)

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.Default()

	router.NewMounter(container).
		API(engine).
		Use(api.CorsMiddleware()).
		Mount(func(r *gin.RouterGroup, _ *deps.Container) {
			r.GET("/healthz", api.HealthCheck)
		}).
		Mount(bookmakers.Mount).
		Mount(rates.Mount).
		Mount(ledger.Mount).
		Mount(surebet.Mount)

	addr := fmt.Sprintf("%s:%s", cfg.AppHost, cfg.AppPort)
	appLogger.Info("starting server", logger.Fields{"addr": addr})
	if err := engine.Run(addr); err != nil {
		appLogger.Fatal(err, nil)
	}
}
