package main

import (
	"database/sql"
	"net/http"

	"bulk-be/internal/config"
	"bulk-be/internal/db"
	"bulk-be/internal/logger"
	"bulk-be/internal/metrics"
	"bulk-be/internal/middleware"
	"bulk-be/internal/order"
	"bulk-be/internal/product"
	"bulk-be/internal/rest"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Seams for tests.
var (
	initDBFunc      = db.Init
	startServerFunc = func(addr string, handler http.Handler) error {
		return http.ListenAndServe(addr, handler)
	}
)

func main() {
	if err := run(); err != nil {
		logger.L().Fatal("server exited", zap.Error(err))
	}
}

func run() error {
	cfg := config.LoadConfig()

	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	// An unreachable database is not fatal: read endpoints serve sample
	// data until it comes back.
	database, err := initDBFunc(cfg)
	if err != nil {
		logger.L().Warn("database unavailable, read endpoints will serve sample data", zap.Error(err))
	}
	if database != nil {
		defer database.Close()
	}

	router := newServer(cfg, database)

	logger.L().Info("server listening", zap.String("port", cfg.AppPort))
	return startServerFunc(":"+cfg.AppPort, router)
}

func newServer(cfg *config.Config, database *sql.DB) *gin.Engine {
	productRepo := product.NewRepository(database)
	productSvc := product.NewService(productRepo)

	orderRepo := order.NewRepository(database)
	orderSvc := order.NewService(orderRepo)

	reg := metrics.NewRegistry()

	return rest.NewRouter(productSvc, orderSvc, reg, cfg.CORSOrigins, middleware.RateLimit())
}
