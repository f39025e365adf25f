package main

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/sideshiftai/basepulse-ido/internal/config"
	"github.com/sideshiftai/basepulse-ido/internal/database"
	"github.com/sideshiftai/basepulse-ido/internal/logger"
	"github.com/sideshiftai/basepulse-ido/internal/router"
	"github.com/sideshiftai/basepulse-ido/internal/service"
	"github.com/sideshiftai/basepulse-ido/state"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	zapLogger, err := logger.New(cfg.Log.Level)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zapLogger.Sync()

	var store state.Store
	var sink state.EventSink
	switch cfg.Database.Backend {
	case "postgres":
		db, err := database.Init(cfg.Database)
		if err != nil {
			zapLogger.Fatal("failed to initialize database", zap.Error(err))
		}
		gormStore, err := state.NewGormStore(db)
		if err != nil {
			zapLogger.Fatal("failed to initialize ledger store", zap.Error(err))
		}
		store = gormStore
		sink = gormStore
	default:
		store = state.NewMemStore()
	}

	svc := service.New(store, sink, zapLogger)

	if cfg.Registry.Owner != "" {
		if err := seedRegistry(svc, cfg.Registry.Owner); err != nil {
			zapLogger.Fatal("failed to seed registry", zap.Error(err))
		}
	}

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := router.Setup(svc)

	zapLogger.Info("server starting", zap.String("port", cfg.Server.Port))
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		zapLogger.Fatal("failed to start server", zap.Error(err))
	}
}

// seedRegistry initializes registry ownership on first boot. A registry
// already initialized in a persistent store is left alone.
func seedRegistry(svc *service.Service, owner string) error {
	_, _, err := svc.Execute(owner, nil, func(ctx state.TransactionContext) error {
		return svc.Factory().Initialize(ctx, owner)
	})
	if err != nil {
		var custom *state.CustomError
		if errors.As(err, &custom) && custom.Code == http.StatusConflict {
			return nil
		}
		return err
	}
	return nil
}
