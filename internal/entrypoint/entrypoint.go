package entrypoint

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/wishlist/internal/config"
	"github.com/mrlokans/wishlist/internal/database"
	"github.com/mrlokans/wishlist/internal/database/wishlists"
	http_controllers "github.com/mrlokans/wishlist/internal/http"
	"github.com/mrlokans/wishlist/internal/logger"
	"github.com/mrlokans/wishlist/internal/wishlist"
)

// ShutdownFunc is called during graceful shutdown to clean up resources.
type ShutdownFunc func(ctx context.Context)

func Serve(router *gin.Engine, cfg *config.Config, onShutdown ShutdownFunc) {
	log := logger.Get()
	timeout := time.Duration(cfg.Global.ShutdownTimeoutInSeconds) * time.Second
	addr := fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port)

	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	go func() {
		log.Info().Str("addr", addr).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("listen")
		}
	}()

	// kill -9 cannot be caught, so only SIGINT and SIGTERM are handled.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Dur("timeout", timeout).Msg("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}

	if onShutdown != nil {
		onShutdown(ctx)
	}

	log.Info().Msg("server exiting")
}

// Build wires storage, service and router from cfg.
func Build(cfg *config.Config, db *database.Database, version string) *gin.Engine {
	service := wishlist.NewService(
		wishlists.NewRepository(db.DB),
		wishlist.Options{StrictRemove: cfg.Wishlist.StrictRemove},
	)

	return http_controllers.NewRouter(http_controllers.RouterConfig{
		Database:        db,
		WishlistService: service,
		Version:         version,
	})
}

func Run(cfg *config.Config, version string) {
	logger.Init(cfg.Log.Level, cfg.Log.Format)
	log := logger.Get()
	log.Info().Str("version", version).Msg("starting wishlist")

	if cfg.Log.Level != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.Open(cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize database")
	}
	log.Info().Str("driver", cfg.Database.Driver).Msg("database ready")

	router := Build(cfg, db, version)

	Serve(router, cfg, func(ctx context.Context) {
		if err := db.Close(); err != nil {
			log.Error().Err(err).Msg("error closing database")
		}
	})
}
