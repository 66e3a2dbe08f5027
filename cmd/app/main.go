package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"clausemap/cmd/fx/config_fx"
	"clausemap/cmd/fx/controllers_fx"
	"clausemap/cmd/fx/db_fx"
	"clausemap/cmd/fx/logger_fx"
	"clausemap/cmd/fx/maplayer_fx"
	"clausemap/cmd/fx/metrics_fx"
	"clausemap/cmd/fx/province_fx"
	"clausemap/internal/api"
	"clausemap/internal/config"
)

func main() {
	app := fx.New(
		config_fx.Module,
		logger_fx.Module,
		metrics_fx.Module,
		db_fx.Module,
		province_fx.Module,
		maplayer_fx.Module,
		controllers_fx.Module,

		fx.Provide(api.ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, shutdowner fx.Shutdowner, cfg *config.Config, engine *gin.Engine, logger *zap.Logger) {
	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ln, err := net.Listen("tcp", srv.Addr)
			if err != nil {
				return err
			}
			go func() {
				logger.Info("Starting HTTP server", zap.String("addr", srv.Addr))
				if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
					logger.Error("HTTP server stopped unexpectedly", zap.Error(err))
					_ = shutdowner.Shutdown(fx.ExitCode(1))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("Stopping HTTP server")
			return srv.Shutdown(ctx)
		},
	})
}
