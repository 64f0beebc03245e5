package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/youruser/idcardapp/internal/api"
	"github.com/youruser/idcardapp/internal/config"
	imagepkg "github.com/youruser/idcardapp/internal/image"
	"github.com/youruser/idcardapp/internal/logging"
	"golang.org/x/exp/slog"
)

func main() {
	cfg := config.FromEnv()
	logger := logging.New(os.Stderr, cfg.LogLevel).With(slog.String("app", "idcard-server"))

	gin.SetMode(gin.ReleaseMode)

	// The font is loaded once; a missing font only degrades the cards.
	renderer := imagepkg.NewRenderer(logger, imagepkg.LoadFontFile(cfg.FontPath))
	router := api.NewRouter(logger, api.NewHandler(logger, renderer, cfg))

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("http server started", slog.String("addr", cfg.HTTPAddr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("starting http server", "err", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutting down http server", "err", err)
		os.Exit(1)
	}
	logger.Info("server stopped")
}
