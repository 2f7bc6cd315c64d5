package app

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/niksmo/elegance-storefront/config"
	"github.com/niksmo/elegance-storefront/internal/adapter/catalog"
	"github.com/niksmo/elegance-storefront/internal/adapter/content"
	"github.com/niksmo/elegance-storefront/internal/adapter/httphandler"
	"github.com/niksmo/elegance-storefront/internal/adapter/session"
	"github.com/niksmo/elegance-storefront/internal/adapter/viewpush"
	"github.com/niksmo/elegance-storefront/internal/core/service"
	"gopkg.in/natefinch/lumberjack.v2"
)

type App struct {
	cfg        config.Config
	hub        *viewpush.Hub
	httpServer httphandler.HTTPServer
}

func New(cfg config.Config) *App {
	app := &App{cfg: cfg}

	app.initLogger()

	productCatalog := catalog.New()
	sectionContent := content.New()
	hub := viewpush.NewHub(httphandler.ViewEncoder{})
	sessions := session.NewStore(productCatalog, hub)
	showcase := service.NewShowcase(productCatalog)

	handler := httphandler.New(
		sessions, productCatalog, showcase, sectionContent, hub,
	)

	app.hub = hub
	app.httpServer = httphandler.NewHTTPServer(
		cfg.HTTPServerAddr, handler.Route(),
	)

	return app
}

func (app *App) initLogger() {
	var w io.Writer = os.Stderr
	if app.cfg.LogFile != "" {
		w = &lumberjack.Logger{
			Filename:   app.cfg.LogFile,
			MaxSize:    10, // megabytes
			MaxBackups: 3,
		}
	}

	opts := &slog.HandlerOptions{Level: app.cfg.LogLevel}
	logger := slog.New(slog.NewJSONHandler(w, opts))
	slog.SetDefault(logger)
}

func (app *App) Run(stopFn context.CancelFunc) {
	go app.httpServer.Run(stopFn)

	slog.Info("application is running", "addr", app.cfg.HTTPServerAddr)
}

func (app *App) Close(ctx context.Context) {
	slog.Info("application is closing...")

	app.httpServer.Close(ctx)
	app.hub.Close()

	slog.Info("application is closed")
}
