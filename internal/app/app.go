package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/specialistvlad/tilegrid/internal/catalog"
	"github.com/specialistvlad/tilegrid/internal/config"
	"github.com/specialistvlad/tilegrid/internal/ctxlog"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW    io.Writer
	logger  *slog.Logger
	config  *Config
	model   *config.Model
	catalog *catalog.Store
}

// NewApp is the constructor for the main application. Reports go to outW and
// logs to logW. Configuration problems are fatal startup errors and panic.
func NewApp(outW, logW io.Writer, appConfig *Config, loader config.Loader) *App {
	logger := newLogger(appConfig.LogLevel, appConfig.LogFormat, logW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	model, err := loader.Load(ctx, appConfig.DevicePaths...)
	if err != nil {
		panic(fmt.Errorf("failed to load configuration: %w", err))
	}
	if err := model.Filter(appConfig.Only); err != nil {
		panic(fmt.Errorf("failed to select devices: %w", err))
	}
	logger.Debug("Configuration loaded and translated into unified model.", "devices", len(model.Devices))

	cat := catalog.Builtin()
	if model.Catalog != nil {
		cat, err = model.Catalog.Build()
		if err != nil {
			panic(err)
		}
		logger.Debug("Using declared catalog.", "source", model.Catalog.Source)
	}
	nodes, namings := cat.Len()
	logger.Debug("Catalog ready.", "node_kinds", nodes, "namings", namings)

	return &App{
		outW:    outW,
		logger:  logger,
		config:  appConfig,
		model:   model,
		catalog: cat,
	}
}

// Devices returns the names of the devices the app will expand. This is
// primarily for testing.
func (a *App) Devices() []string {
	names := make([]string, len(a.model.Devices))
	for i, d := range a.model.Devices {
		names[i] = d.Grid.Name
	}
	return names
}
