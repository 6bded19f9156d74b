package app

import (
	"context"
	"fmt"
	"time"

	"github.com/specialistvlad/tilegrid/internal/config"
	"github.com/specialistvlad/tilegrid/internal/ctxlog"
	"github.com/specialistvlad/tilegrid/internal/expand"
	"github.com/specialistvlad/tilegrid/internal/report"
	"golang.org/x/sync/errgroup"
)

// Run expands every loaded device on a bounded pool of workers and writes
// the report once all of them succeeded. The first failure cancels the
// devices that have not started yet.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.", "workers", a.config.WorkerCount)

	devices := a.model.Devices
	if len(devices) == 0 {
		a.logger.Warn("No devices found, nothing to expand.")
		return nil
	}

	results := make([]*expand.ExpandedDevice, len(devices))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.config.WorkerCount)
	for i, d := range devices {
		g.Go(func() error {
			res, err := a.expandDevice(gctx, d)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return fmt.Errorf("expansion failed: %w", err)
	}
	a.logger.Info("All devices expanded.", "count", len(results))

	if err := a.write(results); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	a.logger.Debug("App.Run method finished.")
	return nil
}

// expandDevice runs the engine for one device. The engine signals broken
// inputs by panicking; the panic is turned into an error for this device.
func (a *App) expandDevice(ctx context.Context, d *config.Device) (res *expand.ExpandedDevice, err error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	ctx = ctxlog.With(ctx, "source", d.Source)
	logger := ctxlog.FromContext(ctx).With("device", d.Grid.Name)

	defer func() {
		if r := recover(); r != nil {
			logger.Error("Expansion panicked.", "panic", r)
			res, err = nil, fmt.Errorf("device %q (%s): %v", d.Grid.Name, d.Source, r)
		}
	}()

	start := time.Now()
	res = expand.Expand(ctx, d.Grid, a.catalog, d.Disabled)
	logger.Info("Device expanded.",
		"tiles", res.Graph.Width()*res.Graph.Height(),
		"bonded_pads", len(res.BondedIO),
		"holes", len(res.Holes),
		"frames", len(res.Geometry.Frames),
		"duration", time.Since(start),
	)
	return res, nil
}

func (a *App) write(results []*expand.ExpandedDevice) error {
	switch a.config.Format {
	case FormatYAML:
		docs := make([]report.Document, len(results))
		for i, res := range results {
			docs[i] = report.Export(res, a.catalog)
		}
		return report.WriteYAML(a.outW, docs)
	default:
		summaries := make([]report.Summary, len(results))
		for i, res := range results {
			summaries[i] = report.Summarize(res, a.catalog)
		}
		return report.WriteTable(a.outW, summaries)
	}
}
