package main

import (
	"context"
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/oceancruise/internal/config"
	"github.com/katalvlaran/oceancruise/internal/logging"
	"github.com/katalvlaran/oceancruise/internal/metrics"
	"github.com/katalvlaran/oceancruise/internal/server"
	"github.com/katalvlaran/oceancruise/internal/store"
	"github.com/katalvlaran/oceancruise/tsp"
)

func runServe(ctx context.Context, args []string, stderr io.Writer) error {
	fs := pflag.NewFlagSet("serve", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	config.RegisterFlags(fs)
	fs.String("addr", ":8080", "listen address")
	fs.Int("max-stations", server.DefaultMaxStations, "largest station set accepted per request")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.Load(fs)
	if err != nil {
		return err
	}
	logger := logging.Setup(cfg.Log.Level, cfg.Log.Format, stderr)

	opts, err := cfg.Route.SolverOptions()
	if err != nil {
		return err
	}
	orientation, err := cfg.Route.OrientationMode()
	if err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	deps := server.Dependencies{
		Solver:      tsp.New(opts),
		Orientation: orientation,
		Metrics:     metrics.New(reg),
		Logger:      logger,
		MaxStations: cfg.Server.MaxStations,
	}
	if cfg.Store.Path != "" {
		st, err := store.Open(cfg.Store.Path, logger)
		if err != nil {
			return err
		}
		defer st.Close()
		deps.Store = st
	}

	return server.New(deps).Run(ctx, cfg.Server.Addr,
		cfg.Server.ReadTimeout, cfg.Server.WriteTimeout, cfg.Server.ShutdownTimeout)
}
