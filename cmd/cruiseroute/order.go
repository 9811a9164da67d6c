package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"text/tabwriter"

	"github.com/spf13/pflag"

	"github.com/katalvlaran/oceancruise/cruise"
	"github.com/katalvlaran/oceancruise/geo"
	"github.com/katalvlaran/oceancruise/internal/config"
	"github.com/katalvlaran/oceancruise/internal/logging"
	"github.com/katalvlaran/oceancruise/internal/mapexport"
	"github.com/katalvlaran/oceancruise/internal/sheet"
	"github.com/katalvlaran/oceancruise/internal/store"
	"github.com/katalvlaran/oceancruise/route"
)

func runOrder(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	fs := pflag.NewFlagSet("order", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	config.RegisterFlags(fs)
	input := fs.StringP("input", "i", "", "station sheet (.xlsx)")
	fs.String("sheet", "", "sheet name (default: first sheet)")
	output := fs.StringP("output", "o", "", "write the ordered track to this .xlsx file")
	geojsonOut := fs.String("geojson", "", "write the ordered track as GeoJSON")
	name := fs.String("name", "", "cruise name (default: sheet name)")
	save := fs.Bool("save", false, "store the ordered track in the --db database")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *input == "" {
		return errors.New("--input is required")
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
	engine := route.New(
		route.WithSolverOptions(opts),
		route.WithOrientation(orientation),
		route.WithLogger(logger),
	)

	f, err := os.Open(*input)
	if err != nil {
		return err
	}
	imp, err := sheet.Read(f, cfg.Sheet.Name)
	f.Close()
	if err != nil {
		return err
	}
	if len(imp.Skipped) > 0 {
		logger.Warn("rows skipped", slog.Any("rows", imp.Skipped))
	}
	track := imp.Track
	if *name != "" {
		track.Name = *name
	}

	sorted, res, err := track.Sort(engine)
	if err != nil {
		return err
	}
	if res.Warning != nil {
		logger.Warn("ordering degraded", slog.String("error", res.Warning.Error()))
	}
	logger.Info("track ordered",
		slog.String("cruise", sorted.Name),
		slog.Int("stations", sorted.Len()),
		slog.String("orientation", res.Orientation.String()),
	)

	cum := sorted.CumulativeDistances(geo.EarthRadiusKm)
	printTrack(stdout, sorted.Stations, cum, res.Orientation)

	if *output != "" {
		if err := sheet.WriteFile(*output, sorted, sheet.DefaultSheet); err != nil {
			return fmt.Errorf("write %s: %w", *output, err)
		}
	}
	if *geojsonOut != "" {
		data, err := mapexport.Marshal(sorted)
		if err != nil {
			return err
		}
		if err := os.WriteFile(*geojsonOut, data, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", *geojsonOut, err)
		}
	}
	if *save {
		if cfg.Store.Path == "" {
			return errors.New("--save needs --db (or store.path)")
		}
		st, err := store.Open(cfg.Store.Path, logger)
		if err != nil {
			return err
		}
		defer st.Close()
		if _, err := st.SaveTrack(ctx, sorted); err != nil {
			return err
		}
		var length float64
		if len(cum) > 0 {
			length = cum[len(cum)-1]
		}
		if _, err := st.RecordOrdering(ctx, sorted.Name, track.Names(), res, length); err != nil {
			return err
		}
	}

	return nil
}

func printTrack(w io.Writer, stations []cruise.Station, cum []float64, o route.Orientation) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "#\tstation\tkm\n")
	for i, s := range stations {
		fmt.Fprintf(tw, "%d\t%s\t%.1f\n", i+1, s, cum[i])
	}
	tw.Flush()
	fmt.Fprintf(w, "orientation: %s\n", o)
}
