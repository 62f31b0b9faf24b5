// Command roadsweep computes balanced road-coverage routes for a fleet of
// vehicles over a road-graph JSON, and converts computed routes into
// per-vehicle GeoJSON files.
//
// Usage:
//
//	roadsweep plan    <road-graph.json> <vehicles.json> <output.json>
//	roadsweep geojson <road-graph.json> <paths.json> <out-dir>
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"roadsweep/config"
	"roadsweep/data"
	"roadsweep/eulerize"
	"roadsweep/geojson"
	"roadsweep/plan"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	var err error
	switch os.Args[1] {
	case "plan":
		err = runPlan(os.Args[2:])
	case "geojson":
		err = runGeoJSON(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
	if err != nil {
		slog.Error("run failed", "err", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage:")
	fmt.Fprintln(os.Stderr, "  roadsweep plan    <road-graph.json> <vehicles.json> <output.json>")
	fmt.Fprintln(os.Stderr, "  roadsweep geojson <road-graph.json> <paths.json> <out-dir>")
}

func setupLogger(verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}

func runPlan(args []string) error {
	fs := flag.NewFlagSet("plan", flag.ExitOnError)
	cfgPath := fs.String("config", "", "path to planner YAML config")
	metricsAddr := fs.String("metrics-addr", "", "serve Prometheus metrics on this address during the run")
	verbose := fs.Bool("v", false, "debug logging")
	_ = fs.Parse(args)
	if fs.NArg() != 3 {
		fs.Usage()
		return fmt.Errorf("plan: expected 3 arguments, got %d", fs.NArg())
	}
	setupLogger(*verbose)

	cfg := config.Default()
	if *cfgPath != "" {
		var err error
		if cfg, err = config.Load(*cfgPath); err != nil {
			return err
		}
	}
	if *metricsAddr != "" {
		cfg.MetricsAddr = *metricsAddr
	}
	if cfg.MetricsAddr != "" {
		go func() {
			mux := http.NewServeMux()
			mux.Handle("/metrics", promhttp.Handler())
			if err := http.ListenAndServe(cfg.MetricsAddr, mux); err != nil {
				slog.Warn("metrics endpoint stopped", "err", err)
			}
		}()
		slog.Info("serving metrics", "addr", cfg.MetricsAddr)
	}

	rg, err := data.LoadRoadGraph(fs.Arg(0))
	if err != nil {
		return err
	}
	starts, err := data.LoadVehicles(fs.Arg(1))
	if err != nil {
		return err
	}
	g, err := rg.BuildGraph()
	if err != nil {
		return err
	}
	slog.Info("loaded road graph",
		"nodes", g.NodeCount(), "roads", g.EdgeCount(),
		"total_length", g.TotalLength(), "vehicles", len(starts))

	res, err := plan.Build(g, starts, plan.Options{
		Workers:  cfg.Workers,
		Eulerize: eulerize.Options{ExactMatchLimit: cfg.ExactMatchLimit},
	})
	if err != nil {
		return err
	}
	for _, w := range res.Warnings {
		slog.Warn(w.String())
	}

	pf := data.NewPathsFile(uuid.NewString(), res.Routes)
	if err := data.SavePaths(fs.Arg(2), pf); err != nil {
		return err
	}
	slog.Info("wrote plan", "plan_id", pf.PlanID, "vehicles", len(pf.Vehicles), "output", fs.Arg(2))
	return nil
}

func runGeoJSON(args []string) error {
	fs := flag.NewFlagSet("geojson", flag.ExitOnError)
	verbose := fs.Bool("v", false, "debug logging")
	_ = fs.Parse(args)
	if fs.NArg() != 3 {
		fs.Usage()
		return fmt.Errorf("geojson: expected 3 arguments, got %d", fs.NArg())
	}
	setupLogger(*verbose)

	rg, err := data.LoadRoadGraph(fs.Arg(0))
	if err != nil {
		return err
	}
	pf, err := data.LoadPaths(fs.Arg(1))
	if err != nil {
		return err
	}
	outDir := fs.Arg(2)
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("create output dir %s: %w", outDir, err)
	}

	coords := rg.CoordinateIndex()
	for i, vp := range pf.Vehicles {
		fc, err := geojson.FromPath(coords, i, vp)
		if err != nil {
			return err
		}
		raw, err := json.MarshalIndent(fc, "", "\t")
		if err != nil {
			return fmt.Errorf("encode geojson for vehicle %d: %w", i, err)
		}
		out := filepath.Join(outDir, fmt.Sprintf("path-%d.geojson", i))
		if err := os.WriteFile(out, raw, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", out, err)
		}
		slog.Debug("wrote geojson", "vehicle", i, "file", out)
	}
	slog.Info("wrote geojson files", "count", len(pf.Vehicles), "dir", outDir)
	return nil
}
