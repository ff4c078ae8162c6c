// Command hivesim runs a honeybee colony simulation from a YAML scenario
// file, prints a run summary, and optionally stores the full daily history
// in a SQLite database.
//
// Usage:
//
//	hivesim <scenario.yaml>
//
// Set HIVESIM_DB to a database path to persist the run.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/talgya/hivesim/internal/config"
	"github.com/talgya/hivesim/internal/hive"
	"github.com/talgya/hivesim/internal/metrics"
	"github.com/talgya/hivesim/internal/persistence"
	"github.com/talgya/hivesim/internal/weather"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	if len(os.Args) != 2 {
		fmt.Fprintf(os.Stderr, "usage: %s <scenario.yaml>\n", os.Args[0])
		os.Exit(2)
	}
	scenarioPath := os.Args[1]

	scenario, err := config.Load(scenarioPath)
	if err != nil {
		slog.Error("failed to load scenario", "path", scenarioPath, "error", err)
		os.Exit(1)
	}

	cfg, numDays, err := scenario.Build()
	if err != nil {
		slog.Error("invalid scenario", "path", scenarioPath, "error", err)
		os.Exit(1)
	}

	slog.Info("scenario loaded",
		"location", scenario.Location,
		"start", fmt.Sprintf("%02d-%02d", scenario.StartDate.Month, scenario.StartDate.Day),
		"days", numDays,
		"weather", len(cfg.Weather) > 0,
	)
	if len(cfg.Weather) > 0 {
		ws := weather.Summarize(cfg.Weather)
		slog.Info("weather generated",
			"avg_temp", fmt.Sprintf("%.1f", ws.AvgTemp),
			"rainy_days", ws.RainyDays,
			"good_foraging_days", ws.GoodForagingDays,
		)
	}

	sim, err := hive.New(cfg)
	if err != nil {
		slog.Error("failed to build simulator", "error", err)
		os.Exit(1)
	}
	if err := sim.Simulate(numDays); err != nil {
		slog.Error("simulation failed", "error", err)
		os.Exit(1)
	}

	summary := metrics.Summarize(sim.History())
	fmt.Println(summary)

	if dbPath := os.Getenv("HIVESIM_DB"); dbPath != "" {
		db, err := persistence.Open(dbPath)
		if err != nil {
			slog.Error("failed to open database", "path", dbPath, "error", err)
			os.Exit(1)
		}
		defer db.Close()

		var seed int64
		if scenario.Weather != nil {
			seed = scenario.Weather.Seed
		}
		runID, err := db.SaveRun(persistence.RunMeta{
			Location:   scenario.Location,
			StartMonth: scenario.StartDate.Month,
			StartDay:   scenario.StartDate.Day,
			NumDays:    numDays,
			Seed:       seed,
		}, sim.History())
		if err != nil {
			slog.Error("failed to save run", "error", err)
			os.Exit(1)
		}
		fmt.Printf("Run saved as %s in %s\n", runID, dbPath)
	}
}
