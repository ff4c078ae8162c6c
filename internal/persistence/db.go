// Package persistence provides SQLite-based storage of simulation runs.
// Each run is saved as a metadata row plus its full daily history series.
package persistence

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/talgya/hivesim/internal/hive"
)

// DB wraps a SQLite connection for run storage.
type DB struct {
	conn *sqlx.DB
}

// Open opens or creates a SQLite database at the given path.
func Open(path string) (*DB, error) {
	conn, err := sqlx.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	db := &DB{conn: conn}
	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return db, nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

func (db *DB) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		location TEXT NOT NULL,
		start_month INTEGER NOT NULL,
		start_day INTEGER NOT NULL,
		num_days INTEGER NOT NULL,
		seed INTEGER NOT NULL,
		created_at TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS history (
		run_id TEXT NOT NULL,
		day INTEGER NOT NULL,
		day_of_year INTEGER NOT NULL,
		date TEXT NOT NULL,
		active_flows TEXT NOT NULL,
		egg_modifier REAL NOT NULL,
		attrition_modifier REAL NOT NULL,
		has_weather INTEGER NOT NULL,
		temp_avg REAL NOT NULL,
		rainy INTEGER NOT NULL,
		foraging_modifier REAL NOT NULL,
		brood_modifier REAL NOT NULL,
		eggs_laid INTEGER NOT NULL,
		eggs INTEGER NOT NULL,
		larvae INTEGER NOT NULL,
		pupae INTEGER NOT NULL,
		adults INTEGER NOT NULL,
		emerged INTEGER NOT NULL,
		died INTEGER NOT NULL,
		brood_count INTEGER NOT NULL,
		brood_frames_used INTEGER NOT NULL,
		occupancy_pct REAL NOT NULL,
		congestion INTEGER NOT NULL,
		honey_kg REAL NOT NULL,
		PRIMARY KEY (run_id, day)
	);

	CREATE INDEX IF NOT EXISTS idx_history_run ON history(run_id);
	`
	_, err := db.conn.Exec(schema)
	return err
}

// RunMeta describes the configuration a run was produced from.
type RunMeta struct {
	Location   string
	StartMonth int
	StartDay   int
	NumDays    int
	Seed       int64
}

// RunRecord is a stored run's metadata row.
type RunRecord struct {
	ID         string `db:"id"`
	Location   string `db:"location"`
	StartMonth int    `db:"start_month"`
	StartDay   int    `db:"start_day"`
	NumDays    int    `db:"num_days"`
	Seed       int64  `db:"seed"`
	CreatedAt  string `db:"created_at"`
}

// SaveRun stores a run's metadata and full history transactionally and
// returns its generated run ID.
func (db *DB) SaveRun(meta RunMeta, hist hive.History) (string, error) {
	runID := uuid.NewString()

	tx, err := db.conn.Beginx()
	if err != nil {
		return "", err
	}
	defer tx.Rollback()

	_, err = tx.Exec(`INSERT INTO runs (id, location, start_month, start_day, num_days, seed, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		runID, meta.Location, meta.StartMonth, meta.StartDay, meta.NumDays, meta.Seed,
		time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return "", fmt.Errorf("insert run: %w", err)
	}

	stmt, err := tx.Preparex(`INSERT INTO history
		(run_id, day, day_of_year, date, active_flows, egg_modifier, attrition_modifier,
		 has_weather, temp_avg, rainy, foraging_modifier, brood_modifier,
		 eggs_laid, eggs, larvae, pupae, adults, emerged, died,
		 brood_count, brood_frames_used, occupancy_pct, congestion, honey_kg)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return "", err
	}
	defer stmt.Close()

	for _, snap := range hist {
		flowsJSON, err := json.Marshal(snap.ActiveFlows)
		if err != nil {
			return "", fmt.Errorf("marshal flows day %d: %w", snap.Day, err)
		}

		_, err = stmt.Exec(
			runID, snap.Day, snap.DayOfYear, snap.Date, string(flowsJSON),
			snap.EggRateModifier, snap.AttritionModifier,
			boolInt(snap.HasWeather), snap.TempAvg, boolInt(snap.Rainy),
			snap.ForagingModifier, snap.BroodRearingModifier,
			snap.EggsLaid, snap.Eggs, snap.Larvae, snap.Pupae,
			snap.Adults, snap.Emerged, snap.Died,
			snap.BroodCount, snap.BroodFramesUsed, snap.OccupancyPct,
			boolInt(snap.Congestion), snap.HoneyKg,
		)
		if err != nil {
			return "", fmt.Errorf("insert history day %d: %w", snap.Day, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", err
	}

	slog.Info("run saved", "run_id", runID, "days", len(hist), "location", meta.Location)
	return runID, nil
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

type historyRow struct {
	Day                  int     `db:"day"`
	DayOfYear            int     `db:"day_of_year"`
	Date                 string  `db:"date"`
	ActiveFlows          string  `db:"active_flows"`
	EggRateModifier      float64 `db:"egg_modifier"`
	AttritionModifier    float64 `db:"attrition_modifier"`
	HasWeather           int     `db:"has_weather"`
	TempAvg              float64 `db:"temp_avg"`
	Rainy                int     `db:"rainy"`
	ForagingModifier     float64 `db:"foraging_modifier"`
	BroodRearingModifier float64 `db:"brood_modifier"`
	EggsLaid             int     `db:"eggs_laid"`
	Eggs                 int     `db:"eggs"`
	Larvae               int     `db:"larvae"`
	Pupae                int     `db:"pupae"`
	Adults               int     `db:"adults"`
	Emerged              int     `db:"emerged"`
	Died                 int     `db:"died"`
	BroodCount           int     `db:"brood_count"`
	BroodFramesUsed      int     `db:"brood_frames_used"`
	OccupancyPct         float64 `db:"occupancy_pct"`
	Congestion           int     `db:"congestion"`
	HoneyKg              float64 `db:"honey_kg"`
}

// LoadHistory returns the full history series of a stored run, in day order.
func (db *DB) LoadHistory(runID string) (hive.History, error) {
	var rows []historyRow
	err := db.conn.Select(&rows, `SELECT
		day, day_of_year, date, active_flows, egg_modifier, attrition_modifier,
		has_weather, temp_avg, rainy, foraging_modifier, brood_modifier,
		eggs_laid, eggs, larvae, pupae, adults, emerged, died,
		brood_count, brood_frames_used, occupancy_pct, congestion, honey_kg
		FROM history WHERE run_id = ? ORDER BY day`, runID)
	if err != nil {
		return nil, fmt.Errorf("load history %s: %w", runID, err)
	}

	hist := make(hive.History, 0, len(rows))
	for _, r := range rows {
		var flows []string
		if err := json.Unmarshal([]byte(r.ActiveFlows), &flows); err != nil {
			return nil, fmt.Errorf("unmarshal flows day %d: %w", r.Day, err)
		}
		hist = append(hist, hive.Snapshot{
			Day:                  r.Day,
			DayOfYear:            r.DayOfYear,
			Date:                 r.Date,
			ActiveFlows:          flows,
			EggRateModifier:      r.EggRateModifier,
			AttritionModifier:    r.AttritionModifier,
			HasWeather:           r.HasWeather != 0,
			TempAvg:              r.TempAvg,
			Rainy:                r.Rainy != 0,
			ForagingModifier:     r.ForagingModifier,
			BroodRearingModifier: r.BroodRearingModifier,
			EggsLaid:             r.EggsLaid,
			Eggs:                 r.Eggs,
			Larvae:               r.Larvae,
			Pupae:                r.Pupae,
			Adults:               r.Adults,
			Emerged:              r.Emerged,
			Died:                 r.Died,
			BroodCount:           r.BroodCount,
			BroodFramesUsed:      r.BroodFramesUsed,
			OccupancyPct:         r.OccupancyPct,
			Congestion:           r.Congestion != 0,
			HoneyKg:              r.HoneyKg,
		})
	}
	return hist, nil
}

// RecentRuns returns the most recently created runs, newest first.
func (db *DB) RecentRuns(limit int) ([]RunRecord, error) {
	var runs []RunRecord
	err := db.conn.Select(&runs,
		"SELECT id, location, start_month, start_day, num_days, seed, created_at FROM runs ORDER BY created_at DESC LIMIT ?",
		limit,
	)
	return runs, err
}
