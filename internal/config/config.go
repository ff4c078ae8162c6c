// Package config loads simulation scenarios from YAML files and resolves
// them into validated engine configurations.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/talgya/hivesim/internal/calendar"
	"github.com/talgya/hivesim/internal/hive"
	"github.com/talgya/hivesim/internal/weather"
)

// Scenario is one simulation run description as written in a YAML file.
type Scenario struct {
	// Location names a preset calendar (and, when weather is enabled, its
	// weather parameters): "Baia Mare" or "Chiuzbaia".
	Location string `yaml:"location"`

	StartDate DateSpec `yaml:"start_date"`
	NumDays   int      `yaml:"num_days"`

	BaseEggLayingRate float64 `yaml:"base_egg_laying_rate"`
	BaseAttritionRate float64 `yaml:"base_attrition_rate"`

	TotalFrames        int `yaml:"total_frames"`
	InitialBroodFrames int `yaml:"initial_brood_frames"`
	CellsPerFrame      int `yaml:"cells_per_frame,omitempty"`

	// FrameAdditions schedules hive expansion: simulation day → frames.
	FrameAdditions map[int]int `yaml:"frame_additions,omitempty"`

	Weather *WeatherSpec `yaml:"weather,omitempty"`
}

// DateSpec is a (month, day) calendar date.
type DateSpec struct {
	Month int `yaml:"month"`
	Day   int `yaml:"day"`
}

// WeatherSpec enables the weather model for a scenario. Latitude and
// altitude default to the location preset when omitted.
type WeatherSpec struct {
	Enabled  bool     `yaml:"enabled"`
	Latitude *float64 `yaml:"latitude,omitempty"`
	Altitude *int     `yaml:"altitude,omitempty"`
	Seed     int64    `yaml:"seed,omitempty"`
}

// Load reads and parses a scenario file. Semantic validation happens in
// Build so that programmatically constructed scenarios go through the same
// checks.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}

	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse scenario %s: %w", path, err)
	}
	return &s, nil
}

// Build resolves the scenario into a validated engine configuration and the
// number of days to simulate. All configuration errors surface here, before
// any stepping.
func (s *Scenario) Build() (hive.Config, int, error) {
	cal, err := calendar.Preset(s.Location)
	if err != nil {
		return hive.Config{}, 0, err
	}
	if s.NumDays <= 0 {
		return hive.Config{}, 0, fmt.Errorf("%w: num_days must be positive, got %d",
			hive.ErrConfig, s.NumDays)
	}

	cfg := hive.Config{
		Calendar:           cal,
		StartMonth:         s.StartDate.Month,
		StartDay:           s.StartDate.Day,
		BaseEggRate:        s.BaseEggLayingRate,
		BaseAttritionRate:  s.BaseAttritionRate,
		TotalFrames:        s.TotalFrames,
		InitialBroodFrames: s.InitialBroodFrames,
		CellsPerFrame:      s.CellsPerFrame,
		FrameAdditions:     s.FrameAdditions,
	}

	if s.Weather != nil && s.Weather.Enabled {
		wcfg, ok := weather.PresetConfig(s.Location)
		if !ok {
			wcfg = weather.Config{Location: s.Location}
			if s.Weather.Latitude == nil {
				return hive.Config{}, 0, fmt.Errorf(
					"%w: weather.latitude is required for location %q (no preset)",
					weather.ErrConfig, s.Location)
			}
		}
		if s.Weather.Latitude != nil {
			wcfg.Latitude = *s.Weather.Latitude
		}
		if s.Weather.Altitude != nil {
			wcfg.Altitude = *s.Weather.Altitude
		}
		wcfg.StartMonth = s.StartDate.Month
		wcfg.StartDay = s.StartDate.Day
		wcfg.Seed = s.Weather.Seed

		series, err := weather.Generate(wcfg, s.NumDays)
		if err != nil {
			return hive.Config{}, 0, err
		}
		cfg.Weather = series
	}

	// Validate eagerly so a bad scenario fails here rather than at run time.
	if _, err := hive.New(cfg); err != nil {
		return hive.Config{}, 0, err
	}
	return cfg, s.NumDays, nil
}
