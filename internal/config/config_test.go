package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talgya/hivesim/internal/calendar"
	"github.com/talgya/hivesim/internal/hive"
	"github.com/talgya/hivesim/internal/weather"
)

func writeScenario(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeScenario(t, `
location: Baia Mare
start_date:
  month: 3
  day: 1
num_days: 270
base_egg_laying_rate: 1100
base_attrition_rate: 600
total_frames: 10
initial_brood_frames: 6
frame_additions:
  30: 2
weather:
  enabled: true
  seed: 42
`)

	s, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "Baia Mare", s.Location)
	assert.Equal(t, 3, s.StartDate.Month)
	assert.Equal(t, 1, s.StartDate.Day)
	assert.Equal(t, 270, s.NumDays)
	assert.InDelta(t, 1100.0, s.BaseEggLayingRate, 1e-9)
	assert.Equal(t, map[int]int{30: 2}, s.FrameAdditions)
	require.NotNil(t, s.Weather)
	assert.True(t, s.Weather.Enabled)
	assert.Equal(t, int64(42), s.Weather.Seed)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = Load(writeScenario(t, "location: [unclosed"))
	assert.Error(t, err)
}

func TestBuild(t *testing.T) {
	s := &Scenario{
		Location:           "Baia Mare",
		StartDate:          DateSpec{Month: 3, Day: 1},
		NumDays:            270,
		BaseEggLayingRate:  1100,
		BaseAttritionRate:  600,
		TotalFrames:        10,
		InitialBroodFrames: 6,
	}

	cfg, days, err := s.Build()
	require.NoError(t, err)
	assert.Equal(t, 270, days)
	assert.Equal(t, "Baia Mare", cfg.Calendar.Location())
	assert.Nil(t, cfg.Weather)

	sim, err := hive.New(cfg)
	require.NoError(t, err)
	require.NoError(t, sim.Simulate(days))
	assert.Len(t, sim.History(), 270)
}

func TestBuild_WithWeatherPreset(t *testing.T) {
	s := &Scenario{
		Location:           "Chiuzbaia",
		StartDate:          DateSpec{Month: 4, Day: 15},
		NumDays:            120,
		BaseEggLayingRate:  900,
		BaseAttritionRate:  500,
		TotalFrames:        10,
		InitialBroodFrames: 4,
		Weather:            &WeatherSpec{Enabled: true, Seed: 7},
	}

	cfg, days, err := s.Build()
	require.NoError(t, err)
	assert.Equal(t, 120, days)
	require.Len(t, cfg.Weather, 120)

	// Preset parameters apply: same seed reproduces the series.
	want, err := weather.Generate(weather.Config{
		Location: "Chiuzbaia", Latitude: 47.60, Altitude: 575,
		StartMonth: 4, StartDay: 15, Seed: 7,
	}, 120)
	require.NoError(t, err)
	assert.Equal(t, want, cfg.Weather)
}

func TestBuild_WeatherOverrides(t *testing.T) {
	lat := 46.0
	alt := 900
	s := &Scenario{
		Location:           "Baia Mare",
		StartDate:          DateSpec{Month: 3, Day: 1},
		NumDays:            60,
		BaseEggLayingRate:  1000,
		BaseAttritionRate:  400,
		TotalFrames:        10,
		InitialBroodFrames: 6,
		Weather:            &WeatherSpec{Enabled: true, Latitude: &lat, Altitude: &alt, Seed: 3},
	}

	cfg, _, err := s.Build()
	require.NoError(t, err)

	want, err := weather.Generate(weather.Config{
		Location: "Baia Mare", Latitude: 46.0, Altitude: 900,
		StartMonth: 3, StartDay: 1, Seed: 3,
	}, 60)
	require.NoError(t, err)
	assert.Equal(t, want, cfg.Weather)
}

func TestBuild_Errors(t *testing.T) {
	valid := Scenario{
		Location:           "Baia Mare",
		StartDate:          DateSpec{Month: 3, Day: 1},
		NumDays:            100,
		BaseEggLayingRate:  1000,
		BaseAttritionRate:  400,
		TotalFrames:        10,
		InitialBroodFrames: 6,
	}

	t.Run("unknown location", func(t *testing.T) {
		s := valid
		s.Location = "Atlantis"
		_, _, err := s.Build()
		assert.ErrorIs(t, err, calendar.ErrConfig)
	})

	t.Run("non-positive days", func(t *testing.T) {
		s := valid
		s.NumDays = 0
		_, _, err := s.Build()
		assert.ErrorIs(t, err, hive.ErrConfig)
	})

	t.Run("bad start date", func(t *testing.T) {
		s := valid
		s.StartDate = DateSpec{Month: 2, Day: 30}
		_, _, err := s.Build()
		assert.ErrorIs(t, err, hive.ErrConfig)
	})

	t.Run("engine validation surfaces", func(t *testing.T) {
		s := valid
		s.InitialBroodFrames = 99
		_, _, err := s.Build()
		assert.ErrorIs(t, err, hive.ErrConfig)
	})

	t.Run("bad weather latitude", func(t *testing.T) {
		lat := 120.0
		s := valid
		s.Weather = &WeatherSpec{Enabled: true, Latitude: &lat}
		_, _, err := s.Build()
		assert.ErrorIs(t, err, weather.ErrConfig)
	})
}
