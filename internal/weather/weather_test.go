package weather

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate_Deterministic(t *testing.T) {
	cfg := BaiaMareConfig()
	cfg.Seed = 42

	a, err := Generate(cfg, 120)
	require.NoError(t, err)
	b, err := Generate(cfg, 120)
	require.NoError(t, err)

	assert.Equal(t, a, b, "identical seed must reproduce the series exactly")
}

func TestGenerate_SeedsDiffer(t *testing.T) {
	cfg := BaiaMareConfig()

	cfg.Seed = 1
	a, err := Generate(cfg, 60)
	require.NoError(t, err)

	cfg.Seed = 2
	b, err := Generate(cfg, 60)
	require.NoError(t, err)

	same := true
	for i := range a {
		if a[i].TempAvg != b[i].TempAvg {
			same = false
			break
		}
	}
	assert.False(t, same, "different seeds should produce different temperature series")
}

func TestGenerate_Validation(t *testing.T) {
	cfg := BaiaMareConfig()

	_, err := Generate(cfg, 0)
	assert.ErrorIs(t, err, ErrConfig)

	_, err = Generate(cfg, -5)
	assert.ErrorIs(t, err, ErrConfig)

	bad := cfg
	bad.Latitude = 95
	_, err = Generate(bad, 30)
	assert.ErrorIs(t, err, ErrConfig)

	bad = cfg
	bad.StartMonth = 2
	bad.StartDay = 30
	_, err = Generate(bad, 30)
	assert.ErrorIs(t, err, ErrConfig)
}

func TestGenerate_SeriesInvariants(t *testing.T) {
	cfg := ChiuzbaiaConfig()
	cfg.Seed = 7

	series, err := Generate(cfg, 365)
	require.NoError(t, err)
	require.Len(t, series, 365)

	for i, d := range series {
		assert.Equal(t, i, d.Day)
		assert.GreaterOrEqual(t, d.DayOfYear, 1)
		assert.LessOrEqual(t, d.DayOfYear, 365)
		assert.LessOrEqual(t, d.TempMin, d.TempAvg)
		assert.LessOrEqual(t, d.TempAvg, d.TempMax)
		assert.GreaterOrEqual(t, d.UsefulSunlightHours, 4.0)
		assert.LessOrEqual(t, d.UsefulSunlightHours, 10.0)
		assert.GreaterOrEqual(t, d.ForagingModifier, 0.0)
		assert.LessOrEqual(t, d.ForagingModifier, 1.0)
		assert.GreaterOrEqual(t, d.BroodRearingModifier, 0.0)
		assert.LessOrEqual(t, d.BroodRearingModifier, 1.0)
		if d.Rainy {
			assert.Zero(t, d.ForagingModifier, "day %d: rain grounds foragers", i)
			assert.GreaterOrEqual(t, d.PrecipitationMM, 0.0)
			assert.LessOrEqual(t, d.PrecipitationMM, 50.0)
		} else {
			assert.Zero(t, d.PrecipitationMM)
		}
	}
}

func TestGenerate_SeasonalShape(t *testing.T) {
	cfg := BaiaMareConfig()
	cfg.StartMonth = 1
	cfg.StartDay = 1
	cfg.Seed = 99

	series, err := Generate(cfg, 365)
	require.NoError(t, err)

	janAvg := meanTemp(series[:31])
	julAvg := meanTemp(series[181:212])
	assert.Greater(t, julAvg, janAvg+15, "July must be substantially warmer than January")

	// Summer solstice daylight exceeds winter solstice daylight at 47°N.
	assert.Greater(t, series[171].DaylightHours, series[354].DaylightHours+5)
}

func TestGenerate_AltitudeLapse(t *testing.T) {
	low := BaiaMareConfig()
	low.Seed = 5

	high := low
	high.Altitude = low.Altitude + 600

	a, err := Generate(low, 90)
	require.NoError(t, err)
	b, err := Generate(high, 90)
	require.NoError(t, err)

	// Same seed, same draws: the series differ only by the lapse offset.
	assert.InDelta(t, 3.6, meanTemp(a)-meanTemp(b), 0.1)
}

func TestForagingModifier(t *testing.T) {
	cases := []struct {
		temp float64
		want float64
	}{
		{5, 0},
		{14.9, 0},
		{15, 0},
		{16.5, 0.25},
		{18, 0.5},
		{19, 0.65},
		{19.9, 0.785},
		{20, 1.0},
		{25, 1.0},
		{30, 1.0},
		{31, 0.8},
	}
	for _, tc := range cases {
		assert.InDelta(t, tc.want, ForagingModifier(tc.temp, false), 1e-9, "temp %v", tc.temp)
	}

	assert.Zero(t, ForagingModifier(25, true), "rain overrides temperature")
}

func TestBroodRearingModifier(t *testing.T) {
	cases := []struct {
		temp float64
		want float64
	}{
		{-5, 0},
		{9.9, 0},
		{10, 0},
		{11, 0.15},
		{12, 0.3},
		{13.5, 0.5},
		{15, 0.7},
		{16.5, 0.85},
		{18, 1.0},
		{30, 1.0},
		{35, 1.0},
	}
	for _, tc := range cases {
		assert.InDelta(t, tc.want, BroodRearingModifier(tc.temp), 1e-9, "temp %v", tc.temp)
	}
}

func TestPresetConfig(t *testing.T) {
	cfg, ok := PresetConfig("Baia Mare")
	require.True(t, ok)
	assert.Equal(t, 220, cfg.Altitude)

	cfg, ok = PresetConfig("chiuzbaia")
	require.True(t, ok)
	assert.Equal(t, 575, cfg.Altitude)

	_, ok = PresetConfig("Cluj")
	assert.False(t, ok)
}

func meanTemp(series []DailyWeather) float64 {
	sum := 0.0
	for _, d := range series {
		sum += d.TempAvg
	}
	return sum / float64(len(series))
}
