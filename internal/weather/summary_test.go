package weather

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarize(t *testing.T) {
	series := []DailyWeather{
		{TempAvg: 10, TempMin: 5, TempMax: 15, DaylightHours: 10,
			ForagingModifier: 0, BroodRearingModifier: 0.3},
		{TempAvg: 20, TempMin: 14, TempMax: 26, DaylightHours: 14,
			Rainy: true, PrecipitationMM: 12.5,
			ForagingModifier: 0, BroodRearingModifier: 1.0},
		{TempAvg: 18, TempMin: 12, TempMax: 24, DaylightHours: 12,
			ForagingModifier: 0.4, BroodRearingModifier: 1.0},
		{TempAvg: 24, TempMin: 18, TempMax: 30, DaylightHours: 14,
			ForagingModifier: 1.0, BroodRearingModifier: 1.0},
	}

	s := Summarize(series)

	assert.Equal(t, 4, s.Days)
	assert.InDelta(t, 18.0, s.AvgTemp, 1e-9)
	assert.InDelta(t, 5.0, s.MinTemp, 1e-9)
	assert.InDelta(t, 30.0, s.MaxTemp, 1e-9)
	assert.Equal(t, 1, s.RainyDays)
	assert.InDelta(t, 12.5, s.TotalPrecipitationMM, 1e-9)
	assert.InDelta(t, 12.5, s.AvgDaylightHours, 1e-9)
	assert.Equal(t, 2, s.NoForagingDays)
	assert.Equal(t, 1, s.LimitedForagingDays)
	assert.Equal(t, 1, s.GoodForagingDays)
	assert.Equal(t, 0, s.NoBroodDays)
}

func TestSummarize_Empty(t *testing.T) {
	s := Summarize(nil)
	assert.Equal(t, 0, s.Days)
	assert.Zero(t, s.AvgTemp)
}

func TestSummarize_GeneratedSeries(t *testing.T) {
	cfg := BaiaMareConfig()
	cfg.Seed = 11

	series, err := Generate(cfg, 270)
	require.NoError(t, err)

	s := Summarize(series)
	assert.Equal(t, 270, s.Days)
	assert.Equal(t, 270, s.NoForagingDays+s.LimitedForagingDays+s.GoodForagingDays)
	// Every rainy day is also a no-foraging day.
	assert.GreaterOrEqual(t, s.NoForagingDays, s.RainyDays)
	assert.Less(t, s.MinTemp, s.MaxTemp)
}
