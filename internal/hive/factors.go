package hive

import (
	"github.com/talgya/hivesim/internal/calendar"
	"github.com/talgya/hivesim/internal/weather"
)

// DayFactors carries everything the engine needs to modulate one day's
// rates: the calendar factors for the day of year and, when a weather model
// is attached, that day's weather record.
type DayFactors struct {
	DayOfYear int
	Calendar  calendar.Factors
	Weather   *weather.DailyWeather // nil when no weather model is attached
}

// BroodMultiplier is the weather gate on egg laying; neutral 1.0 without
// weather so a detached run behaves identically to one with ideal weather.
func (f DayFactors) BroodMultiplier() float64 {
	if f.Weather == nil {
		return 1.0
	}
	return f.Weather.BroodRearingModifier
}

// ForagingMultiplier is the weather gate on foraging; neutral 1.0 without
// weather.
func (f DayFactors) ForagingMultiplier() float64 {
	if f.Weather == nil {
		return 1.0
	}
	return f.Weather.ForagingModifier
}

// FactorFunc supplies the daily rate modulation for a simulation day index.
// The engine takes modulation as a pluggable function rather than by
// subclassing; SeasonalFactors is the standard implementation.
type FactorFunc func(day int) DayFactors

// SeasonalFactors composes a calendar and an optional pre-generated weather
// series into a FactorFunc. Days beyond the end of the weather series fall
// back to neutral weather, the same as running detached.
func SeasonalFactors(cal *calendar.Calendar, series []weather.DailyWeather, startDayOfYear int) FactorFunc {
	return func(day int) DayFactors {
		doy := calendar.NormalizeDay(startDayOfYear + day)
		f := DayFactors{
			DayOfYear: doy,
			Calendar:  cal.DailyFactors(doy),
		}
		if day < len(series) {
			w := series[day]
			f.Weather = &w
		}
		return f
	}
}
