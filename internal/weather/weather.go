// Package weather generates seeded, location-parameterized daily weather
// series and derives foraging and brood-rearing modifiers from them.
//
// A series is generated once per run and immutable afterwards. Temperature
// anomalies follow a first-order autoregressive process so warm and cold
// spells persist across days; cloud cover on dry days comes from a smooth
// simplex noise field on the same seed. Identical configuration and seed
// reproduce an identical series.
package weather

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"time"

	opensimplex "github.com/ojrac/opensimplex-go"

	"github.com/talgya/hivesim/internal/calendar"
)

// ErrConfig marks invalid static weather input detected before generation.
var ErrConfig = errors.New("invalid weather configuration")

// Continental climate parameters for the Maramures region.
const (
	annualMeanTemp    = 8.5  // °C regional annual average
	seasonalAmplitude = 22.0 // °C seasonal swing
	baseDailySpread   = 8.0  // °C typical min/max spread
	spreadJitter      = 1.5  // std dev of daily spread variation
	lapsePer100m      = 0.6  // °C lost per 100 m altitude

	// AR(1) temperature anomaly: dev = rho*prev + (1-rho)*draw.
	anomalyRho   = 0.7
	anomalySigma = 2.5

	annualRainyDays = 120
	precipMeanMM    = 8.0
	precipCapMM     = 50.0

	rainyCloudCover = 0.7
	minUsefulHours  = 4.0
	maxUsefulHours  = 10.0
)

// Config describes the location and start conditions of a weather run.
type Config struct {
	Location   string
	Latitude   float64 // degrees, drives day length
	Altitude   int     // meters, applies the lapse-rate offset
	StartMonth int
	StartDay   int

	// Seed for the stochastic draws. Zero means derive one from the clock,
	// giving a non-reproducible run.
	Seed int64
}

// BaiaMareConfig returns weather parameters for Baia Mare (220 m),
// starting March 1st.
func BaiaMareConfig() Config {
	return Config{Location: "Baia Mare", Latitude: 47.66, Altitude: 220, StartMonth: 3, StartDay: 1}
}

// ChiuzbaiaConfig returns weather parameters for Chiuzbaia (575 m),
// starting March 1st.
func ChiuzbaiaConfig() Config {
	return Config{Location: "Chiuzbaia", Latitude: 47.60, Altitude: 575, StartMonth: 3, StartDay: 1}
}

// PresetConfig resolves a location name to its weather preset.
func PresetConfig(location string) (Config, bool) {
	switch location {
	case "Baia Mare", "baia mare", "baia-mare":
		return BaiaMareConfig(), true
	case "Chiuzbaia", "chiuzbaia":
		return ChiuzbaiaConfig(), true
	}
	return Config{}, false
}

// DailyWeather is one generated day. Values are rounded at generation time
// and never recomputed.
type DailyWeather struct {
	Day       int    // simulation day index, 0-based
	DayOfYear int    // calendar day of year, 1-365
	Date      string // "Mar 01" style label

	TempMin float64
	TempMax float64
	TempAvg float64

	Rainy           bool
	PrecipitationMM float64

	DaylightHours       float64
	UsefulSunlightHours float64 // effective foraging window, 4-10 h

	ForagingModifier     float64 // 0-1
	BroodRearingModifier float64 // 0-1
}

// Generate produces numDays of weather for the configured location.
// The series is deterministic for a fixed nonzero seed.
func Generate(cfg Config, numDays int) ([]DailyWeather, error) {
	if numDays <= 0 {
		return nil, fmt.Errorf("%w: num_days must be positive, got %d", ErrConfig, numDays)
	}
	if cfg.Latitude < -90 || cfg.Latitude > 90 {
		return nil, fmt.Errorf("%w: latitude must be within [-90, 90], got %v", ErrConfig, cfg.Latitude)
	}
	startDOY, err := calendar.DayOfYear(cfg.StartMonth, cfg.StartDay)
	if err != nil {
		return nil, fmt.Errorf("%w: start_date: %v", ErrConfig, err)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))
	clouds := opensimplex.NewNormalized(seed + 1)

	altOffset := -float64(cfg.Altitude) / 100 * lapsePer100m

	series := make([]DailyWeather, numDays)
	anomaly := 0.0
	for day := 0; day < numDays; day++ {
		doy := calendar.NormalizeDay(startDOY + day)

		// Seasonal baseline peaks mid-July (day ~196) and bottoms mid-January.
		baseline := annualMeanTemp + altOffset +
			seasonalAmplitude*math.Sin(2*math.Pi*float64(doy-105)/365)

		anomaly = anomalyRho*anomaly + (1-anomalyRho)*rng.NormFloat64()*anomalySigma
		avg := baseline + anomaly

		spread := baseDailySpread + rng.NormFloat64()*spreadJitter
		if spread < 2 {
			spread = 2
		}

		rainy := rng.Float64() < rainProbability(doy)
		precip := 0.0
		if rainy {
			precip = math.Min(rng.ExpFloat64()*precipMeanMM, precipCapMM)
		}

		daylight := dayLength(cfg.Latitude, doy)

		cover := rainyCloudCover
		if !rainy {
			// Smooth multi-day cloud field: spells of clear or overcast
			// weather rather than independent per-day draws.
			cover = 0.1 + 0.3*clouds.Eval2(float64(day)*0.15, 0)
		}
		useful := clampHours(daylight * 0.7 * (1 - cover*0.4))

		series[day] = DailyWeather{
			Day:                  day,
			DayOfYear:            doy,
			Date:                 calendar.DateString(doy),
			TempMin:              round1(avg - spread/2),
			TempMax:              round1(avg + spread/2),
			TempAvg:              round1(avg),
			Rainy:                rainy,
			PrecipitationMM:      round1(precip),
			DaylightHours:        round1(daylight),
			UsefulSunlightHours:  round1(useful),
			ForagingModifier:     round3(ForagingModifier(avg, rainy)),
			BroodRearingModifier: round3(BroodRearingModifier(avg)),
		}
	}
	return series, nil
}

// ForagingModifier derives daily foraging capability from the mean
// temperature. Rain grounds foragers outright regardless of temperature.
func ForagingModifier(tempAvg float64, rainy bool) float64 {
	if rainy {
		return 0
	}
	switch {
	case tempAvg < 15:
		return 0
	case tempAvg < 18:
		return (tempAvg - 15) / 3 * 0.5
	case tempAvg < 20:
		return 0.5 + (tempAvg-18)/2*0.3
	case tempAvg <= 30:
		return 1.0
	default:
		return 0.8 // heat stress
	}
}

// BroodRearingModifier derives the queen's laying capability from the mean
// temperature. Below 10 °C the cluster heats existing brood instead of
// starting new brood; rain does not by itself suppress laying.
func BroodRearingModifier(tempAvg float64) float64 {
	switch {
	case tempAvg < 10:
		return 0
	case tempAvg < 12:
		return (tempAvg - 10) / 2 * 0.3
	case tempAvg < 15:
		return 0.3 + (tempAvg-12)/3*0.4
	case tempAvg < 18:
		return 0.7 + (tempAvg-15)/3*0.3
	default:
		return 1.0
	}
}

// rainProbability is the daily chance of rain, seasonally weighted around
// ~120 rainy days per year (spring showers, summer thunderstorms).
func rainProbability(doy int) float64 {
	factor := 0.8 // winter
	switch {
	case doy >= 60 && doy < 152:
		factor = 1.2 // spring
	case doy >= 152 && doy < 244:
		factor = 1.3 // summer
	case doy >= 244 && doy < 335:
		factor = 1.1 // fall
	}
	return annualRainyDays / 365.0 * factor
}

// dayLength computes daylight hours from latitude and day of year using
// solar declination and the sunrise hour angle.
func dayLength(latitude float64, doy int) float64 {
	declination := 23.45 * math.Sin(2*math.Pi*float64(doy-81)/365)

	latRad := latitude * math.Pi / 180
	decRad := declination * math.Pi / 180

	cosHour := -math.Tan(latRad) * math.Tan(decRad)
	cosHour = math.Max(-1, math.Min(1, cosHour))

	hourAngle := math.Acos(cosHour) * 180 / math.Pi
	return hourAngle * 2.0 / 15.0
}

func clampHours(h float64) float64 {
	return math.Max(minUsefulHours, math.Min(maxUsefulHours, h))
}

func round1(v float64) float64 { return math.Round(v*10) / 10 }
func round3(v float64) float64 { return math.Round(v*1000) / 1000 }
