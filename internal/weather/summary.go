package weather

// Stats aggregates a generated series for reporting.
type Stats struct {
	Days                 int
	AvgTemp              float64
	MinTemp              float64
	MaxTemp              float64
	RainyDays            int
	TotalPrecipitationMM float64
	AvgDaylightHours     float64
	AvgForagingModifier  float64
	NoForagingDays       int // modifier == 0
	LimitedForagingDays  int // 0 < modifier < 0.5
	GoodForagingDays     int // modifier >= 0.5
	AvgBroodModifier     float64
	NoBroodDays          int // modifier == 0
}

// Summarize computes aggregate statistics over a generated series.
func Summarize(series []DailyWeather) Stats {
	s := Stats{Days: len(series)}
	if len(series) == 0 {
		return s
	}

	s.MinTemp = series[0].TempMin
	s.MaxTemp = series[0].TempMax

	var tempSum, daylightSum, foragingSum, broodSum float64
	for _, d := range series {
		tempSum += d.TempAvg
		daylightSum += d.DaylightHours
		foragingSum += d.ForagingModifier
		broodSum += d.BroodRearingModifier

		s.MinTemp = min(s.MinTemp, d.TempMin)
		s.MaxTemp = max(s.MaxTemp, d.TempMax)

		if d.Rainy {
			s.RainyDays++
			s.TotalPrecipitationMM += d.PrecipitationMM
		}

		switch {
		case d.ForagingModifier == 0:
			s.NoForagingDays++
		case d.ForagingModifier < 0.5:
			s.LimitedForagingDays++
		default:
			s.GoodForagingDays++
		}
		if d.BroodRearingModifier == 0 {
			s.NoBroodDays++
		}
	}

	n := float64(len(series))
	s.AvgTemp = tempSum / n
	s.AvgDaylightHours = daylightSum / n
	s.AvgForagingModifier = foragingSum / n
	s.AvgBroodModifier = broodSum / n
	return s
}
