// Package metrics derives numeric summaries from a simulation history.
// It reads the history series only; rendering beyond a short formatted
// string is left to external reporting tools.
package metrics

import (
	"fmt"

	"github.com/dustin/go-humanize"

	"github.com/talgya/hivesim/internal/hive"
)

// RunSummary aggregates one simulation run.
type RunSummary struct {
	Days int

	PeakAdults int
	PeakDay    int
	PeakDate   string

	FinalAdults int
	FinalBrood  int

	TotalEggsLaid int
	TotalEmerged  int
	TotalDied     int

	CongestionDays  int
	MaxOccupancyPct float64

	HoneyKg float64
}

// Summarize reduces a history series to a RunSummary.
func Summarize(hist hive.History) RunSummary {
	s := RunSummary{Days: len(hist)}
	if len(hist) == 0 {
		return s
	}

	for _, snap := range hist {
		if snap.Adults > s.PeakAdults {
			s.PeakAdults = snap.Adults
			s.PeakDay = snap.Day
			s.PeakDate = snap.Date
		}
		s.TotalEggsLaid += snap.EggsLaid
		s.TotalEmerged += snap.Emerged
		s.TotalDied += snap.Died
		if snap.Congestion {
			s.CongestionDays++
		}
		if snap.OccupancyPct > s.MaxOccupancyPct {
			s.MaxOccupancyPct = snap.OccupancyPct
		}
	}

	last := hist[len(hist)-1]
	s.FinalAdults = last.Adults
	s.FinalBrood = last.BroodCount
	s.HoneyKg = last.HoneyKg
	return s
}

// String renders a one-paragraph run summary with humanized counts.
func (s RunSummary) String() string {
	return fmt.Sprintf(
		"%d days simulated: peak %s adults on day %d (%s), final %s adults with %s brood; "+
			"%s eggs laid, %s emerged, %s died; %d congestion days (max occupancy %.1f%%); %.1f kg honey",
		s.Days,
		humanize.Comma(int64(s.PeakAdults)), s.PeakDay, s.PeakDate,
		humanize.Comma(int64(s.FinalAdults)), humanize.Comma(int64(s.FinalBrood)),
		humanize.Comma(int64(s.TotalEggsLaid)), humanize.Comma(int64(s.TotalEmerged)),
		humanize.Comma(int64(s.TotalDied)),
		s.CongestionDays, s.MaxOccupancyPct, s.HoneyKg,
	)
}
