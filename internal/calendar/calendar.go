// Package calendar models the annual nectar and pollen flow cycle of a
// beekeeping location as an ordered set of named flow periods. A calendar is
// built once from a static period table and read-only afterwards; daily
// factor lookups are pure functions of the day of year.
package calendar

import (
	"errors"
	"fmt"
)

// ErrConfig marks invalid static calendar input detected at construction.
var ErrConfig = errors.New("invalid calendar configuration")

// Dearth baseline applied on days no flow period covers. Dormant months are
// explicit low-modifier periods in the location tables; these values only
// fill the short gaps between periods.
const (
	dearthNectar    = 0.1
	dearthPollen    = 0.2
	dearthEggRate   = 0.4
	dearthAttrition = 0.3
)

// FlowPeriod is a named interval during which a nectar/pollen source shifts
// the colony's egg-laying and mortality modifiers. Periods may overlap.
type FlowPeriod struct {
	Name     string
	StartDay int // day of year the flow begins, 1-365
	Duration int // length in days; may wrap across day 365

	NectarIntensity   float64 // relative nectar availability, 0-1
	PollenIntensity   float64 // relative pollen availability, 0-1
	EggRateModifier   float64 // multiplier on the base egg-laying rate
	AttritionModifier float64 // multiplier on the base attrition rate
}

// Active reports whether the period covers the given day of year,
// handling intervals that wrap across the year boundary.
func (p FlowPeriod) Active(dayOfYear int) bool {
	offset := NormalizeDay(dayOfYear) - p.StartDay
	if offset < 0 {
		offset += DaysPerYear
	}
	return offset < p.Duration
}

func (p FlowPeriod) validate() error {
	if p.Duration <= 0 {
		return fmt.Errorf("%w: period %q: duration must be positive, got %d",
			ErrConfig, p.Name, p.Duration)
	}
	if p.Duration > DaysPerYear {
		return fmt.Errorf("%w: period %q: duration must be at most %d days, got %d",
			ErrConfig, p.Name, DaysPerYear, p.Duration)
	}
	if p.StartDay < 1 || p.StartDay > DaysPerYear {
		return fmt.Errorf("%w: period %q: start day must be 1-%d, got %d",
			ErrConfig, p.Name, DaysPerYear, p.StartDay)
	}
	if p.NectarIntensity < 0 || p.PollenIntensity < 0 ||
		p.EggRateModifier < 0 || p.AttritionModifier < 0 {
		return fmt.Errorf("%w: period %q: modifiers must be non-negative", ErrConfig, p.Name)
	}
	return nil
}

// Factors are the combined daily modulation values for one day of year.
type Factors struct {
	ActiveFlows        []string
	NectarAvailability float64
	PollenAvailability float64
	EggRateModifier    float64
	AttritionModifier  float64
}

// Calendar holds the full annual flow cycle for one location.
type Calendar struct {
	location string
	periods  []FlowPeriod
}

// New builds a calendar from a location name and flow period table.
// Every period is validated eagerly; the period slice is copied so the
// calendar stays immutable even if the caller mutates its table.
func New(location string, periods []FlowPeriod) (*Calendar, error) {
	if len(periods) == 0 {
		return nil, fmt.Errorf("%w: at least one flow period is required", ErrConfig)
	}
	for _, p := range periods {
		if err := p.validate(); err != nil {
			return nil, err
		}
	}
	c := &Calendar{location: location}
	c.periods = append(c.periods, periods...)
	return c, nil
}

// Location returns the location name the calendar was built for.
func (c *Calendar) Location() string { return c.location }

// Periods returns a copy of the flow period table.
func (c *Calendar) Periods() []FlowPeriod {
	out := make([]FlowPeriod, len(c.periods))
	copy(out, c.periods)
	return out
}

// ActiveFlows returns every period covering the given day of year.
func (c *Calendar) ActiveFlows(dayOfYear int) []FlowPeriod {
	var active []FlowPeriod
	for _, p := range c.periods {
		if p.Active(dayOfYear) {
			active = append(active, p)
		}
	}
	return active
}

// DailyFactors returns the combined modulation factors for a day of year.
// When several flows overlap, each factor is the maximum across the active
// periods, never the sum: the colony responds to the best available
// resource and concurrent minor flows do not compound.
func (c *Calendar) DailyFactors(dayOfYear int) Factors {
	active := c.ActiveFlows(dayOfYear)
	if len(active) == 0 {
		return Factors{
			NectarAvailability: dearthNectar,
			PollenAvailability: dearthPollen,
			EggRateModifier:    dearthEggRate,
			AttritionModifier:  dearthAttrition,
		}
	}

	f := Factors{ActiveFlows: make([]string, 0, len(active))}
	for _, p := range active {
		f.ActiveFlows = append(f.ActiveFlows, p.Name)
		f.NectarAvailability = max(f.NectarAvailability, p.NectarIntensity)
		f.PollenAvailability = max(f.PollenAvailability, p.PollenIntensity)
		f.EggRateModifier = max(f.EggRateModifier, p.EggRateModifier)
		f.AttritionModifier = max(f.AttritionModifier, p.AttritionModifier)
	}
	return f
}
