// Package hive simulates honeybee colony population dynamics in daily steps.
//
// The simulator owns all mutable colony state and advances it one day at a
// time: the queen lays a cohort of eggs gated by calendar and weather
// modifiers, brood cohorts age through fixed egg/larva/pupa stages under a
// finite frame capacity, emerged pupae join the adult population, and daily
// attrition draws from adults. Attrition never touches brood cohorts — a
// deliberate simplification that can undercount collapse scenarios.
//
// Boundary conditions clamp and continue rather than fail: negative counts
// floor at zero, brood demand beyond capacity is capped and flagged as
// congestion, and fractional populations truncate at cohort creation.
package hive

import (
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/talgya/hivesim/internal/calendar"
	"github.com/talgya/hivesim/internal/weather"
)

// ErrConfig marks invalid static simulation input detected at construction.
var ErrConfig = errors.New("invalid simulation configuration")

const (
	// DefaultCellsPerFrame is the Dadant frame cell count.
	DefaultCellsPerFrame = 7000

	// broodCellFraction is the share of cells usable for brood; the rest
	// holds pollen and nectar.
	broodCellFraction = 0.85

	// initialAdultsPerFrame estimates the adult population needed to cover
	// one frame of brood.
	initialAdultsPerFrame = 3500

	// Forager share of the adult population: 25% baseline, up to 35% when a
	// strong nectar flow is on.
	foragerBaseShare = 0.25
	foragerFlowShare = 0.10

	// honeyPerForagerKg is the net daily honey yield per forager at full
	// flow: ~150 mg nectar collected, concentrated 2.5:1 into honey.
	honeyPerForagerKg = 0.00006

	// Poor foraging weather raises adult mortality by a fixed step rather
	// than a continuous function.
	poorForagingThreshold = 0.3
	poorForagingPenalty   = 1.1

	progressReportEvery = 30 // days between slog progress reports
)

// Config holds the static inputs of a simulation run. All fields are
// validated eagerly by New, before any day is simulated.
type Config struct {
	Calendar *calendar.Calendar

	StartMonth int
	StartDay   int

	BaseEggRate       float64 // eggs laid per day before modulation
	BaseAttritionRate float64 // adult deaths per day before modulation

	TotalFrames        int // physical frame capacity of the brood chamber
	InitialBroodFrames int // frames available for brood at start
	CellsPerFrame      int // zero selects DefaultCellsPerFrame

	// Weather is an optional pre-generated series. Without it the engine
	// runs with neutral weather multipliers.
	Weather []weather.DailyWeather

	// FrameAdditions schedules hive expansion: day index → frames to add,
	// capped at TotalFrames.
	FrameAdditions map[int]int

	// Factors overrides the daily modulation source. Left nil, the engine
	// composes Calendar and Weather via SeasonalFactors.
	Factors FactorFunc
}

// Snapshot is one day's full colony state, appended to the history after
// the day is processed and never modified afterwards.
type Snapshot struct {
	Day       int
	DayOfYear int
	Date      string

	ActiveFlows       []string
	EggRateModifier   float64 // calendar
	AttritionModifier float64 // calendar

	HasWeather           bool
	TempAvg              float64
	Rainy                bool
	ForagingModifier     float64
	BroodRearingModifier float64

	EggsLaid int
	Eggs     int
	Larvae   int
	Pupae    int
	Adults   int
	Emerged  int
	Died     int

	BroodCount      int
	BroodFramesUsed int
	OccupancyPct    float64
	Congestion      bool

	HoneyKg float64 // cumulative
}

// History is the append-only per-day record of a run and the sole artifact
// consumed by reporting.
type History []Snapshot

// Simulator advances a single colony day by day. It is not safe for
// concurrent use; each what-if scenario gets its own instance (calendar and
// weather inputs are immutable and may be shared between instances).
type Simulator struct {
	cfg           Config
	cellsPerFrame int
	factors       FactorFunc

	day         int // next day to simulate, 0-based
	broodFrames int
	adults      int
	cohorts     []BroodCohort
	honeyKg     float64

	history History
}

// New validates the configuration and builds a simulator positioned at day
// zero. Configuration errors abort before any output is produced.
func New(cfg Config) (*Simulator, error) {
	if cfg.Calendar == nil {
		return nil, fmt.Errorf("%w: calendar is required", ErrConfig)
	}
	if cfg.BaseEggRate <= 0 {
		return nil, fmt.Errorf("%w: base_egg_laying_rate must be positive, got %v",
			ErrConfig, cfg.BaseEggRate)
	}
	if cfg.BaseAttritionRate <= 0 {
		return nil, fmt.Errorf("%w: base_attrition_rate must be positive, got %v",
			ErrConfig, cfg.BaseAttritionRate)
	}
	if cfg.TotalFrames <= 0 {
		return nil, fmt.Errorf("%w: total_frames must be positive, got %d",
			ErrConfig, cfg.TotalFrames)
	}
	if cfg.InitialBroodFrames < 0 || cfg.InitialBroodFrames > cfg.TotalFrames {
		return nil, fmt.Errorf("%w: initial_brood_frames must be within [0, %d], got %d",
			ErrConfig, cfg.TotalFrames, cfg.InitialBroodFrames)
	}
	if cfg.CellsPerFrame < 0 {
		return nil, fmt.Errorf("%w: cells_per_frame must be non-negative, got %d",
			ErrConfig, cfg.CellsPerFrame)
	}
	for day, n := range cfg.FrameAdditions {
		if day < 0 || n <= 0 {
			return nil, fmt.Errorf("%w: frame_additions[%d] = %d: day and count must be positive",
				ErrConfig, day, n)
		}
	}
	startDOY, err := calendar.DayOfYear(cfg.StartMonth, cfg.StartDay)
	if err != nil {
		return nil, fmt.Errorf("%w: start_date: %v", ErrConfig, err)
	}

	s := &Simulator{
		cfg:           cfg,
		cellsPerFrame: cfg.CellsPerFrame,
		broodFrames:   cfg.InitialBroodFrames,
		adults:        cfg.InitialBroodFrames * initialAdultsPerFrame,
	}
	if s.cellsPerFrame == 0 {
		s.cellsPerFrame = DefaultCellsPerFrame
	}
	s.factors = cfg.Factors
	if s.factors == nil {
		s.factors = SeasonalFactors(cfg.Calendar, cfg.Weather, startDOY)
	}
	return s, nil
}

// Day returns the number of days simulated so far.
func (s *Simulator) Day() int { return s.day }

// Adults returns the current adult population.
func (s *Simulator) Adults() int { return s.adults }

// HoneyKg returns the cumulative honey estimate.
func (s *Simulator) HoneyKg() float64 { return s.honeyKg }

// History returns the per-day snapshot series recorded so far.
func (s *Simulator) History() History { return s.history }

// BroodCount returns the total developing brood across all stages.
func (s *Simulator) BroodCount() int {
	total := 0
	for _, c := range s.cohorts {
		total += c.Count
	}
	return total
}

// Cohorts returns a copy of the live brood cohorts, oldest first.
func (s *Simulator) Cohorts() []BroodCohort {
	out := make([]BroodCohort, len(s.cohorts))
	copy(out, s.cohorts)
	return out
}

// AddFrames expands the brood chamber by n frames, capped at the hive's
// total frame capacity.
func (s *Simulator) AddFrames(n int) {
	if n <= 0 {
		return
	}
	before := s.broodFrames
	s.broodFrames = min(s.broodFrames+n, s.cfg.TotalFrames)
	if s.broodFrames != before {
		slog.Info("brood frames added",
			"day", s.day, "added", s.broodFrames-before, "brood_frames", s.broodFrames)
	}
}

// broodCapacity is the number of cells currently available for brood.
func (s *Simulator) broodCapacity() int {
	return int(float64(s.broodFrames*s.cellsPerFrame) * broodCellFraction)
}

// Step advances the colony by exactly one day.
func (s *Simulator) Step() {
	if n, ok := s.cfg.FrameAdditions[s.day]; ok {
		s.AddFrames(n)
	}

	f := s.factors(s.day)
	cal := f.Calendar

	effEgg := s.cfg.BaseEggRate * cal.EggRateModifier * f.BroodMultiplier()
	attrPenalty := 1.0
	if f.ForagingMultiplier() < poorForagingThreshold {
		attrPenalty = poorForagingPenalty
	}
	effAttr := s.cfg.BaseAttritionRate * cal.AttritionModifier * attrPenalty

	// Capacity check before laying: demand beyond the remaining headroom is
	// clamped and flagged, never an error.
	demand := int(effEgg)
	headroom := s.broodCapacity() - s.BroodCount()
	if headroom < 0 {
		headroom = 0
	}
	eggsLaid := demand
	congestion := false
	if eggsLaid > headroom {
		eggsLaid = headroom
		congestion = true
	}

	// Age existing cohorts, advancing stages and emerging finished pupae.
	// Counts transfer whole across every boundary.
	emerged := 0
	kept := s.cohorts[:0]
	for _, c := range s.cohorts {
		c.DaysInStage++
		if c.DaysInStage >= c.Stage.duration() {
			if c.Stage == StagePupa {
				emerged += c.Count
				continue
			}
			c.Stage++
			c.DaysInStage = 0
		}
		kept = append(kept, c)
	}
	s.cohorts = kept

	if eggsLaid > 0 {
		s.cohorts = append(s.cohorts, BroodCohort{EntryDay: s.day, Count: eggsLaid})
	}

	s.adults += emerged

	died := int(effAttr)
	if died > s.adults {
		died = s.adults
	}
	s.adults -= died

	// Honey estimate: foragers scale with flow strength, yield with both
	// flow strength and foraging weather.
	foragerShare := foragerBaseShare + foragerFlowShare*cal.NectarAvailability
	s.honeyKg += float64(s.adults) * foragerShare *
		f.ForagingMultiplier() * cal.NectarAvailability * honeyPerForagerKg

	s.record(f, eggsLaid, emerged, died, congestion)
	s.day++
}

// Simulate runs numDays sequential steps, continuing from the current
// state. A later Simulate call picks up exactly where the previous one
// stopped, so split runs match a single run of the combined length.
func (s *Simulator) Simulate(numDays int) error {
	if numDays <= 0 {
		return fmt.Errorf("%w: num_days must be positive, got %d", ErrConfig, numDays)
	}
	for i := 0; i < numDays; i++ {
		s.Step()
	}
	return nil
}

func (s *Simulator) record(f DayFactors, eggsLaid, emerged, died int, congestion bool) {
	var eggs, larvae, pupae int
	for _, c := range s.cohorts {
		switch c.Stage {
		case StageEgg:
			eggs += c.Count
		case StageLarva:
			larvae += c.Count
		case StagePupa:
			pupae += c.Count
		}
	}
	brood := eggs + larvae + pupae

	cellsPerBroodFrame := float64(s.cellsPerFrame) * broodCellFraction
	framesUsed := 0
	if brood > 0 {
		framesUsed = int(math.Ceil(float64(brood) / cellsPerBroodFrame))
		if framesUsed > s.broodFrames {
			framesUsed = s.broodFrames
		}
	}
	occupancy := 0.0
	if capacity := s.broodCapacity(); capacity > 0 {
		occupancy = float64(brood) / float64(capacity) * 100
	}

	snap := Snapshot{
		Day:               s.day,
		DayOfYear:         f.DayOfYear,
		Date:              calendar.DateString(f.DayOfYear),
		ActiveFlows:       f.Calendar.ActiveFlows,
		EggRateModifier:   f.Calendar.EggRateModifier,
		AttritionModifier: f.Calendar.AttritionModifier,
		EggsLaid:          eggsLaid,
		Eggs:              eggs,
		Larvae:            larvae,
		Pupae:             pupae,
		Adults:            s.adults,
		Emerged:           emerged,
		Died:              died,
		BroodCount:        brood,
		BroodFramesUsed:   framesUsed,
		OccupancyPct:      occupancy,
		Congestion:        congestion,
		HoneyKg:           s.honeyKg,
	}
	if f.Weather != nil {
		snap.HasWeather = true
		snap.TempAvg = f.Weather.TempAvg
		snap.Rainy = f.Weather.Rainy
		snap.ForagingModifier = f.Weather.ForagingModifier
		snap.BroodRearingModifier = f.Weather.BroodRearingModifier
	}
	s.history = append(s.history, snap)

	if s.day%progressReportEvery == 0 {
		slog.Info("colony report",
			"day", s.day,
			"date", snap.Date,
			"adults", s.adults,
			"brood", brood,
			"occupancy_pct", fmt.Sprintf("%.1f", occupancy),
			"congestion", congestion,
			"honey_kg", fmt.Sprintf("%.2f", s.honeyKg),
		)
	}
}
