package hive

// Stage is a brood development stage. Transitions run strictly forward:
// egg → larva → pupa → emerged adult.
type Stage uint8

const (
	StageEgg Stage = iota
	StageLarva
	StagePupa
)

// Fixed development durations in days (21-day worker cycle).
const (
	EggDays   = 3
	LarvaDays = 6
	PupaDays  = 12

	// DevelopmentDays is the full egg-to-adult pipeline length.
	DevelopmentDays = EggDays + LarvaDays + PupaDays
)

// String returns a human-readable stage name.
func (s Stage) String() string {
	switch s {
	case StageEgg:
		return "egg"
	case StageLarva:
		return "larva"
	case StagePupa:
		return "pupa"
	default:
		return "unknown"
	}
}

func (s Stage) duration() int {
	switch s {
	case StageEgg:
		return EggDays
	case StageLarva:
		return LarvaDays
	default:
		return PupaDays
	}
}

// BroodCohort is one day's worth of eggs advancing through development
// together. Count is conserved exactly across stage transitions; attrition
// never draws from cohorts.
type BroodCohort struct {
	EntryDay    int // simulation day the cohort was laid
	Count       int
	Stage       Stage
	DaysInStage int
}
