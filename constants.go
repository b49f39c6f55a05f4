package tsp_evolve

const (
	DEBUG = false

	// Hard floors from the engine contract. Populations below ten lose
	// steady-state pressure; the validator rejects them outright.
	MinPopulationSize = 10
	MinTournamentSize = 1
	MinMultipleSwaps  = 2

	DefaultPopulationSize  = 50
	DefaultTournamentSize  = 5
	DefaultGenerationCount = 10000
	DefaultRunCount        = 1
	DefaultMultipleSwaps   = 2

	// ProgressInterval is how many generations pass between progress log
	// lines from a running engine.
	ProgressInterval = 1000
)

// CrossoverOperator selects one of the two crossover variants. The set is
// closed; dispatch happens once at engine construction.
type CrossoverOperator int

const (
	CrossoverFix CrossoverOperator = iota
	CrossoverOrdered
)

func (c CrossoverOperator) String() string {
	switch c {
	case CrossoverFix:
		return "fix"
	case CrossoverOrdered:
		return "ordered"
	}
	return "unknown"
}

// MutationOperator selects one of the three mutation variants.
type MutationOperator int

const (
	MutationSingle MutationOperator = iota
	MutationMultiple
	MutationInversion
)

func (m MutationOperator) String() string {
	switch m {
	case MutationSingle:
		return "single"
	case MutationMultiple:
		return "multiple"
	case MutationInversion:
		return "inversion"
	}
	return "unknown"
}

// PlotMode selects how the reporting sink folds R run series into chart
// lines.
type PlotMode int

const (
	PlotAverage PlotMode = iota
	PlotBest
	PlotWorst
	PlotRange
	PlotDisplayAll
)

func (p PlotMode) String() string {
	switch p {
	case PlotAverage:
		return "average"
	case PlotBest:
		return "best"
	case PlotWorst:
		return "worst"
	case PlotRange:
		return "range"
	case PlotDisplayAll:
		return "display-all"
	}
	return "unknown"
}

// Statistic selects which per-generation figure a series is built from.
type Statistic int

const (
	StatBest Statistic = iota
	StatWorst
	StatAverage
)

func (s Statistic) String() string {
	switch s {
	case StatBest:
		return "best"
	case StatWorst:
		return "worst"
	case StatAverage:
		return "average"
	}
	return "unknown"
}
