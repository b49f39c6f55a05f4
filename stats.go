package tsp_evolve

// GenerationStats is an immutable per-generation snapshot of population
// cost: one is produced per steady-state tick, after the replacement.
type GenerationStats struct {
	Best    float64
	Worst   float64
	Average float64
}

// Stat projects the selected statistic out of the snapshot.
func (g GenerationStats) Stat(s Statistic) float64 {
	switch s {
	case StatWorst:
		return g.Worst
	case StatAverage:
		return g.Average
	}
	return g.Best
}

// RunResult owns one run's full stats series plus its final best tour.
// Initial is the population snapshot before the first tick; History holds
// exactly one entry per completed tick.
type RunResult struct {
	Run      int
	Seed     int64
	Initial  GenerationStats
	History  []GenerationStats
	BestTour *Chromosome

	// Err is set when the run was abandoned (contract violation or
	// cancellation). History then holds the ticks completed before the
	// failure.
	Err error
}

// Series extracts one statistic per generation from the run's history.
func (r *RunResult) Series(stat Statistic) []float64 {
	out := make([]float64, len(r.History))
	for i, g := range r.History {
		out[i] = g.Stat(stat)
	}
	return out
}

// FinalCost returns the last value of the run's series for stat, or the
// initial snapshot's value when no tick completed.
func (r *RunResult) FinalCost(stat Statistic) float64 {
	if len(r.History) == 0 {
		return r.Initial.Stat(stat)
	}
	return r.History[len(r.History)-1].Stat(stat)
}

// Aggregation is pure post-processing over completed runs; it never
// influences execution. Series lengths are clipped to the shortest run so
// a cancelled run cannot skew a pointwise mean.

func minHistoryLen(results []*RunResult) int {
	if len(results) == 0 {
		return 0
	}
	n := len(results[0].History)
	for _, r := range results[1:] {
		if len(r.History) < n {
			n = len(r.History)
		}
	}
	return n
}

// AverageSeries returns the pointwise mean of stat across all runs.
func AverageSeries(results []*RunResult, stat Statistic) []float64 {
	n := minHistoryLen(results)
	out := make([]float64, n)
	for _, r := range results {
		for i := 0; i < n; i++ {
			out[i] += r.History[i].Stat(stat) / float64(len(results))
		}
	}
	return out
}

// BestRunSeries returns the whole series of the run that finished with
// the lowest value of stat.
func BestRunSeries(results []*RunResult, stat Statistic) []float64 {
	if len(results) == 0 {
		return nil
	}
	best := results[0]
	for _, r := range results[1:] {
		if r.FinalCost(stat) < best.FinalCost(stat) {
			best = r
		}
	}
	return best.Series(stat)
}

// WorstRunSeries returns the whole series of the run that finished with
// the highest value of stat.
func WorstRunSeries(results []*RunResult, stat Statistic) []float64 {
	if len(results) == 0 {
		return nil
	}
	worst := results[0]
	for _, r := range results[1:] {
		if r.FinalCost(stat) > worst.FinalCost(stat) {
			worst = r
		}
	}
	return worst.Series(stat)
}

// AllSeries returns one series per run, in run order, for display-all
// charts.
func AllSeries(results []*RunResult, stat Statistic) [][]float64 {
	out := make([][]float64, len(results))
	for i, r := range results {
		out[i] = r.Series(stat)
	}
	return out
}
