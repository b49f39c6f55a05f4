package tsp_evolve

import (
	test "testing"

	"github.com/stretchr/testify/require"
)

func makeResult(run int, series ...float64) *RunResult {
	res := &RunResult{
		Run:     run,
		Initial: GenerationStats{Best: 100, Worst: 200, Average: 150},
	}
	for _, v := range series {
		res.History = append(res.History, GenerationStats{
			Best:    v,
			Worst:   v * 2,
			Average: v * 1.5,
		})
	}
	return res
}

func TestStatProjection(t *test.T) {
	snap := GenerationStats{Best: 1, Worst: 3, Average: 2}
	require.Equal(t, 1.0, snap.Stat(StatBest))
	require.Equal(t, 3.0, snap.Stat(StatWorst))
	require.Equal(t, 2.0, snap.Stat(StatAverage))
}

func TestSeriesExtraction(t *test.T) {
	res := makeResult(0, 10, 8, 6)
	require.Equal(t, []float64{10, 8, 6}, res.Series(StatBest))
	require.Equal(t, []float64{20, 16, 12}, res.Series(StatWorst))
	require.Equal(t, []float64{15, 12, 9}, res.Series(StatAverage))
}

func TestFinalCostFallsBackToInitial(t *test.T) {
	res := makeResult(0)
	require.Equal(t, 100.0, res.FinalCost(StatBest))
	res = makeResult(0, 10, 8)
	require.Equal(t, 8.0, res.FinalCost(StatBest))
}

func TestAverageSeriesIsPointwiseMean(t *test.T) {
	results := []*RunResult{
		makeResult(0, 10, 8, 6),
		makeResult(1, 20, 18, 16),
	}
	require.InDeltaSlice(t, []float64{15, 13, 11}, AverageSeries(results, StatBest), 1e-9)
}

func TestAverageSeriesClipsToShortestRun(t *test.T) {
	results := []*RunResult{
		makeResult(0, 10, 8, 6),
		makeResult(1, 20, 18),
	}
	require.Len(t, AverageSeries(results, StatBest), 2)
}

func TestBestAndWorstRunSeries(t *test.T) {
	results := []*RunResult{
		makeResult(0, 10, 9, 8),
		makeResult(1, 10, 5, 3),
		makeResult(2, 10, 9, 7),
	}
	require.Equal(t, []float64{10, 5, 3}, BestRunSeries(results, StatBest))
	require.Equal(t, []float64{10, 9, 8}, WorstRunSeries(results, StatBest))
}

func TestAllSeriesKeepsRunOrder(t *test.T) {
	results := []*RunResult{
		makeResult(0, 4, 3),
		makeResult(1, 9, 7),
	}
	all := AllSeries(results, StatBest)
	require.Len(t, all, 2)
	require.Equal(t, []float64{4, 3}, all[0])
	require.Equal(t, []float64{9, 7}, all[1])
}

func TestAggregationOfNoRuns(t *test.T) {
	require.Nil(t, BestRunSeries(nil, StatBest))
	require.Nil(t, WorstRunSeries(nil, StatBest))
	require.Empty(t, AverageSeries(nil, StatBest))
}
