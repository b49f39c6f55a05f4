package tsp_evolve

import (
	"context"
	"fmt"
	"sync"

	log "github.com/sirupsen/logrus"
)

// RunCoordinator executes R independent engine+population pairs over one
// shared read-only cost model and collects their results. Runs go in
// parallel, one goroutine each, writing into per-run slots so no
// synchronization beyond the WaitGroup is needed.
type RunCoordinator struct {
	config *Config
	model  *CostModel
}

// NewRunCoordinator validates the configuration once, up front; a bad
// parameter set never reaches engine construction.
func NewRunCoordinator(config *Config, model *CostModel) (*RunCoordinator, error) {
	if model == nil {
		return nil, fmt.Errorf("%w: nil cost model", ErrInputData)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &RunCoordinator{config: config, model: model}, nil
}

// Execute drives all runs to termination and returns one RunResult per
// run, in run order. A failed run is abandoned, not retried; its result
// slot carries the error and the stats gathered before the failure, and
// the other runs are unaffected. The returned error is the first run
// error, if any.
func (rc *RunCoordinator) Execute(ctx context.Context) ([]*RunResult, error) {
	base := NormalizeSeed(rc.config.Seed)
	runs := rc.config.RunCount

	results := make([]*RunResult, runs)
	errs := make([]error, runs)
	var wg sync.WaitGroup

	log.WithFields(log.Fields{
		"runs":        runs,
		"cities":      rc.model.Size(),
		"population":  rc.config.PopulationSize,
		"tournament":  rc.config.TournamentSize,
		"crossover":   rc.config.Crossover.String(),
		"mutation":    rc.config.Mutation.String(),
		"generations": rc.config.GenerationCount,
		"seed":        base,
	}).Info("starting runs")

	for i := 0; i < runs; i++ {
		wg.Add(1)
		go func(run int) {
			defer wg.Done()
			seed := DeriveSeed(base, uint64(run))
			engine, err := NewEngine(rc.config, rc.model, run, NewRunRNG(base, run))
			if err != nil {
				errs[run] = err
				results[run] = &RunResult{Run: run, Seed: seed, Err: err}
				return
			}
			if err := engine.Run(ctx); err != nil {
				errs[run] = err
			}
			res := engine.Result(seed)
			res.Err = errs[run]
			results[run] = res

			if errs[run] == nil {
				log.WithFields(log.Fields{
					"run":  run,
					"best": res.FinalCost(StatBest),
				}).Info("run finished")
			} else {
				log.WithFields(log.Fields{
					"run":   run,
					"ticks": len(res.History),
				}).WithError(errs[run]).Warn("run abandoned")
			}
		}(i)
	}
	wg.Wait()

	return results, firstError(errs)
}
