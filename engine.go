package tsp_evolve

import (
	"context"
	"fmt"
	"math/rand"

	log "github.com/sirupsen/logrus"
)

// EngineState tracks the engine's lifecycle. Transitions only move
// forward: Initializing -> Running -> Terminated.
type EngineState int

const (
	StateInitializing EngineState = iota
	StateRunning
	StateTerminated
)

func (s EngineState) String() string {
	switch s {
	case StateInitializing:
		return "initializing"
	case StateRunning:
		return "running"
	case StateTerminated:
		return "terminated"
	}
	return "unknown"
}

// Engine drives one steady-state run. Each generation tick performs
// exactly one replacement: two tournament selections, one crossover, one
// mutation, one evaluation, then the child evicts the current worst.
// Stats are recorded once per tick, after the replacement.
//
// The engine owns its population and random stream exclusively; the only
// shared state is the read-only cost model.
type Engine struct {
	config    *Config
	model     *CostModel
	run       int
	rng       *rand.Rand
	selector  *TournamentSelector
	crossover CrossoverFunc
	mutate    MutationFunc

	state   EngineState
	pop     *Population
	initial GenerationStats
	history []GenerationStats
}

// NewEngine builds an engine for one run. The configuration must already
// have passed Validate; the operator variants are resolved here, once.
func NewEngine(config *Config, model *CostModel, run int, rng *rand.Rand) (*Engine, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &Engine{
		config:    config,
		model:     model,
		run:       run,
		rng:       rng,
		selector:  NewTournamentSelector(config.TournamentSize),
		crossover: crossoverFor(config.Crossover),
		mutate:    mutationFor(config.Mutation, config.MultipleSwaps),
		state:     StateInitializing,
	}, nil
}

// State returns the engine's current lifecycle state.
func (e *Engine) State() EngineState {
	return e.state
}

// Population exposes the pool; nil until Run has initialized it.
func (e *Engine) Population() *Population {
	return e.pop
}

// History returns the recorded per-tick stats so far.
func (e *Engine) History() []GenerationStats {
	return e.history
}

// Initial returns the population snapshot taken before the first tick.
func (e *Engine) Initial() GenerationStats {
	return e.initial
}

// Run executes the full generation budget. It is single-shot: a
// terminated engine refuses to run again, so a finished population can
// never be mutated further.
//
// Cancellation is honored only between ticks; a tick that has started
// always completes, which keeps the population's size and permutation
// invariants intact at every observable point.
func (e *Engine) Run(ctx context.Context) error {
	if e.state != StateInitializing {
		return fmt.Errorf("%w: engine for run %d already %s", ErrConfiguration, e.run, e.state)
	}

	pop, err := NewPopulation(e.config.PopulationSize, e.model, e.rng)
	if err != nil {
		e.state = StateTerminated
		return &RunError{Run: e.run, Generation: 0, Err: err}
	}
	e.pop = pop
	e.initial = pop.Snapshot()
	e.state = StateRunning
	e.history = make([]GenerationStats, 0, e.config.GenerationCount)

	for gen := 1; gen <= e.config.GenerationCount; gen++ {
		select {
		case <-ctx.Done():
			e.state = StateTerminated
			return &RunError{Run: e.run, Generation: gen, Err: ctx.Err()}
		default:
		}

		if err := e.tick(); err != nil {
			e.state = StateTerminated
			return &RunError{Run: e.run, Generation: gen, Err: err}
		}
		snap := e.pop.Snapshot()
		e.history = append(e.history, snap)

		if gen%ProgressInterval == 0 {
			log.WithFields(log.Fields{
				"run":        e.run,
				"generation": gen,
				"best":       snap.Best,
				"average":    snap.Average,
			}).Debug("progress")
		}
	}

	e.state = StateTerminated
	return nil
}

// tick is one steady-state replacement. Operator contract violations
// surface as invalid-tour errors from Evaluate and abort the run; they
// are never silently corrected.
func (e *Engine) tick() error {
	parentA := e.selector.Select(e.pop, e.rng)
	parentB := e.selector.Select(e.pop, e.rng)
	child := e.crossover(parentA, parentB, e.rng)
	e.mutate(child, e.rng)
	if err := child.Evaluate(e.model); err != nil {
		return err
	}
	e.pop.ReplaceWorst(child)
	return nil
}

// Result packages the finished run. The best tour is cloned so the
// caller's copy stays stable even though the engine retains its
// population.
func (e *Engine) Result(seed int64) *RunResult {
	res := &RunResult{
		Run:     e.run,
		Seed:    seed,
		Initial: e.initial,
		History: e.history,
	}
	if e.pop != nil {
		res.BestTour = e.pop.Best().Clone()
	}
	return res
}
