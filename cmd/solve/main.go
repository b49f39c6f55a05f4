package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	te "tsp_evolve"

	"github.com/pkg/profile"
	log "github.com/sirupsen/logrus"
)

/*
	Load travel-cost instance (XML)
	Load engine config (TOML), apply flag overrides

	Run R independent steady-state engines in parallel
	Archive results to SQLite (optional)
	Render a convergence chart (PNG)
*/

var (
	instancePath = flag.String("instance", "", "Path to the XML travel-cost instance (required)")
	configPath   = flag.String("config", "", "Optional TOML engine config; flags override it")
	popSize      = flag.Int("population", te.DefaultPopulationSize, "Population size, minimum 10")
	tournament   = flag.Int("tournament", te.DefaultTournamentSize, "Tournament size, between 1 and the population size")
	crossover    = flag.String("crossover", "fix", "Crossover operator: fix or ordered")
	mutation     = flag.String("mutation", "single", "Mutation operator: single, multiple or inversion")
	swaps        = flag.Int("swaps", te.DefaultMultipleSwaps, "Swap count for the multiple mutation, minimum 2")
	generations  = flag.Int("generations", te.DefaultGenerationCount, "Generations per run, minimum 1")
	runs         = flag.Int("runs", te.DefaultRunCount, "Independent runs, minimum 1")
	seed         = flag.Int64("seed", 0, "Base random seed; 0 picks one from the clock")
	timeout      = flag.Duration("timeout", 0, "Optional wall-clock bound; runs stop cleanly at a generation boundary")
	plotMode     = flag.String("plot", "range", "Chart mode: average, best, worst, range or display-all")
	statistic    = flag.String("stat", "best", "Statistic per point: best, worst or average")
	resultsDir   = flag.String("results", "results", "Directory for rendered charts")
	dbPath       = flag.String("db", "", "Optional directory for the SQLite run archive")
	dbName       = flag.String("dbname", "tsp_evolve.db", "Archive database filename")
	cpuProfile   = flag.Bool("cpuprofile", false, "Write a CPU profile to the current directory")
	verbose      = flag.Bool("v", false, "Enable debug logging (per-generation progress)")
)

func main() {
	flag.Parse()
	log.SetOutput(os.Stderr)
	if *verbose {
		log.SetLevel(log.DebugLevel)
	}

	if *instancePath == "" {
		log.Fatal("an -instance file is required")
	}

	if *cpuProfile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}

	config := buildConfig()
	if err := config.Validate(); err != nil {
		log.Fatalf("Bad configuration: %v", err)
	}

	instance, err := te.LoadInstance(*instancePath)
	if err != nil {
		log.Fatalf("Unable to load instance: %v", err)
	}
	model, err := instance.CostModel()
	if err != nil {
		log.Fatalf("Unable to build cost model: %v", err)
	}
	log.Printf("Loaded instance %s with %d cities", instance.Name, instance.Size())

	coordinator, err := te.NewRunCoordinator(config, model)
	if err != nil {
		log.Fatalf("Unable to build coordinator: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if *timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, *timeout)
		defer cancel()
	}

	started := time.Now()
	results, runErr := coordinator.Execute(ctx)
	if runErr != nil {
		log.Warnf("At least one run failed: %v", runErr)
	}
	log.Printf("Finished %d runs in %s", len(results), time.Since(started).Round(time.Millisecond))

	if *dbPath != "" {
		archive(instance, config, results)
	}

	chart, err := renderChart(instance, config, results)
	if err != nil {
		log.Fatalf("Unable to render chart: %v", err)
	}
	log.Printf("Chart written to %s", chart)

	printBest(results)
}

// buildConfig layers flag overrides on top of the optional TOML file.
// Only flags the user actually set override the file.
func buildConfig() *te.Config {
	config := te.DefaultConfig()
	if *configPath != "" {
		loaded, err := te.LoadConfig(*configPath)
		if err != nil {
			log.Fatalf("Unable to load engine config: %v", err)
		}
		config = loaded
	}

	var err error
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "population":
			config.PopulationSize = *popSize
		case "tournament":
			config.TournamentSize = *tournament
		case "crossover":
			config.Crossover, err = te.ParseCrossoverOperator(*crossover)
		case "mutation":
			config.Mutation, err = te.ParseMutationOperator(*mutation)
		case "swaps":
			config.MultipleSwaps = *swaps
		case "generations":
			config.GenerationCount = *generations
		case "runs":
			config.RunCount = *runs
		case "seed":
			config.Seed = *seed
		}
		if err != nil {
			log.Fatalf("Bad flag -%s: %v", f.Name, err)
		}
	})
	return config
}

func archive(instance *te.Instance, config *te.Config, results []*te.RunResult) {
	persist, err := te.NewPersistence(&te.PersistenceConfig{
		Name:          *dbName,
		Path:          *dbPath,
		SQLitePragmas: []string{"journal_mode=WAL"},
	})
	if err != nil {
		log.Fatalf("Unable to open archive: %v", err)
	}
	defer persist.Shutdown()

	id, err := persist.SaveExperiment(instance.Name, instance.Size(), config, results)
	if err != nil {
		log.Fatalf("Unable to archive experiment: %v", err)
	}
	log.Printf("Archived as experiment %d", id)
}

func renderChart(instance *te.Instance, config *te.Config, results []*te.RunResult) (string, error) {
	mode, err := te.ParsePlotMode(*plotMode)
	if err != nil {
		return "", err
	}
	stat, err := te.ParseStatistic(*statistic)
	if err != nil {
		return "", err
	}
	return te.RenderChart(&te.ChartRequest{
		Results:  results,
		Mode:     mode,
		Stat:     stat,
		Instance: instance.Name,
		Config:   config,
		OutDir:   *resultsDir,
	})
}

func printBest(results []*te.RunResult) {
	var best *te.RunResult
	for _, res := range results {
		if res.BestTour == nil {
			continue
		}
		if best == nil || res.BestTour.Fitness() < best.BestTour.Fitness() {
			best = res
		}
	}
	if best == nil {
		log.Warn("No run produced a tour")
		return
	}
	fmt.Printf("best cost: %g (run %d)\n", best.BestTour.Fitness(), best.Run)
	fmt.Printf("best tour: %v\n", best.BestTour.Route)
}
