package main

import (
	"flag"
	"fmt"
	"os"

	te "tsp_evolve"

	log "github.com/sirupsen/logrus"
)

/*
	Query the SQLite run archive:
		With no -experiment, list archived experiments
		With -experiment, re-render its convergence chart and print the
		best stored tour
*/

var (
	dbPath     = flag.String("db", ".", "Directory holding the SQLite run archive")
	dbName     = flag.String("dbname", "tsp_evolve.db", "Archive database filename")
	experiment = flag.Uint("experiment", 0, "Experiment ID to report on; 0 lists all")
	plotMode   = flag.String("plot", "range", "Chart mode: average, best, worst, range or display-all")
	statistic  = flag.String("stat", "best", "Statistic per point: best, worst or average")
	resultsDir = flag.String("results", "results", "Directory for rendered charts")
)

func main() {
	flag.Parse()
	log.SetOutput(os.Stderr)

	persist, err := te.NewPersistence(&te.PersistenceConfig{
		Name: *dbName,
		Path: *dbPath,
	})
	if err != nil {
		log.Fatalf("Unable to open archive: %v", err)
	}
	defer persist.Shutdown()

	if *experiment == 0 {
		list(persist)
		return
	}
	report(persist, *experiment)
}

func list(persist *te.Persistence) {
	exps, err := persist.ListExperiments()
	if err != nil {
		log.Fatalf("Unable to list experiments: %v", err)
	}
	if len(exps) == 0 {
		fmt.Println("archive is empty")
		return
	}
	for _, exp := range exps {
		fmt.Printf("%4d  %s  %-12s %3d cities  pop=%d tour=%d %s/%s gens=%d runs=%d seed=%d\n",
			exp.ID, exp.CreatedAt.Format("2006-01-02 15:04:05"), exp.Instance, exp.Cities,
			exp.Config.PopulationSize, exp.Config.TournamentSize,
			exp.Config.Crossover, exp.Config.Mutation,
			exp.Config.GenerationCount, exp.Config.RunCount, exp.Config.Seed)
	}
}

func report(persist *te.Persistence, id uint) {
	exp, results, err := persist.LoadExperiment(id)
	if err != nil {
		log.Fatalf("Unable to load experiment %d: %v", id, err)
	}

	mode, err := te.ParsePlotMode(*plotMode)
	if err != nil {
		log.Fatalf("Bad -plot: %v", err)
	}
	stat, err := te.ParseStatistic(*statistic)
	if err != nil {
		log.Fatalf("Bad -stat: %v", err)
	}

	chart, err := te.RenderChart(&te.ChartRequest{
		Results:  results,
		Mode:     mode,
		Stat:     stat,
		Instance: exp.Instance,
		Config:   &exp.Config,
		OutDir:   *resultsDir,
	})
	if err != nil {
		log.Fatalf("Unable to render chart: %v", err)
	}
	log.Printf("Chart written to %s", chart)

	for _, res := range results {
		if res.BestTour == nil {
			fmt.Printf("run %d: no tour archived\n", res.Run)
			continue
		}
		fmt.Printf("run %d: best cost %g over %d generations\n",
			res.Run, res.BestTour.Fitness(), len(res.History))
	}
}
