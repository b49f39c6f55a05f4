package tsp_evolve

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	sqlite "github.com/glebarez/sqlite"
	gorm "gorm.io/gorm"
)

// Experiment is one archived coordinator invocation: the configuration
// snapshot plus one Run row per independent run.
type Experiment struct {
	ID        uint
	CreatedAt time.Time
	Instance  string
	Cities    int
	Config    Config `gorm:"embedded"`
	Runs      []Run
}

// Run archives one run's outcome and its per-generation stats rows.
type Run struct {
	ID           uint
	ExperimentID uint
	RunIndex     int
	Seed         int64
	Ticks        int
	BestCost     float64
	BestRoute    string
	Error        string
	Stats        []GenerationRecord
}

// GenerationRecord is one stats snapshot row. Generation is 1-based tick
// order within the run.
type GenerationRecord struct {
	ID         uint
	RunID      uint
	Generation int
	Best       float64
	Worst      float64
	Average    float64
}

type PersistenceConfig struct {
	Name          string   `toml:"name"`
	Path          string   `toml:"path"`
	SQLitePragmas []string `toml:"sqlite_pragmas"`
	SQLiteOptions []string `toml:"sqlite_options"`
}

type Persistence struct {
	Config *PersistenceConfig
	DB     *gorm.DB
}

func NewPersistence(config *PersistenceConfig) (*Persistence, error) {
	if config == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}
	if len(config.Path) == 0 {
		return nil, fmt.Errorf("Path to database must be defined")
	}
	if len(config.Name) == 0 {
		return nil, fmt.Errorf("Name of database must be defined")
	}

	var params []string
	for _, prag := range config.SQLitePragmas {
		params = append(params, fmt.Sprintf("_pragma=%s", prag))
	}
	params = append(params, config.SQLiteOptions...)

	var dsn strings.Builder
	dsn.WriteString(filepath.Join(config.Path, config.Name))
	if len(params) > 0 {
		dsn.WriteRune('?')
		dsn.WriteString(strings.Join(params, "&"))
	}

	db, err := gorm.Open(sqlite.Open(dsn.String()), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	db = db.Session(&gorm.Session{PrepareStmt: true, CreateBatchSize: 1000})

	p := &Persistence{Config: config, DB: db}
	if err = p.initialize(); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Persistence) initialize() error {
	return p.DB.AutoMigrate(
		&Experiment{},
		&Run{},
		&GenerationRecord{},
	)
}

func (p *Persistence) Shutdown() error {
	sqldb, err := p.DB.DB()
	if err != nil {
		return fmt.Errorf("failed to retrieve raw DB: %w", err)
	}
	return sqldb.Close()
}

// SaveExperiment archives a full coordinator execution. Runs that were
// abandoned are stored too, with their error text and however many ticks
// they completed.
func (p *Persistence) SaveExperiment(instance string, cities int, config *Config, results []*RunResult) (uint, error) {
	exp := &Experiment{
		Instance: instance,
		Cities:   cities,
		Config:   *config,
	}
	for _, res := range results {
		run := Run{
			RunIndex: res.Run,
			Seed:     res.Seed,
			Ticks:    len(res.History),
		}
		if res.BestTour != nil {
			run.BestCost = res.BestTour.Fitness()
			run.BestRoute = encodeRoute(res.BestTour.Route)
		}
		if res.Err != nil {
			run.Error = res.Err.Error()
		}
		run.Stats = make([]GenerationRecord, len(res.History))
		for g, snap := range res.History {
			run.Stats[g] = GenerationRecord{
				Generation: g + 1,
				Best:       snap.Best,
				Worst:      snap.Worst,
				Average:    snap.Average,
			}
		}
		exp.Runs = append(exp.Runs, run)
	}

	if result := p.DB.Create(exp); result.Error != nil {
		return 0, fmt.Errorf("failed to archive experiment: %w", result.Error)
	}
	return exp.ID, nil
}

// LoadExperiment restores an archived experiment with its runs and stats,
// rebuilt into RunResults for the reporting sink.
func (p *Persistence) LoadExperiment(id uint) (*Experiment, []*RunResult, error) {
	var exp Experiment
	result := p.DB.
		Preload("Runs", func(db *gorm.DB) *gorm.DB { return db.Order("run_index") }).
		Preload("Runs.Stats").
		First(&exp, id)
	if result.Error != nil {
		return nil, nil, fmt.Errorf("failed to load experiment %d: %w", id, result.Error)
	}

	results := make([]*RunResult, len(exp.Runs))
	for i, run := range exp.Runs {
		res := &RunResult{
			Run:     run.RunIndex,
			Seed:    run.Seed,
			History: make([]GenerationStats, len(run.Stats)),
		}
		for _, rec := range run.Stats {
			if rec.Generation < 1 || rec.Generation > len(run.Stats) {
				return nil, nil, fmt.Errorf("experiment %d run %d: stats row out of order", id, run.RunIndex)
			}
			res.History[rec.Generation-1] = GenerationStats{
				Best:    rec.Best,
				Worst:   rec.Worst,
				Average: rec.Average,
			}
		}
		if run.BestRoute != "" {
			route, err := decodeRoute(run.BestRoute)
			if err != nil {
				return nil, nil, fmt.Errorf("experiment %d run %d: %w", id, run.RunIndex, err)
			}
			tour := NewChromosome(route)
			tour.cost = run.BestCost
			tour.dirty = false
			res.BestTour = tour
		}
		results[i] = res
	}
	return &exp, results, nil
}

// ListExperiments returns archived experiments without their stats rows,
// newest first.
func (p *Persistence) ListExperiments() ([]Experiment, error) {
	var exps []Experiment
	if result := p.DB.Order("id desc").Find(&exps); result.Error != nil {
		return nil, fmt.Errorf("failed to list experiments: %w", result.Error)
	}
	return exps, nil
}

func encodeRoute(route []int) string {
	parts := make([]string, len(route))
	for i, city := range route {
		parts[i] = strconv.Itoa(city)
	}
	return strings.Join(parts, ",")
}

func decodeRoute(s string) ([]int, error) {
	parts := strings.Split(s, ",")
	route := make([]int, len(parts))
	for i, part := range parts {
		city, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("malformed archived route %q: %w", s, err)
		}
		route[i] = city
	}
	return route, nil
}
