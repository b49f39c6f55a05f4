package tsp_evolve

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Config is the fixed option set consumed at engine construction. Values
// outside their documented ranges are rejected up front by Validate;
// nothing is ever clamped silently.
type Config struct {
	PopulationSize  int               `toml:"population_size"`
	TournamentSize  int               `toml:"tournament_size"`
	Crossover       CrossoverOperator `toml:"crossover"`
	Mutation        MutationOperator  `toml:"mutation"`
	MultipleSwaps   int               `toml:"multiple_swaps"`
	GenerationCount int               `toml:"generation_count"`
	RunCount        int               `toml:"run_count"`

	// Seed 0 means time-derived. Per-run streams are mixed out of this
	// base seed, so a fixed seed reproduces every run exactly.
	Seed int64 `toml:"seed"`
}

// DefaultConfig mirrors the stock command-line defaults.
func DefaultConfig() *Config {
	return &Config{
		PopulationSize:  DefaultPopulationSize,
		TournamentSize:  DefaultTournamentSize,
		Crossover:       CrossoverFix,
		Mutation:        MutationSingle,
		MultipleSwaps:   DefaultMultipleSwaps,
		GenerationCount: DefaultGenerationCount,
		RunCount:        DefaultRunCount,
	}
}

// LoadConfig decodes a TOML config file over the defaults.
func LoadConfig(path string) (*Config, error) {
	config := DefaultConfig()
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening config: %w", err)
	}
	defer f.Close()
	if _, err := toml.NewDecoder(f).Decode(config); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfiguration, err)
	}
	return config, nil
}

// Validate rejects any out-of-range parameter before engine construction.
func (c *Config) Validate() error {
	if c.PopulationSize < MinPopulationSize {
		return fmt.Errorf("%w: population_size %d, minimum %d", ErrConfiguration, c.PopulationSize, MinPopulationSize)
	}
	if c.TournamentSize < MinTournamentSize || c.TournamentSize > c.PopulationSize {
		return fmt.Errorf("%w: tournament_size %d, want [%d, %d]", ErrConfiguration, c.TournamentSize, MinTournamentSize, c.PopulationSize)
	}
	if c.Mutation == MutationMultiple && c.MultipleSwaps < MinMultipleSwaps {
		return fmt.Errorf("%w: multiple_swaps %d, minimum %d", ErrConfiguration, c.MultipleSwaps, MinMultipleSwaps)
	}
	if c.GenerationCount < 1 {
		return fmt.Errorf("%w: generation_count %d, minimum 1", ErrConfiguration, c.GenerationCount)
	}
	if c.RunCount < 1 {
		return fmt.Errorf("%w: run_count %d, minimum 1", ErrConfiguration, c.RunCount)
	}
	return nil
}

// ParseCrossoverOperator maps a config string onto the closed operator
// set.
func ParseCrossoverOperator(s string) (CrossoverOperator, error) {
	switch s {
	case "fix":
		return CrossoverFix, nil
	case "ordered":
		return CrossoverOrdered, nil
	}
	return 0, fmt.Errorf("%w: unknown crossover %q (want fix or ordered)", ErrConfiguration, s)
}

// ParseMutationOperator maps a config string onto the closed operator
// set.
func ParseMutationOperator(s string) (MutationOperator, error) {
	switch s {
	case "single":
		return MutationSingle, nil
	case "multiple":
		return MutationMultiple, nil
	case "inversion":
		return MutationInversion, nil
	}
	return 0, fmt.Errorf("%w: unknown mutation %q (want single, multiple or inversion)", ErrConfiguration, s)
}

// UnmarshalText lets TOML configs name crossovers by string.
func (c *CrossoverOperator) UnmarshalText(text []byte) error {
	op, err := ParseCrossoverOperator(string(text))
	if err != nil {
		return err
	}
	*c = op
	return nil
}

// UnmarshalText lets TOML configs name mutations by string.
func (m *MutationOperator) UnmarshalText(text []byte) error {
	op, err := ParseMutationOperator(string(text))
	if err != nil {
		return err
	}
	*m = op
	return nil
}
