package tsp_evolve

import (
	"os"
	"path/filepath"
	test "testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultConfigIsValid(t *test.T) {
	require.NoError(t, DefaultConfig().Validate())
}

func TestValidateRejectsOutOfRangeParameters(t *test.T) {
	cases := []struct {
		name   string
		mangle func(*Config)
	}{
		{"small population", func(c *Config) { c.PopulationSize = 9 }},
		{"zero tournament", func(c *Config) { c.TournamentSize = 0 }},
		{"oversized tournament", func(c *Config) { c.TournamentSize = c.PopulationSize + 1 }},
		{"zero generations", func(c *Config) { c.GenerationCount = 0 }},
		{"zero runs", func(c *Config) { c.RunCount = 0 }},
		{"single multiple-swap", func(c *Config) {
			c.Mutation = MutationMultiple
			c.MultipleSwaps = 1
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *test.T) {
			config := DefaultConfig()
			tc.mangle(config)
			require.ErrorIs(t, config.Validate(), ErrConfiguration)
		})
	}
}

func TestTournamentMayEqualPopulation(t *test.T) {
	config := DefaultConfig()
	config.TournamentSize = config.PopulationSize
	require.NoError(t, config.Validate())
}

func TestParseOperators(t *test.T) {
	op, err := ParseCrossoverOperator("ordered")
	require.NoError(t, err)
	require.Equal(t, CrossoverOrdered, op)

	_, err = ParseCrossoverOperator("pmx")
	require.ErrorIs(t, err, ErrConfiguration)

	mut, err := ParseMutationOperator("inversion")
	require.NoError(t, err)
	require.Equal(t, MutationInversion, mut)

	_, err = ParseMutationOperator("scramble")
	require.ErrorIs(t, err, ErrConfiguration)
}

func TestLoadConfigFromTOML(t *test.T) {
	path := filepath.Join(t.TempDir(), "engine.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
population_size = 80
tournament_size = 7
crossover = "ordered"
mutation = "multiple"
multiple_swaps = 3
generation_count = 2500
run_count = 4
seed = 99
`), 0o644))

	config, err := LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, 80, config.PopulationSize)
	require.Equal(t, 7, config.TournamentSize)
	require.Equal(t, CrossoverOrdered, config.Crossover)
	require.Equal(t, MutationMultiple, config.Mutation)
	require.Equal(t, 3, config.MultipleSwaps)
	require.Equal(t, 2500, config.GenerationCount)
	require.Equal(t, 4, config.RunCount)
	require.Equal(t, int64(99), config.Seed)
	require.NoError(t, config.Validate())
}

func TestLoadConfigKeepsDefaultsForOmittedKeys(t *test.T) {
	path := filepath.Join(t.TempDir(), "engine.toml")
	require.NoError(t, os.WriteFile(path, []byte(`population_size = 64`), 0o644))

	config, err := LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, 64, config.PopulationSize)
	require.Equal(t, DefaultTournamentSize, config.TournamentSize)
	require.Equal(t, CrossoverFix, config.Crossover)
}

func TestLoadConfigRejectsUnknownOperator(t *test.T) {
	path := filepath.Join(t.TempDir(), "engine.toml")
	require.NoError(t, os.WriteFile(path, []byte(`crossover = "cycle"`), 0o644))

	_, err := LoadConfig(path)
	require.ErrorIs(t, err, ErrConfiguration)
}
