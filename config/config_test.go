package config

import (
	"bytes"
	"hex/game"
	"hex/meta"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad(t *testing.T) {
	t.Run("using defaults without a file", func(t *testing.T) {
		cfg, err := Load("")

		require.NoError(t, err)
		require.Equal(t, meta.RULES, cfg.Rules)
		require.Equal(t, meta.SIZE, cfg.Size)
		require.Equal(t, meta.DEPTH, cfg.Depth)
		require.Equal(t, "human", cfg.Black)
		require.Equal(t, "minimax", cfg.White)
		require.Equal(t, meta.MAX_DEPTH, cfg.MaxDepth)
		require.Equal(t, meta.EXPERIMENT, cfg.Experiment)
		require.Equal(t, []int{1, 2, 3}, cfg.Depths)
		require.Empty(t, cfg.BlackURL)
	})

	t.Run("reading remote seats and experiments", func(t *testing.T) {
		path := writeFile(t, "hex.yaml", "white_url: http://localhost:8080\nexperiment: depth\ndepths: [2, 4]\nmax_depth: 6\n")

		cfg, err := Load(path)

		require.NoError(t, err)
		require.Equal(t, "http://localhost:8080", cfg.WhiteURL)
		require.Equal(t, "depth", cfg.Experiment)
		require.Equal(t, []int{2, 4}, cfg.Depths)
		require.Equal(t, 6, cfg.MaxDepth)
	})

	t.Run("reading a yaml file", func(t *testing.T) {
		path := writeFile(t, "hex.yaml", "rules: connect\nsize: 3\nin_a_row: 3\nblack: random\nwhite: minimax\ndepth: 2\nseed: 42\n")

		cfg, err := Load(path)

		require.NoError(t, err)
		require.Equal(t, 3, cfg.Size)
		require.Equal(t, 2, cfg.Depth)
		require.Equal(t, uint64(42), cfg.Seed)
		rules, err := cfg.GameRules()
		require.NoError(t, err)
		require.Equal(t, game.NewConnect(3), rules)
	})

	t.Run("overriding with environment", func(t *testing.T) {
		t.Setenv("HEX_DEPTH", "5")
		t.Setenv("HEX_WHITE", "random")

		cfg, err := Load("")

		require.NoError(t, err)
		require.Equal(t, 5, cfg.Depth)
		require.Equal(t, "random", cfg.White)
	})

	t.Run("rejecting invalid values", func(t *testing.T) {
		for _, content := range []string{"depth: 0\n", "size: -1\n", "black: oracle\n", "rules: chess\n", "log_level: loud\n",
			"max_depth: 0\n", "experiment: tournament\n", "depths: [2, 0]\n"} {
			_, err := Load(writeFile(t, "bad.yaml", content))
			require.Error(t, err, content)
		}
	})

	t.Run("failing on a missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
		require.Error(t, err)
	})
}

func TestSetupLogging(t *testing.T) {
	logger, level := log.Logger, zerolog.GlobalLevel()
	defer func() {
		log.Logger = logger
		zerolog.SetGlobalLevel(level)
	}()
	var buf bytes.Buffer

	require.NoError(t, SetupLogging("warn", &buf))
	log.Info().Msg("hidden")
	log.Warn().Msg("shown")

	require.NotContains(t, buf.String(), "hidden")
	require.Contains(t, buf.String(), "shown")
	require.Error(t, SetupLogging("loud", &buf))
}

func TestGameRulesIgnoreCase(t *testing.T) {
	cfg, err := Load(writeFile(t, "hex.yaml", "rules: Hex\n"))
	require.NoError(t, err)

	rules, err := cfg.GameRules()
	require.NoError(t, err)
	require.Equal(t, game.Hex{}, rules)
}
