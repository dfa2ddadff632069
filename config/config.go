package config

import (
	"fmt"
	"hex/game"
	"hex/meta"
	"hex/strategy"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
	"golang.org/x/exp/slices"
)

type Config struct {
	Rules     string `mapstructure:"rules"`
	Size      int    `mapstructure:"size"`
	InARow    int    `mapstructure:"in_a_row"`
	Black     string `mapstructure:"black"`
	White     string `mapstructure:"white"`
	Depth     int    `mapstructure:"depth"`
	Seed      uint64 `mapstructure:"seed"`
	Games     int    `mapstructure:"games"`
	LogLevel  string `mapstructure:"log_level"`
	OutputDir string `mapstructure:"output_dir"`
	Addr      string `mapstructure:"addr"`
	MaxDepth  int    `mapstructure:"max_depth"`

	// Seats with a URL take their moves from a move server
	BlackURL string `mapstructure:"black_url"`
	WhiteURL string `mapstructure:"white_url"`

	Experiment string `mapstructure:"experiment"` // round_robin or depth
	Depths     []int  `mapstructure:"depths"`
}

var experimentNames = []string{"round_robin", "depth"}

// Load reads cfgPath (if not empty) and HEX_* environment variables on top of
// the defaults.
func Load(cfgPath string) (*Config, error) {
	v := viper.New()
	v.SetDefault("rules", meta.RULES)
	v.SetDefault("size", meta.SIZE)
	v.SetDefault("in_a_row", meta.IN_A_ROW)
	v.SetDefault("black", "human")
	v.SetDefault("white", "minimax")
	v.SetDefault("depth", meta.DEPTH)
	v.SetDefault("seed", 0)
	v.SetDefault("games", meta.GAMES)
	v.SetDefault("log_level", "info")
	v.SetDefault("output_dir", "")
	v.SetDefault("addr", meta.ADDR)
	v.SetDefault("max_depth", meta.MAX_DEPTH)
	v.SetDefault("black_url", "")
	v.SetDefault("white_url", "")
	v.SetDefault("experiment", meta.EXPERIMENT)
	v.SetDefault("depths", []int{1, 2, 3})

	v.SetEnvPrefix("hex")
	v.AutomaticEnv()

	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", cfgPath, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.Size <= 0 {
		return fmt.Errorf("size must be positive, got %d", c.Size)
	}
	if c.Depth <= 0 {
		return fmt.Errorf("depth must be positive, got %d", c.Depth)
	}
	if c.MaxDepth <= 0 {
		return fmt.Errorf("max depth must be positive, got %d", c.MaxDepth)
	}
	if !slices.Contains(experimentNames, c.Experiment) {
		return fmt.Errorf("unknown experiment %q, expected one of %v", c.Experiment, experimentNames)
	}
	for _, d := range c.Depths {
		if d <= 0 {
			return fmt.Errorf("depths must be positive, got %v", c.Depths)
		}
	}
	if _, err := c.GameRules(); err != nil {
		return err
	}
	if _, err := strategy.ParseKind(c.Black); err != nil {
		return fmt.Errorf("black: %w", err)
	}
	if _, err := strategy.ParseKind(c.White); err != nil {
		return fmt.Errorf("white: %w", err)
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	return nil
}

func (c *Config) GameRules() (game.Rules, error) {
	return game.NewRules(c.Rules, c.InARow)
}

// SetupLogging points the global logger at a console writer on out.
func SetupLogging(level string, out io.Writer) error {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return err
	}
	if out == nil {
		out = os.Stderr
	}
	zerolog.SetGlobalLevel(lvl)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: out, TimeFormat: time.TimeOnly})
	return nil
}
