package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/katalvlaran/gridpath/dirsearch"
	"github.com/katalvlaran/gridpath/grid"
)

// ErrInvalid is returned when a loaded value cannot be used.
var ErrInvalid = errors.New("config: invalid value")

type Config struct {
	Search SearchConfig `mapstructure:"search"`
	RAM    RAMConfig    `mapstructure:"ram"`
	LAN    LANConfig    `mapstructure:"lan"`
	Race   RaceConfig   `mapstructure:"race"`
	Log    LogConfig    `mapstructure:"log"`
}

type SearchConfig struct {
	StepCost    int64  `mapstructure:"step_cost"`
	TurnCost    int64  `mapstructure:"turn_cost"`
	StartFacing string `mapstructure:"start_facing"`
}

type RAMConfig struct {
	Size  int `mapstructure:"size"`
	Bytes int `mapstructure:"bytes"`
}

type LANConfig struct {
	Prefix string `mapstructure:"prefix"`
}

type RaceConfig struct {
	Threshold int `mapstructure:"threshold"`
	ShortJump int `mapstructure:"short_jump"`
	LongJump  int `mapstructure:"long_jump"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads the configuration from file and environment variables.
// An empty cfgFile searches ~/.gridpath and the working directory for
// gridpath.yaml; a missing file there is not an error.
func Load(cfgFile string) (*Config, error) {
	v := viper.New()
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			v.AddConfigPath(filepath.Join(home, ".gridpath"))
		}
		v.AddConfigPath(".")
		v.SetConfigName("gridpath")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix("GRIDPATH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("search.step_cost", dirsearch.DefaultStepCost)
	v.SetDefault("search.turn_cost", dirsearch.DefaultTurnCost)
	v.SetDefault("search.start_facing", "east")
	v.SetDefault("ram.size", 70)
	v.SetDefault("ram.bytes", 1024)
	v.SetDefault("lan.prefix", "t")
	v.SetDefault("race.threshold", 100)
	v.SetDefault("race.short_jump", 2)
	v.SetDefault("race.long_jump", 20)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
}

// SearchOptions turns the search section into dirsearch options. Cost
// bounds are checked by dirsearch itself; only the facing name is
// resolved here.
func (c *Config) SearchOptions() ([]dirsearch.Option, error) {
	facing, ok := grid.ParseDirection(c.Search.StartFacing)
	if !ok {
		return nil, fmt.Errorf("%w: search.start_facing %q", ErrInvalid, c.Search.StartFacing)
	}
	return []dirsearch.Option{
		dirsearch.WithStepCost(c.Search.StepCost),
		dirsearch.WithTurnCost(c.Search.TurnCost),
		dirsearch.WithStartFacing(facing),
	}, nil
}
