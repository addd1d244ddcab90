// Package config loads the vocadrill configuration file and folds in
// environment overrides. All scheduling and gating policy constants
// live here rather than being scattered through call sites.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/tpnguyen/vocadrill/internal/difficulty"
	"github.com/tpnguyen/vocadrill/internal/learn"
)

// Config is the full application configuration.
type Config struct {
	Database DatabaseConfig `mapstructure:"database"`
	Learn    LearnConfig    `mapstructure:"learn"`
	Gate     GateConfig     `mapstructure:"gate"`
}

// DatabaseConfig locates the SQLite database file.
type DatabaseConfig struct {
	Path string `mapstructure:"path"`
}

// LearnConfig holds the engine's policy constants.
type LearnConfig struct {
	TypedRecallMastery int `mapstructure:"typed_recall_mastery" validate:"min=0,max=5"`
	OptionCount        int `mapstructure:"option_count" validate:"min=2,max=8"`
	FuzzyShortLen      int `mapstructure:"fuzzy_short_len" validate:"min=1"`
	FuzzyShortDistance int `mapstructure:"fuzzy_short_distance" validate:"min=0"`
	FuzzyLongDistance  int `mapstructure:"fuzzy_long_distance" validate:"min=0"`
}

// GateConfig holds the difficulty gate thresholds.
type GateConfig struct {
	PromptWrongStreak int `mapstructure:"prompt_wrong_streak" validate:"min=1"`
	PromptWrongCount  int `mapstructure:"prompt_wrong_count" validate:"min=1"`
	AdjustAfter       int `mapstructure:"adjust_after" validate:"min=1"`
}

// Load reads configuration from path if given, otherwise from
// vocadrill.yaml in the XDG config directory. A missing file is fine;
// defaults and VOCADRILL_* environment variables still apply.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix("VOCADRILL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	} else {
		v.SetConfigName("vocadrill")
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, "vocadrill"))
		}
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	learnDefaults := learn.DefaultPolicy()
	gateDefaults := difficulty.DefaultConfig()

	v.SetDefault("learn.typed_recall_mastery", learnDefaults.TypedRecallMastery)
	v.SetDefault("learn.option_count", learnDefaults.OptionCount)
	v.SetDefault("learn.fuzzy_short_len", learnDefaults.FuzzyShortLen)
	v.SetDefault("learn.fuzzy_short_distance", learnDefaults.FuzzyShortDistance)
	v.SetDefault("learn.fuzzy_long_distance", learnDefaults.FuzzyLongDistance)

	v.SetDefault("gate.prompt_wrong_streak", gateDefaults.PromptWrongStreak)
	v.SetDefault("gate.prompt_wrong_count", gateDefaults.PromptWrongCount)
	v.SetDefault("gate.adjust_after", gateDefaults.AdjustAfter)
}

// Policy converts the learn section into an engine policy.
func (c *Config) Policy() learn.Policy {
	return learn.Policy{
		TypedRecallMastery: c.Learn.TypedRecallMastery,
		OptionCount:        c.Learn.OptionCount,
		FuzzyShortLen:      c.Learn.FuzzyShortLen,
		FuzzyShortDistance: c.Learn.FuzzyShortDistance,
		FuzzyLongDistance:  c.Learn.FuzzyLongDistance,
	}
}

// GatePolicy converts the gate section into gate thresholds.
func (c *Config) GatePolicy() difficulty.Config {
	return difficulty.Config{
		PromptWrongStreak: c.Gate.PromptWrongStreak,
		PromptWrongCount:  c.Gate.PromptWrongCount,
		AdjustAfter:       c.Gate.AdjustAfter,
	}
}
