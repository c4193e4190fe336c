package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel string `yaml:"log-level" env:"TTT_LOG_LEVEL" env-default:"warn" validate:"oneof=trace debug info warn error disabled"`
	Seed     uint64 `yaml:"seed" env:"TTT_SEED" env-default:"0"` // 0 seeds from the clock
	Board    Board  `yaml:"board"`
	Search   Search `yaml:"search"`
	Pacing   Pacing `yaml:"pacing"`
}

type Board struct {
	DefaultDimension int `yaml:"default-dimension" env:"TTT_DEFAULT_DIMENSION" env-default:"3" validate:"gte=1"`
	WarnDimension    int `yaml:"warn-dimension" env:"TTT_WARN_DIMENSION" env-default:"20" validate:"gtefield=DefaultDimension"`
}

type Search struct {
	Cutoff int `yaml:"cutoff" env:"TTT_SEARCH_CUTOFF" env-default:"5" validate:"gte=1"`
}

// Pacing holds the pauses that keep the console readable.
type Pacing struct {
	Intro   time.Duration `yaml:"intro" env:"TTT_PACING_INTRO" env-default:"1s" validate:"gte=0"`
	Prompt  time.Duration `yaml:"prompt" env:"TTT_PACING_PROMPT" env-default:"250ms" validate:"gte=0"`
	Outcome time.Duration `yaml:"outcome" env:"TTT_PACING_OUTCOME" env-default:"500ms" validate:"gte=0"`
	Turn    time.Duration `yaml:"turn" env:"TTT_PACING_TURN" env-default:"0s" validate:"gte=0"`
}

// Load reads the YAML file at path, or only the environment when path is
// empty, and validates the result.
func Load(path string) (*Config, error) {
	config := &Config{}

	var err error
	if path != "" {
		err = cleanenv.ReadConfig(path, config)
	} else {
		err = cleanenv.ReadEnv(config)
	}
	if err != nil {
		return nil, fmt.Errorf("unable to load config: %w", err)
	}

	if err := validator.New(validator.WithRequiredStructEnabled()).Struct(config); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return config, nil
}

// MustLoad is Load for the entry point.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}
	return config
}
