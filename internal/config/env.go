package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Settings — параметры запуска, читаются из переменных окружения.
type Settings struct {
	// Seed фиксирует генератор случайных чисел; 0 — сид от текущего времени.
	Seed        int64   `env:"SHOOTER_SEED" envDefault:"0"`
	Mute        bool    `env:"SHOOTER_MUTE" envDefault:"false"`
	Volume      float64 `env:"SHOOTER_VOLUME" envDefault:"0.6"`
	SkipMenu    bool    `env:"SHOOTER_SKIP_MENU" envDefault:"false"`
	AssetDir    string  `env:"SHOOTER_ASSET_DIR" envDefault:"assets"`
	WindowScale float64 `env:"SHOOTER_WINDOW_SCALE" envDefault:"1"`
	// PprofAddr включает net/http/pprof на этом адресе, пусто — выключено.
	PprofAddr string `env:"SHOOTER_PPROF_ADDR"`
}

// LoadSettings loads runtime settings from the environment.
func LoadSettings() (Settings, error) {
	var s Settings
	if err := env.Parse(&s); err != nil {
		return Settings{}, fmt.Errorf("parse env: %w", err)
	}
	if s.WindowScale <= 0 {
		return Settings{}, fmt.Errorf("window scale must be positive, got %v", s.WindowScale)
	}
	if s.Volume < 0 || s.Volume > 1 {
		return Settings{}, fmt.Errorf("volume must be within [0,1], got %v", s.Volume)
	}
	return s, nil
}

// WindowSize returns the window size in pixels for the configured scale.
func (s Settings) WindowSize() (int, int) {
	return int(ScreenWidth * s.WindowScale), int(ScreenHeight * s.WindowScale)
}
