package store

import (
	"fmt"
	"time"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"

	"pxgdaily/pkg/reset"
	"pxgdaily/pkg/timeutil"
)

// Config exposes the settings the tracker needs: where the store lives,
// which civil timezone and time-of-day resets happen in, and how long a
// focus cycle runs.
type Config interface {
	BasePath() string
	ResetRules() reset.Rules
	FocusDuration() time.Duration
}

// LoadConfig reads .pxgdaily config (yaml implicit) from the working
// directory and the PXGDAILY_* environment, falling back to defaults that
// match the game servers. The focus window accepts the compact duration
// form, e.g. "1h" or "90m".
func LoadConfig() (Config, error) {
	viper.SetDefault("path", "~/.pxgdaily.db")
	viper.SetDefault("timezone", reset.DefaultTimezone)
	viper.SetDefault("reset_hour", reset.DefaultHour)
	viper.SetDefault("reset_minute", reset.DefaultMinute)
	viper.SetDefault("focus_window", timeutil.DefaultWindow)
	viper.SetConfigName(".pxgdaily")
	viper.SetEnvPrefix("PXGDAILY")
	viper.AutomaticEnv()
	viper.AddConfigPath("./")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("store: read config: %w", err)
		}
	}

	path, err := homedir.Expand(viper.GetString("path"))
	if err != nil {
		return nil, fmt.Errorf("store: expand path: %w", err)
	}

	loc, err := time.LoadLocation(viper.GetString("timezone"))
	if err != nil {
		return nil, fmt.Errorf("store: load timezone: %w", err)
	}

	focus, _, err := timeutil.ParseWindow(viper.GetString("focus_window"))
	if err != nil {
		return nil, fmt.Errorf("store: parse focus window: %w", err)
	}

	return &fileConfig{
		Path: path,
		Rules: reset.Rules{
			Location: loc,
			Hour:     viper.GetInt("reset_hour"),
			Minute:   viper.GetInt("reset_minute"),
		},
		Focus: focus,
	}, nil
}

type fileConfig struct {
	Path  string
	Rules reset.Rules
	Focus time.Duration
}

func (f *fileConfig) BasePath() string           { return f.Path }
func (f *fileConfig) ResetRules() reset.Rules    { return f.Rules }
func (f *fileConfig) FocusDuration() time.Duration { return f.Focus }
