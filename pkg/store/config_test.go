package store

import (
	"testing"
	"time"

	"github.com/spf13/viper"
)

func TestLoadConfigParsesFocusWindow(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	viper.Set("focus_window", "90m")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got := cfg.FocusDuration(); got != 90*time.Minute {
		t.Errorf("focus duration = %v, want 90m", got)
	}
}

func TestLoadConfigDefaultFocusWindow(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got := cfg.FocusDuration(); got != time.Hour {
		t.Errorf("focus duration = %v, want 1h", got)
	}
}

func TestLoadConfigRejectsBadFocusWindow(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	viper.Set("focus_window", "ninety minutes")

	if _, err := LoadConfig(); err == nil {
		t.Fatal("expected a parse error")
	}
}
