package config

import (
	"encoding/json"
	"os"
	"strings"
	"time"

	"github.com/adrg/xdg"
)

// Config holds runtime configuration for hotkeys, sampling cadence and app
// behavior. Fields may be loaded from a JSON file and overridden by
// environment variables (see applyEnv).
type Config struct {
	Debug      bool `json:"debug"`
	LightTheme bool `json:"light_theme"`

	// Hotkey engine
	HotkeysEnabled bool `json:"hotkeys_enabled"`
	DebounceMs     int  `json:"debounce_ms"`
	PollIntervalMs int  `json:"poll_interval_ms"`
	StopTimeoutMs  int  `json:"stop_timeout_ms"`

	// Liveness monitor
	MonitorIntervalMs int `json:"monitor_interval_ms"`
	RestartCooldownMs int `json:"restart_cooldown_ms"`

	// UI
	TickMs          int  `json:"tick_ms"`
	HistorySize     int  `json:"history_size"`
	MagnifierRadius int  `json:"magnifier_radius"`
	MagnifierZoom   int  `json:"magnifier_zoom"`
	Notifications   bool `json:"notifications"`
}

// DefaultConfig returns a Config populated with standard defaults.
func DefaultConfig() *Config {
	return &Config{
		Debug:             false,
		LightTheme:        true,
		HotkeysEnabled:    true,
		DebounceMs:        200,
		PollIntervalMs:    15,
		StopTimeoutMs:     1000,
		MonitorIntervalMs: 2000,
		RestartCooldownMs: 2000,
		TickMs:            16,
		HistorySize:       10,
		MagnifierRadius:   7,
		MagnifierZoom:     12,
		Notifications:     true,
	}
}

// DefaultPath resolves the per-user config file location, creating parent
// directories as needed.
func DefaultPath() (string, error) {
	return xdg.ConfigFile("colorpicker/config.json")
}

// Validate clamps/normalizes values to safe ranges.
func (c *Config) Validate() error {
	if c.DebounceMs <= 0 {
		c.DebounceMs = 200
	}
	if c.PollIntervalMs <= 0 {
		c.PollIntervalMs = 15
	}
	if c.PollIntervalMs > 1000 {
		c.PollIntervalMs = 1000
	}
	if c.StopTimeoutMs <= 0 {
		c.StopTimeoutMs = 1000
	}
	if c.MonitorIntervalMs <= 0 {
		c.MonitorIntervalMs = 2000
	}
	if c.RestartCooldownMs <= 0 {
		c.RestartCooldownMs = 2000
	}
	if c.TickMs < 5 {
		c.TickMs = 16
	}
	if c.TickMs > 1000 {
		c.TickMs = 1000
	}
	if c.HistorySize <= 0 {
		c.HistorySize = 10
	}
	if c.HistorySize > 100 {
		c.HistorySize = 100
	}
	if c.MagnifierRadius <= 0 {
		c.MagnifierRadius = 7
	}
	if c.MagnifierRadius > 32 {
		c.MagnifierRadius = 32
	}
	if c.MagnifierZoom <= 0 {
		c.MagnifierZoom = 12
	}
	if c.MagnifierZoom > 32 {
		c.MagnifierZoom = 32
	}
	return nil
}

// Duration accessors for the millisecond fields.
func (c *Config) Debounce() time.Duration        { return time.Duration(c.DebounceMs) * time.Millisecond }
func (c *Config) PollInterval() time.Duration    { return time.Duration(c.PollIntervalMs) * time.Millisecond }
func (c *Config) StopTimeout() time.Duration     { return time.Duration(c.StopTimeoutMs) * time.Millisecond }
func (c *Config) MonitorInterval() time.Duration { return time.Duration(c.MonitorIntervalMs) * time.Millisecond }
func (c *Config) RestartCooldown() time.Duration { return time.Duration(c.RestartCooldownMs) * time.Millisecond }
func (c *Config) Tick() time.Duration            { return time.Duration(c.TickMs) * time.Millisecond }

// Load attempts to read configuration from the given JSON file path. If the
// file does not exist it returns DefaultConfig(). On JSON error it returns
// defaults with the error. Environment overrides apply in both cases.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			applyEnv(cfg)
			_ = cfg.Validate()
			return cfg, nil
		}
		return cfg, err
	}
	defer f.Close()
	dec := json.NewDecoder(f)
	if err := dec.Decode(cfg); err != nil {
		return cfg, err
	}
	applyEnv(cfg)
	_ = cfg.Validate()
	return cfg, nil
}

// Save writes the configuration to the given path in JSON format.
func (c *Config) Save(path string) error {
	_ = c.Validate()
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(c)
}

// applyEnv overlays environment values onto cfg. A .env file loaded via
// godotenv in main surfaces here like any other environment variable.
func applyEnv(cfg *Config) {
	if v, ok := lookupBool("COLORPICKER_DEBUG"); ok {
		cfg.Debug = v
	}
	if v, ok := lookupBool("COLORPICKER_HOTKEYS"); ok {
		cfg.HotkeysEnabled = v
	}
	if v, ok := lookupBool("COLORPICKER_NOTIFICATIONS"); ok {
		cfg.Notifications = v
	}
	if v, ok := lookupBool("COLORPICKER_LIGHT_THEME"); ok {
		cfg.LightTheme = v
	}
}

func lookupBool(key string) (value, ok bool) {
	raw, present := os.LookupEnv(key)
	if !present {
		return false, false
	}
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "1", "true", "yes", "on":
		return true, true
	case "0", "false", "no", "off":
		return false, true
	}
	return false, false
}
