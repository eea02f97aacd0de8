package eventsys

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("eventsys: invalid config")

// Config holds the tunable parameters of an EventSystem.
type Config struct {
	// DragThreshold is the movement in pixels a press must exceed before a
	// drag begins.
	DragThreshold float64 `toml:"drag_threshold" json:"drag_threshold" yaml:"drag_threshold"`

	// MultiClickWindow is the time in seconds within which another press on
	// the same object increments the click count.
	MultiClickWindow float64 `toml:"multi_click_window" json:"multi_click_window" yaml:"multi_click_window"`

	// SendNavigationEvents enables move, submit and cancel events.
	SendNavigationEvents bool `toml:"send_navigation_events" json:"send_navigation_events" yaml:"send_navigation_events"`

	// InputActionsPerSecond is the navigation repeat rate.
	InputActionsPerSecond float64 `toml:"input_actions_per_second" json:"input_actions_per_second" yaml:"input_actions_per_second"`

	// RepeatDelay is the time in seconds before a held direction repeats.
	RepeatDelay float64 `toml:"repeat_delay" json:"repeat_delay" yaml:"repeat_delay"`

	// ForceTouchModule keeps the touch module built by NewModules active even
	// without touch support or input.
	ForceTouchModule bool `toml:"force_touch_module" json:"force_touch_module" yaml:"force_touch_module"`

	// Debug enables per-pass stats on stderr.
	Debug bool `toml:"debug" json:"debug" yaml:"debug"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		DragThreshold:         DefaultDragThreshold,
		MultiClickWindow:      DefaultMultiClickWindow,
		SendNavigationEvents:  true,
		InputActionsPerSecond: DefaultInputActionsPerSecond,
		RepeatDelay:           DefaultRepeatDelay,
	}
}

// LoadConfig reads the configuration at path. The format follows the file
// extension: .toml, .json, .yaml or .yml. A missing file yields the defaults.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := DefaultConfig()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("decode JSON: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("decode YAML: %w", err)
		}
	default:
		if _, err := toml.Decode(string(data), cfg); err != nil {
			return nil, fmt.Errorf("decode TOML: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	return cfg, nil
}

// ParseConfig decodes TOML data over the defaults and validates the result.
func ParseConfig(data string) (*Config, error) {
	cfg := DefaultConfig()
	if _, err := toml.Decode(data, cfg); err != nil {
		return nil, fmt.Errorf("decode TOML: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	return cfg, nil
}

// Validate checks value ranges. Every failure wraps ErrInvalidConfig.
func (c *Config) Validate() error {
	var errs []error
	if c.DragThreshold < 0 {
		errs = append(errs, fmt.Errorf("%w: drag_threshold must be >= 0, got %v", ErrInvalidConfig, c.DragThreshold))
	}
	if c.MultiClickWindow <= 0 {
		errs = append(errs, fmt.Errorf("%w: multi_click_window must be > 0, got %v", ErrInvalidConfig, c.MultiClickWindow))
	}
	if c.InputActionsPerSecond <= 0 {
		errs = append(errs, fmt.Errorf("%w: input_actions_per_second must be > 0, got %v", ErrInvalidConfig, c.InputActionsPerSecond))
	}
	if c.RepeatDelay < 0 {
		errs = append(errs, fmt.Errorf("%w: repeat_delay must be >= 0, got %v", ErrInvalidConfig, c.RepeatDelay))
	}
	return errors.Join(errs...)
}

// Options converts the configuration to EventSystem options.
func (c *Config) Options() []Option {
	return []Option{
		WithDragThreshold(c.DragThreshold),
		WithMultiClickWindow(c.MultiClickWindow),
		WithNavigationEvents(c.SendNavigationEvents),
		WithRepeat(c.InputActionsPerSecond, c.RepeatDelay),
		WithDebug(c.Debug),
	}
}

// NewModules builds the standard module set in priority order: touch, then
// mouse.
func (c *Config) NewModules() (*TouchModule, *MouseModule) {
	touch := NewTouchModule()
	touch.ForceModuleActive = c.ForceTouchModule
	return touch, NewMouseModule()
}
