package domain

import (
	"fmt"
	"time"
)

// Config holds per-run settings loaded from .pagelens.yaml and CLI flags.
// It toggles features and tunes budgets; the weight tables in weights.go
// are process-wide read-only configuration and cannot be overridden here.
type Config struct {
	Budgets             Budgets       `yaml:"budgets"          json:"budgets"`
	Screenshot          bool          `yaml:"screenshot"       json:"screenshot"`
	AccessibilityScript string        `yaml:"accessibility_script" json:"accessibility_script,omitempty"`
	OutputPath          string        `yaml:"output"           json:"output,omitempty"`
	FetchTimeout        time.Duration `yaml:"fetch_timeout"    json:"fetch_timeout"`
	NavigationTimeout   time.Duration `yaml:"navigation_timeout" json:"navigation_timeout"`
}

// Budgets are performance thresholds. A metric at or under its budget
// scores 100; scores decay linearly down to 0 at the poor multiple of the
// budget (see scoring).
type Budgets struct {
	MaxLoadTimeMs             float64 `yaml:"max_load_time_ms"              json:"max_load_time_ms"`
	MaxFirstContentfulPaintMs float64 `yaml:"max_first_contentful_paint_ms" json:"max_first_contentful_paint_ms"`
	MaxDOMContentLoadedMs     float64 `yaml:"max_dom_content_loaded_ms"     json:"max_dom_content_loaded_ms"`
	MaxPageWeightBytes        float64 `yaml:"max_page_weight_bytes"         json:"max_page_weight_bytes"`
	MaxRequestCount           float64 `yaml:"max_request_count"             json:"max_request_count"`
}

func DefaultConfig() Config {
	return Config{
		Budgets:           DefaultBudgets(),
		FetchTimeout:      8 * time.Second,
		NavigationTimeout: 30 * time.Second,
	}
}

func DefaultBudgets() Budgets {
	return Budgets{
		MaxLoadTimeMs:             3000,
		MaxFirstContentfulPaintMs: 1800,
		MaxDOMContentLoadedMs:     2000,
		MaxPageWeightBytes:        2 * 1024 * 1024,
		MaxRequestCount:           75,
	}
}

// Validate catches nonsensical values before a run starts.
func (c Config) Validate() error {
	if c.FetchTimeout <= 0 {
		return fmt.Errorf("fetch_timeout must be positive, got %s", c.FetchTimeout)
	}
	if c.NavigationTimeout <= 0 {
		return fmt.Errorf("navigation_timeout must be positive, got %s", c.NavigationTimeout)
	}
	return c.Budgets.Validate()
}

func (b Budgets) Validate() error {
	checks := []struct {
		name  string
		value float64
	}{
		{"max_load_time_ms", b.MaxLoadTimeMs},
		{"max_first_contentful_paint_ms", b.MaxFirstContentfulPaintMs},
		{"max_dom_content_loaded_ms", b.MaxDOMContentLoadedMs},
		{"max_page_weight_bytes", b.MaxPageWeightBytes},
		{"max_request_count", b.MaxRequestCount},
	}
	for _, c := range checks {
		if c.value <= 0 {
			return fmt.Errorf("budget %s must be positive, got %v", c.name, c.value)
		}
	}
	return nil
}
