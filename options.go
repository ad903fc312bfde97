package salam

import (
	"fmt"
	"io"
	"time"

	"github.com/ambiyansyah-risyal/salam/internal/orderedmap"
)

// Option represents a configuration option
type Option func(*Greeter)

// WithName sets the greeter's name. The value is applied as-is; only later
// SetName calls enforce the non-empty rule.
func WithName(name string) Option {
	return func(g *Greeter) {
		g.name = name
	}
}

// WithOption stores a single free-form option value. Repeated calls preserve
// call order in report rendering.
func WithOption(key string, value any) Option {
	return func(g *Greeter) {
		g.options.Set(key, orderedmap.FromAny(value))
	}
}

// WithConfig replaces the default configuration value.
func WithConfig(cfg Config) Option {
	return func(g *Greeter) {
		g.config = cfg
	}
}

// WithGreetDelay sets the simulated per-recipient send latency.
func WithGreetDelay(d time.Duration) Option {
	return func(g *Greeter) {
		g.greetDelay = d
	}
}

// WithClock sets the clock used for greeting delays and timestamps in
// diagnostic context. Tests use this to avoid real waits.
func WithClock(clock Clock) Option {
	return func(g *Greeter) {
		g.clock = clock
	}
}

// WithOutput sets the writer greeting lines are emitted to.
func WithOutput(w io.Writer) Option {
	return func(g *Greeter) {
		g.out = w
	}
}

// WithMetrics enables Prometheus metrics collection
func WithMetrics() Option {
	return func(g *Greeter) {
		g.metrics = NewMetricsCollector()
	}
}

// WithMetricsCollector sets a custom metrics collector
func WithMetricsCollector(collector *MetricsCollector) Option {
	return func(g *Greeter) {
		g.metrics = collector
	}
}

// WithDebug enables debug logging with default configuration
func WithDebug() Option {
	return func(g *Greeter) {
		if g.debug == nil {
			g.debug = DefaultDebugConfig()
		}
		g.debug.Enabled = true
	}
}

// WithDebugConfig sets custom debug configuration
func WithDebugConfig(config *DebugConfig) Option {
	return func(g *Greeter) {
		g.debug = config
	}
}

// WithLogger sets a custom logger for debug output
func WithLogger(logger Logger) Option {
	return func(g *Greeter) {
		g.logger = logger
	}
}

// WithSimpleLogger enables debug logging with a simple console logger
func WithSimpleLogger() Option {
	return func(g *Greeter) {
		if g.debug == nil {
			g.debug = DefaultDebugConfig()
		}
		g.debug.Enabled = true
		g.logger = NewSimpleLogger()
	}
}

// WithGreetIDGenerator sets a custom function for generating greet IDs
func WithGreetIDGenerator(gen func() string) Option {
	return func(g *Greeter) {
		if g.debug == nil {
			g.debug = DefaultDebugConfig()
		}
		g.debug.GreetIDGen = gen
	}
}

// ValidateConfiguration validates the greeter wiring and returns an error if
// invalid. Entity state (name, options, Config fields) is left unvalidated:
// the only validated invariant on entity state is the non-empty name rule,
// and that is enforced by SetName alone.
func (g *Greeter) ValidateConfiguration() error {
	var errors []string

	// Validate each configuration section
	errors = append(errors, g.validateGreetConfig()...)
	errors = append(errors, g.validateOutputConfig()...)
	errors = append(errors, g.validateDebugConfig()...)

	if len(errors) > 0 {
		return &GreeterError{
			Type:    ErrorTypeValidation,
			Message: "configuration validation failed",
			Cause:   fmt.Errorf("validation errors: %v", errors),
		}
	}

	return nil
}

// validateGreetConfig validates greeting-related configuration
func (g *Greeter) validateGreetConfig() []string {
	var errors []string

	if g.greetDelay < 0 {
		errors = append(errors, "greetDelay must be non-negative")
	}

	if g.clock == nil {
		errors = append(errors, "clock cannot be nil")
	}

	return errors
}

// validateOutputConfig validates output configuration
func (g *Greeter) validateOutputConfig() []string {
	var errors []string

	if g.out == nil {
		errors = append(errors, "output writer cannot be nil")
	}

	return errors
}

// validateDebugConfig validates debug configuration
func (g *Greeter) validateDebugConfig() []string {
	var errors []string

	if g.debug != nil && g.debug.Enabled {
		if g.debug.GreetIDGen == nil {
			errors = append(errors, "debug GreetIDGen must be set when debug is enabled")
		}
		if g.logger == nil {
			errors = append(errors, "logger must be set when debug is enabled")
		}
	}

	return errors
}
