package salam

import (
	"fmt"
	"io"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/ambiyansyah-risyal/salam/internal/orderedmap"
)

// instanceCount tracks how many Greeters this process has constructed. It is
// initialized to zero at process start, only ever grows, and has no teardown.
var instanceCount atomic.Int64

// InstanceCount returns the number of Greeters constructed process-wide. It
// is callable without an instance.
func InstanceCount() int64 {
	return instanceCount.Load()
}

// Greeter is a named entity that greets recipients one at a time with a
// simulated send delay, tracks free-form options, and renders textual state
// reports. It is safe for concurrent use.
type Greeter struct {
	mu        sync.RWMutex
	name      string
	options   *orderedmap.Map
	createdAt time.Time
	config    Config

	greetDelay time.Duration
	clock      Clock
	out        io.Writer

	metrics *MetricsCollector
	debug   *DebugConfig
	logger  Logger

	validationError error
}

// New constructs a Greeter using the provided functional options and
// increments the process-wide instance counter. A best effort validation of
// the wiring is performed; call IsValid / ValidationError for errors.
//
// The name is applied as-is here: only SetName enforces the non-empty rule,
// so a Greeter can be constructed with an empty name deliberately.
func New(options ...Option) *Greeter {
	g := &Greeter{
		name:       DefaultName,
		options:    orderedmap.New(),
		createdAt:  time.Now(),
		config:     DefaultConfig(),
		greetDelay: DefaultGreetDelay,
		clock:      realClock{},
		out:        os.Stdout,
		metrics:    nil,
		debug:      DefaultDebugConfig(),
		logger:     nil,
	}

	for _, option := range options {
		option(g)
	}

	if err := g.ValidateConfiguration(); err != nil {
		g.validationError = err
	}

	instanceCount.Add(1)
	g.metrics.RecordGreeterCreated()

	return g
}

// Name returns the current name.
func (g *Greeter) Name() string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.name
}

// SetName replaces the greeter's name. An empty value is rejected with an
// InvalidArgument error and leaves the current name untouched. The
// read-validate-write sequence runs under the entity lock so concurrent
// mutations cannot break the non-empty invariant.
func (g *Greeter) SetName(value string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if value == "" {
		g.metrics.RecordNameChange("rejected")
		g.metrics.RecordError(ErrorTypeInvalidArgument)
		return &GreeterError{
			Type:      ErrorTypeInvalidArgument,
			Message:   "name cannot be empty",
			Cause:     ErrEmptyName,
			Timestamp: g.clock.Now(),
		}
	}

	previous := g.name
	g.name = value
	g.metrics.RecordNameChange("ok")

	if g.debug != nil && g.debug.Enabled && g.debug.LogMutations && g.logger != nil {
		g.logger.Debug("Name changed", "from", previous, "to", value)
	}

	return nil
}

// String implements fmt.Stringer with a short identity string.
func (g *Greeter) String() string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return fmt.Sprintf("Greeter(name=%s)", g.name)
}

// CreatedAt returns the construction timestamp.
func (g *Greeter) CreatedAt() time.Time {
	return g.createdAt
}

// Config returns the embedded configuration value.
func (g *Greeter) Config() Config {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.config
}

// Configure replaces the embedded configuration and mirrors its fields into
// the options map so they show up in reports.
func (g *Greeter) Configure(cfg Config) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.config = cfg
	g.options.Set("timeout", orderedmap.FromAny(cfg.Timeout))
	g.options.Set("retries", orderedmap.FromAny(cfg.Retries))
	g.options.Set("debug", orderedmap.FromAny(cfg.Debug))

	if g.debug != nil && g.debug.Enabled && g.debug.LogMutations && g.logger != nil {
		g.logger.Debug("Configuration replaced", "timeout", cfg.Timeout, "retries", cfg.Retries, "debug", cfg.Debug)
	}
}

// SetOption stores a free-form option value under key. First insertions keep
// their position in report rendering; overwrites keep the original position.
func (g *Greeter) SetOption(key string, value any) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.options.Set(key, orderedmap.FromAny(value))
}

// OptionValue returns the option stored under key as a plain Go value.
func (g *Greeter) OptionValue(key string) (any, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	value, ok := g.options.Get(key)
	if !ok {
		return nil, false
	}
	return orderedmap.ToAny(value), true
}

// OptionKeys returns the option keys in insertion order.
func (g *Greeter) OptionKeys() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.options.Keys()
}

// IsValid reports whether configuration validation passed at construction.
func (g *Greeter) IsValid() bool {
	return g.validationError == nil
}

// ValidationError returns the configuration validation error, if any.
func (g *Greeter) ValidationError() error {
	return g.validationError
}
