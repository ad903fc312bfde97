package salam

import "time"

// Defaults applied by New.
const (
	// DefaultName is used when no WithName option is supplied.
	DefaultName = "World"
	// DefaultGreetDelay is the simulated per-recipient send latency.
	DefaultGreetDelay = 100 * time.Millisecond
	// DefaultTimeout is the default operation timeout.
	DefaultTimeout = 5000 * time.Millisecond
	// DefaultRetries is the default retry budget recorded in the configuration.
	DefaultRetries = 3
)

// Config holds the greeter's nested settings. Fields are independent and
// carry no cross-field constraints; construction performs no validation.
// The value is treated as immutable once attached to a Greeter: Configure
// swaps the whole value rather than mutating fields in place.
type Config struct {
	Timeout time.Duration
	Retries int
	Debug   bool
}

// DefaultConfig returns a configuration with the default settings.
func DefaultConfig() Config {
	return Config{
		Timeout: DefaultTimeout,
		Retries: DefaultRetries,
		Debug:   false,
	}
}
