package salam

import (
	"context"
	"fmt"
)

// Greet greets each recipient strictly in input order, waiting one greet
// delay before every emission to model an I/O bound send. Delays are
// sequential, never concurrent, so total wall time grows with the number of
// recipients processed.
//
// A single error boundary wraps the whole run: the first failure (a write
// error, or cancellation of ctx during a wait) truncates the remaining
// recipients, emits one "Error: ..." line, and Greet returns normally.
// Callers never observe an error from this method.
func (g *Greeter) Greet(ctx context.Context, recipients ...string) {
	start := g.clock.Now()

	var greetID string
	if g.debug != nil && g.debug.Enabled && g.debug.GreetIDGen != nil {
		greetID = g.debug.GreetIDGen()
	}

	if g.debug != nil && g.debug.Enabled && g.debug.LogGreetings && g.logger != nil {
		g.logger.Debug("Starting greeting run", "greetID", greetID, "recipients", len(recipients))
	}

	g.metrics.RecordGreetStart()

	processed, err := g.greetEach(ctx, recipients)

	g.metrics.RecordGreetEnd()
	g.metrics.RecordRecipientsGreeted(processed)

	if err != nil {
		// Best effort: the writer itself may be what failed.
		fmt.Fprintf(g.out, "Error: %s\n", err)

		g.metrics.RecordError(ErrorTypeGreeting)
		g.metrics.RecordGreet("aborted", g.clock.Now().Sub(start))

		if g.debug != nil && g.debug.Enabled && g.debug.LogGreetings && g.logger != nil {
			g.logger.Warn("Greeting run aborted", "greetID", greetID, "processed", processed, "error", err.Error())
		}
		return
	}

	g.metrics.RecordGreet("ok", g.clock.Now().Sub(start))

	if g.debug != nil && g.debug.Enabled && g.debug.LogGreetings && g.logger != nil {
		g.logger.Debug("Greeting run complete", "greetID", greetID, "processed", processed)
	}
}

// greetEach runs the sequential per-recipient loop and reports how many
// recipients were fully processed before the first failure.
func (g *Greeter) greetEach(ctx context.Context, recipients []string) (int, error) {
	for i, recipient := range recipients {
		if err := g.clock.Sleep(ctx, g.greetDelay); err != nil {
			return i, &GreeterError{
				Type:      ErrorTypeGreeting,
				Message:   "greeting interrupted",
				Cause:     err,
				Recipient: recipient,
				Processed: i,
				Timestamp: g.clock.Now(),
			}
		}

		if _, err := fmt.Fprintf(g.out, "Hello, %s!\n", recipient); err != nil {
			return i, &GreeterError{
				Type:      ErrorTypeGreeting,
				Message:   "greeting emission failed",
				Cause:     err,
				Recipient: recipient,
				Processed: i,
				Timestamp: g.clock.Now(),
			}
		}
	}

	return len(recipients), nil
}
