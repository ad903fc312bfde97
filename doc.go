// Package salam provides a small stateful greeter entity with composable
// wiring for observability and testing:
//
//   - Named Greeter entity with free-form, insertion-order-preserving options
//   - Sequential asynchronous greeting with a simulated per-recipient send delay
//   - Single error boundary around each greeting run (best-effort, silent partial completion)
//   - Recipient list normalization (drop empties, upper-case, sort)
//   - Multi-line textual state report with stable JSON option rendering
//   - Process-wide instance counter with a stateless accessor
//   - Prometheus metrics and lightweight structured debug logging
//
// Design goals:
//   - Small surface area – functional options configure everything
//   - Safe concurrent use of a single *Greeter instance
//   - Deterministic tests via a pluggable Clock and output writer
//
// Typical usage:
//
//	greeter := salam.New(
//	    salam.WithName("Go"),
//	    salam.WithOption("team", "platform"),
//	    salam.WithMetrics(),
//	    salam.WithSimpleLogger(),
//	)
//	greeter.Greet(ctx, "Alice", "Bob")
//	fmt.Println(greeter.GenerateReport())
//
// Greet never returns an error to its caller: the first failure inside a run
// truncates the remaining recipients and surfaces as a single "Error: ..."
// output line. Only SetName reports errors (an empty name is rejected).
// The library avoids opinionated logging: provide a Logger (e.g. via
// WithSimpleLogger) + enable debug flags selectively (WithDebug /
// WithDebugConfig) for insight without noise.
package salam
