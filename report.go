package salam

import (
	"fmt"
	"time"

	gojson "github.com/goccy/go-json"
)

// GenerateReport renders a point-in-time snapshot of the greeter: a fixed
// header, the current name, the creation timestamp, and the options mapping
// as indented JSON in insertion order. The template bytes (leading blank
// line, tab indentation) are part of the report contract. Calling it twice
// without a mutation in between yields identical text; nothing is written to
// the output channel.
func (g *Greeter) GenerateReport() string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	data, _ := gojson.MarshalIndent(g.options, "", "  ")
	report := fmt.Sprintf(`
		HelloWorld Report
		================
		Name: %s
		Created: %s
		Options: %s
	`, g.name, g.createdAt.Format(time.RFC3339), string(data))

	g.metrics.RecordReportGenerated()

	if g.debug != nil && g.debug.Enabled && g.debug.LogReports && g.logger != nil {
		g.logger.Debug("Report generated", "name", g.name, "options", g.options.Len())
	}

	return report
}
