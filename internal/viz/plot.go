// Package viz renders acceleration series in the terminal.
package viz

import (
	"fmt"
	"strings"

	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/faultslip/internal/friction"
)

// Axis labels expected by downstream plot consumers.
const (
	XLabel = "Time (sec)"
	YLabel = "Acceleration (um/s^2)"
)

const (
	plotWidth  = 80
	plotHeight = 15
)

// PlotAcceleration renders the clean acceleration series as a line
// plot titled with the critical slip distance of the run.
func PlotAcceleration(series *friction.Series, dc float64) string {
	return plot(series.Acc, dc, "")
}

// PlotNoisy renders the noise-perturbed acceleration series.
func PlotNoisy(series *friction.Series, dc float64) string {
	return plot(series.AccNoise, dc, "noisy")
}

func plot(data []float64, dc float64, variant string) string {
	title := fmt.Sprintf("dc=%g um", dc)
	if variant != "" {
		title += " (" + variant + ")"
	}

	var b strings.Builder
	b.WriteString(title + "\n")
	b.WriteString(asciigraph.Plot(data,
		asciigraph.Height(plotHeight),
		asciigraph.Width(plotWidth),
		asciigraph.Caption(fmt.Sprintf("%s vs %s", YLabel, XLabel)),
	))
	return b.String()
}
