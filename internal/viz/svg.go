package viz

import (
	"fmt"
	"os"
	"strings"

	"github.com/san-kum/faultslip/internal/friction"
)

const (
	svgWidth  = 800
	svgHeight = 400
)

// TraceToSVG renders an acceleration-vs-time trace as a standalone SVG
// line plot, titled with the critical slip distance of the run.
func TraceToSVG(series *friction.Series, dc float64) string {
	points := series.Points()
	if len(points) < 2 {
		return ""
	}

	// Find bounds
	minT, maxT := points[0].T, points[0].T
	minA, maxA := points[0].Acc, points[0].Acc
	for _, p := range points {
		if p.T < minT {
			minT = p.T
		}
		if p.T > maxT {
			maxT = p.T
		}
		if p.Acc < minA {
			minA = p.Acc
		}
		if p.Acc > maxA {
			maxA = p.Acc
		}
	}

	rangeT := maxT - minT
	rangeA := maxA - minA
	if rangeT == 0 {
		rangeT = 1
	}
	if rangeA == 0 {
		rangeA = 1
	}
	minA -= rangeA * 0.1
	maxA += rangeA * 0.1
	rangeA = maxA - minA

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<text x="10" y="20" fill="#cccccc" font-family="monospace" font-size="14">dc=%g um</text>
<text x="10" y="38" fill="#888888" font-family="monospace" font-size="11">%s vs %s</text>
<path fill="none" stroke="#00ff00" stroke-width="1.5" d="M`,
		svgWidth, svgHeight, svgWidth, svgHeight, dc, YLabel, XLabel))

	for i, p := range points {
		x := (p.T - minT) / rangeT * float64(svgWidth)
		y := float64(svgHeight) - (p.Acc-minA)/rangeA*float64(svgHeight)

		if i == 0 {
			sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
		} else {
			sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
		}
	}

	sb.WriteString(`"/>
</svg>`)
	return sb.String()
}

// SaveSVG writes the SVG trace of a run to path.
func SaveSVG(path string, series *friction.Series, dc float64) error {
	svg := TraceToSVG(series, dc)
	if svg == "" {
		return fmt.Errorf("not enough samples to plot")
	}
	return os.WriteFile(path, []byte(svg), 0644)
}
