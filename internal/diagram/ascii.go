package diagram

import (
	"fmt"
	"math"
	"strings"

	"github.com/guptarohit/asciigraph"

	"github.com/alexiusacademia/gostress/internal/section"
	"github.com/alexiusacademia/gostress/internal/stress"
)

// ProfileData holds everything needed to draw stress distribution
// diagrams over the depth of a section.
type ProfileData struct {
	Variant    section.Variant
	Dimensions section.Dimensions
	Properties section.Properties
	Loads      stress.LoadSet

	// Ordinate the report was evaluated at (m), marked on the diagrams
	QueryY float64
}

// sampleCount is the number of depth stations used for profiles.
const sampleCount = 41

// sample evaluates one stress component at evenly spaced ordinates from
// +R (top) down to -R (bottom).
func (d ProfileData) sample(component func(stress.Result) float64) []float64 {
	r := d.Properties.OuterRadius
	values := make([]float64, sampleCount)
	for i := 0; i < sampleCount; i++ {
		y := r - 2*r*float64(i)/float64(sampleCount-1)
		res := stress.At(d.Variant, d.Dimensions, d.Loads, y)
		v := component(res)
		if math.IsNaN(v) || math.IsInf(v, 0) {
			v = 0
		}
		values[i] = v
	}
	return values
}

// DrawStressProfiles renders terminal line plots of the bending and
// transverse shear distributions over the section depth. The X axis is
// the depth station from top fiber to bottom fiber; the Y axis is the
// stress in MPa.
func DrawStressProfiles(data ProfileData) string {
	var sb strings.Builder

	toMPa := func(values []float64) []float64 {
		out := make([]float64, len(values))
		for i, v := range values {
			out[i] = v / 1e6
		}
		return out
	}

	sb.WriteString("\n")
	sb.WriteString("  BENDING STRESS PROFILE (MPa, top fiber → bottom fiber)\n")
	sb.WriteString("  ──────────────────────────────────────────────────────\n")
	bending := toMPa(data.sample(func(r stress.Result) float64 { return r.Bending }))
	sb.WriteString(asciigraph.Plot(bending, asciigraph.Height(12), asciigraph.Width(60)))
	sb.WriteString("\n\n")

	sb.WriteString("  TRANSVERSE SHEAR PROFILE (MPa, top fiber → bottom fiber)\n")
	sb.WriteString("  ──────────────────────────────────────────────────────\n")
	shear := toMPa(data.sample(func(r stress.Result) float64 { return r.TransverseShear }))
	sb.WriteString(asciigraph.Plot(shear, asciigraph.Height(12), asciigraph.Width(60)))
	sb.WriteString("\n")

	return sb.String()
}

// DrawFirstMomentProfile renders a terminal plot of Q over the depth.
func DrawFirstMomentProfile(v section.Variant, dims section.Dimensions) string {
	props := section.ComputeProperties(v, dims)
	r := props.OuterRadius

	values := make([]float64, sampleCount)
	for i := 0; i < sampleCount; i++ {
		y := r - 2*r*float64(i)/float64(sampleCount-1)
		values[i] = section.FirstMoment(v, dims, y) * 1e6 // cm³ reads better than m³
	}

	var sb strings.Builder
	sb.WriteString("\n")
	sb.WriteString("  FIRST MOMENT OF AREA Q (cm³, top fiber → bottom fiber)\n")
	sb.WriteString("  ──────────────────────────────────────────────────────\n")
	sb.WriteString(asciigraph.Plot(values, asciigraph.Height(12), asciigraph.Width(60)))
	sb.WriteString("\n")
	return sb.String()
}

// DrawSectionSketch creates a small ASCII elevation of the section with
// the neutral axis and the query ordinate marked.
func DrawSectionSketch(data ProfileData) string {
	var sb strings.Builder

	widthChars := 24
	heightChars := 16

	r := data.Properties.OuterRadius
	queryLine := -1
	if r > 0 && math.Abs(data.QueryY) <= r {
		// Row 0 is the top fiber (+R), last row is the bottom fiber (-R).
		queryLine = int((r - data.QueryY) / (2 * r) * float64(heightChars))
	}
	naLine := heightChars / 2

	sb.WriteString("\n")
	sb.WriteString("  SECTION ELEVATION\n")
	sb.WriteString("  ─────────────────\n")

	for i := 0; i <= heightChars; i++ {
		switch i {
		case 0:
			sb.WriteString(fmt.Sprintf("  ┌%s┐", strings.Repeat("─", widthChars)))
		case heightChars:
			sb.WriteString(fmt.Sprintf("  └%s┘", strings.Repeat("─", widthChars)))
		default:
			fill := strings.Repeat(" ", widthChars)
			if i == queryLine {
				fill = strings.Repeat("░", widthChars)
			}
			sb.WriteString(fmt.Sprintf("  │%s│", fill))
		}

		if i == naLine {
			sb.WriteString(" ◄─ N.A. (y = 0)")
		}
		if i == queryLine && i != naLine {
			sb.WriteString(fmt.Sprintf(" ◄─ y = %.4f m", data.QueryY))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// DrawSummaryBox creates a summary box for results
func DrawSummaryBox(title string, lines []string) string {
	var sb strings.Builder

	maxLen := len(title)
	for _, line := range lines {
		if len(line) > maxLen {
			maxLen = len(line)
		}
	}
	maxLen += 4

	border := strings.Repeat("═", maxLen)
	sb.WriteString(fmt.Sprintf("  ╔%s╗\n", border))
	sb.WriteString(fmt.Sprintf("  ║  %-*s  ║\n", maxLen-2, title))
	sb.WriteString(fmt.Sprintf("  ╠%s╣\n", border))
	for _, line := range lines {
		sb.WriteString(fmt.Sprintf("  ║  %-*s  ║\n", maxLen-2, line))
	}
	sb.WriteString(fmt.Sprintf("  ╚%s╝\n", border))

	return sb.String()
}
