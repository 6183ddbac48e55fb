package diagram

import (
	"image/color"
	"math"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/alexiusacademia/gostress/internal/stress"
)

// ExportStressProfiles exports the bending and transverse shear stress
// distributions over the section depth to an image file (png, svg or
// pdf by extension, png by default).
func ExportStressProfiles(data ProfileData, filename string) error {
	p := plot.New()
	p.Title.Text = "Cross-Section Stress Distribution"
	p.X.Label.Text = "Stress (MPa)"
	p.Y.Label.Text = "Ordinate y (m)"
	p.Legend.Top = true

	r := data.Properties.OuterRadius

	var minStress, maxStress float64
	profile := func(component func(stress.Result) float64) plotter.XYs {
		pts := make(plotter.XYs, 0, sampleCount)
		for i := 0; i < sampleCount; i++ {
			y := r - 2*r*float64(i)/float64(sampleCount-1)
			v := component(stress.At(data.Variant, data.Dimensions, data.Loads, y))
			if math.IsNaN(v) || math.IsInf(v, 0) {
				continue
			}
			v /= 1e6
			minStress = math.Min(minStress, v)
			maxStress = math.Max(maxStress, v)
			pts = append(pts, plotter.XY{X: v, Y: y})
		}
		return pts
	}

	bendingLine, err := plotter.NewLine(profile(func(res stress.Result) float64 { return res.Bending }))
	if err != nil {
		return err
	}
	bendingLine.LineStyle.Width = vg.Points(2)
	bendingLine.LineStyle.Color = color.RGBA{R: 0, G: 100, B: 0, A: 255}
	p.Add(bendingLine)
	p.Legend.Add("bending", bendingLine)

	shearLine, err := plotter.NewLine(profile(func(res stress.Result) float64 { return res.TransverseShear }))
	if err != nil {
		return err
	}
	shearLine.LineStyle.Width = vg.Points(2)
	shearLine.LineStyle.Color = color.RGBA{R: 0, G: 0, B: 139, A: 255}
	p.Add(shearLine)
	p.Legend.Add("transverse shear", shearLine)

	torsionLine, err := plotter.NewLine(profile(func(res stress.Result) float64 { return res.TorsionalShear }))
	if err != nil {
		return err
	}
	torsionLine.LineStyle.Width = vg.Points(2)
	torsionLine.LineStyle.Color = color.RGBA{R: 178, G: 34, B: 34, A: 255}
	p.Add(torsionLine)
	p.Legend.Add("torsional shear", torsionLine)

	// Zero stress reference line
	zeroLine, err := plotter.NewLine(plotter.XYs{
		{X: 0, Y: -r},
		{X: 0, Y: r},
	})
	if err != nil {
		return err
	}
	zeroLine.LineStyle.Width = vg.Points(1)
	zeroLine.LineStyle.Color = color.Gray{Y: 128}
	zeroLine.LineStyle.Dashes = []vg.Length{vg.Points(3), vg.Points(3)}
	p.Add(zeroLine)

	// Neutral axis marker
	naLine, err := plotter.NewLine(plotter.XYs{
		{X: minStress, Y: 0},
		{X: maxStress, Y: 0},
	})
	if err != nil {
		return err
	}
	naLine.LineStyle.Width = vg.Points(1)
	naLine.LineStyle.Color = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	naLine.LineStyle.Dashes = []vg.Length{vg.Points(5), vg.Points(3)}
	p.Add(naLine)

	width := 6 * vg.Inch
	height := 8 * vg.Inch

	// Create directory if needed
	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		os.MkdirAll(dir, 0755)
	}

	switch filepath.Ext(filename) {
	case ".png", ".svg", ".pdf":
		return p.Save(width, height, filename)
	default:
		return p.Save(width, height, filename+".png")
	}
}
