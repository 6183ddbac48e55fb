package cmd

import (
	"github.com/alexiusacademia/gostress/internal/section"
	"github.com/alexiusacademia/gostress/internal/units"
	"github.com/spf13/cobra"
)

// shapeFlags collects the shape selection and dimension flags shared by
// the commands that define a section on the command line. Dimensions
// are entered in the unit given by --units and converted to meters
// before reaching the engines.
type shapeFlags struct {
	shape string
	units string

	width    float64 // rectangle b
	height   float64 // rectangle/I-beam h
	diameter float64 // solid circle d
	ro       float64 // pipe outer radius
	ri       float64 // pipe inner radius
	bf       float64 // I-beam flange width
	tf       float64 // I-beam flange thickness
	tw       float64 // I-beam web thickness
}

func (f *shapeFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.shape, "shape", "s", "", "Section shape: rectangle, circle, pipe or ibeam [required]")
	cmd.MarkFlagRequired("shape")

	cmd.Flags().StringVarP(&f.units, "units", "u", "m", "Length unit for dimensions and ordinates (m, cm, mm, in)")

	cmd.Flags().Float64VarP(&f.width, "width", "b", 0, "Rectangle width b")
	cmd.Flags().Float64Var(&f.height, "height", 0, "Rectangle height or I-beam overall depth h")
	cmd.Flags().Float64VarP(&f.diameter, "diameter", "d", 0, "Solid circle diameter d")
	cmd.Flags().Float64Var(&f.ro, "ro", 0, "Pipe outer radius")
	cmd.Flags().Float64Var(&f.ri, "ri", 0, "Pipe inner radius")
	cmd.Flags().Float64Var(&f.bf, "bf", 0, "I-beam flange width")
	cmd.Flags().Float64Var(&f.tf, "tf", 0, "I-beam flange thickness")
	cmd.Flags().Float64Var(&f.tw, "tw", 0, "I-beam web thickness")
}

// resolve parses the shape, converts the dimensions to meters and
// validates them. The returned factor also applies to ordinate flags.
func (f *shapeFlags) resolve() (section.Variant, section.Dimensions, float64, error) {
	v, err := section.ParseVariant(f.shape)
	if err != nil {
		return 0, section.Dimensions{}, 0, err
	}

	factor, err := units.LengthFactor(f.units)
	if err != nil {
		return 0, section.Dimensions{}, 0, err
	}

	dims := section.Dimensions{
		B:  f.width * factor,
		H:  f.height * factor,
		D:  f.diameter * factor,
		Ro: f.ro * factor,
		Ri: f.ri * factor,
		Bf: f.bf * factor,
		Tf: f.tf * factor,
		Tw: f.tw * factor,
	}

	if err := section.Validate(v, dims); err != nil {
		return 0, section.Dimensions{}, 0, err
	}

	return v, dims, factor, nil
}
