package cmd

import (
	"fmt"
	"math"
	"os"
	"text/tabwriter"

	"github.com/alexiusacademia/gostress/internal/diagram"
	"github.com/alexiusacademia/gostress/internal/section"
	"github.com/alexiusacademia/gostress/internal/stress"
	"github.com/alexiusacademia/gostress/internal/units"
	"github.com/spf13/cobra"
)

var (
	stressShape shapeFlags

	// Loads
	stressAxial  float64
	stressMoment float64
	stressTorque float64
	stressShear  float64

	// Units for loads and stress display
	stressForceUnit  string
	stressMomentUnit string
	stressOutUnit    string

	// Query point
	stressOrdinate float64

	// Output options
	stressShowDiagram bool
	stressExportFile  string
)

var stressCmd = &cobra.Command{
	Use:   "stress",
	Short: "Calculate stresses at a point of a cross-section",
	Long: `Calculate the four stress components at an ordinate y of a beam
cross-section under combined loading:

  axial            σ = N/A
  bending          σ = M·y/I
  torsional shear  τ = T·|y|/J
  transverse shear τ = V·Q/(I·t)

The components superpose only; no combined failure criterion is
applied. Degenerate geometry (e.g. a pipe with ri ≥ ro) yields
undefined stresses rather than an error.

Examples:
  # Bending + shear on a 50x100 mm rectangle, 20 mm above the axis
  gostress stress --shape rectangle -u mm -b 50 --height 100 \
    --moment 5 --moment-unit kN-m --shear 10 --force-unit kN -y 20

  # Shaft under torsion at the surface, with diagrams
  gostress stress --shape circle -u mm -d 80 --torque 200 -y 40 --diagram`,
	Run: runStress,
}

func init() {
	rootCmd.AddCommand(stressCmd)
	stressShape.register(stressCmd)

	// Load flags
	stressCmd.Flags().Float64VarP(&stressAxial, "axial", "n", 0, "Axial force N")
	stressCmd.Flags().Float64VarP(&stressMoment, "moment", "m", 0, "Bending moment M")
	stressCmd.Flags().Float64VarP(&stressTorque, "torque", "t", 0, "Torque T")
	stressCmd.Flags().Float64VarP(&stressShear, "shear", "v", 0, "Transverse shear force V")

	// Unit flags
	stressCmd.Flags().StringVar(&stressForceUnit, "force-unit", "N", "Unit for axial and shear forces (N, kN, lbf)")
	stressCmd.Flags().StringVar(&stressMomentUnit, "moment-unit", "N-m", "Unit for moment and torque (N-m, kN-m, lbf-ft)")
	stressCmd.Flags().StringVar(&stressOutUnit, "stress-unit", "MPa", "Unit for stress output (Pa, kPa, MPa, psi)")

	// Query point
	stressCmd.Flags().Float64VarP(&stressOrdinate, "ordinate", "y", 0, "Ordinate from the neutral axis (in --units)")

	// Output options
	stressCmd.Flags().BoolVar(&stressShowDiagram, "diagram", false, "Show ASCII stress distribution diagrams")
	stressCmd.Flags().StringVarP(&stressExportFile, "output", "o", "", "Export stress profiles to file (png, svg, pdf)")
}

func runStress(cmd *cobra.Command, args []string) {
	v, dims, lengthFactor, err := stressShape.resolve()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	forceFactor, err := units.ForceFactor(stressForceUnit)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	momentFactor, err := units.MomentFactor(stressMomentUnit)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	outFactor, err := units.StressFactor(stressOutUnit)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	loads := stress.LoadSet{
		AxialForce:    stressAxial * forceFactor,
		BendingMoment: stressMoment * momentFactor,
		Torque:        stressTorque * momentFactor,
		ShearForce:    stressShear * forceFactor,
	}
	y := stressOrdinate * lengthFactor

	props := section.ComputeProperties(v, dims)
	q := section.FirstMoment(v, dims, y)
	result := stress.Compute(props, q, loads, y)

	// Print results
	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     CROSS-SECTION STRESS ANALYSIS")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	fmt.Println("INPUT DATA:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Shape:\t%s\n", v)
	fmt.Fprintf(w, "  Axial force (N):\t%.2f N\n", loads.AxialForce)
	fmt.Fprintf(w, "  Bending moment (M):\t%.2f N·m\n", loads.BendingMoment)
	fmt.Fprintf(w, "  Torque (T):\t%.2f N·m\n", loads.Torque)
	fmt.Fprintf(w, "  Shear force (V):\t%.2f N\n", loads.ShearForce)
	fmt.Fprintf(w, "  Ordinate (y):\t%.4f m\n", y)
	w.Flush()
	fmt.Println()

	fmt.Println("SECTION PROPERTIES:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Area (A):\t%.6e m²\n", props.Area)
	fmt.Fprintf(w, "  Moment of inertia (I):\t%.6e m⁴\n", props.Inertia)
	fmt.Fprintf(w, "  Polar moment of inertia (J):\t%.6e m⁴\n", props.PolarInertia)
	fmt.Fprintf(w, "  Shear thickness (t):\t%.4f m\n", props.ShearThickness)
	fmt.Fprintf(w, "  First moment Q(y):\t%.6e m³\n", q)
	w.Flush()
	fmt.Println()

	if math.Abs(y) > props.OuterRadius {
		fmt.Println("  ⚠ Ordinate lies outside the section: Q-dependent terms are")
		fmt.Println("    zero while bending and torsion still scale with y.")
		fmt.Println()
	}

	fmt.Println("STRESSES:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Axial (σ = N/A):\t%s\n", formatStress(result.Axial, outFactor, stressOutUnit))
	fmt.Fprintf(w, "  Bending (σ = M·y/I):\t%s\n", formatStress(result.Bending, outFactor, stressOutUnit))
	fmt.Fprintf(w, "  Torsional shear (τ = T·|y|/J):\t%s\n", formatStress(result.TorsionalShear, outFactor, stressOutUnit))
	fmt.Fprintf(w, "  Transverse shear (τ = V·Q/(I·t)):\t%s\n", formatStress(result.TransverseShear, outFactor, stressOutUnit))
	w.Flush()
	fmt.Println()

	normal := result.Axial + result.Bending
	lines := []string{
		fmt.Sprintf("Normal (axial + bending): %s", formatStress(normal, outFactor, stressOutUnit)),
		fmt.Sprintf("Torsional shear:          %s", formatStress(result.TorsionalShear, outFactor, stressOutUnit)),
		fmt.Sprintf("Transverse shear:         %s", formatStress(result.TransverseShear, outFactor, stressOutUnit)),
	}
	fmt.Println(diagram.DrawSummaryBox("STRESSES AT y", lines))

	if !result.IsFinite() {
		fmt.Println("  ⚠ One or more stresses are undefined (degenerate geometry).")
		fmt.Println()
	}

	profileData := diagram.ProfileData{
		Variant:    v,
		Dimensions: dims,
		Properties: props,
		Loads:      loads,
		QueryY:     y,
	}

	if stressShowDiagram {
		fmt.Println(diagram.DrawSectionSketch(profileData))
		fmt.Println(diagram.DrawStressProfiles(profileData))
	}

	if stressExportFile != "" {
		if err := diagram.ExportStressProfiles(profileData, stressExportFile); err != nil {
			fmt.Printf("Error exporting diagram: %v\n", err)
		} else {
			fmt.Printf("Diagram exported to: %s\n", stressExportFile)
		}
	}
}

// formatStress renders a stress value in the requested display unit,
// showing non-finite results as undefined instead of Inf/NaN.
func formatStress(pa, factor float64, unit string) string {
	if math.IsNaN(pa) || math.IsInf(pa, 0) {
		return "undefined"
	}
	return fmt.Sprintf("%.4f %s", pa/factor, unit)
}
