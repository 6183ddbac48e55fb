package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/alexiusacademia/gostress/internal/section"
	"github.com/spf13/cobra"
)

var sectionPropsShape shapeFlags

var sectionPropsCmd = &cobra.Command{
	Use:   "props",
	Short: "Calculate section properties for a shape",
	Long: `Calculate area, bending moment of inertia, polar moment of inertia,
outer radius and effective shear thickness for a cross-section.

Note that the polar inertia for rectangle and I-beam sections and the
shear thickness for solid circles are engineering approximations kept
for consistency with the stress formulas, not exact torsion constants.

Examples:
  # 50x100 mm rectangle
  gostress section props --shape rectangle -u mm -b 50 --height 100

  # 80 mm solid circular shaft
  gostress section props --shape circle -u mm -d 80

  # Pipe section
  gostress section props --shape pipe -u mm --ro 40 --ri 32`,
	Run: runSectionProps,
}

func init() {
	sectionCmd.AddCommand(sectionPropsCmd)
	sectionPropsShape.register(sectionPropsCmd)
}

func runSectionProps(cmd *cobra.Command, args []string) {
	v, dims, _, err := sectionPropsShape.resolve()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	props := section.ComputeProperties(v, dims)

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     CROSS-SECTION PROPERTIES")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	fmt.Println("SECTION:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Shape:\t%s\n", v)
	switch v {
	case section.Rectangle:
		fmt.Fprintf(w, "  Width (b):\t%.4f m\n", dims.B)
		fmt.Fprintf(w, "  Height (h):\t%.4f m\n", dims.H)
	case section.SolidCircle:
		fmt.Fprintf(w, "  Diameter (d):\t%.4f m\n", dims.D)
	case section.HollowCircle:
		fmt.Fprintf(w, "  Outer radius (Ro):\t%.4f m\n", dims.Ro)
		fmt.Fprintf(w, "  Inner radius (Ri):\t%.4f m\n", dims.Ri)
	case section.IBeam:
		fmt.Fprintf(w, "  Depth (h):\t%.4f m\n", dims.H)
		fmt.Fprintf(w, "  Flange width (bf):\t%.4f m\n", dims.Bf)
		fmt.Fprintf(w, "  Flange thickness (tf):\t%.4f m\n", dims.Tf)
		fmt.Fprintf(w, "  Web thickness (tw):\t%.4f m\n", dims.Tw)
	}
	w.Flush()
	fmt.Println()

	fmt.Println("PROPERTIES:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Area (A):\t%.6e m²\n", props.Area)
	fmt.Fprintf(w, "  Moment of inertia (I):\t%.6e m⁴\n", props.Inertia)
	fmt.Fprintf(w, "  Polar moment of inertia (J):\t%.6e m⁴\n", props.PolarInertia)
	fmt.Fprintf(w, "  Outer radius (c):\t%.4f m\n", props.OuterRadius)
	fmt.Fprintf(w, "  Shear thickness (t):\t%.4f m\n", props.ShearThickness)
	w.Flush()
	fmt.Println()

	if v == section.HollowCircle && dims.Ri >= dims.Ro {
		fmt.Println("  ⚠ Degenerate pipe (Ri ≥ Ro): properties are zero and any")
		fmt.Println("    stresses computed from them will be undefined.")
		fmt.Println()
	}
}
