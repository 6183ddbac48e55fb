package cmd

import (
	"fmt"
	"math"
	"os"
	"text/tabwriter"

	"github.com/alexiusacademia/gostress/internal/diagram"
	"github.com/alexiusacademia/gostress/internal/section"
	"github.com/spf13/cobra"
)

var (
	sectionQShape    shapeFlags
	sectionQOrdinate float64
	sectionQPlot     bool
)

var sectionQCmd = &cobra.Command{
	Use:   "q",
	Short: "Calculate the first moment of area Q at an ordinate",
	Long: `Calculate Q, the first moment of the section area on one side of a
query ordinate y, measured from the neutral axis. Q drives the
transverse shear stress τ = VQ/(I·t).

Q is zero at the outer fiber, maximal at the neutral axis, and an even
function of y for symmetric shapes.

Examples:
  # Q at the neutral axis of a 50x100 mm rectangle
  gostress section q --shape rectangle -u mm -b 50 --height 100 -y 0

  # Q profile plot for a pipe
  gostress section q --shape pipe -u mm --ro 40 --ri 32 -y 35 --plot`,
	Run: runSectionQ,
}

func init() {
	sectionCmd.AddCommand(sectionQCmd)
	sectionQShape.register(sectionQCmd)

	sectionQCmd.Flags().Float64VarP(&sectionQOrdinate, "ordinate", "y", 0, "Ordinate from the neutral axis (in --units)")
	sectionQCmd.Flags().BoolVar(&sectionQPlot, "plot", false, "Plot Q over the full section depth")
}

func runSectionQ(cmd *cobra.Command, args []string) {
	v, dims, factor, err := sectionQShape.resolve()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	y := sectionQOrdinate * factor
	props := section.ComputeProperties(v, dims)
	q := section.FirstMoment(v, dims, y)
	qMax := section.FirstMoment(v, dims, 0)

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     FIRST MOMENT OF AREA")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Shape:\t%s\n", v)
	fmt.Fprintf(w, "  Ordinate (y):\t%.4f m\n", y)
	fmt.Fprintf(w, "  Outer radius (c):\t%.4f m\n", props.OuterRadius)
	fmt.Fprintf(w, "  Q(y):\t%.6e m³\n", q)
	fmt.Fprintf(w, "  Q(0) maximum:\t%.6e m³\n", qMax)
	w.Flush()
	fmt.Println()

	if math.Abs(y) > props.OuterRadius {
		fmt.Println("  ⚠ Ordinate lies outside the section; Q is zero there and")
		fmt.Println("    only bending and torsion terms remain nonzero.")
		fmt.Println()
	}

	if sectionQPlot {
		fmt.Println(diagram.DrawFirstMomentProfile(v, dims))
	}
}
