package cmd

import (
	"fmt"
	"math"
	"os"
	"text/tabwriter"

	"github.com/alexiusacademia/gostress/internal/stress"
	"github.com/alexiusacademia/gostress/internal/units"
	"github.com/spf13/cobra"
)

var (
	caseFile       string
	caseStressUnit string
)

var caseCmd = &cobra.Command{
	Use:   "case",
	Short: "Evaluate a stress case defined in a JSON file",
	Long: `Evaluate the full stress pipeline for a case defined in a JSON file:
a section, a load set, and a list of ordinates. All values in the file
are SI (meters, newtons, newton-meters).

Example JSON file structure:
{
  "name": "Cantilever tip section",
  "shape": "ibeam",
  "dimensions": {"h": 0.2, "bf": 0.1, "tf": 0.02, "tw": 0.01},
  "loads": {
    "axial_force": 1000,
    "bending_moment": 5000,
    "torque": 200,
    "shear_force": 10000
  },
  "ordinates": [-0.1, -0.05, 0, 0.05, 0.1]
}

Examples:
  gostress case --file beam.json
  gostress case -f shaft.json --stress-unit psi`,
	Run: runCase,
}

func init() {
	rootCmd.AddCommand(caseCmd)

	caseCmd.Flags().StringVarP(&caseFile, "file", "f", "", "Path to case JSON file [required]")
	caseCmd.MarkFlagRequired("file")

	caseCmd.Flags().StringVar(&caseStressUnit, "stress-unit", "MPa", "Unit for stress output (Pa, kPa, MPa, psi)")
}

func runCase(cmd *cobra.Command, args []string) {
	cs, err := stress.LoadCaseFromFile(caseFile)
	if err != nil {
		fmt.Printf("Error loading case: %v\n", err)
		return
	}

	outFactor, err := units.StressFactor(caseStressUnit)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	v, err := cs.Variant()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	results, err := cs.Evaluate()
	if err != nil {
		fmt.Printf("Error evaluating case: %v\n", err)
		return
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     STRESS CASE EVALUATION")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	if cs.Name != "" {
		fmt.Printf("  Case: %s\n", cs.Name)
	}
	if cs.Description != "" {
		fmt.Printf("  Description: %s\n", cs.Description)
	}
	fmt.Println()

	fmt.Println("LOADS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Shape:\t%s\n", v)
	fmt.Fprintf(w, "  Axial force (N):\t%.2f N\n", cs.Loads.AxialForce)
	fmt.Fprintf(w, "  Bending moment (M):\t%.2f N·m\n", cs.Loads.BendingMoment)
	fmt.Fprintf(w, "  Torque (T):\t%.2f N·m\n", cs.Loads.Torque)
	fmt.Fprintf(w, "  Shear force (V):\t%.2f N\n", cs.Loads.ShearForce)
	w.Flush()
	fmt.Println()

	fmt.Printf("STRESSES (%s):\n", caseStressUnit)
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  y (m)\tAxial\tBending\tTorsion τ\tShear τ\n")
	fmt.Fprintf(w, "  ─────\t─────\t───────\t─────────\t───────\n")

	anyUndefined := false
	for i, res := range results {
		if !res.IsFinite() {
			anyUndefined = true
		}
		fmt.Fprintf(w, "  %.4f\t%s\t%s\t%s\t%s\n",
			cs.Ordinates[i],
			caseStress(res.Axial, outFactor),
			caseStress(res.Bending, outFactor),
			caseStress(res.TorsionalShear, outFactor),
			caseStress(res.TransverseShear, outFactor))
	}
	w.Flush()
	fmt.Println()

	if anyUndefined {
		fmt.Println("  ⚠ Undefined values come from degenerate geometry (zero area")
		fmt.Println("    or zero shear thickness); inspect the section dimensions.")
		fmt.Println()
	}
}

func caseStress(pa, factor float64) string {
	if math.IsNaN(pa) || math.IsInf(pa, 0) {
		return "undefined"
	}
	return fmt.Sprintf("%.4f", pa/factor)
}
