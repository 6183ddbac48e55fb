package cmd

import (
	"fmt"
	"os"

	"github.com/alexiusacademia/gostress/internal/version"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "gostress",
	Short: "Beam Cross-Section Stress Calculator",
	Long: `gostress - Go Beam Cross-Section Stress Calculator

A CLI tool for computing mechanical stresses at an arbitrary point
of a beam cross-section under combined loading.

This tool helps mechanical and structural engineers compute:
  - Section properties (A, I, J) for rectangle, circle, pipe and I-beam
  - First moment of area Q at any ordinate
  - Axial, bending, torsional shear and transverse shear stresses

All calculations use SI base units internally; inputs and outputs can
be converted with the unit flags.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   gostress v%-46s║\n", version.Version)
		fmt.Println("  ║   Go Beam Cross-Section Stress Calculator                 ║")
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  A CLI tool for computing stresses at a point of a beam")
		fmt.Println("  cross-section under combined loading.")
		fmt.Println()
		fmt.Println("  Features:")
		fmt.Println("    • Section properties for rectangle, circle, pipe and I-beam")
		fmt.Println("    • First moment of area Q at any ordinate")
		fmt.Println("    • Combined axial, bending, torsion and shear stresses")
		fmt.Println("    • ASCII and image stress distribution diagrams")
		fmt.Println()
		fmt.Println("  Use 'gostress --help' to see available commands.")
		fmt.Println()
		fmt.Println("  ─────────────────────────────────────────────────────────────")
		fmt.Printf("  Copyright © %s %s. All rights reserved.\n", version.Year, version.Author)
		fmt.Println()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}
