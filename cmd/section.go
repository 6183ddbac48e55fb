package cmd

import (
	"github.com/spf13/cobra"
)

var sectionCmd = &cobra.Command{
	Use:   "section",
	Short: "Cross-section property calculations",
	Long: `Compute geometric properties of a beam cross-section.

Supported shapes:
  rectangle  - width b, height h
  circle     - diameter d
  pipe       - outer radius ro, inner radius ri
  ibeam      - depth h, flange width bf, flange thickness tf,
               web thickness tw

Subcommands:
  props  - Area, moments of inertia, outer radius, shear thickness
  q      - First moment of area Q at an ordinate

Dimensions are given in the unit selected with --units (default m).`,
}

func init() {
	rootCmd.AddCommand(sectionCmd)
}
