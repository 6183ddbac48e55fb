package cmd

import (
	"fmt"

	"github.com/alexiusacademia/gostress/internal/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of gostress",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("gostress v%s\n", version.Version)
		fmt.Println("Beam Cross-Section Stress Calculator")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
