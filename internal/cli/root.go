package cli

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "twophase",
	Short: "A random-state scramble generator for twisty puzzles",
	Long: `twophase generates WCA-style random-state scrambles for the 3x3x3 and
4x4x4 Rubik's cubes using iterative-deepening search over canonicalized
move sequences.`,
	Version: "1.0.0",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(scrambleCmd)
	rootCmd.AddCommand(serveCmd)
}
