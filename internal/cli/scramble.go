package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ehrlich-b/twophase/internal/scramble"
)

var scrambleCmd = &cobra.Command{
	Use:   "scramble [puzzle]",
	Short: "Generate a random-state scramble",
	Long: `Generate a random-state scramble for a twisty puzzle.

Supported puzzles: 3x3x3 (default), 3x3x3-bld, 3x3x3-fmc, 4x4x4.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		puzzleName := "3x3x3"
		if len(args) == 1 {
			puzzleName = args[0]
		}
		count, _ := cmd.Flags().GetInt("count")
		link, _ := cmd.Flags().GetBool("link")

		for i := 0; i < count; i++ {
			alg, twizzleID, err := generate(puzzleName)
			if err != nil {
				return err
			}
			fmt.Println(alg)
			if link {
				fmt.Println(scramble.TwizzleLink(twizzleID, alg))
			}
		}
		return nil
	},
}

func generate(puzzleName string) (alg, twizzleID string, err error) {
	switch puzzleName {
	case "3x3x3":
		alg, err = scramble.Scramble3x3x3()
		return alg, "3x3x3", err
	case "3x3x3-bld":
		alg, err = scramble.Scramble3x3x3BLD()
		return alg, "3x3x3", err
	case "3x3x3-fmc":
		alg, err = scramble.Scramble3x3x3FMC()
		return alg, "3x3x3", err
	case "4x4x4":
		alg, err = scramble.Scramble4x4x4()
		return alg, "4x4x4", err
	default:
		return "", "", fmt.Errorf("unknown puzzle %q", puzzleName)
	}
}

func init() {
	scrambleCmd.Flags().IntP("count", "n", 1, "number of scrambles to generate")
	scrambleCmd.Flags().BoolP("link", "l", false, "also print an alg.cubing.net viewer link")
}
