package cmd

import (
	"fmt"

	"github.com/benhsu/nusfjord-setup/internal/card"
	"github.com/benhsu/nusfjord-setup/internal/dataset"
	"github.com/spf13/cobra"
)

// decksCmd represents the decks command
var decksCmd = &cobra.Command{
	Use:   "decks",
	Short: "List the available decks and their card counts",
	Run: func(cmd *cobra.Command, args []string) {
		counts := dataset.SectionCounts(dataset.Load())

		for _, d := range card.Decks() {
			secs := counts[d]
			total := secs[card.SectionA] + secs[card.SectionB] + secs[card.SectionC]
			fmt.Printf("%-10s %2d cards (A: %d, B: %d, C: %d)\n",
				d, total, secs[card.SectionA], secs[card.SectionB], secs[card.SectionC])
		}
	},
}

func init() {
	RootCmd.AddCommand(decksCmd)
}
