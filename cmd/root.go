package cmd

import (
	"fmt"
	"math/rand"
	"os"
	"strings"
	"time"

	"golang.org/x/term"

	"github.com/benhsu/nusfjord-setup/internal/card"
	"github.com/benhsu/nusfjord-setup/internal/config"
	"github.com/benhsu/nusfjord-setup/internal/dataset"
	"github.com/benhsu/nusfjord-setup/internal/render"
	"github.com/benhsu/nusfjord-setup/internal/setup"
	"github.com/spf13/cobra"
)

// RootCmd represents the base command: it deals and prints the setup.
var RootCmd = &cobra.Command{
	Use:   "nusfjord-setup <deck>",
	Short: "Random setup for the Nusfjord board game",
	Long: `nusfjord-setup deals a randomized initial setup for the Nusfjord board game.
It shuffles the building cards of the chosen deck (plus any added decks), lays
out the three initial rows, and reveals the cards drawn in rounds 3 to 5 for
the given player count.`,
	Args: cobra.ExactArgs(1),
	RunE: runSetup,
}

var (
	playersFlag  int
	addinFlags   []string
	allBaseFlag  bool
	allDecksFlag bool
)

func init() {
	RootCmd.Flags().IntVarP(&playersFlag, "players", "p", 2, "number of players (1-5)")
	RootCmd.Flags().StringArrayVarP(&addinFlags, "add", "a",
		nil, "add a deck to initial setup (repeatable); per page 15 of the game rules,\nadded decks only affect initial setup, not cards drawn in rounds 3-6")
	RootCmd.Flags().BoolVar(&allBaseFlag, "all-base-decks", false, "adds all three decks from the base game to initial setup")
	RootCmd.Flags().BoolVar(&allDecksFlag, "all-decks", false, "adds all decks (base and expansions) to initial setup")
	RootCmd.MarkFlagsMutuallyExclusive("add", "all-base-decks", "all-decks")
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return RootCmd.Execute()
}

func runSetup(cmd *cobra.Command, args []string) error {
	mainDeck, err := card.ParseDeck(args[0])
	if err != nil {
		return fmt.Errorf("invalid deck %q, must be one of: %s", args[0], strings.Join(card.DeckNames(), ", "))
	}

	addins := make([]card.Deck, 0, len(addinFlags))
	for _, name := range addinFlags {
		d, err := card.ParseDeck(name)
		if err != nil {
			return fmt.Errorf("invalid deck %q for --add, must be one of: %s", name, strings.Join(card.DeckNames(), ", "))
		}
		addins = append(addins, d)
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	players := playersFlag
	if !cmd.Flags().Changed("players") && cfg.DefaultPlayers != 0 {
		players = cfg.DefaultPlayers
	}
	if players < 1 || players > 5 {
		return fmt.Errorf("invalid player count %d, must be between 1 and 5", players)
	}

	sel := setup.Selection{
		Players:  players,
		MainDeck: mainDeck,
		Active:   setup.ActiveDecks(mainDeck, addins, allBaseFlag, allDecksFlag),
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	plan := setup.Deal(dataset.Load(), sel, rng)

	printPlan(plan, !cfg.RevealRounds)
	return nil
}

// printPlan renders the dealt setup to stdout, sized to the terminal.
func printPlan(plan setup.Plan, spoiler bool) {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		// Not a terminal (piped or redirected output): render full rows.
		width = 5 * 24
	}
	r := render.New(os.Stdout, width)

	for _, row := range plan.SetupRows {
		r.Row(row.Cards, true, false)
	}
	if len(plan.Round3) > 0 {
		r.Banner("ROUND 3 CARDS")
		r.Row(plan.Round3[0].Cards, false, spoiler)
	}
	if len(plan.Round4) > 0 {
		r.Banner("ROUND 4 CARDS")
		for _, row := range plan.Round4 {
			r.Player(row.Player)
			r.Row(row.Cards, false, spoiler)
		}
	}
	if len(plan.Round5) > 0 {
		r.Banner("ROUND 5 CARDS")
		r.Row(plan.Round5[0].Cards, false, spoiler)
	}
}
