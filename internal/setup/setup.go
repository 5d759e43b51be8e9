// Package setup deals the randomized board setup: it filters the card pool by
// the active deck selection, shuffles, lays out the three initial rows, and
// builds the round 3/4/5 draws for the chosen player count.
package setup

import (
	"fmt"
	"math/rand"

	"github.com/benhsu/nusfjord-setup/internal/card"
)

// Selection is the player's setup choice, derived from the command line.
type Selection struct {
	Players  int          // 1 to 5
	MainDeck card.Deck    // The single deck driving round 3-5 pools
	Active   card.DeckSet // Decks contributing to the initial setup rows
}

// ActiveDecks resolves the deck flags into the set of decks used for the
// initial setup. The main deck is always included. Per page 15 of the game
// rules, added decks contribute to the initial setup only, not to the cards
// drawn in rounds 3-6.
func ActiveDecks(main card.Deck, addins []card.Deck, allBase, allDecks bool) card.DeckSet {
	active := card.NewDeckSet(main)
	switch {
	case allDecks:
		for _, d := range card.Decks() {
			active = active.Add(d)
		}
	case allBase:
		for _, d := range card.BaseDecks() {
			active = active.Add(d)
		}
	default:
		for _, d := range addins {
			active = active.Add(d)
		}
	}
	return active
}

// Filter returns the cards in the given section whose deck is in the active
// set. The returned slice is a fresh view; cards themselves are shared.
func Filter(cards []card.Card, active card.DeckSet, section card.Section) []card.Card {
	var out []card.Card
	for _, c := range cards {
		if active.Contains(c.Deck) && c.Section == section {
			out = append(out, c)
		}
	}
	return out
}

// Row is one dealt group of cards, rendered together.
type Row struct {
	Cards []card.Card
	// Player is set for round 4 rows, which are dealt once per player.
	Player int
}

// Plan is the full dealt setup for one run.
type Plan struct {
	// SetupRows are the three initial rows of 2 "B" cards and 3 "A" cards.
	SetupRows []Row
	// Round3, Round4 and Round5 are empty when the round is skipped for the
	// selected player count.
	Round3 []Row
	Round4 []Row
	Round5 []Row
}

// Round 4 deals this many "C" cards to each player.
func round4Cards(players int) int {
	switch players {
	case 2:
		return 4
	case 3:
		return 3
	case 4, 5:
		return 2
	}
	return 0
}

// Round 5 reveals this many "B" cards.
func round5Cards(players int) int {
	switch players {
	case 3, 4:
		return 2
	case 5:
		return 3
	}
	return 0
}

// pool is a shuffled stack of cards consumed front to back.
type pool struct {
	name  string
	cards []card.Card
}

func (p *pool) draw() card.Card {
	if len(p.cards) == 0 {
		// The shipped dataset always holds enough cards for every valid
		// player count and deck combination; running dry means the data
		// itself is broken.
		panic(fmt.Sprintf("setup: %s pool exhausted", p.name))
	}
	c := p.cards[0]
	p.cards = p.cards[1:]
	return c
}

// Deal produces the complete setup plan. rng drives every shuffle; callers
// outside tests pass a process-seeded source.
func Deal(cards []card.Card, sel Selection, rng *rand.Rand) Plan {
	setupA := Filter(cards, sel.Active, card.SectionA)
	setupB := Filter(cards, sel.Active, card.SectionB)
	shuffle(setupA, rng)
	shuffle(setupB, rng)

	aPool := &pool{name: "setup A", cards: setupA}
	bPool := &pool{name: "setup B", cards: setupB}

	// Cards from the main deck dealt into the initial rows must not come up
	// again in the round 3 and 5 draws.
	dealt := make(map[string]bool)

	var plan Plan
	for i := 0; i < 3; i++ {
		row := Row{Cards: make([]card.Card, 0, 5)}
		for j := 0; j < 2; j++ {
			row.Cards = append(row.Cards, note(bPool.draw(), sel.MainDeck, dealt))
		}
		for j := 0; j < 3; j++ {
			row.Cards = append(row.Cards, note(aPool.draw(), sel.MainDeck, dealt))
		}
		plan.SetupRows = append(plan.SetupRows, row)
	}

	ingameA := &pool{name: "round 3", cards: mainDeckPool(cards, sel.MainDeck, card.SectionA, dealt)}
	ingameB := &pool{name: "round 5", cards: mainDeckPool(cards, sel.MainDeck, card.SectionB, dealt)}
	// "C" cards never appear in the initial setup, so nothing is excluded.
	ingameC := &pool{name: "round 4", cards: mainDeckPool(cards, sel.MainDeck, card.SectionC, nil)}
	shuffle(ingameA.cards, rng)
	shuffle(ingameB.cards, rng)
	shuffle(ingameC.cards, rng)

	if n := round3Cards(sel.Players); n > 0 {
		plan.Round3 = []Row{drawRow(ingameA, n, 0)}
	}
	if n := round4Cards(sel.Players); n > 0 {
		for p := 0; p < sel.Players; p++ {
			plan.Round4 = append(plan.Round4, drawRow(ingameC, n, p))
		}
	}
	if n := round5Cards(sel.Players); n > 0 {
		plan.Round5 = []Row{drawRow(ingameB, n, 0)}
	}
	return plan
}

// Round 3 reveals one "A" card per player, but only with more than 2 players.
func round3Cards(players int) int {
	if players > 2 {
		return players
	}
	return 0
}

// note records the card's number in the dealt set when it belongs to the
// main deck.
func note(c card.Card, main card.Deck, dealt map[string]bool) card.Card {
	if c.Deck == main {
		dealt[c.Number] = true
	}
	return c
}

// mainDeckPool collects the main deck's cards for one section, skipping any
// whose number is in the exclusion set.
func mainDeckPool(cards []card.Card, main card.Deck, section card.Section, exclude map[string]bool) []card.Card {
	var out []card.Card
	for _, c := range cards {
		if c.Deck == main && c.Section == section && !exclude[c.Number] {
			out = append(out, c)
		}
	}
	return out
}

func drawRow(p *pool, n, player int) Row {
	row := Row{Cards: make([]card.Card, 0, n), Player: player}
	for i := 0; i < n; i++ {
		row.Cards = append(row.Cards, p.draw())
	}
	return row
}

func shuffle(cards []card.Card, rng *rand.Rand) {
	rng.Shuffle(len(cards), func(i, j int) {
		cards[i], cards[j] = cards[j], cards[i]
	})
}
