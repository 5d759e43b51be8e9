package dataset

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/benhsu/nusfjord-setup/internal/card"
)

func TestLoad(t *testing.T) {
	cards := Load()
	require.NotEmpty(t, cards)

	t.Run("every deck has cards in every section", func(t *testing.T) {
		counts := SectionCounts(cards)
		for _, d := range card.Decks() {
			require.Contains(t, counts, d)
			for _, s := range []card.Section{card.SectionA, card.SectionB, card.SectionC} {
				assert.Greater(t, counts[d][s], 0, "deck %s section %s", d, s)
			}
		}
	})

	t.Run("numbers are unique per deck and section", func(t *testing.T) {
		seen := map[string]bool{}
		for _, c := range cards {
			key := fmt.Sprintf("%s/%s/%s", c.Deck, c.Section, c.Number)
			assert.False(t, seen[key], "duplicate card %s", key)
			seen[key] = true
		}
	})

	t.Run("enough cards for the worst-case single-deck draw", func(t *testing.T) {
		// A 5-player game on one deck consumes 9+5 "A" cards, 6+3 "B"
		// cards, and 10 "C" cards; a 2-player game consumes 8 "C" cards.
		counts := SectionCounts(cards)
		for _, d := range card.Decks() {
			assert.GreaterOrEqual(t, counts[d][card.SectionA], 14, "deck %s", d)
			assert.GreaterOrEqual(t, counts[d][card.SectionB], 9, "deck %s", d)
			assert.GreaterOrEqual(t, counts[d][card.SectionC], 10, "deck %s", d)
		}
	})

	t.Run("names and numbers are populated", func(t *testing.T) {
		for _, c := range cards {
			assert.NotEmpty(t, c.Name)
			assert.NotEmpty(t, c.Number)
		}
	})
}

func TestParse(t *testing.T) {
	header := "name\tnumber\tdeck\tabc\tcolor\n"

	t.Run("header row is skipped", func(t *testing.T) {
		cards := Parse(strings.NewReader(header + "Old Smokehouse\tA1\tCodfish\tA\tOnce\n"))
		require.Len(t, cards, 1)
		assert.Equal(t, card.Card{
			Name:     "Old Smokehouse",
			Number:   "A1",
			Deck:     card.Codfish,
			Section:  card.SectionA,
			Category: "Once",
		}, cards[0])
	})

	t.Run("malformed rows are dropped silently", func(t *testing.T) {
		input := header +
			"Old Smokehouse\tA1\tCodfish\tA\tOnce\n" +
			"Too Few Fields\tA2\tCodfish\n" +
			"Unknown Deck\tA3\tTuna\tA\tOnce\n" +
			"Unknown Section\tA4\tCodfish\tD\tOnce\n" +
			"Shore Pier\tB1\tHerring\tB\tAnytime\n"
		cards := Parse(strings.NewReader(input))
		require.Len(t, cards, 2)
		assert.Equal(t, "Old Smokehouse", cards[0].Name)
		assert.Equal(t, "Shore Pier", cards[1].Name)
	})

	t.Run("empty input yields no cards", func(t *testing.T) {
		assert.Empty(t, Parse(strings.NewReader("")))
		assert.Empty(t, Parse(strings.NewReader(header)))
	})
}
