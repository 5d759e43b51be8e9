// Package dataset holds the building card data bundled with the program and
// the loader that parses it into typed records.
package dataset

import (
	"bytes"
	"embed"
	"encoding/csv"
	"io"

	"github.com/benhsu/nusfjord-setup/internal/card"
)

//go:embed buildings.tsv
var dataFS embed.FS

// Load returns every building card from the embedded dataset, in file order.
func Load() []card.Card {
	data, err := dataFS.ReadFile("buildings.tsv")
	if err != nil {
		// The file is compiled into the binary; not finding it means a
		// broken build, not a runtime condition.
		panic("dataset: embedded buildings.tsv missing: " + err.Error())
	}
	return Parse(bytes.NewReader(data))
}

// Parse reads tab-separated card records from r. The first row is a header
// and is skipped. Rows that fail to parse (wrong field count, unknown deck,
// unknown section) are dropped silently.
func Parse(r io.Reader) []card.Card {
	rdr := csv.NewReader(r)
	rdr.Comma = '\t'
	rdr.FieldsPerRecord = -1

	var cards []card.Card
	header := true
	for {
		rec, err := rdr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			continue
		}
		if header {
			header = false
			continue
		}
		c, ok := parseRow(rec)
		if !ok {
			continue
		}
		cards = append(cards, c)
	}
	return cards
}

// parseRow converts one data row into a Card. Field order is fixed:
// name, number, deck, section, category.
func parseRow(rec []string) (card.Card, bool) {
	if len(rec) != 5 {
		return card.Card{}, false
	}
	deck, err := card.ParseDeck(rec[2])
	if err != nil {
		return card.Card{}, false
	}
	section, err := card.ParseSection(rec[3])
	if err != nil {
		return card.Card{}, false
	}
	return card.Card{
		Name:     rec[0],
		Number:   rec[1],
		Deck:     deck,
		Section:  section,
		Category: rec[4],
	}, true
}

// SectionCounts tallies how many cards each deck has per section, for the
// deck listing command.
func SectionCounts(cards []card.Card) map[card.Deck]map[card.Section]int {
	counts := make(map[card.Deck]map[card.Section]int)
	for _, c := range cards {
		if counts[c.Deck] == nil {
			counts[c.Deck] = make(map[card.Section]int)
		}
		counts[c.Deck][c.Section]++
	}
	return counts
}
