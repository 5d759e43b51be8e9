package card

import "fmt"

// Deck is one of the five building decks shipped with the game.
type Deck int

const (
	Codfish Deck = iota
	Mackerel
	Herring
	Plaice
	Salmon
)

var deckNames = [...]string{"Codfish", "Mackerel", "Herring", "Plaice", "Salmon"}

func (d Deck) String() string {
	if d < 0 || int(d) >= len(deckNames) {
		return fmt.Sprintf("Deck(%d)", int(d))
	}
	return deckNames[d]
}

// ParseDeck converts a deck name from the CLI or the dataset into a Deck.
func ParseDeck(s string) (Deck, error) {
	for i, name := range deckNames {
		if s == name {
			return Deck(i), nil
		}
	}
	return 0, fmt.Errorf("unknown deck %q", s)
}

// Decks returns all five decks in canonical order.
func Decks() []Deck {
	return []Deck{Codfish, Mackerel, Herring, Plaice, Salmon}
}

// BaseDecks returns the three decks included in the base game.
func BaseDecks() []Deck {
	return []Deck{Codfish, Herring, Mackerel}
}

// DeckNames returns the valid deck names in canonical order, for CLI help
// and argument validation.
func DeckNames() []string {
	names := make([]string, len(deckNames))
	copy(names, deckNames[:])
	return names
}

// DeckSet is a set of decks, used to track which decks are active for the
// initial board setup.
type DeckSet uint8

// NewDeckSet returns a set containing the given decks.
func NewDeckSet(decks ...Deck) DeckSet {
	var s DeckSet
	for _, d := range decks {
		s = s.Add(d)
	}
	return s
}

func (s DeckSet) Add(d Deck) DeckSet {
	return s | 1<<uint(d)
}

func (s DeckSet) Contains(d Deck) bool {
	return s&(1<<uint(d)) != 0
}

// Section marks which phase of the game a card belongs to: "A" and "B" cards
// seed the initial setup rows, "C" cards only appear in round 4.
type Section string

const (
	SectionA Section = "A"
	SectionB Section = "B"
	SectionC Section = "C"
)

// ParseSection validates a section letter from the dataset.
func ParseSection(s string) (Section, error) {
	switch Section(s) {
	case SectionA, SectionB, SectionC:
		return Section(s), nil
	}
	return "", fmt.Errorf("unknown section %q", s)
}

// Card represents one building card.
type Card struct {
	Name     string  // Display name
	Number   string  // Identifier, unique per deck and section (e.g. A7, C2)
	Deck     Deck    // Which of the five decks the card belongs to
	Section  Section // Setup-phase section letter
	Category string  // Display-only label controlling text color
}
