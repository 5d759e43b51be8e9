// Package render prints dealt card rows as bordered ASCII boxes with
// category-colored text.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/benhsu/nusfjord-setup/internal/card"
)

const (
	// boxWidth is the full printed width of one card box, borders included.
	boxWidth = 24
	// textWidth is the space inside a box for the name and number lines.
	textWidth = 20
)

// categoryColors maps a card's category label to its display color. Labels
// outside the table fall back to white.
var categoryColors = map[string]*color.Color{
	"Anytime":         color.New(color.FgBlue),
	"Immediately":     color.New(color.FgRed),
	"Once":            color.New(color.FgYellow),
	"Victory Points":  color.New(color.FgHiYellow),
	"Special Ability": color.New(color.FgHiBlack),
	"Whenever":        color.New(color.FgGreen),
}

var defaultColor = color.New(color.FgWhite)

// spoilerColor hides card text so a glance at the output does not reveal
// cards that should stay face down until their round.
var spoilerColor = color.New(color.FgBlack)

// Renderer writes card rows to Out. Rows wider than Width wrap onto
// additional lines, a whole box at a time.
type Renderer struct {
	Out   io.Writer
	Width int
}

// New returns a renderer for the given writer and terminal width. Widths too
// small for a single box are bumped up to one box.
func New(out io.Writer, width int) *Renderer {
	if width < boxWidth {
		width = boxWidth
	}
	return &Renderer{Out: out, Width: width}
}

// Banner prints a round heading.
func (r *Renderer) Banner(text string) {
	fmt.Fprintf(r.Out, "********* %s *********\n", text)
}

// Player prints the per-player line preceding a round 4 row.
func (r *Renderer) Player(n int) {
	fmt.Fprintf(r.Out, "Doing Player %d\n", n)
}

// Row prints one row of cards side by side. When separator is set, a bar is
// inserted after the second card to split the "B" cards from the "A" cards
// in the initial setup rows. When spoiler is set, all text renders hidden.
func (r *Renderer) Row(cards []card.Card, separator, spoiler bool) {
	perBank := r.Width / boxWidth
	for start := 0; start < len(cards); start += perBank {
		end := start + perBank
		if end > len(cards) {
			end = len(cards)
		}
		r.bank(cards, start, end, separator, spoiler)
	}
}

// bank prints the boxes for cards[start:end] as five output lines.
func (r *Renderer) bank(cards []card.Card, start, end int, separator, spoiler bool) {
	r.borderLine(start, end, separator, `/----------------------\`)
	r.textLine(cards, start, end, separator, spoiler, func(c card.Card) string { return c.Name })
	r.blankLine(start, end, separator)
	r.textLine(cards, start, end, separator, spoiler, func(c card.Card) string { return c.Number })
	r.borderLine(start, end, separator, `\----------------------/`)
}

func (r *Renderer) borderLine(start, end int, separator bool, border string) {
	for i := start; i < end; i++ {
		fmt.Fprint(r.Out, border)
		r.maybeSeparator(i, separator)
	}
	fmt.Fprintln(r.Out)
}

func (r *Renderer) blankLine(start, end int, separator bool) {
	for i := start; i < end; i++ {
		fmt.Fprint(r.Out, "|                      |")
		r.maybeSeparator(i, separator)
	}
	fmt.Fprintln(r.Out)
}

func (r *Renderer) textLine(cards []card.Card, start, end int, separator, spoiler bool, field func(card.Card) string) {
	for i := start; i < end; i++ {
		c := cards[i]
		fmt.Fprintf(r.Out, "| %s |", colorize(field(c), c.Category, spoiler))
		r.maybeSeparator(i, separator)
	}
	fmt.Fprintln(r.Out)
}

// maybeSeparator emits the divider bar after the second card of a row.
func (r *Renderer) maybeSeparator(i int, separator bool) {
	if i == 1 && separator {
		fmt.Fprint(r.Out, "|")
	}
}

// colorize pads text to the box interior and applies the category color, or
// the spoiler color when the card should stay hidden. Padding happens before
// coloring so the escape sequences do not throw off the box alignment.
func colorize(text, category string, spoiler bool) string {
	if len(text) > textWidth {
		text = text[:textWidth]
	}
	text = text + strings.Repeat(" ", textWidth-len(text))
	if spoiler {
		return spoilerColor.Sprint(text)
	}
	c, ok := categoryColors[category]
	if !ok {
		c = defaultColor
	}
	return c.Sprint(text)
}
