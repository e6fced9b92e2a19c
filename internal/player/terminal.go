package player

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/chzyer/readline"

	"github.com/ZygmuntJakub/wizard/internal/engine"
)

// LineReader is the part of *readline.Instance the terminal player needs.
type LineReader interface {
	Readline() (string, error)
	SetPrompt(prompt string)
}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#58a6ff"))
	subtleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#8b949e"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B"))
	boxStyle    = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#30363d")).
			Padding(0, 1)
	wizardStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#BD93F9"))
	jesterStyle = lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("#8b949e"))
	suitStyles  = map[engine.Suit]lipgloss.Style{
		engine.Hearts:   lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B")),
		engine.Diamonds: lipgloss.NewStyle().Foreground(lipgloss.Color("#FFD700")),
		engine.Clubs:    lipgloss.NewStyle().Foreground(lipgloss.Color("#44AAFF")),
		engine.Spades:   lipgloss.NewStyle().Foreground(lipgloss.Color("#50FA7B")),
	}
)

// Terminal asks a human for every decision. Only legal cards and bids within
// [0, round] are accepted; anything else is asked again.
type Terminal struct {
	in  LineReader
	out io.Writer
}

func NewTerminal(in LineReader, out io.Writer) *Terminal {
	return &Terminal{in: in, out: out}
}

// NewReadlineTerminal wires a Terminal to stdin through readline. The returned
// func closes the line reader.
func NewReadlineTerminal() (*Terminal, func() error, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "» ",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return nil, nil, err
	}
	return NewTerminal(rl, rl.Stdout()), rl.Close, nil
}

func (t *Terminal) Bid(ctx context.Context, s engine.Snapshot) (int, error) {
	fmt.Fprintln(t.out, Render(s))
	return t.ask(ctx, fmt.Sprintf("bid 0-%d » ", s.Round), 0, s.Round)
}

func (t *Terminal) PlayCard(ctx context.Context, s engine.Snapshot) (engine.Card, error) {
	fmt.Fprintln(t.out, Render(s))
	valid := s.ValidCards()
	opts := make([]string, len(valid))
	for i, c := range valid {
		opts[i] = fmt.Sprintf("%d) %s", i+1, CardView(c))
	}
	fmt.Fprintln(t.out, "playable: "+strings.Join(opts, "  "))
	i, err := t.ask(ctx, fmt.Sprintf("card 1-%d » ", len(valid)), 1, len(valid))
	if err != nil {
		return engine.Card{}, err
	}
	return valid[i-1], nil
}

func (t *Terminal) ChooseTrumpSuit(ctx context.Context, s engine.Snapshot) (engine.Suit, error) {
	fmt.Fprintln(t.out, Render(s))
	opts := make([]string, len(engine.Suits))
	for i, suit := range engine.Suits {
		opts[i] = fmt.Sprintf("%d) %s %s", i+1, suitStyles[suit].Render(suit.String()), suit.Name())
	}
	fmt.Fprintln(t.out, "a Wizard was flipped, choose trump: "+strings.Join(opts, "  "))
	i, err := t.ask(ctx, "suit 1-4 » ", 1, len(engine.Suits))
	if err != nil {
		return engine.NoSuit, err
	}
	return engine.Suits[i-1], nil
}

// ask reads until the input is an integer in [lo, hi].
func (t *Terminal) ask(ctx context.Context, prompt string, lo, hi int) (int, error) {
	t.in.SetPrompt(prompt)
	for {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		line, err := t.in.Readline()
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil || n < lo || n > hi {
			t.complain(fmt.Sprintf("enter a number between %d and %d", lo, hi))
			continue
		}
		return n, nil
	}
}

func (t *Terminal) complain(msg string) {
	fmt.Fprintln(t.out, errorStyle.Render(msg))
}

// CardView renders a card with its suit colour.
func CardView(c engine.Card) string {
	switch c.Kind {
	case engine.KindWizard:
		return wizardStyle.Render(c.String())
	case engine.KindJester:
		return jesterStyle.Render(c.String())
	}
	return suitStyles[c.Suit].Render(c.String())
}

func cardsView(cards []engine.Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = CardView(c)
	}
	return strings.Join(parts, " ")
}

// Render draws the table as seen by the snapshot's owner.
func Render(s engine.Snapshot) string {
	trump := "none"
	if s.Trump != nil {
		trump = suitStyles[*s.Trump].Render(s.Trump.String() + " " + s.Trump.Name())
	}
	flipped := "-"
	if s.TrumpCard != nil {
		flipped = CardView(*s.TrumpCard)
	}
	header := titleStyle.Render(fmt.Sprintf("Round %d", s.Round)) +
		subtleStyle.Render(fmt.Sprintf("  trick %d  flipped %s  trump ", s.Trick.Number, flipped)) + trump

	var rows []string
	for _, p := range s.Players {
		bid := "-"
		if b, ok := s.Bids[p.ID]; ok {
			bid = strconv.Itoa(b)
		}
		name := p.Name
		if p.ID == s.Self {
			name = titleStyle.Render(name + " (you)")
		}
		rows = append(rows, fmt.Sprintf("%-12s score %4d  bid %s  won %d", name, s.Scores[p.ID], bid, s.TricksWon[p.ID]))
	}

	var trick []string
	for _, pl := range s.Trick.Plays {
		trick = append(trick, fmt.Sprintf("%s: %s", s.Name(pl.Player), CardView(pl.Card)))
	}
	table := subtleStyle.Render("table: ") + strings.Join(trick, "  ")
	hand := subtleStyle.Render("hand:  ") + cardsView(s.Hand)

	return boxStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		header,
		strings.Join(rows, "\n"),
		table,
		hand,
	))
}
