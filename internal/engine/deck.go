package engine

import (
	"fmt"
	"math/rand/v2"
)

const (
	// DeckSize is the number of cards in a Wizard deck.
	DeckSize = 60
	// SpecialCopies is how many Wizards, and how many Jesters, the deck holds.
	SpecialCopies = 4
)

// Deck holds the cards not drawn yet. It only ever shrinks.
type Deck struct {
	cards []Card
}

// DeckSource supplies the deck for a round.
type DeckSource func(round int, rng *rand.Rand) *Deck

// NewDeck returns the 60-card deck in canonical order: every suit 1..13, then Wizards, then Jesters.
func NewDeck() *Deck {
	cards := make([]Card, 0, DeckSize)
	for _, s := range Suits {
		for r := MinRank; r <= MaxRank; r++ {
			cards = append(cards, NewStandard(s, r))
		}
	}
	for range SpecialCopies {
		cards = append(cards, NewWizard())
	}
	for range SpecialCopies {
		cards = append(cards, NewJester())
	}
	return &Deck{cards: cards}
}

// NewDeckOf returns a deck drawing cards in the given order.
func NewDeckOf(cards []Card) *Deck {
	return &Deck{cards: append([]Card(nil), cards...)}
}

// ShuffledDeck is the default DeckSource.
func ShuffledDeck(_ int, rng *rand.Rand) *Deck {
	return NewDeck().Shuffle(rng)
}

// Shuffle randomizes the order of the remaining cards.
func (d *Deck) Shuffle(rng *rand.Rand) *Deck {
	rng.Shuffle(len(d.cards), func(i, j int) { d.cards[i], d.cards[j] = d.cards[j], d.cards[i] })
	return d
}

// Draw removes and returns the first n cards.
func (d *Deck) Draw(n int) ([]Card, error) {
	if n < 0 || n > len(d.cards) {
		return nil, fmt.Errorf("draw %d of %d: %w", n, len(d.cards), ErrInsufficientCards)
	}
	out := make([]Card, n)
	copy(out, d.cards[:n])
	d.cards = d.cards[n:]
	return out, nil
}

// DrawOne removes and returns the top card.
func (d *Deck) DrawOne() (Card, error) {
	cs, err := d.Draw(1)
	if err != nil {
		return Card{}, err
	}
	return cs[0], nil
}

// Deal draws perPlayer cards for each player in order. Nothing is drawn when
// the deck cannot serve every player.
func (d *Deck) Deal(players []PlayerID, perPlayer int) (map[PlayerID][]Card, error) {
	if need := len(players) * perPlayer; perPlayer < 0 || need > len(d.cards) {
		return nil, fmt.Errorf("deal %d to %d players from %d: %w", perPlayer, len(players), len(d.cards), ErrInsufficientCards)
	}
	hands := make(map[PlayerID][]Card, len(players))
	for _, p := range players {
		hands[p], _ = d.Draw(perPlayer)
	}
	return hands, nil
}

// Remaining returns the number of cards left.
func (d *Deck) Remaining() int { return len(d.cards) }
