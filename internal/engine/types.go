//go:generate stringer -type=Kind,Phase,RoundPhase -linecomment

package engine

import (
	"fmt"
	"strconv"

	"github.com/google/uuid"
)

// Suit represents a card suit. Wizard and Jester cards carry NoSuit.
type Suit int

const (
	NoSuit Suit = iota
	Hearts
	Spades
	Clubs
	Diamonds
)

// Suits lists the four playable suits.
var Suits = [...]Suit{Hearts, Spades, Clubs, Diamonds}

// Valid reports whether s is one of the four playable suits.
func (s Suit) Valid() bool { return s >= Hearts && s <= Diamonds }

func (s Suit) String() string {
	switch s {
	case Hearts:
		return "♥"
	case Spades:
		return "♠"
	case Clubs:
		return "♣"
	case Diamonds:
		return "♦"
	case NoSuit:
		return "-"
	default:
		return "Suit(" + strconv.Itoa(int(s)) + ")"
	}
}

// Name returns the English suit name.
func (s Suit) Name() string {
	switch s {
	case Hearts:
		return "hearts"
	case Spades:
		return "spades"
	case Clubs:
		return "clubs"
	case Diamonds:
		return "diamonds"
	default:
		return "none"
	}
}

// Kind tells standard cards apart from the two special cards.
type Kind int

const (
	KindInvalid  Kind = iota // invalid
	KindStandard             // standard
	KindWizard               // wizard
	KindJester               // jester
)

const (
	MinRank = 1
	MaxRank = 13
)

// Card represents a playing card. Suit and Rank are set only for standard cards.
type Card struct {
	Kind Kind
	Suit Suit
	Rank int
}

// NewStandard returns the standard card of suit s and rank r.
func NewStandard(s Suit, r int) Card { return Card{Kind: KindStandard, Suit: s, Rank: r} }

// NewWizard returns a Wizard card.
func NewWizard() Card { return Card{Kind: KindWizard} }

// NewJester returns a Jester card.
func NewJester() Card { return Card{Kind: KindJester} }

// Special reports whether c is a Wizard or a Jester.
func (c Card) Special() bool { return c.Kind == KindWizard || c.Kind == KindJester }

// Is reports whether c is a standard card of suit s.
func (c Card) Is(s Suit) bool { return c.Kind == KindStandard && c.Suit == s }

// Validate checks the card invariant: standard cards carry a suit and a rank,
// special cards carry neither.
func (c Card) Validate() error {
	switch c.Kind {
	case KindStandard:
		if !c.Suit.Valid() {
			return fmt.Errorf("standard card with suit %v", c.Suit)
		}
		if c.Rank < MinRank || c.Rank > MaxRank {
			return fmt.Errorf("standard card with rank %d", c.Rank)
		}
	case KindWizard, KindJester:
		if c.Suit != NoSuit || c.Rank != 0 {
			return fmt.Errorf("%v card with suit or rank", c.Kind)
		}
	default:
		return fmt.Errorf("unknown card kind %v", c.Kind)
	}
	return nil
}

func (c Card) String() string {
	switch c.Kind {
	case KindStandard:
		return c.Suit.String() + " " + strconv.Itoa(c.Rank)
	case KindWizard:
		return "Wizard"
	case KindJester:
		return "Jester"
	default:
		return "Unknown card"
	}
}

// PlayerID identifies a player independently of its display name.
type PlayerID uuid.UUID

// NewPlayerID returns a fresh random identity.
func NewPlayerID() PlayerID { return PlayerID(uuid.New()) }

func (id PlayerID) String() string { return uuid.UUID(id).String() }

// Short returns the first block of the identity, enough to tell players apart in logs.
func (id PlayerID) Short() string { return id.String()[:8] }

func (id PlayerID) MarshalText() ([]byte, error) { return uuid.UUID(id).MarshalText() }

func (id *PlayerID) UnmarshalText(b []byte) error { return (*uuid.UUID)(id).UnmarshalText(b) }

// Player is a seat at the table: an identity, a display name and the strategy making its decisions.
type Player struct {
	ID       PlayerID
	Name     string
	Strategy Strategy
}

// PlayerInfo is the public part of a Player.
type PlayerInfo struct {
	ID   PlayerID
	Name string
}

// Play represents a single play in a trick.
type Play struct {
	Player PlayerID
	Card   Card
}

// Phase represents the game phase.
type Phase int

const (
	PhaseSetup   Phase = iota // setup
	PhasePlaying              // playing
	PhaseEnded                // ended
	PhaseAborted              // aborted
)

// RoundPhase represents the progress of a single round.
type RoundPhase int

const (
	RoundCreated  RoundPhase = iota // created
	RoundDealt                      // dealt
	RoundBidding                    // bidding
	RoundPlaying                    // playing
	RoundScored                     // scored
	RoundComplete                   // complete
)

// BidPolicy decides whether the engine bounds bids to [0, round number].
type BidPolicy int

const (
	BidsUnbounded BidPolicy = iota
	BidsBounded
)

// RoundResult is the record kept for every completed round.
type RoundResult struct {
	Number    int
	TrumpCard *Card
	Trump     *Suit
	Bids      map[PlayerID]int
	TricksWon map[PlayerID]int
	Scores    map[PlayerID]int
}
