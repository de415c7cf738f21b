// Package round models a Hearts round's in-progress state: the current
// trick, the tricks already taken, each seat's remaining hand, and whether
// hearts have been broken.
package round

import "github.com/hearts-mc/engine/pkg/cards"

// Play is one card played to a trick by one seat.
type Play struct {
	Player int
	Card   cards.Card
}

// Trick holds the plays made so far this trick, in order, plus the seat
// that led it.
type Trick struct {
	Leader int
	Plays  []Play
}

// LedSuit returns the suit of the trick's first play. ok is false for an
// empty trick.
func (t Trick) LedSuit() (cards.Suit, bool) {
	if len(t.Plays) == 0 {
		return 0, false
	}
	return t.Plays[0].Card.Suit, true
}

// IsComplete reports whether all four seats have played to the trick.
func (t Trick) IsComplete() bool { return len(t.Plays) == 4 }

// Points returns the trick's penalty points: 1 per heart, 13 for the queen
// of spades.
func (t Trick) Points() int {
	pts := 0
	for _, p := range t.Plays {
		if p.Card.Suit == cards.Hearts {
			pts++
		}
		if p.Card == cards.QueenOfSpades {
			pts += 13
		}
	}
	return pts
}

// Clone returns a Trick whose Plays slice is independent of t's.
func (t Trick) Clone() Trick {
	nt := Trick{Leader: t.Leader}
	if len(t.Plays) > 0 {
		nt.Plays = append([]Play(nil), t.Plays...)
	}
	return nt
}

// State is a round in progress.
type State struct {
	Hands        [4]cards.Hand
	TricksTaken  []Trick
	Current      Trick
	HeartsBroken bool
}

// Clone returns a State whose slice fields are independent of s's. The
// Hands array is a value type and copies by assignment already.
func (s State) Clone() State {
	n := State{Hands: s.Hands, HeartsBroken: s.HeartsBroken}
	if len(s.TricksTaken) > 0 {
		n.TricksTaken = make([]Trick, len(s.TricksTaken))
		for i, t := range s.TricksTaken {
			n.TricksTaken[i] = t.Clone()
		}
	}
	n.Current = s.Current.Clone()
	return n
}

// IsFirstTrick reports whether the round is still in its first trick — no
// completed tricks yet, regardless of whether the current trick itself is
// empty or partway played. Hearts' first-trick restrictions (no points, the
// two of clubs must lead) apply to every play of the first trick, not only
// to leading it.
func (s State) IsFirstTrick() bool { return len(s.TricksTaken) == 0 }

// NextSeat returns the seat to move next in the current trick.
func (s State) NextSeat() int {
	return (s.Current.Leader + len(s.Current.Plays)) % 4
}

// PassDirection is one of the four Hearts passing rotations.
type PassDirection int

const (
	PassLeft PassDirection = iota
	PassRight
	PassAcross
	PassHold
)

func (d PassDirection) String() string {
	switch d {
	case PassLeft:
		return "left"
	case PassRight:
		return "right"
	case PassAcross:
		return "across"
	case PassHold:
		return "hold"
	default:
		return "?"
	}
}

// DirectionForRound returns the passing direction for a 0-indexed round
// number, cycling left, right, across, hold.
func DirectionForRound(roundNumber int) PassDirection {
	return PassDirection(((roundNumber % 4) + 4) % 4)
}

// Target returns the seat that receives passes from seat in direction d.
func Target(seat int, d PassDirection) (int, bool) {
	switch d {
	case PassLeft:
		return (seat + 1) % 4, true
	case PassRight:
		return (seat + 3) % 4, true
	case PassAcross:
		return (seat + 2) % 4, true
	default:
		return 0, false
	}
}
