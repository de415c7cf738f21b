// Package rules implements Hearts' legality, trick resolution and scoring —
// the one place in the engine that knows the game's actual rules.
package rules

import (
	"errors"
	"fmt"

	"github.com/hearts-mc/engine/pkg/cards"
	"github.com/hearts-mc/engine/pkg/round"
)

// ErrNoTwoOfClubs is returned by LegalMoves when asked to lead the first
// trick from a hand without the two of clubs.
var ErrNoTwoOfClubs = errors.New("rules: hand holds no two of clubs to lead the first trick")

// ErrEmptyTrick is returned by TrickWinner/TrickPoints for a trick with no
// plays.
var ErrEmptyTrick = errors.New("rules: trick has no plays")

// LegalMoves returns the cards in hand that are legal to play given the
// trick in progress. isFirstTrick must be true for every play of the
// round's first trick (leading and following alike): no points may be
// played, and the two of clubs must lead.
func LegalMoves(hand cards.Hand, trick round.Trick, heartsBroken bool, isFirstTrick bool) ([]cards.Card, error) {
	if len(trick.Plays) == 0 {
		return legalLeads(hand, heartsBroken, isFirstTrick)
	}
	return legalFollows(hand, trick, isFirstTrick)
}

func legalLeads(hand cards.Hand, heartsBroken, isFirstTrick bool) ([]cards.Card, error) {
	if isFirstTrick {
		if !hand.Has(cards.TwoOfClubs) {
			return nil, ErrNoTwoOfClubs
		}
		return []cards.Card{cards.TwoOfClubs}, nil
	}

	nonHearts := hand.Diff(hand.OfSuit(cards.Hearts))
	var pool cards.Hand
	if heartsBroken || nonHearts.IsEmpty() {
		pool = hand
	} else {
		pool = nonHearts
	}
	return pool.Cards(), nil
}

func legalFollows(hand cards.Hand, trick round.Trick, isFirstTrick bool) ([]cards.Card, error) {
	led, _ := trick.LedSuit()
	inSuit := hand.OfSuit(led)
	if !inSuit.IsEmpty() {
		// Following suit is mandatory even on the first trick; a point
		// card of the led suit (the queen of spades, if spades was led) is
		// legal here since it's the only suit-following option.
		return inSuit.Cards(), nil
	}

	// Void in led suit: any card is legal, except on the first trick, where
	// hearts and the queen of spades may not be discarded if a safe
	// alternative exists.
	if isFirstTrick {
		safe := hand.Diff(hand.OfSuit(cards.Hearts)).Remove(cards.QueenOfSpades)
		if !safe.IsEmpty() {
			return safe.Cards(), nil
		}
	}
	return hand.Cards(), nil
}

// TrickWinner returns the seat that wins a complete trick: the highest card
// of the suit led.
func TrickWinner(t round.Trick) (int, error) {
	if len(t.Plays) == 0 {
		return 0, ErrEmptyTrick
	}
	led, _ := t.LedSuit()
	winner := t.Plays[0]
	for _, p := range t.Plays[1:] {
		if p.Card.Suit == led && p.Card.Rank > winner.Card.Rank {
			winner = p
		}
	}
	return winner.Player, nil
}

// TrickPoints returns the trick's penalty points.
func TrickPoints(t round.Trick) (int, error) {
	if len(t.Plays) == 0 {
		return 0, ErrEmptyTrick
	}
	return t.Points(), nil
}

// RoundScore tallies penalty points per seat across a completed round's
// tricks, rewriting a shot-the-moon (26 points collected by one seat) into
// 26 points for every other seat and 0 for the shooter.
func RoundScore(tricks []round.Trick) map[int]int {
	scores := map[int]int{0: 0, 1: 0, 2: 0, 3: 0}
	for _, t := range tricks {
		winner, err := TrickWinner(t)
		if err != nil {
			continue
		}
		scores[winner] += t.Points()
	}

	for seat, pts := range scores {
		if pts == 26 {
			for other := range scores {
				if other == seat {
					scores[other] = 0
				} else {
					scores[other] = 26
				}
			}
			break
		}
	}
	return scores
}

// MustTrickWinner is a convenience wrapper for call sites that already know
// the trick is complete and non-empty.
func MustTrickWinner(t round.Trick) int {
	w, err := TrickWinner(t)
	if err != nil {
		panic(fmt.Sprintf("rules: %v", err))
	}
	return w
}
