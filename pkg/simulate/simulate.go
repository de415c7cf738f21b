// Package simulate plays a Hearts round to completion using the
// deterministic fast policy — the rollout machinery the MC evaluator drives
// many times per decision.
package simulate

import (
	"math/rand"

	"github.com/hearts-mc/engine/pkg/cards"
	"github.com/hearts-mc/engine/pkg/policy"
	"github.com/hearts-mc/engine/pkg/round"
	"github.com/hearts-mc/engine/pkg/rules"
)

// Continue plays rs forward to 13 completed tricks, resuming from wherever
// its current trick and tricks-taken stand, with every seat driven by the
// fast policy. It mutates rs in place — callers that need the pre-rollout
// state intact must pass a clone (round.State.Clone).
func Continue(rs *round.State, rng *rand.Rand) (map[int]int, error) {
	for len(rs.TricksTaken) < 13 {
		for len(rs.Current.Plays) < 4 {
			seat := rs.NextSeat()
			if err := playSeat(rs, seat, rng); err != nil {
				return nil, err
			}
		}
		winner, err := rules.TrickWinner(rs.Current)
		if err != nil {
			return nil, err
		}
		rs.TricksTaken = append(rs.TricksTaken, rs.Current)
		rs.Current = round.Trick{Leader: winner}
	}
	return rules.RoundScore(rs.TricksTaken), nil
}

func playSeat(rs *round.State, seat int, rng *rand.Rand) error {
	isFirst := rs.IsFirstTrick()
	legal, err := rules.LegalMoves(rs.Hands[seat], rs.Current, rs.HeartsBroken, isFirst)
	if err != nil {
		return err
	}
	if len(legal) == 0 {
		legal = rs.Hands[seat].Cards()
	}

	card := policy.Play(rs.Hands[seat], *rs, isFirst, rng)
	if !legalContains(legal, card) {
		card = legal[rng.Intn(len(legal))]
	}

	rs.Hands[seat] = rs.Hands[seat].Remove(card)
	rs.Current.Plays = append(rs.Current.Plays, round.Play{Player: seat, Card: card})
	if card.Suit == cards.Hearts {
		rs.HeartsBroken = true
	}
	return nil
}

func legalContains(legal []cards.Card, c cards.Card) bool {
	for _, x := range legal {
		if x == c {
			return true
		}
	}
	return false
}
