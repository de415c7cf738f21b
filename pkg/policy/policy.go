// Package policy implements the engine's deterministic fast policy: the
// move a seat plays during a rollout. The MC evaluator's short-circuit
// checks live in mc.SelectCard, not here.
package policy

import (
	"math/rand"

	"github.com/hearts-mc/engine/pkg/cards"
	"github.com/hearts-mc/engine/pkg/round"
	"github.com/hearts-mc/engine/pkg/rules"
)

// Play chooses the card a seat plays during a rollout. It is deterministic
// given its inputs except for the final defensive fallback, which is why it
// takes an rng: the policy is built entirely from the decision table below,
// and the rng exists only to break out of a state the table failed to
// cover, which should never actually happen against a legal hand.
func Play(hand cards.Hand, rs round.State, isFirstTrick bool, rng *rand.Rand) cards.Card {
	legal, err := rules.LegalMoves(hand, rs.Current, rs.HeartsBroken, isFirstTrick)
	if err != nil || len(legal) == 0 {
		legal = hand.Cards()
	}
	if len(legal) == 1 {
		return legal[0]
	}

	var chosen cards.Card
	if len(rs.Current.Plays) == 0 {
		chosen = lead(legal, len(rs.TricksTaken))
	} else {
		chosen = follow(legal, rs.Current)
	}

	if !containsCard(legal, chosen) {
		chosen = legal[rng.Intn(len(legal))]
	}
	return chosen
}

// lead picks a card to open a trick with: exclude the queen of spades while
// fewer than three tricks have been played (it's safer to surface later,
// once more of the other hands are known), then play the strict
// lowest-rank legal card to probe for voids without committing a high card
// early.
func lead(legal []cards.Card, tricksPlayed int) cards.Card {
	candidates := legal
	if tricksPlayed < 3 {
		filtered := make([]cards.Card, 0, len(legal))
		for _, c := range legal {
			if c != cards.QueenOfSpades {
				filtered = append(filtered, c)
			}
		}
		if len(filtered) > 0 {
			candidates = filtered
		}
	}
	return lowestRank(candidates)
}

// follow decides a response to a trick already underway: if the hand can
// follow the led suit, duck under the highest card played so far when
// possible (minimizing the chance of winning an unwanted trick); otherwise
// discard the highest card it can spare, holding the queen of spades back
// as described in the void branch below.
func follow(legal []cards.Card, trick round.Trick) cards.Card {
	led, _ := trick.LedSuit()
	inSuit := make([]cards.Card, 0, len(legal))
	for _, c := range legal {
		if c.Suit == led {
			inSuit = append(inSuit, c)
		}
	}

	if len(inSuit) > 0 {
		highest := highestOfSuit(trick, led)
		var under, over cards.Card
		haveUnder, haveOver := false, false
		for _, c := range inSuit {
			if c.Rank < highest {
				if !haveUnder || c.Rank > under.Rank {
					under, haveUnder = c, true
				}
			} else {
				if !haveOver || c.Rank > over.Rank {
					over, haveOver = c, true
				}
			}
		}
		if haveUnder {
			return under
		}
		return lowestRank(inSuit)
	}

	// Void: avoid taking the queen of spades. If the trick already carries
	// points, prefer dumping the highest non-point card; otherwise prefer
	// the highest card that isn't the queen of spades; only play the queen
	// of spades when it's the only legal card left.
	if trick.Points() > 0 {
		if best, ok := highestWhere(legal, func(c cards.Card) bool {
			return c.Suit != cards.Hearts && c != cards.QueenOfSpades
		}); ok {
			return best
		}
	}
	if best, ok := highestWhere(legal, func(c cards.Card) bool { return c != cards.QueenOfSpades }); ok {
		return best
	}
	return highestRank(legal)
}

func highestOfSuit(t round.Trick, su cards.Suit) cards.Rank {
	var best cards.Rank
	for _, p := range t.Plays {
		if p.Card.Suit == su && p.Card.Rank > best {
			best = p.Card.Rank
		}
	}
	return best
}

// highestWhere returns the highest-rank card in cc satisfying keep, if any.
func highestWhere(cc []cards.Card, keep func(cards.Card) bool) (cards.Card, bool) {
	var best cards.Card
	found := false
	for _, c := range cc {
		if !keep(c) {
			continue
		}
		if !found || c.Rank > best.Rank {
			best, found = c, true
		}
	}
	return best, found
}

func lowestRank(cc []cards.Card) cards.Card {
	best := cc[0]
	for _, c := range cc[1:] {
		if c.Rank < best.Rank {
			best = c
		}
	}
	return best
}

func highestRank(cc []cards.Card) cards.Card {
	best := cc[0]
	for _, c := range cc[1:] {
		if c.Rank > best.Rank {
			best = c
		}
	}
	return best
}

func containsCard(cc []cards.Card, c cards.Card) bool {
	for _, x := range cc {
		if x == c {
			return true
		}
	}
	return false
}
