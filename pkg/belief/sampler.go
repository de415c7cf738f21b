package belief

import (
	"math/rand"

	"github.com/hearts-mc/engine/pkg/cards"
)

// DefaultRejectionBudget is the number of constrained-assignment attempts
// Sample makes before falling back to a best-effort greedy assignment.
const DefaultRejectionBudget = 1000

// Sample draws one concrete, constraint-consistent assignment of the
// unseen cards to the three opponents: each opponent ends up holding
// exactly HandCounts[i] cards, respects every known void, and (for cards
// already certain via a pass) the certain holder. It tries up to budget
// constrained, randomly-ordered assignments; if every attempt rejects
// partway through, it falls back to a single best-effort greedy pass that
// gives each card to its most likely eligible opponent instead of sampling,
// and still respects hard constraints where possible.
func (s *State) Sample(rng *rand.Rand, budget int) [3]cards.Hand {
	if budget <= 0 {
		budget = DefaultRejectionBudget
	}
	unseen := s.unseenOrdered()

	for attempt := 0; attempt < budget; attempt++ {
		order := make([]cards.Card, len(unseen))
		copy(order, unseen)
		rng.Shuffle(len(order), func(i, j int) { order[i], order[j] = order[j], order[i] })

		hands, ok := s.tryAssign(rng, order)
		if ok {
			return hands
		}
	}
	return s.greedyAssign(unseen)
}

// tryAssign attempts one full constrained assignment of cc, in the given
// order, to the three opponents. It fails (ok=false) if any card has no
// opponent that is under capacity, not void in its suit, and given a
// non-zero belief weight.
func (s *State) tryAssign(rng *rand.Rand, cc []cards.Card) (hands [3]cards.Hand, ok bool) {
	counts := s.HandCounts

	for _, c := range cc {
		probs := s.CardProbs[c]
		var weights [3]float64
		var total float64
		for i := 0; i < 3; i++ {
			if counts[i] <= 0 {
				continue
			}
			if s.Voids[Void{Seat: s.opponentSeat(i), Suit: c.Suit}] {
				continue
			}
			weights[i] = probs[i]
			total += weights[i]
		}
		if total <= 1e-12 {
			// The belief-weighted vector collapsed to all zero under this
			// attempt's shuffle order and the current capacity/void state.
			// Reject the whole attempt rather than substituting a uniform
			// choice, so Sample retries with a fresh order instead of
			// silently placing a card against an opponent the belief ruled
			// out for it.
			return hands, false
		}

		idx := weightedChoice(rng, weights, total)
		hands[idx] = hands[idx].Add(c)
		counts[idx]--
	}
	return hands, true
}

// greedyAssign is the best-effort fallback: assign each card to whichever
// eligible opponent (not void, under capacity) has the highest belief
// weight, breaking remaining ties by whichever has the most capacity left.
// If every opponent is at capacity or void for a card (shouldn't happen
// under a consistent belief, but the fallback must still terminate), the
// card is forced onto the opponent with the most remaining capacity.
func (s *State) greedyAssign(cc []cards.Card) [3]cards.Hand {
	var hands [3]cards.Hand
	counts := s.HandCounts

	for _, c := range cc {
		probs := s.CardProbs[c]
		best := -1
		for i := 0; i < 3; i++ {
			if counts[i] <= 0 {
				continue
			}
			if s.Voids[Void{Seat: s.opponentSeat(i), Suit: c.Suit}] {
				continue
			}
			if best == -1 || probs[i] > probs[best] ||
				(probs[i] == probs[best] && counts[i] > counts[best]) {
				best = i
			}
		}
		if best == -1 {
			for i := 0; i < 3; i++ {
				if best == -1 || counts[i] > counts[best] {
					best = i
				}
			}
		}
		hands[best] = hands[best].Add(c)
		counts[best]--
	}
	return hands
}

func weightedChoice(rng *rand.Rand, weights [3]float64, total float64) int {
	r := rng.Float64() * total
	cum := 0.0
	for i, w := range weights {
		cum += w
		if r <= cum {
			return i
		}
	}
	return 2
}
