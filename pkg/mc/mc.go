// Package mc implements the flat Monte-Carlo card evaluator: for each legal
// candidate card, determinize many concrete worlds from the belief state,
// roll each one out with the fast policy, and return the candidate with the
// lowest average penalty points. There is no tree search here — every
// candidate is evaluated independently and to the same fixed rollout depth.
package mc

import (
	"fmt"
	"math/rand"
	"sync"

	"github.com/hearts-mc/engine/pkg/belief"
	"github.com/hearts-mc/engine/pkg/cards"
	"github.com/hearts-mc/engine/pkg/round"
	"github.com/hearts-mc/engine/pkg/rules"
	"github.com/hearts-mc/engine/pkg/simulate"
)

// Config holds the evaluator's operational knobs. Unlike the teacher's
// Weights, nothing here tunes the decision itself — the simulation policy
// is fixed — these only trade evaluation cost for evaluation confidence.
type Config struct {
	NSamples        int // worlds determinized per candidate card
	RejectionBudget int // sampler attempts per world before greedy fallback
	Workers         int // root-parallel goroutines; 1 disables parallelism
}

// DefaultConfig matches spec.md's defaults: 1000 samples, 1000 rejection
// attempts, single-threaded.
func DefaultConfig() Config {
	return Config{NSamples: 1000, RejectionBudget: belief.DefaultRejectionBudget, Workers: 1}
}

// CardScore is one candidate's evaluated average penalty points.
type CardScore struct {
	Card         cards.Card
	MeanPenalty  float64
	SamplesTaken int
}

// SelectCard returns the seat's best card to play, along with per-candidate
// scores for callers that want the detail (AnalyzeCard). seat is the
// deciding seat — the seat bs was built relative to (bs.EngineSeat).
func SelectCard(rs *round.State, bs *belief.State, hand cards.Hand, cfg Config, rng *rand.Rand) (cards.Card, []CardScore, error) {
	seat := bs.EngineSeat
	isFirst := rs.IsFirstTrick()
	legal, err := rules.LegalMoves(hand, rs.Current, rs.HeartsBroken, isFirst)
	if err != nil {
		return cards.Card{}, nil, err
	}
	if len(legal) == 0 {
		return cards.Card{}, nil, fmt.Errorf("mc: no legal moves for seat %d", seat)
	}
	if len(legal) == 1 {
		return legal[0], []CardScore{{Card: legal[0]}}, nil
	}

	if isFirst && len(rs.Current.Plays) == 0 && containsCard(legal, cards.TwoOfClubs) {
		return cards.TwoOfClubs, []CardScore{{Card: cards.TwoOfClubs}}, nil
	}

	if len(rs.Current.Plays) == 3 && rs.Current.Points() == 0 {
		led, _ := rs.Current.LedSuit()
		highest := highestOfLedSuit(rs.Current, led)
		canWin := false
		for _, c := range legal {
			if c.Suit == led && c.Rank > highest {
				canWin = true
				break
			}
		}
		if !canWin {
			// Already safe: this trick carries no points and we cannot win
			// it, so any legal card is equally safe. Dump the highest to
			// shed a dangerous card for later.
			return highestRank(legal), scoresFor(legal), nil
		}
	}

	nSamples := cfg.NSamples
	if nSamples <= 0 {
		nSamples = DefaultConfig().NSamples
	}
	workers := cfg.Workers
	if workers <= 0 {
		workers = 1
	}

	sums := make([]float64, len(legal))
	if workers <= 1 {
		runSamples(rs, bs, seat, hand, legal, nSamples, cfg.RejectionBudget, rng, sums)
	} else {
		runSamplesParallel(rs, bs, seat, hand, legal, nSamples, cfg.RejectionBudget, workers, rng, sums)
	}

	bestIdx := 0
	bestMean := sums[0] / float64(nSamples)
	scores := make([]CardScore, len(legal))
	scores[0] = CardScore{Card: legal[0], MeanPenalty: bestMean, SamplesTaken: nSamples}
	for i := 1; i < len(legal); i++ {
		mean := sums[i] / float64(nSamples)
		scores[i] = CardScore{Card: legal[i], MeanPenalty: mean, SamplesTaken: nSamples}
		if mean < bestMean {
			bestMean = mean
			bestIdx = i
		}
	}
	return legal[bestIdx], scores, nil
}

// AnalyzeCard reports the evaluator's scoring for every legal candidate
// without discarding the runner-up detail the way SelectCard's caller
// usually does — intended for explaining a decision after the fact.
func AnalyzeCard(rs *round.State, bs *belief.State, hand cards.Hand, cfg Config, rng *rand.Rand) ([]CardScore, error) {
	_, scores, err := SelectCard(rs, bs, hand, cfg, rng)
	return scores, err
}

func runSamples(rs *round.State, bs *belief.State, seat int, hand cards.Hand, legal []cards.Card, nSamples, rejectionBudget int, rng *rand.Rand, sums []float64) {
	for i := 0; i < nSamples; i++ {
		sampleOnce(rs, bs, seat, hand, legal, rejectionBudget, rng, sums)
	}
}

func runSamplesParallel(rs *round.State, bs *belief.State, seat int, hand cards.Hand, legal []cards.Card, nSamples, rejectionBudget, workers int, rng *rand.Rand, sums []float64) {
	if workers > nSamples {
		workers = nSamples
	}
	masterSeed := rng.Int63()
	partials := make([][]float64, workers)
	base := nSamples / workers
	remainder := nSamples % workers

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		n := base
		if w < remainder {
			n++
		}
		partials[w] = make([]float64, len(legal))
		wg.Add(1)
		go func(idx, n int) {
			defer wg.Done()
			workerRng := rand.New(rand.NewSource(masterSeed ^ int64(idx)))
			runSamples(rs, bs, seat, hand, legal, n, rejectionBudget, workerRng, partials[idx])
		}(w, n)
	}
	wg.Wait()

	for _, p := range partials {
		for i, v := range p {
			sums[i] += v
		}
	}
}

func sampleOnce(rs *round.State, bs *belief.State, seat int, hand cards.Hand, legal []cards.Card, rejectionBudget int, rng *rand.Rand, sums []float64) {
	opp := bs.Sample(rng, rejectionBudget)
	base := rs.Clone()
	for i := 0; i < 3; i++ {
		base.Hands[(seat+i+1)%4] = opp[i]
	}
	base.Hands[seat] = hand

	for idx, c := range legal {
		sim := base.Clone()
		if len(sim.Current.Plays) == 0 {
			sim.Current.Leader = seat
		}
		sim.Hands[seat] = sim.Hands[seat].Remove(c)
		sim.Current.Plays = append(sim.Current.Plays, round.Play{Player: seat, Card: c})
		if c.Suit == cards.Hearts {
			sim.HeartsBroken = true
		}
		if sim.Current.IsComplete() {
			winner, err := rules.TrickWinner(sim.Current)
			if err == nil {
				sim.TricksTaken = append(sim.TricksTaken, sim.Current)
				sim.Current = round.Trick{Leader: winner}
			}
		}

		pts := safeContinue(&sim, rng, seat)
		sums[idx] += pts
	}
}

// safeContinue rolls a determinized world forward and returns the deciding
// seat's penalty points, treating a rollout panic as the worst possible
// outcome (the full 26-point moon) rather than propagating it — a single
// malformed world must not abort evaluation of every other candidate.
func safeContinue(rs *round.State, rng *rand.Rand, seat int) (points float64) {
	defer func() {
		if r := recover(); r != nil {
			points = 26
		}
	}()
	scores, err := simulate.Continue(rs, rng)
	if err != nil {
		return 26
	}
	return float64(scores[seat])
}

func scoresFor(legal []cards.Card) []CardScore {
	out := make([]CardScore, len(legal))
	for i, c := range legal {
		out[i] = CardScore{Card: c}
	}
	return out
}

func containsCard(cc []cards.Card, c cards.Card) bool {
	for _, x := range cc {
		if x == c {
			return true
		}
	}
	return false
}

func highestOfLedSuit(t round.Trick, su cards.Suit) cards.Rank {
	var best cards.Rank
	for _, p := range t.Plays {
		if p.Card.Suit == su && p.Card.Rank > best {
			best = p.Card.Rank
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
