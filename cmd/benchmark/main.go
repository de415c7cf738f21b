// Command benchmark A/B-tests two engine.Config knob settings side by side:
// each config plays its own set of seeded all-engine self-play rounds, and
// the mean round points per seat is reported for each. It repurposes the teacher's coordinate-descent tuner's parallel
// self-play infrastructure for config-knob comparison rather than learned
// weight search — this spec's simulation policy has nothing to learn.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"runtime"
	"sync"

	"github.com/hearts-mc/engine/pkg/cards"
	"github.com/hearts-mc/engine/pkg/driver"
	"github.com/hearts-mc/engine/pkg/engine"
	"github.com/hearts-mc/engine/pkg/round"
)

func main() {
	gamesPerSide := flag.Int("games", 40, "rounds to play per config")
	samplesA := flag.Int("a_samples", 1000, "n_samples for config A")
	samplesB := flag.Int("b_samples", 200, "n_samples for config B")
	seed := flag.Int64("seed", 42, "master seed")
	flag.Parse()

	cfgA := engine.Config{NSamples: *samplesA, RejectionBudget: 1000, Workers: 1}
	cfgB := engine.Config{NSamples: *samplesB, RejectionBudget: 1000, Workers: 1}

	meanA := meanRoundPoints(cfgA, *gamesPerSide, *seed)
	meanB := meanRoundPoints(cfgB, *gamesPerSide, *seed+1)

	fmt.Printf("config A (n_samples=%d): mean round points/seat = %.2f\n", *samplesA, meanA)
	fmt.Printf("config B (n_samples=%d): mean round points/seat = %.2f\n", *samplesB, meanB)
}

// meanRoundPoints plays n independent all-engine rounds under cfg, each
// with its own seeded RNG derived from seed, and returns the average
// points any single seat scored across all rounds played.
func meanRoundPoints(cfg engine.Config, n int, seed int64) float64 {
	numWorkers := runtime.NumCPU()
	if numWorkers > n {
		numWorkers = n
	}
	if numWorkers < 1 {
		numWorkers = 1
	}

	sem := make(chan struct{}, numWorkers)
	var wg sync.WaitGroup
	var mu sync.Mutex
	total := 0
	games := 0

	for i := 0; i < n; i++ {
		wg.Add(1)
		sem <- struct{}{}
		go func(idx int) {
			defer wg.Done()
			defer func() { <-sem }()
			gameSeed := seed ^ int64(uint64(idx)*0x9E3779B97F4A7C15)
			pts := playOneRound(cfg, gameSeed)
			mu.Lock()
			total += pts
			games++
			mu.Unlock()
		}(i)
	}
	wg.Wait()

	if games == 0 {
		return 0
	}
	return float64(total) / float64(4*games)
}

// playOneRound plays a single all-engine round under cfg and returns the
// round's total points across all four seats (26, or 78 when a seat shoots
// the moon, but computed via the full engine path rather than assumed, so a
// scoring bug shows up as a drifting total).
func playOneRound(cfg engine.Config, seed int64) int {
	rng := rand.New(rand.NewSource(seed))
	engines := make([]*engine.Engine, 4)
	for seat := 0; seat < 4; seat++ {
		engines[seat] = engine.New(seat, cfg, rand.New(rand.NewSource(rng.Int63())))
	}

	players := [4]driver.PlayerFunc{}
	for seat := 0; seat < 4; seat++ {
		e := engines[seat]
		players[seat] = func(s int, hand cards.Hand, rs *round.State) cards.Card {
			if e.Beliefs == nil {
				e.InitializeBeliefs(hand, nil)
			}
			card, err := e.PlayCard(rs)
			if err != nil {
				return hand.Cards()[0]
			}
			return card
		}
	}

	g := driver.NewGame(players, [4]driver.PassFunc{}, [4]driver.Observer{}, rng)
	scores, err := g.PlayRound()
	if err != nil {
		return 0
	}
	total := 0
	for _, v := range scores {
		total += v
	}
	return total
}
