// Package engine is the decision engine's public façade: one Engine per
// seat, carrying its own hand, belief state and configuration, exposing the
// handful of calls a game driver needs — initialize, pass, play, observe.
package engine

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"sort"

	"github.com/hearts-mc/engine/pkg/belief"
	"github.com/hearts-mc/engine/pkg/cards"
	"github.com/hearts-mc/engine/pkg/mc"
	"github.com/hearts-mc/engine/pkg/round"
)

// Config is the engine's persisted operational configuration. It mirrors
// the teacher's Config/Weights JSON file, but carries tuning knobs for the
// sampling budget rather than a learned heuristic weight vector — this
// spec's simulation policy has no tunable coefficients.
type Config struct {
	NSamples        int `json:"n_samples"`
	RejectionBudget int `json:"rejection_budget"`
	Workers         int `json:"workers"`
}

// DefaultConfig returns the engine's out-of-the-box configuration.
func DefaultConfig() Config {
	d := mc.DefaultConfig()
	return Config{NSamples: d.NSamples, RejectionBudget: d.RejectionBudget, Workers: d.Workers}
}

func (c Config) toMC() mc.Config {
	return mc.Config{NSamples: c.NSamples, RejectionBudget: c.RejectionBudget, Workers: c.Workers}
}

// LoadConfig reads a JSON config file, falling back to DefaultConfig if the
// file does not exist.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return Config{}, err
	}
	var c Config
	if err := json.Unmarshal(data, &c); err != nil {
		return Config{}, fmt.Errorf("engine: parsing config %s: %w", path, err)
	}
	return c, nil
}

// SaveConfig writes c to path as indented JSON.
func SaveConfig(c Config, path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Engine is one seat's decision-making state across a round.
type Engine struct {
	Seat    int
	Config  Config
	Beliefs *belief.State
	Hand    cards.Hand
	rng     *rand.Rand
}

// New builds an Engine for the given seat.
func New(seat int, cfg Config, rng *rand.Rand) *Engine {
	return &Engine{Seat: seat, Config: cfg, rng: rng}
}

// InitializeBeliefs resets the engine's hand and belief state at the start
// of a round. passedTo records any cards the engine itself passed away —
// their eventual holder is certain from the start.
func (e *Engine) InitializeBeliefs(hand cards.Hand, passedTo map[int]cards.Hand) {
	e.Hand = hand
	e.Beliefs = belief.Initialize(e.Seat, hand, passedTo)
}

// PassCards chooses the three cards to pass: the three highest by (rank,
// suit), a fixed baseline consistent with the original engine's approach
// (spec.md's open question on pass_cards strategy). On a hold round it
// returns nil.
func (e *Engine) PassCards(dir round.PassDirection) []cards.Card {
	if dir == round.PassHold {
		return nil
	}
	cc := e.Hand.Cards()
	sort.Slice(cc, func(i, j int) bool { return cc[j].Less(cc[i]) })
	if len(cc) > 3 {
		cc = cc[:3]
	}
	out := make([]cards.Card, len(cc))
	copy(out, cc)
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })
	return out
}

// PlayCard runs the MC evaluator and returns the engine's chosen card.
func (e *Engine) PlayCard(rs *round.State) (cards.Card, error) {
	card, _, err := mc.SelectCard(rs, e.Beliefs, e.Hand, e.Config.toMC(), e.rng)
	return card, err
}

// AnalyzeCard exposes the evaluator's full per-candidate scoring, for
// explaining a decision after the fact rather than just making it.
func (e *Engine) AnalyzeCard(rs *round.State) ([]mc.CardScore, error) {
	return mc.AnalyzeCard(rs, e.Beliefs, e.Hand, e.Config.toMC(), e.rng)
}

// ObserveCardPlayed folds a played card into belief and, if it was the
// engine's own, removes it from Hand.
func (e *Engine) ObserveCardPlayed(seat int, c cards.Card) {
	belief.Update(e.Beliefs, belief.CardPlayed(seat, c))
	if seat == e.Seat {
		e.Hand = e.Hand.Remove(c)
	}
}

// ObserveTrickComplete folds a finished trick into belief, inferring voids
// for any seat that failed to follow suit before retiring the four cards.
// It does not call ObserveCardPlayed — TrickComplete already removes the
// cards from belief, and a card already removed by an earlier
// ObserveCardPlayed is not counted twice — but it re-walks the plays itself
// to keep Hand in sync for the engine's own cards, matching how the
// original bot's observe_trick_complete always re-walks its own plays.
func (e *Engine) ObserveTrickComplete(t round.Trick) {
	belief.Update(e.Beliefs, belief.TrickComplete(t))
	for _, p := range t.Plays {
		if p.Player == e.Seat {
			e.Hand = e.Hand.Remove(p.Card)
		}
	}
}

// ObservePass folds a pass of cc from fromSeat in direction dir into
// belief.
func (e *Engine) ObservePass(fromSeat int, dir round.PassDirection, cc []cards.Card) {
	belief.Update(e.Beliefs, belief.PassRecord(fromSeat, dir, cc))
}
