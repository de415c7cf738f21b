// Package driver runs complete Hearts games: dealing, the pass rotation,
// trick sequencing and score accumulation, leaving the actual decisions to
// whatever PlayerFunc each seat is given.
package driver

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/hearts-mc/engine/pkg/cards"
	"github.com/hearts-mc/engine/pkg/round"
	"github.com/hearts-mc/engine/pkg/rules"
)

// GameOverScore is the cumulative point total that ends a game.
const GameOverScore = 100

// PlayerFunc chooses a card for seat to play, given its hand and the round
// state so far. It must return a card LegalMoves would accept; the driver
// validates this and errors out rather than silently substituting a move —
// a silent substitution would hide a bug in the caller's player.
type PlayerFunc func(seat int, hand cards.Hand, rs *round.State) cards.Card

// PassFunc chooses the cards a seat passes in a given direction. The
// default, DefaultPass, passes the three highest cards by (rank, suit).
type PassFunc func(seat int, hand cards.Hand, dir round.PassDirection) []cards.Card

// DefaultPass is the baseline passing strategy used by any seat not given
// its own PassFunc: the three highest cards by (rank, suit) descending.
func DefaultPass(seat int, hand cards.Hand, dir round.PassDirection) []cards.Card {
	if dir == round.PassHold {
		return nil
	}
	cc := hand.Cards()
	sort.Slice(cc, func(i, j int) bool { return cc[j].Less(cc[i]) })
	if len(cc) > 3 {
		cc = cc[:3]
	}
	out := append([]cards.Card(nil), cc...)
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })
	return out
}

// Observer is notified of events as a game unfolds, so a belief-tracking
// player (or a logger) can stay in sync without the driver knowing
// anything about belief state.
type Observer interface {
	OnPass(fromSeat int, dir round.PassDirection, cc []cards.Card)
	OnCardPlayed(seat int, c cards.Card)
	OnTrickComplete(t round.Trick)
}

// Game sequences rounds of Hearts among four seats until one seat's
// cumulative score reaches GameOverScore.
type Game struct {
	Players     [4]PlayerFunc
	Passers     [4]PassFunc
	Observers   [4]Observer // may contain nils
	Scores      [4]int
	RoundNumber int
	rng         *rand.Rand
}

// NewGame builds a Game. Any nil entry in passers is replaced with
// DefaultPass.
func NewGame(players [4]PlayerFunc, passers [4]PassFunc, observers [4]Observer, rng *rand.Rand) *Game {
	g := &Game{Players: players, Passers: passers, Observers: observers, rng: rng}
	for i, p := range g.Passers {
		if p == nil {
			g.Passers[i] = DefaultPass
		}
	}
	return g
}

// PlayRound deals, passes, plays a full round of 13 tricks, and folds the
// round's scores into g.Scores.
func (g *Game) PlayRound() (map[int]int, error) {
	hands, err := cards.Deal(g.rng, 4)
	if err != nil {
		return nil, err
	}
	var arr [4]cards.Hand
	copy(arr[:], hands)

	dir := round.DirectionForRound(g.RoundNumber)
	if dir != round.PassHold {
		passes := make([][]cards.Card, 4)
		for seat := 0; seat < 4; seat++ {
			passes[seat] = g.Passers[seat](seat, arr[seat], dir)
		}
		for seat, cc := range passes {
			target, _ := round.Target(seat, dir)
			for _, c := range cc {
				arr[seat] = arr[seat].Remove(c)
			}
			arr[target] = arr[target].Union(cards.NewHand(cc))
			for _, obs := range g.Observers {
				if obs != nil {
					obs.OnPass(seat, dir, cc)
				}
			}
		}
	}

	leader := -1
	for seat, h := range arr {
		if h.Has(cards.TwoOfClubs) {
			leader = seat
		}
	}
	if leader == -1 {
		return nil, fmt.Errorf("driver: no seat was dealt the two of clubs")
	}

	rs := &round.State{Hands: arr, Current: round.Trick{Leader: leader}}
	for len(rs.TricksTaken) < 13 {
		for len(rs.Current.Plays) < 4 {
			seat := rs.NextSeat()
			isFirst := rs.IsFirstTrick()
			legal, err := rules.LegalMoves(rs.Hands[seat], rs.Current, rs.HeartsBroken, isFirst)
			if err != nil {
				return nil, err
			}
			card := g.Players[seat](seat, rs.Hands[seat], rs)
			if !legalContains(legal, card) {
				return nil, fmt.Errorf("driver: seat %d played illegal card %v (legal: %v)", seat, card, legal)
			}
			rs.Hands[seat] = rs.Hands[seat].Remove(card)
			rs.Current.Plays = append(rs.Current.Plays, round.Play{Player: seat, Card: card})
			if card.Suit == cards.Hearts {
				rs.HeartsBroken = true
			}
			for _, obs := range g.Observers {
				if obs != nil {
					obs.OnCardPlayed(seat, card)
				}
			}
		}
		winner, err := rules.TrickWinner(rs.Current)
		if err != nil {
			return nil, err
		}
		finished := rs.Current
		rs.TricksTaken = append(rs.TricksTaken, finished)
		for _, obs := range g.Observers {
			if obs != nil {
				obs.OnTrickComplete(finished)
			}
		}
		rs.Current = round.Trick{Leader: winner}
	}

	scores := rules.RoundScore(rs.TricksTaken)
	for seat, pts := range scores {
		g.Scores[seat] += pts
	}
	g.RoundNumber++
	return scores, nil
}

// PlayGame plays rounds until some seat's cumulative score reaches
// GameOverScore, then returns the final scores.
func (g *Game) PlayGame() ([4]int, error) {
	for {
		if _, err := g.PlayRound(); err != nil {
			return g.Scores, err
		}
		for _, s := range g.Scores {
			if s >= GameOverScore {
				return g.Scores, nil
			}
		}
	}
}

func legalContains(legal []cards.Card, c cards.Card) bool {
	for _, x := range legal {
		if x == c {
			return true
		}
	}
	return false
}
