// Package belief tracks what the engine believes about the cards it cannot
// see: a probability distribution, per unseen card, over which of the three
// opponents holds it.
package belief

import (
	"github.com/hearts-mc/engine/pkg/cards"
	"github.com/hearts-mc/engine/pkg/round"
)

// Void records that a seat is known to hold no card of a suit, inferred
// whenever that seat fails to follow suit.
type Void struct {
	Seat int
	Suit cards.Suit
}

// State is the engine's belief about the hidden hands of the three seats
// other than its own. Opponent index 0/1/2 corresponds to the seats one,
// two and three places around the table from the engine's own seat.
type State struct {
	EngineSeat int
	CardProbs  map[cards.Card][3]float64
	Voids      map[Void]bool
	PassedTo   map[int]cards.Hand
	HandCounts [3]int
}

// opponentSeat maps opponent index 0..2 to an absolute seat, assuming four
// seats numbered 0..3 and the engine at EngineSeat.
func (s *State) opponentSeat(i int) int {
	return (s.EngineSeat + i + 1) % 4
}

func (s *State) opponentIndex(seat int) (int, bool) {
	for i := 0; i < 3; i++ {
		if s.opponentSeat(i) == seat {
			return i, true
		}
	}
	return 0, false
}

// Initialize builds a fresh belief state at the start of a round: every card
// not in the engine's own hand is unseen and uniformly distributed across
// the three opponents, except for cards the engine itself passed away,
// which are certainly held by the pass recipient.
func Initialize(engineSeat int, hand cards.Hand, passedTo map[int]cards.Hand) *State {
	s := &State{
		EngineSeat: engineSeat,
		CardProbs:  make(map[cards.Card][3]float64),
		Voids:      make(map[Void]bool),
		PassedTo:   make(map[int]cards.Hand),
		HandCounts: [3]int{13, 13, 13},
	}
	for seat, h := range passedTo {
		s.PassedTo[seat] = h
	}

	passed := make(map[cards.Card]int)
	for seat, h := range passedTo {
		if idx, ok := s.opponentIndex(seat); ok {
			for _, c := range h.Cards() {
				passed[c] = idx
			}
		}
	}

	for _, c := range cards.FullDeck() {
		if hand.Has(c) {
			continue
		}
		if idx, ok := passed[c]; ok {
			var v [3]float64
			v[idx] = 1.0
			s.CardProbs[c] = v
		} else {
			s.CardProbs[c] = [3]float64{1.0 / 3, 1.0 / 3, 1.0 / 3}
		}
	}
	return s
}

// Observation is a closed set of events the belief state can absorb. The
// four variants are constructed with CardPlayed, VoidShown, TrickComplete
// and PassRecord below; there is no other way to build one.
type Observation interface {
	apply(*State)
}

type cardPlayedObs struct {
	Seat int
	Card cards.Card
}

func (o cardPlayedObs) apply(s *State) {
	if _, tracked := s.CardProbs[o.Card]; !tracked {
		// Already observed (e.g. via CardPlayed and again via
		// TrickComplete): nothing left to remove or count.
		return
	}
	if idx, ok := s.opponentIndex(o.Seat); ok {
		if s.HandCounts[idx] > 0 {
			s.HandCounts[idx]--
		}
	}
	delete(s.CardProbs, o.Card)
	// Removing one card's entry cannot change another's conditional
	// distribution (each tracked card is independent), but renormalizing
	// is cheap numerical hygiene after every mutation.
	s.renormalizeAll()
}

type voidShownObs struct {
	Seat int
	Suit cards.Suit
}

func (o voidShownObs) apply(s *State) {
	idx, ok := s.opponentIndex(o.Seat)
	if !ok {
		return
	}
	s.Voids[Void{Seat: o.Seat, Suit: o.Suit}] = true
	for c, v := range s.CardProbs {
		if c.Suit != o.Suit {
			continue
		}
		v[idx] = 0
		s.CardProbs[c] = v
		s.renormalizeCard(c)
	}
}

type trickCompleteObs struct {
	Trick round.Trick
}

func (o trickCompleteObs) apply(s *State) {
	led, ok := o.Trick.LedSuit()
	if !ok {
		return
	}
	for _, p := range o.Trick.Plays {
		if p.Card.Suit != led {
			voidShownObs{Seat: p.Player, Suit: led}.apply(s)
		}
	}
	for _, p := range o.Trick.Plays {
		cardPlayedObs{Seat: p.Player, Card: p.Card}.apply(s)
	}
}

type passRecordObs struct {
	FromSeat  int
	Direction round.PassDirection
	Cards     []cards.Card
}

func (o passRecordObs) apply(s *State) {
	target, ok := round.Target(o.FromSeat, o.Direction)
	if !ok {
		return
	}
	idx, ok := s.opponentIndex(target)
	if !ok {
		return
	}
	h := s.PassedTo[target]
	for _, c := range o.Cards {
		h = h.Add(c)
		if _, tracked := s.CardProbs[c]; tracked {
			var v [3]float64
			v[idx] = 1.0
			s.CardProbs[c] = v
		}
	}
	s.PassedTo[target] = h
}

// CardPlayed records that seat played card c.
func CardPlayed(seat int, c cards.Card) Observation { return cardPlayedObs{Seat: seat, Card: c} }

// VoidShown records that seat is known to hold no card of suit su.
func VoidShown(seat int, su cards.Suit) Observation { return voidShownObs{Seat: seat, Suit: su} }

// TrickComplete records a fully played trick, inferring a void for every
// seat that failed to follow the led suit before removing all four cards.
func TrickComplete(t round.Trick) Observation { return trickCompleteObs{Trick: t} }

// PassRecord records that fromSeat passed cc in direction dir.
func PassRecord(fromSeat int, dir round.PassDirection, cc []cards.Card) Observation {
	return passRecordObs{FromSeat: fromSeat, Direction: dir, Cards: cc}
}

// Update folds an observation into the belief state.
func Update(s *State, obs Observation) { obs.apply(s) }

func (s *State) renormalizeAll() {
	for c := range s.CardProbs {
		s.renormalizeCard(c)
	}
}

// renormalizeCard rescales a card's probability vector to sum to 1. If the
// vector has collapsed to all zero (every opponent it still allowed is now
// excluded by a void), the unique opponent not void in the card's suit — if
// there is exactly one — gets the card; if several are not void, probability
// is split evenly among them; if all three are void, it is uniform over all
// three. Remaining hand sizes are not considered.
func (s *State) renormalizeCard(c cards.Card) {
	v := s.CardProbs[c]
	total := v[0] + v[1] + v[2]
	if total > 1e-9 {
		for i := range v {
			v[i] /= total
		}
		s.CardProbs[c] = v
		return
	}

	eligible := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		if !s.Voids[Void{Seat: s.opponentSeat(i), Suit: c.Suit}] {
			eligible = append(eligible, i)
		}
	}

	var nv [3]float64
	switch len(eligible) {
	case 0:
		nv = [3]float64{1.0 / 3, 1.0 / 3, 1.0 / 3}
	case 1:
		nv[eligible[0]] = 1.0
	default:
		share := 1.0 / float64(len(eligible))
		for _, i := range eligible {
			nv[i] = share
		}
	}
	s.CardProbs[c] = nv
}

// unseenOrdered returns the unseen card keys of CardProbs in a stable order
// (ascending rank, suit) so that sampling is reproducible given a seeded
// rng.
func (s *State) unseenOrdered() []cards.Card {
	cc := make([]cards.Card, 0, len(s.CardProbs))
	for c := range s.CardProbs {
		cc = append(cc, c)
	}
	sortCards(cc)
	return cc
}

func sortCards(cc []cards.Card) {
	for i := 1; i < len(cc); i++ {
		for j := i; j > 0 && cc[j].Less(cc[j-1]); j-- {
			cc[j], cc[j-1] = cc[j-1], cc[j]
		}
	}
}
