package engine

import (
	"math/rand"
	"testing"

	"github.com/hearts-mc/engine/pkg/cards"
	"github.com/hearts-mc/engine/pkg/round"
)

func parse(t *testing.T, s string) cards.Hand {
	t.Helper()
	cc, err := cards.ParseCards(s)
	if err != nil {
		t.Fatalf("ParseCards(%q): %v", s, err)
	}
	return cards.NewHand(cc)
}

func TestInitializeBeliefsAndPlayCard(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	hand := parse(t, "2C 3C 4C 5C 6C 7C 8C 9C TC JC QC KC AC")
	e := New(0, Config{NSamples: 10, RejectionBudget: 200, Workers: 1}, rng)
	e.InitializeBeliefs(hand, nil)

	rs := &round.State{}
	card, err := e.PlayCard(rs)
	if err != nil {
		t.Fatalf("PlayCard: %v", err)
	}
	if card != cards.TwoOfClubs {
		t.Fatalf("PlayCard = %v, want 2C (forced first lead)", card)
	}
}

func TestPassCardsHighestThree(t *testing.T) {
	e := New(0, DefaultConfig(), rand.New(rand.NewSource(1)))
	e.InitializeBeliefs(parse(t, "2C 3C AC AH AS"), nil)
	cc := e.PassCards(round.PassLeft)
	if len(cc) != 3 {
		t.Fatalf("PassCards returned %d cards, want 3", len(cc))
	}
	want := map[cards.Card]bool{
		{Rank: cards.Ace, Suit: cards.Clubs}:  true,
		{Rank: cards.Ace, Suit: cards.Hearts}: true,
		{Rank: cards.Ace, Suit: cards.Spades}: true,
	}
	for _, c := range cc {
		if !want[c] {
			t.Errorf("PassCards included %v unexpectedly", c)
		}
	}
}

func TestPassCardsHoldReturnsNil(t *testing.T) {
	e := New(0, DefaultConfig(), rand.New(rand.NewSource(1)))
	e.InitializeBeliefs(parse(t, "2C 3C AC"), nil)
	if cc := e.PassCards(round.PassHold); cc != nil {
		t.Fatalf("PassCards(hold) = %v, want nil", cc)
	}
}

func TestObserveCardPlayedRemovesFromOwnHand(t *testing.T) {
	e := New(0, DefaultConfig(), rand.New(rand.NewSource(1)))
	e.InitializeBeliefs(parse(t, "2C 3C"), nil)
	e.ObserveCardPlayed(0, cards.Card{Rank: cards.Two, Suit: cards.Clubs})
	if e.Hand.Has(cards.Card{Rank: cards.Two, Suit: cards.Clubs}) {
		t.Fatal("engine's own played card should be removed from Hand")
	}
}
