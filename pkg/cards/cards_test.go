package cards

import (
	"math/rand"
	"testing"
)

func TestIndexRoundTrip(t *testing.T) {
	for i := 0; i < 52; i++ {
		c := FromIndex(i)
		if c.Index() != i {
			t.Fatalf("FromIndex(%d).Index() = %d, want %d", i, c.Index(), i)
		}
	}
}

func TestParseCard(t *testing.T) {
	cases := []struct {
		in   string
		want Card
	}{
		{"2C", Card{Two, Clubs}},
		{"qs", Card{Queen, Spades}},
		{"TD", Card{Ten, Diamonds}},
		{"AH", Card{Ace, Hearts}},
	}
	for _, tc := range cases {
		got, err := ParseCard(tc.in)
		if err != nil {
			t.Fatalf("ParseCard(%q): %v", tc.in, err)
		}
		if got != tc.want {
			t.Errorf("ParseCard(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
	if _, err := ParseCard("ZZ"); err == nil {
		t.Error("ParseCard(\"ZZ\") should error")
	}
}

func TestHandAddRemoveHas(t *testing.T) {
	var h Hand
	c := QueenOfSpades
	if h.Has(c) {
		t.Fatal("empty hand should not have any card")
	}
	h = h.Add(c)
	if !h.Has(c) || h.Count() != 1 {
		t.Fatalf("after Add, Has=%v Count=%d", h.Has(c), h.Count())
	}
	h = h.Remove(c)
	if h.Has(c) || h.Count() != 0 {
		t.Fatalf("after Remove, Has=%v Count=%d", h.Has(c), h.Count())
	}
}

func TestHandOfSuit(t *testing.T) {
	h := NewHand([]Card{{Two, Clubs}, {Ace, Clubs}, {Queen, Spades}})
	if got := h.OfSuit(Clubs).Count(); got != 2 {
		t.Errorf("OfSuit(Clubs).Count() = %d, want 2", got)
	}
	if !h.HasSuit(Spades) {
		t.Error("HasSuit(Spades) = false, want true")
	}
	if h.HasSuit(Hearts) {
		t.Error("HasSuit(Hearts) = true, want false")
	}
}

func TestCardsOrdering(t *testing.T) {
	h := NewHand([]Card{{Ace, Clubs}, {Two, Spades}, {Two, Clubs}})
	got := h.Cards()
	want := []Card{{Two, Clubs}, {Two, Spades}, {Ace, Clubs}}
	if len(got) != len(want) {
		t.Fatalf("len(Cards()) = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Cards()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestDeal(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	hands, err := Deal(rng, 4)
	if err != nil {
		t.Fatalf("Deal: %v", err)
	}
	var all Hand
	for _, h := range hands {
		if h.Count() != 13 {
			t.Errorf("hand has %d cards, want 13", h.Count())
		}
		if all&h != 0 {
			t.Error("overlapping hands dealt")
		}
		all |= h
	}
	if all.Count() != 52 {
		t.Errorf("union of hands has %d cards, want 52", all.Count())
	}
	if _, err := Deal(rng, 5); err == nil {
		t.Error("Deal(5) should error: 52 does not divide evenly by 5")
	}
}
