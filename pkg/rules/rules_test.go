package rules

import (
	"testing"

	"github.com/hearts-mc/engine/pkg/cards"
	"github.com/hearts-mc/engine/pkg/round"
)

func mustParse(t *testing.T, s string) []cards.Card {
	t.Helper()
	cc, err := cards.ParseCards(s)
	if err != nil {
		t.Fatalf("ParseCards(%q): %v", s, err)
	}
	return cc
}

// S1: forced lead — holding the two of clubs on the first trick, it is the
// only legal lead.
func TestLegalMoves_ForcedLeadTwoOfClubs(t *testing.T) {
	hand := cards.NewHand(mustParse(t, "2C 5H QS AC"))
	moves, err := LegalMoves(hand, round.Trick{}, false, true)
	if err != nil {
		t.Fatalf("LegalMoves: %v", err)
	}
	if len(moves) != 1 || moves[0] != cards.TwoOfClubs {
		t.Fatalf("LegalMoves = %v, want [2C]", moves)
	}
}

func TestLegalMoves_NoTwoOfClubsToLead(t *testing.T) {
	hand := cards.NewHand(mustParse(t, "5H QS AC"))
	_, err := LegalMoves(hand, round.Trick{}, false, true)
	if err != ErrNoTwoOfClubs {
		t.Fatalf("LegalMoves error = %v, want ErrNoTwoOfClubs", err)
	}
}

// S2: single legal move when only one card remains in the led suit.
func TestLegalMoves_SingleLegalFollow(t *testing.T) {
	hand := cards.NewHand(mustParse(t, "5H 9C"))
	trick := round.Trick{Leader: 0, Plays: []round.Play{{Player: 0, Card: cards.Card{Rank: cards.Three, Suit: cards.Clubs}}}}
	moves, err := LegalMoves(hand, trick, true, false)
	if err != nil {
		t.Fatalf("LegalMoves: %v", err)
	}
	if len(moves) != 1 || moves[0].Suit != cards.Clubs {
		t.Fatalf("LegalMoves = %v, want single club", moves)
	}
}

func TestLegalMoves_VoidCanDiscardAnything(t *testing.T) {
	hand := cards.NewHand(mustParse(t, "5H QS"))
	trick := round.Trick{Leader: 0, Plays: []round.Play{{Player: 0, Card: cards.Card{Rank: cards.Three, Suit: cards.Clubs}}}}
	moves, err := LegalMoves(hand, trick, true, false)
	if err != nil {
		t.Fatalf("LegalMoves: %v", err)
	}
	if len(moves) != 2 {
		t.Fatalf("LegalMoves = %v, want both cards legal when void and hearts broken", moves)
	}
}

func TestLegalMoves_FirstTrickNoPointsWhenSafeAlternativeExists(t *testing.T) {
	hand := cards.NewHand(mustParse(t, "5H QS 9D"))
	trick := round.Trick{Leader: 0, Plays: []round.Play{{Player: 0, Card: cards.Card{Rank: cards.Three, Suit: cards.Clubs}}}}
	moves, err := LegalMoves(hand, trick, false, true)
	if err != nil {
		t.Fatalf("LegalMoves: %v", err)
	}
	if len(moves) != 1 || moves[0].Suit != cards.Diamonds {
		t.Fatalf("LegalMoves = %v, want only the safe diamond", moves)
	}
}

func TestLegalMoves_FirstTrickPointsAllowedWhenNoSafeAlternative(t *testing.T) {
	hand := cards.NewHand(mustParse(t, "5H QS"))
	trick := round.Trick{Leader: 0, Plays: []round.Play{{Player: 0, Card: cards.Card{Rank: cards.Three, Suit: cards.Clubs}}}}
	moves, err := LegalMoves(hand, trick, false, true)
	if err != nil {
		t.Fatalf("LegalMoves: %v", err)
	}
	if len(moves) != 2 {
		t.Fatalf("LegalMoves = %v, want both forced-point cards legal", moves)
	}
}

func TestLegalMoves_CannotLeadHeartsUnbroken(t *testing.T) {
	hand := cards.NewHand(mustParse(t, "5H 9C"))
	moves, err := LegalMoves(hand, round.Trick{}, false, false)
	if err != nil {
		t.Fatalf("LegalMoves: %v", err)
	}
	if len(moves) != 1 || moves[0].Suit != cards.Clubs {
		t.Fatalf("LegalMoves = %v, want only the club", moves)
	}
}

func TestLegalMoves_CanLeadHeartsWhenOnlyHeartsRemain(t *testing.T) {
	hand := cards.NewHand(mustParse(t, "5H 9H"))
	moves, err := LegalMoves(hand, round.Trick{}, false, false)
	if err != nil {
		t.Fatalf("LegalMoves: %v", err)
	}
	if len(moves) != 2 {
		t.Fatalf("LegalMoves = %v, want both hearts legal when it's all that's left", moves)
	}
}

func TestTrickWinnerHighestOfLedSuit(t *testing.T) {
	trick := round.Trick{Leader: 1, Plays: []round.Play{
		{Player: 1, Card: cards.Card{Rank: cards.Five, Suit: cards.Clubs}},
		{Player: 2, Card: cards.Card{Rank: cards.King, Suit: cards.Clubs}},
		{Player: 3, Card: cards.Card{Rank: cards.Ace, Suit: cards.Hearts}},
		{Player: 0, Card: cards.Card{Rank: cards.Two, Suit: cards.Clubs}},
	}}
	winner, err := TrickWinner(trick)
	if err != nil {
		t.Fatalf("TrickWinner: %v", err)
	}
	if winner != 2 {
		t.Fatalf("TrickWinner = %d, want 2 (the King of Clubs, highest of the led suit)", winner)
	}
}

func TestRoundScoreMoonShot(t *testing.T) {
	// Seat 0 takes every heart plus the queen of spades across four tricks.
	tricks := []round.Trick{
		{Leader: 0, Plays: []round.Play{
			{Player: 0, Card: cards.Card{Rank: cards.Ace, Suit: cards.Hearts}},
			{Player: 1, Card: cards.Card{Rank: cards.Two, Suit: cards.Hearts}},
			{Player: 2, Card: cards.Card{Rank: cards.Three, Suit: cards.Hearts}},
			{Player: 3, Card: cards.QueenOfSpades},
		}},
		{Leader: 0, Plays: []round.Play{
			{Player: 0, Card: cards.Card{Rank: cards.King, Suit: cards.Hearts}},
			{Player: 1, Card: cards.Card{Rank: cards.Four, Suit: cards.Hearts}},
			{Player: 2, Card: cards.Card{Rank: cards.Five, Suit: cards.Hearts}},
			{Player: 3, Card: cards.Card{Rank: cards.Six, Suit: cards.Hearts}},
		}},
		{Leader: 0, Plays: []round.Play{
			{Player: 0, Card: cards.Card{Rank: cards.Queen, Suit: cards.Hearts}},
			{Player: 1, Card: cards.Card{Rank: cards.Seven, Suit: cards.Hearts}},
			{Player: 2, Card: cards.Card{Rank: cards.Eight, Suit: cards.Hearts}},
			{Player: 3, Card: cards.Card{Rank: cards.Nine, Suit: cards.Hearts}},
		}},
		{Leader: 0, Plays: []round.Play{
			{Player: 0, Card: cards.Card{Rank: cards.Jack, Suit: cards.Hearts}},
			{Player: 1, Card: cards.Card{Rank: cards.Ten, Suit: cards.Hearts}},
			{Player: 2, Card: cards.Card{Rank: cards.Two, Suit: cards.Diamonds}},
			{Player: 3, Card: cards.Card{Rank: cards.Three, Suit: cards.Diamonds}},
		}},
	}
	scores := RoundScore(tricks)
	if scores[0] != 0 {
		t.Errorf("shooter score = %d, want 0", scores[0])
	}
	for _, p := range []int{1, 2, 3} {
		if scores[p] != 26 {
			t.Errorf("scores[%d] = %d, want 26", p, scores[p])
		}
	}
}

func TestRoundScoreOrdinary(t *testing.T) {
	tricks := []round.Trick{
		{Leader: 0, Plays: []round.Play{
			{Player: 0, Card: cards.Card{Rank: cards.Ace, Suit: cards.Hearts}},
			{Player: 1, Card: cards.Card{Rank: cards.Two, Suit: cards.Clubs}},
			{Player: 2, Card: cards.Card{Rank: cards.Three, Suit: cards.Clubs}},
			{Player: 3, Card: cards.Card{Rank: cards.Four, Suit: cards.Clubs}},
		}},
	}
	scores := RoundScore(tricks)
	if scores[0] != 1 {
		t.Errorf("scores[0] = %d, want 1", scores[0])
	}
	for _, p := range []int{1, 2, 3} {
		if scores[p] != 0 {
			t.Errorf("scores[%d] = %d, want 0", p, scores[p])
		}
	}
}
