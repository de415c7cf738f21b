package cli

import (
	"fmt"
	"strings"

	"github.com/hearts-mc/engine/pkg/cards"
	"github.com/hearts-mc/engine/pkg/mc"
	"github.com/hearts-mc/engine/pkg/round"
)

func PrintHeader(title string) {
	border := strings.Repeat("=", len(title)+4)
	fmt.Printf("\n%s\n  %s  \n%s\n\n", border, title, border)
}

func PrintSubHeader(title string) {
	fmt.Printf("\n--- %s ---\n", title)
}

func PrintHand(h cards.Hand) {
	fmt.Printf("  Hand: %s\n", h.String())
}

func PrintHelp() {
	fmt.Print(`
Card notation (two characters, rank then suit):
  2-9,T,J,Q,K,A     rank (T also accepted as 10)
  C,D,S,H           suit

Input formats (space- or comma-separated):
  2C QS TD
  2C,QS,TD

Commands during your turn:
  hand       reprint your hand
  moves      list all legal moves
Any other input is read as a card; there is no hint or quit command.

`)
}

func PrintMoveOptions(moves []cards.Card) {
	fmt.Printf("Legal moves (%d):\n", len(moves))
	for i, c := range moves {
		fmt.Printf("  %2d. %s\n", i+1, c.String())
	}
}

func PrintTrick(t round.Trick) {
	parts := make([]string, len(t.Plays))
	for i, p := range t.Plays {
		parts[i] = fmt.Sprintf("seat%d:%s", p.Player, p.Card)
	}
	fmt.Printf("  Trick (led by seat %d): %s\n", t.Leader, strings.Join(parts, "  "))
}

func PrintScores(scores [4]int) {
	fmt.Printf("  Scores: seat0=%d seat1=%d seat2=%d seat3=%d\n", scores[0], scores[1], scores[2], scores[3])
}

func FormatAnalysis(scores []mc.CardScore) string {
	var b strings.Builder
	for _, s := range scores {
		if s.SamplesTaken == 0 {
			fmt.Fprintf(&b, "  %s  (forced/obvious, no rollout)\n", s.Card)
			continue
		}
		fmt.Fprintf(&b, "  %s  mean penalty=%.3f over %d samples\n", s.Card, s.MeanPenalty, s.SamplesTaken)
	}
	return b.String()
}
