package cli

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/hearts-mc/engine/pkg/cards"
	"github.com/hearts-mc/engine/pkg/round"
)

// RoundLog is one round's recorded history: who passed what, every trick in
// order, and the round's resulting scores.
type RoundLog struct {
	RoundNumber int
	Direction   round.PassDirection
	Passes      [4][]cards.Card
	Tricks      []round.Trick
	Scores      map[int]int
}

// GameLog is a sequence of round logs, in play order.
type GameLog struct {
	Rounds []RoundLog
}

// SaveLog writes g to path in a line-oriented text format, one token per
// field, matching the teacher's io package in spirit: human-readable,
// grep-able, and trivially appendable.
func SaveLog(g GameLog, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	w := bufio.NewWriter(f)

	for _, rl := range g.Rounds {
		fmt.Fprintf(w, "ROUND %d DIR %s\n", rl.RoundNumber, rl.Direction)
		for seat, cc := range rl.Passes {
			if len(cc) == 0 {
				continue
			}
			fmt.Fprintf(w, "PASS %d %s\n", seat, joinCards(cc))
		}
		for _, t := range rl.Tricks {
			fmt.Fprintf(w, "TRICK %d\n", t.Leader)
			for _, p := range t.Plays {
				fmt.Fprintf(w, "PLAY %d %s\n", p.Player, p.Card)
			}
		}
		fmt.Fprintf(w, "SCORE %d %d %d %d\n", rl.Scores[0], rl.Scores[1], rl.Scores[2], rl.Scores[3])
	}
	return w.Flush()
}

// LoadLog reads a log written by SaveLog.
func LoadLog(path string) (GameLog, error) {
	f, err := os.Open(path)
	if err != nil {
		return GameLog{}, err
	}
	defer f.Close()

	var g GameLog
	var cur *RoundLog
	var trick *round.Trick

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		switch fields[0] {
		case "ROUND":
			if cur != nil {
				g.Rounds = append(g.Rounds, *cur)
			}
			n, err := strconv.Atoi(fields[1])
			if err != nil {
				return GameLog{}, fmt.Errorf("cli: parsing round number in %q: %w", line, err)
			}
			cur = &RoundLog{RoundNumber: n, Direction: parseDirection(fields[3]), Scores: map[int]int{}}
			trick = nil
		case "PASS":
			if cur == nil {
				return GameLog{}, fmt.Errorf("cli: PASS line before any ROUND: %q", line)
			}
			seat, err := strconv.Atoi(fields[1])
			if err != nil {
				return GameLog{}, err
			}
			cc, err := cards.ParseCards(strings.Join(fields[2:], " "))
			if err != nil {
				return GameLog{}, err
			}
			cur.Passes[seat] = cc
		case "TRICK":
			if cur == nil {
				return GameLog{}, fmt.Errorf("cli: TRICK line before any ROUND: %q", line)
			}
			leader, err := strconv.Atoi(fields[1])
			if err != nil {
				return GameLog{}, err
			}
			cur.Tricks = append(cur.Tricks, round.Trick{Leader: leader})
			trick = &cur.Tricks[len(cur.Tricks)-1]
		case "PLAY":
			if trick == nil {
				return GameLog{}, fmt.Errorf("cli: PLAY line before any TRICK: %q", line)
			}
			seat, err := strconv.Atoi(fields[1])
			if err != nil {
				return GameLog{}, err
			}
			c, err := cards.ParseCard(fields[2])
			if err != nil {
				return GameLog{}, err
			}
			trick.Plays = append(trick.Plays, round.Play{Player: seat, Card: c})
		case "SCORE":
			if cur == nil {
				return GameLog{}, fmt.Errorf("cli: SCORE line before any ROUND: %q", line)
			}
			for seat := 0; seat < 4; seat++ {
				v, err := strconv.Atoi(fields[seat+1])
				if err != nil {
					return GameLog{}, err
				}
				cur.Scores[seat] = v
			}
		default:
			return GameLog{}, fmt.Errorf("cli: unrecognized log line: %q", line)
		}
	}
	if cur != nil {
		g.Rounds = append(g.Rounds, *cur)
	}
	return g, scanner.Err()
}

func joinCards(cc []cards.Card) string {
	parts := make([]string, len(cc))
	for i, c := range cc {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}

func parseDirection(s string) round.PassDirection {
	switch s {
	case "left":
		return round.PassLeft
	case "right":
		return round.PassRight
	case "across":
		return round.PassAcross
	default:
		return round.PassHold
	}
}
