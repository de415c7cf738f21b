// Command play is an interactive Hearts shell: a human at seat 0 against
// three engine-driven seats, with settings, analysis and self-play modes.
package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/hearts-mc/engine/pkg/cards"
	"github.com/hearts-mc/engine/pkg/cli"
	"github.com/hearts-mc/engine/pkg/driver"
	"github.com/hearts-mc/engine/pkg/engine"
	"github.com/hearts-mc/engine/pkg/round"
	"github.com/hearts-mc/engine/pkg/rules"
)

type settings struct {
	config     engine.Config
	configPath string
}

func defaultSettings() settings {
	return settings{config: engine.DefaultConfig(), configPath: "engine.json"}
}

func main() {
	reader := cli.NewReader()
	st := defaultSettings()
	if c, err := engine.LoadConfig(st.configPath); err == nil {
		st.config = c
	}

	cli.PrintHeader("Hearts Engine")
	for {
		fmt.Println("[0] settings  [1] play  [2] analyze  [3] self-play demo  [4] quit")
		choice, err := reader.ReadInt("mode: ")
		if err != nil {
			continue
		}
		switch choice {
		case 0:
			settingsMenu(reader, &st)
		case 1:
			playMode(reader, st)
		case 2:
			analyzeMode(reader, st)
		case 3:
			selfPlayMode(st)
		case 4:
			return
		default:
			fmt.Println("unknown mode")
		}
	}
}

func settingsMenu(reader *cli.Reader, st *settings) {
	cli.PrintSubHeader("settings")
	fmt.Printf("  n_samples=%d  rejection_budget=%d  workers=%d\n",
		st.config.NSamples, st.config.RejectionBudget, st.config.Workers)
	if n, err := reader.ReadInt("n_samples (blank to keep): "); err == nil {
		st.config.NSamples = n
	}
	if n, err := reader.ReadInt("workers (blank to keep): "); err == nil {
		st.config.Workers = n
	}
	if err := engine.SaveConfig(st.config, st.configPath); err != nil {
		fmt.Println("could not save settings:", err)
	}
}

// playMode seats a human at seat 0 against three engine opponents and runs
// a single round to completion.
func playMode(reader *cli.Reader, st settings) {
	cli.PrintSubHeader("play")
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	engines := make([]*engine.Engine, 4)
	for seat := 1; seat < 4; seat++ {
		engines[seat] = engine.New(seat, st.config, rand.New(rand.NewSource(rng.Int63())))
	}

	hands, err := cards.Deal(rng, 4)
	if err != nil {
		fmt.Println("deal failed:", err)
		return
	}
	var arr [4]cards.Hand
	copy(arr[:], hands)
	for seat := 1; seat < 4; seat++ {
		engines[seat].InitializeBeliefs(arr[seat], nil)
	}

	leader := 0
	for seat, h := range arr {
		if h.Has(cards.TwoOfClubs) {
			leader = seat
		}
	}
	rs := &round.State{Hands: arr, Current: round.Trick{Leader: leader}}
	cli.PrintHand(rs.Hands[0])

	for len(rs.TricksTaken) < 13 {
		for len(rs.Current.Plays) < 4 {
			seat := rs.NextSeat()
			var card cards.Card
			if seat == 0 {
				card = humanTurn(reader, rs)
			} else {
				c, err := engines[seat].PlayCard(rs)
				if err != nil {
					fmt.Println("engine error:", err)
					return
				}
				card = c
			}
			rs.Hands[seat] = rs.Hands[seat].Remove(card)
			rs.Current.Plays = append(rs.Current.Plays, round.Play{Player: seat, Card: card})
			if card.Suit == cards.Hearts {
				rs.HeartsBroken = true
			}
			for s := 1; s < 4; s++ {
				engines[s].ObserveCardPlayed(seat, card)
			}
			fmt.Printf("  seat%d plays %s\n", seat, card)
		}
		cli.PrintTrick(rs.Current)
		for s := 1; s < 4; s++ {
			engines[s].ObserveTrickComplete(rs.Current)
		}
		winner, err := rules.TrickWinner(rs.Current)
		if err != nil {
			fmt.Println("trick resolution error:", err)
			return
		}
		rs.TricksTaken = append(rs.TricksTaken, rs.Current)
		rs.Current = round.Trick{Leader: winner}
	}

	fmt.Println("round complete")
}

func humanTurn(reader *cli.Reader, rs *round.State) cards.Card {
	for {
		s := reader.ReadLine("your move (or 'hand'/'moves'): ")
		switch s {
		case "hand":
			cli.PrintHand(rs.Hands[0])
			continue
		case "moves":
			legal, err := rules.LegalMoves(rs.Hands[0], rs.Current, rs.HeartsBroken, rs.IsFirstTrick())
			if err != nil {
				legal = rs.Hands[0].Cards()
			}
			cli.PrintMoveOptions(legal)
			continue
		}
		c, err := cards.ParseCard(s)
		if err != nil || !rs.Hands[0].Has(c) {
			fmt.Println("not a card in your hand, try again")
			continue
		}
		return c
	}
}

// engineObserver folds driver events into every engine's belief state so
// self-play seats see each other's plays without the driver needing to
// know anything about belief tracking.
type engineObserver struct {
	engines []*engine.Engine
}

func (o *engineObserver) OnPass(fromSeat int, dir round.PassDirection, cc []cards.Card) {
	for _, e := range o.engines {
		if e.Beliefs != nil {
			e.ObservePass(fromSeat, dir, cc)
		}
	}
}

func (o *engineObserver) OnCardPlayed(seat int, c cards.Card) {
	for _, e := range o.engines {
		if e.Beliefs != nil {
			e.ObserveCardPlayed(seat, c)
		}
	}
}

func (o *engineObserver) OnTrickComplete(t round.Trick) {
	for _, e := range o.engines {
		if e.Beliefs != nil {
			e.ObserveTrickComplete(t)
		}
	}
}

func analyzeMode(reader *cli.Reader, st settings) {
	cli.PrintSubHeader("analyze")
	path := reader.ReadLine("log file path: ")
	log, err := cli.LoadLog(path)
	if err != nil {
		fmt.Println("could not load log:", err)
		return
	}
	fmt.Printf("log has %d rounds\n", len(log.Rounds))
}

func selfPlayMode(st settings) {
	cli.PrintSubHeader("self-play demo")
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	engines := make([]*engine.Engine, 4)
	for seat := 0; seat < 4; seat++ {
		engines[seat] = engine.New(seat, st.config, rand.New(rand.NewSource(rng.Int63())))
	}

	players := [4]driver.PlayerFunc{}
	for seat := 0; seat < 4; seat++ {
		e := engines[seat]
		players[seat] = func(s int, hand cards.Hand, rs *round.State) cards.Card {
			if e.Beliefs == nil {
				// First call of the round for this seat: hand is still the
				// full post-pass deal, since nothing has been played yet.
				e.InitializeBeliefs(hand, nil)
			}
			card, err := e.PlayCard(rs)
			if err != nil {
				return hand.Cards()[0]
			}
			return card
		}
	}

	obs := &engineObserver{engines: engines}
	g := driver.NewGame(players, [4]driver.PassFunc{}, [4]driver.Observer{obs, obs, obs, obs}, rng)
	scores, err := g.PlayRound()
	if err != nil {
		fmt.Println("self-play round failed:", err)
		os.Exit(1)
	}
	cli.PrintScores([4]int{scores[0], scores[1], scores[2], scores[3]})
}
