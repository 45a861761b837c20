package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"
	"padeltour-server/internal/rng"
	"padeltour-server/internal/util"
	"padeltour-server/pkg/americana"
	"padeltour-server/pkg/model"
	"padeltour-server/pkg/tournament"
	"text/tabwriter"
	"time"

	"gopkg.in/yaml.v2"
)

// scenario describes a ladder to play with random scores
type scenario struct {
	Name          string          `yaml:"name"`
	FixedPartners bool            `yaml:"fixedPartners"`
	Rounds        int             `yaml:"rounds"`
	Seed          int64           `yaml:"seed"`
	Courts        []scenarioCourt `yaml:"courts"`
}

type scenarioCourt struct {
	Number int       `yaml:"number"`
	Pair1  [2]string `yaml:"pair1"`
	Pair2  [2]string `yaml:"pair2"`
}

func loadScenario(path string) (*scenario, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var sc scenario
	if err := yaml.NewDecoder(file).Decode(&sc); err != nil {
		return nil, err
	}

	if sc.Rounds < 1 {
		return nil, errors.New("rounds must be at least 1")
	}

	return &sc, nil
}

func scenarioPair(names [2]string) tournament.Pair {
	return tournament.Pair{
		Player1: tournament.Player{Name: names[0]},
		Player2: tournament.Player{Name: names[1]},
	}
}

// simulate plays the scenario's rounds, stopping early when no court is left
func simulate(sc *scenario) (*model.Tournament, error) {
	setup := make([]americana.CourtSetup, len(sc.Courts))
	for i, c := range sc.Courts {
		setup[i] = americana.CourtSetup{
			CourtNumber: c.Number,
			Pair1:       scenarioPair(c.Pair1),
			Pair2:       scenarioPair(c.Pair2),
		}
	}

	name := sc.Name
	if name == "" {
		name = util.GetRandomName()
	}

	t, err := model.NewAmericanaTournament(name, setup, sc.FixedPartners)
	if err != nil {
		return nil, err
	}

	seed := sc.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	gen := rand.New(rand.NewSource(seed))
	for r := 1; r <= sc.Rounds; r++ {
		for _, c := range t.CurrentRound().Courts {
			s1, s2 := randomScore(gen)
			if err := t.SetCourtScore(c.CourtNumber, s1, s2); err != nil {
				return nil, err
			}
		}

		if r == sc.Rounds {
			break
		}

		next, err := t.AdvanceRound()
		if err != nil {
			return nil, err
		}

		if len(next.Courts) == 0 {
			break
		}
	}

	return t, nil
}

// randomScore returns a set won 6 games to 0-4 by a random side
func randomScore(gen rng.Generator) (tournament.Score, tournament.Score) {
	winner, loser := tournament.Games(6), tournament.Games(gen.Intn(5))
	if gen.Intn(2) == 0 {
		return winner, loser
	}

	return loser, winner
}

func printTable(w io.Writer, t *model.Tournament) {
	tw := tabwriter.NewWriter(w, 0, 0, 1, ' ', 0)
	for _, round := range t.Rounds {
		_, _ = fmt.Fprintf(tw, "Round %d\t\t\t\n", round.Number)
		for _, c := range round.Courts {
			_, _ = fmt.Fprintf(tw, "Court %d\t%s\t%s-%s\t%s\n", c.CourtNumber, c.Pair1, c.Score1, c.Score2, c.Pair2)
		}
	}

	_, _ = fmt.Fprintln(tw, "\t\t\t")
	_, _ = fmt.Fprintln(tw, "Player\tWon\tLost\tDiff")
	for _, p := range t.Standings().Players {
		_, _ = fmt.Fprintf(tw, "%s\t%d\t%d\t%+d\n", p.Name, p.Won, p.Lost, p.GamesDiff)
	}

	for _, n := range t.Notices {
		_, _ = fmt.Fprintf(tw, "notice: %s\t\t\t\n", n)
	}

	_ = tw.Flush()
}

func printJSON(w io.Writer, t *model.Tournament) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(struct {
		Tournament *model.Tournament `json:"tournament"`
		Standings  *model.Standings  `json:"standings"`
	}{t, t.Standings()})
}
