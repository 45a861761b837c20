package model

import (
	"padeltour-server/pkg/tournament"
	"sort"
)

// GroupStandings is the ranking of one group
type GroupStandings struct {
	ID       int                   `json:"id"`
	Name     string                `json:"name"`
	Complete bool                  `json:"complete"`
	Pairs    []tournament.Standing `json:"pairs"`
}

// PlayerStanding is the ladder tally of one player
type PlayerStanding struct {
	tournament.Player
	Played    int `json:"played"`
	Won       int `json:"won"`
	Lost      int `json:"lost"`
	Points    int `json:"points"`
	GamesWon  int `json:"gamesWon"`
	GamesLost int `json:"gamesLost"`
	GamesDiff int `json:"gamesDiff"`
}

// Standings is the leaderboard of a tournament
type Standings struct {
	UUID    string           `json:"uuid"`
	Format  Format           `json:"format"`
	Groups  []GroupStandings `json:"groups,omitempty"`
	Players []PlayerStanding `json:"players,omitempty"`
}

// Standings returns the current leaderboard
func (t *Tournament) Standings() *Standings {
	s := &Standings{
		UUID:   t.UUID,
		Format: t.Format,
	}

	switch t.Format {
	case FormatGroups:
		s.Groups = make([]GroupStandings, len(t.Groups))
		for i, g := range t.Groups {
			pairs := make([]tournament.Standing, len(g.Pairs))
			copy(pairs, g.Pairs)

			s.Groups[i] = GroupStandings{
				ID:       g.ID,
				Name:     g.Name,
				Complete: g.IsComplete(),
				Pairs:    pairs,
			}
		}
	case FormatAmericana:
		s.Players = t.playerStandings()
	}

	return s
}

func (t *Tournament) playerStandings() []PlayerStanding {
	index := make(map[string]int)
	players := make([]PlayerStanding, 0)

	get := func(p tournament.Player) *PlayerStanding {
		i, ok := index[p.ID]
		if !ok {
			i = len(players)
			index[p.ID] = i
			players = append(players, PlayerStanding{Player: p})
		}

		return &players[i]
	}

	for _, r := range t.Rounds {
		for _, c := range r.Courts {
			// everyone on the court is listed, scored or not
			for _, pair := range []tournament.Pair{c.Pair1, c.Pair2} {
				get(pair.Player1)
				get(pair.Player2)
			}

			if !c.Completed || !c.HasResult() {
				continue
			}

			s1, s2 := c.Score1.Value(), c.Score2.Value()
			for _, p := range c.Pair1.Players() {
				get(p).record(s1, s2)
			}

			for _, p := range c.Pair2.Players() {
				get(p).record(s2, s1)
			}
		}
	}

	sort.SliceStable(players, func(i, j int) bool {
		a, b := players[i], players[j]
		if a.Points != b.Points {
			return a.Points > b.Points
		}

		if a.GamesDiff != b.GamesDiff {
			return a.GamesDiff > b.GamesDiff
		}

		if a.GamesWon != b.GamesWon {
			return a.GamesWon > b.GamesWon
		}

		return a.Name < b.Name
	})

	return players
}

func (p *PlayerStanding) record(gamesFor, gamesAgainst int) {
	p.Played++
	p.GamesWon += gamesFor
	p.GamesLost += gamesAgainst
	p.GamesDiff = p.GamesWon - p.GamesLost

	switch {
	case gamesFor > gamesAgainst:
		p.Won++
		p.Points += tournament.PointsPerWin
	case gamesFor < gamesAgainst:
		p.Lost++
	}
}
