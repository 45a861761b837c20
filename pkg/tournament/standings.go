package tournament

import "sort"

// PointsPerWin is awarded to the side with strictly more games
const PointsPerWin = 3

// Standing is a pair's statistics within a group
type Standing struct {
	Pair
	Played    int `json:"played"`
	Won       int `json:"won"`
	Lost      int `json:"lost"`
	Points    int `json:"points"`
	GamesWon  int `json:"gamesWon"`
	GamesLost int `json:"gamesLost"`
	GamesDiff int `json:"gamesDiff"`
}

func (s *Standing) reset() {
	*s = Standing{Pair: s.Pair}
}

func (s *Standing) record(gamesFor, gamesAgainst int) {
	s.Played++
	s.GamesWon += gamesFor
	s.GamesLost += gamesAgainst

	if gamesFor > gamesAgainst {
		s.Won++
		s.Points += PointsPerWin
	} else if gamesFor < gamesAgainst {
		s.Lost++
	}

	s.GamesDiff = s.GamesWon - s.GamesLost
}

// ranksAbove orders by points, then games difference, then games won
func ranksAbove(a, b Standing) bool {
	if a.Points != b.Points {
		return a.Points > b.Points
	}

	if a.GamesDiff != b.GamesDiff {
		return a.GamesDiff > b.GamesDiff
	}

	return a.GamesWon > b.GamesWon
}

// SortStandings stable sorts the standings, best first
func SortStandings(standings []Standing) {
	sort.SliceStable(standings, func(i, j int) bool {
		return ranksAbove(standings[i], standings[j])
	})
}

// RecalcGroup derives the standings of a group from its matches
// The returned group is a copy, the input is not modified. Calling it again without new
// scores yields the same standings.
func RecalcGroup(group *Group) (*Group, []Notice) {
	g := group.Clone()

	index := make(map[string]*Standing, len(g.Pairs))
	for i := range g.Pairs {
		g.Pairs[i].reset()
		index[g.Pairs[i].ID] = &g.Pairs[i]
	}

	var notices []Notice
	for i, m := range g.Matches {
		if !m.HasResult() {
			continue
		}

		p1, p2 := index[m.Pair1.ID], index[m.Pair2.ID]
		if p1 == nil || p2 == nil {
			n := newNotice(NoticeUnknownPair, "match %d in group %s references a pair outside the group", i, g.Name)
			n.Group = g.Name
			match := i
			n.Match = &match
			notices = append(notices, n)
			continue
		}

		s1, s2 := m.Score1.Value(), m.Score2.Value()
		p1.record(s1, s2)
		p2.record(s2, s1)
	}

	SortStandings(g.Pairs)
	return g, notices
}
