package tournament

import "fmt"

// GroupSize is the number of pairs in a round-robin group
const GroupSize = 4

// MatchesPerGroup is the number of matches in a full group
const MatchesPerGroup = 6

// Court is a playing court
type Court struct {
	Number int    `json:"number"`
	Name   string `json:"name"`
}

// Match is a single group match
// Round, pairs and court are fixed when the group is generated, only the scores change
type Match struct {
	Round  int   `json:"round"`
	Pair1  Pair  `json:"pair1"`
	Pair2  Pair  `json:"pair2"`
	Court  Court `json:"court"`
	Score1 Score `json:"score1"`
	Score2 Score `json:"score2"`
}

// HasResult returns true if both scores were entered
func (m Match) HasResult() bool {
	return m.Score1.IsSet() && m.Score2.IsSet()
}

// Group is a four-pair round-robin bracket
type Group struct {
	ID      int        `json:"id"`
	Name    string     `json:"name"`
	Pairs   []Standing `json:"pairs"`
	Matches []Match    `json:"matches"`
}

// Clone returns a deep copy of the group
func (g *Group) Clone() *Group {
	c := &Group{
		ID:      g.ID,
		Name:    g.Name,
		Pairs:   make([]Standing, len(g.Pairs)),
		Matches: make([]Match, len(g.Matches)),
	}

	copy(c.Pairs, g.Pairs)
	copy(c.Matches, g.Matches)
	return c
}

// IsComplete returns true if the group has matches and all of them have a result
func (g *Group) IsComplete() bool {
	if len(g.Matches) == 0 {
		return false
	}

	for _, m := range g.Matches {
		if !m.HasResult() {
			return false
		}
	}

	return true
}

// slot is a match position in the round-robin table
type slot struct {
	a, b  int
	court int
}

// every pair meets every other pair once, two matches run concurrently per round
var roundRobin = [MatchesPerGroup]slot{
	{0, 1, 0}, {2, 3, 1},
	{0, 2, 0}, {1, 3, 1},
	{0, 3, 0}, {1, 2, 1},
}

// NewCourts returns n courts named "Court 1", "Court 2", ...
func NewCourts(n int) []Court {
	if n < 0 {
		n = 0
	}

	courts := make([]Court, n)
	for i := range courts {
		courts[i] = Court{
			Number: i + 1,
			Name:   fmt.Sprintf("Court %d", i+1),
		}
	}

	return courts
}

// GroupName returns the display name for the group index: A, B, C...
func GroupName(index int) string {
	return string(rune('A' + index))
}

// GenerateGroups splits the pairs into groups of four, in input order, and schedules the
// round robin of every full group on the first two courts
// A final group with fewer than four pairs gets no matches and a NoticeShortGroup
func GenerateGroups(pairs []Pair, courtCount int) ([]*Group, []Notice) {
	courts := NewCourts(courtCount)

	// with no courts, matches are left unassigned
	var c1, c2 Court
	if len(courts) > 0 {
		c1 = courts[0]
		c2 = c1
	}

	if len(courts) > 1 {
		c2 = courts[1]
	}

	nGroups := (len(pairs) + GroupSize - 1) / GroupSize
	groups := make([]*Group, 0, nGroups)
	var notices []Notice

	for i := 0; i < nGroups; i++ {
		end := (i + 1) * GroupSize
		if end > len(pairs) {
			end = len(pairs)
		}

		chunk := pairs[i*GroupSize : end]
		g := &Group{
			ID:      i,
			Name:    GroupName(i),
			Pairs:   make([]Standing, len(chunk)),
			Matches: make([]Match, 0, MatchesPerGroup),
		}

		for j, pair := range chunk {
			g.Pairs[j] = Standing{Pair: pair}
		}

		if len(chunk) != GroupSize {
			n := newNotice(NoticeShortGroup, "group %s has %d pairs, no matches scheduled", g.Name, len(chunk))
			n.Group = g.Name
			notices = append(notices, n)
			groups = append(groups, g)
			continue
		}

		for r, s := range roundRobin {
			court := c1
			if s.court == 1 {
				court = c2
			}

			g.Matches = append(g.Matches, Match{
				Round: r/2 + 1,
				Pair1: chunk[s.a],
				Pair2: chunk[s.b],
				Court: court,
			})
		}

		groups = append(groups, g)
	}

	return groups, notices
}
