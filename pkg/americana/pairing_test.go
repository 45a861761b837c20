package americana

import (
	"padeltour-server/pkg/tournament"
	"testing"

	"github.com/stretchr/testify/assert"
)

func fourPlayers() [4]tournament.Player {
	return [4]tournament.Player{player("p0"), player("p1"), player("p2"), player("p3")}
}

func pairIDs(pairs [2]tournament.Pair) [2]string {
	return [2]string{pairs[0].ID, pairs[1].ID}
}

func TestFormNewPairs(t *testing.T) {
	players := fourPlayers()

	tests := []struct {
		name    string
		history []tournament.Pair
		expects [2]string
		forced  bool
	}{
		{
			name:    "no history",
			expects: [2]string{"p0+p1", "p2+p3"},
		},
		{
			name:    "first split repeats",
			history: []tournament.Pair{pairOf("p0", "p1")},
			expects: [2]string{"p0+p2", "p1+p3"},
		},
		{
			name:    "second pair of the first split repeats",
			history: []tournament.Pair{pairOf("p3", "p2")},
			expects: [2]string{"p0+p2", "p1+p3"},
		},
		{
			name:    "first two splits repeat",
			history: []tournament.Pair{pairOf("p0", "p1"), pairOf("p1", "p3")},
			expects: [2]string{"p0+p3", "p1+p2"},
		},
		{
			name:    "all splits repeat",
			history: []tournament.Pair{pairOf("p0", "p1"), pairOf("p0", "p2"), pairOf("p1", "p2")},
			expects: [2]string{"p0+p1", "p2+p3"},
			forced:  true,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			l := NewLedger()
			for _, p := range test.history {
				l = UpdatePartnerships(l, p)
			}

			pairs, forced := FormNewPairs(players, l, false)
			assert.Equal(t, test.expects, pairIDs(pairs))
			assert.Equal(t, test.forced, forced)
		})
	}
}

func TestFormNewPairs_fixed(t *testing.T) {
	a := assert.New(t)
	players := fourPlayers()

	l := UpdatePartnerships(NewLedger(), pairOf("p0", "p1"))
	pairs, forced := FormNewPairs(players, l, true)
	a.False(forced)
	a.Equal([2]string{"p0+p1", "p2+p3"}, pairIDs(pairs))
	a.Equal(players[0], pairs[0].Player1)
	a.Equal(players[1], pairs[0].Player2)
	a.Equal(players[2], pairs[1].Player1)
	a.Equal(players[3], pairs[1].Player2)
}
