package americana

import "padeltour-server/pkg/tournament"

// splits are the three ways to form two pairs from four players, in priority order
var splits = [3][4]int{
	{0, 1, 2, 3},
	{0, 2, 1, 3},
	{0, 3, 1, 2},
}

// FormNewPairs forms the two pairs for a court from four players
//
// With fixed partners, players 0 and 1 and players 2 and 3 stay together: the ladder
// movement keeps existing partners adjacent.
//
// Otherwise the first split in which neither pair has partnered before is used. When every
// split repeats a partnership, the first split is used and forced is true. No attempt is
// made to pick the least repeated split.
func FormNewPairs(players [4]tournament.Player, ledger Ledger, fixed bool) (pairs [2]tournament.Pair, forced bool) {
	if fixed {
		return splitPairs(players, splits[0]), false
	}

	for _, s := range splits {
		if ledger.HavePartnered(players[s[0]].ID, players[s[1]].ID) {
			continue
		}

		if ledger.HavePartnered(players[s[2]].ID, players[s[3]].ID) {
			continue
		}

		return splitPairs(players, s), false
	}

	return splitPairs(players, splits[0]), true
}

func splitPairs(players [4]tournament.Player, s [4]int) [2]tournament.Pair {
	return [2]tournament.Pair{
		tournament.NewPair(players[s[0]], players[s[1]]),
		tournament.NewPair(players[s[2]], players[s[3]]),
	}
}
