package americana

import (
	"padeltour-server/pkg/tournament"
	"sort"
)

// CourtMatch is the match played on one court in a ladder round
type CourtMatch struct {
	CourtNumber int              `json:"courtNumber"`
	Pair1       tournament.Pair  `json:"pair1"`
	Pair2       tournament.Pair  `json:"pair2"`
	Score1      tournament.Score `json:"score1"`
	Score2      tournament.Score `json:"score2"`
	Completed   bool             `json:"completed"`
}

// HasResult returns true if both scores were entered
func (c CourtMatch) HasResult() bool {
	return c.Score1.IsSet() && c.Score2.IsSet()
}

// Result returns the winning and losing pair
// Pair one only wins with strictly more games, so a tie goes to pair two
func (c CourtMatch) Result() (winners, losers tournament.Pair, tied bool) {
	s1, s2 := c.Score1.Value(), c.Score2.Value()
	if s1 > s2 {
		return c.Pair1, c.Pair2, false
	}

	return c.Pair2, c.Pair1, s1 == s2
}

// Round is a ladder round, one match per active court
// Courts are ordered by court number, the lowest number is the bottom of the ladder
type Round struct {
	Number int          `json:"number"`
	Courts []CourtMatch `json:"courts"`
}

// Clone returns a copy of the round
func (r *Round) Clone() *Round {
	c := &Round{
		Number: r.Number,
		Courts: make([]CourtMatch, len(r.Courts)),
	}

	copy(c.Courts, r.Courts)
	return c
}

// IsComplete returns true if every court of the round is completed
func (r *Round) IsComplete() bool {
	for _, c := range r.Courts {
		if !c.Completed {
			return false
		}
	}

	return true
}

// CourtIndex returns the index of the court with the given number, or -1
func (r *Round) CourtIndex(courtNumber int) int {
	for i, c := range r.Courts {
		if c.CourtNumber == courtNumber {
			return i
		}
	}

	return -1
}

// CourtSetup is the initial assignment of two pairs to a court
type CourtSetup struct {
	CourtNumber int             `json:"courtNumber"`
	Pair1       tournament.Pair `json:"pair1"`
	Pair2       tournament.Pair `json:"pair2"`
}

// InitRound returns round one from the court setup
func InitRound(setup []CourtSetup) *Round {
	r := &Round{
		Number: 1,
		Courts: make([]CourtMatch, len(setup)),
	}

	for i, s := range setup {
		r.Courts[i] = CourtMatch{
			CourtNumber: s.CourtNumber,
			Pair1:       s.Pair1,
			Pair2:       s.Pair2,
		}
	}

	sortCourts(r.Courts)
	return r
}

func sortCourts(courts []CourtMatch) {
	sort.SliceStable(courts, func(i, j int) bool {
		return courts[i].CourtNumber < courts[j].CourtNumber
	})
}

// movement is who leaves a court after its match
// both are empty if the court has no result
type movement struct {
	winners []tournament.Player
	losers  []tournament.Player
}

func movements(courts []CourtMatch) ([]movement, []tournament.Notice) {
	var notices []tournament.Notice
	moves := make([]movement, len(courts))

	for i, c := range courts {
		if !c.HasResult() {
			notices = append(notices, tournament.NewCourtNotice(tournament.NoticeMissingResult, c.CourtNumber, "court %d has no result", c.CourtNumber))
			continue
		}

		winners, losers, tied := c.Result()
		if tied {
			notices = append(notices, tournament.NewCourtNotice(tournament.NoticeTiedCourt, c.CourtNumber, "court %d is tied %d-%d, %s advance", c.CourtNumber, c.Score1.Value(), c.Score2.Value(), winners))
		}

		moves[i] = movement{
			winners: []tournament.Player{winners.Player1, winners.Player2},
			losers:  []tournament.Player{losers.Player1, losers.Player2},
		}
	}

	return moves, notices
}

func join(a, b []tournament.Player) []tournament.Player {
	players := make([]tournament.Player, 0, len(a)+len(b))
	players = append(players, a...)
	return append(players, b...)
}

// GenerateNextRound plays the ladder forward one round
//
// Winners move up a court and losers move down: the top court keeps its winners and gains the
// winners from below, the bottom court keeps its losers and gains the losers from above, a
// middle court gets the losers from above and the winners from below. A single court keeps
// everyone. A court that cannot gather four players is dropped from the next round.
//
// The ledger is only read. Recording the new partnerships is up to the caller.
func GenerateNextRound(current *Round, ledger Ledger, fixed bool) (*Round, []tournament.Notice) {
	if current == nil {
		current = &Round{}
	}

	courts := make([]CourtMatch, len(current.Courts))
	copy(courts, current.Courts)
	sortCourts(courts)

	moves, notices := movements(courts)
	next := &Round{
		Number: current.Number + 1,
		Courts: make([]CourtMatch, 0, len(courts)),
	}

	n := len(courts)
	for i, c := range courts {
		var players []tournament.Player
		switch {
		case n == 1:
			players = join(moves[i].winners, moves[i].losers)
		case i == n-1:
			players = join(moves[i].winners, moves[i-1].winners)
		case i == 0:
			players = join(moves[i].losers, moves[i+1].losers)
		default:
			players = join(moves[i+1].losers, moves[i-1].winners)
		}

		if len(players) != 4 {
			notices = append(notices, tournament.NewCourtNotice(tournament.NoticeDroppedCourt, c.CourtNumber, "court %d has %d players for round %d", c.CourtNumber, len(players), next.Number))
			continue
		}

		pairs, forced := FormNewPairs([4]tournament.Player{players[0], players[1], players[2], players[3]}, ledger, fixed)
		if forced {
			notices = append(notices, tournament.NewCourtNotice(tournament.NoticeRepeatPartners, c.CourtNumber, "court %d repeats a partnership in round %d", c.CourtNumber, next.Number))
		}

		next.Courts = append(next.Courts, CourtMatch{
			CourtNumber: c.CourtNumber,
			Pair1:       pairs[0],
			Pair2:       pairs[1],
		})
	}

	return next, notices
}
