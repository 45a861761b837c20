package americana

import (
	"fmt"
	"padeltour-server/pkg/snapshot"
	"padeltour-server/pkg/tournament"
	"testing"

	"github.com/stretchr/testify/assert"
)

// ladder returns a round with n courts, court c has pairs "c{c}p1" and "c{c}p2"
func ladder(n int) *Round {
	setup := make([]CourtSetup, n)
	for i := range setup {
		c := i + 1
		setup[i] = CourtSetup{
			CourtNumber: c,
			Pair1:       pairOf(fmt.Sprintf("c%dp1a", c), fmt.Sprintf("c%dp1b", c)),
			Pair2:       pairOf(fmt.Sprintf("c%dp2a", c), fmt.Sprintf("c%dp2b", c)),
		}
	}

	return InitRound(setup)
}

func score(r *Round, courtNumber, s1, s2 int) {
	i := r.CourtIndex(courtNumber)
	r.Courts[i].Score1 = tournament.Games(s1)
	r.Courts[i].Score2 = tournament.Games(s2)
	r.Courts[i].Completed = true
}

func playerIDs(c CourtMatch) []string {
	return []string{c.Pair1.Player1.ID, c.Pair1.Player2.ID, c.Pair2.Player1.ID, c.Pair2.Player2.ID}
}

func noticeKinds(notices []tournament.Notice) []tournament.NoticeKind {
	kinds := make([]tournament.NoticeKind, len(notices))
	for i, n := range notices {
		kinds[i] = n.Kind
	}

	return kinds
}

func TestInitRound(t *testing.T) {
	a := assert.New(t)

	r := InitRound([]CourtSetup{
		{CourtNumber: 2, Pair1: pairOf("a", "b"), Pair2: pairOf("c", "d")},
		{CourtNumber: 1, Pair1: pairOf("e", "f"), Pair2: pairOf("g", "h")},
	})

	a.Equal(1, r.Number)
	a.Equal(2, len(r.Courts))
	a.Equal(1, r.Courts[0].CourtNumber)
	a.Equal(2, r.Courts[1].CourtNumber)
	for _, c := range r.Courts {
		a.False(c.Completed)
		a.False(c.HasResult())
	}

	a.False(r.IsComplete())
	a.Equal(-1, r.CourtIndex(3))
}

func TestCourtMatch_Result(t *testing.T) {
	a := assert.New(t)
	c := CourtMatch{Pair1: pairOf("a", "b"), Pair2: pairOf("c", "d")}

	c.Score1, c.Score2 = tournament.Games(6), tournament.Games(3)
	w, l, tied := c.Result()
	a.Equal(c.Pair1, w)
	a.Equal(c.Pair2, l)
	a.False(tied)

	c.Score1, c.Score2 = tournament.Games(3), tournament.Games(6)
	w, l, tied = c.Result()
	a.Equal(c.Pair2, w)
	a.Equal(c.Pair1, l)
	a.False(tied)

	c.Score1, c.Score2 = tournament.Games(5), tournament.Games(5)
	w, l, tied = c.Result()
	a.Equal(c.Pair2, w)
	a.Equal(c.Pair1, l)
	a.True(tied)
}

func TestGenerateNextRound_threeCourts(t *testing.T) {
	a := assert.New(t)

	r1 := ladder(3)
	l := RecordRound(nil, r1)
	score(r1, 1, 12, 6)
	score(r1, 2, 9, 11)
	score(r1, 3, 12, 10)

	r2, notices := GenerateNextRound(r1, l, false)
	a.Nil(notices)
	a.Equal(2, r2.Number)
	a.Equal(3, len(r2.Courts))

	// bottom: court 1 losers and court 2 losers
	c1 := r2.Courts[0]
	a.Equal(1, c1.CourtNumber)
	a.ElementsMatch([]string{"c1p2a", "c1p2b", "c2p1a", "c2p1b"}, playerIDs(c1))
	a.Equal("c1p2a+c2p1a", c1.Pair1.ID)
	a.Equal("c1p2b+c2p1b", c1.Pair2.ID)

	// middle: court 3 losers and court 1 winners
	c2 := r2.Courts[1]
	a.Equal(2, c2.CourtNumber)
	a.ElementsMatch([]string{"c3p2a", "c3p2b", "c1p1a", "c1p1b"}, playerIDs(c2))
	a.Equal("c1p1a+c3p2a", c2.Pair1.ID)
	a.Equal("c1p1b+c3p2b", c2.Pair2.ID)

	// top: court 3 winners and court 2 winners
	c3 := r2.Courts[2]
	a.Equal(3, c3.CourtNumber)
	a.ElementsMatch([]string{"c3p1a", "c3p1b", "c2p2a", "c2p2b"}, playerIDs(c3))
	a.Equal("c2p2a+c3p1a", c3.Pair1.ID)
	a.Equal("c2p2b+c3p1b", c3.Pair2.ID)

	for _, c := range r2.Courts {
		a.False(c.Completed)
		a.False(c.Score1.IsSet())
		a.False(c.Score2.IsSet())
	}
}

func TestGenerateNextRound_fixedPartners(t *testing.T) {
	a := assert.New(t)

	r1 := ladder(3)
	l := RecordRound(nil, r1)
	score(r1, 1, 12, 6)
	score(r1, 2, 9, 11)
	score(r1, 3, 12, 10)

	r2, notices := GenerateNextRound(r1, l, true)
	a.Nil(notices)

	a.Equal(r1.Courts[0].Pair2, r2.Courts[0].Pair1)
	a.Equal(r1.Courts[1].Pair1, r2.Courts[0].Pair2)
	a.Equal(r1.Courts[2].Pair2, r2.Courts[1].Pair1)
	a.Equal(r1.Courts[0].Pair1, r2.Courts[1].Pair2)
	a.Equal(r1.Courts[2].Pair1, r2.Courts[2].Pair1)
	a.Equal(r1.Courts[1].Pair2, r2.Courts[2].Pair2)
}

func TestGenerateNextRound_singleCourt(t *testing.T) {
	a := assert.New(t)

	r1 := ladder(1)
	l := RecordRound(nil, r1)
	score(r1, 1, 3, 6)

	r2, notices := GenerateNextRound(r1, l, false)
	a.Nil(notices)
	if a.Equal(1, len(r2.Courts)) {
		a.Equal(1, r2.Courts[0].CourtNumber)
		a.Equal("c1p1a+c1p2a", r2.Courts[0].Pair1.ID)
		a.Equal("c1p1b+c1p2b", r2.Courts[0].Pair2.ID)
	}

	l = RecordRound(l, r2)
	score(r2, 1, 6, 2)
	r3, notices := GenerateNextRound(r2, l, false)
	a.Nil(notices)
	if a.Equal(1, len(r3.Courts)) {
		a.Equal("c1p1b+c1p2a", r3.Courts[0].Pair1.ID)
		a.Equal("c1p1a+c1p2b", r3.Courts[0].Pair2.ID)
	}

	// every split has been played
	l = RecordRound(l, r3)
	score(r3, 1, 6, 4)
	r4, notices := GenerateNextRound(r3, l, false)
	a.Equal([]tournament.NoticeKind{tournament.NoticeRepeatPartners}, noticeKinds(notices))
	a.Equal(1, len(r4.Courts))
}

func TestGenerateNextRound_missingResult(t *testing.T) {
	a := assert.New(t)

	r1 := ladder(2)
	score(r1, 1, 6, 4)

	r2, notices := GenerateNextRound(r1, RecordRound(nil, r1), false)
	a.Equal(0, len(r2.Courts), "both courts depend on court 2")
	a.Equal([]tournament.NoticeKind{
		tournament.NoticeMissingResult,
		tournament.NoticeDroppedCourt,
		tournament.NoticeDroppedCourt,
	}, noticeKinds(notices))
	a.Equal(2, notices[0].Court)
	a.Equal(1, notices[1].Court)
	a.Equal(2, notices[2].Court)

	r1 = ladder(1)
	r2, notices = GenerateNextRound(r1, nil, false)
	a.Equal(0, len(r2.Courts))
	a.Equal([]tournament.NoticeKind{tournament.NoticeMissingResult, tournament.NoticeDroppedCourt}, noticeKinds(notices))
}

func TestGenerateNextRound_missingMiddleResult(t *testing.T) {
	a := assert.New(t)

	r1 := ladder(3)
	score(r1, 1, 6, 4)
	score(r1, 3, 6, 4)

	r2, _ := GenerateNextRound(r1, RecordRound(nil, r1), false)
	if a.Equal(1, len(r2.Courts)) {
		// court 2 draws from courts 1 and 3
		a.Equal(2, r2.Courts[0].CourtNumber)
	}
}

func TestGenerateNextRound_tie(t *testing.T) {
	a := assert.New(t)

	r1 := ladder(2)
	score(r1, 1, 5, 5)
	score(r1, 2, 6, 1)

	r2, notices := GenerateNextRound(r1, RecordRound(nil, r1), false)
	a.Equal([]tournament.NoticeKind{tournament.NoticeTiedCourt}, noticeKinds(notices))
	a.Equal(1, notices[0].Court)

	// pair 2 of court 1 advances on a tie
	a.ElementsMatch([]string{"c1p1a", "c1p1b", "c2p2a", "c2p2b"}, playerIDs(r2.Courts[0]))
	a.ElementsMatch([]string{"c2p1a", "c2p1b", "c1p2a", "c1p2b"}, playerIDs(r2.Courts[1]))
}

func TestGenerateNextRound_doesNotAlias(t *testing.T) {
	a := assert.New(t)

	r1 := ladder(3)
	score(r1, 1, 6, 1)
	score(r1, 2, 6, 2)
	score(r1, 3, 6, 3)

	// out of order on purpose
	r1.Courts[0], r1.Courts[2] = r1.Courts[2], r1.Courts[0]
	before := r1.Clone()
	l := RecordRound(nil, r1)
	ledgerBefore := l.Clone()

	r2, _ := GenerateNextRound(r1, l, false)
	a.Equal(before, r1)
	a.Equal(ledgerBefore, l)
	a.Equal([]int{1, 2, 3}, []int{r2.Courts[0].CourtNumber, r2.Courts[1].CourtNumber, r2.Courts[2].CourtNumber})

	r2.Courts[0].Score1 = tournament.Games(6)
	a.Equal(before, r1)
}

func TestGenerateNextRound_nil(t *testing.T) {
	r, notices := GenerateNextRound(nil, nil, false)
	assert.Equal(t, 1, r.Number)
	assert.Equal(t, 0, len(r.Courts))
	assert.Nil(t, notices)
}

func TestGenerateNextRound_everyoneKeepsPlaying(t *testing.T) {
	a := assert.New(t)

	r := ladder(5)
	l := RecordRound(nil, r)
	for round := 1; round <= 8; round++ {
		for i, c := range r.Courts {
			// alternate which side wins
			if (round+i)%2 == 0 {
				score(r, c.CourtNumber, 6, 2)
			} else {
				score(r, c.CourtNumber, 3, 6)
			}
		}

		next, notices := GenerateNextRound(r, l, false)
		for _, n := range notices {
			a.Equal(tournament.NoticeRepeatPartners, n.Kind)
		}

		a.Equal(round+1, next.Number)
		a.Equal(5, len(next.Courts))

		seen := make(map[string]bool)
		for _, c := range next.Courts {
			for _, id := range playerIDs(c) {
				a.False(seen[id], "%s plays twice in round %d", id, next.Number)
				seen[id] = true
			}
		}
		a.Equal(20, len(seen))

		l = RecordRound(l, next)
		r = next
	}
}

func TestGenerateNextRound_snapshot(t *testing.T) {
	r := ladder(4)
	l := RecordRound(nil, r)
	for round := 1; round <= 4; round++ {
		for _, c := range r.Courts {
			score(r, c.CourtNumber, 6, c.CourtNumber+round%3)
		}

		var notices []tournament.Notice
		r, notices = GenerateNextRound(r, l, false)
		l = RecordRound(l, r)

		snapshot.Validate(t, struct {
			Round   *Round              `json:"round"`
			Notices []tournament.Notice `json:"notices"`
		}{r, notices})
	}
}
