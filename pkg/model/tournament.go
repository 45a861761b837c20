package model

import (
	"fmt"
	"padeltour-server/pkg/americana"
	"padeltour-server/pkg/tournament"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Format is how the tournament is played
type Format string

// Format constants
const (
	FormatGroups    Format = "groups"
	FormatAmericana Format = "americana"
)

// Tournament is a single event and everything played in it
// Groups are used by the groups format, Rounds and Ledger by the americana format
type Tournament struct {
	UUID          string              `json:"uuid"`
	Name          string              `json:"name"`
	Format        Format              `json:"format"`
	CourtCount    int                 `json:"courtCount"`
	FixedPartners bool                `json:"fixedPartners"`
	Groups        []*tournament.Group `json:"groups,omitempty"`
	Rounds        []*americana.Round  `json:"rounds,omitempty"`
	Ledger        americana.Ledger    `json:"ledger,omitempty"`

	// Notices are the outcome signals of the last change
	Notices []tournament.Notice `json:"notices"`

	Created time.Time `json:"created"`
	Updated time.Time `json:"updated"`
}

func newTournament(name string, format Format) *Tournament {
	now := time.Now().UTC()
	name = strings.TrimSpace(name)

	return &Tournament{
		UUID:    uuid.New().String(),
		Name:    name,
		Format:  format,
		Notices: []tournament.Notice{},
		Created: now,
		Updated: now,
	}
}

// NewGroupsTournament draws the pairs into round-robin groups
func NewGroupsTournament(name string, pairs []tournament.Pair, courtCount int) (*Tournament, error) {
	if courtCount < 1 {
		return nil, UserError("at least one court is required")
	}

	pairs, err := normalizePairs(pairs)
	if err != nil {
		return nil, err
	}

	if len(pairs) < tournament.GroupSize {
		return nil, UserError(fmt.Sprintf("at least %d pairs are required", tournament.GroupSize))
	}

	t := newTournament(name, FormatGroups)
	t.CourtCount = courtCount

	groups, notices := tournament.GenerateGroups(pairs, courtCount)
	t.Groups = groups
	t.setNotices(notices)

	return t, nil
}

// NewAmericanaTournament starts a ladder from the court setup
// The pairs of the setup are recorded as round one partnerships
func NewAmericanaTournament(name string, setup []americana.CourtSetup, fixed bool) (*Tournament, error) {
	if len(setup) == 0 {
		return nil, UserError("at least one court is required")
	}

	setup = append([]americana.CourtSetup(nil), setup...)
	pairs := make([]tournament.Pair, 0, len(setup)*2)
	courts := make(map[int]bool)
	for _, s := range setup {
		if s.CourtNumber < 1 {
			return nil, UserError("court numbers start at 1")
		}

		if courts[s.CourtNumber] {
			return nil, UserError(fmt.Sprintf("court %d is set up twice", s.CourtNumber))
		}

		courts[s.CourtNumber] = true
		pairs = append(pairs, s.Pair1, s.Pair2)
	}

	pairs, err := normalizePairs(pairs)
	if err != nil {
		return nil, err
	}

	for i := range setup {
		setup[i].Pair1 = pairs[i*2]
		setup[i].Pair2 = pairs[i*2+1]
	}

	t := newTournament(name, FormatAmericana)
	t.CourtCount = len(setup)
	t.FixedPartners = fixed

	round := americana.InitRound(setup)
	t.Rounds = []*americana.Round{round}
	t.Ledger = americana.RecordRound(americana.NewLedger(), round)

	return t, nil
}

// normalizePairs gives every player without an ID a new one and checks that nobody plays twice
// A supplied pair ID is kept, otherwise it is derived from the player IDs
func normalizePairs(pairs []tournament.Pair) ([]tournament.Pair, error) {
	normalized := make([]tournament.Pair, len(pairs))
	seen := make(map[string]bool)
	seenPairs := make(map[string]bool)

	for i, pair := range pairs {
		players := pair.Players()
		for j := range players {
			players[j].Name = strings.TrimSpace(players[j].Name)
			if players[j].Name == "" {
				return nil, UserError("every player needs a name")
			}

			if players[j].ID == "" {
				players[j].ID = uuid.New().String()
			}

			if seen[players[j].ID] {
				return nil, UserError(fmt.Sprintf("%s is in more than one pair", players[j].Name))
			}

			seen[players[j].ID] = true
		}

		pairID := strings.TrimSpace(pair.ID)
		normalized[i] = tournament.NewPair(players[0], players[1])
		if pairID != "" {
			normalized[i].ID = pairID
		}

		if seenPairs[normalized[i].ID] {
			return nil, UserError(fmt.Sprintf("pair %s is listed twice", normalized[i].ID))
		}

		seenPairs[normalized[i].ID] = true
	}

	return normalized, nil
}

func (t *Tournament) logger() logrus.FieldLogger {
	return logrus.WithFields(logrus.Fields{
		"uuid": t.UUID,
		"name": t.Name,
	})
}

func (t *Tournament) setNotices(notices []tournament.Notice) {
	log := t.logger()
	for _, n := range notices {
		log.WithField("kind", n.Kind).Warn(n.Message)
	}

	if notices == nil {
		notices = []tournament.Notice{}
	}

	t.Notices = notices
	t.Updated = time.Now().UTC()
}

func checkScores(s1, s2 tournament.Score) error {
	if s1.IsSet() != s2.IsSet() {
		return ErrPartialScore
	}

	return nil
}

// Group returns the group with the ID
func (t *Tournament) Group(groupID int) (*tournament.Group, bool) {
	for _, g := range t.Groups {
		if g.ID == groupID {
			return g, true
		}
	}

	return nil, false
}

// SetMatchScore enters or clears the score of a group match and recalculates the group standings
func (t *Tournament) SetMatchScore(groupID, matchIndex int, s1, s2 tournament.Score) error {
	if t.Format != FormatGroups {
		return ErrWrongFormat
	}

	if err := checkScores(s1, s2); err != nil {
		return err
	}

	for i, g := range t.Groups {
		if g.ID != groupID {
			continue
		}

		if matchIndex < 0 || matchIndex >= len(g.Matches) {
			return UserError(fmt.Sprintf("group %s has no match %d", g.Name, matchIndex))
		}

		g = g.Clone()
		g.Matches[matchIndex].Score1 = s1
		g.Matches[matchIndex].Score2 = s2

		recalculated, notices := tournament.RecalcGroup(g)
		t.Groups[i] = recalculated
		t.setNotices(notices)
		return nil
	}

	return UserError(fmt.Sprintf("unknown group %d", groupID))
}

// CurrentRound returns the last generated ladder round
func (t *Tournament) CurrentRound() *americana.Round {
	if len(t.Rounds) == 0 {
		return nil
	}

	return t.Rounds[len(t.Rounds)-1]
}

// SetCourtScore enters the score of a court in the current round and marks it completed
// Clearing both scores reopens the court
func (t *Tournament) SetCourtScore(courtNumber int, s1, s2 tournament.Score) error {
	if t.Format != FormatAmericana {
		return ErrWrongFormat
	}

	if err := checkScores(s1, s2); err != nil {
		return err
	}

	current := t.CurrentRound()
	if current == nil {
		return UserError("the tournament has no rounds")
	}

	i := current.CourtIndex(courtNumber)
	if i < 0 {
		return UserError(fmt.Sprintf("court %d is not played in round %d", courtNumber, current.Number))
	}

	round := current.Clone()
	round.Courts[i].Score1 = s1
	round.Courts[i].Score2 = s2
	round.Courts[i].Completed = s1.IsSet()

	t.Rounds[len(t.Rounds)-1] = round
	t.setNotices(nil)
	return nil
}

// AdvanceRound generates the next ladder round and records its partnerships
func (t *Tournament) AdvanceRound() (*americana.Round, error) {
	if t.Format != FormatAmericana {
		return nil, ErrWrongFormat
	}

	current := t.CurrentRound()
	if current == nil || len(current.Courts) == 0 {
		return nil, UserError("no courts are left to play")
	}

	if !current.IsComplete() {
		return nil, ErrRoundNotComplete
	}

	next, notices := americana.GenerateNextRound(current, t.Ledger, t.FixedPartners)
	t.Ledger = americana.RecordRound(t.Ledger, next)
	t.Rounds = append(t.Rounds, next)
	t.setNotices(notices)

	t.logger().WithFields(logrus.Fields{
		"round":  next.Number,
		"courts": len(next.Courts),
	}).Info("generated next round")

	return next, nil
}
