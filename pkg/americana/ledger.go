package americana

import (
	"padeltour-server/pkg/tournament"
	"sort"
)

// Ledger maps a player ID to the IDs of every partner that player has had
// Entries are symmetric and only ever grow
type Ledger map[string][]string

// NewLedger returns an empty ledger
func NewLedger() Ledger {
	return make(Ledger)
}

// HavePartnered returns true if the two players were paired before
func (l Ledger) HavePartnered(a, b string) bool {
	for _, id := range l[a] {
		if id == b {
			return true
		}
	}

	return false
}

// Partners returns a sorted copy of the player's partners
func (l Ledger) Partners(playerID string) []string {
	partners := make([]string, len(l[playerID]))
	copy(partners, l[playerID])
	sort.Strings(partners)
	return partners
}

// Clone returns a copy of the ledger
// Partner slices are shared, add replaces a slice rather than appending to it
func (l Ledger) Clone() Ledger {
	c := make(Ledger, len(l))
	for id, partners := range l {
		c[id] = partners
	}

	return c
}

// UpdatePartnerships returns a ledger where both players of the pair list each other
// The input ledger is not modified and no partner is listed twice
func UpdatePartnerships(ledger Ledger, pair tournament.Pair) Ledger {
	next := ledger.Clone()
	next.addPair(pair)
	return next
}

func (l Ledger) addPair(pair tournament.Pair) {
	a, b := pair.Player1.ID, pair.Player2.ID
	if a == b {
		return
	}

	l.add(a, b)
	l.add(b, a)
}

// add must only be called on a ledger owned by the caller
func (l Ledger) add(playerID, partnerID string) {
	if l.HavePartnered(playerID, partnerID) {
		return
	}

	partners := make([]string, len(l[playerID]), len(l[playerID])+1)
	copy(partners, l[playerID])
	l[playerID] = append(partners, partnerID)
}

// RecordRound returns a ledger that includes every pair playing in the round
func RecordRound(ledger Ledger, round *Round) Ledger {
	next := ledger.Clone()
	if round == nil {
		return next
	}

	for _, c := range round.Courts {
		next.addPair(c.Pair1)
		next.addPair(c.Pair2)
	}

	return next
}
