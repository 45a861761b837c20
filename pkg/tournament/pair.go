package tournament

import "fmt"

// Player is a participant supplied by the profile store
// The tournament engine only uses the ID for equality and ledger keys
type Player struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Pair is two players competing as one unit
// Player1 and Player2 are in display order only, use HasSamePlayers for equality
type Pair struct {
	ID      string `json:"id"`
	Player1 Player `json:"player1"`
	Player2 Player `json:"player2"`
}

// NewPair returns a pair whose ID is derived from the sorted player IDs
func NewPair(player1, player2 Player) Pair {
	return Pair{
		ID:      PairKey(player1.ID, player2.ID),
		Player1: player1,
		Player2: player2,
	}
}

// PairKey returns an order-independent key for two player IDs
func PairKey(a, b string) string {
	if b < a {
		a, b = b, a
	}

	return a + "+" + b
}

// HasSamePlayers returns true if both pairs consist of the same two players
func (p Pair) HasSamePlayers(other Pair) bool {
	return PairKey(p.Player1.ID, p.Player2.ID) == PairKey(other.Player1.ID, other.Player2.ID)
}

// Includes returns true if the player is one half of the pair
func (p Pair) Includes(playerID string) bool {
	return p.Player1.ID == playerID || p.Player2.ID == playerID
}

// Players returns both players in display order
func (p Pair) Players() [2]Player {
	return [2]Player{p.Player1, p.Player2}
}

func (p Pair) String() string {
	return fmt.Sprintf("%s / %s", p.Player1.Name, p.Player2.Name)
}
