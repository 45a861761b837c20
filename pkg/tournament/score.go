package tournament

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// Score is the number of games one side won in a match
// The zero value is an unset score (the match has not been played)
type Score struct {
	games int
	set   bool
}

// Unset returns a score that has not been entered yet
func Unset() Score {
	return Score{}
}

// MaxGames is the highest score a side can be given
const MaxGames = 999

// Games returns a score of n games
// Negative values are treated as zero, values above MaxGames as MaxGames
func Games(n int) Score {
	if n < 0 {
		n = 0
	} else if n > MaxGames {
		n = MaxGames
	}

	return Score{games: n, set: true}
}

// ParseScore parses user input
// An empty string is unset, anything that does not start with a number is zero games
func ParseScore(s string) Score {
	s = strings.TrimSpace(s)
	if s == "" {
		return Unset()
	}

	negative := false
	if s[0] == '-' || s[0] == '+' {
		negative = s[0] == '-'
		s = s[1:]
	}

	n := 0
	for i := 0; i < len(s) && s[i] >= '0' && s[i] <= '9'; i++ {
		if n <= MaxGames {
			n = n*10 + int(s[i]-'0')
		}
	}

	if negative {
		return Games(0)
	}

	return Games(n)
}

// IsSet returns true if a result was entered
func (s Score) IsSet() bool {
	return s.set
}

// Value returns the number of games, zero if unset
func (s Score) Value() int {
	return s.games
}

func (s Score) String() string {
	if !s.set {
		return ""
	}

	return strconv.Itoa(s.games)
}

// MarshalJSON encodes an unset score as null
func (s Score) MarshalJSON() ([]byte, error) {
	if !s.set {
		return []byte("null"), nil
	}

	return []byte(strconv.Itoa(s.games)), nil
}

// UnmarshalJSON accepts null, a number, or a string
func (s *Score) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*s = Unset()
		return nil
	}

	if b[0] == '"' {
		var str string
		if err := json.Unmarshal(b, &str); err != nil {
			return err
		}

		*s = ParseScore(str)
		return nil
	}

	f, err := strconv.ParseFloat(string(b), 64)
	if err != nil {
		*s = Games(0)
		return nil
	}

	switch {
	case f > MaxGames:
		*s = Games(MaxGames)
	case f < 0:
		*s = Games(0)
	default:
		*s = Games(int(f))
	}

	return nil
}
