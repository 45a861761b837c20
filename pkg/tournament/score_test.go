package tournament

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseScore(t *testing.T) {
	tests := []struct {
		in    string
		set   bool
		games int
	}{
		{"", false, 0},
		{"   ", false, 0},
		{"6", true, 6},
		{" 12 ", true, 12},
		{"7abc", true, 7},
		{"abc", true, 0},
		{"-3", true, 0},
		{"-", true, 0},
		{"+8", true, 8},
		{"1000", true, MaxGames},
		{"99999999999999999999", true, MaxGames},
		{"-99999999999999999999", true, 0},
	}

	for _, test := range tests {
		s := ParseScore(test.in)
		assert.Equal(t, test.set, s.IsSet(), "%q", test.in)
		assert.Equal(t, test.games, s.Value(), "%q", test.in)
	}
}

func TestGames(t *testing.T) {
	assert.Equal(t, Games(0), Games(-5))
	assert.Equal(t, MaxGames, Games(MaxGames+1).Value())
	assert.True(t, Games(0).IsSet())
	assert.False(t, Unset().IsSet())
	assert.Equal(t, "", Unset().String())
	assert.Equal(t, "11", Games(11).String())
}

func TestScore_JSON(t *testing.T) {
	a := assert.New(t)

	m := Match{Score1: Games(6), Score2: Unset()}
	b, err := json.Marshal(struct {
		Score1 Score `json:"score1"`
		Score2 Score `json:"score2"`
	}{m.Score1, m.Score2})
	a.NoError(err)
	a.Equal(`{"score1":6,"score2":null}`, string(b))

	var decoded struct {
		A Score `json:"a"`
		B Score `json:"b"`
		C Score `json:"c"`
		D Score `json:"d"`
		E Score `json:"e"`
		F Score `json:"f"`
		G Score `json:"g"`
		H Score `json:"h"`
	}

	a.NoError(json.Unmarshal([]byte(`{"a":null,"b":4,"c":"9","d":"","e":"x","f":-1,"g":1e20,"h":"99999999999999999999"}`), &decoded))
	a.Equal(Unset(), decoded.A)
	a.Equal(Games(4), decoded.B)
	a.Equal(Games(9), decoded.C)
	a.Equal(Unset(), decoded.D)
	a.Equal(Games(0), decoded.E)
	a.Equal(Games(0), decoded.F)
	a.Equal(Games(MaxGames), decoded.G)
	a.Equal(Games(MaxGames), decoded.H)
}
