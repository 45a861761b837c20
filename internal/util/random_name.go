package util

import (
	"fmt"
	"math/rand"
	"time"
)

var adjectives = []string{
	"Fast", "Slow", "Quick", "Speedy", "Gracious", "Happy", "Sunny", "Windy", "Golden", "Silver", "Grand",
	"Ultimate", "Prime", "Midnight", "Morning", "Friday", "Monday", "Spring", "Autumn", "Winter", "Summer",
	"Bouncing", "Flying", "Charging", "Sliding", "Spinning",
}

var shots = []string{
	"Smash", "Bandeja", "Vibora", "Lob", "Volley", "Chiquita", "Bajada", "Rulo", "Dejada", "Globo",
	"Remate", "Contrapared", "Salida", "Drive", "Reves",
}

var kinds = []string{"Open", "Cup", "Classic", "Masters", "Challenge", "Trophy"}

var random = rand.New(rand.NewSource(time.Now().UnixNano())) // nolint:gosec

// GetRandomName returns a random tournament name by combining an adjective, a padel shot and an event kind
func GetRandomName() string {
	adjective := adjectives[random.Intn(len(adjectives))]
	shot := shots[random.Intn(len(shots))]
	kind := kinds[random.Intn(len(kinds))]

	return fmt.Sprintf("%s %s %s", adjective, shot, kind)
}
