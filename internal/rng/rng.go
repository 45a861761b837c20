package rng

// Generator provides a simple random number
type Generator interface {
	// Intn will return a random number up to but not including n
	Intn(n int) int
}

// Shuffle randomizes the order of n elements with a Fisher-Yates shuffle
func Shuffle(g Generator, n int, swap func(i, j int)) {
	for j := n - 1; j > 0; j-- {
		i := g.Intn(j + 1)
		swap(i, j)
	}
}
