package tuple

// Zip pairs elements positionally; the result has the length of the
// shorter input.
func Zip[F, S any](firsts []F, seconds []S) []Pair[F, S] {
	n := len(firsts)
	if len(seconds) < n {
		n = len(seconds)
	}

	out := make([]Pair[F, S], n)
	for i := 0; i < n; i++ {
		out[i] = Pair[F, S]{First: firsts[i], Second: seconds[i]}
	}
	return out
}

// Unzip splits pairs back into two positional slices.
func Unzip[F, S any](pairs []Pair[F, S]) ([]F, []S) {
	firsts := make([]F, len(pairs))
	seconds := make([]S, len(pairs))
	for i, p := range pairs {
		firsts[i] = p.First
		seconds[i] = p.Second
	}
	return firsts, seconds
}
