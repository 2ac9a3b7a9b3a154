package tuple

import "fmt"

// Pair holds two values of possibly different types under semantic field
// names. The fields are public, so literal construction and in-place
// mutation through the addressable fields both work; when F and S are
// comparable the pair itself is comparable and usable as a map key.
type Pair[F, S any] struct {
	First  F
	Second S
}

func NewPair[F, S any](first F, second S) Pair[F, S] {
	return Pair[F, S]{First: first, Second: second}
}

// Unpack returns the fields in order, converting the pair back to a
// plain value tuple.
func (p Pair[F, S]) Unpack() (F, S) {
	return p.First, p.Second
}

// Swap returns a new pair with the fields (and their types) exchanged.
func (p Pair[F, S]) Swap() Pair[S, F] {
	return Pair[S, F]{First: p.Second, Second: p.First}
}

// String formats the pair as "(first, second)".
func (p Pair[F, S]) String() string {
	return fmt.Sprintf("(%v, %v)", p.First, p.Second)
}

// MapFirst transforms the first field, possibly changing its type, and
// carries the second across unchanged. Free functions rather than
// methods: a Go method cannot introduce the new result type parameter.
func MapFirst[F, S, F2 any](p Pair[F, S], f func(F) F2) Pair[F2, S] {
	return Pair[F2, S]{First: f(p.First), Second: p.Second}
}

// MapSecond transforms the second field, carrying the first across.
func MapSecond[F, S, S2 any](p Pair[F, S], f func(S) S2) Pair[F, S2] {
	return Pair[F, S2]{First: p.First, Second: f(p.Second)}
}
