package tuple

import "fmt"

// Triple generalizes Pair to three named fields.
type Triple[F, S, T any] struct {
	First  F
	Second S
	Third  T
}

func NewTriple[F, S, T any](first F, second S, third T) Triple[F, S, T] {
	return Triple[F, S, T]{First: first, Second: second, Third: third}
}

// Unpack returns the fields in order.
func (t Triple[F, S, T]) Unpack() (F, S, T) {
	return t.First, t.Second, t.Third
}

// String formats the triple as "(first, second, third)".
func (t Triple[F, S, T]) String() string {
	return fmt.Sprintf("(%v, %v, %v)", t.First, t.Second, t.Third)
}

// MapFirst3 transforms the first field of a triple, carrying the other
// two across unchanged.
func MapFirst3[F, S, T, F2 any](t Triple[F, S, T], f func(F) F2) Triple[F2, S, T] {
	return Triple[F2, S, T]{First: f(t.First), Second: t.Second, Third: t.Third}
}

// MapSecond3 transforms the second field of a triple.
func MapSecond3[F, S, T, S2 any](t Triple[F, S, T], f func(S) S2) Triple[F, S2, T] {
	return Triple[F, S2, T]{First: t.First, Second: f(t.Second), Third: t.Third}
}

// MapThird3 transforms the third field of a triple.
func MapThird3[F, S, T, T2 any](t Triple[F, S, T], f func(T) T2) Triple[F, S, T2] {
	return Triple[F, S, T2]{First: t.First, Second: t.Second, Third: f(t.Third)}
}
