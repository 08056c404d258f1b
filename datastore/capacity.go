package datastore

import "golang.org/x/exp/constraints"

// requirePositive panics with a message naming who, if n is not a positive
// capacity. Shared by the fixed-capacity store constructors so they all
// reject a non-positive capacity the same way, regardless of the integer
// type a caller happens to use to compute it.
func requirePositive[T constraints.Integer](who string, n T) {
	if n < 1 {
		panic("datastore: " + who + " capacity must be >= 1")
	}
}
