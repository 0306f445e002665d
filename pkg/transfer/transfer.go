// Package transfer implements position-addressed reordering of one list and
// moving an element between two lists. All functions return fresh slices and
// never modify their arguments. Indices must be within bounds, otherwise the
// functions panic.
package transfer

import (
	"fmt"
	"slices"
)

// Reorder removes the element at from and reinserts it at to.
func Reorder[T any](list []T, from, to int) []T {
	checkIndex("from", from, len(list))
	checkIndex("to", to, len(list))

	result := slices.Clone(list)
	if from == to {
		return result
	}

	item := result[from]
	result = slices.Delete(result, from, from+1)

	return slices.Insert(result, to, item)
}

// Move removes the element at from in source and inserts it at to in destination.
// to may be equal to len(destination), which appends.
func Move[T any](source, destination []T, from, to int) ([]T, []T) {
	checkIndex("from", from, len(source))
	checkIndex("to", to, len(destination)+1)

	item := source[from]

	src := slices.Delete(slices.Clone(source), from, from+1)
	dst := slices.Insert(slices.Clone(destination), to, item)

	return src, dst
}

// InBounds reports whether index addresses an existing element of a list of the given length.
func InBounds(index, length int) bool {
	return index >= 0 && index < length
}

func checkIndex(name string, index, length int) {
	if !InBounds(index, length) {
		panic(fmt.Sprintf("transfer: %s index %d out of range [0, %d)", name, index, length))
	}
}
