package collections

import (
	"cmp"
	"slices"
)

type Set[V comparable] map[V]struct{}

// Add an element to the set
func (set Set[V]) Add(value V) {
	set[value] = struct{}{}
}

// Remove an element from the set (or no-op if element not present)
func (set Set[V]) Remove(value V) {
	delete(set, value)
}

// Contains returns whether the element exists within the set
func (set Set[V]) Contains(value V) bool {
	_, contains := set[value]
	return contains
}

// Toggle adds the element if absent and removes it if present, returning
// whether it is now in the set
func (set Set[V]) Toggle(value V) bool {
	if set.Contains(value) {
		set.Remove(value)
		return false
	}
	set.Add(value)
	return true
}

// Sorted returns the elements of an ordered set in ascending order
func Sorted[V cmp.Ordered](set Set[V]) []V {
	values := make([]V, 0, len(set))
	for value := range set {
		values = append(values, value)
	}
	slices.Sort(values)
	return values
}
