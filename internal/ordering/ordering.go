// Package ordering keeps display orders a dense 0..N-1 permutation.
package ordering

import "fmt"

// Item is anything carrying a display order.
type Item interface {
	Order() int
	SetOrder(int)
}

// Reindex assigns order = index to every item and returns the items whose
// order actually changed.
func Reindex[T Item](items []T) []T {
	var changed []T
	for i, it := range items {
		if it.Order() != i {
			it.SetOrder(i)
			changed = append(changed, it)
		}
	}
	return changed
}

// Dense reports whether the orders are exactly {0..N-1}.
func Dense[T Item](items []T) bool {
	seen := make([]bool, len(items))
	for _, it := range items {
		o := it.Order()
		if o < 0 || o >= len(items) || seen[o] {
			return false
		}
		seen[o] = true
	}
	return true
}

// Remove drops the element at index i, preserving the order of the rest.
func Remove[T any](items []T, i int) []T {
	if i < 0 || i >= len(items) {
		return items
	}
	out := make([]T, 0, len(items)-1)
	out = append(out, items[:i]...)
	return append(out, items[i+1:]...)
}

// Move relocates the element at from to position to (drag-and-drop style
// reinsertion). Out of range positions are clamped.
func Move[T any](items []T, from, to int) []T {
	if from < 0 || from >= len(items) {
		return items
	}
	if to < 0 {
		to = 0
	}
	if to >= len(items) {
		to = len(items) - 1
	}
	out := make([]T, len(items))
	copy(out, items)
	if from == to {
		return out
	}
	moved := out[from]
	if from < to {
		copy(out[from:to], out[from+1:to+1])
	} else {
		copy(out[to+1:from+1], out[to:from])
	}
	out[to] = moved
	return out
}

// Permutation arranges items to follow ids, which must name every item
// exactly once.
func Permutation[T any](items []T, ids []string, idOf func(T) string) ([]T, error) {
	if len(ids) != len(items) {
		return nil, fmt.Errorf("reorder expects %d ids, got %d", len(items), len(ids))
	}
	byID := make(map[string]T, len(items))
	for _, it := range items {
		byID[idOf(it)] = it
	}
	out := make([]T, 0, len(ids))
	used := make(map[string]bool, len(ids))
	for _, id := range ids {
		it, ok := byID[id]
		if !ok {
			return nil, fmt.Errorf("reorder: unknown id %q", id)
		}
		if used[id] {
			return nil, fmt.Errorf("reorder: duplicate id %q", id)
		}
		used[id] = true
		out = append(out, it)
	}
	return out, nil
}
