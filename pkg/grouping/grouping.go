// Package grouping folds flat, parent-sorted join rows into parent/child trees.
package grouping

// Group is a parent with the children collected from its consecutive rows.
// Children is never nil.
type Group[P, C any] struct {
	Parent   P
	Children []C
}

// GroupSorted performs a single forward pass over rows that are sorted by parent key.
// A new group starts whenever the key differs from the previous row's key; a key seen
// again after a different key therefore starts a second group, so rows must be sorted.
// The child func reports false for rows whose child columns are null, as produced by a
// LEFT JOIN with no match; those rows contribute only their parent.
func GroupSorted[R any, K comparable, P, C any](
	rows []R,
	key func(R) K,
	parent func(R) P,
	child func(R) (C, bool),
) []Group[P, C] {
	groups := make([]Group[P, C], 0)

	var (
		current    *Group[P, C]
		currentKey K
	)

	for _, row := range rows {
		rowKey := key(row)
		if current == nil || rowKey != currentKey {
			if current != nil {
				groups = append(groups, *current)
			}

			current = &Group[P, C]{Parent: parent(row), Children: make([]C, 0)}
			currentKey = rowKey
		}

		if c, ok := child(row); ok {
			current.Children = append(current.Children, c)
		}
	}

	if current != nil {
		groups = append(groups, *current)
	}

	return groups
}

// Map converts every group into a single value, typically the parent with its
// children attached.
func Map[P, C, T any](groups []Group[P, C], fn func(P, []C) T) []T {
	out := make([]T, len(groups))
	for i, g := range groups {
		out[i] = fn(g.Parent, g.Children)
	}

	return out
}
