package models

// Append returns a new list with v added at the end. list is never written to.
func Append[T any](list []T, v T) []T {
	out := make([]T, len(list), len(list)+1)
	copy(out, list)
	return append(out, v)
}

// RemoveAt returns a new list without the element at i, keeping the relative
// order of the rest. Out of range indexes return a copy of list.
func RemoveAt[T any](list []T, i int) []T {
	out := make([]T, 0, len(list))
	for j, v := range list {
		if j != i {
			out = append(out, v)
		}
	}
	return out
}

// SetAt returns a copy of list with the element at i replaced by v.
// Out of range indexes leave the list unchanged.
func SetAt[T any](list []T, i int, v T) []T {
	out := make([]T, len(list))
	copy(out, list)
	if i >= 0 && i < len(out) {
		out[i] = v
	}
	return out
}
