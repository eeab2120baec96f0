package utils

func FindIndex[T comparable](slice []T, item T) int {
	for i, v := range slice {
		if v == item {
			return i
		}
	}
	return -1
}

// Remove deletes the first occurrence of item, keeping the order of the rest.
// The returned slice shares the backing array of the input.
func Remove[T comparable](slice []T, item T) ([]T, bool) {
	i := FindIndex(slice, item)
	if i < 0 {
		return slice, false
	}
	return append(slice[:i], slice[i+1:]...), true
}

// CountFunc returns how many elements satisfy f.
func CountFunc[T any](slice []T, f func(T) bool) int {
	n := 0
	for _, v := range slice {
		if f(v) {
			n++
		}
	}
	return n
}
