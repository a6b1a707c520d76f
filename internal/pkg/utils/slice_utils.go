package utils

// LastN returns the trailing n elements of items, or all of them when shorter.
func LastN[T any](items []T, n int) []T {
	if n <= 0 {
		return []T{}
	}
	if len(items) <= n {
		return items
	}
	return items[len(items)-n:]
}
