package textutil

// Flatten concatenates nested slices into one slice, preserving order.
func Flatten[T any](nested [][]T) []T {
	size := 0
	for _, inner := range nested {
		size += len(inner)
	}

	flat := make([]T, 0, size)
	for _, inner := range nested {
		flat = append(flat, inner...)
	}

	return flat
}

// Deduplicate returns the distinct items in the order of their first occurrence.
func Deduplicate[T comparable](items []T) []T {
	seen := make(map[T]struct{}, len(items))
	result := make([]T, 0, len(items))

	for _, item := range items {
		if _, ok := seen[item]; ok {
			continue
		}

		seen[item] = struct{}{}

		result = append(result, item)
	}

	return result
}
