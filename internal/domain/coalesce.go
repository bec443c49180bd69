package domain

// FirstSet returns the value behind the first non-nil pointer, or fallback.
// Optional fields in settings files resolve through it, most specific first.
func FirstSet[T any](fallback T, ptrs ...*T) T {
	for _, p := range ptrs {
		if p != nil {
			return *p
		}
	}
	return fallback
}
