package utils

func PtrTo[T any](v T) *T {
	return &v
}

// ValueOr returns the pointed-to value, or fallback when p is nil.
func ValueOr[T any](p *T, fallback T) T {
	if p == nil {
		return fallback
	}

	return *p
}

// NonNil returns s, or an empty slice when s is nil, so that it encodes as [] instead of null.
func NonNil[T any](s []T) []T {
	if s == nil {
		return make([]T, 0)
	}

	return s
}
