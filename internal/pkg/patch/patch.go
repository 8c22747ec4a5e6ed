package patch

// Coalesce dereferences ptr, or returns fallback for nil.
func Coalesce[T any](ptr *T, fallback T) T {
	if ptr != nil {
		return *ptr
	}
	return fallback
}

func Ptr[T any](v T) *T {
	return &v
}
