package ptr

// Of returns a pointer to a copy of v. Handy for optional fields and literals.
func Of[T any](v T) *T {
	return &v
}
