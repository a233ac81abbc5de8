package models

// optional unwraps a nullable column so an unset value serializes as nil
// rather than as a typed nil pointer.
func optional[T any](v *T) any {
	if v == nil {
		return nil
	}
	return *v
}

// Ptr is a helper for filling the optional columns of a profile.
func Ptr[T any](v T) *T {
	return &v
}
