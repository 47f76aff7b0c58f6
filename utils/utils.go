// Package utils contains the utility packages
package utils

// Ptr is a function that is used to get a pointer to a copy of the given value
func Ptr[T any](v T) *T {
	return &v
}
