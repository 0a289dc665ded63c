// Package mapper holds small generic helpers for model/entity/DTO conversion.
package mapper

import "fmt"

// MapSlice applies fn to each element. A nil input yields nil.
func MapSlice[T any, R any](items []T, fn func(T) R) []R {
	if items == nil {
		return nil
	}
	out := make([]R, 0, len(items))
	for _, item := range items {
		out = append(out, fn(item))
	}
	return out
}

// MapSliceWithError stops at the first failing element and reports its index.
func MapSliceWithError[T any, R any](items []T, fn func(T) (R, error)) ([]R, error) {
	if items == nil {
		return nil, nil
	}
	out := make([]R, 0, len(items))
	for i, item := range items {
		mapped, err := fn(item)
		if err != nil {
			return nil, fmt.Errorf("failed to map element %d: %w", i, err)
		}
		out = append(out, mapped)
	}
	return out, nil
}
