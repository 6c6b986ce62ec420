// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package slice complements the standard [slices] package with the functional
helpers (Map, Filter, Reduce) the catalog traversal queries are written with.

Every helper returns a fresh slice; the input is never aliased, so callers can
hand the result out of a critical section safely.
*/
package slice

// Map maps a slice of type T to a slice of type U using the provided transformation function.
func Map[T any, U any](input []T, transform func(T) U) []U {
	result := make([]U, len(input))
	for i, v := range input {
		result[i] = transform(v)
	}

	return result
}

// Filter returns the elements of input, in order, for which predicate is true.
// The result is empty, never nil, when nothing matches.
func Filter[T any](input []T, predicate func(T) bool) []T {

	// Not pre-allocating to full length to avoid excessive memory on heavy filters
	result := []T{}
	for _, v := range input {
		if predicate(v) {
			result = append(result, v)
		}
	}

	return result
}

// Reduce reduces a slice into a single accumulated result using the reducer function.
func Reduce[T any, U any](input []T, initial U, reducer func(accumulator U, current T) U) U {
	result := initial
	for _, v := range input {
		result = reducer(result, v)
	}
	return result
}
