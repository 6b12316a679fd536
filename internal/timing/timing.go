// Package timing measures wall-clock duration of a single call.
package timing

import "time"

// Measure invokes fn once and returns its result with the elapsed time in seconds
func Measure[T any](fn func() T) (T, float64) {
	start := time.Now()
	result := fn()
	return result, time.Since(start).Seconds()
}

// MeasureErr is Measure for functions that can fail
func MeasureErr[T any](fn func() (T, error)) (T, float64, error) {
	start := time.Now()
	result, err := fn()
	return result, time.Since(start).Seconds(), err
}
