// Package testutil provides reusable test helper functions for signal
// generator tests.
package testutil

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

// Default tolerances for various test scenarios.
const (
	// DefaultTolerance is tight enough to catch real waveform errors while
	// absorbing float64 accumulation noise.
	DefaultTolerance = 1e-9

	// StatTolerance suits aggregate measurements such as RMS and DC offset
	// computed over finite buffers.
	StatTolerance = 1e-3
)

// AssertNoNaNOrInf verifies that no elements in the slice are NaN or Inf.
func AssertNoNaNOrInf(t *testing.T, s []float64, msgAndArgs ...any) bool {
	t.Helper()
	for i, v := range s {
		if math.IsNaN(v) {
			return assert.Fail(t, "found NaN", "s[%d] is NaN", i)
		}
		if math.IsInf(v, 0) {
			return assert.Fail(t, "found Inf", "s[%d] is Inf", i)
		}
	}
	return true
}

// AssertAllInRange verifies that all elements are within [min, max].
func AssertAllInRange(t *testing.T, s []float64, minVal, maxVal float64, msgAndArgs ...any) bool {
	t.Helper()
	for i, v := range s {
		if v < minVal || v > maxVal {
			return assert.Fail(t, "value out of range",
				"s[%d]=%f is outside range [%f, %f]", i, v, minVal, maxVal)
		}
	}
	return true
}

// AssertRelativeError verifies that the relative error between actual and
// expected is within tolerance.
func AssertRelativeError(t *testing.T, expected, actual, tolerance float64, msgAndArgs ...any) bool {
	t.Helper()
	if expected == 0 {
		return assert.InDelta(t, expected, actual, tolerance, msgAndArgs...)
	}
	relError := math.Abs(actual-expected) / math.Abs(expected)
	return assert.LessOrEqual(t, relError, tolerance,
		"relative error %e exceeds tolerance %e (expected=%f, actual=%f)",
		relError, tolerance, expected, actual)
}

// AssertBytesEqual fails with a readable diff when two byte buffers differ.
func AssertBytesEqual(t *testing.T, want, got []byte, msgAndArgs ...any) bool {
	t.Helper()
	if diff := cmp.Diff(want, got); diff != "" {
		return assert.Fail(t, "byte buffers differ", "(-want +got):\n%s", diff)
	}
	return true
}

// SineSamples computes n reference sine samples at the given frequency and
// sample rate by direct evaluation, independent of any accumulator code
// under test.
func SineSamples(frequency, sampleRate float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = math.Sin(2 * math.Pi * frequency * float64(i) / sampleRate)
	}
	return out
}

// CountZeroCrossings returns the number of sign changes in the sequence.
// A pure tone of f Hz lasting d seconds crosses zero close to 2*f*d times.
func CountZeroCrossings(s []float64) int {
	count := 0
	for i := 1; i < len(s); i++ {
		if (s[i-1] < 0) != (s[i] < 0) {
			count++
		}
	}
	return count
}
