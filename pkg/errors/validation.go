package errors

import "math"

// MaxCount is the largest item count accepted from user input.
const MaxCount = 10000

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

// ValidateDimensions accepts any finite, non-negative container size. Zero
// is valid and yields an empty layout.
func ValidateDimensions(width, height float64) error {
	if !finite(width) || !finite(height) {
		return New(ErrCodeInvalidDimensions, "container dimensions must be finite")
	}
	if width < 0 || height < 0 {
		return New(ErrCodeInvalidDimensions, "container dimensions cannot be negative (got %gx%g)", width, height)
	}
	return nil
}

// ValidateCount accepts counts in [0, MaxCount].
func ValidateCount(n int) error {
	switch {
	case n < 0:
		return New(ErrCodeInvalidCount, "item count cannot be negative (got %d)", n)
	case n > MaxCount:
		return New(ErrCodeInvalidCount, "item count %d is above the limit of %d", n, MaxCount)
	}
	return nil
}

// ValidateInset accepts a finite, non-negative margin or padding.
func ValidateInset(name string, v float64) error {
	if !finite(v) || v < 0 {
		return New(ErrCodeInvalidInput, "%s must be a non-negative number (got %g)", name, v)
	}
	return nil
}
