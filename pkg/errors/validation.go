package errors

import (
	"math"
	"slices"
	"strings"
)

// ValidateFinite rejects NaN and infinite values.
func ValidateFinite(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Config("%s must be a finite number, got %v", name, v)
	}
	return nil
}

// ValidatePositive rejects values that are not finite and strictly positive.
func ValidatePositive(name string, v float64) error {
	if err := ValidateFinite(name, v); err != nil {
		return err
	}
	if v <= 0 {
		return Config("%s must be positive, got %g", name, v)
	}
	return nil
}

// ValidateSumTo checks that values add up to want within a relative tolerance.
// Each value must be finite and non-negative; an empty slice is rejected.
func ValidateSumTo(name string, values []float64, want, relTol float64) error {
	if len(values) == 0 {
		return Config("%s cannot be empty", name)
	}
	var sum float64
	for i, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return Config("%s[%d] must be a finite number, got %v", name, i, v)
		}
		if v < 0 {
			return Config("%s[%d] must not be negative, got %g", name, i, v)
		}
		sum += v
	}
	if math.Abs(sum-want) > relTol*math.Abs(want) {
		return Config("%s sum to %g, want %g", name, sum, want)
	}
	return nil
}

// ValidateChoice checks that value is one of the allowed names. The code
// selects the error category (e.g. [ErrCodeInvalidFormat]).
func ValidateChoice(code Code, kind, value string, allowed []string) error {
	if slices.Contains(allowed, value) {
		return nil
	}
	return New(code, "invalid %s: %q (must be one of %s)", kind, value, strings.Join(allowed, ", "))
}

// ValidateOutputPath validates a user supplied output path.
//
// Validation rules:
//   - Path cannot be empty
//   - No null bytes or control characters
func ValidateOutputPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "output path cannot be empty")
	}
	for _, r := range path {
		if r == '\x00' || r < 0x20 || r == 0x7f {
			return New(ErrCodeInvalidPath, "output path contains invalid characters")
		}
	}
	return nil
}
