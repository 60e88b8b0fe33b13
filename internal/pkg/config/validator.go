package config

import "fmt"

// ValidatePositiveInt returns an error unless value is greater than zero.
func ValidatePositiveInt(value int) error {
	if value <= 0 {
		return fmt.Errorf("must be positive, got %d", value)
	}
	return nil
}

// ValidateIntRange returns an error unless min <= value <= max.
func ValidateIntRange(value, min, max int) error {
	if value < min || value > max {
		return fmt.Errorf("must be between %d and %d, got %d", min, max, value)
	}
	return nil
}

// IntRangeValidator adapts ValidateIntRange to the single-argument
// validator shape consumed by the loaders.
func IntRangeValidator(min, max int) func(int) error {
	return func(value int) error {
		return ValidateIntRange(value, min, max)
	}
}
