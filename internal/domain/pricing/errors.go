package pricing

import (
	"errors"
	"fmt"
)

// Error taxonomy of the pricing core. None of these are retryable: they
// are deterministic functions of the input data.
var (
	ErrRuleNotFound  = errors.New("pricing rule not found")
	ErrConfiguration = errors.New("pricing configuration error")
	ErrValidation    = errors.New("pricing validation error")
)

// ConfigurationError points at the rule and multiplier key an admin has
// to fix. It matches ErrConfiguration with errors.Is.
type ConfigurationError struct {
	RuleID uint
	Key    string
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("%s: rule %d: %s (%s)", ErrConfiguration, e.RuleID, e.Reason, e.Key)
}

func (e *ConfigurationError) Is(target error) bool {
	return target == ErrConfiguration
}

func validationf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}
