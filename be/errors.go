package be

import (
	"errors"
	"fmt"

	"github.com/vareng/bucketelim/order"
)

// Sentinel errors identifying the structured error kinds a Run can fail
// with (spec.md §7).
var (
	errUnsupportedModel = errors.New("be: model is a LIMID, not a standard ID")
	errBadConfig        = errors.New("be: malformed configuration")
	errOutOfMemory      = errors.New("be: factor table allocation failed")
)

// UnsupportedModelError reports that Run was given a LIMID model, which
// this engine does not support.
type UnsupportedModelError struct{}

func (UnsupportedModelError) Error() string { return errUnsupportedModel.Error() }
func (UnsupportedModelError) Unwrap() error { return errUnsupportedModel }

// BadConfigError reports a malformed configuration string or an
// unrecognized value for a known key (unknown keys are ignored).
type BadConfigError struct {
	Cause error
}

func (e BadConfigError) Error() string { return fmt.Sprintf("%s: %v", errBadConfig.Error(), e.Cause) }
func (e BadConfigError) Unwrap() error { return errors.Join(errBadConfig, e.Cause) }

// AlgebraError reports that a factor operation encountered incompatible
// scopes or an undefined division, naming the bucket variable being
// processed when the failure occurred.
type AlgebraError struct {
	Variable int
	Cause    error
}

func (e AlgebraError) Error() string {
	return fmt.Sprintf("be: algebra error eliminating variable %d: %v", e.Variable, e.Cause)
}
func (e AlgebraError) Unwrap() error { return e.Cause }

// MissingOrderError reports that the supplied partial order has no
// linear extension.
type MissingOrderError struct {
	Cause error
}

func (e MissingOrderError) Error() string { return fmt.Sprintf("be: %v", e.Cause) }
func (e MissingOrderError) Unwrap() error { return e.Cause }

// OutOfMemoryError reports a failed factor table allocation.
type OutOfMemoryError struct {
	Cause error
}

func (e OutOfMemoryError) Error() string {
	return fmt.Sprintf("%s: %v", errOutOfMemory.Error(), e.Cause)
}
func (e OutOfMemoryError) Unwrap() error { return errors.Join(errOutOfMemory, e.Cause) }

// PolicyNotFoundError reports that Result.Policy was called with a
// variable index for which no policy was recovered: either it is not a
// decision variable of the model, or its bucket held no factors.
type PolicyNotFoundError struct {
	Variable int
}

func (e PolicyNotFoundError) Error() string {
	return fmt.Sprintf("be: no policy for variable %d (not a decision variable, or its bucket was empty)", e.Variable)
}

// wrapOrderError classifies an error returned by an order.Provider into
// the engine's structured error taxonomy.
func wrapOrderError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, order.ErrMissingOrder) {
		return MissingOrderError{Cause: err}
	}
	return BadConfigError{Cause: err}
}

// wrapFactorError tags an error returned by the factor package with the
// bucket variable being processed, classifying it as an AlgebraError.
func wrapFactorError(variable int, err error) error {
	if err == nil {
		return nil
	}
	return AlgebraError{Variable: variable, Cause: err}
}
