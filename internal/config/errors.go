package config

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalid matches every configuration error returned by this package.
var ErrInvalid = errors.New("invalid configuration")

// InvalidValueError reports a configuration value that has the wrong shape or
// is outside of the allowed set.
type InvalidValueError struct {
	Field  string
	Value  interface{}
	Reason string
}

func (e *InvalidValueError) Error() string {
	return e.Reason
}

func (e *InvalidValueError) Is(target error) bool {
	return target == ErrInvalid
}

// UnknownKeyError reports configuration keys outside of the recognized set.
type UnknownKeyError struct {
	Keys    []string
	Allowed []string
}

func (e *UnknownKeyError) Error() string {
	return fmt.Sprintf("unknown '%s' configuration %s\nAvailable keys are: %s",
		strings.Join(e.Keys, ", "), pluralize("key", len(e.Keys)), strings.Join(e.Allowed, ", "))
}

func (e *UnknownKeyError) Is(target error) bool {
	return target == ErrInvalid
}

func invalid(field string, value interface{}, format string, args ...interface{}) error {
	return &InvalidValueError{Field: field, Value: value, Reason: fmt.Sprintf(format, args...)}
}

func pluralize(noun string, count int) string {
	if count == 1 {
		return noun
	}

	return noun + "s"
}
