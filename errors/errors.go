package errors

import (
	"errors"
	"fmt"
)

// ErrorClass represents the classification of errors for handling purposes
type ErrorClass int

const (
	// ErrorFatal represents unrecoverable errors that abort a configuration load
	ErrorFatal ErrorClass = iota
	// ErrorDeserialization represents errors building a single component;
	// the component is skipped, the load continues
	ErrorDeserialization
	// ErrorValidation represents structural rule violations discovered while
	// assembling the final configuration
	ErrorValidation
)

// String returns the string representation of ErrorClass
func (ec ErrorClass) String() string {
	switch ec {
	case ErrorFatal:
		return "fatal"
	case ErrorDeserialization:
		return "deserialization"
	case ErrorValidation:
		return "validation"
	default:
		return "unknown"
	}
}

// Standard error variables for common conditions
var (
	// Configuration errors
	ErrInvalidConfig = errors.New("invalid configuration")
	ErrMissingConfig = errors.New("missing required configuration")
	ErrParsingFailed = errors.New("parsing failed")

	// Registry errors
	ErrUnknownKind = errors.New("no deserializer registered for kind")

	// Builder errors
	ErrDuplicateName = errors.New("duplicate name")
)

// ClassifiedError wraps an error with its classification
type ClassifiedError struct {
	Class     ErrorClass
	Err       error
	Message   string
	Component string
	Operation string
}

// Error implements the error interface
func (ce *ClassifiedError) Error() string {
	if ce.Message != "" {
		return ce.Message
	}
	return ce.Err.Error()
}

// Unwrap returns the underlying error
func (ce *ClassifiedError) Unwrap() error {
	return ce.Err
}

// IsFatal checks if an error aborts the whole configuration load
func IsFatal(err error) bool {
	return err != nil && Classify(err) == ErrorFatal
}

// IsDeserialization checks if an error came from building a single component
func IsDeserialization(err error) bool {
	return err != nil && Classify(err) == ErrorDeserialization
}

// IsValidation checks if an error came from structural validation
func IsValidation(err error) bool {
	return err != nil && Classify(err) == ErrorValidation
}

// Classify returns the error class for an error. Unclassified errors
// default to deserialization, the recoverable class, so an unknown failure
// never aborts a load by accident.
func Classify(err error) ErrorClass {
	if err == nil {
		return ErrorDeserialization
	}
	var ce *ClassifiedError
	if errors.As(err, &ce) {
		return ce.Class
	}
	if errors.Is(err, ErrParsingFailed) {
		return ErrorFatal
	}
	if errors.Is(err, ErrDuplicateName) {
		return ErrorValidation
	}
	return ErrorDeserialization
}

// newClassified creates a new classified error
// This is an internal helper - use WrapFatal(), WrapDeserialization(), or
// WrapValidation() instead.
func newClassified(class ErrorClass, err error, component, operation, message string) *ClassifiedError {
	return &ClassifiedError{
		Class:     class,
		Err:       err,
		Message:   message,
		Component: component,
		Operation: operation,
	}
}

// Wrap creates a standardized error with context following the pattern:
// "component.method: action failed: %w"
func Wrap(err error, component, method, action string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s.%s: %s failed: %w", component, method, action, err)
}

// WrapFatal wraps an error as fatal with context
func WrapFatal(err error, component, method, action string) error {
	if err == nil {
		return nil
	}
	wrappedErr := Wrap(err, component, method, action)
	return newClassified(ErrorFatal, wrappedErr, component, method, wrappedErr.Error())
}

// WrapDeserialization wraps an error as a component deserialization failure
// with context
func WrapDeserialization(err error, component, method, action string) error {
	if err == nil {
		return nil
	}
	wrappedErr := Wrap(err, component, method, action)
	return newClassified(ErrorDeserialization, wrappedErr, component, method, wrappedErr.Error())
}

// WrapValidation wraps an error as a structural validation failure with context
func WrapValidation(err error, component, method, action string) error {
	if err == nil {
		return nil
	}
	wrappedErr := Wrap(err, component, method, action)
	return newClassified(ErrorValidation, wrappedErr, component, method, wrappedErr.Error())
}
