// Package errors provides standardized error handling for configuration
// loading and component deserialization.
//
// # Overview
//
// The package implements a three-class error classification system:
// Fatal (the input document could not be parsed at all, abort the load),
// Deserialization (a named component kind failed to build, skip that
// component), and Validation (the assembled configuration violates a
// structural rule, such as a duplicate name).
//
// Only Fatal errors terminate a configuration load. Deserialization and
// Validation errors are accumulated and returned alongside the best-effort
// configuration, so callers decide whether to treat them as fatal.
//
// # Usage
//
//	if err := build(cfg); err != nil {
//	    return errors.WrapDeserialization(err, "Registry", "Deserialize", "factory build")
//	}
//
// Classification is checked with errors.IsFatal, errors.IsDeserialization,
// and errors.IsValidation, which unwrap through standard error chains.
package errors
