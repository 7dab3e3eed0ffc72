package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrap_Format(t *testing.T) {
	base := errors.New("kind not found")
	wrapped := Wrap(base, "Registry", "Deserialize", "kind lookup")
	require.Error(t, wrapped)
	assert.Equal(t, "Registry.Deserialize: kind lookup failed: kind not found", wrapped.Error())
	assert.True(t, errors.Is(wrapped, base))
}

func TestWrap_NilPassthrough(t *testing.T) {
	assert.NoError(t, Wrap(nil, "C", "M", "a"))
	assert.NoError(t, WrapFatal(nil, "C", "M", "a"))
	assert.NoError(t, WrapDeserialization(nil, "C", "M", "a"))
	assert.NoError(t, WrapValidation(nil, "C", "M", "a"))
}

func TestClassify(t *testing.T) {
	fatal := WrapFatal(ErrParsingFailed, "Config", "Parse", "document parse")
	deser := WrapDeserialization(ErrUnknownKind, "Registry", "Deserialize", "kind lookup")
	valid := WrapValidation(ErrDuplicateName, "Builder", "Build", "appender name check")

	assert.Equal(t, ErrorFatal, Classify(fatal))
	assert.Equal(t, ErrorDeserialization, Classify(deser))
	assert.Equal(t, ErrorValidation, Classify(valid))

	assert.True(t, IsFatal(fatal))
	assert.False(t, IsFatal(deser))
	assert.True(t, IsDeserialization(deser))
	assert.True(t, IsValidation(valid))
	assert.False(t, IsValidation(deser))
}

func TestClassify_Unclassified(t *testing.T) {
	// Plain errors stay recoverable so an unknown failure never aborts a load.
	assert.Equal(t, ErrorDeserialization, Classify(errors.New("boom")))

	// Sentinel chains classify without an explicit wrapper.
	assert.Equal(t, ErrorFatal, Classify(fmt.Errorf("read: %w", ErrParsingFailed)))
	assert.Equal(t, ErrorValidation, Classify(fmt.Errorf("build: %w", ErrDuplicateName)))
}

func TestClassifiedError_Unwrap(t *testing.T) {
	base := errors.New("bad shape")
	wrapped := WrapDeserialization(base, "Registry", "Deserialize", "config decode")

	var ce *ClassifiedError
	require.True(t, errors.As(wrapped, &ce))
	assert.Equal(t, ErrorDeserialization, ce.Class)
	assert.Equal(t, "Registry", ce.Component)
	assert.True(t, errors.Is(wrapped, base))
}

func TestErrorClass_String(t *testing.T) {
	assert.Equal(t, "fatal", ErrorFatal.String())
	assert.Equal(t, "deserialization", ErrorDeserialization.String())
	assert.Equal(t, "validation", ErrorValidation.String())
	assert.Equal(t, "unknown", ErrorClass(99).String())
}
