package oops

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWrapsAndRecordsCaller(t *testing.T) {
	cause := errors.New("connection reset")
	err := New(cause, "charge with key %s", "abc")

	assert.Equal(t, "charge with key abc: connection reset", err.Error())
	assert.ErrorIs(t, err, cause)

	var traced *Error
	require.True(t, errors.As(err, &traced))
	require.NotEmpty(t, traced.Stack)
	assert.True(t, strings.HasSuffix(traced.Stack[0].Function, "TestNewWrapsAndRecordsCaller"), traced.Stack[0].Function)
}

func TestStackMarshalerFindsWrappedError(t *testing.T) {
	inner := New(nil, "row disappeared")
	outer := fmt.Errorf("activate: %w", inner)

	stack, ok := ZerologStackMarshaler(outer).(CallStack)
	require.True(t, ok)
	assert.NotEmpty(t, stack)
	assert.Nil(t, ZerologStackMarshaler(errors.New("plain")))
}
