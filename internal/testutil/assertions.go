// Package testutil provides test doubles for the host side of the ABI and
// common assertions for SDK tests.
package testutil

import (
	"encoding/json"
	"fmt"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reglet-dev/addin-sdk/go/domain/entities"
)

// AssertValueEqual asserts that two values hold the same variant and payload.
func AssertValueEqual(t *testing.T, expected, actual entities.Value, msgAndArgs ...any) bool {
	t.Helper()
	if expected.Equal(actual) {
		return true
	}
	return assert.Fail(t, fmt.Sprintf("Not equal:\n expected: %v\n actual  : %v", expected, actual), msgAndArgs...)
}

// RequireValueEqual is the fatal form of AssertValueEqual.
func RequireValueEqual(t *testing.T, expected, actual entities.Value, msgAndArgs ...any) {
	t.Helper()
	if !expected.Equal(actual) {
		require.Fail(t, fmt.Sprintf("Not equal:\n expected: %v\n actual  : %v", expected, actual), msgAndArgs...)
	}
}

// AssertParams asserts that params holds exactly the expected values.
func AssertParams(t *testing.T, expected []entities.Value, params *entities.Params) {
	t.Helper()
	require.Equal(t, len(expected), params.Len(), "parameter count")
	for i, want := range expected {
		assert.Truef(t, want.Equal(params.Get(i)), "param %d: expected %v, got %v", i, want, params.Get(i))
	}
}

// CString reads a NUL-terminated UTF-16 string from memory returned by the
// bridge (for example a property name) as a Go string.
func CString(t *testing.T, p unsafe.Pointer) string {
	t.Helper()
	require.NotNil(t, p, "expected a string pointer")
	var units []uint16
	for i := 0; ; i++ {
		u := *(*uint16)(unsafe.Add(p, i*2))
		if u == 0 {
			break
		}
		units = append(units, u)
	}
	return entities.UTF16(units).String()
}

// CStringPtr returns a NUL-terminated copy of s kept alive by the returned
// slice, for passing names into dispatch entries.
func CStringPtr(s string) (unsafe.Pointer, []uint16) {
	units := append(entities.NewUTF16(s), 0)
	return unsafe.Pointer(&units[0]), units
}

// AssertJSONEqual compares two JSON strings for equality, ignoring formatting
func AssertJSONEqual(t *testing.T, expected, actual string, msgAndArgs ...interface{}) {
	t.Helper()

	var expectedJSON, actualJSON interface{}
	require.NoError(t, json.Unmarshal([]byte(expected), &expectedJSON), "expected JSON is invalid")
	require.NoError(t, json.Unmarshal([]byte(actual), &actualJSON), "actual JSON is invalid")

	assert.Equal(t, expectedJSON, actualJSON, msgAndArgs...)
}
