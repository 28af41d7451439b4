package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reglet-dev/addin-sdk/go/domain/entities"
)

func TestAllocationError(t *testing.T) {
	baseErr := fmt.Errorf("out of memory")
	err := &AllocationError{Size: 128, Err: baseErr}

	assert.Equal(t, "host allocation of 128 bytes failed: out of memory", err.Error())
	assert.True(t, errors.Is(err, baseErr))

	detail := err.ToErrorDetail()
	assert.Equal(t, "allocation", detail.Type)
	assert.Equal(t, "alloc_failed", detail.Code)
}

func TestAllocationError_NoCause(t *testing.T) {
	err := &AllocationError{Size: 4}
	assert.Equal(t, "host allocation of 4 bytes failed", err.Error())
	assert.Nil(t, err.Unwrap())
}

func TestIndexError(t *testing.T) {
	err := &IndexError{Table: "method", Index: 7, Len: 3}

	assert.Equal(t, "method index 7 out of range [0, 3)", err.Error())

	detail := err.ToErrorDetail()
	assert.Equal(t, "index", detail.Type)
	assert.True(t, detail.IsNotFound)
}

func TestConversionError(t *testing.T) {
	tests := []struct {
		name string
		err  *ConversionError
		want string
	}{
		{
			name: "with target",
			err:  &ConversionError{Target: "param 1 of Add", Want: "int32", Got: entities.KindString},
			want: "cannot convert string to int32 for param 1 of Add",
		},
		{
			name: "without target",
			err:  &ConversionError{Want: "bool", Got: entities.KindEmpty},
			want: "cannot convert empty to bool",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
			assert.Equal(t, "conversion", tt.err.ToErrorDetail().Type)
		})
	}
}

func TestCallError_Detail(t *testing.T) {
	tests := []struct {
		name         string
		cause        error
		wantType     string
		wantNotFound bool
	}{
		{name: "plain cause", cause: errors.New("boom"), wantType: "call"},
		{name: "conversion cause", cause: &ConversionError{Want: "int32", Got: entities.KindBlob}, wantType: "conversion"},
		{name: "index cause", cause: fmt.Errorf("param: %w", &IndexError{Table: "param", Index: 4, Len: 2}), wantType: "index", wantNotFound: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := &CallError{Method: "Add", Err: tt.cause}
			require.ErrorIs(t, err, tt.cause)

			detail := err.ToErrorDetail()
			assert.Equal(t, tt.wantType, detail.Type)
			assert.Equal(t, "Add", detail.Code)
			assert.Equal(t, tt.wantNotFound, detail.IsNotFound)
			assert.Equal(t, err.Error(), detail.Message)
		})
	}
}

func TestErrorDetail_Error(t *testing.T) {
	assert.Equal(t, "index: out of range [method]", entities.NewErrorDetail("index", "out of range").WithCode("method").Error())
	assert.Equal(t, "boom", entities.NewErrorDetail("internal", "boom").Error())
	assert.Empty(t, (*entities.ErrorDetail)(nil).Error())
}

func TestToErrorDetail(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantType string
		wantCode string
	}{
		{name: "nil", err: nil},
		{name: "plain", err: errors.New("x"), wantType: "internal"},
		{name: "no memory manager", err: fmt.Errorf("get prop: %w", ErrNoMemoryManager), wantType: "allocation", wantCode: "no_memory_manager"},
		{name: "wrapped access", err: fmt.Errorf("set: %w", &AccessError{Property: "Total", Op: "write"}), wantType: "access", wantCode: "write"},
		{name: "panic", err: &PanicError{Entry: "CallAsFunc", Value: "bad"}, wantType: "panic", wantCode: "CallAsFunc"},
		{name: "detail passthrough", err: entities.NewErrorDetail("call", "x").WithCode("c"), wantType: "call", wantCode: "c"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			detail := ToErrorDetail(tt.err)
			if tt.err == nil {
				assert.Nil(t, detail)
				return
			}
			require.NotNil(t, detail)
			assert.Equal(t, tt.wantType, detail.Type)
			assert.Equal(t, tt.wantCode, detail.Code)
		})
	}
}

func TestDefinitionError(t *testing.T) {
	base := errors.New("duplicate name")
	err := &DefinitionError{Component: "Calc", Field: "Add", Err: base}

	assert.Equal(t, "component Calc, field Add: duplicate name", err.Error())
	assert.ErrorIs(t, err, base)
	assert.Equal(t, "component Calc: duplicate name", (&DefinitionError{Component: "Calc", Err: base}).Error())
}

func TestConfigError(t *testing.T) {
	err := &ConfigError{Field: "log.level", Err: errors.New("unknown level")}
	assert.Equal(t, "config validation failed for field 'log.level': unknown level", err.Error())
	assert.Equal(t, "config", err.ToErrorDetail().Type)
}
