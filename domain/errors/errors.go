// Package errors provides domain-specific error types for the add-in bridge.
// All error types support error unwrapping via errors.As() and errors.Is().
//
// None of these errors cross the ABI boundary: dispatch entries collapse them
// to the host's failure value (false, null or -1) after logging.
package errors

import (
	stdErrors "errors"
	"fmt"

	"github.com/reglet-dev/addin-sdk/go/domain/entities"
)

// ErrorDetail is an alias to entities.ErrorDetail for convenience.
type ErrorDetail = entities.ErrorDetail

// ErrNoMemoryManager is returned by any operation that must hand memory to the
// host before the host has supplied its memory manager.
var ErrNoMemoryManager = stdErrors.New("host memory manager is not set")

// ErrNoConnection is returned when a host callback is used before Init.
var ErrNoConnection = stdErrors.New("host connection is not set")

// DetailedError is an interface for custom error types that can convert themselves
// to a structured ErrorDetail.
type DetailedError interface {
	error
	ToErrorDetail() *entities.ErrorDetail
}

// ToErrorDetail converts a Go error to our structured ErrorDetail.
// This function recognizes custom error types and categorizes them appropriately.
func ToErrorDetail(err error) *entities.ErrorDetail {
	if err == nil {
		return nil
	}

	var e *entities.ErrorDetail
	if stdErrors.As(err, &e) {
		return e
	}

	var de DetailedError
	if stdErrors.As(err, &de) {
		return de.ToErrorDetail()
	}

	if stdErrors.Is(err, ErrNoMemoryManager) {
		return &entities.ErrorDetail{Message: err.Error(), Type: "allocation", Code: "no_memory_manager"}
	}

	return &entities.ErrorDetail{
		Message: err.Error(),
		Type:    "internal",
	}
}

// AllocationError represents a failed request to the host memory manager.
type AllocationError struct {
	Err  error
	Size int // bytes requested
}

func (e *AllocationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("host allocation of %d bytes failed: %v", e.Size, e.Err)
	}
	return fmt.Sprintf("host allocation of %d bytes failed", e.Size)
}

func (e *AllocationError) Unwrap() error {
	return e.Err
}

// ToErrorDetail implements DetailedError.
func (e *AllocationError) ToErrorDetail() *entities.ErrorDetail {
	return &entities.ErrorDetail{Message: e.Error(), Type: "allocation", Code: "alloc_failed"}
}

// IndexError represents a property, method or parameter number outside the
// component's name tables.
type IndexError struct {
	Table string // "property", "method" or "param"
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("%s index %d out of range [0, %d)", e.Table, e.Index, e.Len)
}

// ToErrorDetail implements DetailedError.
func (e *IndexError) ToErrorDetail() *entities.ErrorDetail {
	return &entities.ErrorDetail{Message: e.Error(), Type: "index", Code: e.Table, IsNotFound: true}
}

// ConversionError represents a value of the wrong kind for a parameter or property.
type ConversionError struct {
	Target string // parameter or property description
	Want   string
	Got    entities.Kind
}

func (e *ConversionError) Error() string {
	if e.Target != "" {
		return fmt.Sprintf("cannot convert %s to %s for %s", e.Got, e.Want, e.Target)
	}
	return fmt.Sprintf("cannot convert %s to %s", e.Got, e.Want)
}

// ToErrorDetail implements DetailedError.
func (e *ConversionError) ToErrorDetail() *entities.ErrorDetail {
	return &entities.ErrorDetail{Message: e.Error(), Type: "conversion", Code: e.Got.String()}
}

// AccessError represents a read of a write-only property or a write of a
// read-only one.
type AccessError struct {
	Property string
	Op       string // "read" or "write"
}

func (e *AccessError) Error() string {
	return fmt.Sprintf("property %s does not allow %s", e.Property, e.Op)
}

// ToErrorDetail implements DetailedError.
func (e *AccessError) ToErrorDetail() *entities.ErrorDetail {
	return &entities.ErrorDetail{Message: e.Error(), Type: "access", Code: e.Op}
}

// CallError represents a failure reported by component logic for a method call.
type CallError struct {
	Err    error
	Method string
}

func (e *CallError) Error() string {
	return fmt.Sprintf("call to %s failed: %v", e.Method, e.Err)
}

func (e *CallError) Unwrap() error {
	return e.Err
}

// ToErrorDetail implements DetailedError. A classified cause keeps its type
// and is tagged with the method name.
func (e *CallError) ToErrorDetail() *entities.ErrorDetail {
	var de DetailedError
	if stdErrors.As(e.Err, &de) {
		inner := de.ToErrorDetail()
		return &entities.ErrorDetail{Message: e.Error(), Type: inner.Type, Code: e.Method, IsNotFound: inner.IsNotFound}
	}
	return &entities.ErrorDetail{Message: e.Error(), Type: "call", Code: e.Method}
}

// PanicError represents a panic recovered at a dispatch entry.
type PanicError struct {
	Value any
	Entry string
	Stack []byte
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic in %s: %v", e.Entry, e.Value)
}

// ToErrorDetail implements DetailedError.
func (e *PanicError) ToErrorDetail() *entities.ErrorDetail {
	return &entities.ErrorDetail{Message: e.Error(), Type: "panic", Code: e.Entry}
}

// DefinitionError represents an invalid declarative component definition.
type DefinitionError struct {
	Err       error
	Component string
	Field     string
}

func (e *DefinitionError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("component %s, field %s: %v", e.Component, e.Field, e.Err)
	}
	return fmt.Sprintf("component %s: %v", e.Component, e.Err)
}

func (e *DefinitionError) Unwrap() error {
	return e.Err
}

// ToErrorDetail implements DetailedError.
func (e *DefinitionError) ToErrorDetail() *entities.ErrorDetail {
	return &entities.ErrorDetail{Message: e.Error(), Type: "validation", Code: e.Field}
}

// ConfigError represents a configuration validation error.
type ConfigError struct {
	Err   error
	Field string
}

func (e *ConfigError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("config validation failed for field '%s': %v", e.Field, e.Err)
	}
	return fmt.Sprintf("config validation failed: %v", e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// ToErrorDetail implements DetailedError.
func (e *ConfigError) ToErrorDetail() *entities.ErrorDetail {
	return &entities.ErrorDetail{Message: e.Error(), Type: "config", Code: e.Field}
}
