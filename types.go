package sdk

import (
	"github.com/reglet-dev/addin-sdk/go/application/addin"
	"github.com/reglet-dev/addin-sdk/go/domain/entities"
	"github.com/reglet-dev/addin-sdk/go/domain/ports"
)

// Component is embedded in a component struct to declare its extension name.
type Component = addin.Component

// Method declares a host-callable method on a component struct.
type Method = addin.Method

// Value is a value exchanged with the host.
type Value = entities.Value

// Date is a calendar date and time as the host represents it.
type Date = entities.Date

// UTF16 is a host string kept in its native encoding.
type UTF16 = entities.UTF16

// Optional is a method parameter the caller may omit.
type Optional[T any] = entities.Optional[T]

// Connection is the host callback interface handed to Init.
type Connection = ports.Connection

// ErrorDetail is re-exported for callers inspecting failures.
// Error Types: "allocation", "index", "conversion", "access", "call", "panic", "validation", "config", "internal"
type ErrorDetail = entities.ErrorDetail
