// Package component implements the host-callable dispatch tables of an
// add-in object: init/done, language extender, locale and user language.
//
// Every entry takes the raw arguments the host passed (variant slots,
// NUL-terminated UTF-16 strings) and reports the host's failure value
// (false, nil or -1) instead of returning an error. Failures and panics
// raised by component logic are logged and never cross the boundary.
package component

import (
	"log/slog"
	"runtime/debug"

	sdkerrors "github.com/reglet-dev/addin-sdk/go/domain/errors"
	"github.com/reglet-dev/addin-sdk/go/domain/ports"
	sdklog "github.com/reglet-dev/addin-sdk/go/log"
)

// DefaultInfo is the component version reported by GetInfo.
const DefaultInfo = 2000

// Component binds one ports.AddIn to the host services of one object.
// It holds no locks: the host memory manager and connection are set once by
// the init protocol and only read afterwards.
type Component struct {
	addin  ports.AddIn
	mem    ports.Allocator
	conn   ports.Connection
	logger *slog.Logger
	host   *sdklog.HostHandler
	info   int
}

// Option configures a Component.
type Option func(*Component)

// WithLogger sets the logger used for dispatch failures.
func WithLogger(l *slog.Logger) Option {
	return func(c *Component) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithHostLog sends dispatch logs to the host connection once Init has
// received it. Records logged before Init go to the handler's fallback.
func WithHostLog(opts ...sdklog.HandlerOption) Option {
	return func(c *Component) {
		c.host = sdklog.NewHandler(opts...)
		c.logger = slog.New(c.host)
	}
}

// WithInfo overrides the version reported by GetInfo.
func WithInfo(info int) Option {
	return func(c *Component) {
		c.info = info
	}
}

// New wraps addin.
func New(addin ports.AddIn, opts ...Option) *Component {
	c := &Component{
		addin:  addin,
		logger: slog.Default(),
		info:   DefaultInfo,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// AddIn returns the wrapped component logic.
func (c *Component) AddIn() ports.AddIn { return c.addin }

// Memory returns the host memory manager, or nil before SetMemoryManager.
func (c *Component) Memory() ports.Allocator { return c.mem }

// Connection returns the host connection, or nil before Init.
func (c *Component) Connection() ports.Connection { return c.conn }

// Logger returns the logger used for dispatch failures.
func (c *Component) Logger() *slog.Logger { return c.logger }

// guard runs fn and turns an error or a panic into fail. entry names the
// dispatch slot in log records.
func guard[T any](c *Component, entry string, fail T, fn func() (T, error)) (out T) {
	defer func() {
		if r := recover(); r != nil {
			err := &sdkerrors.PanicError{Entry: entry, Value: r, Stack: debug.Stack()}
			c.logger.Error("component panicked", "entry", entry, "error", err, "stack", string(err.Stack))
			out = fail
		}
	}()

	v, err := fn()
	if err != nil {
		detail := sdkerrors.ToErrorDetail(err)
		c.logger.Warn("dispatch failed", "entry", entry, "type", detail.Type, "code", detail.Code, "error", err)
		return fail
	}
	return v
}

// run is guard for entries without a return value.
func (c *Component) run(entry string, fn func()) {
	guard(c, entry, struct{}{}, func() (struct{}, error) {
		fn()
		return struct{}{}, nil
	})
}

func indexErr(table string, num, n int) error {
	return &sdkerrors.IndexError{Table: table, Index: num, Len: n}
}

func requireMemory(mem ports.Allocator) error {
	if mem == nil {
		return sdkerrors.ErrNoMemoryManager
	}
	return nil
}
