// Package log provides structured logging (slog) routed to the host's error
// log through the connection the host passes to Init.
package log

import (
	"context"
	"log/slog"
	"os"
	"slices"
	"strings"
	"sync"

	"github.com/reglet-dev/addin-sdk/go/domain/entities"
	"github.com/reglet-dev/addin-sdk/go/domain/ports"
)

// HostHandler implements slog.Handler by sending every record to the host
// with Connection.AddError. Without a connection, records go to a fallback
// handler.
type HostHandler struct {
	opts     *handlerConfig
	fallback slog.Handler
	attrs    []slog.Attr
	groups   []string
}

// HandlerOption configures the HostHandler.
type HandlerOption func(*handlerConfig)

type handlerConfig struct {
	mu        sync.RWMutex
	conn      ports.Connection
	fallback  slog.Handler
	source    entities.UTF16
	level     slog.Leveler
	addSource bool
}

// defaultHandlerConfig returns the default configuration.
func defaultHandlerConfig() *handlerConfig {
	return &handlerConfig{
		level:  slog.LevelInfo,
		source: entities.NewUTF16("AddIn"),
	}
}

// WithLevel sets the minimum log level to report.
func WithLevel(level slog.Leveler) HandlerOption {
	return func(c *handlerConfig) {
		c.level = level
	}
}

// WithSource enables reporting of source location (file/line).
func WithSource(enabled bool) HandlerOption {
	return func(c *handlerConfig) {
		c.addSource = enabled
	}
}

// WithConnection routes records to conn.
func WithConnection(conn ports.Connection) HandlerOption {
	return func(c *handlerConfig) {
		c.conn = conn
	}
}

// WithFallback sets the handler used while no connection is attached.
// The default writes text to stderr.
func WithFallback(h slog.Handler) HandlerOption {
	return func(c *handlerConfig) {
		c.fallback = h
	}
}

// WithMessageSource sets the source string shown by the host next to each message.
func WithMessageSource(source string) HandlerOption {
	return func(c *handlerConfig) {
		c.source = entities.NewUTF16(source)
	}
}

// NewHandler creates a new HostHandler with the given options.
func NewHandler(opts ...HandlerOption) *HostHandler {
	cfg := defaultHandlerConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.fallback == nil {
		cfg.fallback = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level:     cfg.level,
			AddSource: cfg.addSource,
		})
	}
	return &HostHandler{opts: cfg, fallback: cfg.fallback}
}

// Attach routes records to conn from now on, for this handler and every
// handler derived from it. A nil conn switches back to the fallback.
func (h *HostHandler) Attach(conn ports.Connection) {
	h.opts.mu.Lock()
	defer h.opts.mu.Unlock()
	h.opts.conn = conn
}

func (h *HostHandler) connection() ports.Connection {
	h.opts.mu.RLock()
	defer h.opts.mu.RUnlock()
	return h.opts.conn
}

// Enabled reports whether the handler handles records at the given level.
func (h *HostHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.opts.level.Level()
}

// Handle formats the record and passes it to the host. The scode argument
// of AddError is always 0: a non-zero value makes the host raise an
// exception in the calling script.
func (h *HostHandler) Handle(ctx context.Context, record slog.Record) error {
	conn := h.connection()
	if conn == nil {
		return h.fallback.Handle(ctx, record)
	}

	conn.AddError(MessageCode(record.Level), h.opts.source, entities.NewUTF16(h.format(record)), 0)
	return nil
}

// format renders the record as "message key=value ..." on one line.
func (h *HostHandler) format(record slog.Record) string {
	var b strings.Builder
	b.WriteString(record.Message)

	for _, attr := range h.attrs {
		writeAttr(&b, "", attr)
	}
	prefix := strings.Join(h.groups, ".")
	record.Attrs(func(attr slog.Attr) bool {
		writeAttr(&b, prefix, attr)
		return true
	})

	if h.opts.addSource {
		if src := record.Source(); src != nil && src.File != "" {
			writeAttr(&b, "", slog.Any(slog.SourceKey, src))
		}
	}
	return b.String()
}

// WithAttrs returns a new HostHandler that includes the given attributes.
func (h *HostHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	prefix := strings.Join(h.groups, ".")
	nh := *h
	nh.fallback = h.fallback.WithAttrs(attrs)
	nh.attrs = slices.Clip(h.attrs)
	for _, a := range attrs {
		if prefix != "" {
			a.Key = prefix + "." + a.Key
		}
		nh.attrs = append(nh.attrs, a)
	}
	return &nh
}

// WithGroup returns a new HostHandler with the given group name.
func (h *HostHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	nh := *h
	nh.fallback = h.fallback.WithGroup(name)
	nh.groups = append(slices.Clip(h.groups), name)
	return &nh
}

// MessageCode maps a log level to the host message code used by AddError.
func MessageCode(level slog.Level) ports.MessageCode {
	switch {
	case level >= slog.LevelError:
		return ports.MessageFail
	case level >= slog.LevelWarn:
		return ports.MessageAttention
	case level >= slog.LevelInfo:
		return ports.MessageInfo
	default:
		return ports.MessageOrdinary
	}
}
