package log

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reglet-dev/addin-sdk/go/domain/ports"
	"github.com/reglet-dev/addin-sdk/go/internal/testutil"
)

func TestAttrText(t *testing.T) {
	tests := []struct {
		name string
		attr slog.Attr
		want string
	}{
		{name: "string", attr: slog.String("key", "value"), want: "value"},
		{name: "string with spaces", attr: slog.String("key", "a b"), want: `"a b"`},
		{name: "empty string", attr: slog.String("key", ""), want: `""`},
		{name: "int64", attr: slog.Int64("key", 123), want: "123"},
		{name: "uint64", attr: slog.Uint64("key", 7), want: "7"},
		{name: "bool", attr: slog.Bool("key", true), want: "true"},
		{name: "float64", attr: slog.Float64("key", 1.23), want: "1.23"},
		{name: "time", attr: slog.Time("key", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)), want: "2024-01-01T00:00:00Z"},
		{name: "duration", attr: slog.Duration("key", time.Hour), want: "1h0m0s"},
		{name: "error", attr: slog.Any("key", errors.New("test error")), want: `"test error"`},
		{name: "nil", attr: slog.Any("key", nil), want: "<nil>"},
		{name: "json", attr: slog.Any("key", struct {
			Field string `json:"field"`
		}{Field: "data"}), want: `{"field":"data"}`},
		{name: "log valuer", attr: slog.Any("key", logValuer{val: "resolved"}), want: "resolved"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, attrText(tt.attr.Value))
		})
	}
}

type logValuer struct {
	val string
}

func (l logValuer) LogValue() slog.Value {
	return slog.StringValue(l.val)
}

func TestNewHandler_Defaults(t *testing.T) {
	h := NewHandler()
	assert.NotNil(t, h)
	assert.True(t, h.Enabled(context.TODO(), slog.LevelInfo))
	assert.False(t, h.Enabled(context.TODO(), slog.LevelDebug))
}

func TestNewHandler_Options(t *testing.T) {
	h := NewHandler(
		WithLevel(slog.LevelDebug),
		WithSource(true),
	)
	assert.True(t, h.Enabled(context.TODO(), slog.LevelDebug))
}

func TestHostHandler_RoutesToConnection(t *testing.T) {
	conn := testutil.NewConnection()
	logger := slog.New(NewHandler(WithConnection(conn), WithMessageSource("Calc")))

	logger.Warn("property rejected", "prop", "Total", "num", 3)

	msgs := conn.MessageList()
	require.Len(t, msgs, 1)
	assert.Equal(t, ports.MessageAttention, msgs[0].Code)
	assert.Equal(t, "Calc", msgs[0].Source)
	assert.Equal(t, "property rejected prop=Total num=3", msgs[0].Description)
	assert.Zero(t, msgs[0].SCode, "a log record must never raise a host exception")
}

func TestHostHandler_AttrsAndGroups(t *testing.T) {
	conn := testutil.NewConnection()
	logger := slog.New(NewHandler(WithConnection(conn))).
		With("component", "Calc").
		WithGroup("call").
		With("method", "Add")

	logger.Info("done", slog.Group("args", slog.Int("n", 2)))

	msgs := conn.MessageList()
	require.Len(t, msgs, 1)
	assert.Equal(t, "done component=Calc call.method=Add call.args.n=2", msgs[0].Description)
}

func TestHostHandler_FallbackUntilAttached(t *testing.T) {
	var buf bytes.Buffer
	h := NewHandler(WithFallback(slog.NewTextHandler(&buf, nil)))
	logger := slog.New(h).With("k", "v")

	logger.Info("before")
	assert.Contains(t, buf.String(), "msg=before")
	assert.Contains(t, buf.String(), "k=v")

	conn := testutil.NewConnection()
	h.Attach(conn)
	logger.Info("after")

	msgs := conn.MessageList()
	require.Len(t, msgs, 1, "derived handlers share the attached connection")
	assert.Equal(t, "after k=v", msgs[0].Description)
	assert.False(t, strings.Contains(buf.String(), "after"))

	h.Attach(nil)
	logger.Info("detached")
	assert.Contains(t, buf.String(), "msg=detached")
}

func TestHostHandler_Source(t *testing.T) {
	conn := testutil.NewConnection()
	logger := slog.New(NewHandler(WithConnection(conn), WithSource(true)))

	logger.Error("boom")

	msgs := conn.MessageList()
	require.Len(t, msgs, 1)
	assert.Equal(t, ports.MessageFail, msgs[0].Code)
	assert.Contains(t, msgs[0].Description, "source=")
	assert.Contains(t, msgs[0].Description, "log_test.go:")
}

func TestMessageCode(t *testing.T) {
	assert.Equal(t, ports.MessageOrdinary, MessageCode(slog.LevelDebug))
	assert.Equal(t, ports.MessageInfo, MessageCode(slog.LevelInfo))
	assert.Equal(t, ports.MessageAttention, MessageCode(slog.LevelWarn))
	assert.Equal(t, ports.MessageFail, MessageCode(slog.LevelError))
	assert.Equal(t, ports.MessageFail, MessageCode(slog.LevelError+4))
}
