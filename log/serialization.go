package log

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"
)

// attrText renders a resolved attribute value as text for the host log.
func attrText(v slog.Value) string {
	v = v.Resolve()

	switch v.Kind() {
	case slog.KindString:
		s := v.String()
		if s == "" || strings.ContainsAny(s, " =\"") {
			return strconv.Quote(s)
		}
		return s
	case slog.KindInt64:
		return strconv.FormatInt(v.Int64(), 10)
	case slog.KindUint64:
		return strconv.FormatUint(v.Uint64(), 10)
	case slog.KindBool:
		return strconv.FormatBool(v.Bool())
	case slog.KindFloat64:
		return strconv.FormatFloat(v.Float64(), 'g', -1, 64)
	case slog.KindTime:
		return v.Time().Format(time.RFC3339Nano)
	case slog.KindDuration:
		return v.Duration().String()
	case slog.KindAny:
		a := v.Any()
		if a == nil {
			return "<nil>"
		}
		if err, isErr := a.(error); isErr {
			return strconv.Quote(err.Error())
		}
		if src, isSrc := a.(*slog.Source); isSrc {
			return fmt.Sprintf("%s:%d", src.File, src.Line)
		}
		if data, err := json.Marshal(a); err == nil {
			return string(data)
		}
		return fmt.Sprintf("%v", a)
	default:
		return fmt.Sprintf("%v", v.Any())
	}
}

// writeAttr appends " key=value" to b. Groups are flattened into dotted keys.
func writeAttr(b *strings.Builder, prefix string, attr slog.Attr) {
	attr.Value = attr.Value.Resolve()
	if attr.Equal(slog.Attr{}) {
		return
	}

	key := attr.Key
	if prefix != "" && key != "" {
		key = prefix + "." + key
	} else if key == "" {
		key = prefix
	}

	if attr.Value.Kind() == slog.KindGroup {
		for _, ga := range attr.Value.Group() {
			writeAttr(b, key, ga)
		}
		return
	}

	b.WriteByte(' ')
	b.WriteString(key)
	b.WriteByte('=')
	b.WriteString(attrText(attr.Value))
}
