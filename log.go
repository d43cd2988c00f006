package vimfault

import "log/slog"

// LogValue implements slog.LogValuer so a fault logged with slog expands to
// its kind, code, message, detail fields and cause.
func (e *faultError) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.String("kind", e.kind.name),
		slog.String("wire_name", e.wireName),
		slog.String("code", string(e.kind.Code())),
		slog.String("classification", string(e.classification)),
		slog.String("message", e.message),
	}
	if !e.detail.IsEmpty() {
		fields := make([]any, 0, e.detail.Len())
		for _, name := range e.detail.Names() {
			v, _ := e.detail.Value(name)
			fields = append(fields, slog.Any(name, v))
		}
		attrs = append(attrs, slog.Group("detail", fields...))
	}
	if e.cause != nil {
		attrs = append(attrs, slog.String("cause", causeText(e.cause)))
	}
	return slog.GroupValue(attrs...)
}
