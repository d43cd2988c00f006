// Package faulttrace records vim25 faults on OpenTelemetry spans.
package faulttrace

import (
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/jmgilman/vimfault"
)

// Attribute keys.
const (
	KeyKind           attribute.Key = "vim.fault.kind"
	KeyWireName       attribute.Key = "vim.fault.wire_name"
	KeyCode           attribute.Key = "vim.fault.code"
	KeyClassification attribute.Key = "vim.fault.classification"
	KeyRetryable      attribute.Key = "vim.fault.retryable"

	// DetailPrefix prefixes one attribute per detail field.
	DetailPrefix = "vim.fault.detail."
)

// Attributes returns span attributes describing the outermost fault in err's
// chain. Returns nil if err holds no fault.
func Attributes(err error) []attribute.KeyValue {
	fe, ok := vimfault.AsFault(err)
	if !ok {
		return nil
	}

	attrs := []attribute.KeyValue{
		KeyKind.String(fe.Kind().Name()),
		KeyWireName.String(fe.WireName()),
		KeyCode.String(string(fe.Code())),
		KeyClassification.String(string(fe.Classification())),
		KeyRetryable.Bool(fe.Classification().IsRetryable()),
	}
	d := fe.Detail()
	for _, name := range d.Names() {
		v, _ := d.Value(name)
		attrs = append(attrs, detailAttribute(name, v))
	}
	return attrs
}

func detailAttribute(name string, v any) attribute.KeyValue {
	key := attribute.Key(DetailPrefix + name)
	switch x := v.(type) {
	case string:
		return key.String(x)
	case int64:
		return key.Int64(x)
	case bool:
		return key.Bool(x)
	case []string:
		return key.StringSlice(x)
	case vimfault.MoRef:
		return key.String(x.String())
	}
	return key.String(fmt.Sprint(v))
}

// Record records err on span as an error event with fault attributes and
// marks the span as failed. Faults use their message as the status
// description; other errors use their full text. A nil err is ignored.
//
// Example:
//
//	ctx, span := tracer.Start(ctx, "PowerOnVM_Task")
//	defer span.End()
//	if err := powerOn(ctx); err != nil {
//	    faulttrace.Record(span, err)
//	    return err
//	}
func Record(span trace.Span, err error) {
	if err == nil {
		return
	}

	attrs := Attributes(err)
	span.RecordError(err, trace.WithAttributes(attrs...))
	span.SetAttributes(attrs...)

	description := err.Error()
	if fe, ok := vimfault.AsFault(err); ok {
		description = fe.Message()
	}
	span.SetStatus(codes.Error, description)
}
