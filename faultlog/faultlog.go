// Package faultlog attaches vim25 fault information to logrus entries.
package faultlog

import (
	log "github.com/sirupsen/logrus"

	"github.com/jmgilman/vimfault"
)

// Field names added to log entries.
const (
	FieldKind           = "fault_kind"
	FieldWireName       = "fault_wire_name"
	FieldCode           = "fault_code"
	FieldClassification = "fault_classification"
	FieldRetryable      = "fault_retryable"
	FieldDetail         = "fault_detail"
	FieldChain          = "error_chain"
)

// Fields returns the log fields describing the outermost fault in err's chain.
// Returns nil if err holds no fault.
func Fields(err error) log.Fields {
	fe, ok := vimfault.AsFault(err)
	if !ok {
		return nil
	}

	fields := log.Fields{
		FieldKind:           fe.Kind().Name(),
		FieldWireName:       fe.WireName(),
		FieldCode:           string(fe.Code()),
		FieldClassification: string(fe.Classification()),
		FieldRetryable:      fe.Classification().IsRetryable(),
	}
	if d := fe.Detail(); !d.IsEmpty() {
		fields[FieldDetail] = d.Fields()
	}
	if chain := vimfault.Chain(err); len(chain) > 1 {
		msgs := make([]string, len(chain))
		for i, e := range chain {
			msgs[i] = e.Error()
		}
		fields[FieldChain] = msgs
	}
	return fields
}

// WithFault returns entry with err set as the error and, if err holds a
// fault, the fault fields added.
//
// Example:
//
//	faultlog.WithFault(log.WithField("vm", name), err).Error("power on failed")
func WithFault(entry *log.Entry, err error) *log.Entry {
	entry = entry.WithError(err)
	if fields := Fields(err); fields != nil {
		entry = entry.WithFields(fields)
	}
	return entry
}

// Hook expands fault errors logged under logrus.ErrorKey into fault fields.
//
// Example:
//
//	log.AddHook(faultlog.NewHook(log.ErrorLevel, log.WarnLevel))
//	log.WithError(err).Error("reconfigure failed")
type Hook struct {
	levels []log.Level
}

// NewHook returns a hook firing on the given levels, or on all levels if
// none are given.
func NewHook(levels ...log.Level) *Hook {
	if len(levels) == 0 {
		levels = log.AllLevels
	}
	return &Hook{levels: levels}
}

// Levels implements logrus.Hook.
func (h *Hook) Levels() []log.Level {
	return h.levels
}

// Fire implements logrus.Hook.
func (h *Hook) Fire(entry *log.Entry) error {
	err, ok := entry.Data[log.ErrorKey].(error)
	if !ok {
		return nil
	}
	for k, v := range Fields(err) {
		if _, exists := entry.Data[k]; !exists {
			entry.Data[k] = v
		}
	}
	return nil
}
