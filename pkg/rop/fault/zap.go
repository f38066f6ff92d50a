package fault

import (
	"time"

	"go.uber.org/zap/zapcore"
)

var _ zapcore.ObjectMarshaler = (*Error)(nil)

// MarshalLogObject lets an *Error be logged with zap.Object.
// Derived fields are resolved, so logging an error fixes its target.
func (e *Error) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("id", e.id.String())
	enc.AddString("kind", e.kind.String())
	enc.AddString("code", e.Code())
	enc.AddString("message", e.message)
	enc.AddString("created_at", e.createdAt.Format(time.RFC3339Nano))
	if e.param != "" {
		enc.AddString("param", e.param)
	}
	if e.actual != nil {
		if err := enc.AddReflected("actual", e.actual); err != nil {
			return err
		}
	}
	if e.path != "" {
		enc.AddString("path", e.path)
	}
	if t := e.Target(); t != "" {
		enc.AddString("target", t)
	}
	if e.inner != nil {
		if err := enc.AddObject("inner", e.inner); err != nil {
			return err
		}
	}
	if len(e.errors) > 0 {
		return enc.AddArray("errors", errorArray(e.errors))
	}
	return nil
}

type errorArray []*Error

func (a errorArray) MarshalLogArray(enc zapcore.ArrayEncoder) error {
	for _, e := range a {
		if err := enc.AppendObject(e); err != nil {
			return err
		}
	}
	return nil
}
