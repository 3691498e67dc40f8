package datamodel

import (
	"fmt"
	"time"
)

// Kind tags the dynamic type carried by a Value.
type Kind uint8

const (
	// KindNull marks an absent or explicitly-null cell.
	KindNull Kind = iota
	KindInt64
	KindFloat64
	KindBool
	KindText
	KindTimestamp
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindInt64:
		return "int64"
	case KindFloat64:
		return "float64"
	case KindBool:
		return "bool"
	case KindText:
		return "text"
	case KindTimestamp:
		return "timestamp"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Value is a tagged, immutable leaf cell value. The zero Value is Null.
type Value struct {
	kind Kind
	i    int64
	f    float64
	b    bool
	s    string
	t    time.Time
}

// Null is the canonical null Value.
var Null = Value{kind: KindNull}

// Int64 wraps an int64.
func Int64(v int64) Value { return Value{kind: KindInt64, i: v} }

// Float64 wraps a float64.
func Float64(v float64) Value { return Value{kind: KindFloat64, f: v} }

// Bool wraps a bool.
func Bool(v bool) Value { return Value{kind: KindBool, b: v} }

// Text wraps a string.
func Text(v string) Value { return Value{kind: KindText, s: v} }

// Timestamp wraps a time.Time.
func Timestamp(v time.Time) Value { return Value{kind: KindTimestamp, t: v} }

// Kind reports the dynamic type of v.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether v is the null value.
func (v Value) IsNull() bool { return v.kind == KindNull }

// AsInt64 returns the wrapped int64 and whether v.Kind() == KindInt64.
func (v Value) AsInt64() (int64, bool) { return v.i, v.kind == KindInt64 }

// AsFloat64 returns the wrapped float64 and whether v.Kind() == KindFloat64.
func (v Value) AsFloat64() (float64, bool) { return v.f, v.kind == KindFloat64 }

// AsBool returns the wrapped bool and whether v.Kind() == KindBool.
func (v Value) AsBool() (bool, bool) { return v.b, v.kind == KindBool }

// AsText returns the wrapped string and whether v.Kind() == KindText.
func (v Value) AsText() (string, bool) { return v.s, v.kind == KindText }

// AsTimestamp returns the wrapped time and whether v.Kind() == KindTimestamp.
func (v Value) AsTimestamp() (time.Time, bool) { return v.t, v.kind == KindTimestamp }

// Numeric returns v's value coerced to float64 for numeric comparison,
// and whether v is numeric (Int64 or Float64).
func (v Value) Numeric() (float64, bool) {
	switch v.kind {
	case KindInt64:
		return float64(v.i), true
	case KindFloat64:
		return v.f, true
	default:
		return 0, false
	}
}

// String renders v for debugging/printing.
func (v Value) String() string {
	switch v.kind {
	case KindNull:
		return "null"
	case KindInt64:
		return fmt.Sprintf("%d", v.i)
	case KindFloat64:
		return fmt.Sprintf("%g", v.f)
	case KindBool:
		return fmt.Sprintf("%t", v.b)
	case KindText:
		return v.s
	case KindTimestamp:
		return v.t.Format(time.RFC3339)
	default:
		return "<invalid>"
	}
}
