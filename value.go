package binio

import "fmt"

// ValueKind discriminates the payload held by a Value.
type ValueKind uint8

const (
	ValueInvalid ValueKind = iota
	ValueUint
	ValueInt
	ValueFloat
	ValueString
)

func (k ValueKind) String() string {
	switch k {
	case ValueUint:
		return "uint"
	case ValueInt:
		return "int"
	case ValueFloat:
		return "float"
	case ValueString:
		return "string"
	default:
		return "invalid"
	}
}

// Value is a decoded primitive value.
//
// Read returns Values and Write consumes them. Exactly one payload field
// is meaningful, selected by Kind: U64 for unsigned kinds, I64 for signed
// kinds, F64 for floats, Str for cstrings.
type Value struct {
	Kind ValueKind
	U64  uint64
	I64  int64
	F64  float64
	Str  string
}

// Uint wraps an unsigned integer payload.
func Uint(v uint64) Value { return Value{Kind: ValueUint, U64: v} }

// Int wraps a signed integer payload.
func Int(v int64) Value { return Value{Kind: ValueInt, I64: v} }

// Float wraps a floating-point payload.
func Float(v float64) Value { return Value{Kind: ValueFloat, F64: v} }

// String wraps a string payload.
func String(s string) Value { return Value{Kind: ValueString, Str: s} }

// UintValue returns the payload as uint64, converting from a signed
// payload when non-negative. It returns 0 for non-numeric Values.
func (v Value) UintValue() uint64 {
	switch v.Kind {
	case ValueUint:
		return v.U64
	case ValueInt:
		if v.I64 >= 0 {
			return uint64(v.I64)
		}
	}
	return 0
}

// IntValue returns the payload as int64. It returns 0 for non-numeric
// Values and saturates for unsigned payloads beyond the int64 range.
func (v Value) IntValue() int64 {
	switch v.Kind {
	case ValueInt:
		return v.I64
	case ValueUint:
		if v.U64 <= 1<<63-1 {
			return int64(v.U64)
		}
		return 1<<63 - 1
	}
	return 0
}

// FloatValue returns the payload as float64, converting integer payloads.
// It returns 0 for string and invalid Values.
func (v Value) FloatValue() float64 {
	switch v.Kind {
	case ValueFloat:
		return v.F64
	case ValueInt:
		return float64(v.I64)
	case ValueUint:
		return float64(v.U64)
	}
	return 0
}

// StringValue returns the string payload, or "" for non-string Values.
func (v Value) StringValue() string {
	if v.Kind == ValueString {
		return v.Str
	}
	return ""
}

func (v Value) String() string {
	switch v.Kind {
	case ValueUint:
		return fmt.Sprintf("%d", v.U64)
	case ValueInt:
		return fmt.Sprintf("%d", v.I64)
	case ValueFloat:
		return fmt.Sprintf("%g", v.F64)
	case ValueString:
		return fmt.Sprintf("%q", v.Str)
	default:
		return "<invalid>"
	}
}
