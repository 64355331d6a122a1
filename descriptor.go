package binio

import (
	"fmt"
	"strings"
)

// Kind identifies one of the atomic primitive types.
type Kind uint8

const (
	// KindInvalid is the zero Kind; it never names a readable type.
	KindInvalid Kind = iota
	KindUint8
	KindUint16
	KindUint32
	KindInt8
	KindInt16
	KindInt32
	KindFloat32
	KindFloat64
	KindCString
)

const (
	arraySuffix   = "[]"
	pointerSuffix = "*"
)

var kindByName = map[string]Kind{
	"uint8":   KindUint8,
	"uint16":  KindUint16,
	"uint32":  KindUint32,
	"int8":    KindInt8,
	"int16":   KindInt16,
	"int32":   KindInt32,
	"float32": KindFloat32,
	"float64": KindFloat64,
	"cstring": KindCString,
}

var kindNames = [...]string{
	KindInvalid: "invalid",
	KindUint8:   "uint8",
	KindUint16:  "uint16",
	KindUint32:  "uint32",
	KindInt8:    "int8",
	KindInt16:   "int16",
	KindInt32:   "int32",
	KindFloat32: "float32",
	KindFloat64: "float64",
	KindCString: "cstring",
}

// Width of each fixed-width kind in bytes. cstring has no fixed width.
var kindWidths = [...]int{
	KindUint8:   1,
	KindUint16:  2,
	KindUint32:  4,
	KindInt8:    1,
	KindInt16:   2,
	KindInt32:   4,
	KindFloat32: 4,
	KindFloat64: 8,
	KindCString: 0,
}

func (k Kind) String() string {
	if int(k) >= len(kindNames) {
		return "invalid"
	}
	return kindNames[k]
}

// Width returns the fixed byte width of the kind, or 0 for cstring and
// invalid kinds.
func (k Kind) Width() int {
	if int(k) >= len(kindWidths) {
		return 0
	}
	return kindWidths[k]
}

// Descriptor is a parsed type descriptor.
//
// The descriptor vocabulary is the nine atomic names plus an optional
// trailing array marker ("[]") or pointer marker ("*") layered on an
// atomic name. Markers are mutually exclusive and classification-only:
// Read and Write accept plain atomic descriptors exclusively.
//
// The zero Descriptor is invalid.
type Descriptor struct {
	kind    Kind
	array   bool
	pointer bool
}

// ParseDescriptor resolves a descriptor name once, so per-call dispatch
// never re-validates strings. It returns ErrInvalidDescriptor when the
// underlying atomic name is not recognized.
func ParseDescriptor(name string) (Descriptor, error) {
	base := name
	var array, pointer bool
	switch {
	case strings.HasSuffix(base, arraySuffix):
		array = true
		base = strings.TrimSuffix(base, arraySuffix)
	case strings.HasSuffix(base, pointerSuffix):
		pointer = true
		base = strings.TrimSuffix(base, pointerSuffix)
	}
	kind, ok := kindByName[base]
	if !ok {
		return Descriptor{}, fmt.Errorf("%w: %q", ErrInvalidDescriptor, name)
	}
	return Descriptor{kind: kind, array: array, pointer: pointer}, nil
}

// MustParseDescriptor is like ParseDescriptor but panics on invalid names.
// Intended for descriptor constants in format definitions.
func MustParseDescriptor(name string) Descriptor {
	d, err := ParseDescriptor(name)
	if err != nil {
		panic(err)
	}
	return d
}

// Kind returns the atomic kind underlying the descriptor.
func (d Descriptor) Kind() Kind { return d.kind }

// IsPrimitive reports whether the descriptor names a plain atomic
// primitive that Read and Write dispatch on directly. Array- and
// pointer-marked descriptors are not primitive.
func (d Descriptor) IsPrimitive() bool {
	return d.kind != KindInvalid && !d.array && !d.pointer
}

// IsArray reports whether the descriptor carries the array marker.
func (d Descriptor) IsArray() bool { return d.array }

// IsPointer reports whether the descriptor carries the pointer marker.
func (d Descriptor) IsPointer() bool { return d.pointer }

// Elem strips the array or pointer marker, yielding the element (or
// pointee) descriptor. For plain atomic descriptors it returns the
// descriptor unchanged.
func (d Descriptor) Elem() Descriptor {
	return Descriptor{kind: d.kind}
}

// Width returns the fixed byte width of the descriptor.
//
// It is 0 for cstring, for array- and pointer-marked descriptors and for
// the zero Descriptor alike; callers cannot distinguish "variable width"
// from "not a fixed-width primitive" through this method alone. This
// mirrors the historical contract and is not an error signal.
func (d Descriptor) Width() int {
	if !d.IsPrimitive() {
		return 0
	}
	return d.kind.Width()
}

func (d Descriptor) String() string {
	switch {
	case d.array:
		return d.kind.String() + arraySuffix
	case d.pointer:
		return d.kind.String() + pointerSuffix
	default:
		return d.kind.String()
	}
}

// IsPrimitive reports whether name is one of the nine atomic primitive
// names, cstring included.
func IsPrimitive(name string) bool {
	_, ok := kindByName[name]
	return ok
}

// PrimitiveWidth returns the fixed byte width of the named primitive.
//
// It returns 0 both for cstring (a real primitive with data-dependent
// width) and for any name that is not a fixed-width primitive, unknown
// names included. Callers must not treat 0 as an error signal.
func PrimitiveWidth(name string) int {
	kind, ok := kindByName[name]
	if !ok {
		return 0
	}
	return kind.Width()
}

// IsArray reports whether name carries the trailing array marker.
func IsArray(name string) bool {
	return strings.HasSuffix(name, arraySuffix)
}

// IsPointer reports whether name carries the trailing pointer marker.
func IsPointer(name string) bool {
	return strings.HasSuffix(name, pointerSuffix)
}
