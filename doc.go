// Package binio provides positioned reads and writes of typed primitive
// values in binary files.
//
// A Reader or Writer wraps a seekable byte resource and knows how to
// (de)serialize nine atomic primitives (fixed-width integers, floats and
// null-terminated ASCII strings) at arbitrary byte offsets, always in
// big-endian byte order. It is the substrate for format-specific parsers:
// the parser knows which offset holds which field, binio knows how to get
// a value in and out of that offset.
//
// Composing primitives into records, arrays or pointer-chasing graphs is
// left to the caller. Array ("uint32[]") and pointer ("uint32*")
// descriptors are classified but never dispatched by this package.
//
// Readers and Writers share a single cursor with the underlying resource
// and are not safe for concurrent use. Callers needing concurrency must
// serialize externally or open independent handles.
package binio
