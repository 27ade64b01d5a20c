package json

import (
	"bytes"
	"math"
	"strconv"

	"github.com/harnesskit/emit-go/kvpair"
)

// frameKind is the kind of container on the writer's nesting stack.
type frameKind int

const (
	frameArray frameKind = iota

	// frameObjectKey is an object whose next token must be a key.
	frameObjectKey

	// frameObjectValue is an object whose last key is still awaiting
	// its value.
	frameObjectValue
)

// frame is one level of container nesting.
type frame struct {
	kind frameKind

	// comma reports whether the next element at this level must be
	// preceded by a comma.
	comma bool
}

// Writer appends JSON tokens to an output buffer, tracking container
// nesting so that commas, keys and brackets come out well-formed.
//
// Errors are sticky: after the first InvalidNestingError or
// ContractViolationError every further operation is a no-op, and the error
// is reported by Err and Finish. Buffer content written before a failed
// operation is not guaranteed to be well-formed and should be discarded.
type Writer struct {
	w       *bytes.Buffer
	scratch []byte

	stack []frame
	err   error
}

// NewWriter returns a Writer that appends to buffer. The writer owns the
// buffer for the duration of the serialization session; no other writer
// may interleave appends.
func NewWriter(buffer *bytes.Buffer) *Writer {
	return &Writer{
		w:       buffer,
		scratch: make([]byte, 64),
	}
}

// Depth returns the number of currently open containers.
func (w *Writer) Depth() int {
	return len(w.stack)
}

// Err returns the first error recorded by the writer, if any.
func (w *Writer) Err() error {
	return w.err
}

// Finish ends the serialization session. It returns the first recorded
// error, or an InvalidNestingError if any container is still open.
func (w *Writer) Finish() error {
	if w.err != nil {
		return w.err
	}
	if len(w.stack) != 0 {
		return &InvalidNestingError{Op: "Finish", Depth: len(w.stack)}
	}
	return nil
}

// beginValue prepares the current frame for one more value: it writes a
// pending comma at array level, and flips an object awaiting a value back
// to awaiting a key. It reports whether the caller may proceed.
func (w *Writer) beginValue(op string) bool {
	if w.err != nil {
		return false
	}
	if len(w.stack) == 0 {
		return true
	}

	f := &w.stack[len(w.stack)-1]
	switch f.kind {
	case frameArray:
		if f.comma {
			w.w.WriteByte(comma)
		}
		f.comma = true
	case frameObjectValue:
		f.kind = frameObjectKey
		f.comma = true
	default: // frameObjectKey
		w.err = &ContractViolationError{Op: op, State: "an object key is expected"}
		return false
	}
	return true
}

// StartArray opens a JSON array. End must be called after all elements
// are written.
func (w *Writer) StartArray() {
	if !w.beginValue("StartArray") {
		return
	}
	w.stack = append(w.stack, frame{kind: frameArray})
	w.w.WriteByte(leftBracket)
}

// StartObject opens a JSON object. End must be called after all members
// are written.
func (w *Writer) StartObject() {
	if !w.beginValue("StartObject") {
		return
	}
	w.stack = append(w.stack, frame{kind: frameObjectKey})
	w.w.WriteByte(leftBrace)
}

// End closes the innermost open container.
func (w *Writer) End() {
	if w.err != nil {
		return
	}
	if len(w.stack) == 0 {
		w.err = &InvalidNestingError{Op: "End", Depth: 0}
		return
	}

	switch w.stack[len(w.stack)-1].kind {
	case frameArray:
		w.w.WriteByte(rightBracket)
	case frameObjectKey:
		w.w.WriteByte(rightBrace)
	case frameObjectValue:
		w.err = &ContractViolationError{Op: "End", State: "the last key is awaiting its value"}
		return
	}
	w.stack = w.stack[:len(w.stack)-1]

	// The closed container counts as a completed value in its parent.
	if len(w.stack) != 0 {
		f := &w.stack[len(w.stack)-1]
		if f.kind == frameObjectValue {
			f.kind = frameObjectKey
		}
		f.comma = true
	}
}

// Key writes the named key of the current object, escaped and followed by
// a colon. The next operation must write the key's value.
func (w *Writer) Key(name string) {
	if w.err != nil {
		return
	}
	if len(w.stack) == 0 || w.stack[len(w.stack)-1].kind != frameObjectKey {
		w.err = &ContractViolationError{Op: "Key", State: "the current container is not awaiting a key"}
		return
	}

	f := &w.stack[len(w.stack)-1]
	if f.comma {
		w.w.WriteByte(comma)
		f.comma = false
	}
	escapeString(w.w, name)
	w.w.WriteByte(colon)
	f.kind = frameObjectValue
}

// String encodes v as an escaped, double-quoted JSON string.
func (w *Writer) String(v string) {
	if !w.beginValue("String") {
		return
	}
	escapeString(w.w, v)
}

// KeyString writes key with the given string value. A nil value drops the
// whole pair rather than encoding null; this is how optional object
// members are modeled.
func (w *Writer) KeyString(key string, v *string) {
	if v == nil {
		return
	}
	w.Key(key)
	w.String(*v)
}

// Null encodes a JSON null.
func (w *Writer) Null() {
	if !w.beginValue("Null") {
		return
	}
	w.w.WriteString(null)
}

// Boolean encodes v as a JSON boolean.
func (w *Writer) Boolean(v bool) {
	if !w.beginValue("Boolean") {
		return
	}
	w.scratch = strconv.AppendBool(w.scratch[:0], v)
	w.w.Write(w.scratch)
}

// Long encodes v as a JSON number. The exact base-10 representation is
// written for every int64 value.
func (w *Writer) Long(v int64) {
	if !w.beginValue("Long") {
		return
	}
	w.scratch = strconv.AppendInt(w.scratch[:0], v, 10)
	w.w.Write(w.scratch)
}

// Double encodes v as a JSON number with the given number of significant
// digits, trimming redundant trailing zeros and switching to exponential
// notation for large or small magnitudes, matching C's %.*g. A precision
// below 1 selects the shortest representation that round-trips. Non-finite
// values encode as null.
func (w *Writer) Double(v float64, precision int) {
	if !w.beginValue("Double") {
		return
	}
	if math.IsInf(v, 0) || math.IsNaN(v) {
		w.w.WriteString(null)
		return
	}
	if precision < 1 {
		precision = -1
	}
	w.scratch = strconv.AppendFloat(w.scratch[:0], v, 'g', precision, 64)
	w.w.Write(w.scratch)
}

// Raw writes v to the output verbatim as one value. No escaping or
// validation is applied; the caller is responsible for v being a valid
// JSON token sequence.
func (w *Writer) Raw(v []byte) {
	if !w.beginValue("Raw") {
		return
	}
	w.w.Write(v)
}

// StringSlice encodes vs as a JSON array of strings, preserving order.
// Nil entries encode as null, or are dropped entirely when skipNull is
// set.
func (w *Writer) StringSlice(vs []*string, skipNull bool) {
	w.StartArray()
	for _, v := range vs {
		if v == nil {
			if skipNull {
				continue
			}
			w.Null()
			continue
		}
		w.String(*v)
	}
	w.End()
}

// KVPairs encodes l as a JSON object with one string member per pair, in
// insertion order.
func (w *Writer) KVPairs(l *kvpair.List) {
	w.StartObject()
	for _, p := range l.Pairs() {
		w.Key(p.Key)
		w.String(p.Value)
	}
	w.End()
}
