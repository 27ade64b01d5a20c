package json

import (
	"bytes"
)

// Encoder is a JSON encoder that owns its output buffer. The embedded
// Writer provides the emission primitives.
type Encoder struct {
	w *bytes.Buffer
	*Writer
}

// NewEncoder returns a new JSON encoder.
func NewEncoder() *Encoder {
	buffer := bytes.NewBuffer(nil)

	return &Encoder{w: buffer, Writer: NewWriter(buffer)}
}

// Bytes returns the []byte slice of the JSON encoder.
func (e *Encoder) Bytes() []byte {
	return e.w.Bytes()
}
