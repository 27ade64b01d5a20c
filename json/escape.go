package json

import (
	"bytes"
)

const lowerhex = "0123456789abcdef"

// escapeStringBytes escapes and writes the passed in string bytes, wrapping
// the output in double quotes.
//
// Short escapes cover backspace, form feed, newline, carriage return and
// tab. Every other byte below 0x20, and DEL (0x7f), is written as a
// \u00xx escape. The forward slash is escaped as \/ so that emitted
// documents stay safe in embedding contexts that are sensitive to "</".
// Bytes at 0x80 and above pass through untouched.
func escapeStringBytes(e *bytes.Buffer, s []byte) {
	e.WriteByte(quote)
	for _, c := range s {
		switch c {
		case '"':
			e.WriteString(`\"`)
		case '\\':
			e.WriteString(`\\`)
		case '/':
			e.WriteString(`\/`)
		case '\b':
			e.WriteString(`\b`)
		case '\f':
			e.WriteString(`\f`)
		case '\n':
			e.WriteString(`\n`)
		case '\r':
			e.WriteString(`\r`)
		case '\t':
			e.WriteString(`\t`)
		default:
			if c < 0x20 || c == 0x7f {
				e.WriteString(`\u00`)
				e.WriteByte(lowerhex[c>>4])
				e.WriteByte(lowerhex[c&0xf])
				break
			}
			e.WriteByte(c)
		}
	}
	e.WriteByte(quote)
}

func escapeString(e *bytes.Buffer, s string) {
	escapeStringBytes(e, []byte(s))
}
