package json

import (
	"bytes"
	"testing"
)

func TestEscapeStringBytes(t *testing.T) {
	e := NewEncoder()
	e.StartObject()
	e.Key("foo\"")
	e.String("bar")
	e.Key("faz")
	e.String("baz")
	e.End()

	expected := []byte(`{"foo\"":"bar","faz":"baz"}`)
	actual := e.Bytes()
	if bytes.Compare(expected, actual) != 0 {
		t.Errorf("expected %+q, but got %+q", expected, actual)
	}
}

func TestStringEscaping(t *testing.T) {
	cases := map[string]struct {
		input  string
		expect []byte
	}{
		"empty": {
			input:  "",
			expect: []byte(`""`),
		},
		"plain": {
			input:  "abc def",
			expect: []byte(`"abc def"`),
		},
		// BEL (0x07) and VT (0x0b) have no short escape and fall back to
		// \u00xx, while BS, FF, NL, CR and TAB use the two-character forms.
		"control and reserved": {
			input:  "\x01\a\b\f\n\r\t\v\\/\"\x7f",
			expect: []byte(`"\u0001\u0007\b\f\n\r\t\u000b\\\/\"\u007f"`),
		},
		"delete": {
			input:  "\x7f",
			expect: []byte(`"\u007f"`),
		},
		"forward slash": {
			input:  "</script>",
			expect: []byte(`"<\/script>"`),
		},
		"non-ascii passthrough": {
			input:  "naïve ★",
			expect: []byte(`"naïve ★"`),
		},
	}

	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			e := NewEncoder()
			e.String(c.input)

			if err := e.Finish(); err != nil {
				t.Fatalf("expect no error, got %v", err)
			}
			if a := e.Bytes(); bytes.Compare(c.expect, a) != 0 {
				t.Errorf("expected %+q, but got %+q", c.expect, a)
			}
		})
	}
}

func TestKeyEscaping(t *testing.T) {
	e := NewEncoder()
	e.StartObject()
	e.Key("a\tb")
	e.String("v")
	e.End()

	if err := e.Finish(); err != nil {
		t.Fatalf("expect no error, got %v", err)
	}

	expect := []byte(`{"a\tb":"v"}`)
	if a := e.Bytes(); bytes.Compare(expect, a) != 0 {
		t.Errorf("expected %+q, but got %+q", expect, a)
	}
}
