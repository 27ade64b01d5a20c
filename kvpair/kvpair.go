// Package kvpair provides an ordered, string-keyed association list.
//
// Unlike a map, a List preserves insertion order, which makes it suitable
// as an intermediate representation for building JSON objects whose member
// order is significant.
package kvpair

import (
	"fmt"
)

// Pair is a single key/value binding.
type Pair struct {
	Key   string
	Value string
}

// List is an ordered collection of key/value pairs. The zero value is an
// empty list ready for use.
//
// Keys are expected to be unique; Add does not check for duplicates, and
// Get returns the first binding for a key.
type List struct {
	pairs []Pair
}

// Add appends a key/value binding to the list.
func (l *List) Add(key, value string) {
	l.pairs = append(l.pairs, Pair{Key: key, Value: value})
}

// Addf appends a key bound to the formatted value.
func (l *List) Addf(key, format string, v ...interface{}) {
	l.Add(key, fmt.Sprintf(format, v...))
}

// Get returns the value bound to key and whether the key is present.
func (l *List) Get(key string) (string, bool) {
	for _, p := range l.pairs {
		if p.Key == key {
			return p.Value, true
		}
	}
	return "", false
}

// Delete removes every binding for key, preserving the order of the
// remaining pairs. It reports whether anything was removed.
func (l *List) Delete(key string) bool {
	kept := l.pairs[:0]
	for _, p := range l.pairs {
		if p.Key != key {
			kept = append(kept, p)
		}
	}
	removed := len(kept) != len(l.pairs)
	l.pairs = kept
	return removed
}

// Len returns the number of pairs in the list.
func (l *List) Len() int {
	return len(l.pairs)
}

// Pairs returns the pairs in insertion order. The returned slice is backed
// by the list and must not be mutated.
func (l *List) Pairs() []Pair {
	return l.pairs
}
