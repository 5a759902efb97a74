package types

import (
	"math/big"
)

// Kind identifies the variant held by a Value
type Kind int

const (
	// KindInteger is a decimal integer value
	KindInteger Kind = iota
	// KindText is a plain string value
	KindText
	// KindMapping is a nested, ordered mapping
	KindMapping
)

// String returns the string representation of the kind
func (k Kind) String() string {
	switch k {
	case KindInteger:
		return "integer"
	case KindText:
		return "text"
	case KindMapping:
		return "mapping"
	default:
		return "unknown"
	}
}

// Value is a configuration value: Integer, Text or *Mapping.
type Value interface {
	Kind() Kind
	isValue()
}

// Integer holds a decimal integer without size limit.
type Integer struct {
	n *big.Int
}

// NewInteger returns an Integer for an int64.
func NewInteger(n int64) Integer {
	return Integer{n: big.NewInt(n)}
}

// ParseInteger parses a string of ASCII decimal digits. It reports false
// for empty input or any non-digit character, including signs.
func ParseInteger(s string) (Integer, bool) {
	if s == "" {
		return Integer{}, false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return Integer{}, false
		}
	}
	n, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return Integer{}, false
	}
	return Integer{n: n}, true
}

// Kind implements Value
func (Integer) Kind() Kind { return KindInteger }

func (Integer) isValue() {}

// String renders the integer in canonical decimal form
func (i Integer) String() string {
	if i.n == nil {
		return "0"
	}
	return i.n.String()
}

// Text is a trimmed, non-empty string value
type Text string

// Kind implements Value
func (Text) Kind() Kind { return KindText }

func (Text) isValue() {}

// String returns the text unchanged
func (t Text) String() string { return string(t) }

// Entry is one key/value pair of a Mapping
type Entry struct {
	Key   string
	Value Value
}

// Mapping is an ordered key/value collection. Keys keep the position of
// their first insertion; setting an existing key replaces its value in place.
type Mapping struct {
	keys   []string
	values map[string]Value
}

// NewMapping creates an empty mapping
func NewMapping() *Mapping {
	return &Mapping{values: make(map[string]Value)}
}

// Kind implements Value
func (*Mapping) Kind() Kind { return KindMapping }

func (*Mapping) isValue() {}

// Set stores value under key and reports whether an earlier value was replaced.
func (m *Mapping) Set(key string, value Value) bool {
	if m.values == nil {
		m.values = make(map[string]Value)
	}
	_, exists := m.values[key]
	if !exists {
		m.keys = append(m.keys, key)
	}
	m.values[key] = value
	return exists
}

// Get returns the value stored under key
func (m *Mapping) Get(key string) (Value, bool) {
	v, ok := m.values[key]
	return v, ok
}

// Len returns the number of keys
func (m *Mapping) Len() int {
	return len(m.keys)
}

// Keys returns the keys in insertion order
func (m *Mapping) Keys() []string {
	keys := make([]string, len(m.keys))
	copy(keys, m.keys)
	return keys
}

// Entries returns the key/value pairs in insertion order
func (m *Mapping) Entries() []Entry {
	entries := make([]Entry, 0, len(m.keys))
	for _, k := range m.keys {
		entries = append(entries, Entry{Key: k, Value: m.values[k]})
	}
	return entries
}
