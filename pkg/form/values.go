package form

import (
	"net/url"
	"strings"
)

// Pair is a single encoded key/value.
type Pair struct {
	Key   string
	Value string
}

// Values is an ordered sequence of key/value pairs. Unlike url.Values it
// preserves insertion order, which keeps encoded output deterministic for
// idempotency-key hashing and for tests. The service itself treats key order
// as irrelevant.
type Values struct {
	pairs []Pair
}

// NewValues creates an empty Values.
func NewValues() *Values {
	return &Values{}
}

// Add appends a key/value pair.
func (v *Values) Add(key, value string) {
	v.pairs = append(v.pairs, Pair{Key: key, Value: value})
}

// Pairs returns the pairs in insertion order.
func (v *Values) Pairs() []Pair {
	if v == nil {
		return nil
	}

	return v.pairs
}

// Empty reports whether no pairs have been added.
func (v *Values) Empty() bool {
	return v == nil || len(v.pairs) == 0
}

// Get returns the first value for key, or "".
func (v *Values) Get(key string) string {
	if v == nil {
		return ""
	}

	for _, p := range v.pairs {
		if p.Key == key {
			return p.Value
		}
	}

	return ""
}

// GetAll returns every value recorded for key, in order.
func (v *Values) GetAll(key string) []string {
	if v == nil {
		return nil
	}

	var out []string

	for _, p := range v.pairs {
		if p.Key == key {
			out = append(out, p.Value)
		}
	}

	return out
}

// Set replaces every pair for key with a single value, appending when the
// key is not present.
func (v *Values) Set(key, value string) {
	kept := v.pairs[:0]

	replaced := false

	for _, p := range v.pairs {
		if p.Key == key {
			if !replaced {
				kept = append(kept, Pair{Key: key, Value: value})
				replaced = true
			}

			continue
		}

		kept = append(kept, p)
	}

	if !replaced {
		kept = append(kept, Pair{Key: key, Value: value})
	}

	v.pairs = kept
}

// Encode renders the pairs as an application/x-www-form-urlencoded string.
// Values are percent-escaped per RFC 3986 so that brackets, ampersands,
// and equals signs parse unambiguously. Keys pass through verbatim: their
// structural brackets are part of the wire format, and any user-controlled
// segments were escaped when the key was built.
func (v *Values) Encode() string {
	if v.Empty() {
		return ""
	}

	var b strings.Builder

	for i, p := range v.pairs {
		if i > 0 {
			b.WriteByte('&')
		}

		b.WriteString(p.Key)
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(p.Value))
	}

	return b.String()
}
