// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package filter

import (
	"strconv"
	"strings"
)

// Kind identifies the runtime type of a Value.
type Kind int

const (
	KindText Kind = iota
	KindInteger
	KindFloat
	KindBool
	KindNull
)

// String returns the lower-case kind name, mostly for diagnostics and tests.
func (k Kind) String() string {
	switch k {
	case KindInteger:
		return "integer"
	case KindFloat:
		return "float"
	case KindBool:
		return "bool"
	case KindNull:
		return "null"
	default:
		return "text"
	}
}

// Value is a typed scalar produced by Lex. The zero value is empty text.
// Values are immutable once created and comparable with ==.
type Value struct {
	kind Kind
	i    int64
	f    float64
	b    bool
	s    string
}

// Text returns a text Value carrying s verbatim.
func Text(s string) Value { return Value{kind: KindText, s: s} }

// Integer returns an integer Value.
func Integer(i int64) Value { return Value{kind: KindInteger, i: i} }

// Float returns a float Value.
func Float(f float64) Value { return Value{kind: KindFloat, f: f} }

// Bool returns a boolean Value.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Null returns the null Value.
func Null() Value { return Value{kind: KindNull} }

// Kind returns the value's runtime type.
func (v Value) Kind() Kind { return v.kind }

// Int returns the integer payload. ok is false for non-integer values.
func (v Value) Int() (int64, bool) { return v.i, v.kind == KindInteger }

// Float64 returns the value as a float64. Integer values convert; ok is
// false for everything that is not numeric.
func (v Value) Float64() (float64, bool) {
	switch v.kind {
	case KindFloat:
		return v.f, true
	case KindInteger:
		return float64(v.i), true
	default:
		return 0, false
	}
}

// BoolVal returns the boolean payload. ok is false for non-bool values.
func (v Value) BoolVal() (bool, bool) { return v.b, v.kind == KindBool }

// IsNull reports whether the value is the null scalar.
func (v Value) IsNull() bool { return v.kind == KindNull }

// String renders the value's canonical text form: plain digits for numbers,
// true/false/null literals, and the raw text for text values. This is the
// form Serialize emits (before quoting).
func (v Value) String() string {
	switch v.kind {
	case KindInteger:
		return strconv.FormatInt(v.i, 10)
	case KindFloat:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindNull:
		return "null"
	default:
		return v.s
	}
}

// Lex classifies one trimmed token into a typed Value. Quoted tokens become
// text with no further inference; bare tokens are classified from their
// textual form. Lex never fails: anything unrecognized is text.
func Lex(token string) Value {
	if inner, ok := unquote(token); ok {
		return Text(inner)
	}
	if isNumeric(token) {
		// Float vs integer is decided on the textual form, before any
		// cast, so 3.14 stays a float instead of truncating.
		if strings.ContainsAny(token, ".eE") {
			if f, err := strconv.ParseFloat(token, 64); err == nil {
				return Float(f)
			}
		} else if i, err := strconv.ParseInt(token, 10, 64); err == nil {
			return Integer(i)
		} else if f, err := strconv.ParseFloat(token, 64); err == nil {
			// Digits that overflow int64 still parse as a number.
			return Float(f)
		}
	}
	switch strings.ToLower(token) {
	case "true":
		return Bool(true)
	case "false":
		return Bool(false)
	case "null":
		return Null()
	}
	return Text(token)
}

// unquote strips a single matching pair of double or single quotes wrapping
// the whole token and resolves backslash escapes inside double quotes.
func unquote(token string) (string, bool) {
	if len(token) < 2 {
		return "", false
	}
	q := token[0]
	if (q != '"' && q != '\'') || token[len(token)-1] != q {
		return "", false
	}
	inner := token[1 : len(token)-1]
	if q == '\'' || !strings.ContainsRune(inner, '\\') {
		return inner, true
	}
	var sb strings.Builder
	sb.Grow(len(inner))
	escaped := false
	for _, r := range inner {
		if escaped {
			sb.WriteRune(r)
			escaped = false
			continue
		}
		if r == '\\' {
			escaped = true
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String(), true
}

// isNumeric reports whether the token is lexically a number: optional sign,
// digits, at most one '.', optional exponent. The check runs on the text so
// classification never depends on a cast having happened first.
func isNumeric(token string) bool {
	s := token
	if s == "" {
		return false
	}
	if s[0] == '+' || s[0] == '-' {
		s = s[1:]
	}
	digits, dot, exp := 0, false, false
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9':
			digits++
		case c == '.' && !dot && !exp:
			dot = true
		case (c == 'e' || c == 'E') && !exp && digits > 0 && i < len(s)-1:
			exp = true
			if s[i+1] == '+' || s[i+1] == '-' {
				i++
			}
		default:
			return false
		}
	}
	return digits > 0
}

// SplitValues splits the inner value list of a segment (the text between the
// parentheses) on commas, honoring quotes so quoted values may contain ','
// and ')'. Each piece is trimmed; an empty or blank input yields no values.
func SplitValues(inner string) []string {
	return splitTop(inner, ',')
}

// splitTop splits s on sep, treating quoted runs (single or double, with
// backslash escapes inside double quotes) as opaque. Pieces are trimmed and
// blanks are dropped.
func splitTop(s string, sep byte) []string {
	var out []string
	var quote byte
	escaped := false
	start := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case escaped:
			escaped = false
		case quote == '"' && c == '\\':
			escaped = true
		case quote != 0:
			if c == quote {
				quote = 0
			}
		case c == '"' || c == '\'':
			quote = c
		case c == sep:
			if piece := strings.TrimSpace(s[start:i]); piece != "" {
				out = append(out, piece)
			}
			start = i + 1
		}
	}
	if piece := strings.TrimSpace(s[start:]); piece != "" {
		out = append(out, piece)
	}
	return out
}
