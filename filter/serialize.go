// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package filter

import "strings"

// Serialize renders conditions back to canonical filter-string text:
// field:OPERATOR(v1,v2) segments joined with ';'. Values render in their
// literal textual form; any value whose text contains grammar
// metacharacters is double-quoted with '\' and '"' backslash-escaped.
// Input order is preserved, duplicate fields included, so a Parse of the
// output yields the same conditions.
func Serialize(conds []Condition) string {
	var sb strings.Builder
	for i, cond := range conds {
		if i > 0 {
			sb.WriteByte(';')
		}
		sb.WriteString(cond.Field)
		sb.WriteByte(':')
		sb.WriteString(cond.Op.String())
		sb.WriteByte('(')
		for j, v := range cond.Values {
			if j > 0 {
				sb.WriteByte(',')
			}
			sb.WriteString(renderValue(v))
		}
		sb.WriteByte(')')
	}
	return sb.String()
}

// renderValue emits one value, quoting when the bare form would be
// ambiguous to re-parse.
func renderValue(v Value) string {
	text := v.String()
	if v.Kind() == KindText && needsQuoting(text) {
		return quote(text)
	}
	return text
}

// needsQuoting reports whether a bare text token would collide with the
// grammar: value and segment separators, a closing paren, a wrapping quote
// pair that Lex would strip, surrounding whitespace that splitting would
// trim, or a literal that would re-lex as a non-text scalar.
func needsQuoting(text string) bool {
	if text == "" {
		return true
	}
	if strings.ContainsAny(text, ",);") {
		return true
	}
	if strings.TrimSpace(text) != text {
		return true
	}
	if len(text) >= 2 {
		if q := text[0]; (q == '"' || q == '\'') && text[len(text)-1] == q {
			return true
		}
	}
	// "5" or "true" must stay text on the way back in.
	return Lex(text).Kind() != KindText
}

// quote wraps text in double quotes, backslash-escaping '\' and '"'.
func quote(text string) string {
	var sb strings.Builder
	sb.Grow(len(text) + 2)
	sb.WriteByte('"')
	for i := 0; i < len(text); i++ {
		if c := text[i]; c == '\\' || c == '"' {
			sb.WriteByte('\\')
		}
		sb.WriteByte(text[i])
	}
	sb.WriteByte('"')
	return sb.String()
}
