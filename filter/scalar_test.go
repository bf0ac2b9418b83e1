// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package filter

import (
	"testing"
)

func TestLex(t *testing.T) {
	tests := []struct {
		name  string
		token string
		want  Value
	}{
		// Numeric classification happens on the textual form.
		{name: "plain digits", token: "42", want: Integer(42)},
		{name: "negative integer", token: "-7", want: Integer(-7)},
		{name: "explicit plus sign", token: "+5", want: Integer(5)},
		{name: "decimal point makes a float", token: "99.5", want: Float(99.5)},
		{name: "exponent makes a float", token: "1e3", want: Float(1000)},
		{name: "negative float", token: "-0.25", want: Float(-0.25)},
		{name: "sign and exponent", token: "-1.5E2", want: Float(-150)},
		// Booleans and null are case-insensitive.
		{name: "true", token: "true", want: Bool(true)},
		{name: "false upper", token: "FALSE", want: Bool(false)},
		{name: "null mixed case", token: "Null", want: Null()},
		// Quoted tokens are text with no inference.
		{name: "double quoted", token: `"hello"`, want: Text("hello")},
		{name: "single quoted", token: "'hello'", want: Text("hello")},
		{name: "quoted digits stay text", token: `"5"`, want: Text("5")},
		{name: "quoted true stays text", token: `"true"`, want: Text("true")},
		{name: "quoted comma survives", token: `"Smith, John"`, want: Text("Smith, John")},
		{name: "escaped quote inside", token: `"say \"hi\""`, want: Text(`say "hi"`)},
		{name: "escaped backslash", token: `"a\\b"`, want: Text(`a\b`)},
		{name: "empty quotes", token: `""`, want: Text("")},
		// Everything else is text.
		{name: "bare word", token: "Apartment", want: Text("Apartment")},
		{name: "two dots is text", token: "1.2.3", want: Text("1.2.3")},
		{name: "lone sign is text", token: "-", want: Text("-")},
		{name: "lone dot is text", token: ".", want: Text(".")},
		{name: "trailing exponent is text", token: "5e", want: Text("5e")},
		{name: "mismatched quotes are text", token: `"half`, want: Text(`"half`)},
		{name: "empty token is text", token: "", want: Text("")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Lex(tt.token); got != tt.want {
				t.Errorf("Lex(%q) = %v (%s), want %v (%s)",
					tt.token, got, got.Kind(), tt.want, tt.want.Kind())
			}
		})
	}
}

func TestValueString(t *testing.T) {
	tests := []struct {
		value Value
		want  string
	}{
		{Integer(100000), "100000"},
		{Float(99.5), "99.5"},
		{Bool(true), "true"},
		{Bool(false), "false"},
		{Null(), "null"},
		{Text("Published"), "Published"},
	}

	for _, tt := range tests {
		if got := tt.value.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestSplitValues(t *testing.T) {
	tests := []struct {
		name  string
		inner string
		want  []string
	}{
		{name: "empty input", inner: "", want: nil},
		{name: "blank input", inner: "   ", want: nil},
		{name: "single token", inner: "active", want: []string{"active"}},
		{name: "plain list", inner: "a,b,c", want: []string{"a", "b", "c"}},
		{name: "tokens are trimmed", inner: " a , b ", want: []string{"a", "b"}},
		{name: "quoted comma is opaque", inner: `"Smith, John",other`, want: []string{`"Smith, John"`, "other"}},
		{name: "quoted paren is opaque", inner: `"a)b"`, want: []string{`"a)b"`}},
		{name: "single quotes too", inner: "'x,y',z", want: []string{"'x,y'", "z"}},
		{name: "escaped quote inside double quotes", inner: `"a\",b",c`, want: []string{`"a\",b"`, "c"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitValues(tt.inner)
			if len(got) != len(tt.want) {
				t.Fatalf("SplitValues(%q) = %v, want %v", tt.inner, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("SplitValues(%q)[%d] = %q, want %q", tt.inner, i, got[i], tt.want[i])
				}
			}
		})
	}
}
