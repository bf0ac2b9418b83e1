// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSerialize(t *testing.T) {
	tests := []struct {
		name  string
		conds []Condition
		want  string
	}{
		{
			name:  "no conditions",
			conds: nil,
			want:  "",
		},
		{
			name: "single condition",
			conds: []Condition{
				{Field: "status", Op: OpEQ, Values: []Value{Text("Published")}},
			},
			want: "status:EQ(Published)",
		},
		{
			name: "numeric range",
			conds: []Condition{
				{Field: "price", Op: OpBetween, Values: []Value{Integer(100000), Integer(500000)}},
			},
			want: "price:BETWEEN(100000,500000)",
		},
		{
			name: "segments joined in order",
			conds: []Condition{
				{Field: "category", Op: OpIN, Values: []Value{Text("Apartment"), Text("Bungalow")}},
				{Field: "status", Op: OpEQ, Values: []Value{Text("Published")}},
			},
			want: "category:IN(Apartment,Bungalow);status:EQ(Published)",
		},
		{
			name: "literals render bare",
			conds: []Condition{
				{Field: "active", Op: OpEQ, Values: []Value{Bool(true)}},
				{Field: "rate", Op: OpGT, Values: []Value{Float(2.5)}},
				{Field: "gone", Op: OpNEQ, Values: []Value{Null()}},
			},
			want: "active:EQ(true);rate:GT(2.5);gone:NEQ(null)",
		},
		{
			name: "zero arity renders empty parens",
			conds: []Condition{
				{Field: "deleted_at", Op: OpIsNull},
			},
			want: "deleted_at:IS_NULL()",
		},
		{
			name: "comma in text is quoted",
			conds: []Condition{
				{Field: "name", Op: OpEQ, Values: []Value{Text("Smith, John")}},
			},
			want: `name:EQ("Smith, John")`,
		},
		{
			name: "closing paren in text is quoted",
			conds: []Condition{
				{Field: "note", Op: OpLike, Values: []Value{Text("a)b")}},
			},
			want: `note:LIKE("a)b")`,
		},
		{
			name: "quote and backslash are escaped",
			conds: []Condition{
				{Field: "q", Op: OpEQ, Values: []Value{Text(`say "hi" \o/,ok`)}},
			},
			want: `q:EQ("say \"hi\" \\o/,ok")`,
		},
		{
			name: "text that looks numeric is quoted",
			conds: []Condition{
				{Field: "code", Op: OpEQ, Values: []Value{Text("5")}},
			},
			want: `code:EQ("5")`,
		},
		{
			name: "duplicate fields preserved",
			conds: []Condition{
				{Field: "status", Op: OpEQ, Values: []Value{Text("a")}},
				{Field: "status", Op: OpEQ, Values: []Value{Text("b")}},
			},
			want: "status:EQ(a);status:EQ(b)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Serialize(tt.conds))
		})
	}
}

// TestSerializeParseRoundTrip ensures Parse(Serialize(conds)) reproduces the
// conditions exactly, quoting included.
func TestSerializeParseRoundTrip(t *testing.T) {
	conds := []Condition{
		{Field: "status", Op: OpEQ, Values: []Value{Text("active")}},
		{Field: "price", Op: OpBetween, Values: []Value{Integer(100000), Integer(500000)}},
		{Field: "name", Op: OpEQ, Values: []Value{Text("Smith, John")}},
		{Field: "code", Op: OpEQ, Values: []Value{Text("5")}},
		{Field: "sbeds", Op: OpIN, Values: []Value{Text("Studio"), Integer(1), Integer(2), Integer(3)}},
		{Field: "rate", Op: OpLTE, Values: []Value{Float(0.25)}},
		{Field: "active", Op: OpEQ, Values: []Value{Bool(false)}},
		{Field: "deleted_at", Op: OpIsNull},
		{Field: "status", Op: OpEQ, Values: []Value{Text("other")}},
	}

	got := Parse(Serialize(conds))
	require.Len(t, got, len(conds))

	for i, want := range conds {
		assert.Equal(t, want.Field, got[i].Field)
		assert.Equal(t, want.Op, got[i].Op)
		require.Len(t, got[i].Values, len(want.Values))
		for j := range want.Values {
			assert.Equal(t, want.Values[j], got[i].Values[j])
		}
	}
}

func TestConditionString(t *testing.T) {
	cond := Condition{Field: "price", Op: OpBetween, Values: []Value{Integer(1), Integer(2)}}
	assert.Equal(t, "price:BETWEEN(1,2)", cond.String())

	expr := Expression{cond, {Field: "x", Op: OpIsNotNull}}
	assert.Equal(t, "price:BETWEEN(1,2);x:IS_NOT_NULL()", expr.String())
}
