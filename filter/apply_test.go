// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package filter

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingSink captures every predicate call as a string, and fails any
// call on the field named by failOn.
type recordingSink struct {
	calls  []string
	failOn string
}

func (r *recordingSink) record(field, format string, args ...interface{}) error {
	if field == r.failOn {
		return errors.New("boom")
	}
	r.calls = append(r.calls, field+" "+fmt.Sprintf(format, args...))
	return nil
}

func (r *recordingSink) Equals(f string, v Value) error    { return r.record(f, "equals %s", v) }
func (r *recordingSink) NotEquals(f string, v Value) error { return r.record(f, "notEquals %s", v) }
func (r *recordingSink) Compare(f string, op Op, v Value) error {
	return r.record(f, "compare %s %s", op, v)
}
func (r *recordingSink) In(f string, vs []Value) error    { return r.record(f, "in %v", vs) }
func (r *recordingSink) NotIn(f string, vs []Value) error { return r.record(f, "notIn %v", vs) }
func (r *recordingSink) Between(f string, lo, hi Value) error {
	return r.record(f, "between %s %s", lo, hi)
}
func (r *recordingSink) NotBetween(f string, lo, hi Value) error {
	return r.record(f, "notBetween %s %s", lo, hi)
}
func (r *recordingSink) Like(f string, p Value) error       { return r.record(f, "like %s", p) }
func (r *recordingSink) NotLike(f string, p Value) error    { return r.record(f, "notLike %s", p) }
func (r *recordingSink) StartsWith(f string, p Value) error { return r.record(f, "startsWith %s", p) }
func (r *recordingSink) EndsWith(f string, p Value) error   { return r.record(f, "endsWith %s", p) }
func (r *recordingSink) IsNull(f string) error              { return r.record(f, "isNull") }
func (r *recordingSink) IsNotNull(f string) error           { return r.record(f, "isNotNull") }
func (r *recordingSink) DateCompare(f string, op Op, v Value) error {
	return r.record(f, "dateCompare %s %s", op, v)
}
func (r *recordingSink) DateBetween(f string, lo, hi Value) error {
	return r.record(f, "dateBetween %s %s", lo, hi)
}
func (r *recordingSink) YearEquals(f string, v Value) error  { return r.record(f, "year %s", v) }
func (r *recordingSink) MonthEquals(f string, v Value) error { return r.record(f, "month %s", v) }
func (r *recordingSink) DayEquals(f string, v Value) error   { return r.record(f, "day %s", v) }
func (r *recordingSink) JSONContains(f string, v Value) error {
	return r.record(f, "jsonContains %s", v)
}
func (r *recordingSink) JSONLengthEquals(f string, v Value) error {
	return r.record(f, "jsonLength %s", v)
}
func (r *recordingSink) MatchesRegex(f string, p Value) error {
	return r.record(f, "regex %s", p)
}

func TestApplyDispatch(t *testing.T) {
	expr := Parse("category:IN(Apartment,Bungalow);price:BETWEEN(100000,500000);" +
		"status:EQ(Published);deleted_at:IS_NULL();name:STARTS_WITH(A);" +
		"created_at:DATE_AFTER(2024-01-01);year:YEAR(2024)")

	sink := &recordingSink{}
	require.NoError(t, Apply(expr, sink))

	assert.Equal(t, []string{
		"category in [Apartment Bungalow]",
		"price between 100000 500000",
		"status equals Published",
		"deleted_at isNull",
		"name startsWith A",
		"created_at dateCompare DATE_GT 2024-01-01",
		"year year 2024",
	}, sink.calls)
}

func TestApplyPreservesDuplicateFields(t *testing.T) {
	expr := Parse("status:EQ(a);status:EQ(b)")

	sink := &recordingSink{}
	require.NoError(t, Apply(expr, sink))

	// Both occurrences apply conjunctively; nothing collapses to last-wins.
	assert.Equal(t, []string{"status equals a", "status equals b"}, sink.calls)
}

func TestApplySkipsArityMismatches(t *testing.T) {
	expr := Expression{
		{Field: "a", Op: OpBetween, Values: []Value{Integer(1)}},
		{Field: "b", Op: OpEQ, Values: nil},
		{Field: "c", Op: OpIsNull, Values: []Value{Text("x")}},
		{Field: "d", Op: OpEQ, Values: []Value{Text("kept")}},
	}

	sink := &recordingSink{}
	require.NoError(t, Apply(expr, sink))

	assert.Equal(t, []string{"d equals kept"}, sink.calls)
}

func TestApplyWrapsSinkErrors(t *testing.T) {
	expr := Parse("ok:EQ(1);bad:EQ(2);never:EQ(3)")

	sink := &recordingSink{failOn: "bad"}
	err := Apply(expr, sink)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSinkRejected)
	assert.ErrorContains(t, err, "boom")

	// The failing condition aborts application; later conditions never run.
	assert.Equal(t, []string{"ok equals 1"}, sink.calls)
}

func TestApplyEmptyExpression(t *testing.T) {
	sink := &recordingSink{}
	require.NoError(t, Apply(nil, sink))
	assert.Empty(t, sink.calls)
}
