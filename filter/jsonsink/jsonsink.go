// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package jsonsink

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/tidwall/gjson"

	"github.com/filtq/filtq/filter"
	"github.com/filtq/filtq/internal/pathx"
)

// Sink evaluates predicates against a single JSON document. It implements
// filter.Sink; after filter.Apply the Matched method reports whether the
// document satisfied every condition. A fresh Sink is needed per document.
type Sink struct {
	doc     gjson.Result
	matched bool
}

// New returns a Sink over one JSON document.
func New(doc gjson.Result) *Sink {
	return &Sink{doc: doc, matched: true}
}

// Matched reports whether the document satisfied all predicates applied so
// far. A Sink with no predicates applied matches.
func (s *Sink) Matched() bool { return s.matched }

// Filter applies expr to every element of a JSON array and returns the
// elements that match. The error is non-nil only when a predicate itself is
// unusable (bad regex, unparseable date value in the filter).
func Filter(docs gjson.Result, expr filter.Expression) ([]gjson.Result, error) {
	//nolint:prealloc // Match count is unknown up front.
	var matched []gjson.Result
	for _, doc := range docs.Array() {
		sink := New(doc)
		if err := filter.Apply(expr, sink); err != nil {
			return nil, err
		}
		if sink.Matched() {
			matched = append(matched, doc)
		}
	}
	return matched, nil
}

// require folds one predicate outcome into the running conjunction.
func (s *Sink) require(ok bool) error {
	s.matched = s.matched && ok
	return nil
}

// resolve returns the document value addressed by the field path.
func (s *Sink) resolve(field string) gjson.Result {
	return pathx.Get(s.doc, field)
}

// Equals implements filter.Sink.
func (s *Sink) Equals(field string, v filter.Value) error {
	return s.require(equals(s.resolve(field), v))
}

// NotEquals implements filter.Sink.
func (s *Sink) NotEquals(field string, v filter.Value) error {
	res := s.resolve(field)
	return s.require(res.Exists() && !equals(res, v))
}

// Compare implements filter.Sink for GT, GTE, LT and LTE.
func (s *Sink) Compare(field string, op filter.Op, v filter.Value) error {
	cmp, ok := compare(s.resolve(field), v)
	if !ok {
		return s.require(false)
	}
	switch op {
	case filter.OpGT:
		return s.require(cmp > 0)
	case filter.OpGTE:
		return s.require(cmp >= 0)
	case filter.OpLT:
		return s.require(cmp < 0)
	default:
		return s.require(cmp <= 0)
	}
}

// In implements filter.Sink.
func (s *Sink) In(field string, vs []filter.Value) error {
	res := s.resolve(field)
	for _, v := range vs {
		if equals(res, v) {
			return s.require(true)
		}
	}
	return s.require(false)
}

// NotIn implements filter.Sink.
func (s *Sink) NotIn(field string, vs []filter.Value) error {
	res := s.resolve(field)
	if !res.Exists() {
		return s.require(false)
	}
	for _, v := range vs {
		if equals(res, v) {
			return s.require(false)
		}
	}
	return s.require(true)
}

// Between implements filter.Sink.
func (s *Sink) Between(field string, lo, hi filter.Value) error {
	res := s.resolve(field)
	lower, okLo := compare(res, lo)
	upper, okHi := compare(res, hi)
	return s.require(okLo && okHi && lower >= 0 && upper <= 0)
}

// NotBetween implements filter.Sink.
func (s *Sink) NotBetween(field string, lo, hi filter.Value) error {
	res := s.resolve(field)
	if !res.Exists() {
		return s.require(false)
	}
	lower, okLo := compare(res, lo)
	upper, okHi := compare(res, hi)
	return s.require(okLo && okHi && (lower < 0 || upper > 0))
}

// Like implements filter.Sink with SQL-style '%' and '_' wildcards.
func (s *Sink) Like(field string, pattern filter.Value) error {
	re, err := likeRegexp(pattern.String())
	if err != nil {
		return err
	}
	return s.require(re.MatchString(s.resolve(field).String()))
}

// NotLike implements filter.Sink.
func (s *Sink) NotLike(field string, pattern filter.Value) error {
	re, err := likeRegexp(pattern.String())
	if err != nil {
		return err
	}
	res := s.resolve(field)
	return s.require(res.Exists() && !re.MatchString(res.String()))
}

// StartsWith implements filter.Sink.
func (s *Sink) StartsWith(field string, prefix filter.Value) error {
	res := s.resolve(field)
	return s.require(res.Exists() && strings.HasPrefix(res.String(), prefix.String()))
}

// EndsWith implements filter.Sink.
func (s *Sink) EndsWith(field string, suffix filter.Value) error {
	res := s.resolve(field)
	return s.require(res.Exists() && strings.HasSuffix(res.String(), suffix.String()))
}

// IsNull implements filter.Sink. Absent fields count as null.
func (s *Sink) IsNull(field string) error {
	res := s.resolve(field)
	return s.require(!res.Exists() || res.Type == gjson.Null)
}

// IsNotNull implements filter.Sink.
func (s *Sink) IsNotNull(field string) error {
	res := s.resolve(field)
	return s.require(res.Exists() && res.Type != gjson.Null)
}

// DateCompare implements filter.Sink for the DATE_EQ..DATE_LTE family. The
// comparison runs on the date part only, so a timestamp equals its day.
func (s *Sink) DateCompare(field string, op filter.Op, v filter.Value) error {
	want, err := parseDate(v.String())
	if err != nil {
		return err
	}
	have, ok := fieldDate(s.resolve(field))
	if !ok {
		return s.require(false)
	}
	switch op {
	case filter.OpDateEQ:
		return s.require(have.Equal(want))
	case filter.OpDateGT:
		return s.require(have.After(want))
	case filter.OpDateGTE:
		return s.require(!have.Before(want))
	case filter.OpDateLT:
		return s.require(have.Before(want))
	default:
		return s.require(!have.After(want))
	}
}

// DateBetween implements filter.Sink.
func (s *Sink) DateBetween(field string, from, to filter.Value) error {
	lo, err := parseDate(from.String())
	if err != nil {
		return err
	}
	hi, err := parseDate(to.String())
	if err != nil {
		return err
	}
	have, ok := fieldDate(s.resolve(field))
	if !ok {
		return s.require(false)
	}
	return s.require(!have.Before(lo) && !have.After(hi))
}

// YearEquals implements filter.Sink.
func (s *Sink) YearEquals(field string, v filter.Value) error {
	return s.datePart(field, v, func(t time.Time) int { return t.Year() })
}

// MonthEquals implements filter.Sink.
func (s *Sink) MonthEquals(field string, v filter.Value) error {
	return s.datePart(field, v, func(t time.Time) int { return int(t.Month()) })
}

// DayEquals implements filter.Sink.
func (s *Sink) DayEquals(field string, v filter.Value) error {
	return s.datePart(field, v, func(t time.Time) int { return t.Day() })
}

// datePart compares one calendar component of the field's date.
func (s *Sink) datePart(field string, v filter.Value, part func(time.Time) int) error {
	want, ok := v.Int()
	if !ok {
		return fmt.Errorf("date part must be an integer, got %s", v)
	}
	have, found := fieldDate(s.resolve(field))
	return s.require(found && int64(part(have)) == want)
}

// JSONContains implements filter.Sink: the field must be an array holding
// the value, or an object holding it as a key.
func (s *Sink) JSONContains(field string, v filter.Value) error {
	res := s.resolve(field)
	switch {
	case res.IsArray():
		for _, item := range res.Array() {
			if equals(item, v) {
				return s.require(true)
			}
		}
		return s.require(false)
	case res.IsObject():
		return s.require(res.Get(v.String()).Exists())
	default:
		return s.require(false)
	}
}

// JSONLengthEquals implements filter.Sink for array and object lengths.
func (s *Sink) JSONLengthEquals(field string, v filter.Value) error {
	want, ok := v.Int()
	if !ok {
		return fmt.Errorf("length must be an integer, got %s", v)
	}
	res := s.resolve(field)
	switch {
	case res.IsArray():
		return s.require(int64(len(res.Array())) == want)
	case res.IsObject():
		return s.require(int64(len(res.Map())) == want)
	default:
		return s.require(false)
	}
}

// MatchesRegex implements filter.Sink.
func (s *Sink) MatchesRegex(field string, pattern filter.Value) error {
	re, err := regexp.Compile(pattern.String())
	if err != nil {
		return fmt.Errorf("invalid regex %q: %w", pattern.String(), err)
	}
	return s.require(re.MatchString(s.resolve(field).String()))
}

// equals compares a document value with a filter scalar using the scalar's
// type: numeric values compare numerically, null matches JSON null, and
// everything else falls back to the canonical string form.
func equals(res gjson.Result, v filter.Value) bool {
	if !res.Exists() {
		return v.IsNull()
	}
	if v.IsNull() {
		return res.Type == gjson.Null
	}
	if f, ok := v.Float64(); ok && res.Type == gjson.Number {
		return res.Float() == f
	}
	if b, ok := v.BoolVal(); ok && (res.Type == gjson.True || res.Type == gjson.False) {
		return res.Bool() == b
	}
	return res.String() == v.String()
}

// compare orders a document value against a filter scalar: negative when
// the document value is smaller. Numeric when both sides are numeric,
// string order otherwise. ok is false for absent fields.
func compare(res gjson.Result, v filter.Value) (int, bool) {
	if !res.Exists() {
		return 0, false
	}
	if f, ok := v.Float64(); ok && res.Type == gjson.Number {
		switch have := res.Float(); {
		case have > f:
			return 1, true
		case have < f:
			return -1, true
		default:
			return 0, true
		}
	}
	return strings.Compare(res.String(), v.String()), true
}

// likeRegexp converts a SQL LIKE pattern to an anchored regexp: '%' matches
// any run, '_' any single character, everything else is literal.
func likeRegexp(pattern string) (*regexp.Regexp, error) {
	var sb strings.Builder
	sb.WriteString("^")
	for _, r := range pattern {
		switch r {
		case '%':
			sb.WriteString(".*")
		case '_':
			sb.WriteString(".")
		default:
			sb.WriteString(regexp.QuoteMeta(string(r)))
		}
	}
	sb.WriteString("$")
	re, err := regexp.Compile(sb.String())
	if err != nil {
		return nil, fmt.Errorf("invalid LIKE pattern %q: %w", pattern, err)
	}
	return re, nil
}

// dateLayouts are accepted for document and filter date values.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// parseDate parses a date string and truncates it to its calendar day.
func parseDate(s string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			y, m, d := t.Date()
			return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), nil
		}
	}
	return time.Time{}, fmt.Errorf("unparseable date %q", s)
}

// fieldDate parses the document value as a date; ok is false when it does
// not hold one.
func fieldDate(res gjson.Result) (time.Time, bool) {
	if !res.Exists() || res.Type != gjson.String {
		return time.Time{}, false
	}
	t, err := parseDate(res.String())
	return t, err == nil
}
