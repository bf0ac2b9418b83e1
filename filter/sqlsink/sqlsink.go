// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package sqlsink

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/filtq/filtq/filter"
)

// ErrUnsupported is returned for operators with no portable SQL rendering.
// filter.Apply wraps it with filter.ErrSinkRejected.
var ErrUnsupported = errors.New("operator not supported by the SQL dialect")

// identRegex limits field names to plain column identifiers (optionally
// dotted for table qualification). Anything else is rejected rather than
// interpolated into SQL.
var identRegex = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*(\.[A-Za-z_][A-Za-z0-9_]*)?$`)

// Sink renders filter predicates into a parameterized SQL WHERE fragment.
// It implements filter.Sink; after filter.Apply, Clause returns the
// " AND "-joined fragment and its ordered arguments, ready for database/sql.
// Field names are validated as identifiers and never carry values; all
// values travel as placeholder arguments.
type Sink struct {
	clauses []string
	args    []any
}

// New returns an empty Sink.
func New() *Sink { return &Sink{} }

// Clause returns the accumulated WHERE fragment and its arguments. With no
// predicates applied the fragment is empty.
func (s *Sink) Clause() (string, []any) {
	return strings.Join(s.clauses, " AND "), s.args
}

// add appends one rendered predicate after validating the field name.
func (s *Sink) add(field, format string, args ...filter.Value) error {
	if !identRegex.MatchString(field) {
		return fmt.Errorf("invalid column name %q", field)
	}
	s.clauses = append(s.clauses, fmt.Sprintf(format, field))
	for _, v := range args {
		s.args = append(s.args, sqlArg(v))
	}
	return nil
}

// Equals implements filter.Sink.
func (s *Sink) Equals(field string, v filter.Value) error {
	if v.IsNull() {
		return s.add(field, "%s IS NULL")
	}
	return s.add(field, "%s = ?", v)
}

// NotEquals implements filter.Sink.
func (s *Sink) NotEquals(field string, v filter.Value) error {
	if v.IsNull() {
		return s.add(field, "%s IS NOT NULL")
	}
	return s.add(field, "%s <> ?", v)
}

// Compare implements filter.Sink for GT, GTE, LT and LTE.
func (s *Sink) Compare(field string, op filter.Op, v filter.Value) error {
	var sym string
	switch op {
	case filter.OpGT:
		sym = ">"
	case filter.OpGTE:
		sym = ">="
	case filter.OpLT:
		sym = "<"
	default:
		sym = "<="
	}
	return s.add(field, "%s "+sym+" ?", v)
}

// In implements filter.Sink.
func (s *Sink) In(field string, vs []filter.Value) error {
	return s.add(field, "%s IN ("+placeholders(len(vs))+")", vs...)
}

// NotIn implements filter.Sink.
func (s *Sink) NotIn(field string, vs []filter.Value) error {
	return s.add(field, "%s NOT IN ("+placeholders(len(vs))+")", vs...)
}

// Between implements filter.Sink.
func (s *Sink) Between(field string, lo, hi filter.Value) error {
	return s.add(field, "%s BETWEEN ? AND ?", lo, hi)
}

// NotBetween implements filter.Sink.
func (s *Sink) NotBetween(field string, lo, hi filter.Value) error {
	return s.add(field, "%s NOT BETWEEN ? AND ?", lo, hi)
}

// Like implements filter.Sink. The pattern is passed through untouched, so
// callers use SQL wildcards directly.
func (s *Sink) Like(field string, pattern filter.Value) error {
	return s.add(field, "%s LIKE ?", pattern)
}

// NotLike implements filter.Sink.
func (s *Sink) NotLike(field string, pattern filter.Value) error {
	return s.add(field, "%s NOT LIKE ?", pattern)
}

// StartsWith implements filter.Sink. Wildcards in the prefix are escaped so
// it matches literally.
func (s *Sink) StartsWith(field string, prefix filter.Value) error {
	return s.add(field, `%s LIKE ? ESCAPE '\'`, filter.Text(escapeLike(prefix.String())+"%"))
}

// EndsWith implements filter.Sink.
func (s *Sink) EndsWith(field string, suffix filter.Value) error {
	return s.add(field, `%s LIKE ? ESCAPE '\'`, filter.Text("%"+escapeLike(suffix.String())))
}

// IsNull implements filter.Sink.
func (s *Sink) IsNull(field string) error {
	return s.add(field, "%s IS NULL")
}

// IsNotNull implements filter.Sink.
func (s *Sink) IsNotNull(field string) error {
	return s.add(field, "%s IS NOT NULL")
}

// DateCompare implements filter.Sink for the DATE_EQ..DATE_LTE family,
// comparing on the date part of both sides.
func (s *Sink) DateCompare(field string, op filter.Op, v filter.Value) error {
	var sym string
	switch op {
	case filter.OpDateEQ:
		sym = "="
	case filter.OpDateGT:
		sym = ">"
	case filter.OpDateGTE:
		sym = ">="
	case filter.OpDateLT:
		sym = "<"
	default:
		sym = "<="
	}
	return s.add(field, "date(%s) "+sym+" date(?)", v)
}

// DateBetween implements filter.Sink.
func (s *Sink) DateBetween(field string, from, to filter.Value) error {
	return s.add(field, "date(%s) BETWEEN date(?) AND date(?)", from, to)
}

// YearEquals implements filter.Sink.
func (s *Sink) YearEquals(field string, v filter.Value) error {
	return s.add(field, "CAST(strftime('%%Y', %s) AS INTEGER) = ?", v)
}

// MonthEquals implements filter.Sink.
func (s *Sink) MonthEquals(field string, v filter.Value) error {
	return s.add(field, "CAST(strftime('%%m', %s) AS INTEGER) = ?", v)
}

// DayEquals implements filter.Sink.
func (s *Sink) DayEquals(field string, v filter.Value) error {
	return s.add(field, "CAST(strftime('%%d', %s) AS INTEGER) = ?", v)
}

// JSONContains implements filter.Sink. There is no portable rendering, so
// the condition is rejected rather than emitting broken SQL.
func (s *Sink) JSONContains(string, filter.Value) error {
	return fmt.Errorf("%w: JSON_CONTAINS", ErrUnsupported)
}

// JSONLengthEquals implements filter.Sink using the json1 function family.
func (s *Sink) JSONLengthEquals(field string, v filter.Value) error {
	return s.add(field, "json_array_length(%s) = ?", v)
}

// MatchesRegex implements filter.Sink. REGEXP needs a loadable extension on
// most targets, so the condition is rejected.
func (s *Sink) MatchesRegex(string, filter.Value) error {
	return fmt.Errorf("%w: REGEX", ErrUnsupported)
}

// sqlArg converts a filter scalar to its database/sql argument form.
func sqlArg(v filter.Value) any {
	switch v.Kind() {
	case filter.KindInteger:
		i, _ := v.Int()
		return i
	case filter.KindFloat:
		f, _ := v.Float64()
		return f
	case filter.KindBool:
		b, _ := v.BoolVal()
		return b
	case filter.KindNull:
		return nil
	default:
		return v.String()
	}
}

// placeholders returns n comma-joined '?' marks.
func placeholders(n int) string {
	marks := make([]string, n)
	for i := range marks {
		marks[i] = "?"
	}
	return strings.Join(marks, ",")
}

// escapeLike backslash-escapes LIKE wildcards and the escape char itself.
func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`)
	return r.Replace(s)
}
