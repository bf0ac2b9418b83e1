// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package filter

import (
	"errors"
	"fmt"

	"github.com/filtq/filtq/internal/log"
)

// ErrSinkRejected marks errors returned by a Sink during Apply. Callers can
// use errors.Is to tell a sink failure apart from anything this package
// produces itself.
var ErrSinkRejected = errors.New("sink rejected condition")

// Sink is the capability a query target exposes to receive predicates. Each
// method corresponds to one operator family; implementations that cannot
// express a predicate should return an error, which Apply wraps with
// ErrSinkRejected. All predicates issued for one expression combine with
// logical AND, in expression order.
type Sink interface {
	Equals(field string, v Value) error
	NotEquals(field string, v Value) error
	// Compare receives one of OpGT, OpGTE, OpLT, OpLTE.
	Compare(field string, op Op, v Value) error
	In(field string, vs []Value) error
	NotIn(field string, vs []Value) error
	Between(field string, lo, hi Value) error
	NotBetween(field string, lo, hi Value) error
	Like(field string, pattern Value) error
	NotLike(field string, pattern Value) error
	StartsWith(field string, prefix Value) error
	EndsWith(field string, suffix Value) error
	IsNull(field string) error
	IsNotNull(field string) error
	// DateCompare receives one of OpDateEQ, OpDateGT, OpDateGTE,
	// OpDateLT, OpDateLTE.
	DateCompare(field string, op Op, v Value) error
	DateBetween(field string, from, to Value) error
	YearEquals(field string, v Value) error
	MonthEquals(field string, v Value) error
	DayEquals(field string, v Value) error
	JSONContains(field string, v Value) error
	JSONLengthEquals(field string, v Value) error
	MatchesRegex(field string, pattern Value) error
}

// Apply issues one predicate per condition against sink, in expression
// order. Conditions whose value count does not satisfy the operator's arity
// are skipped, consistent with the lenient parse contract. The first sink
// error aborts and is returned wrapped with ErrSinkRejected.
func Apply(expr Expression, sink Sink) error {
	for _, cond := range expr {
		if !cond.Op.Arity().Accepts(len(cond.Values)) {
			log.Debugf("arity mismatch, skipping condition: field=%s operator=%s values=%d",
				cond.Field, cond.Op, len(cond.Values))
			continue
		}
		if err := dispatch(cond, sink); err != nil {
			return fmt.Errorf("%w: %s: %w", ErrSinkRejected, cond, err)
		}
	}
	return nil
}

// dispatch maps one condition to its sink predicate. The switch is
// exhaustive over the operator set; arity has already been checked.
func dispatch(cond Condition, sink Sink) error {
	field, vs := cond.Field, cond.Values

	switch cond.Op {
	case OpEQ:
		return sink.Equals(field, vs[0])
	case OpNEQ:
		return sink.NotEquals(field, vs[0])
	case OpGT, OpGTE, OpLT, OpLTE:
		return sink.Compare(field, cond.Op, vs[0])
	case OpIN:
		return sink.In(field, vs)
	case OpNotIn:
		return sink.NotIn(field, vs)
	case OpBetween:
		return sink.Between(field, vs[0], vs[1])
	case OpNotBetween:
		return sink.NotBetween(field, vs[0], vs[1])
	case OpLike:
		return sink.Like(field, vs[0])
	case OpNotLike:
		return sink.NotLike(field, vs[0])
	case OpStartsWith:
		return sink.StartsWith(field, vs[0])
	case OpEndsWith:
		return sink.EndsWith(field, vs[0])
	case OpIsNull:
		return sink.IsNull(field)
	case OpIsNotNull:
		return sink.IsNotNull(field)
	case OpDateEQ, OpDateGT, OpDateGTE, OpDateLT, OpDateLTE:
		return sink.DateCompare(field, cond.Op, vs[0])
	case OpDateBetween:
		return sink.DateBetween(field, vs[0], vs[1])
	case OpYear:
		return sink.YearEquals(field, vs[0])
	case OpMonth:
		return sink.MonthEquals(field, vs[0])
	case OpDay:
		return sink.DayEquals(field, vs[0])
	case OpJSONContains:
		return sink.JSONContains(field, vs[0])
	case OpJSONLength:
		return sink.JSONLengthEquals(field, vs[0])
	case OpRegex:
		return sink.MatchesRegex(field, vs[0])
	default:
		return fmt.Errorf("no dispatch for operator %s", cond.Op)
	}
}
