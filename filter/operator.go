// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package filter

import "strings"

// Op is a canonical filter operator. The set is closed: adding an operator
// means extending opTable and the Apply dispatch together.
type Op int

const (
	OpInvalid Op = iota
	OpEQ
	OpNEQ
	OpGT
	OpGTE
	OpLT
	OpLTE
	OpIN
	OpNotIn
	OpBetween
	OpNotBetween
	OpLike
	OpNotLike
	OpStartsWith
	OpEndsWith
	OpIsNull
	OpIsNotNull
	OpDateEQ
	OpDateGT
	OpDateGTE
	OpDateLT
	OpDateLTE
	OpDateBetween
	OpYear
	OpMonth
	OpDay
	OpJSONContains
	OpJSONLength
	OpRegex
)

// Arity constrains how many values an operator accepts.
type Arity int

const (
	ArityZero Arity = iota
	ArityOne
	ArityExactlyTwo
	ArityAnyNonEmpty
)

// Accepts reports whether a value count satisfies the arity class.
func (a Arity) Accepts(n int) bool {
	switch a {
	case ArityZero:
		return n == 0
	case ArityOne:
		return n == 1
	case ArityExactlyTwo:
		// Range operators need a lower and an upper bound; anything past
		// the first two is tolerated and ignored at application time.
		return n >= 2
	default:
		return n >= 1
	}
}

// String describes the arity class for diagnostics.
func (a Arity) String() string {
	switch a {
	case ArityZero:
		return "no values"
	case ArityOne:
		return "exactly one value"
	case ArityExactlyTwo:
		return "exactly two values"
	default:
		return "at least one value"
	}
}

// Category groups operators by the kind of predicate they express.
type Category int

const (
	CategoryComparison Category = iota
	CategorySet
	CategoryRange
	CategoryString
	CategoryNull
	CategoryDate
	CategoryJSON
	CategoryPattern
)

// opInfo is one registry row: canonical name, accepted aliases, arity,
// category and a short description for help surfaces.
type opInfo struct {
	name     string
	aliases  []string
	arity    Arity
	category Category
	desc     string
}

var opTable = map[Op]opInfo{
	OpEQ:           {"EQ", []string{"EQUALS"}, ArityOne, CategoryComparison, "field equals value"},
	OpNEQ:          {"NEQ", []string{"NOT_EQUALS"}, ArityOne, CategoryComparison, "field does not equal value"},
	OpGT:           {"GT", nil, ArityOne, CategoryComparison, "field is greater than value"},
	OpGTE:          {"GTE", nil, ArityOne, CategoryComparison, "field is greater than or equal to value"},
	OpLT:           {"LT", nil, ArityOne, CategoryComparison, "field is less than value"},
	OpLTE:          {"LTE", nil, ArityOne, CategoryComparison, "field is less than or equal to value"},
	OpIN:           {"IN", nil, ArityAnyNonEmpty, CategorySet, "field is one of the values"},
	OpNotIn:        {"NOT_IN", []string{"NOTIN"}, ArityAnyNonEmpty, CategorySet, "field is none of the values"},
	OpBetween:      {"BETWEEN", nil, ArityExactlyTwo, CategoryRange, "field is within the inclusive range"},
	OpNotBetween:   {"NOT_BETWEEN", []string{"NOTBETWEEN"}, ArityExactlyTwo, CategoryRange, "field is outside the inclusive range"},
	OpLike:         {"LIKE", nil, ArityOne, CategoryString, "field matches the SQL-style pattern"},
	OpNotLike:      {"NOT_LIKE", []string{"NOTLIKE"}, ArityOne, CategoryString, "field does not match the SQL-style pattern"},
	OpStartsWith:   {"STARTS_WITH", []string{"STARTSWITH"}, ArityOne, CategoryString, "field starts with value"},
	OpEndsWith:     {"ENDS_WITH", []string{"ENDSWITH"}, ArityOne, CategoryString, "field ends with value"},
	OpIsNull:       {"IS_NULL", []string{"ISNULL"}, ArityZero, CategoryNull, "field is null"},
	OpIsNotNull:    {"IS_NOT_NULL", []string{"ISNOTNULL", "NOT_NULL", "NOTNULL"}, ArityZero, CategoryNull, "field is not null"},
	OpDateEQ:       {"DATE_EQ", nil, ArityOne, CategoryDate, "date part of field equals value"},
	OpDateGT:       {"DATE_GT", []string{"DATE_AFTER"}, ArityOne, CategoryDate, "date part of field is after value"},
	OpDateGTE:      {"DATE_GTE", []string{"DATE_FROM"}, ArityOne, CategoryDate, "date part of field is on or after value"},
	OpDateLT:       {"DATE_LT", []string{"DATE_BEFORE"}, ArityOne, CategoryDate, "date part of field is before value"},
	OpDateLTE:      {"DATE_LTE", []string{"DATE_TO"}, ArityOne, CategoryDate, "date part of field is on or before value"},
	OpDateBetween:  {"DATE_BETWEEN", nil, ArityExactlyTwo, CategoryDate, "date part of field is within the inclusive range"},
	OpYear:         {"YEAR", nil, ArityOne, CategoryDate, "year of field equals value"},
	OpMonth:        {"MONTH", nil, ArityOne, CategoryDate, "month of field equals value"},
	OpDay:          {"DAY", nil, ArityOne, CategoryDate, "day of field equals value"},
	OpJSONContains: {"JSON_CONTAINS", nil, ArityOne, CategoryJSON, "JSON array field contains value"},
	OpJSONLength:   {"JSON_LENGTH", nil, ArityOne, CategoryJSON, "JSON array field has the given length"},
	OpRegex:        {"REGEX", []string{"REGEXP"}, ArityOne, CategoryPattern, "field matches the regular expression"},
}

// opLookup maps upper-cased canonical names and aliases to operators.
var opLookup = func() map[string]Op {
	m := make(map[string]Op, len(opTable)*2)
	for op, info := range opTable {
		m[info.name] = op
		for _, alias := range info.aliases {
			m[alias] = op
		}
	}
	return m
}()

// LookupOp resolves an operator token case-insensitively, accepting aliases.
func LookupOp(token string) (Op, bool) {
	op, ok := opLookup[strings.ToUpper(strings.TrimSpace(token))]
	return op, ok
}

// String returns the canonical operator name.
func (o Op) String() string {
	if info, ok := opTable[o]; ok {
		return info.name
	}
	return "INVALID"
}

// Arity returns the operator's arity class.
func (o Op) Arity() Arity { return opTable[o].arity }

// Category returns the operator's category.
func (o Op) Category() Category { return opTable[o].category }

// Operators returns every canonical operator name mapped to its
// description, for help and UI surfaces.
func Operators() map[string]string {
	m := make(map[string]string, len(opTable))
	for _, info := range opTable {
		m[info.name] = info.desc
	}
	return m
}
