// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package filter implements the filtq filter-expression mini-language: a
// compact textual grammar for field-scoped conditions, typically carried in
// a URL query parameter.
//
// A filter string is a list of segments joined by ';'. Each segment has the
// shape field:OPERATOR(values), where values is a comma-separated list of
// scalars:
//
//	category:IN(Apartment,Bungalow);price:BETWEEN(100000,500000);status:EQ(Published)
//
// Scalars are typed from their textual form: plain digits parse as integers,
// a '.' or exponent marks a float, true/false/null are recognized
// case-insensitively, and anything else (or anything quoted) is text. Quoted
// values may contain ',' and ')'.
//
// Operators:
//
//   - Comparison: EQ, NEQ, GT, GTE, LT, LTE
//   - Set membership: IN, NOT_IN
//   - Range: BETWEEN, NOT_BETWEEN
//   - String match: LIKE, NOT_LIKE, STARTS_WITH, ENDS_WITH
//   - Null check: IS_NULL, IS_NOT_NULL
//   - Date: DATE_EQ, DATE_GT, DATE_GTE, DATE_LT, DATE_LTE, DATE_BETWEEN,
//     YEAR, MONTH, DAY
//   - JSON: JSON_CONTAINS, JSON_LENGTH
//   - Pattern: REGEX
//
// Operator lookup is case-insensitive and accepts aliases (EQUALS for EQ,
// NOTIN for NOT_IN, DATE_AFTER for DATE_GT, and so on). Operators() returns
// the full table for help surfaces.
//
// Parsing Philosophy:
//
// Two entry points with deliberately different failure policies exist.
// Parse is lenient: malformed segments, unknown operators and fields outside
// the caller's allow-list are logged and skipped, so one bad clause never
// fails a whole request. Validate is strict: it re-parses the same string
// and reports every deviation as a structured Error with the 0-based segment
// index, for vetting filter strings from untrusted sources before use.
//
// Application:
//
// Apply walks an Expression in textual order and issues one predicate call
// per condition against a caller-supplied Sink. Conditions whose value count
// does not satisfy the operator's arity are skipped, consistent with the
// lenient parse contract. All predicates combine conjunctively; duplicate
// fields are applied as-is, not merged. Sink errors are wrapped with
// ErrSinkRejected so callers can tell them apart from anything the library
// itself produces.
//
// Serialize is the inverse of Parse: it renders conditions back to canonical
// text, double-quoting values that contain grammar metacharacters. For any
// expression produced by Serialize, Validate reports no errors and Parse
// round-trips the conditions.
package filter
