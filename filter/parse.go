// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package filter

import (
	"regexp"
	"strings"

	"github.com/filtq/filtq/internal/log"
)

// segmentRegex parses one segment into field, operator and values: field is
// everything before the first ':', the operator token sits between ':' and
// the first '(', and the values run to the final ')'. The final group is
// greedy so quoted values may themselves contain ')'. Examples:
// "status:EQ(active)", "price:BETWEEN(1,2)", "deleted:IS_NULL()".
var segmentRegex = regexp.MustCompile(`^([^:]*):([^(]+)\((.*)\)$`)

// Condition is one parsed field/operator/values clause. Field is raw user
// text; allow-list checks happen at parse time, not at construction.
type Condition struct {
	Field  string
	Op     Op
	Values []Value
}

// String renders the condition in canonical filter-string form.
func (c Condition) String() string { return Serialize([]Condition{c}) }

// Expression is an ordered list of conditions, in textual order of
// appearance. Duplicate fields are preserved as separate entries and applied
// conjunctively, never merged.
type Expression []Condition

// String renders the expression in canonical filter-string form.
func (e Expression) String() string { return Serialize(e) }

// Parse parses a filter string leniently into an Expression. Empty segments
// are discarded, malformed segments and unknown value-less operators are
// logged and skipped, and an unknown operator with values falls back to EQ
// over the first value. If allowed is non-empty, conditions on fields
// outside it are dropped silently. Parse never fails; the worst outcome is
// a smaller (possibly empty) expression.
func Parse(spec string, allowed ...string) Expression {
	//nolint:prealloc // Segment count is unknown until parsed.
	var expr Expression

	if strings.TrimSpace(spec) == "" {
		return expr
	}

	for _, segment := range splitTop(spec, ';') {
		cond, ok := parseSegment(segment)
		if !ok {
			continue
		}
		if len(allowed) > 0 && !fieldAllowed(cond.Field, allowed) {
			log.Debugf("field not allowed, dropping condition: field=%s", cond.Field)
			continue
		}
		expr = append(expr, cond)
	}

	return expr
}

// parseSegment parses one field:OPERATOR(values) segment. ok is false when
// the segment cannot yield a condition under the lenient rules.
func parseSegment(segment string) (Condition, bool) {
	parts := segmentRegex.FindStringSubmatch(segment)
	if parts == nil {
		log.Debugf("malformed segment, skipping: segment=%s", segment)
		return Condition{}, false
	}

	field := strings.TrimSpace(parts[1])
	if field == "" {
		log.Debugf("empty field, skipping: segment=%s", segment)
		return Condition{}, false
	}

	values := lexValues(parts[3])

	op, known := LookupOp(parts[2])
	if !known {
		// Unknown operators degrade to EQ over the first value rather
		// than failing the segment. With no value there is nothing to
		// compare against, so the segment is dropped.
		if len(values) == 0 {
			log.Debugf("unknown operator with no values, skipping: segment=%s", segment)
			return Condition{}, false
		}
		log.Debugf("unknown operator, falling back to EQ: operator=%s", parts[2])
		return Condition{Field: field, Op: OpEQ, Values: values[:1]}, true
	}

	return Condition{Field: field, Op: op, Values: values}, true
}

// lexValues splits a raw value list and lexes each piece into a Value.
func lexValues(inner string) []Value {
	tokens := SplitValues(inner)
	if len(tokens) == 0 {
		return nil
	}
	values := make([]Value, len(tokens))
	for i, tok := range tokens {
		values[i] = Lex(tok)
	}
	return values
}

// fieldAllowed reports whether field appears in the allow-list.
func fieldAllowed(field string, allowed []string) bool {
	for _, a := range allowed {
		if field == a {
			return true
		}
	}
	return false
}
