// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package filter

import (
	"fmt"
	"strings"
)

// Error is one validation finding: which segment (0-based, counting only
// non-empty segments), its original text, and what is wrong with it.
type Error struct {
	SegmentIndex int    `yaml:"segmentIndex" json:"SegmentIndex"`
	SegmentText  string `yaml:"segmentText" json:"SegmentText"`
	Message      string `yaml:"message" json:"Message"`
}

// Error implements the error interface.
func (e Error) Error() string {
	return fmt.Sprintf("segment %d %q: %s", e.SegmentIndex, e.SegmentText, e.Message)
}

// Result is the outcome of Validate. Valid is true iff Errors is empty.
type Result struct {
	Valid  bool    `yaml:"valid" json:"Valid"`
	Errors []Error `yaml:"errors" json:"Errors"`
}

// Validate strictly checks a filter string, reporting every deviation the
// lenient Parse would silently drop: malformed segment shape, empty field
// names, unknown operators, wrong value counts for the operator's arity,
// and values supplied to the null-check operators. It performs no
// allow-list check; that is the caller's concern. An empty input is valid.
func Validate(spec string) Result {
	var errs []Error

	if strings.TrimSpace(spec) == "" {
		return Result{Valid: true}
	}

	for i, segment := range splitTop(spec, ';') {
		if err := validateSegment(segment); err != "" {
			errs = append(errs, Error{SegmentIndex: i, SegmentText: segment, Message: err})
		}
	}

	return Result{Valid: len(errs) == 0, Errors: errs}
}

// validateSegment returns an empty string when the segment is well formed,
// otherwise a human-readable description of the first problem found.
func validateSegment(segment string) string {
	parts := segmentRegex.FindStringSubmatch(segment)
	if parts == nil {
		return "malformed segment: expected field:OPERATOR(values)"
	}

	if strings.TrimSpace(parts[1]) == "" {
		return "empty field name"
	}

	op, known := LookupOp(parts[2])
	if !known {
		return fmt.Sprintf("unknown operator %q", strings.TrimSpace(parts[2]))
	}

	n := len(SplitValues(parts[3]))
	switch op.Arity() {
	case ArityZero:
		if n != 0 {
			return fmt.Sprintf("%s takes no values, got %d", op, n)
		}
	case ArityOne:
		if n != 1 {
			return fmt.Sprintf("%s requires exactly one value, got %d", op, n)
		}
	case ArityExactlyTwo:
		// The range operators need a lower and an upper bound; extras
		// beyond the first two are tolerated and ignored downstream.
		if n < 2 {
			return fmt.Sprintf("%s requires two values, got %d", op, n)
		}
	case ArityAnyNonEmpty:
		if n == 0 {
			return fmt.Sprintf("%s requires at least one value", op)
		}
	}

	return ""
}
