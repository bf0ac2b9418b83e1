// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package jsonsink evaluates filter expressions against JSON documents in
// memory. It is the reference filter.Sink implementation: one Sink wraps
// one gjson document and answers every predicate of the operator set,
// including the date family (values parsed as RFC3339, datetime or plain
// date) and the JSON operators (array membership, object keys, lengths).
//
// Fields address nested values through dotted paths with optional array
// indices, e.g. "address.city" or "tags[0]"; see the pathx package.
//
// Filter is the bulk entry point: it applies one expression to every
// element of a JSON array and returns the matching elements. It powers the
// filtq query command.
package jsonsink
