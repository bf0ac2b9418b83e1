// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package sqlsink renders filter expressions into parameterized SQL WHERE
// fragments. It implements filter.Sink: apply an expression, then hand
// Clause's fragment and arguments to database/sql:
//
//	sink := sqlsink.New()
//	if err := filter.Apply(expr, sink); err != nil { ... }
//	where, args := sink.Clause()
//	rows, err := db.Query("SELECT id FROM listings WHERE "+where, args...)
//
// Field names are validated as column identifiers (SQL injection guard);
// every value travels as a placeholder argument, never as SQL text. The
// date operators render through date()/strftime(), aimed at SQLite and
// compatible dialects. JSON_CONTAINS and REGEX have no portable rendering
// and are rejected with ErrUnsupported.
package sqlsink
