// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package command defines the CLI command set for filtq. It wires flags,
// validators and actions for the check, fmt, ops and query subcommands.
package command
