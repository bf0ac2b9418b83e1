// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package config provides loading and typed accessors for filtq's user
// configuration. The configuration is a YAML document located in the user's
// configuration directory, typically:
//   - Linux/macOS: $XDG_CONFIG_HOME/filtq.yaml or $HOME/.config/filtq.yaml
//   - Windows: %APPDATA%/filtq/filtq.yaml
//
// The FILTQ_CFG_FILE environment variable overrides the path entirely.
// Keys are addressed with dotted paths; when a Namespace is set (the CLI
// sets it to the running subcommand), the namespaced key is tried first,
// so "check.filter" can shadow a global "filter" default.
package config
