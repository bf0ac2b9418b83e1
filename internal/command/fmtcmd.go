// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/filtq/filtq/filter"
	"github.com/filtq/filtq/internal/config"
)

// fmtCommandBuilder assembles the "fmt" subcommand: lenient parse plus
// canonical re-serialization, normalizing aliases, casing and whitespace.
func fmtCommandBuilder() *cli.Command {
	return &cli.Command{
		Name:      "fmt",
		Usage:     "rewrite a filter string in canonical form",
		ArgsUsage: "<filter-string>",
		Flags: []cli.Flag{
			NewAllowedFlag("fmt"),
		},
		Action: fmtCommandAction,
	}
}

// fmtCommandAction parses the positional filter string leniently and prints
// the canonical serialization. Segments the lenient parser drops are gone
// from the output; use check to see why.
func fmtCommandAction(_ context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() != 1 {
		return fmt.Errorf("fmt expects exactly one filter string argument")
	}

	expr := filter.Parse(cmd.Args().First(), allowedFields(cmd)...)
	fmt.Println(filter.Serialize(expr))
	return nil
}

// allowedFields reads the allow-list flag into a field slice. When the flag
// is unset the config file may still carry the list as a native YAML
// sequence, which cannot flow through the string flag sources.
func allowedFields(cmd *cli.Command) []string {
	raw := cmd.String("allowed")
	if raw == "" {
		return allowListFallback()
	}
	//nolint:prealloc // Blank entries are dropped.
	var fields []string
	for _, f := range strings.Split(raw, ",") {
		if f = strings.TrimSpace(f); f != "" {
			fields = append(fields, f)
		}
	}
	return fields
}

// allowListFallback reads the "allowed" key from the loaded config file.
func allowListFallback() []string {
	fields, err := config.GetStringSlice("allowed")
	if err != nil {
		return nil
	}
	return fields
}
