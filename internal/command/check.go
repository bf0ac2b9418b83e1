// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"
	yamlv3 "gopkg.in/yaml.v3"

	"github.com/filtq/filtq/filter"
)

// checkCommandBuilder assembles the "check" subcommand: strict validation
// of a filter string with structured error reporting.
func checkCommandBuilder() *cli.Command {
	return &cli.Command{
		Name:      "check",
		Usage:     "strictly validate a filter string",
		ArgsUsage: "<filter-string>",
		Flags: []cli.Flag{
			NewOutputFlag(),
		},
		Action: checkCommandAction,
	}
}

// checkCommandAction validates the positional filter string and renders the
// result. A non-valid filter exits non-zero so the command composes in
// scripts.
func checkCommandAction(_ context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() != 1 {
		return fmt.Errorf("check expects exactly one filter string argument")
	}
	spec := cmd.Args().First()

	result := filter.Validate(spec)

	switch cmd.String("output") {
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(result); err != nil {
			return err
		}
	case "yaml":
		out, err := yamlv3.Marshal(result)
		if err != nil {
			return err
		}
		fmt.Print(string(out))
	default:
		if result.Valid {
			fmt.Println("valid")
		}
		for _, e := range result.Errors {
			fmt.Println(e.Error())
		}
	}

	if !result.Valid {
		return fmt.Errorf("%d invalid segment(s)", len(result.Errors))
	}
	return nil
}
