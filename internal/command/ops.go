// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/urfave/cli/v3"
	yamlv3 "gopkg.in/yaml.v3"

	"github.com/filtq/filtq/filter"
)

// opsCommandBuilder assembles the "ops" subcommand: the operator reference
// table for help and UI surfaces.
func opsCommandBuilder() *cli.Command {
	return &cli.Command{
		Name:  "ops",
		Usage: "list the filter operators",
		Flags: []cli.Flag{
			NewOutputFlag(),
		},
		Action: opsCommandAction,
	}
}

// opsCommandAction renders the operator table in the requested format.
func opsCommandAction(_ context.Context, cmd *cli.Command) error {
	ops := filter.Operators()

	switch cmd.String("output") {
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(ops)
	case "yaml":
		out, err := yamlv3.Marshal(ops)
		if err != nil {
			return err
		}
		fmt.Print(string(out))
		return nil
	default:
		names := make([]string, 0, len(ops))
		for name := range ops {
			names = append(names, name)
		}
		sort.Strings(names)

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		for _, name := range names {
			fmt.Fprintf(w, "%s\t%s\n", name, ops[name])
		}
		return w.Flush()
	}
}
