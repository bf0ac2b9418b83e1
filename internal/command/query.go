// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/dustin/go-humanize/english"
	"github.com/tidwall/gjson"
	"github.com/urfave/cli/v3"
	yamlv3 "gopkg.in/yaml.v3"

	"github.com/filtq/filtq/filter"
	"github.com/filtq/filtq/filter/jsonsink"
	"github.com/filtq/filtq/internal/config"
	"github.com/filtq/filtq/internal/log"
)

// queryCommandBuilder assembles the "query" subcommand: run a filter string
// against a JSON array and print the matching elements.
func queryCommandBuilder() *cli.Command {
	return &cli.Command{
		Name:      "query",
		Usage:     "filter a JSON dataset with a filter string",
		ArgsUsage: "<filter-string>",
		Flags: []cli.Flag{
			NewAllowedFlag("query"),
			NewOutputFlag(),
			NewSourceFlag("query"),
		},
		Action: queryCommandAction,
	}
}

// queryCommandAction loads the dataset, applies the parsed expression per
// element through a jsonsink, and renders matches plus a summary line.
func queryCommandAction(_ context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() != 1 {
		return fmt.Errorf("query expects exactly one filter string argument")
	}

	raw, err := readSource(cmd.String("source"))
	if err != nil {
		return err
	}

	docs := gjson.ParseBytes(raw)
	if !docs.IsArray() {
		return fmt.Errorf("source must be a JSON array")
	}

	expr := filter.Parse(cmd.Args().First(), allowedFields(cmd)...)
	log.Debugf("parsed expression: expr=%s conditions=%d", expr, len(expr))

	matched, err := jsonsink.Filter(docs, expr)
	if err != nil {
		return err
	}

	if err := renderMatches(cmd.String("output"), matched); err != nil {
		return err
	}

	if summaryEnabled() {
		fmt.Fprintf(os.Stderr, "%s of %s matched\n",
			english.Plural(len(matched), "element", ""),
			english.Plural(len(docs.Array()), "element", ""))
	}
	return nil
}

// summaryEnabled reports whether the stderr match-count line prints.
// "summary: false" in the config file silences it.
func summaryEnabled() bool {
	enabled, err := config.GetBool("summary", true)
	if err != nil {
		return true
	}
	return enabled
}

// readSource reads the dataset from a file or stdin ("-").
func readSource(source string) ([]byte, error) {
	if source == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(source)
}

// renderMatches prints matched elements, one per line for text, or as a
// re-assembled array for the structured formats.
func renderMatches(output string, matched []gjson.Result) error {
	switch output {
	case "json", "yaml":
		rows := make([]interface{}, len(matched))
		for i, m := range matched {
			rows[i] = m.Value()
		}
		if output == "yaml" {
			out, err := yamlv3.Marshal(rows)
			if err != nil {
				return err
			}
			fmt.Print(string(out))
			return nil
		}
		out, err := json.MarshalIndent(rows, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		return nil
	default:
		for _, m := range matched {
			fmt.Println(m.Raw)
		}
		return nil
	}
}
