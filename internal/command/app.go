// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"os"
	"sort"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/filtq/filtq/internal/config"
	"github.com/filtq/filtq/internal/log"
)

// InitApp builds the filtq CLI command tree.
func InitApp(ctx context.Context, args []string) (*cli.Command, error) {

	// The arg[1] immediately following the binary (arg[0]) is the filtq
	// subcommand and also the namespace key used when retrieving config
	// values. arg[1] could be -h/--help, so ignore it if it appears to be a
	// flag.
	var ns string
	if len(args) > 1 && !strings.HasPrefix(args[1], "-") {
		ns = args[1]
	}

	// Missing config file is fine; commands fall back to flag defaults.
	// An explicitly pointed-at file that fails to load is worth a warning.
	if _, err := config.Load(ns); err != nil {
		if os.Getenv("FILTQ_CFG_FILE") != "" {
			log.Warnf("config not loaded: %v", err)
		} else {
			log.Debugf("config not loaded: %v", err)
		}
	}

	app := &cli.Command{
		Name:  "filtq",
		Usage: "filter-expression toolkit",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "version",
				Aliases:     []string{"v"},
				Usage:       "filtq version info",
				HideDefault: true,
			},
		},
	}

	app.Commands = append(app.Commands,
		checkCommandBuilder(),
		fmtCommandBuilder(),
		opsCommandBuilder(),
		queryCommandBuilder(),
	)

	// Make sure flags are sorted for the --help text.
	for _, cmd := range app.Commands {
		sort.Slice(cmd.Flags, func(i, j int) bool {
			return cmd.Flags[i].Names()[0] < cmd.Flags[j].Names()[0]
		})
	}

	return app, nil
}
