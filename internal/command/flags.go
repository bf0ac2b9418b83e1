// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"fmt"

	altsrc "github.com/urfave/cli-altsrc/v3"
	yaml "github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"

	"github.com/filtq/filtq/internal/config"
)

// NewOutputFlag constructs the shared "output" flag. The default is "text"
// unless the config file carries an "output" key.
func NewOutputFlag() *cli.StringFlag {
	def, _ := config.GetString("output", "text")
	if def == "" {
		def = "text"
	}
	return &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "output format",
		Value:   def,
		Validator: func(value string) error {
			return FlagValidators(value, OutputValidator)
		},
	}
}

// NewAllowedFlag constructs the "allowed" flag carrying the field
// allow-list. Defaults flow in from the config file, namespaced first.
func NewAllowedFlag(ns string) *cli.StringFlag {
	flag := &cli.StringFlag{
		Name:    "allowed",
		Aliases: []string{"a"},
		Usage:   "comma-separated allow-list of filterable fields",
		Sources: cli.NewValueSourceChain(
			cli.EnvVar("FILTQ_ALLOWED"),
		),
	}
	return NameSpacedValueChainFlagFromConfigFile(ns, flag)
}

// NewSourceFlag constructs the "source" flag naming the JSON dataset for
// the query command ("-" reads stdin).
func NewSourceFlag(ns string) *cli.StringFlag {
	flag := &cli.StringFlag{
		Name:    "source",
		Aliases: []string{"s"},
		Usage:   "JSON array to filter, a file path or - for stdin",
		Value:   "-",
		Sources: cli.NewValueSourceChain(
			cli.EnvVar("FILTQ_SOURCE"),
		),
	}
	return NameSpacedValueChainFlagFromConfigFile(ns, flag)
}

// NameSpacedValueChainFlagFromConfigFile adds namespaced and global config
// file sources to the given flag's Sources chain.
func NameSpacedValueChainFlagFromConfigFile(ns string, flag *cli.StringFlag) *cli.StringFlag {
	path, err := config.File()
	if err != nil {
		return flag
	}

	src := yaml.YAML(ns+"."+flag.Name, altsrc.StringSourcer(path))
	flag.Sources.Chain = append(flag.Sources.Chain, src)

	src = yaml.YAML(flag.Name, altsrc.StringSourcer(path))
	flag.Sources.Chain = append(flag.Sources.Chain, src)

	return flag
}

// FlagValidatorType is one validation step for a flag value.
type FlagValidatorType func(any) error

// FlagValidators runs each validator until one fails.
func FlagValidators(value any, validators ...FlagValidatorType) error {
	for _, v := range validators {
		if err := v(value); err != nil {
			return err
		}
	}
	return nil
}

// OutputValidator restricts the output flag to the supported formats.
func OutputValidator(value any) error {
	var validOutputFlagValues = []string{"text", "json", "yaml"}
	for _, v := range validOutputFlagValues {
		if v == value {
			return nil
		}
	}
	return fmt.Errorf("must be one of %v", validOutputFlagValues)
}
