// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"os/exec"

	altsrc "github.com/urfave/cli-altsrc/v3"
	yaml "github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"

	"github.com/staranto/jbctlgo/internal/config"
)

func init() {
	cfg, _ = config.Load()
}

var (
	cfg config.Type

	schemaFlag *cli.BoolFlag = &cli.BoolFlag{
		Name:        "schema",
		Usage:       "dump the schema",
		HideDefault: true,
	}

	tldrFlag *cli.BoolFlag = &cli.BoolFlag{
		Name:        "tldr",
		Usage:       "show tldr page",
		Hidden:      !pathHas("tldr"),
		HideDefault: true,
	}
)

// NewCodeFlag constructs the "code" flag shared by all feed-backed commands.
// The product code is case-insensitive on the command line and normalized
// before use.
func NewCodeFlag(params ...string) (flag *cli.StringFlag) {
	flag = &cli.StringFlag{
		Name:     "code",
		Usage:    "product code (GO, PCP, IIU, ...)",
		Required: true,
		Sources: cli.NewValueSourceChain(
			cli.EnvVar("JBCTL_CODE"),
		),
		Validator: func(value string) error {
			return FlagValidators(value, JammedFlagValidator)
		},
	}

	if len(params) == 2 {
		flag = NameSpacedValueChainFlagFromConfigFile(params[0], params[1], flag)
	}

	return
}

// NewVersionFlag constructs the "version" release selector. When both
// --version and --build are given, version wins and build is ignored.
func NewVersionFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:  "version",
		Usage: "select the release with this exact version",
		Sources: cli.NewValueSourceChain(
			cli.EnvVar("JBCTL_VERSION"),
		),
		Validator: func(value string) error {
			return FlagValidators(value, JammedFlagValidator)
		},
	}
}

// NewBuildFlag constructs the "build" release selector.
func NewBuildFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:  "build",
		Usage: "select the release with this exact build number",
		Sources: cli.NewValueSourceChain(
			cli.EnvVar("JBCTL_BUILD"),
		),
		Validator: func(value string) error {
			return FlagValidators(value, JammedFlagValidator)
		},
	}
}

// NewDestFlag constructs the "dest" flag. dest is a local directory or an
// s3://bucket/prefix URI.
func NewDestFlag(params ...string) (flag *cli.StringFlag) {
	flag = &cli.StringFlag{
		Name:    "dest",
		Aliases: []string{"d"},
		Usage:   "destination directory or s3:// URI for downloads",
		Sources: cli.NewValueSourceChain(
			cli.EnvVar("JBCTL_DEST"),
		),
		Value: ".",
	}

	if len(params) == 2 {
		flag = NameSpacedValueChainFlagFromConfigFile(params[0], params[1], flag)
	}

	return
}

// NewSkipValidationFlag constructs the "skip-validation" flag.
func NewSkipValidationFlag() *cli.BoolFlag {
	return &cli.BoolFlag{
		Name:        "skip-validation",
		Usage:       "skip checksum validation of the downloaded artifact",
		HideDefault: true,
	}
}

// NewPlatformFlag constructs the "platform" flag selecting which downloads
// entry of a release to use.
func NewPlatformFlag(params ...string) (flag *cli.StringFlag) {
	flag = &cli.StringFlag{
		Name:    "platform",
		Aliases: []string{"p"},
		Usage:   "downloads platform key (linux, mac, windows, ...)",
		Sources: cli.NewValueSourceChain(
			cli.EnvVar("JBCTL_PLATFORM"),
		),
		Value: "linux",
	}

	if len(params) == 2 {
		flag = NameSpacedValueChainFlagFromConfigFile(params[0], params[1], flag)
	}

	return
}

// NewGlobalFlags builds the result-shaping flags shared by the query-style
// commands. params[0] is the command name, used as the config namespace.
func NewGlobalFlags(params ...string) (flags []cli.Flag) {
	flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "attrs",
			Aliases: []string{"a"},
			Usage:   "comma-separated list of attributes to include in results",
		},
		&cli.BoolWithInverseFlag{
			Name:    "color",
			Aliases: []string{"c"},
			Usage:   "enable colored text output",
			Sources: cli.NewValueSourceChain(
				yaml.YAML(params[0]+"."+"color", altsrc.StringSourcer(cfg.Source)),
				yaml.YAML("color", altsrc.StringSourcer(cfg.Source)),
			),
			Value: false,
		},
		&cli.StringFlag{
			Name:    "filter",
			Aliases: []string{"f"},
			Usage:   "comma-separated list of filters to apply to results",
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "output format",
			Sources: cli.NewValueSourceChain(
				yaml.YAML(params[0]+"."+"output", altsrc.StringSourcer(cfg.Source)),
				yaml.YAML("output", altsrc.StringSourcer(cfg.Source)),
			),
			Value: "text",
			Validator: func(value string) error {
				return FlagValidators(value, OutputValidator)
			},
		},
		&cli.StringFlag{
			Name:    "sort",
			Aliases: []string{"s"},
			Usage:   "comma-separated list of attributes to sort the results by",
			Sources: cli.NewValueSourceChain(
				yaml.YAML(params[0]+"."+"sort", altsrc.StringSourcer(cfg.Source)),
			),
		},
		&cli.BoolWithInverseFlag{
			Name:    "titles",
			Aliases: []string{"t"},
			Usage:   "show titles with text output",
			Sources: cli.NewValueSourceChain(
				yaml.YAML(params[0]+"."+"titles", altsrc.StringSourcer(cfg.Source)),
				yaml.YAML("titles", altsrc.StringSourcer(cfg.Source)),
			),
			Value: false,
		},
	}

	return
}

// NameSpacedValueChainFlagFromConfigFile adds namespaced and global config file
// sources to the given flag's Sources chain.
func NameSpacedValueChainFlagFromConfigFile(ns string, path string, flag *cli.StringFlag) *cli.StringFlag {
	src := yaml.YAML(ns+"."+flag.Name, altsrc.StringSourcer(path))
	flag.Sources.Chain = append(flag.Sources.Chain, src)

	src = yaml.YAML(flag.Name, altsrc.StringSourcer(path))
	flag.Sources.Chain = append(flag.Sources.Chain, src)

	return flag
}

// pathHas checks if the given executable exists on PATH.
func pathHas(target string) bool {
	_, err := exec.LookPath(target)
	return err == nil
}
