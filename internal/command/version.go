// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

package command

import (
	"context"
	"fmt"
	"os"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"

	"github.com/staranto/jbctlgo/internal/meta"
)

// VersionCommandAction resolves a release and prints its version string.
func VersionCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("Executing action for %v", m.Args[1:])

	if ShortCircuitTLDR(ctx, cmd, "version") {
		return nil
	}

	rel, err := ResolveRelease(ctx, cmd)
	if err != nil {
		return err
	}

	fmt.Fprintln(os.Stdout, rel.Version)
	return nil
}

// VersionCommandBuilder constructs the cli.Command for "version".
func VersionCommandBuilder(cmd *cli.Command, meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "version",
		Usage:     "print the version of the selected release",
		UsageText: `jbctl version --code CODE [options]`,
		Metadata: map[string]any{
			"meta": meta,
		},
		Flags: []cli.Flag{
			NewCodeFlag("version", meta.Config.Source),
			NewVersionFlag(),
			NewBuildFlag(),
			tldrFlag,
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			if err := GlobalFlagsValidator(ctx, c); err != nil {
				return err
			}
			return VersionCommandAction(ctx, c)
		},
	}
}

// BuildCommandAction resolves a release and prints its build number.
func BuildCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("Executing action for %v", m.Args[1:])

	if ShortCircuitTLDR(ctx, cmd, "build") {
		return nil
	}

	rel, err := ResolveRelease(ctx, cmd)
	if err != nil {
		return err
	}

	fmt.Fprintln(os.Stdout, rel.Build)
	return nil
}

// BuildCommandBuilder constructs the cli.Command for "build".
func BuildCommandBuilder(cmd *cli.Command, meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "build",
		Usage:     "print the build number of the selected release",
		UsageText: `jbctl build --code CODE [options]`,
		Metadata: map[string]any{
			"meta": meta,
		},
		Flags: []cli.Flag{
			NewCodeFlag("build", meta.Config.Source),
			NewVersionFlag(),
			NewBuildFlag(),
			tldrFlag,
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			if err := GlobalFlagsValidator(ctx, c); err != nil {
				return err
			}
			return BuildCommandAction(ctx, c)
		},
	}
}
