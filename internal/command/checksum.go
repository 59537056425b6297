// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

package command

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"

	"github.com/staranto/jbctlgo/internal/artifact"
	"github.com/staranto/jbctlgo/internal/meta"
)

// ChecksumCommandAction fetches the sha256 sidecar for the selected release
// artifact. With --dest the sidecar file is downloaded there and its local
// path printed; without, the sidecar body is printed as-is.
func ChecksumCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("Executing action for %v", m.Args[1:])

	if ShortCircuitTLDR(ctx, cmd, "checksum") {
		return nil
	}

	_, dl, err := ResolveDownload(ctx, cmd)
	if err != nil {
		return err
	}

	if dest := cmd.String("dest"); dest != "" {
		path, err := artifact.Download(ctx, dl.ChecksumLink, dest)
		if err != nil {
			return err
		}
		fmt.Fprintln(os.Stdout, path)
		return nil
	}

	sidecar, err := artifact.Read(ctx, dl.ChecksumLink)
	if err != nil {
		return err
	}

	fmt.Fprintln(os.Stdout, strings.TrimSpace(string(sidecar)))
	return nil
}

// ChecksumCommandBuilder constructs the cli.Command for "checksum".
func ChecksumCommandBuilder(cmd *cli.Command, meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "checksum",
		Usage:     "print the sha256 digest of the selected release artifact",
		UsageText: `jbctl checksum --code CODE [options]`,
		Metadata: map[string]any{
			"meta": meta,
		},
		Flags: []cli.Flag{
			NewCodeFlag("checksum", meta.Config.Source),
			NewVersionFlag(),
			NewBuildFlag(),
			&cli.StringFlag{
				Name:    "dest",
				Aliases: []string{"d"},
				Usage:   "download the sidecar file here instead of printing it",
			},
			NewPlatformFlag("checksum", meta.Config.Source),
			tldrFlag,
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			if err := GlobalFlagsValidator(ctx, c); err != nil {
				return err
			}
			return ChecksumCommandAction(ctx, c)
		},
	}
}

// ChecksumURLCommandAction prints the sha256 sidecar URL for the selected
// release artifact.
func ChecksumURLCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("Executing action for %v", m.Args[1:])

	if ShortCircuitTLDR(ctx, cmd, "checksum_url") {
		return nil
	}

	_, dl, err := ResolveDownload(ctx, cmd)
	if err != nil {
		return err
	}

	fmt.Fprintln(os.Stdout, dl.ChecksumLink)
	return nil
}

// ChecksumURLCommandBuilder constructs the cli.Command for "checksum_url".
func ChecksumURLCommandBuilder(cmd *cli.Command, meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "checksum_url",
		Usage:     "print the sha256 sidecar URL of the selected release artifact",
		UsageText: `jbctl checksum_url --code CODE [options]`,
		Metadata: map[string]any{
			"meta": meta,
		},
		Flags: []cli.Flag{
			NewCodeFlag("checksum_url", meta.Config.Source),
			NewVersionFlag(),
			NewBuildFlag(),
			NewPlatformFlag("checksum_url", meta.Config.Source),
			tldrFlag,
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			if err := GlobalFlagsValidator(ctx, c); err != nil {
				return err
			}
			return ChecksumURLCommandAction(ctx, c)
		},
	}
}
