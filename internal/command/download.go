// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

package command

import (
	"context"
	"fmt"
	"os"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"

	"github.com/staranto/jbctlgo/internal/artifact"
	"github.com/staranto/jbctlgo/internal/meta"
)

// DownloadCommandAction downloads the selected release's artifact for the
// selected platform, validates its sha256 against the published sidecar, and
// optionally forwards it to an s3:// destination.
func DownloadCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("Executing action for %v", m.Args[1:])

	if ShortCircuitTLDR(ctx, cmd, "download") {
		return nil
	}

	rel, dl, err := ResolveDownload(ctx, cmd)
	if err != nil {
		return err
	}
	log.Debugf("resolved %s (%s): %s", rel.Version, rel.Build, dl.Link)

	dest := cmd.String("dest")

	// An s3:// dest is staged through a temp dir and uploaded after
	// validation.
	localDir := dest
	if artifact.IsS3(dest) {
		localDir, err = os.MkdirTemp("", "jbctl-")
		if err != nil {
			return fmt.Errorf("failed to create staging dir: %w", err)
		}
		defer os.RemoveAll(localDir)
	}

	localPath, err := artifact.Download(ctx, dl.Link, localDir)
	if err != nil {
		return err
	}

	if !cmd.Bool("skip-validation") {
		sidecar, err := artifact.Read(ctx, dl.ChecksumLink)
		if err != nil {
			return err
		}
		expected, err := artifact.ParseChecksum(sidecar)
		if err != nil {
			return err
		}
		if err := artifact.Validate(localPath, expected); err != nil {
			return err
		}
		log.Debugf("checksum ok: %s", expected)
	}

	finalPath := localPath
	if artifact.IsS3(dest) {
		finalPath, err = artifact.Upload(ctx, localPath, dest)
		if err != nil {
			return err
		}
	}

	fmt.Fprintln(os.Stdout, finalPath)
	return nil
}

// DownloadCommandBuilder constructs the cli.Command for "download".
func DownloadCommandBuilder(cmd *cli.Command, meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "download",
		Usage:     "download and validate the selected release artifact",
		UsageText: `jbctl download --code CODE [--version V | --build B] [--dest DIR|s3://...] [options]`,
		Metadata: map[string]any{
			"meta": meta,
		},
		Flags: []cli.Flag{
			NewCodeFlag("download", meta.Config.Source),
			NewVersionFlag(),
			NewBuildFlag(),
			NewDestFlag("download", meta.Config.Source),
			NewSkipValidationFlag(),
			NewPlatformFlag("download", meta.Config.Source),
			tldrFlag,
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			if err := GlobalFlagsValidator(ctx, c); err != nil {
				return err
			}
			return DownloadCommandAction(ctx, c)
		},
	}
}

// DownloadURLCommandAction prints the download link for the selected release
// and platform without fetching it.
func DownloadURLCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("Executing action for %v", m.Args[1:])

	if ShortCircuitTLDR(ctx, cmd, "download_url") {
		return nil
	}

	_, dl, err := ResolveDownload(ctx, cmd)
	if err != nil {
		return err
	}

	fmt.Fprintln(os.Stdout, dl.Link)
	return nil
}

// DownloadURLCommandBuilder constructs the cli.Command for "download_url".
func DownloadURLCommandBuilder(cmd *cli.Command, meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "download_url",
		Usage:     "print the artifact URL of the selected release",
		UsageText: `jbctl download_url --code CODE [options]`,
		Metadata: map[string]any{
			"meta": meta,
		},
		Flags: []cli.Flag{
			NewCodeFlag("download_url", meta.Config.Source),
			NewVersionFlag(),
			NewBuildFlag(),
			NewPlatformFlag("download_url", meta.Config.Source),
			tldrFlag,
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			if err := GlobalFlagsValidator(ctx, c); err != nil {
				return err
			}
			return DownloadURLCommandAction(ctx, c)
		},
	}
}
