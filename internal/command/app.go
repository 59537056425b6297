// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT
package command

import (
	"context"
	"os"
	"sort"
	"strings"

	"github.com/staranto/jbctlgo/internal/config"
	"github.com/staranto/jbctlgo/internal/meta"
	"github.com/urfave/cli/v3"
)

func InitApp(ctx context.Context, args []string) (*cli.Command, error) {

	sd, _ := os.Getwd()

	// The arg[1] immediately following the binary (arg[0]) is the jbctl
	// subcommand and also represents the namespace key to be used when retrieving
	// config values. arg[1] could be -h/--help, so ignore it if it appears to be
	// a flag.
	var ns string
	if len(args) > 1 && !strings.HasPrefix(args[1], "-") {
		ns = args[1]
	}

	cfg, _ := config.Load()
	cfg.Namespace = ns
	meta := meta.Meta{
		Args:        args,
		Config:      cfg,
		Context:     ctx,
		StartingDir: sd,
	}

	app := &cli.Command{
		Name:  "jbctl",
		Usage: "JetBrains release metadata control",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "version",
				Aliases:     []string{"v"},
				Usage:       "jbctl version info",
				HideDefault: true,
			},
		},
	}

	app.Commands = append(app.Commands,
		VersionCommandBuilder(app, meta),
		BuildCommandBuilder(app, meta),
		DownloadCommandBuilder(app, meta),
		DownloadURLCommandBuilder(app, meta),
		ChecksumCommandBuilder(app, meta),
		ChecksumURLCommandBuilder(app, meta),
		WhatsNewCommandBuilder(app, meta),
		ReleasesCommandBuilder(app, meta),
		ActionCommandBuilder(app, meta),
		CompletionCommandBuilder(app, meta),
	)

	// Make sure flags are sorted for the --help text.
	for _, cmd := range app.Commands {
		sort.Slice(cmd.Flags, func(i, j int) bool {
			return cmd.Flags[i].Names()[0] < cmd.Flags[j].Names()[0]
		})
	}

	return app, nil
}
