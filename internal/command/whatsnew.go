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
	"github.com/staranto/jbctlgo/internal/releases"
)

// WhatsNewCommandAction renders the full release history for a product as a
// single what's-new HTML document on stdout.
func WhatsNewCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("Executing action for %v", m.Args[1:])

	if ShortCircuitTLDR(ctx, cmd, "generate_whatsnew") {
		return nil
	}

	client := releases.NewClient()
	rels, err := client.Fetch(ctx, cmd.String("code"), false)
	if err != nil {
		return err
	}

	if since := cmd.String("since"); since != "" {
		rels = releases.Since(rels, since)
	}
	log.Debugf("rendering %d releases", len(rels))

	html, err := releases.GenerateWhatsNew(cmd.String("name"), rels)
	if err != nil {
		return err
	}

	fmt.Fprintln(os.Stdout, html)
	return nil
}

// WhatsNewCommandBuilder constructs the cli.Command for "generate_whatsnew".
func WhatsNewCommandBuilder(cmd *cli.Command, meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "generate_whatsnew",
		Usage:     "generate a what's-new HTML page from the release history",
		UsageText: `jbctl generate_whatsnew --code CODE --name NAME [options]`,
		Metadata: map[string]any{
			"meta": meta,
		},
		Flags: []cli.Flag{
			NewCodeFlag("generate_whatsnew", meta.Config.Source),
			&cli.StringFlag{
				Name:     "name",
				Aliases:  []string{"n"},
				Usage:    "product display name used in the page title",
				Required: true,
				Sources: cli.NewValueSourceChain(
					cli.EnvVar("JBCTL_NAME"),
				),
			},
			&cli.StringFlag{
				Name:  "since",
				Usage: "only include releases with a version at or above this",
			},
			tldrFlag,
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			if err := GlobalFlagsValidator(ctx, c); err != nil {
				return err
			}
			return WhatsNewCommandAction(ctx, c)
		},
	}
}
