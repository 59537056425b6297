// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

package command

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"reflect"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"

	"github.com/staranto/jbctlgo/internal/meta"
	"github.com/staranto/jbctlgo/internal/releases"
)

// ReleasesCommandAction is the action handler for the "releases" subcommand.
// It lists the release history for a product, supports --tldr/--schema
// short-circuits, and emits results per common flags.
func ReleasesCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("Executing action for %v", m.Args[1:])

	// Bail out early if we're just dumping tldr.
	if ShortCircuitTLDR(ctx, cmd, "releases") {
		return nil
	}

	// Bail out early if we're just dumping the schema.
	if DumpSchemaIfRequested(cmd, reflect.TypeOf(releases.Release{})) {
		return nil
	}

	attrs := BuildAttrs(cmd, "version", "build", "date", "type")
	log.Debugf("attrs: %v", attrs)

	code := releases.NormalizeCode(cmd.String("code"))

	client := releases.NewClient()

	var raw bytes.Buffer
	if since := cmd.String("since"); since != "" {
		// A version floor means we decode, trim, and re-shape the feed
		// document before it hits the output pipeline.
		rels, err := client.Fetch(ctx, code, false)
		if err != nil {
			return err
		}
		rels = releases.Since(rels, since)

		doc, err := json.Marshal(map[string][]releases.Release{code: rels})
		if err != nil {
			return fmt.Errorf("failed to marshal releases: %w", err)
		}
		raw = *bytes.NewBuffer(doc)
	} else {
		var err error
		raw, err = client.FetchDocument(ctx, code, false)
		if err != nil {
			return err
		}
	}

	EmitFeed(raw, attrs, cmd, code)
	return nil
}

// ReleasesCommandBuilder constructs the cli.Command for "releases", wiring
// metadata, flags, and action/validator handlers.
func ReleasesCommandBuilder(cmd *cli.Command, meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "releases",
		Usage:     "release history query",
		UsageText: `jbctl releases --code CODE [options]`,
		Metadata: map[string]any{
			"meta": meta,
		},
		Flags: append([]cli.Flag{
			NewCodeFlag("releases", meta.Config.Source),
			&cli.StringFlag{
				Name:  "since",
				Usage: "only include releases with a version at or above this",
			},
			tldrFlag,
			schemaFlag,
		}, NewGlobalFlags("releases")...),
		Action: func(ctx context.Context, c *cli.Command) error {
			if err := ReleasesCommandValidator(ctx, c); err != nil {
				return err
			}
			return ReleasesCommandAction(ctx, c)
		},
	}
}

// ReleasesCommandValidator performs validation for "releases" and delegates
// to GlobalFlagsValidator.
func ReleasesCommandValidator(ctx context.Context, cmd *cli.Command) error {
	return GlobalFlagsValidator(ctx, cmd)
}
