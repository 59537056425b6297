// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"reflect"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"

	"github.com/staranto/jbctlgo/internal/attrs"
	"github.com/staranto/jbctlgo/internal/meta"
	"github.com/staranto/jbctlgo/internal/output"
	"github.com/staranto/jbctlgo/internal/releases"
)

// ExitStatusError carries an explicit process exit status up to the entry
// point. Used by the action command to propagate the downstream status
// unmodified.
type ExitStatusError struct {
	Code int
	Err  error
}

func (e *ExitStatusError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("exit status %d", e.Code)
}

func (e *ExitStatusError) Unwrap() error {
	return e.Err
}

// ShortCircuitTLDR checks the --tldr flag and, if present and available,
// runs `tldr jbctl <subcmd>` and returns true so the caller can exit early.
func ShortCircuitTLDR(ctx context.Context, cmd *cli.Command, subcmd string) bool {
	if cmd.Bool("tldr") {
		if _, err := exec.LookPath("tldr"); err == nil {
			c := exec.CommandContext(ctx, "tldr", "jbctl", subcmd)
			c.Stdout = os.Stdout
			c.Stderr = os.Stderr
			_ = c.Run()
		}
		return true
	}
	return false
}

// DumpSchemaIfRequested prints the JSON schema for the provided type when
// --schema is set, and returns true if it handled the request.
func DumpSchemaIfRequested(cmd *cli.Command, t reflect.Type) bool {
	if cmd.Bool("schema") {
		output.DumpSchema("", t)
		return true
	}
	return false
}

// BuildAttrs constructs an AttrList with defaults and optional extras from
// --attrs, then applies the global transform spec.
func BuildAttrs(cmd *cli.Command, defaults ...string) (al attrs.AttrList) {
	//nolint:errcheck
	{
		for _, d := range defaults {
			al.Set(d)
		}
		if extras := cmd.String("attrs"); extras != "" {
			al.Set(extras)
		}
		al.SetGlobalTransformSpec()
	}
	return
}

// EmitFeed passes a raw feed document to the common output routine. The
// release list nests under the product code, so that's the parent key.
func EmitFeed(raw bytes.Buffer, al attrs.AttrList, cmd *cli.Command, code string) {
	output.SliceDiceSpit(raw, al, cmd, releases.NormalizeCode(code), os.Stdout)
}

// GetMeta returns the meta.Meta stored in the command's Metadata. If missing
// or of an unexpected type, it returns the zero value.
func GetMeta(cmd *cli.Command) meta.Meta {
	if cmd == nil || cmd.Metadata == nil {
		return meta.Meta{}
	}
	if m, ok := cmd.Metadata["meta"].(meta.Meta); ok {
		return m
	}
	return meta.Meta{}
}

// ResolveRelease fetches the feed for --code and selects one release per the
// --version/--build flags. With neither selector the feed is queried with
// latest=true and the newest release wins. A non-empty --version makes
// --build irrelevant.
func ResolveRelease(ctx context.Context, cmd *cli.Command) (releases.Release, error) {
	code := cmd.String("code")
	version := cmd.String("version")
	build := cmd.String("build")

	latest := version == "" && build == ""

	client := releases.NewClient()
	rels, err := client.Fetch(ctx, code, latest)
	if err != nil {
		return releases.Release{}, err
	}
	log.Debugf("feed for %s: %d releases", releases.NormalizeCode(code), len(rels))

	return releases.Find(rels, version, build)
}

// ResolveDownload resolves a release and picks its downloads entry for
// --platform.
func ResolveDownload(ctx context.Context, cmd *cli.Command) (releases.Release, releases.Download, error) {
	rel, err := ResolveRelease(ctx, cmd)
	if err != nil {
		return releases.Release{}, releases.Download{}, err
	}

	dl, err := rel.PlatformDownload(cmd.String("platform"))
	if err != nil {
		return releases.Release{}, releases.Download{}, err
	}

	return rel, dl, nil
}
