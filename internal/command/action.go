// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

package command

import (
	"context"
	"errors"
	"os"
	"os/exec"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"

	"github.com/staranto/jbctlgo/internal/binder"
	"github.com/staranto/jbctlgo/internal/meta"
)

// ActionCommandAction is the composite-action entry point. It binds the
// INPUT_* environment into a downstream invocation, runs it, and propagates
// the downstream exit status unmodified.
func ActionCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("Executing action for %v", m.Args[1:])

	req, err := binder.FromEnv()
	if err != nil {
		return err
	}

	bin := cmd.String("bin")
	if bin == "" {
		// Default to re-invoking ourselves with the bound arguments.
		bin, err = os.Executable()
		if err != nil {
			return err
		}
	}

	args := req.Args()
	log.Debugf("invoking %s %v", bin, args)

	c := exec.CommandContext(ctx, bin, args...)
	c.Stdout = os.Stdout
	c.Stderr = os.Stderr

	if err := c.Run(); err != nil {
		var ee *exec.ExitError
		if errors.As(err, &ee) {
			return &ExitStatusError{Code: ee.ExitCode(), Err: err}
		}
		return err
	}

	return nil
}

// ActionCommandBuilder constructs the cli.Command for "action".
func ActionCommandBuilder(cmd *cli.Command, meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "action",
		Usage:     "run as a composite action, binding INPUT_* env vars",
		UsageText: `jbctl action [--bin PATH]`,
		Metadata: map[string]any{
			"meta": meta,
		},
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "bin",
				Usage: "downstream binary to invoke (defaults to jbctl itself)",
				Sources: cli.NewValueSourceChain(
					cli.EnvVar("JBCTL_BIN"),
				),
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			if err := GlobalFlagsValidator(ctx, c); err != nil {
				return err
			}
			return ActionCommandAction(ctx, c)
		},
	}
}
