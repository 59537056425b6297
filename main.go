// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/apex/log"

	"github.com/staranto/jbctlgo/internal/artifact"
	"github.com/staranto/jbctlgo/internal/cacheutil"
	"github.com/staranto/jbctlgo/internal/command"
	"github.com/staranto/jbctlgo/internal/config"
	mylog "github.com/staranto/jbctlgo/internal/log"
	"github.com/staranto/jbctlgo/internal/version"
)

var ctx = context.Background()

func main() {
	os.Exit(realMain())
}

func realMain() int {
	mylog.InitLogger()

	args := os.Args

	if len(args) < 2 {
		fmt.Fprintln(os.Stderr, "No command specified.")
		args = append(args, "--help")
	} else {
		args = mangleArguments(args)
	}

	// Short-circuit --version/-v, but only ahead of a subcommand. The version
	// subcommand carries its own --version selector flag.
	if len(args) > 1 && (args[1] == "--version" || args[1] == "-v") {
		fmt.Println(version.Version)
		return 0
	}

	// Best-effort: pre-create cache directory when caching is enabled.
	if _, ok, err := cacheutil.EnsureBaseDir(); err != nil && ok {
		// Non-fatal: print to stderr and continue.
		fmt.Fprintln(os.Stderr, err)
	}

	app, err := command.InitApp(ctx, args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	if err := app.Run(ctx, args); err != nil {
		fmt.Fprintln(os.Stderr, err)

		// The action command propagates the downstream status as-is. A
		// checksum mismatch is distinguishable from everything else, which
		// includes no-matching-release.
		var ese *command.ExitStatusError
		switch {
		case errors.As(err, &ese):
			return ese.Code
		case errors.Is(err, artifact.ErrChecksumMismatch):
			return 2
		default:
			return 1
		}
	}

	return 0
}

func mangleArguments(args []string) []string {
	// We know the first two args are going to be the executable and command.
	preamble := make([]string, 2)
	copy(preamble, args[:2])

	// Short-circuit for --help/-h. If help is requested, just keep the preamble
	// and add --help flag.
	for _, a := range args {
		if a == "--help" || a == "-h" {
			return append(preamble, "--help")
		}
	}

	// Now scan through args and if there is a @set, that becomes the insertion
	// point and the @set entry is removed from args. Otherwise the @defaults
	// set applies at args[2].
	idx := 2
	set := "defaults"
	for i, a := range args[idx:] {
		if strings.HasPrefix(a, "@") {
			set = a[1:]
			idx += i
			args = append(args[:idx], args[idx+1:]...)
			break
		}
	}

	setArgs, _ := config.GetStringSlice(args[1] + "." + set)
	for _, arg := range setArgs {
		parts := strings.Fields(arg)
		args = append(args[:idx], append(parts, args[idx:]...)...)
		idx += len(parts)
	}

	log.Debugf("idx=%d, set=%s, args=%v", idx, set, args)
	return args
}
