// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Package command wires the jbctl subcommands. Each subcommand has a
// XxCommandBuilder that constructs its cli.Command and a XxCommandAction
// that implements it, with shared flags and helpers in flags.go and
// common.go.
package command
