// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Package binder maps the declarative composite-action inputs onto a jbctl
// command line. It is pure argument assembly; execution and error reporting
// belong to the caller.
package binder

import (
	"fmt"
	"os"
	"strings"
)

// InvocationRequest is one action invocation, built once from the INPUT_*
// environment and discarded after the downstream call.
type InvocationRequest struct {
	Code           string
	Command        string
	Version        string
	Build          string
	Dest           string
	SkipValidation bool
}

// Args returns the ordered downstream argument list:
//
//	<command> --code <code> [--version <v> | --build <b>] [--dest <d>] [--skip-validation]
//
// A non-empty Version always wins over Build; the build is ignored, not
// rejected.
func (r InvocationRequest) Args() []string {
	args := []string{r.Command, "--code", r.Code}

	switch {
	case r.Version != "":
		args = append(args, "--version", r.Version)
	case r.Build != "":
		args = append(args, "--build", r.Build)
	}

	if r.Dest != "" {
		args = append(args, "--dest", r.Dest)
	}

	if r.SkipValidation {
		args = append(args, "--skip-validation")
	}

	return args
}

// FromEnv binds an InvocationRequest from the composite-action environment
// (INPUT_CODE, INPUT_COMMAND, ...). code and command are required; their
// absence is a configuration error for the caller to surface.
//
// skip_validation enables the flag only for the exact literal "true";
// "True", "1" and friends stay off.
func FromEnv() (InvocationRequest, error) {
	lookup := func(name string) string {
		v, _ := os.LookupEnv("INPUT_" + strings.ToUpper(name))
		return v
	}

	req := InvocationRequest{
		Code:           lookup("code"),
		Command:        lookup("command"),
		Version:        lookup("version"),
		Build:          lookup("build"),
		Dest:           lookup("dest"),
		SkipValidation: lookup("skip_validation") == "true",
	}

	if req.Code == "" {
		return InvocationRequest{}, fmt.Errorf("required input missing: code")
	}
	if req.Command == "" {
		return InvocationRequest{}, fmt.Errorf("required input missing: command")
	}

	return req, nil
}
