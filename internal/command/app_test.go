// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package command

import (
	"context"
	"errors"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitApp_RegistersCommands(t *testing.T) {
	app, err := InitApp(context.Background(), []string{"jbctl", "releases"})
	require.NoError(t, err)

	want := []string{
		"action",
		"build",
		"checksum",
		"checksum_url",
		"completion",
		"download",
		"download_url",
		"generate_whatsnew",
		"releases",
		"version",
	}

	var got []string
	for _, c := range app.Commands {
		got = append(got, c.Name)
	}
	sort.Strings(got)
	assert.Equal(t, want, got)
}

func TestInitApp_FlagsSorted(t *testing.T) {
	app, err := InitApp(context.Background(), []string{"jbctl", "download"})
	require.NoError(t, err)

	for _, c := range app.Commands {
		for i := 1; i < len(c.Flags); i++ {
			assert.LessOrEqual(t,
				c.Flags[i-1].Names()[0], c.Flags[i].Names()[0],
				"flags of %s not sorted", c.Name)
		}
	}
}

func TestOutputValidator(t *testing.T) {
	for _, v := range []string{"text", "json", "raw", "yaml"} {
		assert.NoError(t, OutputValidator(v))
	}
	assert.Error(t, OutputValidator("xml"))
}

func TestJammedFlagValidator(t *testing.T) {
	assert.NoError(t, JammedFlagValidator("GO"))
	assert.Error(t, JammedFlagValidator("--version"))
}

func TestExitStatusError(t *testing.T) {
	inner := errors.New("exit status 2")
	err := &ExitStatusError{Code: 2, Err: inner}

	assert.Equal(t, "exit status 2", err.Error())
	assert.ErrorIs(t, err, inner)

	var ese *ExitStatusError
	require.ErrorAs(t, error(err), &ese)
	assert.Equal(t, 2, ese.Code)
}

func TestExitStatusError_NoInner(t *testing.T) {
	err := &ExitStatusError{Code: 3}
	assert.Equal(t, "exit status 3", err.Error())
}
