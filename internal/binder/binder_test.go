// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package binder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArgs_VersionPresent(t *testing.T) {
	req := InvocationRequest{Code: "PCS", Command: "download", Version: "2024.1"}
	args := req.Args()

	assert.Equal(t, []string{"download", "--code", "PCS", "--version", "2024.1"}, args)
	assert.NotContains(t, args, "--build")
}

func TestArgs_VersionWinsOverBuild(t *testing.T) {
	req := InvocationRequest{
		Code:    "PCS",
		Command: "download",
		Version: "2024.1",
		Build:   "241.100",
	}
	args := req.Args()

	assert.Contains(t, args, "--version")
	assert.NotContains(t, args, "--build")
	assert.NotContains(t, args, "241.100")
}

func TestArgs_BuildOnly(t *testing.T) {
	req := InvocationRequest{Code: "PCS", Command: "download", Build: "241.100", Dest: "/tmp/x"}
	args := req.Args()

	assert.Equal(t, []string{"download", "--code", "PCS", "--build", "241.100", "--dest", "/tmp/x"}, args)
}

func TestArgs_NeitherVersionNorBuild(t *testing.T) {
	req := InvocationRequest{Code: "GO", Command: "version"}
	args := req.Args()

	assert.Equal(t, []string{"version", "--code", "GO"}, args)
	assert.NotContains(t, args, "--version")
	assert.NotContains(t, args, "--build")
}

func TestArgs_Dest(t *testing.T) {
	withDest := InvocationRequest{Code: "GO", Command: "download", Dest: "/opt/installers"}
	assert.Contains(t, withDest.Args(), "--dest")
	assert.Contains(t, withDest.Args(), "/opt/installers")

	withoutDest := InvocationRequest{Code: "GO", Command: "download"}
	assert.NotContains(t, withoutDest.Args(), "--dest")
}

func TestArgs_SkipValidation(t *testing.T) {
	on := InvocationRequest{Code: "GO", Command: "download", SkipValidation: true}
	assert.Contains(t, on.Args(), "--skip-validation")

	off := InvocationRequest{Code: "GO", Command: "download"}
	assert.NotContains(t, off.Args(), "--skip-validation")
}

func TestFromEnv(t *testing.T) {
	t.Setenv("INPUT_CODE", "PCS")
	t.Setenv("INPUT_COMMAND", "download")
	t.Setenv("INPUT_VERSION", "2024.1")
	t.Setenv("INPUT_BUILD", "")
	t.Setenv("INPUT_DEST", "")
	t.Setenv("INPUT_SKIP_VALIDATION", "")

	req, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, []string{"download", "--code", "PCS", "--version", "2024.1"}, req.Args())
}

func TestFromEnv_SkipValidationLiteral(t *testing.T) {
	tests := []struct {
		raw  string
		want bool
	}{
		{raw: "true", want: true},
		{raw: "True", want: false},
		{raw: "TRUE", want: false},
		{raw: "1", want: false},
		{raw: "false", want: false},
		{raw: "", want: false},
	}

	for _, tt := range tests {
		t.Run("skip_validation="+tt.raw, func(t *testing.T) {
			t.Setenv("INPUT_CODE", "GO")
			t.Setenv("INPUT_COMMAND", "download")
			t.Setenv("INPUT_SKIP_VALIDATION", tt.raw)

			req, err := FromEnv()
			require.NoError(t, err)
			assert.Equal(t, tt.want, req.SkipValidation)
		})
	}
}

func TestFromEnv_MissingRequired(t *testing.T) {
	t.Setenv("INPUT_CODE", "")
	t.Setenv("INPUT_COMMAND", "download")
	_, err := FromEnv()
	assert.ErrorContains(t, err, "code")

	t.Setenv("INPUT_CODE", "GO")
	t.Setenv("INPUT_COMMAND", "")
	_, err = FromEnv()
	assert.ErrorContains(t, err, "command")
}

// The two worked scenarios from the action contract.
func TestArgs_Scenarios(t *testing.T) {
	download := InvocationRequest{Code: "PCS", Command: "download", Version: "2024.1"}
	assert.Equal(t,
		[]string{"download", "--code", "PCS", "--version", "2024.1"},
		download.Args())

	withDest := InvocationRequest{Code: "PCS", Command: "download", Build: "241.100", Dest: "/tmp/x"}
	assert.Equal(t,
		[]string{"download", "--code", "PCS", "--build", "241.100", "--dest", "/tmp/x"},
		withDest.Args())
}
