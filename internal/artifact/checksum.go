// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

package artifact

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// ErrChecksumMismatch is returned by Validate when the digests disagree. The
// entry point maps it to its own exit status.
var ErrChecksumMismatch = errors.New("checksum validation failed")

// FileSHA256 returns the hex sha256 digest of the file at path.
func FileSHA256(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", fmt.Errorf("failed to hash %s: %w", path, err)
	}

	return hex.EncodeToString(h.Sum(nil)), nil
}

// ParseChecksum extracts the digest from a sha256 sidecar body. Sidecars are
// "<hex>  <filename>" sha256sum lines; the first whitespace-separated token
// is the digest.
func ParseChecksum(data []byte) (string, error) {
	fields := strings.Fields(strings.TrimSpace(string(data)))
	if len(fields) == 0 {
		return "", fmt.Errorf("empty checksum document")
	}
	return fields[0], nil
}

// Validate compares the file's sha256 digest against expected and returns an
// error describing both digests on mismatch.
func Validate(path, expected string) error {
	actual, err := FileSHA256(path)
	if err != nil {
		return err
	}

	if !strings.EqualFold(actual, expected) {
		return fmt.Errorf("%w for %s: expected %s, actual %s", ErrChecksumMismatch, path, expected, actual)
	}

	return nil
}
