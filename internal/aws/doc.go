// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

// Package aws wraps AWS SDK v2 config and client construction for the s3://
// destination support.
package aws
