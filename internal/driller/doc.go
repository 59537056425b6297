// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Package driller extracts values from nested JSON documents using tolerant
// dotted paths. It backs attribute projection and filtering in the output
// pipeline.
package driller
