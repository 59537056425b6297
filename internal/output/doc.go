// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

// Package output renders query results. It filters, projects, transforms and
// sorts the release dataset, then emits it as a text table, json, yaml or the
// raw feed document.
package output
