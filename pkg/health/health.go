// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Sigil Contributors

package health

// Report is the identity and size of a running store, as returned by the
// Health RPC. All fields are point-in-time values safe to serialize to JSON.
type Report struct {
	ServerName    string `json:"server_name"`
	ServerVersion string `json:"server_version"`
	KeyCount      int64  `json:"key_count"`
}
