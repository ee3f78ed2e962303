// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Status indicates the outcome of converting a single file.
// Per prd001-markdown-conversion R3.2.
type Status string

const (
	StatusDone   Status = "converted"
	StatusFailed Status = "failed"
)
