// Package ui holds the embedded templates for the form-driven movie pages.
package ui

import "embed"

//go:embed "html"
var Files embed.FS
