// Package web provides the embedded frontend assets for the headline UI.
package web

import (
	"embed"
	"io/fs"
)

//go:embed static docs
var assets embed.FS

// StaticFS returns the embedded static assets with "static" as the root.
func StaticFS() (fs.FS, error) {
	return fs.Sub(assets, "static")
}

// UsageDoc returns the embedded usage document in markdown.
func UsageDoc() ([]byte, error) {
	return assets.ReadFile("docs/usage.md")
}
