package server

import "embed"

const (
	// Embedded page location.
	assetsDir = "assets"
)

//go:embed assets
var assets embed.FS
