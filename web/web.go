// Package web embeds the static 3D viewer served at the root route.
package web

import "embed"

//go:embed index.html app.js
var Assets embed.FS
