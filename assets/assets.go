// Package assets embeds the textures used by the burrow program.
package assets

import (
	"embed"
	"io/fs"
)

//go:embed *.png
var files embed.FS

// FS returns the embedded asset tree. Paths are relative to the package
// directory, e.g. "bunny.png".
func FS() fs.FS {
	return files
}
