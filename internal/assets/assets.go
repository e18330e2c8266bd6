// Package assets resolves files under the static and web app roots and holds
// the built-in placeholder image.
package assets

import (
	_ "embed"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// PlaceholderJPEG is a 1x1 JPEG served when no placeholder exists on disk.
//
//go:embed placeholder.jpg
var PlaceholderJPEG []byte

// PlaceholderPath is the placeholder's location relative to the static root.
const PlaceholderPath = "images/placeholder.jpg"

var imageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
}

// IsImage reports whether name has an image extension that falls back to the placeholder.
func IsImage(name string) bool {
	return imageExtensions[strings.ToLower(path.Ext(name))]
}

// CleanRelative normalizes a request path so it can never climb above its root.
func CleanRelative(rel string) string {
	return strings.TrimPrefix(path.Clean("/"+rel), "/")
}

// Resolve maps rel onto a regular file under root. It reports false when root
// is unset, the file is missing, or it is a directory.
func Resolve(root, rel string) (string, bool) {
	if root == "" {
		return "", false
	}
	clean := CleanRelative(rel)
	if clean == "" {
		return "", false
	}
	full := filepath.Join(root, filepath.FromSlash(clean))
	info, err := os.Stat(full)
	if err != nil || !info.Mode().IsRegular() {
		return "", false
	}
	return full, true
}
