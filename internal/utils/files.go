package utils

import (
	"path/filepath"
	"strings"
)

// DefaultImageContentType is used for files without an extension.
const DefaultImageContentType = "image/jpeg"

// ImageContentType derives an image MIME type from the file extension of
// path: "meal.png" gives "image/png". "jpg" maps to "image/jpeg".
func ImageContentType(path string) string {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	switch ext {
	case "":
		return DefaultImageContentType
	case "jpg":
		return "image/jpeg"
	default:
		return "image/" + ext
	}
}
