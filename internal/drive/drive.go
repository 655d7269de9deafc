// Package drive rewrites Google Drive share links into directly embeddable
// image URLs.
package drive

import (
	"regexp"
	"strings"
)

var (
	filePattern = regexp.MustCompile(`/file/d/([a-zA-Z0-9_-]+)`)
	idPattern   = regexp.MustCompile(`[?&]id=([a-zA-Z0-9_-]+)`)
)

// ConvertDriveLink extracts the file id from a drive share link and
// substitutes the direct-content endpoint. URLs that are not drive links, or
// drive links with no extractable id, are returned unchanged; the renderer's
// native error handling covers anything that fails to load.
func ConvertDriveLink(raw string) string {
	if !strings.Contains(raw, "drive.google.com") {
		return raw
	}
	if m := filePattern.FindStringSubmatch(raw); m != nil {
		return "https://drive.google.com/uc?export=view&id=" + m[1]
	}
	if m := idPattern.FindStringSubmatch(raw); m != nil {
		return "https://drive.google.com/uc?export=view&id=" + m[1]
	}
	return raw
}
