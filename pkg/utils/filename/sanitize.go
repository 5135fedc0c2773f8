// Package filename turns user-supplied names into safe export file names.
package filename

import (
	"path/filepath"
	"regexp"
	"strings"

	"thirdcoast.systems/canvas/pkg/resolution"
)

// invalidCharsRe matches characters not safe for filenames across all major OSes.
var invalidCharsRe = regexp.MustCompile(`[<>:"/\\|?*\x00-\x1f\s]`)

// multiDash collapses runs of dashes/underscores.
var multiDash = regexp.MustCompile(`[-_]{2,}`)

const defaultMaxLen = 120

// Sanitize converts an arbitrary string into a filename-safe slug of at most
// maxLen bytes (defaultMaxLen when maxLen <= 0). Leading and trailing dashes
// and dots are stripped.
func Sanitize(name string, maxLen int) string {
	if maxLen <= 0 {
		maxLen = defaultMaxLen
	}

	s := invalidCharsRe.ReplaceAllString(strings.TrimSpace(name), "-")
	s = multiDash.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-.")

	if len(s) > maxLen {
		s = strings.TrimRight(s[:maxLen], "-.")
	}
	return s
}

// ForPreset names an export of input rendered onto preset, e.g.
// "/videos/My Clip.mkv" + 1080p-vertical -> "My-Clip-1080p-vertical.mp4".
// ext defaults to ".mp4".
func ForPreset(input string, preset resolution.Preset, ext string) string {
	if ext == "" {
		ext = ".mp4"
	}
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}

	base := filepath.Base(strings.ReplaceAll(input, `\`, "/"))
	stem := Sanitize(strings.TrimSuffix(base, filepath.Ext(base)), 0)
	if stem == "" {
		stem = "export"
	}
	return stem + "-" + preset.String() + ext
}
