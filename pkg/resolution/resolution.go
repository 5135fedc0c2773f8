// Package resolution holds the fixed catalog of output canvas sizes used by
// the editor. The catalog is built once at init and never mutated, so every
// function here is safe for concurrent use without locking.
package resolution

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
)

// ErrUnknownPreset is returned for any identifier outside the catalog.
// Callers must surface it; a default resolution is never substituted.
var ErrUnknownPreset = errors.New("unknown resolution preset")

// Resolution is a canvas size in pixels.
type Resolution struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Orientation describes the framing of a Resolution.
type Orientation string

const (
	Landscape Orientation = "landscape"
	Portrait  Orientation = "portrait"
	Square    Orientation = "square"
)

// Valid reports whether both dimensions are strictly positive.
func (r Resolution) Valid() bool {
	return r.Width > 0 && r.Height > 0
}

// String returns the "WxH" form, e.g. "1920x1080".
func (r Resolution) String() string {
	return strconv.Itoa(r.Width) + "x" + strconv.Itoa(r.Height)
}

// Pixels returns the total pixel count.
func (r Resolution) Pixels() int {
	return r.Width * r.Height
}

// Transpose swaps width and height.
func (r Resolution) Transpose() Resolution {
	return Resolution{Width: r.Height, Height: r.Width}
}

// Orientation returns landscape, portrait or square.
func (r Resolution) Orientation() Orientation {
	switch {
	case r.Width > r.Height:
		return Landscape
	case r.Width < r.Height:
		return Portrait
	default:
		return Square
	}
}

// AspectRatio returns the reduced ratio, e.g. "16:9" for 1920x1080.
// Invalid resolutions return an empty string.
func (r Resolution) AspectRatio() string {
	if !r.Valid() {
		return ""
	}
	d := gcd(r.Width, r.Height)
	return strconv.Itoa(r.Width/d) + ":" + strconv.Itoa(r.Height/d)
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

var dimensionsRegex = regexp.MustCompile(`^(\d+)x(\d+)$`) // 1280x720

// ParseDimensions parses a "WxH" string into a Resolution.
func ParseDimensions(s string) (Resolution, error) {
	matches := dimensionsRegex.FindStringSubmatch(s)
	if matches == nil {
		return Resolution{}, fmt.Errorf("invalid dimensions %q: expected WxH", s)
	}
	w, errW := strconv.Atoi(matches[1])
	h, errH := strconv.Atoi(matches[2])
	if errW != nil || errH != nil {
		return Resolution{}, fmt.Errorf("invalid dimensions %q: out of range", s)
	}
	r := Resolution{Width: w, Height: h}
	if !r.Valid() {
		return Resolution{}, fmt.Errorf("invalid dimensions %q: width and height must be positive", s)
	}
	return r, nil
}
