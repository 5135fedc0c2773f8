package resolution_api

import (
	"github.com/dustin/go-humanize"
	"thirdcoast.systems/canvas/pkg/resolution"
)

// Entry is the JSON shape of one catalog row.
type Entry struct {
	Preset        resolution.Preset      `json:"preset"`
	Width         int                    `json:"width"`
	Height        int                    `json:"height"`
	AspectRatio   string                 `json:"aspect_ratio"`
	Orientation   resolution.Orientation `json:"orientation"`
	Vertical      bool                   `json:"vertical"`
	Tier          resolution.Preset      `json:"tier"`
	Pixels        int                    `json:"pixels"`
	PixelsDisplay string                 `json:"pixels_display"`
	Megapixels    string                 `json:"megapixels"`
}

// NewEntry builds the entry for a known preset.
func NewEntry(p resolution.Preset, r resolution.Resolution) Entry {
	return Entry{
		Preset:        p,
		Width:         r.Width,
		Height:        r.Height,
		AspectRatio:   r.AspectRatio(),
		Orientation:   r.Orientation(),
		Vertical:      p.IsVertical(),
		Tier:          p.Tier(),
		Pixels:        r.Pixels(),
		PixelsDisplay: humanize.Comma(int64(r.Pixels())),
		Megapixels:    humanize.SIWithDigits(float64(r.Pixels()), 1, "px"),
	}
}

// Entries returns every preset in declaration order.
func Entries() []Entry {
	presets := resolution.Presets()
	out := make([]Entry, 0, len(presets))
	for _, p := range presets {
		out = append(out, NewEntry(p, resolution.MustLookup(p)))
	}
	return out
}
