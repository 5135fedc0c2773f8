package resolution

import (
	"fmt"
	"strings"
)

// Preset names an entry in the catalog. Identifiers are persisted in project
// files, so once shipped they must never be renamed or repointed.
type Preset string

const (
	Preset720p  Preset = "720p"
	Preset1080p Preset = "1080p"
	Preset1440p Preset = "1440p"
	Preset4K    Preset = "4k"

	Preset720pVertical  Preset = "720p-vertical"
	Preset1080pVertical Preset = "1080p-vertical"
	Preset1440pVertical Preset = "1440p-vertical"
	Preset4KVertical    Preset = "4k-vertical"
)

const verticalSuffix = "-vertical"

// order is declaration order; listings and selectors follow it.
var order = [...]Preset{
	Preset720p,
	Preset1080p,
	Preset1440p,
	Preset4K,
	Preset720pVertical,
	Preset1080pVertical,
	Preset1440pVertical,
	Preset4KVertical,
}

var table = map[Preset]Resolution{
	Preset720p:  {1280, 720},
	Preset1080p: {1920, 1080},
	Preset1440p: {2560, 1440},
	Preset4K:    {3840, 2160},

	Preset720pVertical:  {720, 1280},
	Preset1080pVertical: {1080, 1920},
	Preset1440pVertical: {1440, 2560},
	Preset4KVertical:    {2160, 3840},
}

// Lookup returns the canvas size for p. Identifiers outside the catalog
// fail with ErrUnknownPreset.
func Lookup(p Preset) (Resolution, error) {
	r, ok := table[p]
	if !ok {
		return Resolution{}, fmt.Errorf("%w: %q", ErrUnknownPreset, string(p))
	}
	return r, nil
}

// MustLookup is Lookup for identifiers known at compile time. It panics on
// an unknown preset.
func MustLookup(p Preset) Resolution {
	r, err := Lookup(p)
	if err != nil {
		panic(err)
	}
	return r
}

// Presets returns every identifier in declaration order. The slice is a
// copy owned by the caller.
func Presets() []Preset {
	out := make([]Preset, len(order))
	copy(out, order[:])
	return out
}

// Parse converts untrusted input into a Preset. Matching is exact.
func Parse(s string) (Preset, error) {
	p := Preset(s)
	if _, ok := table[p]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownPreset, s)
	}
	return p, nil
}

// Match returns the preset whose size is exactly r.
func Match(r Resolution) (Preset, bool) {
	for _, p := range order {
		if table[p] == r {
			return p, true
		}
	}
	return "", false
}

// Known reports whether p is in the catalog.
func (p Preset) Known() bool {
	_, ok := table[p]
	return ok
}

func (p Preset) String() string {
	return string(p)
}

// IsVertical reports whether p is a "-vertical" identifier.
func (p Preset) IsVertical() bool {
	return strings.HasSuffix(string(p), verticalSuffix)
}

// Tier returns the landscape identifier of p's quality tier, e.g. "1080p"
// for "1080p-vertical".
func (p Preset) Tier() Preset {
	return Preset(strings.TrimSuffix(string(p), verticalSuffix))
}

// Landscape returns the landscape counterpart of p.
func (p Preset) Landscape() (Preset, error) {
	return Parse(string(p.Tier()))
}

// Vertical returns the vertical counterpart of p.
func (p Preset) Vertical() (Preset, error) {
	return Parse(string(p.Tier()) + verticalSuffix)
}

// Suggest picks a default canvas for a source: the largest preset of the
// source's orientation that fits inside it without upscaling, or the
// smallest one if none fit. Square sources get a landscape preset.
func Suggest(source Resolution) Preset {
	vertical := source.Orientation() == Portrait
	var best Preset
	for _, p := range order {
		if p.IsVertical() != vertical {
			continue
		}
		r := table[p]
		if best == "" || (r.Width <= source.Width && r.Height <= source.Height) {
			best = p
		}
	}
	return best
}
