package ffmpeg

import (
	"errors"
	"fmt"

	"thirdcoast.systems/canvas/pkg/resolution"
	"thirdcoast.systems/canvas/pkg/utils/crops"
)

// CanvasMode selects how a source is placed on the output canvas.
type CanvasMode string

const (
	// ModeFit letterboxes: the whole source is visible, padded to the canvas.
	ModeFit CanvasMode = "fit"
	// ModeFill center-crops the source to the canvas aspect, then scales.
	ModeFill CanvasMode = "fill"
)

var ErrInvalidMode = errors.New("invalid canvas mode")

// ParseCanvasMode parses "fit" or "fill". Empty input means fit.
func ParseCanvasMode(s string) (CanvasMode, error) {
	switch CanvasMode(s) {
	case "", ModeFit:
		return ModeFit, nil
	case ModeFill:
		return ModeFill, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidMode, s)
	}
}

// CanvasPlan is the export recipe for one source onto one preset canvas.
type CanvasPlan struct {
	Preset  resolution.Preset     `json:"preset"`
	Source  resolution.Resolution `json:"source"`
	Target  resolution.Resolution `json:"target"`
	Mode    CanvasMode            `json:"mode"`
	Crop    *crops.Crop           `json:"crop,omitempty"`
	Filters []string              `json:"filters"`
	Args    []string              `json:"args"`
}

// PlanCanvas builds the ffmpeg recipe that renders a source of the given
// size onto the preset's canvas. Unknown presets fail with
// resolution.ErrUnknownPreset; extra options are appended after the canvas
// filters.
func PlanCanvas(source resolution.Resolution, preset resolution.Preset, mode CanvasMode, input, output string, extra ...Option) (*CanvasPlan, error) {
	if !source.Valid() {
		return nil, fmt.Errorf("invalid source dimensions %s", source)
	}
	target, err := resolution.Lookup(preset)
	if err != nil {
		return nil, err
	}

	plan := &CanvasPlan{
		Preset: preset,
		Source: source,
		Target: target,
		Mode:   mode,
	}

	var opts []Option
	switch mode {
	case ModeFit:
		opts = append(opts, FitCanvas(target))
	case ModeFill:
		crop, err := crops.CalculateCropForPreset(source.Width, source.Height, preset)
		if err != nil {
			return nil, err
		}
		plan.Crop = &crop
		if filter := crop.Filter(); filter != "" {
			opts = append(opts, Filter(filter))
		}
		opts = append(opts, FillCanvas(target))
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidMode, string(mode))
	}

	opts = append(opts, Metadata("canvas_preset", preset.String()))
	opts = append(opts, extra...)

	cmd := NewCommand(input, output, opts...)
	plan.Filters = cmd.VideoFilters()
	plan.Args = cmd.Build()
	return plan, nil
}
