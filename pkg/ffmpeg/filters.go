package ffmpeg

import (
	"fmt"

	"thirdcoast.systems/canvas/pkg/resolution"
)

// Scale adds a scale filter. Use -2 for an auto, even dimension.
func Scale(width, height int) Option {
	return Filter(fmt.Sprintf("scale=%d:%d", width, height))
}

// ScaleForceAspect scales within (decrease) or over (increase) the box
// while keeping the source aspect ratio.
func ScaleForceAspect(width, height int, mode string) Option {
	return Filter(fmt.Sprintf("scale=%d:%d:force_original_aspect_ratio=%s", width, height, mode))
}

// PadCenter pads the frame to width x height with the video centered.
func PadCenter(width, height int) Option {
	return Filter(fmt.Sprintf("pad=%d:%d:(ow-iw)/2:(oh-ih)/2", width, height))
}

// SetSAR forces square pixels so players honour the canvas size.
func SetSAR() Option {
	return Filter("setsar=1")
}

// FitCanvas letterboxes the source onto an r-sized canvas.
func FitCanvas(r resolution.Resolution) Option {
	return OptionFunc(func(cmd *Command) {
		ScaleForceAspect(r.Width, r.Height, "decrease").Apply(cmd)
		PadCenter(r.Width, r.Height).Apply(cmd)
		SetSAR().Apply(cmd)
	})
}

// FillCanvas scales an already aspect-matched frame to exactly r.
// Pair it with a crop (see PlanCanvas) so nothing is stretched.
func FillCanvas(r resolution.Resolution) Option {
	return OptionFunc(func(cmd *Command) {
		Scale(r.Width, r.Height).Apply(cmd)
		SetSAR().Apply(cmd)
	})
}
