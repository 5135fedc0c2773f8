package ffmpeg

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"strconv"

	"thirdcoast.systems/canvas/pkg/resolution"
)

// ProbeResult is the subset of ffprobe metadata needed to plan a canvas.
type ProbeResult struct {
	Width      int     // coded width of the first video stream
	Height     int     // coded height of the first video stream
	Rotation   int     // display rotation in degrees, normalized to 0/90/180/270
	FPS        float64 // frames per second
	VideoCodec string
	Duration   float64 // seconds
	FormatName string
}

type ffprobeOutput struct {
	Format struct {
		FormatName string `json:"format_name"`
		Duration   string `json:"duration"`
	} `json:"format"`
	Streams []struct {
		CodecType  string `json:"codec_type"`
		CodecName  string `json:"codec_name"`
		Width      int    `json:"width"`
		Height     int    `json:"height"`
		RFrameRate string `json:"r_frame_rate"`
		Tags       struct {
			Rotate string `json:"rotate"`
		} `json:"tags"`
		SideDataList []struct {
			Rotation *int `json:"rotation"`
		} `json:"side_data_list"`
	} `json:"streams"`
}

// Probe runs ffprobe on a file and returns its video metadata.
func Probe(ctx context.Context, path string) (*ProbeResult, error) {
	cmd := exec.CommandContext(ctx, "ffprobe",
		"-hide_banner",
		"-v", "quiet",
		"-print_format", "json",
		"-show_format",
		"-show_streams",
		path,
	)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("ffprobe: %w: %s", err, stderr.String())
	}
	return ParseProbe(stdout.Bytes())
}

// ParseProbe decodes `ffprobe -print_format json -show_format -show_streams`
// output. Only the first video stream is considered.
func ParseProbe(raw []byte) (*ProbeResult, error) {
	var output ffprobeOutput
	if err := json.Unmarshal(raw, &output); err != nil {
		return nil, fmt.Errorf("ffprobe: failed to parse output: %w", err)
	}

	result := &ProbeResult{FormatName: output.Format.FormatName}
	if output.Format.Duration != "" {
		result.Duration, _ = strconv.ParseFloat(output.Format.Duration, 64)
	}

	for _, stream := range output.Streams {
		if stream.CodecType != "video" {
			continue
		}
		result.Width = stream.Width
		result.Height = stream.Height
		result.VideoCodec = stream.CodecName
		result.FPS = parseFrameRate(stream.RFrameRate)

		// Newer ffprobe reports rotation in side data, older in tags.
		rotation := 0
		for _, sd := range stream.SideDataList {
			if sd.Rotation != nil {
				rotation = *sd.Rotation
				break
			}
		}
		if rotation == 0 && stream.Tags.Rotate != "" {
			rotation, _ = strconv.Atoi(stream.Tags.Rotate)
		}
		result.Rotation = normalizeRotation(rotation)
		break
	}

	if result.Width <= 0 || result.Height <= 0 {
		return nil, fmt.Errorf("ffprobe: no video stream with dimensions")
	}
	return result, nil
}

// Resolution returns the displayed frame size, accounting for rotation.
// Phone footage is often stored landscape with a 90 degree display rotation.
func (p *ProbeResult) Resolution() resolution.Resolution {
	r := resolution.Resolution{Width: p.Width, Height: p.Height}
	if p.Rotation == 90 || p.Rotation == 270 {
		return r.Transpose()
	}
	return r
}

func normalizeRotation(deg int) int {
	deg %= 360
	if deg < 0 {
		deg += 360
	}
	return deg
}

// parseFrameRate parses ffprobe frame rate format (e.g., "30/1" or "30000/1001").
func parseFrameRate(rate string) float64 {
	var num, den int
	_, err := fmt.Sscanf(rate, "%d/%d", &num, &den)
	if err != nil || den == 0 {
		return 0
	}
	return float64(num) / float64(den)
}
