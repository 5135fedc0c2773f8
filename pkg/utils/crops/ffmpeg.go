package crops

import "fmt"

// LooksLikeFullFrame reports whether a crop covers the whole frame, in which
// case no crop filter is needed.
func LooksLikeFullFrame(x, y, w, h float64) bool {
	return x >= 0.49 && x <= 0.51 && y >= 0.49 && y <= 0.51 && w >= 0.99 && h >= 0.99
}

// FFmpegCropFilter converts a normalized center-based crop into an ffmpeg
// crop filter relative to the input size. Full-frame crops return "".
func FFmpegCropFilter(centerX, centerY, width, height float64) string {
	if LooksLikeFullFrame(centerX, centerY, width, height) {
		return ""
	}
	left := centerX - width/2
	top := centerY - height/2
	return fmt.Sprintf("crop=iw*%.6f:ih*%.6f:iw*%.6f:ih*%.6f", width, height, left, top)
}

// Filter returns the ffmpeg crop filter for c.
func (c Crop) Filter() string {
	return FFmpegCropFilter(c.X, c.Y, c.Width, c.Height)
}

// BuildCropFilterByID returns the filter for the crop with the given ID, or
// "" if it is missing or full frame.
func BuildCropFilterByID(cropsData CropArray, cropID string) string {
	for _, crop := range cropsData {
		if crop.ID == cropID {
			return crop.Filter()
		}
	}
	return ""
}
