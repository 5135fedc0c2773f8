package crops

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"thirdcoast.systems/canvas/pkg/resolution"
)

// Crop is a crop region within a source video.
// Coordinates are normalized (0.0-1.0); X and Y are the region's center.
type Crop struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	AspectRatio string  `json:"aspect_ratio"` // "16:9", "9:16", "1:1", "4:5", "custom"
	X           float64 `json:"x"`
	Y           float64 `json:"y"`
	Width       float64 `json:"width"`
	Height      float64 `json:"height"`
}

// CropArray is a slice of Crop stored as a JSON column.
type CropArray []Crop

// Scan implements sql.Scanner
func (c *CropArray) Scan(value interface{}) error {
	if value == nil {
		*c = CropArray{}
		return nil
	}

	var raw []byte
	switch v := value.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("failed to scan CropArray: expected []byte, got %T", value)
	}

	var out []Crop
	if err := json.Unmarshal(raw, &out); err != nil {
		return fmt.Errorf("failed to unmarshal CropArray: %w", err)
	}
	*c = out
	return nil
}

// Value implements driver.Valuer
func (c CropArray) Value() (driver.Value, error) {
	if c == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(c)
}

// parseRatio accepts "w:h" with positive float parts (e.g. "16:9", "2.39:1").
func parseRatio(aspectRatio string) (float64, float64, bool) {
	parts := strings.Split(aspectRatio, ":")
	if len(parts) != 2 {
		return 0, 0, false
	}
	w, errW := strconv.ParseFloat(parts[0], 64)
	h, errH := strconv.ParseFloat(parts[1], 64)
	if errW != nil || errH != nil || w <= 0 || h <= 0 {
		return 0, 0, false
	}
	return w, h, true
}

// CalculateCropForAspectRatio centers a crop of the given "w:h" ratio in a
// videoWidth x videoHeight source. Unparseable ratios yield the full frame.
func CalculateCropForAspectRatio(videoWidth, videoHeight int, aspectRatio, id, name string) Crop {
	crop := Crop{
		ID:          id,
		Name:        name,
		AspectRatio: aspectRatio,
		X:           0.5,
		Y:           0.5,
		Width:       1.0,
		Height:      1.0,
	}

	targetW, targetH, ok := parseRatio(aspectRatio)
	if !ok || videoWidth <= 0 || videoHeight <= 0 {
		return crop
	}

	targetAspect := targetW / targetH
	videoAspect := float64(videoWidth) / float64(videoHeight)

	if videoAspect > targetAspect {
		// source is wider: trim the sides
		crop.Width = targetAspect / videoAspect
	} else {
		// source is taller: trim top and bottom
		crop.Height = videoAspect / targetAspect
	}
	return crop
}

// CalculateCropForPreset centers a crop matching the preset's aspect ratio.
// The crop gets a fresh ID and is named after the preset.
func CalculateCropForPreset(videoWidth, videoHeight int, preset resolution.Preset) (Crop, error) {
	if videoWidth <= 0 || videoHeight <= 0 {
		return Crop{}, fmt.Errorf("invalid source dimensions %dx%d", videoWidth, videoHeight)
	}
	res, err := resolution.Lookup(preset)
	if err != nil {
		return Crop{}, err
	}
	return CalculateCropForAspectRatio(videoWidth, videoHeight, res.AspectRatio(), uuid.NewString(), preset.String()), nil
}
