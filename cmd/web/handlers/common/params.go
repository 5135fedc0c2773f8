package common

import (
	"github.com/labstack/echo/v4"
	"thirdcoast.systems/canvas/pkg/resolution"
)

// RequirePresetParam extracts a preset route parameter or returns a 404
// unknown_preset error.
func RequirePresetParam(c echo.Context, param string) (resolution.Preset, error) {
	raw := c.Param(param)
	p, err := resolution.Parse(raw)
	if err != nil {
		return "", ErrUnknownPreset(raw)
	}
	return p, nil
}
