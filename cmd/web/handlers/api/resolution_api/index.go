package resolution_api

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"thirdcoast.systems/canvas/cmd/web/handlers/common"
	"thirdcoast.systems/canvas/pkg/resolution"
)

type indexResponse struct {
	Default resolution.Preset `json:"default"`
	Presets []Entry           `json:"presets"`
}

// HandleIndex lists the catalog for the editor's canvas selector.
// GET /api/resolutions
func HandleIndex(defaultPreset resolution.Preset) echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, indexResponse{
			Default: defaultPreset,
			Presets: Entries(),
		})
	}
}

// HandleShow returns a single preset.
// GET /api/resolutions/:preset
func HandleShow() echo.HandlerFunc {
	return func(c echo.Context) error {
		p, err := common.RequirePresetParam(c, "preset")
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, NewEntry(p, resolution.MustLookup(p)))
	}
}
