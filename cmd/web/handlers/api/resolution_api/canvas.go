package resolution_api

import (
	"log/slog"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/labstack/echo/v4"
	"thirdcoast.systems/canvas/cmd/web/handlers/common"
	"thirdcoast.systems/canvas/pkg/ffmpeg"
	"thirdcoast.systems/canvas/pkg/resolution"
	"thirdcoast.systems/canvas/pkg/utils/filename"
)

const defaultInput = "input.mp4"

// HandleCanvas returns the crop and ffmpeg recipe that renders a source onto
// the preset's canvas.
// GET /api/resolutions/:preset/canvas?source=1920x1080&mode=fill&input=a.mkv&output=b.mp4
func HandleCanvas() echo.HandlerFunc {
	return func(c echo.Context) error {
		p, err := common.RequirePresetParam(c, "preset")
		if err != nil {
			return err
		}

		source, err := resolution.ParseDimensions(strings.TrimSpace(c.QueryParam("source")))
		if err != nil {
			return common.ErrBadRequest("source must be WxH, e.g. 1920x1080")
		}

		mode, err := ffmpeg.ParseCanvasMode(strings.ToLower(strings.TrimSpace(c.QueryParam("mode"))))
		if err != nil {
			return common.ErrBadRequest("mode must be fit or fill")
		}

		input := baseNameOr(c.QueryParam("input"), defaultInput)
		output := filename.Sanitize(filepath.Base(strings.TrimSpace(c.QueryParam("output"))), 0)
		if output == "" {
			output = filename.ForPreset(input, p, "")
		}

		opts := append(ffmpeg.PresetExportHQ(), ffmpeg.PresetExportAAC()...)
		plan, err := ffmpeg.PlanCanvas(source, p, mode, input, output, opts...)
		if err != nil {
			slog.Error("failed to plan canvas", "error", err, "preset", p, "source", source)
			return common.ErrInternal("failed to plan canvas")
		}

		return c.JSON(http.StatusOK, plan)
	}
}

// baseNameOr keeps only the file name so the recipe never names server paths.
func baseNameOr(raw, fallback string) string {
	name := filepath.Base(strings.TrimSpace(raw))
	if name == "." || name == string(filepath.Separator) || name == "" {
		return fallback
	}
	return name
}
