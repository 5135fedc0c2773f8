package web

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"thirdcoast.systems/canvas/internal/config"
	"thirdcoast.systems/canvas/pkg/resolution"
)

func newTestServer(t *testing.T) *Webserver {
	t.Helper()
	s, err := NewWebserver(context.Background(), config.Config{
		WebServerPort:      8080,
		DefaultPreset:      resolution.Preset1080pVertical,
		CORSAllowedOrigins: "https://editor.example.com",
		LogLevel:           "info",
	})
	require.NoError(t, err)
	return s
}

func serve(s *Webserver, method, target string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	return rec
}

func TestHealthz(t *testing.T) {
	t.Parallel()
	s := newTestServer(t)

	rec := serve(s, http.MethodGet, "/healthz", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "ok", rec.Body.String())
}

func TestResolutionsIndex(t *testing.T) {
	t.Parallel()
	s := newTestServer(t)

	rec := serve(s, http.MethodGet, "/api/resolutions", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Default string `json:"default"`
		Presets []struct {
			Preset      string `json:"preset"`
			Width       int    `json:"width"`
			Height      int    `json:"height"`
			AspectRatio string `json:"aspect_ratio"`
			Orientation string `json:"orientation"`
			Vertical    bool   `json:"vertical"`
			Tier        string `json:"tier"`
			Megapixels  string `json:"megapixels"`
		} `json:"presets"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, "1080p-vertical", body.Default)
	require.Len(t, body.Presets, 8)

	var names []string
	for _, p := range body.Presets {
		names = append(names, p.Preset)
	}
	require.Equal(t, []string{
		"720p", "1080p", "1440p", "4k",
		"720p-vertical", "1080p-vertical", "1440p-vertical", "4k-vertical",
	}, names)

	hd := body.Presets[1]
	require.Equal(t, 1920, hd.Width)
	require.Equal(t, 1080, hd.Height)
	require.Equal(t, "16:9", hd.AspectRatio)
	require.Equal(t, "landscape", hd.Orientation)
	require.False(t, hd.Vertical)
	require.Equal(t, "2 Mpx", hd.Megapixels)

	v4k := body.Presets[7]
	require.Equal(t, 2160, v4k.Width)
	require.Equal(t, 3840, v4k.Height)
	require.Equal(t, "portrait", v4k.Orientation)
	require.True(t, v4k.Vertical)
	require.Equal(t, "4k", v4k.Tier)
}

func TestResolutionsShow(t *testing.T) {
	t.Parallel()
	s := newTestServer(t)

	rec := serve(s, http.MethodGet, "/api/resolutions/4k", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"width":3840`)
	require.Contains(t, rec.Body.String(), `"height":2160`)
	require.Contains(t, rec.Body.String(), `"pixels_display":"8,294,400"`)

	rec = serve(s, http.MethodGet, "/api/resolutions/8k", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.JSONEq(t, `{"error":"unknown_preset","preset":"8k"}`, rec.Body.String())
}

func TestResolutionsCanvas(t *testing.T) {
	t.Parallel()
	s := newTestServer(t)

	rec := serve(s, http.MethodGet, "/api/resolutions/1080p-vertical/canvas?source=1920x1080&mode=fill&input=/srv/videos/a.mkv&output=clip.mp4", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var plan struct {
		Preset  string   `json:"preset"`
		Mode    string   `json:"mode"`
		Filters []string `json:"filters"`
		Args    []string `json:"args"`
		Crop    *struct {
			Width float64 `json:"width"`
		} `json:"crop"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &plan))
	require.Equal(t, "1080p-vertical", plan.Preset)
	require.Equal(t, "fill", plan.Mode)
	require.NotNil(t, plan.Crop)
	require.InDelta(t, 0.31640625, plan.Crop.Width, 1e-9)
	require.Equal(t, []string{
		"crop=iw*0.316406:ih*1.000000:iw*0.341797:ih*0.000000",
		"scale=1080:1920",
		"setsar=1",
	}, plan.Filters)
	require.Contains(t, plan.Args, "a.mkv")
	require.NotContains(t, plan.Args, "/srv/videos/a.mkv")
	require.Equal(t, "clip.mp4", plan.Args[len(plan.Args)-1])

	rec = serve(s, http.MethodGet, "/api/resolutions/4k/canvas?source=1920x1080", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"mode":"fit"`)
	require.Contains(t, rec.Body.String(), `"input-4k.mp4"`)
}

func TestResolutionsCanvas_Errors(t *testing.T) {
	t.Parallel()
	s := newTestServer(t)

	rec := serve(s, http.MethodGet, "/api/resolutions/8k/canvas?source=1920x1080", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)

	rec = serve(s, http.MethodGet, "/api/resolutions/4k/canvas?source=wide", nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = serve(s, http.MethodGet, "/api/resolutions/4k/canvas?source=1920x1080&mode=stretch", nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCORS(t *testing.T) {
	t.Parallel()
	s := newTestServer(t)

	t.Run("allowed origin", func(t *testing.T) {
		t.Parallel()
		rec := serve(s, http.MethodGet, "/api/resolutions", map[string]string{"Origin": "https://editor.example.com"})
		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, "https://editor.example.com", rec.Header().Get("Access-Control-Allow-Origin"))
		require.Equal(t, "Origin", rec.Header().Get("Vary"))
	})

	t.Run("allowed origin on error", func(t *testing.T) {
		t.Parallel()
		rec := serve(s, http.MethodGet, "/api/resolutions/8k", map[string]string{"Origin": "https://editor.example.com"})
		require.Equal(t, http.StatusNotFound, rec.Code)
		require.Equal(t, "https://editor.example.com", rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("other origin", func(t *testing.T) {
		t.Parallel()
		rec := serve(s, http.MethodGet, "/api/resolutions", map[string]string{"Origin": "https://evil.example.com"})
		require.Equal(t, http.StatusOK, rec.Code)
		require.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("preflight allowed", func(t *testing.T) {
		t.Parallel()
		rec := serve(s, http.MethodOptions, "/api/resolutions", map[string]string{
			"Origin":                        "https://editor.example.com",
			"Access-Control-Request-Method": "GET",
		})
		require.Equal(t, http.StatusNoContent, rec.Code)
		require.Equal(t, "GET, OPTIONS", rec.Header().Get("Access-Control-Allow-Methods"))
	})

	t.Run("preflight refused", func(t *testing.T) {
		t.Parallel()
		rec := serve(s, http.MethodOptions, "/api/resolutions", map[string]string{
			"Origin":                        "https://evil.example.com",
			"Access-Control-Request-Method": "GET",
		})
		require.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("healthz untouched", func(t *testing.T) {
		t.Parallel()
		rec := serve(s, http.MethodGet, "/healthz", map[string]string{"Origin": "https://editor.example.com"})
		require.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
	})
}
