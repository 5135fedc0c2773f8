package ffmpeg

import (
	"testing"

	"github.com/stretchr/testify/require"
	"thirdcoast.systems/canvas/pkg/resolution"
)

func TestParseProbe(t *testing.T) {
	raw := []byte(`{
		"streams": [
			{"codec_type": "audio", "codec_name": "aac"},
			{"codec_type": "video", "codec_name": "h264", "width": 1920, "height": 1080, "r_frame_rate": "30000/1001"}
		],
		"format": {"format_name": "mov,mp4,m4a,3gp,3g2,mj2", "duration": "12.500000"}
	}`)

	p, err := ParseProbe(raw)
	require.NoError(t, err)
	require.Equal(t, 1920, p.Width)
	require.Equal(t, 1080, p.Height)
	require.Equal(t, "h264", p.VideoCodec)
	require.InDelta(t, 29.97, p.FPS, 0.01)
	require.InDelta(t, 12.5, p.Duration, 1e-9)
	require.Equal(t, 0, p.Rotation)
	require.Equal(t, resolution.Resolution{Width: 1920, Height: 1080}, p.Resolution())
}

func TestParseProbe_Rotation(t *testing.T) {
	sideData := []byte(`{"streams":[{"codec_type":"video","width":1920,"height":1080,
		"side_data_list":[{"side_data_type":"Display Matrix","rotation":-90}]}],"format":{}}`)
	p, err := ParseProbe(sideData)
	require.NoError(t, err)
	require.Equal(t, 270, p.Rotation)
	require.Equal(t, resolution.Resolution{Width: 1080, Height: 1920}, p.Resolution())

	tags := []byte(`{"streams":[{"codec_type":"video","width":1280,"height":720,"tags":{"rotate":"90"}}],"format":{}}`)
	p, err = ParseProbe(tags)
	require.NoError(t, err)
	require.Equal(t, 90, p.Rotation)
	require.Equal(t, resolution.Resolution{Width: 720, Height: 1280}, p.Resolution())

	flipped := []byte(`{"streams":[{"codec_type":"video","width":1280,"height":720,"tags":{"rotate":"180"}}],"format":{}}`)
	p, err = ParseProbe(flipped)
	require.NoError(t, err)
	require.Equal(t, resolution.Resolution{Width: 1280, Height: 720}, p.Resolution())
}

func TestParseProbe_Errors(t *testing.T) {
	_, err := ParseProbe([]byte(`not json`))
	require.Error(t, err)

	_, err = ParseProbe([]byte(`{"streams":[{"codec_type":"audio"}],"format":{}}`))
	require.Error(t, err)
}
