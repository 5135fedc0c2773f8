package ffmpeg

// PresetExportHQ returns options for high-quality h264 clip export.
func PresetExportHQ() []Option {
	return []Option{
		VideoCodec("libx264"),
		CRF(21),
		EncoderPreset("medium"),
		PixelFormat("yuv420p"),
	}
}

// PresetExportAAC returns options for AAC audio export.
func PresetExportAAC() []Option {
	return []Option{
		AudioCodec("aac"),
		AudioBitrate("192k"),
	}
}
