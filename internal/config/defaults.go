package config

const (
	defaultLibraryDir            = "~/videos"
	defaultLogDir                = "~/.local/share/vidsync/logs"
	defaultDBPath                = "~/.local/share/vidsync/catalog.db"
	defaultFFprobeBinary         = "ffprobe"
	defaultYtdlpBinary           = "yt-dlp"
	defaultProbeTimeoutSeconds   = 10
	defaultTitleThreshold        = 0.8
	defaultDurationThresholdSecs = 10.0
	defaultLogFormat             = "console"
	defaultLogLevel              = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			LibraryDir: defaultLibraryDir,
			LogDir:     defaultLogDir,
			DBPath:     defaultDBPath,
		},
		Tools: Tools{
			FFprobeBinary:       defaultFFprobeBinary,
			YtdlpBinary:         defaultYtdlpBinary,
			ProbeTimeoutSeconds: defaultProbeTimeoutSeconds,
		},
		Matching: Matching{
			TitleThreshold:           defaultTitleThreshold,
			DurationThresholdSeconds: defaultDurationThresholdSecs,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
