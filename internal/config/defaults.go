package config

const (
	defaultStateDir               = "~/.local/share/textsim"
	defaultLogDir                 = "~/.local/share/textsim/logs"
	defaultBind                   = "0.0.0.0:5000"
	defaultReadTimeoutSeconds     = 15
	defaultWriteTimeoutSeconds    = 30
	defaultShutdownTimeoutSeconds = 5
	defaultCacheSize              = 1024
	defaultPrecision              = 4
	defaultLogFormat              = "console"
	defaultLogLevel               = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			StateDir: defaultStateDir,
			LogDir:   defaultLogDir,
		},
		Server: Server{
			Bind:                   defaultBind,
			ReadTimeoutSeconds:     defaultReadTimeoutSeconds,
			WriteTimeoutSeconds:    defaultWriteTimeoutSeconds,
			ShutdownTimeoutSeconds: defaultShutdownTimeoutSeconds,
		},
		Similarity: Similarity{
			CacheSize: defaultCacheSize,
			Precision: defaultPrecision,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
