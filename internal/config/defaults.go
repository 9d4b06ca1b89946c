package config

const (
	defaultDataDir     = "~/.local/share/kinolog"
	defaultLogDir      = "~/.local/share/kinolog/logs"
	defaultExportDir   = "~/.local/share/kinolog/exports"
	defaultCatalogFile = "~/.local/share/kinolog/sample_movies.json"
	defaultHistoryFile = "~/.local/share/kinolog/history.db"
	defaultLogFormat   = "console"
	defaultLogLevel    = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			DataDir:   defaultDataDir,
			LogDir:    defaultLogDir,
			ExportDir: defaultExportDir,
		},
		Catalog: Catalog{
			Path:      defaultCatalogFile,
			WriteBack: true,
		},
		History: History{
			Enabled: true,
			Path:    defaultHistoryFile,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
