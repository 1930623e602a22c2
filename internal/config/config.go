// Package config provides the configuration schema, loader, and file watcher
// for the Cadence analysis server.
package config

// LogLevel controls log verbosity for the Cadence server.
type LogLevel string

const (
	LogDebug LogLevel = "debug"
	LogInfo  LogLevel = "info"
	LogWarn  LogLevel = "warn"
	LogError LogLevel = "error"
)

// IsValid reports whether l is a recognised log level.
func (l LogLevel) IsValid() bool {
	switch l {
	case LogDebug, LogInfo, LogWarn, LogError:
		return true
	}
	return false
}

// Config is the root configuration structure for Cadence.
// It is typically loaded from a YAML file using [Load] or [LoadFromReader].
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Analysis  AnalysisConfig  `yaml:"analysis"`
	Lexicon   LexiconConfig   `yaml:"lexicon"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
}

// ServerConfig holds network and logging settings for the Cadence server.
type ServerConfig struct {
	// ListenAddr is the TCP address the server listens on (e.g., ":8080").
	// Defaults to ":8080".
	ListenAddr string `yaml:"listen_addr"`

	// LogLevel controls verbosity. Defaults to "info".
	LogLevel LogLevel `yaml:"log_level"`

	// TLS configures TLS for the server. When nil, the server runs plain HTTP.
	TLS *TLSConfig `yaml:"tls"`
}

// TLSConfig holds TLS certificate paths for enabling HTTPS.
type TLSConfig struct {
	// CertFile is the path to the PEM-encoded TLS certificate.
	CertFile string `yaml:"cert_file"`

	// KeyFile is the path to the PEM-encoded TLS private key.
	KeyFile string `yaml:"key_file"`
}

// AnalysisConfig tunes how reports are generated. The analyzer thresholds
// themselves are fixed; only execution behaviour is configurable.
type AnalysisConfig struct {
	// Sequential forces the analyzers to run one at a time instead of
	// concurrently. Reports are identical either way; sequential mode
	// exists for deterministic profiling.
	Sequential bool `yaml:"sequential"`
}

// LexiconConfig extends the built-in analyzer vocabularies. Entries that
// duplicate or nearly duplicate existing vocabulary are skipped with a
// logged warning rather than rejected.
type LexiconConfig struct {
	// ExtraFillers adds filler words. Entries containing spaces join the
	// multi-word filler set (matched by substring search); single words are
	// matched token-exactly.
	ExtraFillers []string `yaml:"extra_fillers"`

	// ExtraHedges adds hedging phrases.
	ExtraHedges []string `yaml:"extra_hedges"`

	// ExtraAnalogyMarkers adds analogy marker phrases.
	ExtraAnalogyMarkers []string `yaml:"extra_analogy_markers"`
}

// TelemetryConfig names this instance in exported metrics and traces.
type TelemetryConfig struct {
	// ServiceName is the service name reported in telemetry. Default: "cadence".
	ServiceName string `yaml:"service_name"`
}
