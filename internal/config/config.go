// Package config provides configuration types and defaults for stdreg.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/wdgph/stdreg/internal/log"
)

// Config holds all configuration options for stdreg.
type Config struct {
	// RegistryDir is the directory holding the manifest and data files.
	// Empty means the current working directory.
	RegistryDir string `mapstructure:"registry_dir"`

	// Manifest is the manifest file name inside RegistryDir.
	Manifest string `mapstructure:"manifest"`

	UI      UIConfig      `mapstructure:"ui"`
	Search  SearchConfig  `mapstructure:"search"`
	Keys    KeysConfig    `mapstructure:"keys"`
	Theme   ThemeConfig   `mapstructure:"theme"`
	Tracing TracingConfig `mapstructure:"tracing"`
}

// UIConfig holds user interface configuration options.
type UIConfig struct {
	ShowStatusBar bool   `mapstructure:"show_status_bar"`
	MarkdownStyle string `mapstructure:"markdown_style"` // "dark" (default) or "light"

	// RecordPreview is how many records the details page previews.
	RecordPreview int `mapstructure:"record_preview"`
}

// SearchConfig holds search behavior options.
type SearchConfig struct {
	// MaxResults caps how many matching records are rendered.
	// Zero means no cap.
	MaxResults int `mapstructure:"max_results"`
}

// KeysConfig holds keybinding overrides. Empty values keep the defaults.
// Key names follow bubbletea conventions ("ctrl+g", "f5"); "ctrl+space"
// is accepted and translated to the sequence terminals actually send.
type KeysConfig struct {
	// Search rebinds the key that focuses record search (default "/").
	Search string `mapstructure:"search"`

	// DebugLogs rebinds the key that toggles the log overlay
	// (default "ctrl+x").
	DebugLogs string `mapstructure:"debug_logs"`
}

// ThemeConfig holds theme customization options.
type ThemeConfig struct {
	// Mode forces light or dark mode. If empty, uses terminal detection.
	// Valid values: "light", "dark", ""
	Mode string `mapstructure:"mode"`

	// Individual color overrides, hex strings like "#7D56F4".
	Highlight string `mapstructure:"highlight"`
	Subtle    string `mapstructure:"subtle"`
	Error     string `mapstructure:"error"`
	Success   string `mapstructure:"success"`
}

// TracingConfig holds tracing configuration.
type TracingConfig struct {
	// Enabled controls whether tracing is active.
	// Default: false
	Enabled bool `mapstructure:"enabled"`

	// Exporter selects the trace export backend.
	// Options: "none", "file", "stdout", "otlp"
	// Default: "file"
	Exporter string `mapstructure:"exporter"`

	// FilePath is the output file for "file" exporter.
	// Default: ~/.config/stdreg/traces/traces.jsonl
	FilePath string `mapstructure:"file_path"`

	// OTLPEndpoint is the collector endpoint for "otlp" exporter.
	// Default: "localhost:4317"
	OTLPEndpoint string `mapstructure:"otlp_endpoint"`

	// SampleRate controls trace sampling (0.0 to 1.0).
	// 1.0 = all traces, 0.1 = 10% of traces
	// Default: 1.0
	SampleRate float64 `mapstructure:"sample_rate"`
}

// DefaultTracesFilePath returns the default path for trace file export.
// Returns ~/.config/stdreg/traces/traces.jsonl or empty string if home dir
// unavailable.
func DefaultTracesFilePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "stdreg", "traces", "traces.jsonl")
}

// Defaults returns a Config with sensible default values.
func Defaults() Config {
	return Config{
		RegistryDir: "",
		Manifest:    "registry.yaml",
		UI: UIConfig{
			ShowStatusBar: true,
			MarkdownStyle: "dark",
			RecordPreview: 10,
		},
		Search: SearchConfig{
			MaxResults: 50,
		},
		Theme: ThemeConfig{},
		Tracing: TracingConfig{
			Enabled:      false,
			Exporter:     "file",
			FilePath:     "", // Derived from config dir at runtime
			OTLPEndpoint: "localhost:4317",
			SampleRate:   1.0,
		},
	}
}

// ValidateUI checks UI configuration for errors.
// Returns nil if the configuration is valid (empty values use defaults).
func ValidateUI(ui UIConfig) error {
	switch ui.MarkdownStyle {
	case "", "dark", "light":
	default:
		return fmt.Errorf("ui.markdown_style must be \"dark\" or \"light\", got %q", ui.MarkdownStyle)
	}

	if ui.RecordPreview < 0 {
		return fmt.Errorf("ui.record_preview must not be negative, got %d", ui.RecordPreview)
	}
	return nil
}

// ValidateSearch checks search configuration for errors.
func ValidateSearch(search SearchConfig) error {
	if search.MaxResults < 0 {
		return fmt.Errorf("search.max_results must not be negative, got %d", search.MaxResults)
	}
	return nil
}

// ValidateTheme checks theme configuration for errors.
// Returns nil if the configuration is valid (empty values use defaults).
func ValidateTheme(theme ThemeConfig) error {
	switch theme.Mode {
	case "", "light", "dark":
	default:
		return fmt.Errorf("theme.mode must be \"light\" or \"dark\", got %q", theme.Mode)
	}
	return nil
}

// ValidateTracing checks tracing configuration for errors.
// Returns nil if the configuration is valid (empty values use defaults).
func ValidateTracing(tracing TracingConfig) error {
	if tracing.SampleRate < 0.0 || tracing.SampleRate > 1.0 {
		return fmt.Errorf("tracing.sample_rate must be between 0.0 and 1.0, got %v", tracing.SampleRate)
	}

	if tracing.Exporter != "" {
		switch tracing.Exporter {
		case "none", "file", "stdout", "otlp":
			// Valid
		default:
			return fmt.Errorf("tracing.exporter must be \"none\", \"file\", \"stdout\", or \"otlp\", got %q", tracing.Exporter)
		}
	}

	// Only validate path requirements when tracing is enabled
	if tracing.Enabled {
		if tracing.Exporter == "file" && tracing.FilePath == "" {
			return fmt.Errorf("tracing.file_path is required when exporter is \"file\"")
		}
		if tracing.Exporter == "otlp" && tracing.OTLPEndpoint == "" {
			return fmt.Errorf("tracing.otlp_endpoint is required when exporter is \"otlp\"")
		}
	}

	return nil
}

// Validate checks the whole configuration.
func Validate(cfg Config) error {
	if err := ValidateUI(cfg.UI); err != nil {
		return err
	}
	if err := ValidateSearch(cfg.Search); err != nil {
		return err
	}
	if err := ValidateTheme(cfg.Theme); err != nil {
		return err
	}
	return ValidateTracing(cfg.Tracing)
}

// DefaultConfigTemplate returns the default config as a YAML string with comments.
func DefaultConfigTemplate() string {
	return `# stdreg Configuration

# Directory holding the registry manifest and standard data files
# (default: current directory)
# registry_dir: /path/to/standards

# Manifest file name inside registry_dir
manifest: registry.yaml

# UI settings
ui:
  show_status_bar: true   # Show status bar at bottom
  # markdown_style: dark  # Markdown rendering style: "dark" (default) or "light"
  record_preview: 10      # Records shown in the details preview

# Search settings
search:
  max_results: 50         # Cap on rendered search results (0 = no cap)

# Keybinding overrides
# keys:
#   search: ctrl+space    # Focus record search (default: /)
#   debug_logs: ctrl+g    # Toggle the debug log overlay (default: ctrl+x)

# Theme configuration
theme:
  # Force light or dark rendering (default: terminal detection)
  # mode: dark
  #
  # Override individual colors:
  # highlight: "#7D56F4"
  # subtle: "#6C6C6C"
  # error: "#FF5555"
  # success: "#73F59F"

# Tracing configuration
# Traces catalog queries (records, search, stats, overview) end to end
# tracing:
#   enabled: false                 # Enable/disable tracing (default: false)
#   exporter: file                 # Export backend: none, file, stdout, otlp (default: file)
#   file_path: ~/.config/stdreg/traces/traces.jsonl  # Output file for file exporter
#   otlp_endpoint: localhost:4317  # OTLP collector endpoint (for otlp exporter)
#   sample_rate: 1.0               # Trace sampling rate 0.0-1.0 (default: 1.0)
#
# Example: Send traces to Jaeger via OTLP
# tracing:
#   enabled: true
#   exporter: otlp
#   otlp_endpoint: jaeger.internal:4317
#   sample_rate: 0.1  # Sample 10% of traces
`
}

// WriteDefaultConfig creates a config file at the given path with default
// settings and comments. Creates the parent directory if it doesn't exist.
func WriteDefaultConfig(configPath string) error {
	log.Debug(log.CatConfig, "Writing default config", "path", configPath)

	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to create config directory", err, "dir", dir)
		return fmt.Errorf("creating config directory: %w", err)
	}

	if err := os.WriteFile(configPath, []byte(DefaultConfigTemplate()), 0o600); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to write config file", err, "path", configPath)
		return fmt.Errorf("writing config file: %w", err)
	}

	log.Info(log.CatConfig, "Created default config", "path", configPath)
	return nil
}
