package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/wdgph/stdreg/internal/app"
	"github.com/wdgph/stdreg/internal/catalog"
	"github.com/wdgph/stdreg/internal/config"
	"github.com/wdgph/stdreg/internal/keys"
	"github.com/wdgph/stdreg/internal/log"
	"github.com/wdgph/stdreg/internal/registry"
	"github.com/wdgph/stdreg/internal/tracing"
	"github.com/wdgph/stdreg/internal/ui/browse"
	"github.com/wdgph/stdreg/internal/ui/styles"
)

func init() {
	// Force lipgloss/termenv to query terminal background color BEFORE
	// any Bubble Tea program starts. This prevents the terminal's OSC 11
	// response from racing with Bubble Tea's input loop and appearing as
	// garbage text in input fields.
	//
	// See: https://github.com/charmbracelet/bubbletea/issues/1036
	_ = lipgloss.HasDarkBackground()
}

var (
	version   = "dev"
	cfgFile   string
	debugFlag bool
	cfg       config.Config
)

var rootCmd = &cobra.Command{
	Use:     "stdreg",
	Short:   "A terminal ui for browsing data standards",
	Long:    `A terminal user interface for browsing a version-controlled registry of data standards: manifest-described record sets in YAML, JSON, or XML with search and statistics.`,
	Version: version,
	RunE:    runBrowse,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default: ~/.config/stdreg/config.yaml)")
	rootCmd.PersistentFlags().StringP("registry", "r", "",
		"path to the registry root directory")
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false,
		"enable debug logging")

	// Bind flags to viper
	_ = viper.BindPFlag("registry_dir", rootCmd.PersistentFlags().Lookup("registry"))
}

func initConfig() {
	defaults := config.Defaults()
	viper.SetDefault("manifest", defaults.Manifest)
	viper.SetDefault("ui.show_status_bar", defaults.UI.ShowStatusBar)
	viper.SetDefault("ui.markdown_style", defaults.UI.MarkdownStyle)
	viper.SetDefault("ui.record_preview", defaults.UI.RecordPreview)
	viper.SetDefault("search.max_results", defaults.Search.MaxResults)
	viper.SetDefault("tracing.exporter", defaults.Tracing.Exporter)
	viper.SetDefault("tracing.otlp_endpoint", defaults.Tracing.OTLPEndpoint)
	viper.SetDefault("tracing.sample_rate", defaults.Tracing.SampleRate)

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		// Config lookup order:
		// 1. .stdreg/config.yaml (current directory)
		// 2. ~/.config/stdreg/config.yaml (user config)
		if _, err := os.Stat(".stdreg/config.yaml"); err == nil {
			viper.SetConfigFile(".stdreg/config.yaml")
		} else {
			home, _ := os.UserHomeDir()
			viper.AddConfigPath(filepath.Join(home, ".config", "stdreg"))
			viper.SetConfigName("config")
			viper.SetConfigType("yaml")
		}
	}

	if err := viper.ReadInConfig(); err != nil {
		// No config file found anywhere - create default at .stdreg/config.yaml
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			defaultPath := ".stdreg/config.yaml"
			if writeErr := config.WriteDefaultConfig(defaultPath); writeErr == nil {
				viper.SetConfigFile(defaultPath)
				_ = viper.ReadInConfig()
			}
			// If write fails, just continue with defaults (no config file)
		}
	}

	_ = viper.Unmarshal(&cfg)
}

// registryRoot resolves the directory holding the manifest and data files.
func registryRoot() string {
	if cfg.RegistryDir != "" {
		return cfg.RegistryDir
	}
	return "."
}

// newTracingProvider builds the trace provider from config. The caller owns
// the provider and must shut it down to flush spans.
func newTracingProvider() (*tracing.Provider, error) {
	tcfg := tracing.Config{
		Enabled:      cfg.Tracing.Enabled,
		Exporter:     cfg.Tracing.Exporter,
		FilePath:     cfg.Tracing.FilePath,
		OTLPEndpoint: cfg.Tracing.OTLPEndpoint,
		SampleRate:   cfg.Tracing.SampleRate,
	}
	if tcfg.FilePath == "" {
		tcfg.FilePath = config.DefaultTracesFilePath()
	}
	return tracing.NewProvider(tcfg)
}

// openCatalog loads the manifest and builds a traced catalog over the
// registry root. The returned cleanup flushes the trace exporter.
func openCatalog() (*catalog.Catalog, func(), error) {
	provider, err := newTracingProvider()
	if err != nil {
		return nil, nil, fmt.Errorf("initializing tracing: %w", err)
	}
	cleanup := func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = provider.Shutdown(ctx)
	}

	fsys := os.DirFS(registryRoot())
	reg, err := registry.LoadRegistry(fsys, cfg.Manifest)
	if err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("loading registry: %w", err)
	}

	return catalog.New(reg, fsys, catalog.WithTracer(provider.Tracer())), cleanup, nil
}

func runBrowse(cmd *cobra.Command, args []string) error {
	if err := config.Validate(cfg); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	// Initialize logging if debug mode enabled (via flag or env var)
	debug := debugFlag || os.Getenv("STDREG_DEBUG") != ""
	if debug {
		logPath := os.Getenv("STDREG_LOG")
		if logPath == "" {
			logPath = "debug.log"
		}

		cleanup, err := log.InitWithTeaLog(logPath, "stdreg")
		if err != nil {
			return fmt.Errorf("initializing logging: %w", err)
		}
		defer cleanup()

		log.Info(log.CatConfig, "stdreg starting", "debug", true, "logPath", logPath)
	}

	if cfg.Theme.Mode != "" {
		lipgloss.SetHasDarkBackground(cfg.Theme.Mode == "dark")
	}
	styles.ApplyTheme(cfg.Theme.Highlight, cfg.Theme.Subtle, cfg.Theme.Error, cfg.Theme.Success)
	keys.ApplyConfig(cfg.Keys.Search, cfg.Keys.DebugLogs)

	cat, cleanup, err := openCatalog()
	if err != nil {
		return err
	}
	defer cleanup()

	model := app.New(cat, browse.Options{
		MarkdownStyle: cfg.UI.MarkdownStyle,
		MaxResults:    cfg.Search.MaxResults,
		RecordPreview: cfg.UI.RecordPreview,
		ShowStatusBar: cfg.UI.ShowStatusBar,
	}, debug)
	p := tea.NewProgram(
		&model,
		tea.WithAltScreen(),
	)

	_, err = p.Run()
	model.Close()

	if err != nil {
		return fmt.Errorf("running program: %w", err)
	}
	return nil
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version string (called from main with ldflags)
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}
