package main

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/pders01/hinan/internal/catalog"
	"github.com/pders01/hinan/internal/config"
	"github.com/pders01/hinan/internal/debuglog"
	"github.com/pders01/hinan/internal/tui"
)

// Version is the version of the application, set at build time
var Version = "dev"

type options struct {
	configPath string
	logLevel   string
	logFile    string
	screen     string
	title      string
	quiet      bool

	version        bool
	generateConfig bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:          tui.AppName,
		Short:        "Evacuation-support screen navigator",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if opts.version {
				printVersion(cmd.OutOrStdout())
				return nil
			}
			if opts.generateConfig {
				return generateConfig(cmd.OutOrStdout(), opts.configPath)
			}

			if !opts.quiet {
				tui.ShowBanner(cmd.OutOrStdout(), Version)
			}

			app, err := prepare(opts)
			if err != nil {
				return err
			}
			defer debuglog.Close()

			if _, err := tea.NewProgram(app, tea.WithAltScreen()).Run(); err != nil {
				return fmt.Errorf("running ui: %w", err)
			}
			return nil
		},
	}

	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "Path to configuration file")
	root.Flags().StringVar(&opts.logLevel, "log-level", "", "Log level: debug, info, warn, error, off (overrides config)")
	root.Flags().StringVar(&opts.logFile, "log-file", "", "Path to log file (overrides config)")
	root.Flags().StringVar(&opts.screen, "screen", "", "Screen shown at startup (overrides config)")
	root.Flags().StringVar(&opts.title, "title", "", "Title shown at startup (overrides config)")
	root.Flags().BoolVarP(&opts.quiet, "quiet", "q", false, "Skip startup banner")
	root.Flags().BoolVar(&opts.version, "version", false, "Show version information")
	root.Flags().BoolVar(&opts.generateConfig, "generate-config", false, "Generate default config file")

	root.AddCommand(newVersionCmd(), newConfigCmd(opts))
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, _ []string) {
			printVersion(cmd.OutOrStdout())
		},
	}
}

func printVersion(out io.Writer) {
	fmt.Fprintf(out, "%s %s\n", tui.AppName, Version)
	fmt.Fprintln(out, "Evacuation-support screen navigator")
	fmt.Fprintln(out, "github.com/pders01/hinan")
}

func newConfigCmd(opts *options) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage configuration",
	}
	configCmd.AddCommand(&cobra.Command{
		Use:   "generate",
		Short: "Write the default configuration file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return generateConfig(cmd.OutOrStdout(), opts.configPath)
		},
	})
	return configCmd
}

// generateConfig writes the default configuration to path, or to the
// default location when path is empty.
func generateConfig(out io.Writer, path string) error {
	if path == "" {
		path = config.DefaultPath()
	}
	if err := config.GenerateDefaultConfig(path); err != nil {
		return fmt.Errorf("generating config: %w", err)
	}
	fmt.Fprintf(out, "Generated default configuration at: %s\n", path)
	return nil
}

// prepare loads configuration, starts logging and builds the app without
// running it.
func prepare(opts *options) (*tui.App, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	applyOverrides(cfg, opts)

	if err := debuglog.Setup(debuglog.ParseLogLevel(cfg.Log.Level), cfg.Log.File); err != nil {
		return nil, err
	}

	entries, err := screenEntries(cfg)
	if err != nil {
		debuglog.Close()
		return nil, err
	}
	debuglog.Infof("starting %s %s with %d screens", tui.AppName, Version, len(entries))

	app, err := tui.NewApp(cfg, entries)
	if err != nil {
		debuglog.Close()
		return nil, fmt.Errorf("building screens: %w", err)
	}
	return app, nil
}

func applyOverrides(cfg *config.Config, opts *options) {
	if opts.logLevel != "" {
		cfg.Log.Level = opts.logLevel
	}
	if opts.logFile != "" {
		cfg.Log.File = opts.logFile
	}
	if opts.screen != "" {
		cfg.Navigator.DefaultScreen = opts.screen
	}
	if opts.title != "" {
		cfg.Navigator.DefaultTitle = opts.title
	}
}

// screenEntries merges screens declared in the config over the built-in
// catalog.
func screenEntries(cfg *config.Config) ([]catalog.Entry, error) {
	base, err := catalog.Default()
	if err != nil {
		return nil, err
	}
	overrides := make([]catalog.Entry, 0, len(cfg.Screens))
	for _, s := range cfg.Screens {
		overrides = append(overrides, catalog.Entry{
			ID:     s.ID,
			Title:  s.Title,
			Layout: s.Layout,
			Menu:   s.Menu,
			Body:   s.Body,
		})
	}
	return catalog.Merge(base, overrides), nil
}
