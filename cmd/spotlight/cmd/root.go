// Package cmd contains all CLI commands for the spotlight tool.
package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/f3rmion/spotlight/internal/config"
	"github.com/f3rmion/spotlight/internal/logging"
	"github.com/f3rmion/spotlight/internal/reveal"
	"github.com/f3rmion/spotlight/internal/tui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	logFile string
	logOut  *os.File
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "spotlight",
	Short: "Reveal a title in colour under the mouse pointer",
	Long: `spotlight draws a title twice: a plain base layer and a coloured
highlight layer on top of it. The highlight only shows through a soft
circular mask that follows the mouse pointer.

Running 'spotlight' without arguments launches the interactive TUI.
Settings come from $HOME/.config/spotlight/config.yaml, SPOTLIGHT_*
environment variables, and flags, in increasing priority.`,
	PersistentPostRunE: closeLogging,
	SilenceUsage:       true,
	RunE:               runTUI,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Assigned here rather than in the literal: setupLogging refers to rootCmd.
	rootCmd.PersistentPreRunE = setupLogging
	cobra.OnInitialize(initConfig)

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/spotlight/config.yaml)")
	pf.Bool("verbose", false, "debug logging")
	pf.StringVar(&logFile, "log-file", "", "write logs to this file")
	pf.String("text", "", "title text")
	pf.Float64("radius", 0, "mask radius in pixels")
	pf.Float64("soft-edge", 0, "width of the mask's soft edge in pixels")
	pf.String("mode", "", "terminal drawing mode: block or cell")

	viper.BindPFlag("verbose", pf.Lookup("verbose"))
	viper.BindPFlag("text", pf.Lookup("text"))
	viper.BindPFlag("radius", pf.Lookup("radius"))
	viper.BindPFlag("soft_edge", pf.Lookup("soft-edge"))
	viper.BindPFlag("mode", pf.Lookup("mode"))
}

// initConfig points viper at the config file.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
		return
	}

	dir, err := config.GetConfigDir()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error finding home directory:", err)
		os.Exit(1)
	}
	viper.SetConfigFile(filepath.Join(dir, config.FileName))
}

// configPath returns the config file in use.
func configPath() string {
	return viper.ConfigFileUsed()
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(viper.GetViper())
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

// setupLogging installs the logger. The TUI owns the terminal, so it only
// logs to --log-file; other commands may also log to stderr.
func setupLogging(cmd *cobra.Command, args []string) error {
	verbose := viper.GetBool("verbose")

	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return fmt.Errorf("opening log file: %w", err)
		}
		logOut = f
		logging.SetLogger(logging.NewTextLogger(f, verbose))
		return nil
	}

	if verbose && cmd != rootCmd {
		logging.SetLogger(logging.NewTextLogger(os.Stderr, true))
	}
	return nil
}

func closeLogging(cmd *cobra.Command, args []string) error {
	if logOut == nil {
		return nil
	}
	logging.SetLogger(nil)
	err := logOut.Close()
	logOut = nil
	return err
}

// runTUI launches the interactive title.
func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	f, err := loadFont(cfg)
	if err != nil {
		return err
	}

	model, err := tui.New(cfg, f)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
		tea.WithReportFocus(),
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running TUI: %w", err)
	}

	return nil
}

// loadFont loads the configured font, warning when the title needs glyphs the
// built-in face does not have.
func loadFont(cfg *config.Config) (*reveal.Font, error) {
	if cfg.MissingGlyphs() {
		logging.Logger().Warn("title has Han characters but no font is set; set font or romanize",
			"text", cfg.Text)
	}
	return reveal.LoadFont(cfg.Font)
}
