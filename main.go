// main.go
package main

import (
	"fmt"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"file-emporium/config"
	"file-emporium/core"
	"file-emporium/logger"
	appTheme "file-emporium/theme"
	"file-emporium/ui"

	// Registers every page unit through the tools package init chain
	_ "file-emporium/tools"
)

var (
	configFile string
	startPath  string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "emporium",
	Short: "PyroRay's File Emporium - PDF and file tools",
	Long: `File Emporium is a desktop shell hosting a PDF splitter/merger and a
file splitter/reassembler behind a collapsible sidebar.

Run without arguments to open the window. The split, join and pdf
sub-commands run the same engines without a GUI.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log, err := setup()
		if err != nil {
			return err
		}
		defer log.Sync()
		return runGUI(cfg, log)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (default: ./config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.Flags().StringVar(&startPath, "path", "", "route to open at start, e.g. /pdf-tool")

	rootCmd.AddCommand(splitCmd, joinCmd, pdfCmd)
}

// setup loads configuration and builds the logger shared by every command.
func setup() (*config.Config, *zap.Logger, error) {
	load := config.Load
	if configFile != "" {
		load = func() (*config.Config, error) { return config.LoadFile(configFile) }
	}
	cfg, err := load()
	if err != nil {
		return nil, nil, err
	}
	if startPath != "" {
		cfg.App.StartPath = startPath
	}
	if verbose {
		cfg.Logging.Level = "debug"
	}

	log, err := logger.NewLogger(&cfg.Logging, &cfg.App)
	if err != nil {
		return nil, nil, err
	}
	return cfg, log, nil
}

func runGUI(cfg *config.Config, log *zap.Logger) error {
	registry, err := ui.NewRegistry()
	if err != nil {
		return fmt.Errorf("build route registry: %w", err)
	}

	myApp := app.NewWithID("com.pyroray.emporium")
	myApp.Settings().SetTheme(appTheme.NewLightTheme())

	myWindow := myApp.NewWindow(cfg.App.Title)
	myWindow.Resize(fyne.NewSize(cfg.App.Width, cfg.App.Height))

	router := core.NewRouter(cfg.App.StartPath, log)
	shell := ui.NewShell(router, registry, cfg.Sidebar.Title, ui.NavLinks, core.PageContext{
		Window: myWindow,
		Logger: log,
		Tools:  cfg.Tools,
	}, log)

	myWindow.SetContent(ui.CreateMainWindowLayout(myApp, myWindow, shell, router))

	log.Info("starting", zap.String("path", router.CurrentPath()))
	myWindow.ShowAndRun()
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
