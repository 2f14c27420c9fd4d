package main

import (
	"fmt"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/spf13/cobra"

	"github.com/lampi/looper/internal/config"
	"github.com/lampi/looper/internal/logging"
	"github.com/lampi/looper/internal/model"
	"github.com/lampi/looper/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.lampi.looper"
	AppName = "Lampi Looper"

	WindowWidth  = 420
	WindowHeight = 720
)

var (
	logLevel   string
	logFormat  string
	language   string
	rowTrigger string
)

var rootCmd = &cobra.Command{
	Use:     "looper",
	Short:   "Beat loops and lamp colour on one screen",
	Version: version,
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run()
	},
}

func init() {
	rootCmd.Flags().StringVar(&logLevel, "log-level", "info", "logging level (debug, info, warn, error)")
	rootCmd.Flags().StringVar(&logFormat, "log-format", logging.FormatConsole, "logging format (console, json)")
	rootCmd.Flags().StringVar(&language, "lang", "", "interface language (system, en, ru, pt); saved as the new default")
	rootCmd.Flags().StringVar(&rowTrigger, "row-trigger", "", "play control style (icon, button); saved as the new default")
}

func run() error {
	logger := logging.Init(logging.Config{Level: logLevel, Format: logFormat})
	logger.Info().Str("version", version).Msg("starting " + AppName)

	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewLampiTheme())

	settings := config.NewSettings(myApp)
	if language != "" {
		settings.SetLanguage(language)
	}
	if rowTrigger != "" {
		trigger := config.RowTrigger(rowTrigger)
		if !trigger.IsValid() {
			return fmt.Errorf("unknown row trigger %q", rowTrigger)
		}
		settings.SetRowTrigger(trigger)
	}

	myWindow := myApp.NewWindow(AppName)
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	ui.NewRootUI(myWindow, myApp, model.SeedLoops(), model.NewLamp())

	myWindow.ShowAndRun()
	logger.Info().Msg("shutting down")
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
