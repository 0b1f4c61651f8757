// GardenSketch - Garden Bed Planner
//
// A cross-platform desktop application for arranging crops in a garden
// bed with snapping, row planting and printable plans.
//
// Build:
//   go build -o gardensketch ./cmd/gardensketch
//
// Cross-compile:
//   GOOS=windows GOARCH=amd64 go build -o gardensketch.exe ./cmd/gardensketch
//   GOOS=darwin  GOARCH=amd64 go build -o gardensketch-darwin ./cmd/gardensketch
//
// Using fyne-cross (recommended for proper packaging):
//   go install github.com/fyne-io/fyne-cross@latest
//   fyne-cross windows -arch=amd64
//   fyne-cross darwin  -arch=amd64,arm64

package main

import (
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	fynetooltip "github.com/dweymouth/fyne-tooltip"

	"github.com/piwi3910/GardenSketch/internal/applog"
	"github.com/piwi3910/GardenSketch/internal/model"
	"github.com/piwi3910/GardenSketch/internal/project"
	"github.com/piwi3910/GardenSketch/internal/ui"
)

func main() {
	configPath := project.DefaultConfigPath()
	cfg, cfgErr := project.LoadAppConfig(configPath)
	if cfgErr != nil {
		cfg = model.DefaultAppConfig()
	}
	logger := applog.New(os.Stderr, applog.ParseLevel(cfg.LogLevel))
	if cfgErr != nil {
		logger.Error("failed to load config, using defaults", "path", configPath, "err", cfgErr)
	}

	application := app.NewWithID("com.piwi3910.gardensketch")
	application.Settings().SetTheme(ui.ThemeFor(cfg.Theme))

	window := application.NewWindow("GardenSketch - Garden Bed Planner")

	appUI := ui.NewApp(application, window, cfg, configPath, logger)
	defer appUI.Close()
	appUI.SetupMenus()
	window.SetContent(fynetooltip.AddWindowToolTipLayer(appUI.Build(), window.Canvas()))
	window.Resize(fyne.NewSize(1200, 760))
	window.CenterOnScreen()
	window.ShowAndRun()
}
