package main

import (
	"fmt"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/philipparndt/govec/internal/config"
	"github.com/philipparndt/govec/internal/gui"
	"github.com/philipparndt/govec/internal/logging"
	"github.com/philipparndt/govec/version"
	"go.uber.org/zap"
)

func main() {
	a := app.New()
	w := a.NewWindow("GoVec - Vector Calculator")

	dir, err := os.Getwd()
	if err != nil {
		dir = "."
	}
	cfg, loaded, err := config.Resolve("", dir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, err := logging.NewLogger(cfg.Debug)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()
	logger.Debug("config loaded", zap.String("config_path", loaded), zap.String("version", version.GetFullVersion()))

	opts, err := cfg.ReportOptions()
	if err != nil {
		logger.Sync()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	calculator := gui.NewCalculator(opts)
	quitButton := widget.NewButton("Quit", a.Quit)

	w.SetContent(container.NewBorder(nil, container.NewHBox(quitButton), nil, nil, calculator.Content()))
	w.Resize(fyne.NewSize(520, 480))
	w.ShowAndRun()
}
