package cli

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"go.uber.org/zap"

	"github.com/ytget/image-labeler/internal/config"
	"github.com/ytget/image-labeler/internal/session"
	"github.com/ytget/image-labeler/internal/ui"
)

const (
	AppID   = "com.ytget.image-labeler"
	AppName = "Image Labeler"
)

// runGUI opens the labeling window and blocks until it is closed. A non-empty
// folder is opened right away; otherwise the last dataset from the config is.
func runGUI(folder string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	logger.Info("Starting", zap.String("app", AppName), zap.String("version", rootCmd.Version), zap.String("config", cfg.Path()))

	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewLabelerTheme())
	myApp.SetIcon(ui.LoadLogoResource())

	myWindow := myApp.NewWindow(fmt.Sprintf("%s v%s", AppName, rootCmd.Version))
	myWindow.Resize(fyne.NewSize(ui.WindowWidth, ui.WindowHeight))

	settings := config.NewSettings(myApp)
	sess := session.New(session.Options{
		Config:     cfg,
		Extensions: settings.GetImageExtensions(),
		Width:      settings.GetDisplayWidth(),
		Logger:     logger,
	})

	root := ui.NewRootUI(myWindow, sess, settings, logger)
	if folder == "" {
		folder = cfg.DefaultDataPath
	}
	if folder != "" {
		root.OpenFolder(folder)
	}

	myWindow.ShowAndRun()
	return nil
}
