package main

import (
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"

	"github.com/mordilloSan/go-logger/logger"

	"github.com/shydock/shydock/internal/autohide"
	"github.com/shydock/shydock/internal/config"
	"github.com/shydock/shydock/internal/launch"
	"github.com/shydock/shydock/internal/platform"
	"github.com/shydock/shydock/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.shydock.shydock"
	AppName = "shydock"

	// VerboseEnv enables debug logging when set to a non-empty value
	VerboseEnv = "SHYDOCK_VERBOSE"
)

func main() {
	initLogging()
	logger.Infof("%s v%s starting", AppName, version)

	configDir, err := config.DefaultConfigDir()
	if err != nil {
		logger.Errorf("cannot resolve config directory: %v", err)
		os.Exit(1)
	}

	manager := config.NewManager(config.NewStore(configDir))
	if err := manager.Load(); err != nil {
		// the in-memory defaults are usable; only the heal write failed
		logger.Warnf("config load: %v", err)
	}

	watcher, err := config.StartWatcher(manager)
	if err != nil {
		logger.Warnf("config watcher unavailable, external edits need a restart: %v", err)
	} else {
		defer watcher.Stop()
	}

	screen, err := platform.DisplayBounds()
	if err != nil {
		screen = platform.DefaultScreenSize
		logger.Warnf("screen query failed, assuming %dx%d: %v", screen.W, screen.H, err)
	}

	// Create new Fyne app
	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewDockTheme())

	window := newDockWindow(myApp)
	controller := autohide.NewController(platform.NewCursorQuery())
	launcher := launch.NewService()

	info := ui.AppInfo{Name: AppName, Version: version, ConfigDir: configDir}
	ui.NewDock(window, manager, controller, launcher, screen, func() {
		ui.ShowSettingsPanel(myApp, manager, controller, info)
	})

	// All controller work happens on the UI thread; the ticker only schedules it
	ticker := autohide.StartTicker(controller.TickInterval(), func() {
		fyne.Do(controller.Tick)
	})
	defer ticker.Stop()

	window.ShowAndRun()
}

// newDockWindow creates the borderless panel window when the desktop driver
// supports it, falling back to a regular window elsewhere
func newDockWindow(a fyne.App) fyne.Window {
	if drv, ok := a.Driver().(desktop.Driver); ok {
		return drv.CreateSplashWindow()
	}
	return a.NewWindow(AppName)
}

func initLogging() {
	levels := []logger.Level{logger.InfoLevel, logger.WarnLevel, logger.ErrorLevel}
	if os.Getenv(VerboseEnv) != "" {
		levels = logger.AllLevels()
	}
	logger.Init(logger.Config{Levels: levels})
}
