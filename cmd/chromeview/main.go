// Chromeview opens YAML chrome templates in a window so layouts can be
// checked without the game. An optional JSON input script replays clicks
// and keys against the opened window.
//
//	chromeview -config chromeview.toml
//	chromeview -open MAIN_MENU examples/menu/menu.yaml
//	chromeview -dump -open MAIN_MENU examples/menu/menu.yaml
package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/phanxgames/willowui"
	"github.com/phanxgames/willowui/ebitenhost"
)

var (
	configPath = flag.String("config", "", "TOML config file")
	openID     = flag.String("open", "", "template ID to open (overrides config)")
	scriptPath = flag.String("script", "", "JSON input script to replay (overrides config)")
	dump       = flag.Bool("dump", false, "print the widget tree and exit without opening a window")
	debug      = flag.Bool("debug", false, "enable debug checks")
)

func main() {
	flag.Parse()
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	if err := run(logger); err != nil {
		logger.Error("chromeview", "err", err)
		os.Exit(1)
	}
}

func run(logger *slog.Logger) error {
	cfg, err := LoadConfig(*configPath)
	if err != nil {
		return err
	}
	cfg.Templates = append(cfg.Templates, flag.Args()...)
	if *openID != "" {
		cfg.Open = *openID
	}
	if *scriptPath != "" {
		cfg.Script = *scriptPath
	}
	if *debug {
		cfg.UI.Debug = true
	}

	ui, err := newUI(cfg, logger)
	if err != nil {
		return err
	}
	if *dump {
		return willowui.DumpTree(os.Stdout, ui.Root())
	}

	rc := ebitenhost.RunConfig{
		Title:            cfg.Window.Title,
		Scale:            cfg.Window.Scale,
		ShowFPS:          cfg.Window.ShowFPS,
		ExitOnScriptDone: cfg.ExitOnScriptDone,
		ScreenshotDir:    cfg.ScreenshotDir,
	}
	if cfg.Script != "" {
		data, err := os.ReadFile(cfg.Script)
		if err != nil {
			return fmt.Errorf("read script: %w", err)
		}
		if rc.Script, err = willowui.LoadInputScript(data); err != nil {
			return fmt.Errorf("%s: %w", cfg.Script, err)
		}
	}
	return ebitenhost.Run(ui, rc)
}

// newUI builds a context from cfg, loads its templates and opens the
// configured window. With a single template and no Open ID, that template
// is opened.
func newUI(cfg Config, logger *slog.Logger) (*willowui.Context, error) {
	settings, err := cfg.Settings()
	if err != nil {
		return nil, err
	}
	if len(cfg.Templates) == 0 {
		return nil, errors.New("no template files given")
	}
	ts, err := willowui.LoadTemplateFiles(cfg.Templates...)
	if err != nil {
		return nil, err
	}

	ui := willowui.NewContext(settings, willowui.WithLogger(logger))
	if err := ui.Templates().Merge(ts); err != nil {
		return nil, err
	}

	open := cfg.Open
	if open == "" {
		ids := ts.IDs()
		if len(ids) != 1 {
			return nil, fmt.Errorf("%d templates loaded; choose one with -open", len(ids))
		}
		open = ids[0]
	}
	if _, err := ui.OpenWindow(open, nil); err != nil {
		return nil, err
	}
	logger.Info("opened window", "id", open, "templates", len(ts.IDs()))
	return ui, nil
}
