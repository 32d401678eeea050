package app

import (
	"runtime"

	"github.com/gdamore/tcell/v2"

	"github.com/kobzarvs/mini/internal/config"
	"github.com/kobzarvs/mini/internal/editor"
	"github.com/kobzarvs/mini/internal/logger"
)

// App is the top-level runtime for mini: one file, one screen, one
// synchronous event loop.
type App struct {
	path string
}

func New(path string) *App {
	return &App{path: path}
}

func (a *App) Run() error {
	runtime.LockOSThread()
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if err := logger.Init(cfg.Editor.Debug); err != nil {
		return err
	}
	defer logger.Close()

	ed := editor.New(cfg)
	if err := ed.OpenFile(a.path); err != nil {
		return err
	}

	s, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := s.Init(); err != nil {
		return err
	}
	defer s.Fini()

	logger.Info("editor started", "path", a.path)
	ed.Render(s)
	for {
		ev := s.PollEvent()
		switch ev := ev.(type) {
		case *tcell.EventKey:
			if ed.HandleKey(ev) {
				logger.Info("editor exiting", "path", a.path, "modified", ed.Modified())
				return nil
			}
			if ed.ConsumeRedrawRequest() {
				s.Sync()
			}
		case *tcell.EventResize:
			s.Sync()
		}
		ed.Render(s)
	}
}
