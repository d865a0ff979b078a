package tui

import (
	"fmt"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

// safeModel keeps a panic in Update or View from tearing down the terminal.
type safeModel struct {
	m   tea.Model
	log *zap.Logger
}

func wrapSafe(m tea.Model, log *zap.Logger) safeModel {
	if log == nil {
		log = zap.NewNop()
	}
	return safeModel{m: m, log: log}
}

func (s safeModel) Init() tea.Cmd {
	return s.m.Init()
}

func (s safeModel) Update(msg tea.Msg) (tm tea.Model, cmd tea.Cmd) {
	defer func() {
		if r := recover(); r != nil {
			s.log.Error("panic recovered",
				zap.String("where", "tui.update"),
				zap.String("panic", fmt.Sprint(r)),
				zap.ByteString("stack", debug.Stack()),
			)
			if app, ok := s.m.(*App); ok {
				app.recoverFromPanic()
			}
			tm = s
			cmd = nil
		}
	}()

	inner, c := s.m.Update(msg)
	if sm, ok := inner.(safeModel); ok {
		s = sm
	} else {
		s.m = inner
	}
	return s, c
}

func (s safeModel) View() (out string) {
	defer func() {
		if r := recover(); r != nil {
			s.log.Error("panic recovered",
				zap.String("where", "tui.view"),
				zap.String("panic", fmt.Sprint(r)),
				zap.ByteString("stack", debug.Stack()),
			)
			out = panicStatus
		}
	}()
	return s.m.View()
}

var _ tea.Model = safeModel{}

// Run starts the full-screen program and blocks until it exits.
func Run(app *App, log *zap.Logger) error {
	p := tea.NewProgram(wrapSafe(app, log), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
