// internal/tui/app.go
//
// The terminal UI for a reading. It uses bubbletea, which follows The Elm
// Architecture:
//
// 1. Model: Your application state
// 2. Update: A function that updates state based on messages
// 3. View: A function that renders state to a string
//
// The flow is: User Input -> Message -> Update -> New Model -> View -> Screen

package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/kingrea/yidao/internal/almanac"
	"github.com/kingrea/yidao/internal/bazi"
	"github.com/kingrea/yidao/internal/config"
	"github.com/kingrea/yidao/internal/reading"
	"github.com/kingrea/yidao/internal/report"
	"github.com/kingrea/yidao/internal/snapshot"
	"github.com/kingrea/yidao/internal/workflow"
)

// clipboardWriteAll is a package-level variable to allow mocking in tests.
var clipboardWriteAll = clipboard.WriteAll

const (
	copiedStatus = "报告内容已成功刻录（复制）到剪贴板。"
	panicStatus  = "界面异常，已返回首页（详见日志）。"
)

type restoredMsg struct {
	result reading.Result
	err    error
}

type ceremonyDoneMsg struct{}

type consultedMsg struct {
	result reading.Result
	err    error
}

type copiedMsg struct{ err error }

type resetMsg struct{ err error }

type themeSavedMsg struct{ err error }

// AppOption customizes App construction for tests and alternate runtimes.
type AppOption func(*App)

// WithLogger sets the logger used for UI events.
func WithLogger(logger *zap.Logger) AppOption {
	return func(a *App) {
		if logger != nil {
			a.logger = logger
		}
	}
}

// WithCeremony overrides the casting pause from configuration.
func WithCeremony(d time.Duration) AppOption {
	return func(a *App) {
		a.ceremony = d
	}
}

// App is the main application model. In bubbletea, this holds ALL your state.
type App struct {
	step    workflow.Step
	config  *config.Config
	service *reading.Service
	logger  *zap.Logger

	theme    config.Theme
	styles   Styles
	renderer *report.Renderer
	keys     keyMap
	help     help.Model

	zodiacMenu list.Model
	zodiac     bazi.Zodiac
	form       birthForm
	spinner    spinner.Model
	casting    bool
	ceremony   time.Duration
	result     *reading.Result
	viewport   viewport.Model

	statusMsg string
	errMsg    string

	// Window size (we get this from bubbletea)
	width  int
	height int
}

// NewApp creates a new App instance
func NewApp(cfg *config.Config, service *reading.Service, opts ...AppOption) *App {
	theme := cfg.Theme()
	palette := PaletteFor(theme)

	menu := list.New(zodiacItems(), list.NewDefaultDelegate(), 0, 0)
	menu.Title = workflow.StepZodiacSelection.FriendlyName()
	menu.SetShowStatusBar(false)
	menu.SetFilteringEnabled(false)
	menu.SetShowHelp(false)
	menu.KeyMap.Quit.SetEnabled(false)

	spin := spinner.New()
	spin.Spinner = spinner.Moon

	a := &App{
		step:       workflow.StepWelcome,
		config:     cfg,
		service:    service,
		logger:     zap.NewNop(),
		theme:      theme,
		styles:     NewStyles(palette),
		renderer:   report.NewRenderer(palette.glamourStyle(), cfg.WordWrap()),
		keys:       defaultKeyMap(),
		help:       help.New(),
		zodiacMenu: menu,
		form:       newBirthForm(),
		spinner:    spin,
		ceremony:   cfg.Ceremony(),
		viewport:   viewport.New(80, 20),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Init is called once when the program starts. A saved reading, if any,
// takes the user straight to the report.
func (a *App) Init() tea.Cmd {
	svc := a.service
	return func() tea.Msg {
		res, err := svc.Restore(context.Background())
		return restoredMsg{result: res, err: err}
	}
}

// Update is called when a message is received.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.zodiacMenu.SetSize(max(0, msg.Width-4), max(0, msg.Height-8))
		a.resizeViewport()
		return a, nil

	case restoredMsg:
		return a.handleRestored(msg)

	case ceremonyDoneMsg:
		return a, a.consult()

	case consultedMsg:
		return a.handleConsulted(msg)

	case copiedMsg:
		if msg.err != nil {
			a.logger.Warn("clipboard write failed", zap.Error(msg.err))
			a.statusMsg = "复制失败：" + msg.err.Error()
		} else {
			a.statusMsg = copiedStatus
		}
		return a, nil

	case resetMsg:
		if msg.err != nil {
			a.logger.Error("reset failed", zap.Error(msg.err))
		}
		a.resetState()
		return a, nil

	case themeSavedMsg:
		if msg.err != nil {
			a.logger.Warn("persist theme", zap.Error(msg.err))
		}
		return a, nil

	case spinner.TickMsg:
		if !a.casting {
			return a, nil
		}
		var cmd tea.Cmd
		a.spinner, cmd = a.spinner.Update(msg)
		return a, cmd

	case tea.KeyMsg:
		if key.Matches(msg, a.keys.Quit) {
			return a, tea.Quit
		}
		if a.casting {
			return a, nil
		}
		if key.Matches(msg, a.keys.Theme) {
			return a, a.toggleTheme()
		}
		if key.Matches(msg, a.keys.Back) {
			return a.stepBack()
		}
		return a.handleStepKey(msg)
	}

	if a.step == workflow.StepFinalReport {
		var cmd tea.Cmd
		a.viewport, cmd = a.viewport.Update(msg)
		return a, cmd
	}
	return a, nil
}

func (a *App) handleStepKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch a.step {
	case workflow.StepWelcome:
		switch {
		case key.Matches(msg, a.keys.Enter):
			a.step = workflow.StepZodiacSelection
		case msg.String() == "q":
			return a, tea.Quit
		}
		return a, nil

	case workflow.StepZodiacSelection:
		if key.Matches(msg, a.keys.Enter) {
			if item, ok := a.zodiacMenu.SelectedItem().(zodiacItem); ok {
				a.zodiac = item.card.Zodiac
				a.step = workflow.StepZodiacInsight
			}
			return a, nil
		}
		var cmd tea.Cmd
		a.zodiacMenu, cmd = a.zodiacMenu.Update(msg)
		return a, cmd

	case workflow.StepZodiacInsight:
		switch {
		case key.Matches(msg, a.keys.Enter):
			a.errMsg = ""
			a.step = workflow.StepDayMasterCalculation
		case key.Matches(msg, a.keys.Reselect):
			a.step = workflow.StepZodiacSelection
		}
		return a, nil

	case workflow.StepDayMasterCalculation:
		switch {
		case key.Matches(msg, a.keys.Up):
			a.form.focusPrev()
		case key.Matches(msg, a.keys.Down):
			a.form.focusNext()
		case key.Matches(msg, a.keys.Left):
			a.form.shift(-1)
		case key.Matches(msg, a.keys.Right):
			a.form.shift(1)
		case key.Matches(msg, a.keys.Enter):
			return a.submit()
		}
		return a, nil

	case workflow.StepFinalReport:
		switch {
		case key.Matches(msg, a.keys.Copy):
			return a, a.copyReport()
		case key.Matches(msg, a.keys.Reset):
			return a, a.reset()
		}
		var cmd tea.Cmd
		a.viewport, cmd = a.viewport.Update(msg)
		return a, cmd
	}
	return a, nil
}

func (a *App) stepBack() (tea.Model, tea.Cmd) {
	a.errMsg = ""
	a.statusMsg = ""
	a.step = a.step.Prev()
	return a, nil
}

// submit validates the form and starts the casting ceremony.
func (a *App) submit() (tea.Model, tea.Cmd) {
	a.errMsg = ""
	if err := a.service.Validate(a.form.request(a.zodiac)); err != nil {
		a.errMsg = reading.UserMessage(err)
		return a, nil
	}
	if a.ceremony <= 0 {
		return a, a.consult()
	}
	a.casting = true
	return a, tea.Batch(
		a.spinner.Tick,
		tea.Tick(a.ceremony, func(time.Time) tea.Msg { return ceremonyDoneMsg{} }),
	)
}

func (a *App) consult() tea.Cmd {
	svc := a.service
	req := a.form.request(a.zodiac)
	return func() tea.Msg {
		res, err := svc.Consult(context.Background(), req)
		return consultedMsg{result: res, err: err}
	}
}

func (a *App) handleConsulted(msg consultedMsg) (tea.Model, tea.Cmd) {
	a.casting = false
	if msg.err != nil && !reading.IsKind(msg.err, reading.KindStorage) {
		a.errMsg = reading.UserMessage(msg.err)
		return a, nil
	}
	if msg.err != nil {
		// The reading is complete; only saving failed.
		a.statusMsg = "本次报告未能存档：" + msg.err.Error()
	}
	a.showResult(msg.result)
	return a, nil
}

func (a *App) handleRestored(msg restoredMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		if !errors.Is(msg.err, snapshot.ErrNotFound) {
			a.logger.Warn("restore snapshot", zap.Error(msg.err))
		}
		return a, nil
	}
	user := msg.result.User
	a.zodiac = user.Zodiac
	a.zodiacMenu.Select(int(user.Zodiac))
	a.form = formFor(user.BirthDate, user.BirthTime)
	a.showResult(msg.result)
	a.logger.Info("restored saved reading", zap.Time("saved_at", msg.result.SavedAt))
	return a, nil
}

func (a *App) showResult(res reading.Result) {
	a.result = &res
	a.errMsg = ""
	a.step = workflow.StepFinalReport
	a.refreshReport()
	a.viewport.GotoTop()
}

func (a *App) refreshReport() {
	if a.result == nil {
		a.viewport.SetContent("")
		return
	}
	a.viewport.SetContent(a.renderer.Render(a.result.Report))
}

func (a *App) resizeViewport() {
	if a.width <= 0 || a.height <= 0 {
		return
	}
	a.viewport.Width = max(20, a.width-4)
	a.viewport.Height = max(5, a.height-16)
	wrap := a.config.WordWrap()
	if a.viewport.Width-2 < wrap {
		wrap = a.viewport.Width - 2
	}
	if wrap != a.renderer.Wrap() {
		a.renderer = a.renderer.WithWrap(wrap)
		a.refreshReport()
	}
}

func (a *App) toggleTheme() tea.Cmd {
	a.theme = a.theme.Toggle()
	palette := PaletteFor(a.theme)
	a.styles = NewStyles(palette)
	a.renderer = a.renderer.WithStyle(palette.glamourStyle())
	a.refreshReport()
	a.logger.Debug("theme toggled", zap.String("theme", string(a.theme)))

	// Persist here, on the update goroutine, so successive toggles land in order.
	err := a.config.SetTheme(a.theme)
	return func() tea.Msg {
		return themeSavedMsg{err: err}
	}
}

func (a *App) copyReport() tea.Cmd {
	if a.result == nil {
		return nil
	}
	text := report.ShareText(a.result.Report)
	return func() tea.Msg {
		return copiedMsg{err: clipboardWriteAll(text)}
	}
}

func (a *App) reset() tea.Cmd {
	svc := a.service
	return func() tea.Msg {
		return resetMsg{err: svc.Reset(context.Background())}
	}
}

// resetState returns every field to its first-launch value.
func (a *App) resetState() {
	a.step = workflow.StepWelcome
	a.zodiac = bazi.Rat
	a.zodiacMenu.Select(0)
	a.form = newBirthForm()
	a.casting = false
	a.result = nil
	a.errMsg = ""
	a.statusMsg = ""
	a.refreshReport()
}

// recoverFromPanic is called by the safe wrapper after a panic in Update.
func (a *App) recoverFromPanic() {
	a.step = workflow.StepWelcome
	a.casting = false
	a.errMsg = ""
	a.statusMsg = panicStatus
}

// zodiacItem implements list.Item for a zodiac card
type zodiacItem struct {
	card almanac.ZodiacCard
}

func (i zodiacItem) Title() string {
	return fmt.Sprintf("%s %s · %s", i.card.Icon(), i.card.Zodiac, i.card.Title)
}

func (i zodiacItem) Description() string {
	return stars(i.card.Rating) + "  " + strings.Join(i.card.Tags, " · ")
}

func (i zodiacItem) FilterValue() string { return i.card.Zodiac.Name() }

func zodiacItems() []list.Item {
	cards := almanac.ZodiacCards()
	items := make([]list.Item, len(cards))
	for i, c := range cards {
		items[i] = zodiacItem{card: c}
	}
	return items
}

func stars(rating int) string {
	rating = min(max(rating, 0), 5)
	return strings.Repeat("★", rating) + strings.Repeat("☆", 5-rating)
}
