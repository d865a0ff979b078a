package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/kingrea/yidao/internal/almanac"
	"github.com/kingrea/yidao/internal/bazi"
	"github.com/kingrea/yidao/internal/workflow"
)

// View renders the current step.
func (a *App) View() string {
	var body string
	switch a.step {
	case workflow.StepWelcome:
		body = a.renderWelcome()
	case workflow.StepZodiacSelection:
		body = a.zodiacMenu.View()
	case workflow.StepZodiacInsight:
		body = a.renderInsight()
	case workflow.StepDayMasterCalculation:
		body = a.renderForm()
	case workflow.StepFinalReport:
		body = a.renderReport()
	}

	parts := []string{a.renderHeader(), body}
	if a.errMsg != "" {
		parts = append(parts, a.styles.Error.Render(a.errMsg))
	}
	if a.statusMsg != "" {
		parts = append(parts, a.styles.Status.Render(a.statusMsg))
	}
	parts = append(parts, a.styles.Help.Render(a.help.View(a.stepKeys())))
	return lipgloss.NewStyle().Padding(1, 2).Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

func (a *App) renderHeader() string {
	title := a.styles.Title.Render("易道 · " + almanac.FocusYearTitle)
	theme := a.styles.Subtitle.Render("  [" + themeLabel(a.styles.Palette) + "]")
	return title + theme + "\n"
}

func (a *App) renderWelcome() string {
	big := a.styles.Title.Render(almanac.FocusYearName)
	lines := []string{
		big,
		a.styles.Body.Render("赤马红羊劫"),
		"",
		a.styles.Subtitle.Render("择生肖，定日主，观流年十神。"),
		a.styles.Subtitle.Render("按 enter 开启推演"),
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (a *App) renderInsight() string {
	card := almanac.Zodiac(a.zodiac)
	lines := []string{
		a.styles.Title.Render(fmt.Sprintf("%s 属%s · %s", card.Icon(), card.Zodiac, card.Title)),
		a.styles.Status.Render(stars(card.Rating)),
		a.styles.Subtitle.Render(strings.Join(card.Tags, " · ")),
		"",
		a.styles.Body.Render(card.Description),
	}
	return a.styles.Card.Align(lipgloss.Left).Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func (a *App) renderForm() string {
	if a.casting {
		return a.styles.Title.Render(a.spinner.View() + " 正在排盘，推演四柱……")
	}
	rows := []struct {
		field formField
		label string
		value string
	}{
		{fieldYear, "出生年", fmt.Sprintf("%d 年", a.form.year)},
		{fieldMonth, "出生月", fmt.Sprintf("%d 月", a.form.month)},
		{fieldDay, "出生日", fmt.Sprintf("%d 日", a.form.day)},
		{fieldBracket, "出生时辰", a.form.bracketLabel()},
	}
	lines := []string{a.styles.Subtitle.Render("请输入出生时间，精准定格流年"), ""}
	for _, row := range rows {
		line := fmt.Sprintf("%-6s ‹ %s ›", row.label, row.value)
		if row.field == a.form.focus {
			lines = append(lines, a.styles.Focused.Render("▸ "+line))
		} else {
			lines = append(lines, a.styles.Body.Render("  "+line))
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (a *App) renderReport() string {
	if a.result == nil {
		return ""
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		a.renderPillars(a.result.User.Bazi),
		a.styles.Subtitle.Render(fmt.Sprintf("生肖属%s · 日主%s%s · 流年值神【%s】",
			a.result.User.Zodiac, a.result.User.DayMaster, a.result.User.DayMaster.Element(), a.result.Label)),
		a.viewport.View(),
	)
}

// renderPillars draws the four pillar cards: hour, day, month, year.
func (a *App) renderPillars(p bazi.Profile) string {
	cards := make([]string, 0, 4)
	for _, slot := range p.Slots() {
		style := a.styles.Card
		caption := slot.Label + "柱"
		if slot.Label == "日" {
			style = a.styles.Master
			caption += " · 日主"
		}
		var content string
		if slot.Pillar == nil {
			content = lipgloss.JoinVertical(lipgloss.Center, caption, "待考", "待考")
		} else {
			st, br := slot.Pillar.Stem, slot.Pillar.Branch
			content = lipgloss.JoinVertical(lipgloss.Center,
				caption,
				fmt.Sprintf("%s %s %s", st.Icon(), st, st.Element()),
				fmt.Sprintf("%s %s %s", br.Icon(), br, br.Element()),
			)
		}
		cards = append(cards, style.Render(content))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}

func (a *App) stepKeys() stepHelp {
	k := a.keys
	var bindings []key.Binding
	switch a.step {
	case workflow.StepWelcome:
		bindings = []key.Binding{k.Enter}
	case workflow.StepZodiacSelection:
		bindings = []key.Binding{k.Up, k.Down, k.Enter, k.Back}
	case workflow.StepZodiacInsight:
		bindings = []key.Binding{k.Enter, k.Reselect, k.Back}
	case workflow.StepDayMasterCalculation:
		bindings = []key.Binding{k.Up, k.Down, k.Left, k.Right, k.Enter, k.Back}
	case workflow.StepFinalReport:
		bindings = []key.Binding{k.Up, k.Down, k.Copy, k.Reset}
	}
	return append(stepHelp(bindings), k.Theme, k.Quit)
}

func themeLabel(p Palette) string {
	if p.IsDark {
		return "玄夜"
	}
	return "素笺"
}
