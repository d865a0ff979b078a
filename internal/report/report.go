// Package report turns a computed reading into the Markdown report shown to
// the user and copied to the clipboard.
package report

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"github.com/kingrea/yidao/internal/almanac"
	"github.com/kingrea/yidao/internal/bazi"
	"github.com/kingrea/yidao/internal/relation"
)

const (
	// ShareHeader opens the copied text.
	ShareHeader = "【2026 丙午·赤马年】易道智慧修运报告"
	// ShareFooter closes the copied text.
	ShareFooter = "—— 知命顺时，安身立命。"
)

// Input is everything the report needs about one person.
type Input struct {
	Zodiac    bazi.Zodiac
	DayMaster bazi.Stem
}

// view is the template's data. It is derived from Input so the template
// never reaches into the almanac itself.
type view struct {
	Zodiac        string
	DayMaster     string
	Element       string
	Profile       almanac.DayMasterProfile
	Outlook       almanac.ElementOutlook
	Label         string
	Advice        string
	ZodiacSecret  string
	ZodiacSummary string
}

var reportTemplate = template.Must(template.New("report").Parse(`**【天时 · 离火大势】**
2026 丙午年，九紫离火运之鼎盛期。
命主日元为【{{.DayMaster}}{{.Element}}】，{{.Profile.Nature}}
流年遇丙午，成【{{.Outlook.Title}}】之局。
{{.Outlook.Description}}

**【流年 · 十神运程】**
本年值神为【{{.Label}}】。
{{.Advice}}
易理核心：{{.Profile.RiskTip}}

**【地利 · 生肖玄机】**
生肖属{{.Zodiac}}，逢马年：
{{.ZodiacSecret}}
{{.ZodiacSummary}}

**【人和 · 修持锦囊】**
易道心法：**{{.Profile.Cultivation}}**
{{.Profile.Strategy}}

**【易道智慧：知命顺时，安身立命。】**`))

// Build renders the report for in.
func Build(in Input) (string, error) {
	if !in.Zodiac.Valid() {
		return "", fmt.Errorf("report: invalid zodiac %d", int(in.Zodiac))
	}
	if !in.DayMaster.Valid() {
		return "", fmt.Errorf("report: invalid day master %d", int(in.DayMaster))
	}
	label := relation.ClassifyStems(in.DayMaster, almanac.ReferenceStem)
	v := view{
		Zodiac:        in.Zodiac.String(),
		DayMaster:     in.DayMaster.String(),
		Element:       in.DayMaster.Element().String(),
		Profile:       almanac.DayMaster(in.DayMaster),
		Outlook:       almanac.Outlook(in.DayMaster.Element()),
		Label:         label.String(),
		Advice:        almanac.TenGodAdvice(label),
		ZodiacSecret:  almanac.ZodiacSecret(in.Zodiac),
		ZodiacSummary: almanac.Zodiac(in.Zodiac).Description,
	}
	var buf bytes.Buffer
	if err := reportTemplate.Execute(&buf, v); err != nil {
		return "", fmt.Errorf("report: render: %w", err)
	}
	return buf.String(), nil
}

// ShareText wraps a report for pasting elsewhere.
func ShareText(report string) string {
	var b strings.Builder
	b.WriteString(ShareHeader)
	b.WriteString("\n\n")
	b.WriteString(strings.TrimSpace(report))
	b.WriteString("\n\n")
	b.WriteString(ShareFooter)
	return b.String()
}
