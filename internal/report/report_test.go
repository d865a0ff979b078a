package report

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kingrea/yidao/internal/almanac"
	"github.com/kingrea/yidao/internal/bazi"
	"github.com/kingrea/yidao/internal/relation"
)

var sections = []string{
	"【天时 · 离火大势】",
	"【流年 · 十神运程】",
	"【地利 · 生肖玄机】",
	"【人和 · 修持锦囊】",
	"【易道智慧：知命顺时，安身立命。】",
}

func TestBuildContainsEverySectionInOrder(t *testing.T) {
	out, err := Build(Input{Zodiac: bazi.Horse, DayMaster: bazi.StemXin})
	require.NoError(t, err)
	last := -1
	for _, s := range sections {
		idx := strings.Index(out, s)
		require.GreaterOrEqual(t, idx, 0, "missing %s", s)
		assert.Greater(t, idx, last, "section %s out of order", s)
		last = idx
	}
}

func TestBuildNamesLabelAgainstBing(t *testing.T) {
	cases := []struct {
		dm    bazi.Stem
		label relation.Label
	}{
		{bazi.StemBing, relation.Companion},
		{bazi.StemDing, relation.RobWealth},
		{bazi.StemJia, relation.EatingGod},
		{bazi.StemXin, relation.DirectOfficer},
		{bazi.StemRen, relation.IndirectWealth},
		{bazi.StemJi, relation.DirectResource},
	}
	for _, tc := range cases {
		t.Run(tc.dm.String(), func(t *testing.T) {
			out, err := Build(Input{Zodiac: bazi.Rat, DayMaster: tc.dm})
			require.NoError(t, err)
			assert.Contains(t, out, "本年值神为【"+tc.label.String()+"】")
			assert.Contains(t, out, almanac.TenGodAdvice(tc.label))
		})
	}
}

func TestBuildUsesZodiacAndDayMasterContent(t *testing.T) {
	out, err := Build(Input{Zodiac: bazi.Goat, DayMaster: bazi.StemWu})
	require.NoError(t, err)
	assert.Contains(t, out, "命主日元为【戊土】")
	assert.Contains(t, out, "生肖属羊，逢马年：")
	assert.Contains(t, out, almanac.ZodiacSecret(bazi.Goat))
	assert.Contains(t, out, almanac.Zodiac(bazi.Goat).Description)
	assert.Contains(t, out, almanac.Outlook(bazi.Earth).Title)
	assert.Contains(t, out, "易道心法：**"+almanac.DayMaster(bazi.StemWu).Cultivation+"**")
	assert.Contains(t, out, almanac.DayMaster(bazi.StemWu).Strategy)
}

func TestBuildRejectsOutOfRangeInput(t *testing.T) {
	_, err := Build(Input{Zodiac: bazi.Zodiac(40), DayMaster: bazi.StemJia})
	assert.Error(t, err)
	_, err = Build(Input{Zodiac: bazi.Rat, DayMaster: bazi.Stem(-1)})
	assert.Error(t, err)
}

func TestShareTextWrapsReport(t *testing.T) {
	got := ShareText("  body\n")
	assert.Equal(t, ShareHeader+"\n\nbody\n\n"+ShareFooter, got)
}

func TestRendererFallsBackToRaw(t *testing.T) {
	var r *Renderer
	assert.Equal(t, "**x**", r.Render("**x**"))

	r = NewRenderer("unknown", 0)
	assert.Equal(t, StyleDark, r.Style())
	assert.Equal(t, DefaultWordWrap, r.Wrap())
	assert.Equal(t, "", r.Render(""))
}

func TestRendererDrawsText(t *testing.T) {
	r := NewRenderer(StyleLight, 60)
	out := r.Render("**【天时 · 离火大势】**")
	assert.Contains(t, out, "天时")
	assert.Equal(t, StyleDark, r.WithStyle(StyleDark).Style())
	assert.Equal(t, 40, r.WithWrap(40).Wrap())
}
