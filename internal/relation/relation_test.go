package relation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kingrea/yidao/internal/bazi"
)

func TestValidateZodiacForYear(t *testing.T) {
	check := ValidateZodiacForYear(1990, bazi.Horse)
	assert.True(t, check.Matches)
	assert.Equal(t, bazi.Horse, check.Expected)

	check = ValidateZodiacForYear(1990, bazi.Rat)
	assert.False(t, check.Matches)
	assert.Equal(t, bazi.Horse, check.Expected)

	assert.Equal(t, bazi.Rat, ZodiacForYear(1900))
	assert.Equal(t, bazi.Horse, ZodiacForYear(2026))
	assert.Equal(t, bazi.Rat, ZodiacForYear(4))
	assert.Equal(t, bazi.Pig, ZodiacForYear(3))
	assert.Equal(t, bazi.Dragon, ZodiacForYear(-4))
}

func TestZodiacCycleInvariance(t *testing.T) {
	for year := -30; year <= 2100; year += 7 {
		want := bazi.ZodiacAt(year - 4)
		assert.Equal(t, want, ZodiacForYear(year), "year %d", year)
		assert.Equal(t, ZodiacForYear(year), ZodiacForYear(year+12), "year %d", year)
		assert.Equal(t, ZodiacForYear(year), ZodiacForYear(year-120), "year %d", year)
	}
}

func TestZodiacAgreesWithYearBranch(t *testing.T) {
	for year := 1850; year <= 2050; year++ {
		p := bazi.Compute(bazi.NewDate(year, 6, 1), bazi.BracketUnknown)
		assert.Equal(t, p.Year.Branch.Zodiac(), ZodiacForYear(year), "year %d", year)
	}
}

func TestClassifyFireAgainstFire(t *testing.T) {
	assert.Equal(t, Companion, Classify(bazi.Fire, bazi.Yang, bazi.Fire, bazi.Yang))
	assert.Equal(t, "比肩", Classify(bazi.Fire, bazi.Yang, bazi.Fire, bazi.Yang).String())
	assert.Equal(t, RobWealth, Classify(bazi.Fire, bazi.Yin, bazi.Fire, bazi.Yang))
}

func TestClassifyAgainstBing(t *testing.T) {
	want := map[bazi.Stem]string{
		bazi.StemJia:  "食神",
		bazi.StemYi:   "伤官",
		bazi.StemBing: "比肩",
		bazi.StemDing: "劫财",
		bazi.StemWu:   "偏印",
		bazi.StemJi:   "正印",
		bazi.StemGeng: "七杀",
		bazi.StemXin:  "正官",
		bazi.StemRen:  "偏财",
		bazi.StemGui:  "正财",
	}
	for stem, label := range want {
		assert.Equal(t, label, ClassifyStems(stem, bazi.StemBing).String(), "day master %s", stem)
	}
}

func TestCategoryTableFollowsCycles(t *testing.T) {
	// Walking the generative cycle: +0 peer, +1 what I feed, +2 what I control,
	// +3 what controls me, +4 what feeds me.
	for _, src := range bazi.Elements() {
		for _, dst := range bazi.Elements() {
			delta := (int(dst) - int(src) + bazi.ElementCount) % bazi.ElementCount
			assert.Equal(t, Category(delta), CategoryOf(src, dst), "%s -> %s", src, dst)
		}
	}
}

func TestClassifyIsTotalOverClosedDomain(t *testing.T) {
	seen := map[Label]int{}
	polarities := []bazi.Polarity{bazi.Yang, bazi.Yin}
	for _, se := range bazi.Elements() {
		for _, sp := range polarities {
			for _, de := range bazi.Elements() {
				for _, dp := range polarities {
					l := Classify(se, sp, de, dp)
					require.True(t, l.Valid())
					assert.Equal(t, sp == dp, l.SamePolarity())
					assert.Equal(t, CategoryOf(se, de), l.Category())
					seen[l]++
				}
			}
		}
	}
	assert.Len(t, seen, LabelCount)
	for _, l := range Labels() {
		assert.Equal(t, 10, seen[l], "label %s", l)
	}
}

func TestClassifyPanicsOutsideDomain(t *testing.T) {
	assert.Panics(t, func() { CategoryOf(bazi.Element(7), bazi.Fire) })
	assert.Panics(t, func() { Classify(bazi.Fire, bazi.Polarity(0), bazi.Fire, bazi.Yang) })
}

func TestLabelText(t *testing.T) {
	for _, l := range Labels() {
		text, err := l.MarshalText()
		require.NoError(t, err)
		var back Label
		require.NoError(t, back.UnmarshalText(text))
		assert.Equal(t, l, back)
	}
	_, err := ParseLabel("比劫")
	assert.Error(t, err)
	assert.Equal(t, "官杀", SevenKillings.Category().String())
}
