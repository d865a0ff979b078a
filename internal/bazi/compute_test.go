package bazi

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustBracket(t *testing.T, code string) TimeBracket {
	t.Helper()
	b, err := ParseTimeBracket(code)
	require.NoError(t, err)
	return b
}

func TestComputeGoldenFixtures(t *testing.T) {
	tests := []struct {
		name    string
		date    Date
		bracket string
		want    string
	}{
		{"new year 1990 at 子时", NewDate(1990, 1, 1), "00:00", "己巳 丙寅 辛巳 戊子"},
		{"day before cutoff", NewDate(2000, 2, 3), "UNKNOWN", "己卯 丁卯 丙午"},
		{"cutoff day", NewDate(2000, 2, 4), "UNKNOWN", "庚辰 己卯 丁未"},
		{"epoch day", NewDate(2000, 1, 1), "UNKNOWN", "己卯 丙寅 癸酉"},
		{"before 1900", NewDate(1850, 6, 15), "12:00", "庚戌 癸未 壬子 丙午"},
		{"last day of 1899", NewDate(1899, 12, 31), "06:00", "己亥 丁丑 戊子 乙卯"},
		{"focus year spring", NewDate(2026, 2, 4), "22:00", "丙午 辛卯 甲子 乙亥"},
		{"jiazi year", NewDate(1984, 2, 4), "10:00", "甲子 丁卯 癸未 丁巳"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Compute(tt.date, mustBracket(t, tt.bracket))
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestComputeGoldenProfileFields(t *testing.T) {
	got := Compute(NewDate(1990, 1, 1), mustBracket(t, "00:00"))
	want := Profile{
		Year:  Pillar{Stem: StemJi, Branch: BranchSi},
		Month: Pillar{Stem: StemBing, Branch: BranchYin},
		Day:   Pillar{Stem: StemXin, Branch: BranchSi},
		Hour:  &Pillar{Stem: StemWu, Branch: BranchZi},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("profile mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, StemXin, got.DayMaster())
	assert.Equal(t, 1989, EffectiveYear(NewDate(1990, 1, 1)))
}

func TestComputeIsIdempotent(t *testing.T) {
	date := NewDate(1975, 8, 23)
	for _, b := range append(Brackets(), BracketUnknown) {
		first := Compute(date, b)
		second := Compute(date, b)
		if diff := cmp.Diff(first, second); diff != "" {
			t.Fatalf("bracket %s: repeated compute differs:\n%s", b, diff)
		}
	}
}

func TestHourPillarPresence(t *testing.T) {
	date := NewDate(1990, 5, 17)
	assert.Nil(t, Compute(date, BracketUnknown).Hour)
	assert.False(t, Compute(date, BracketUnknown).HasHour())
	for _, b := range Brackets() {
		p := Compute(date, b)
		require.NotNil(t, p.Hour, "bracket %s", b)
		assert.Equal(t, Branch(b), p.Hour.Branch, "bracket %s", b)
	}
}

func TestHourStemDerivesFromDayStem(t *testing.T) {
	for day := 1; day <= 10; day++ {
		p := Compute(NewDate(2010, 3, day), mustBracket(t, "00:00"))
		want := StemAt(int(p.Day.Stem) % 5 * 2)
		assert.Equal(t, want, p.Hour.Stem, "day %d", day)
	}
}

func TestSpringCutoffBoundary(t *testing.T) {
	for _, year := range []int{1850, 1900, 1990, 2026} {
		before := NewDate(year, 2, 3)
		on := NewDate(year, 2, 4)
		assert.Equal(t, year-1, EffectiveYear(before))
		assert.Equal(t, year, EffectiveYear(on))
		assert.NotEqual(t, Compute(before, BracketUnknown).Year, Compute(on, BracketUnknown).Year)
	}
	assert.Equal(t, 2025, EffectiveYear(NewDate(2026, 1, 31)))
	assert.Equal(t, 2026, EffectiveYear(NewDate(2026, 3, 1)))
}

func TestYearPillarCycles(t *testing.T) {
	base := NewDate(1990, 6, 1)
	p := Compute(base, BracketUnknown)
	for _, k := range []int{-3, -1, 1, 2, 5} {
		ten := Compute(NewDate(base.Year+10*k, 6, 1), BracketUnknown)
		assert.Equal(t, p.Year.Stem, ten.Year.Stem, "stem period 10, k=%d", k)
		twelve := Compute(NewDate(base.Year+12*k, 6, 1), BracketUnknown)
		assert.Equal(t, p.Year.Branch, twelve.Year.Branch, "branch period 12, k=%d", k)
		sixty := Compute(NewDate(base.Year+60*k, 6, 1), BracketUnknown)
		assert.Equal(t, p.Year, sixty.Year, "sexagenary period, k=%d", k)
	}
}

func TestMonthPillarUsesCalendarMonth(t *testing.T) {
	// January still maps to 寅 even though the year pillar rolls back.
	p := Compute(NewDate(2024, 1, 15), BracketUnknown)
	assert.Equal(t, BranchYin, p.Month.Branch)
	p = Compute(NewDate(2024, 11, 15), BracketUnknown)
	assert.Equal(t, BranchZi, p.Month.Branch)
	p = Compute(NewDate(2024, 12, 15), BracketUnknown)
	assert.Equal(t, BranchChou, p.Month.Branch)
}

func TestDayPillarAdvancesDaily(t *testing.T) {
	prev := Compute(NewDate(1899, 12, 31), BracketUnknown).Day
	for _, d := range []Date{NewDate(1900, 1, 1), NewDate(1900, 1, 2), NewDate(1900, 1, 3)} {
		cur := Compute(d, BracketUnknown).Day
		assert.Equal(t, StemAt(int(prev.Stem)+1), cur.Stem, "%s", d)
		assert.Equal(t, BranchAt(int(prev.Branch)+1), cur.Branch, "%s", d)
		prev = cur
	}
}

func TestJulianDay(t *testing.T) {
	assert.Equal(t, 2451544.5, JulianDay(NewDate(2000, 1, 1)))
	assert.Equal(t, 2447892.5, JulianDay(NewDate(1990, 1, 1)))
	assert.Equal(t, 2415019.5, JulianDay(NewDate(1899, 12, 31)))
	// 1900 is not a leap year: Feb 28 and Mar 1 are consecutive.
	assert.Equal(t, 1.0, JulianDay(NewDate(1900, 3, 1))-JulianDay(NewDate(1900, 2, 28)))
}

func TestModNormalizesNegatives(t *testing.T) {
	assert.Equal(t, 9, mod(-1, 10))
	assert.Equal(t, 0, mod(-12, 12))
	assert.Equal(t, 11, mod(-3673, 12))
	assert.Equal(t, 3, mod(13, 10))
	assert.Equal(t, -1, floorDiv(-1, 2))
	assert.Equal(t, 0, floorDiv(1, 2))
	assert.Equal(t, -20, floorDiv(-1901, 100))
}

func TestProfileEqual(t *testing.T) {
	date := NewDate(1990, 1, 1)
	withHour := Compute(date, mustBracket(t, "00:00"))
	assert.True(t, withHour.Equal(Compute(date, mustBracket(t, "00:00"))), "separate hour pointers, same pillars")
	assert.False(t, withHour.Equal(Compute(date, BracketUnknown)))
	assert.False(t, withHour.Equal(Compute(date, mustBracket(t, "02:00"))))
	assert.False(t, withHour.Equal(Compute(NewDate(1990, 1, 2), mustBracket(t, "00:00"))))
	assert.True(t, Compute(date, BracketUnknown).Equal(Compute(date, BracketUnknown)))
}
