package bazi

import "math"

const (
	// yearEpoch is the reference year of the year cycle; 1900 is 庚子.
	yearEpoch = 1900
	// yearStemOffset places 1900 at 庚 (index 6) in the stem cycle.
	yearStemOffset = 6

	// springCutoffMonth and springCutoffDay approximate 立春 with a fixed date.
	springCutoffMonth = 2
	springCutoffDay   = 4

	// dayEpochJD is the Julian Day of 2000-01-01 12:00 (J2000.0).
	dayEpochJD = 2451545.0
	// dayBranchOffset aligns the day branch cycle with the epoch.
	dayBranchOffset = 10
)

// Compute derives the four pillars for the date. The hour pillar is present
// only when bracket is one of the twelve concrete brackets.
func Compute(date Date, bracket TimeBracket) Profile {
	year := yearPillar(EffectiveYear(date))
	profile := Profile{
		Year:  year,
		Month: monthPillar(year.Stem, date.Month),
		Day:   dayPillar(date),
	}
	if bracket.Known() {
		hour := hourPillar(profile.Day.Stem, bracket.Hour())
		profile.Hour = &hour
	}
	return profile
}

// EffectiveYear is the year used for the year pillar: dates before the fixed
// February 4th cutoff belong to the previous year.
func EffectiveYear(date Date) int {
	if date.Month < springCutoffMonth || (date.Month == springCutoffMonth && date.Day < springCutoffDay) {
		return date.Year - 1
	}
	return date.Year
}

func yearPillar(effectiveYear int) Pillar {
	offset := effectiveYear - yearEpoch
	return Pillar{
		Stem:   StemAt(yearStemOffset + offset),
		Branch: BranchAt(offset),
	}
}

// monthPillar uses the calendar month directly; month 1 maps to 寅.
func monthPillar(yearStem Stem, month int) Pillar {
	base := mod(int(yearStem), 5)*2 + 2
	return Pillar{
		Stem:   StemAt(base + month - 1),
		Branch: BranchAt(month + 1),
	}
}

func dayPillar(date Date) Pillar {
	diff := int(math.Floor(JulianDay(date) - dayEpochJD))
	return Pillar{
		Stem:   StemAt(diff),
		Branch: BranchAt(diff + dayBranchOffset),
	}
}

func hourPillar(dayStem Stem, hour int) Pillar {
	branch := BranchAt(floorDiv(hour+1, 2))
	return Pillar{
		Stem:   StemAt(mod(int(dayStem), 5)*2 + int(branch)),
		Branch: branch,
	}
}

// JulianDay returns the astronomical Julian Day at 00:00 of the date, so the
// result always ends in .5. January and February count as months 13 and 14
// of the previous year for the century correction.
func JulianDay(date Date) float64 {
	y, m := date.Year, date.Month
	if m <= 2 {
		y--
		m += 12
	}
	a := floorDiv(y, 100)
	b := 2 - a + floorDiv(a, 4)
	return math.Floor(365.25*float64(y+4716)) +
		math.Floor(30.6001*float64(m+1)) +
		float64(date.Day+b) - 1524.5
}

// mod returns n modulo base in [0, base).
func mod(n, base int) int {
	r := n % base
	if r < 0 {
		r += base
	}
	return r
}

func floorDiv(n, d int) int {
	q := n / d
	if (n%d != 0) && ((n < 0) != (d < 0)) {
		q--
	}
	return q
}
