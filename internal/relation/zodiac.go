// Package relation resolves the symbolic relations used by a reading: the
// animal a calendar year belongs to, and the Ten Gods label between two stems.
package relation

import "github.com/kingrea/yidao/internal/bazi"

// zodiacAnchorYear is a rat year; (year - 4) mod 12 indexes the animal cycle.
const zodiacAnchorYear = 4

// ZodiacCheck is the outcome of comparing a claimed animal with the year.
type ZodiacCheck struct {
	Matches  bool
	Expected bazi.Zodiac
}

// ZodiacForYear returns the animal of a calendar year. It uses the plain
// calendar year, not the spring-adjusted one.
func ZodiacForYear(year int) bazi.Zodiac {
	return bazi.ZodiacAt(year - zodiacAnchorYear)
}

// ValidateZodiacForYear reports whether claimed is the animal of year. The
// expected animal is always filled in so callers can show a correction.
func ValidateZodiacForYear(year int, claimed bazi.Zodiac) ZodiacCheck {
	expected := ZodiacForYear(year)
	return ZodiacCheck{
		Matches:  expected == claimed,
		Expected: expected,
	}
}
