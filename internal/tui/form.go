package tui

import (
	"github.com/kingrea/yidao/internal/almanac"
	"github.com/kingrea/yidao/internal/bazi"
	"github.com/kingrea/yidao/internal/reading"
)

const (
	yearSpan    = 100
	defaultYear = 1990
)

type formField int

const (
	fieldYear formField = iota
	fieldMonth
	fieldDay
	fieldBracket
	fieldCount
)

// bracketChoices is every option of the time selector after "unset":
// the twelve brackets followed by "unknown".
var bracketChoices = append(bazi.Brackets(), bazi.BracketUnknown)

// birthForm is the year/month/day/bracket selector. The offered years run
// from the focus year back a century.
type birthForm struct {
	focus   formField
	year    int
	month   int
	day     int
	bracket int // index into bracketChoices, -1 when unset
}

func newBirthForm() birthForm {
	return birthForm{year: defaultYear, month: 1, day: 1, bracket: -1}
}

// formFor seeds the selector with a saved birth date and bracket. Dates
// outside the offered years leave the defaults in place.
func formFor(date bazi.Date, bracket bazi.TimeBracket) birthForm {
	f := newBirthForm()
	if !date.Valid() || date.Year < f.minYear() || date.Year > f.maxYear() {
		return f
	}
	f.year, f.month, f.day = date.Year, date.Month, date.Day
	for i, choice := range bracketChoices {
		if choice == bracket {
			f.bracket = i
			break
		}
	}
	return f
}

func (f birthForm) minYear() int { return almanac.FocusYear - yearSpan + 1 }
func (f birthForm) maxYear() int { return almanac.FocusYear }

func (f *birthForm) focusNext() { f.focus = (f.focus + 1) % fieldCount }
func (f *birthForm) focusPrev() { f.focus = (f.focus + fieldCount - 1) % fieldCount }

// shift moves the focused field by delta, wrapping within its range.
func (f *birthForm) shift(delta int) {
	switch f.focus {
	case fieldYear:
		f.year = wrap(f.year+delta, f.minYear(), f.maxYear())
	case fieldMonth:
		f.month = wrap(f.month+delta, 1, 12)
	case fieldDay:
		f.day = wrap(f.day+delta, 1, f.maxDay())
	case fieldBracket:
		if f.bracket < 0 {
			if delta > 0 {
				f.bracket = 0
			} else {
				f.bracket = len(bracketChoices) - 1
			}
			return
		}
		f.bracket = wrap(f.bracket+delta, 0, len(bracketChoices)-1)
	}
	f.clampDay()
}

func (f birthForm) maxDay() int {
	return bazi.DaysInMonth(f.year, f.month)
}

func (f *birthForm) clampDay() {
	if limit := f.maxDay(); f.day > limit {
		f.day = limit
	}
	if f.day < 1 {
		f.day = 1
	}
}

func (f birthForm) date() bazi.Date {
	return bazi.NewDate(f.year, f.month, f.day)
}

func (f birthForm) selectedBracket() (bazi.TimeBracket, bool) {
	if f.bracket < 0 {
		return bazi.BracketUnknown, false
	}
	return bracketChoices[f.bracket], true
}

func (f birthForm) bracketLabel() string {
	b, ok := f.selectedBracket()
	if !ok {
		return "-- 请择定准确生时 --"
	}
	return b.Label()
}

func (f birthForm) request(z bazi.Zodiac) reading.Request {
	b, ok := f.selectedBracket()
	return reading.Request{Zodiac: z, Date: f.date(), Bracket: b, BracketSet: ok}
}

func wrap(v, lo, hi int) int {
	span := hi - lo + 1
	return lo + ((v-lo)%span+span)%span
}
