package bazi

import (
	"fmt"
	"strings"
)

// TimeBracket is one of the twelve traditional two-hour periods, or
// BracketUnknown when the birth hour is not known.
type TimeBracket int

// BracketUnknown means "hour not known"; Compute then omits the hour pillar.
const BracketUnknown TimeBracket = -1

// BracketCount is the number of concrete brackets.
const BracketCount = 12

const unknownCode = "UNKNOWN"

var bracketRanges = [BracketCount]string{
	"23:00 - 01:00", "01:00 - 03:00", "03:00 - 05:00", "05:00 - 07:00",
	"07:00 - 09:00", "09:00 - 11:00", "11:00 - 13:00", "13:00 - 15:00",
	"15:00 - 17:00", "17:00 - 19:00", "19:00 - 21:00", "21:00 - 23:00",
}

// Brackets lists the twelve concrete brackets, 子时 first.
func Brackets() []TimeBracket {
	out := make([]TimeBracket, BracketCount)
	for i := range out {
		out[i] = TimeBracket(i)
	}
	return out
}

// Known reports whether b is one of the twelve concrete brackets.
func (b TimeBracket) Known() bool {
	return b >= 0 && b < BracketCount
}

// Hour is the representative clock hour of the bracket (0, 2, ... 22).
// It is -1 for BracketUnknown.
func (b TimeBracket) Hour() int {
	if !b.Known() {
		return -1
	}
	return int(b) * 2
}

// Code is the form value of the bracket: "00:00".."22:00" or "UNKNOWN".
func (b TimeBracket) Code() string {
	if !b.Known() {
		return unknownCode
	}
	return fmt.Sprintf("%02d:00", b.Hour())
}

// Label is the display text, e.g. "子时 (23:00 - 01:00)".
func (b TimeBracket) Label() string {
	if !b.Known() {
		return "不确定具体时辰（仅推算三柱）"
	}
	return fmt.Sprintf("%s时 (%s)", Branch(b), bracketRanges[b])
}

func (b TimeBracket) String() string { return b.Code() }

func (b TimeBracket) MarshalText() ([]byte, error) {
	return []byte(b.Code()), nil
}

func (b *TimeBracket) UnmarshalText(text []byte) error {
	parsed, err := ParseTimeBracket(string(text))
	if err != nil {
		return err
	}
	*b = parsed
	return nil
}

// ParseTimeBracket accepts a bracket code ("00:00".."22:00", even hours only)
// or "UNKNOWN" in any case.
func ParseTimeBracket(code string) (TimeBracket, error) {
	code = strings.TrimSpace(code)
	if strings.EqualFold(code, unknownCode) {
		return BracketUnknown, nil
	}
	for _, b := range Brackets() {
		if b.Code() == code {
			return b, nil
		}
	}
	return BracketUnknown, fmt.Errorf("bazi: unknown time bracket %q", code)
}
