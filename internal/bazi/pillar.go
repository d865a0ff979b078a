package bazi

import "strings"

// Pillar is one stem/branch pair.
type Pillar struct {
	Stem   Stem   `json:"stem" yaml:"stem"`
	Branch Branch `json:"branch" yaml:"branch"`
}

func (p Pillar) String() string {
	return p.Stem.String() + p.Branch.String()
}

// Profile is a four-pillar chart. Hour is nil when the birth hour is unknown.
type Profile struct {
	Year  Pillar  `json:"year" yaml:"year"`
	Month Pillar  `json:"month" yaml:"month"`
	Day   Pillar  `json:"day" yaml:"day"`
	Hour  *Pillar `json:"hour,omitempty" yaml:"hour,omitempty"`
}

// DayMaster is the stem of the day pillar.
func (p Profile) DayMaster() Stem {
	return p.Day.Stem
}

// HasHour reports whether the hour pillar is present.
func (p Profile) HasHour() bool {
	return p.Hour != nil
}

// Equal reports whether both charts hold the same pillars.
func (p Profile) Equal(q Profile) bool {
	if p.Year != q.Year || p.Month != q.Month || p.Day != q.Day {
		return false
	}
	if p.Hour == nil || q.Hour == nil {
		return p.Hour == nil && q.Hour == nil
	}
	return *p.Hour == *q.Hour
}

// PillarSlot names a position in the chart.
type PillarSlot struct {
	Label  string // 时 日 月 年
	Pillar *Pillar
}

// Slots returns the chart in display order: hour, day, month, year.
func (p Profile) Slots() []PillarSlot {
	year, month, day := p.Year, p.Month, p.Day
	return []PillarSlot{
		{Label: "时", Pillar: p.Hour},
		{Label: "日", Pillar: &day},
		{Label: "月", Pillar: &month},
		{Label: "年", Pillar: &year},
	}
}

// String renders "year month day [hour]", e.g. "己巳 丙寅 辛巳 戊子".
func (p Profile) String() string {
	parts := []string{p.Year.String(), p.Month.String(), p.Day.String()}
	if p.Hour != nil {
		parts = append(parts, p.Hour.String())
	}
	return strings.Join(parts, " ")
}
