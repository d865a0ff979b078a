// Package almanac holds the read-only text tables a reading is assembled
// from: the focus year, the ten day-master profiles, the twelve zodiac cards
// and the per-element and per-label commentary for 丙午.
package almanac

import (
	"slices"

	"github.com/kingrea/yidao/internal/bazi"
)

const (
	// FocusYear is the year every reading is written for.
	FocusYear = 2026
	// FocusYearName is the stem-branch name of FocusYear.
	FocusYearName = "丙午"
	// FocusYearTitle is the banner shown in headers.
	FocusYearTitle = "2026 丙午 · 赤马年"
	// ReferenceStem is the focus year's heavenly stem; day masters are
	// classified against it.
	ReferenceStem = bazi.StemBing
)

// DayMasterProfile describes one day-master stem.
type DayMasterProfile struct {
	Stem        bazi.Stem
	Keywords    string
	Nature      string
	Cultivation string
	RiskTip     string
	Strategy    string
}

// ZodiacCard is the short outlook shown when an animal is picked.
type ZodiacCard struct {
	Zodiac      bazi.Zodiac
	Title       string
	Rating      int // 1 to 5
	Tags        []string
	Description string
}

// ElementOutlook is the focus year's stance toward a day-master element.
type ElementOutlook struct {
	Title       string
	Description string
}

// DayMaster returns the profile of a stem.
func DayMaster(s bazi.Stem) DayMasterProfile {
	return dayMasters[s]
}

// Zodiac returns the card of an animal. The card is a copy; editing its tags
// does not touch the table.
func Zodiac(z bazi.Zodiac) ZodiacCard {
	card := zodiacCards[z]
	card.Tags = slices.Clone(card.Tags)
	return card
}

// ZodiacCards returns all twelve cards in cycle order.
func ZodiacCards() []ZodiacCard {
	out := make([]ZodiacCard, len(zodiacCards))
	for i := range zodiacCards {
		out[i] = Zodiac(bazi.Zodiac(i))
	}
	return out
}

// ZodiacSecret returns the focus-year note for an animal.
func ZodiacSecret(z bazi.Zodiac) string {
	return zodiacSecrets[z]
}

// Outlook returns the focus year's commentary for an element.
func Outlook(e bazi.Element) ElementOutlook {
	return elementOutlooks[e]
}

// Icon is the animal's emoji.
func (c ZodiacCard) Icon() string {
	return c.Zodiac.Branch().Icon()
}
