package bazi

import "fmt"

// Stem is one of the ten heavenly stems.
type Stem int

const (
	StemJia Stem = iota
	StemYi
	StemBing
	StemDing
	StemWu
	StemJi
	StemGeng
	StemXin
	StemRen
	StemGui
)

// StemCount is the size of the Stem cycle.
const StemCount = 10

type stemInfo struct {
	glyph    string
	element  Element
	polarity Polarity
	icon     string
}

var stemTable = [StemCount]stemInfo{
	{"甲", Wood, Yang, "🌳"},
	{"乙", Wood, Yin, "🌿"},
	{"丙", Fire, Yang, "🔥"},
	{"丁", Fire, Yin, "🕯️"},
	{"戊", Earth, Yang, "⛰️"},
	{"己", Earth, Yin, "🌾"},
	{"庚", Metal, Yang, "⚔️"},
	{"辛", Metal, Yin, "💎"},
	{"壬", Water, Yang, "🌊"},
	{"癸", Water, Yin, "💧"},
}

// Stems lists the ten stems in cycle order.
func Stems() []Stem {
	out := make([]Stem, StemCount)
	for i := range out {
		out[i] = Stem(i)
	}
	return out
}

// StemAt returns the stem at cycle position i, normalized into [0, 10).
func StemAt(i int) Stem {
	return Stem(mod(i, StemCount))
}

func (s Stem) Valid() bool { return s >= StemJia && s <= StemGui }

func (s Stem) String() string {
	if !s.Valid() {
		return fmt.Sprintf("Stem(%d)", int(s))
	}
	return stemTable[s].glyph
}

// Element returns the stem's phase.
func (s Stem) Element() Element { return stemTable[s].element }

// Polarity returns the stem's yin/yang quality.
func (s Stem) Polarity() Polarity { return stemTable[s].polarity }

// Icon returns the decorative glyph shown next to the stem.
func (s Stem) Icon() string { return stemTable[s].icon }

// MarshalText encodes the stem as its glyph.
func (s Stem) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("bazi: invalid stem %d", int(s))
	}
	return []byte(stemTable[s].glyph), nil
}

// UnmarshalText decodes a glyph such as "甲".
func (s *Stem) UnmarshalText(text []byte) error {
	parsed, err := ParseStem(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// ParseStem resolves a glyph such as "丙" to its Stem.
func ParseStem(glyph string) (Stem, error) {
	for i := range stemTable {
		if stemTable[i].glyph == glyph {
			return Stem(i), nil
		}
	}
	return 0, fmt.Errorf("bazi: unknown stem %q", glyph)
}
