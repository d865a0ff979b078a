package bazi

import "fmt"

// Element is one of the five phases, declared in generative order
// (wood feeds fire, fire makes earth, earth bears metal, metal carries water,
// water nourishes wood).
type Element int

const (
	Wood Element = iota
	Fire
	Earth
	Metal
	Water
)

// ElementCount is the size of the Element enumeration.
const ElementCount = 5

var elementGlyphs = [ElementCount]string{"木", "火", "土", "金", "水"}

// Elements lists every element in generative order.
func Elements() []Element {
	return []Element{Wood, Fire, Earth, Metal, Water}
}

// Valid reports whether e is one of the five declared elements.
func (e Element) Valid() bool {
	return e >= Wood && e <= Water
}

// String returns the Chinese glyph for the element.
func (e Element) String() string {
	if !e.Valid() {
		return fmt.Sprintf("Element(%d)", int(e))
	}
	return elementGlyphs[e]
}

// ParseElement resolves a glyph such as "火" to its Element.
func ParseElement(s string) (Element, error) {
	for i, g := range elementGlyphs {
		if g == s {
			return Element(i), nil
		}
	}
	return 0, fmt.Errorf("bazi: unknown element %q", s)
}

// Polarity is the yin/yang quality of a stem.
type Polarity int

const (
	Yang Polarity = 1
	Yin  Polarity = -1
)

// Valid reports whether p is Yang or Yin.
func (p Polarity) Valid() bool {
	return p == Yang || p == Yin
}

func (p Polarity) String() string {
	switch p {
	case Yang:
		return "阳"
	case Yin:
		return "阴"
	default:
		return fmt.Sprintf("Polarity(%d)", int(p))
	}
}
