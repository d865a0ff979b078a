package relation

import (
	"fmt"

	"github.com/kingrea/yidao/internal/bazi"
)

// Category is the unqualified relation between a source and target element.
type Category int

const (
	Peer Category = iota
	Expression
	Wealth
	Authority
	Resource
)

var categoryNames = [...]string{"比劫", "食伤", "财星", "官杀", "印星"}

func (c Category) String() string {
	if c < Peer || c > Resource {
		return fmt.Sprintf("Category(%d)", int(c))
	}
	return categoryNames[c]
}

// Label is one of the Ten Gods: a Category qualified by polarity.
type Label int

const (
	Companion Label = iota // 比肩
	RobWealth              // 劫财
	EatingGod              // 食神
	HurtingOfficer         // 伤官
	IndirectWealth         // 偏财
	DirectWealth           // 正财
	SevenKillings          // 七杀
	DirectOfficer          // 正官
	IndirectResource       // 偏印
	DirectResource         // 正印
)

// LabelCount is the number of Ten Gods labels.
const LabelCount = 10

var labelNames = [LabelCount]string{"比肩", "劫财", "食神", "伤官", "偏财", "正财", "七杀", "正官", "偏印", "正印"}

// Labels lists the ten labels, same-polarity label of each category first.
func Labels() []Label {
	out := make([]Label, LabelCount)
	for i := range out {
		out[i] = Label(i)
	}
	return out
}

func (l Label) Valid() bool { return l >= Companion && l <= DirectResource }

func (l Label) String() string {
	if !l.Valid() {
		return fmt.Sprintf("Label(%d)", int(l))
	}
	return labelNames[l]
}

// Category returns the unqualified category of the label.
func (l Label) Category() Category { return Category(l / 2) }

// SamePolarity reports whether the label is the same-polarity half of its pair.
func (l Label) SamePolarity() bool { return l%2 == 0 }

func (l Label) MarshalText() ([]byte, error) {
	if !l.Valid() {
		return nil, fmt.Errorf("relation: invalid label %d", int(l))
	}
	return []byte(labelNames[l]), nil
}

func (l *Label) UnmarshalText(text []byte) error {
	parsed, err := ParseLabel(string(text))
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}

// ParseLabel resolves a name such as "七杀".
func ParseLabel(s string) (Label, error) {
	for i, name := range labelNames {
		if name == s {
			return Label(i), nil
		}
	}
	return 0, fmt.Errorf("relation: unknown label %q", s)
}

// categoryTable[source][target]; rows and columns follow bazi element order
// (木 火 土 金 水).
var categoryTable = [bazi.ElementCount][bazi.ElementCount]Category{
	bazi.Wood:  {Peer, Expression, Wealth, Authority, Resource},
	bazi.Fire:  {Resource, Peer, Expression, Wealth, Authority},
	bazi.Earth: {Authority, Resource, Peer, Expression, Wealth},
	bazi.Metal: {Wealth, Authority, Resource, Peer, Expression},
	bazi.Water: {Expression, Wealth, Authority, Resource, Peer},
}

// CategoryOf returns the relation of target as seen from source. It panics on
// an element outside the five declared values.
func CategoryOf(source, target bazi.Element) Category {
	if !source.Valid() || !target.Valid() {
		panic(fmt.Sprintf("relation: element out of range: %d -> %d", int(source), int(target)))
	}
	return categoryTable[source][target]
}

// Classify returns the Ten Gods label of a target stem (element, polarity)
// as seen from a source stem. Same polarity selects 比肩 食神 偏财 七杀 偏印;
// differing polarity selects 劫财 伤官 正财 正官 正印.
func Classify(srcElement bazi.Element, srcPolarity bazi.Polarity, dstElement bazi.Element, dstPolarity bazi.Polarity) Label {
	if !srcPolarity.Valid() || !dstPolarity.Valid() {
		panic(fmt.Sprintf("relation: polarity out of range: %d, %d", int(srcPolarity), int(dstPolarity)))
	}
	label := Label(CategoryOf(srcElement, dstElement) * 2)
	if srcPolarity != dstPolarity {
		label++
	}
	return label
}

// ClassifyStems is Classify for two stems, e.g. a day master against the
// focus year's stem.
func ClassifyStems(source, target bazi.Stem) Label {
	return Classify(source.Element(), source.Polarity(), target.Element(), target.Polarity())
}
