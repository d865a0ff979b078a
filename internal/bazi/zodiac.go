package bazi

import "fmt"

// Zodiac is one of the twelve animals of the branch cycle.
type Zodiac int

const (
	Rat Zodiac = iota
	Ox
	Tiger
	Rabbit
	Dragon
	Snake
	Horse
	Goat
	Monkey
	Rooster
	Dog
	Pig
)

// ZodiacCount is the size of the animal cycle.
const ZodiacCount = 12

var zodiacGlyphs = [ZodiacCount]string{"鼠", "牛", "虎", "兔", "龙", "蛇", "马", "羊", "猴", "鸡", "狗", "猪"}

var zodiacNames = [ZodiacCount]string{
	"rat", "ox", "tiger", "rabbit", "dragon", "snake",
	"horse", "goat", "monkey", "rooster", "dog", "pig",
}

// Zodiacs lists the animals in cycle order, starting with the rat.
func Zodiacs() []Zodiac {
	out := make([]Zodiac, ZodiacCount)
	for i := range out {
		out[i] = Zodiac(i)
	}
	return out
}

// ZodiacAt returns the animal at cycle position i, normalized into [0, 12).
func ZodiacAt(i int) Zodiac {
	return Zodiac(mod(i, ZodiacCount))
}

func (z Zodiac) Valid() bool { return z >= Rat && z <= Pig }

func (z Zodiac) String() string {
	if !z.Valid() {
		return fmt.Sprintf("Zodiac(%d)", int(z))
	}
	return zodiacGlyphs[z]
}

// Name returns the lowercase English name, used for flags and logs.
func (z Zodiac) Name() string {
	if !z.Valid() {
		return ""
	}
	return zodiacNames[z]
}

// Branch returns the branch that carries this animal.
func (z Zodiac) Branch() Branch { return Branch(z) }

func (z Zodiac) MarshalText() ([]byte, error) {
	if !z.Valid() {
		return nil, fmt.Errorf("bazi: invalid zodiac %d", int(z))
	}
	return []byte(zodiacGlyphs[z]), nil
}

func (z *Zodiac) UnmarshalText(text []byte) error {
	parsed, err := ParseZodiac(string(text))
	if err != nil {
		return err
	}
	*z = parsed
	return nil
}

// ParseZodiac accepts either the glyph ("马") or the English name ("horse").
func ParseZodiac(s string) (Zodiac, error) {
	for i := range zodiacGlyphs {
		if zodiacGlyphs[i] == s || zodiacNames[i] == s {
			return Zodiac(i), nil
		}
	}
	return 0, fmt.Errorf("bazi: unknown zodiac %q", s)
}
