package bazi

import "fmt"

// Branch is one of the twelve earthly branches.
type Branch int

const (
	BranchZi Branch = iota
	BranchChou
	BranchYin
	BranchMao
	BranchChen
	BranchSi
	BranchWu
	BranchWei
	BranchShen
	BranchYou
	BranchXu
	BranchHai
)

// BranchCount is the size of the Branch cycle.
const BranchCount = 12

type branchInfo struct {
	glyph   string
	element Element
	zodiac  Zodiac
	icon    string
}

var branchTable = [BranchCount]branchInfo{
	{"子", Water, Rat, "🐭"},
	{"丑", Earth, Ox, "🐮"},
	{"寅", Wood, Tiger, "🐯"},
	{"卯", Wood, Rabbit, "🐰"},
	{"辰", Earth, Dragon, "🐲"},
	{"巳", Fire, Snake, "🐍"},
	{"午", Fire, Horse, "🐴"},
	{"未", Earth, Goat, "🐑"},
	{"申", Metal, Monkey, "🐒"},
	{"酉", Metal, Rooster, "🐔"},
	{"戌", Earth, Dog, "🐶"},
	{"亥", Water, Pig, "🐷"},
}

// Branches lists the twelve branches in cycle order.
func Branches() []Branch {
	out := make([]Branch, BranchCount)
	for i := range out {
		out[i] = Branch(i)
	}
	return out
}

// BranchAt returns the branch at cycle position i, normalized into [0, 12).
func BranchAt(i int) Branch {
	return Branch(mod(i, BranchCount))
}

func (b Branch) Valid() bool { return b >= BranchZi && b <= BranchHai }

func (b Branch) String() string {
	if !b.Valid() {
		return fmt.Sprintf("Branch(%d)", int(b))
	}
	return branchTable[b].glyph
}

func (b Branch) Element() Element { return branchTable[b].element }

// Zodiac returns the animal associated with the branch.
func (b Branch) Zodiac() Zodiac { return branchTable[b].zodiac }

func (b Branch) Icon() string { return branchTable[b].icon }

func (b Branch) MarshalText() ([]byte, error) {
	if !b.Valid() {
		return nil, fmt.Errorf("bazi: invalid branch %d", int(b))
	}
	return []byte(branchTable[b].glyph), nil
}

func (b *Branch) UnmarshalText(text []byte) error {
	parsed, err := ParseBranch(string(text))
	if err != nil {
		return err
	}
	*b = parsed
	return nil
}

// ParseBranch resolves a glyph such as "午" to its Branch.
func ParseBranch(glyph string) (Branch, error) {
	for i := range branchTable {
		if branchTable[i].glyph == glyph {
			return Branch(i), nil
		}
	}
	return 0, fmt.Errorf("bazi: unknown branch %q", glyph)
}
