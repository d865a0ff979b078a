package reading

import (
	"errors"
	"fmt"

	"github.com/kingrea/yidao/internal/bazi"
)

// Kind classifies a failed consultation.
type Kind string

const (
	KindMissingBracket Kind = "missing_bracket"
	KindInvalidDate    Kind = "invalid_date"
	KindZodiacMismatch Kind = "zodiac_mismatch"
	KindStorage        Kind = "storage"
)

// Error is returned by Service operations. A zodiac mismatch is a
// correction: Expected names the animal of the given year.
type Error struct {
	Op       string
	Kind     Kind
	Year     int
	Zodiac   bazi.Zodiac
	Expected bazi.Zodiac
	Err      error
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	base := fmt.Sprintf("%s: %s", e.Op, e.Kind)
	if e.Kind == KindZodiacMismatch {
		base += fmt.Sprintf(" (claimed=%s expected=%s year=%d)", e.Zodiac.Name(), e.Expected.Name(), e.Year)
	}
	if e.Err != nil {
		base += fmt.Sprintf(": %v", e.Err)
	}
	return base
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// UserMessage is the text shown to the user for this error.
func (e *Error) UserMessage() string {
	if e == nil {
		return ""
	}
	switch e.Kind {
	case KindMissingBracket:
		return "【易理警示】：尚未择定出生时辰。若时辰不明，请务必择【时辰不详】。"
	case KindInvalidDate:
		return "【日期有误】：公历并无此日，请重新择定年月日。"
	case KindZodiacMismatch:
		return fmt.Sprintf("【干支不合】：阁下自述属【%s】，然公历【%d年】实为【%s】年。推演大运需干支严丝合缝，请核实年份。",
			e.Zodiac, e.Year, e.Expected)
	default:
		return "【天机阻滞】：推演过程中气场波动异常，请稍后重新叩门。"
	}
}

// IsKind reports whether err is an *Error of the given kind.
func IsKind(err error, kind Kind) bool {
	var re *Error
	if errors.As(err, &re) {
		return re.Kind == kind
	}
	return false
}

// UserMessage returns the user-facing text for any error.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	var re *Error
	if errors.As(err, &re) {
		return re.UserMessage()
	}
	return (&Error{}).UserMessage()
}
