// internal/workflow/step.go
//
// The screens a reading walks through, in order. The terminal UI advances
// and rewinds along this sequence.

package workflow

// Step represents one screen of the reading flow
type Step int

const (
	StepWelcome Step = iota
	StepZodiacSelection
	StepZodiacInsight
	StepDayMasterCalculation
	StepFinalReport
)

// Steps returns every step in order.
func Steps() []Step {
	return []Step{
		StepWelcome,
		StepZodiacSelection,
		StepZodiacInsight,
		StepDayMasterCalculation,
		StepFinalReport,
	}
}

// String returns a stable identifier for the step
func (s Step) String() string {
	switch s {
	case StepWelcome:
		return "welcome"
	case StepZodiacSelection:
		return "zodiac-selection"
	case StepZodiacInsight:
		return "zodiac-insight"
	case StepDayMasterCalculation:
		return "day-master-calculation"
	case StepFinalReport:
		return "final-report"
	default:
		return "unknown"
	}
}

// FriendlyName returns the heading shown above the step
func (s Step) FriendlyName() string {
	switch s {
	case StepWelcome:
		return "丙午 · 赤马红羊劫"
	case StepZodiacSelection:
		return "请择出生生肖"
	case StepZodiacInsight:
		return "生肖流年"
	case StepDayMasterCalculation:
		return "排盘定日主"
	case StepFinalReport:
		return "易道修运报告"
	default:
		return s.String()
	}
}

// Valid reports whether s is a declared step.
func (s Step) Valid() bool {
	return s >= StepWelcome && s <= StepFinalReport
}

// Next returns the following step. The final step is sticky.
func (s Step) Next() Step {
	if s >= StepFinalReport {
		return StepFinalReport
	}
	if s < StepWelcome {
		return StepWelcome
	}
	return s + 1
}

// Prev returns the preceding step. Welcome is sticky.
func (s Step) Prev() Step {
	if s <= StepWelcome {
		return StepWelcome
	}
	if s > StepFinalReport {
		return StepFinalReport
	}
	return s - 1
}

// IsTerminal reports whether s is the last step.
func (s Step) IsTerminal() bool {
	return s == StepFinalReport
}
