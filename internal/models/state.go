package models

// Step is the single form field the next free-text message will populate.
// The form sequence is fixed: cleaners -> helpers -> payments -> malfunctions,
// then an inline readiness choice. Illegal orderings are unrepresentable:
// messages.go only ever advances with Next.
type Step int

const (
	StepNone Step = iota
	StepCleaners
	StepHelpers
	StepPayments
	StepMalfunctions
	StepReadiness     // awaiting the inline Да/Нет choice
	StepObjectAddress // owner is typing a new object address
	StepRangeStart
	StepRangeEnd
)

// Next advances through the form sequence. Past malfunctions the form is
// driven by buttons, not text, so Next stops at StepReadiness.
func (s Step) Next() Step {
	switch s {
	case StepCleaners, StepHelpers, StepPayments, StepMalfunctions:
		return s + 1
	default:
		return StepNone
	}
}

// Menu is the screen a chat currently displays.
type Menu int

const (
	MenuMain Menu = iota
	MenuReport
	MenuReports
	MenuObjects
)
