package domain

import (
	"math"
	"time"
)

// Status thresholds, expressed as fractions of the shift length
const (
	presentFraction    = 0.90
	lateFraction       = 0.75
	firstHalfFraction  = 0.50
	secondHalfFraction = 0.25
)

// BorderlineFunc decides between present and late for a day worked at or
// above the presence threshold. The default always returns present; the
// seed generator injects a randomized one to model borderline lateness.
type BorderlineFunc func(workedHours, shiftHours float64) Status

// AlwaysPresent is the deterministic borderline decision
func AlwaysPresent(workedHours, shiftHours float64) Status {
	return StatusPresent
}

// WorkedHours returns the elapsed hours between the punches, rounded to
// two decimals. A punch-out strictly earlier than the punch-in is treated
// as crossing midnight; equal instants mean the shift was never worked.
func WorkedHours(punchIn, punchOut time.Time) float64 {
	d := punchOut.Sub(punchIn)
	if d < 0 {
		d += 24 * time.Hour
	}
	return round2(d.Hours())
}

// Classify derives the attendance status and worked hours for one duty day
// from its punch pair and the shift length, using the deterministic
// borderline decision.
func Classify(punchIn, punchOut time.Time, shiftHours float64) (Status, float64) {
	return ClassifyWith(punchIn, punchOut, shiftHours, AlwaysPresent)
}

// ClassifyWith is Classify with an explicit borderline decision func
func ClassifyWith(punchIn, punchOut time.Time, shiftHours float64, borderline BorderlineFunc) (Status, float64) {
	if borderline == nil {
		borderline = AlwaysPresent
	}

	worked := WorkedHours(punchIn, punchOut)
	switch {
	case worked == 0:
		return StatusAbsent, worked
	case worked >= shiftHours*presentFraction:
		return borderline(worked, shiftHours), worked
	case worked >= shiftHours*lateFraction:
		return StatusLate, worked
	case worked >= shiftHours*firstHalfFraction:
		return StatusFirstHalfDayLeave, worked
	case worked >= shiftHours*secondHalfFraction:
		return StatusSecondHalfDayLeave, worked
	default:
		return StatusShortLeave, worked
	}
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}
