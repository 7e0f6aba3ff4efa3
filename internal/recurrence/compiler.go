package recurrence

import (
	"fmt"
	"strings"
)

// Compile error messages surfaced in the editor preview.
const (
	errSelectFrequency = "Select a frequency"
	errMinuteInterval  = "Minutes must be ≥1"
	errHourInterval    = "Hours must be ≥1"
	errMinuteOfHour    = "Minute of hour must be between 0 and 59"
	errStartTime       = "A valid start time (HH:MM) is required"
	errWeekdays        = "Select at least one day of the week"
	errDayOfMonth      = "Day of month must be between 1 and 31"
	errWeekOrdinal     = "Select which week of the month"
	errRawExpression   = "Cron expression is required"
)

// Compile turns a Model into a 5-field cron expression
// (minute hour day-of-month month day-of-week).
//
// It is the best-effort preview half of the recurrence core: optional
// interval fields that are missing, zero or negative default to 1 instead of
// failing, so a partially-filled form still previews something plausible.
// Validate independently enforces the hard requirements before submission.
//
// QUEUE triggers have no schedule; compiling one yields an empty result
// with no error.
func Compile(m Model) CompileResult {
	if m.TriggerType == TriggerQueue {
		return CompileResult{}
	}

	switch m.Frequency {
	case FreqMinute:
		return compileMinute(m)
	case FreqHourly:
		return compileHourly(m)
	case FreqDaily:
		return compileDaily(m)
	case FreqWeekly:
		return compileWeekly(m)
	case FreqMonthlyByDay:
		return compileMonthlyByDay(m)
	case FreqMonthlyByWeekday:
		return compileMonthlyByWeekday(m)
	case FreqAdvanced:
		return compileAdvanced(m)
	default:
		return CompileResult{Err: errSelectFrequency}
	}
}

func compileMinute(m Model) CompileResult {
	if m.MinuteInterval < 1 {
		return CompileResult{Err: errMinuteInterval}
	}
	return CompileResult{Cron: fmt.Sprintf("*/%d * * * *", m.MinuteInterval)}
}

func compileHourly(m Model) CompileResult {
	if m.HourInterval < 1 {
		return CompileResult{Err: errHourInterval}
	}
	if m.MinuteOfHour < 0 || m.MinuteOfHour > 59 {
		return CompileResult{Err: errMinuteOfHour}
	}
	return CompileResult{Cron: fmt.Sprintf("%d */%d * * *", m.MinuteOfHour, m.HourInterval)}
}

func compileDaily(m Model) CompileResult {
	hour, minute, ok := ParseTimeOfDay(m.TimeOfDay)
	if !ok {
		return CompileResult{Err: errStartTime}
	}
	return CompileResult{Cron: fmt.Sprintf("%d %d */%d * *", minute, hour, orOne(m.DayInterval))}
}

func compileWeekly(m Model) CompileResult {
	hour, minute, ok := ParseTimeOfDay(m.TimeOfDay)
	if !ok {
		return CompileResult{Err: errStartTime}
	}
	if len(m.Weekdays) == 0 {
		return CompileResult{Err: errWeekdays}
	}

	tokens := make([]string, len(m.Weekdays))
	for i, d := range m.Weekdays {
		tokens[i] = string(d)
	}
	return CompileResult{Cron: fmt.Sprintf("%d %d * * %s", minute, hour, strings.Join(tokens, ","))}
}

func compileMonthlyByDay(m Model) CompileResult {
	hour, minute, ok := ParseTimeOfDay(m.TimeOfDay)
	if !ok {
		return CompileResult{Err: errStartTime}
	}
	if m.DayOfMonth < 1 || m.DayOfMonth > 31 {
		return CompileResult{Err: errDayOfMonth}
	}
	return CompileResult{Cron: fmt.Sprintf("%d %d %d */%d *", minute, hour, m.DayOfMonth, orOne(m.MonthInterval))}
}

func compileMonthlyByWeekday(m Model) CompileResult {
	hour, minute, ok := ParseTimeOfDay(m.TimeOfDay)
	if !ok {
		return CompileResult{Err: errStartTime}
	}
	if len(m.Weekdays) == 0 {
		return CompileResult{Err: errWeekdays}
	}

	// Only the first selected weekday is meaningful for this frequency.
	day := string(m.Weekdays[0])

	var suffix string
	switch m.WeekOrdinal {
	case FirstWeek, SecondWeek, ThirdWeek, FourthWeek:
		suffix = "#" + string(m.WeekOrdinal)
	case LastWeek:
		suffix = "L"
	default:
		return CompileResult{Err: errWeekOrdinal}
	}

	return CompileResult{Cron: fmt.Sprintf("%d %d * */%d %s%s", minute, hour, orOne(m.MonthInterval), day, suffix)}
}

// compileAdvanced passes the expression through untouched. The scheduler
// owns the grammar for advanced expressions; the console only insists that
// one was entered.
func compileAdvanced(m Model) CompileResult {
	expr := strings.TrimSpace(m.RawExpression)
	if expr == "" {
		return CompileResult{Err: errRawExpression}
	}
	return CompileResult{Cron: expr}
}

// orOne substitutes 1 for a missing or non-positive optional interval.
func orOne(n int) int {
	if n < 1 {
		return 1
	}
	return n
}
