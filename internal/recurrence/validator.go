package recurrence

import "strings"

// Validation messages keyed next to their form fields in the editor.
const (
	msgNameRequired     = "Name is required"
	msgProcessRequired  = "Select a process"
	msgTimezoneRequired = "Timezone is required"
	msgTimezoneUnknown  = "Unknown timezone"
	msgCronRequired     = "Cron is required"
	msgAtLeastOne       = "Must be at least 1"
	msgMinuteRange      = "Must be between 0 and 59"
	msgDayOfMonthRange  = "Must be between 1 and 31"
	msgTimeRequired     = "A valid time (HH:MM) is required"
	msgWeekdaysRequired = "Select at least one day"
	msgWeekdayUnknown   = "Unknown weekday"
	msgWeekOrdinal      = "Select a week of the month"
	msgQueueRequired    = "Select a queue"
)

// Validate runs every submission gate against the model and reports failures
// per field. It deliberately re-checks conditions the compiler already
// flagged: the compiler's single aggregate message lands on cronExpression,
// while these checks pin the same problem to the specific offending field so
// the editor can highlight it.
//
// Unlike Compile, Validate is strict about optional intervals - a trigger
// that would only preview correctly because an interval defaulted to 1 is
// still not submittable until the user fills the field in.
func Validate(m Model, result CompileResult) ValidationErrors {
	errs := ValidationErrors{}

	if strings.TrimSpace(m.Name) == "" {
		errs["name"] = msgNameRequired
	}
	if m.ProcessID <= 0 {
		errs["processId"] = msgProcessRequired
	}

	switch m.TriggerType {
	case TriggerQueue:
		validateQueue(m, errs)
	default:
		validateTime(m, result, errs)
	}

	return errs
}

func validateTime(m Model, result CompileResult, errs ValidationErrors) {
	switch {
	case strings.TrimSpace(m.Timezone) == "":
		errs["timezone"] = msgTimezoneRequired
	case !IsSupportedTimezone(m.Timezone):
		errs["timezone"] = msgTimezoneUnknown
	}

	// Surface the compiler's verdict against the aggregate cron field.
	switch {
	case result.Err != "":
		errs["cronExpression"] = result.Err
	case result.Cron == "":
		errs["cronExpression"] = msgCronRequired
	}

	switch m.Frequency {
	case FreqMinute:
		if m.MinuteInterval < 1 {
			errs["minuteEvery"] = msgAtLeastOne
		}
	case FreqHourly:
		if m.HourInterval < 1 {
			errs["hourEvery"] = msgAtLeastOne
		}
		if m.MinuteOfHour < 0 || m.MinuteOfHour > 59 {
			errs["hourMinute"] = msgMinuteRange
		}
	case FreqDaily:
		if m.DayInterval < 1 {
			errs["dayEvery"] = msgAtLeastOne
		}
		requireTimeOfDay(m, errs)
	case FreqWeekly:
		requireTimeOfDay(m, errs)
		requireWeekdays(m, errs)
	case FreqMonthlyByDay:
		requireTimeOfDay(m, errs)
		if m.DayOfMonth < 1 || m.DayOfMonth > 31 {
			errs["dayOfMonth"] = msgDayOfMonthRange
		}
		if m.MonthInterval < 1 {
			errs["monthEvery"] = msgAtLeastOne
		}
	case FreqMonthlyByWeekday:
		requireTimeOfDay(m, errs)
		requireWeekdays(m, errs)
		if m.MonthInterval < 1 {
			errs["monthEvery"] = msgAtLeastOne
		}
		switch m.WeekOrdinal {
		case FirstWeek, SecondWeek, ThirdWeek, FourthWeek, LastWeek:
		default:
			errs["weekOfMonth"] = msgWeekOrdinal
		}
	case FreqAdvanced:
		if strings.TrimSpace(m.RawExpression) == "" {
			errs["cronExpression"] = msgCronRequired
		}
	}
}

func validateQueue(m Model, errs ValidationErrors) {
	if m.QueueID <= 0 {
		errs["queueId"] = msgQueueRequired
	}
	if m.BatchSize < 1 {
		errs["batchSize"] = msgAtLeastOne
	}
	if m.PollingInterval < 1 {
		errs["pollingInterval"] = msgAtLeastOne
	}
}

func requireTimeOfDay(m Model, errs ValidationErrors) {
	if _, _, ok := ParseTimeOfDay(m.TimeOfDay); !ok {
		errs["startTime"] = msgTimeRequired
	}
}

func requireWeekdays(m Model, errs ValidationErrors) {
	if len(m.Weekdays) == 0 {
		errs["daysOfWeek"] = msgWeekdaysRequired
		return
	}
	for _, d := range m.Weekdays {
		if !d.IsValid() {
			errs["daysOfWeek"] = msgWeekdayUnknown
			return
		}
	}
}
