// Package recurrence converts structured schedule descriptions into cron
// expressions and validates them before they reach the trigger scheduler.
//
// The console builds one Model per trigger being edited. Compile produces a
// live cron preview on every change, and Validate gates submission with
// field-keyed error messages. Both functions are pure: no I/O, no panics,
// identical input always yields identical output.
package recurrence

// TriggerType distinguishes schedule-driven triggers from queue-driven ones.
type TriggerType string

const (
	// TriggerTime fires on a wall-clock schedule described by a cron expression.
	TriggerTime TriggerType = "TIME"
	// TriggerQueue fires on queue backlog polling and bypasses the cron compiler.
	TriggerQueue TriggerType = "QUEUE"
)

// Frequency selects which recurrence fields of the Model are active.
type Frequency string

const (
	FreqMinute           Frequency = "MINUTE"
	FreqHourly           Frequency = "HOURLY"
	FreqDaily            Frequency = "DAILY"
	FreqWeekly           Frequency = "WEEKLY"
	FreqMonthlyByDay     Frequency = "MONTHLY_BY_DAY"
	FreqMonthlyByWeekday Frequency = "MONTHLY_BY_WEEKDAY"
	FreqAdvanced         Frequency = "ADVANCED"
)

// Weekday is a three-letter cron weekday token.
type Weekday string

const (
	Sunday    Weekday = "SUN"
	Monday    Weekday = "MON"
	Tuesday   Weekday = "TUE"
	Wednesday Weekday = "WED"
	Thursday  Weekday = "THU"
	Friday    Weekday = "FRI"
	Saturday  Weekday = "SAT"
)

// knownWeekdays is the set of accepted weekday tokens.
var knownWeekdays = map[Weekday]bool{
	Sunday: true, Monday: true, Tuesday: true, Wednesday: true,
	Thursday: true, Friday: true, Saturday: true,
}

// IsValid reports whether the token is one of SUN..SAT.
func (w Weekday) IsValid() bool {
	return knownWeekdays[w]
}

// WeekOrdinal selects which occurrence of a weekday within the month is meant.
type WeekOrdinal string

const (
	FirstWeek  WeekOrdinal = "1"
	SecondWeek WeekOrdinal = "2"
	ThirdWeek  WeekOrdinal = "3"
	FourthWeek WeekOrdinal = "4"
	LastWeek   WeekOrdinal = "LAST"
)

// Model is the full recurrence form state for a single trigger editor.
//
// It is a flat record holding the fields of every frequency; only the subset
// belonging to the active Frequency is read when compiling. Inactive fields
// may hold stale values from earlier frequency toggles - the user's entries
// survive switching back and forth - and must never influence the result.
type Model struct {
	// Cross-cutting fields validated for both trigger types.
	Name      string `json:"name"`
	ProcessID int64  `json:"processId"`
	RobotID   int64  `json:"robotId,omitempty"`

	TriggerType TriggerType `json:"triggerType"`
	Frequency   Frequency   `json:"frequency"`

	// MINUTE
	MinuteInterval int `json:"minuteEvery"`

	// HOURLY
	HourInterval int `json:"hourEvery"`
	MinuteOfHour int `json:"hourMinute"`

	// DAILY
	DayInterval int `json:"dayEvery"`

	// TimeOfDay is the "HH:MM" wall-clock fire time shared by the daily,
	// weekly and monthly frequencies.
	TimeOfDay string `json:"startTime"`

	// WEEKLY uses the whole set; MONTHLY_BY_WEEKDAY uses only the first entry.
	Weekdays []Weekday `json:"daysOfWeek"`

	// MONTHLY_BY_DAY
	DayOfMonth int `json:"dayOfMonth"`

	// Shared by both monthly frequencies.
	MonthInterval int         `json:"monthEvery"`
	WeekOrdinal   WeekOrdinal `json:"weekOfMonth"`

	// ADVANCED: a raw cron expression used verbatim.
	RawExpression string `json:"cronExpression"`

	// Timezone is the IANA zone the schedule is evaluated in. Required for
	// TIME triggers.
	Timezone string `json:"timezone"`

	// QUEUE trigger fields, disjoint from the recurrence fields above.
	QueueID         int64 `json:"queueId"`
	BatchSize       int   `json:"batchSize"`
	PollingInterval int   `json:"pollingInterval"`
}

// CompileResult is the outcome of compiling a Model. For TIME triggers
// exactly one of Cron and Err is set; for QUEUE triggers both are empty.
type CompileResult struct {
	Cron string `json:"cron,omitempty"`
	Err  string `json:"error,omitempty"`
}

// ValidationErrors maps a form field name to a human-readable message.
// An empty map means the model is submittable.
type ValidationErrors map[string]string

// Valid reports whether no field failed validation.
func (e ValidationErrors) Valid() bool {
	return len(e) == 0
}
