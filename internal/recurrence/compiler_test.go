package recurrence_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"trigger-console/internal/recurrence"
)

func TestCompile_Minute(t *testing.T) {
	tests := []struct {
		name     string
		interval int
		wantCron string
		wantErr  bool
	}{
		{name: "Every minute", interval: 1, wantCron: "*/1 * * * *"},
		{name: "Every five minutes", interval: 5, wantCron: "*/5 * * * *"},
		{name: "Every ninety minutes", interval: 90, wantCron: "*/90 * * * *"},
		{name: "Zero interval", interval: 0, wantErr: true},
		{name: "Negative interval", interval: -3, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := recurrence.Compile(recurrence.Model{
				TriggerType:    recurrence.TriggerTime,
				Frequency:      recurrence.FreqMinute,
				MinuteInterval: tt.interval,
			})

			if tt.wantErr {
				assert.NotEmpty(t, result.Err)
				assert.Empty(t, result.Cron)
			} else {
				assert.Empty(t, result.Err)
				assert.Equal(t, tt.wantCron, result.Cron)
			}
		})
	}
}

func TestCompile_Hourly(t *testing.T) {
	tests := []struct {
		name         string
		hourInterval int
		minuteOfHour int
		wantCron     string
		wantErr      bool
	}{
		{name: "On the hour", hourInterval: 1, minuteOfHour: 0, wantCron: "0 */1 * * *"},
		{name: "Quarter past every two hours", hourInterval: 2, minuteOfHour: 15, wantCron: "15 */2 * * *"},
		{name: "Last minute of hour", hourInterval: 6, minuteOfHour: 59, wantCron: "59 */6 * * *"},
		{name: "Zero hour interval", hourInterval: 0, minuteOfHour: 30, wantErr: true},
		{name: "Minute too large", hourInterval: 1, minuteOfHour: 60, wantErr: true},
		{name: "Negative minute", hourInterval: 1, minuteOfHour: -1, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := recurrence.Compile(recurrence.Model{
				TriggerType:  recurrence.TriggerTime,
				Frequency:    recurrence.FreqHourly,
				HourInterval: tt.hourInterval,
				MinuteOfHour: tt.minuteOfHour,
			})

			if tt.wantErr {
				assert.NotEmpty(t, result.Err)
			} else {
				assert.Equal(t, tt.wantCron, result.Cron)
			}
		})
	}
}

func TestCompile_Daily(t *testing.T) {
	tests := []struct {
		name        string
		timeOfDay   string
		dayInterval int
		wantCron    string
		wantErr     bool
	}{
		{name: "Every day at nine", timeOfDay: "09:00", dayInterval: 1, wantCron: "0 9 */1 * *"},
		{name: "Every third day", timeOfDay: "18:30", dayInterval: 3, wantCron: "30 18 */3 * *"},
		{name: "Interval defaults to one when unset", timeOfDay: "07:15", dayInterval: 0, wantCron: "15 7 */1 * *"},
		{name: "Interval defaults to one when negative", timeOfDay: "07:15", dayInterval: -2, wantCron: "15 7 */1 * *"},
		{name: "Missing time", timeOfDay: "", wantErr: true},
		{name: "Malformed time", timeOfDay: "25:00", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := recurrence.Compile(recurrence.Model{
				TriggerType: recurrence.TriggerTime,
				Frequency:   recurrence.FreqDaily,
				TimeOfDay:   tt.timeOfDay,
				DayInterval: tt.dayInterval,
			})

			if tt.wantErr {
				assert.NotEmpty(t, result.Err)
			} else {
				assert.Equal(t, tt.wantCron, result.Cron)
			}
		})
	}
}

func TestCompile_Weekly(t *testing.T) {
	tests := []struct {
		name      string
		timeOfDay string
		weekdays  []recurrence.Weekday
		wantCron  string
		wantErr   bool
	}{
		{
			name:      "Single weekday",
			timeOfDay: "08:00",
			weekdays:  []recurrence.Weekday{recurrence.Monday},
			wantCron:  "0 8 * * MON",
		},
		{
			name:      "Multiple weekdays join in order",
			timeOfDay: "17:45",
			weekdays:  []recurrence.Weekday{recurrence.Monday, recurrence.Wednesday, recurrence.Friday},
			wantCron:  "45 17 * * MON,WED,FRI",
		},
		{
			name:      "Weekend",
			timeOfDay: "10:30",
			weekdays:  []recurrence.Weekday{recurrence.Saturday, recurrence.Sunday},
			wantCron:  "30 10 * * SAT,SUN",
		},
		{name: "Empty weekday set", timeOfDay: "08:00", weekdays: nil, wantErr: true},
		{name: "Invalid time", timeOfDay: "8", weekdays: []recurrence.Weekday{recurrence.Monday}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := recurrence.Compile(recurrence.Model{
				TriggerType: recurrence.TriggerTime,
				Frequency:   recurrence.FreqWeekly,
				TimeOfDay:   tt.timeOfDay,
				Weekdays:    tt.weekdays,
			})

			if tt.wantErr {
				assert.NotEmpty(t, result.Err)
				assert.Empty(t, result.Cron)
			} else {
				assert.Equal(t, tt.wantCron, result.Cron)
			}
		})
	}
}

func TestCompile_MonthlyByDay(t *testing.T) {
	tests := []struct {
		name          string
		timeOfDay     string
		dayOfMonth    int
		monthInterval int
		wantCron      string
		wantErr       bool
	}{
		{name: "First of the month", timeOfDay: "00:00", dayOfMonth: 1, monthInterval: 1, wantCron: "0 0 1 */1 *"},
		{name: "Last possible day every other month", timeOfDay: "23:59", dayOfMonth: 31, monthInterval: 2, wantCron: "59 23 31 */2 *"},
		{name: "Month interval defaults to one", timeOfDay: "12:00", dayOfMonth: 15, monthInterval: 0, wantCron: "0 12 15 */1 *"},
		{name: "Day zero", timeOfDay: "12:00", dayOfMonth: 0, wantErr: true},
		{name: "Day thirty-two", timeOfDay: "12:00", dayOfMonth: 32, wantErr: true},
		{name: "Missing time", timeOfDay: "", dayOfMonth: 15, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := recurrence.Compile(recurrence.Model{
				TriggerType:   recurrence.TriggerTime,
				Frequency:     recurrence.FreqMonthlyByDay,
				TimeOfDay:     tt.timeOfDay,
				DayOfMonth:    tt.dayOfMonth,
				MonthInterval: tt.monthInterval,
			})

			if tt.wantErr {
				assert.NotEmpty(t, result.Err)
			} else {
				assert.Equal(t, tt.wantCron, result.Cron)
			}
		})
	}
}

func TestCompile_MonthlyByWeekday(t *testing.T) {
	tests := []struct {
		name          string
		timeOfDay     string
		weekdays      []recurrence.Weekday
		ordinal       recurrence.WeekOrdinal
		monthInterval int
		wantCron      string
		wantErr       bool
	}{
		{
			name:          "Last Friday of every month",
			timeOfDay:     "09:00",
			weekdays:      []recurrence.Weekday{recurrence.Friday},
			ordinal:       recurrence.LastWeek,
			monthInterval: 1,
			wantCron:      "0 9 * */1 FRIL",
		},
		{
			name:          "Second Tuesday every third month",
			timeOfDay:     "14:30",
			weekdays:      []recurrence.Weekday{recurrence.Tuesday},
			ordinal:       recurrence.SecondWeek,
			monthInterval: 3,
			wantCron:      "30 14 * */3 TUE#2",
		},
		{
			name:          "Only first weekday selection is used",
			timeOfDay:     "06:00",
			weekdays:      []recurrence.Weekday{recurrence.Wednesday, recurrence.Friday},
			ordinal:       recurrence.FirstWeek,
			monthInterval: 1,
			wantCron:      "0 6 * */1 WED#1",
		},
		{
			name:          "Month interval defaults to one",
			timeOfDay:     "06:00",
			weekdays:      []recurrence.Weekday{recurrence.Sunday},
			ordinal:       recurrence.FourthWeek,
			monthInterval: 0,
			wantCron:      "0 6 * */1 SUN#4",
		},
		{
			name:      "No weekday selected",
			timeOfDay: "06:00",
			ordinal:   recurrence.FirstWeek,
			wantErr:   true,
		},
		{
			name:      "Unrecognized ordinal",
			timeOfDay: "06:00",
			weekdays:  []recurrence.Weekday{recurrence.Monday},
			ordinal:   recurrence.WeekOrdinal("5"),
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := recurrence.Compile(recurrence.Model{
				TriggerType:   recurrence.TriggerTime,
				Frequency:     recurrence.FreqMonthlyByWeekday,
				TimeOfDay:     tt.timeOfDay,
				Weekdays:      tt.weekdays,
				WeekOrdinal:   tt.ordinal,
				MonthInterval: tt.monthInterval,
			})

			if tt.wantErr {
				assert.NotEmpty(t, result.Err)
			} else {
				assert.Equal(t, tt.wantCron, result.Cron)
			}
		})
	}
}

func TestCompile_Advanced(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		wantCron string
		wantErr  bool
	}{
		{name: "Expression passes through verbatim", raw: "*/5 * * * *", wantCron: "*/5 * * * *"},
		{name: "Surrounding whitespace is trimmed", raw: "  0 0 * * MON  ", wantCron: "0 0 * * MON"},
		{name: "No syntax checking is applied", raw: "not even close to cron", wantCron: "not even close to cron"},
		{name: "Empty expression", raw: "", wantErr: true},
		{name: "Whitespace only", raw: "   ", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := recurrence.Compile(recurrence.Model{
				TriggerType:   recurrence.TriggerTime,
				Frequency:     recurrence.FreqAdvanced,
				RawExpression: tt.raw,
			})

			if tt.wantErr {
				assert.NotEmpty(t, result.Err)
			} else {
				assert.Equal(t, tt.wantCron, result.Cron)
			}
		})
	}
}

func TestCompile_QueueTriggerIsInert(t *testing.T) {
	// Queue-driven triggers have no schedule: the compiler must stay silent
	// no matter what stale recurrence state the form carries.
	result := recurrence.Compile(recurrence.Model{
		TriggerType:    recurrence.TriggerQueue,
		Frequency:      recurrence.FreqMinute,
		MinuteInterval: -5,
	})

	assert.Empty(t, result.Cron)
	assert.Empty(t, result.Err)
}

func TestCompile_UnsetFrequency(t *testing.T) {
	tests := []struct {
		name      string
		frequency recurrence.Frequency
	}{
		{name: "Empty frequency", frequency: ""},
		{name: "Unknown frequency", frequency: recurrence.Frequency("YEARLY")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := recurrence.Compile(recurrence.Model{
				TriggerType: recurrence.TriggerTime,
				Frequency:   tt.frequency,
			})

			assert.Equal(t, "Select a frequency", result.Err)
			assert.Empty(t, result.Cron)
		})
	}
}

func TestCompile_IgnoresStaleInactiveFields(t *testing.T) {
	// Toggling frequencies leaves old values behind; only the active
	// frequency's fields may influence the output.
	m := recurrence.Model{
		TriggerType:    recurrence.TriggerTime,
		Frequency:      recurrence.FreqMinute,
		MinuteInterval: 10,

		// Stale junk from other frequencies.
		HourInterval:  -7,
		MinuteOfHour:  99,
		DayInterval:   -1,
		TimeOfDay:     "nonsense",
		DayOfMonth:    42,
		MonthInterval: -9,
		RawExpression: "* * * * * * *",
	}

	result := recurrence.Compile(m)
	assert.Equal(t, "*/10 * * * *", result.Cron)
	assert.Empty(t, result.Err)
}

func TestCompile_Deterministic(t *testing.T) {
	m := recurrence.Model{
		TriggerType: recurrence.TriggerTime,
		Frequency:   recurrence.FreqWeekly,
		TimeOfDay:   "09:00",
		Weekdays:    []recurrence.Weekday{recurrence.Monday, recurrence.Thursday},
	}

	first := recurrence.Compile(m)
	second := recurrence.Compile(m)

	assert.Equal(t, first, second)
	assert.Equal(t, "0 9 * * MON,THU", first.Cron)
}
