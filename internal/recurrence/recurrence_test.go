package recurrence

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/pushworks/push-scheduler/internal/model"
)

func TestNext(t *testing.T) {
	base := time.Date(2024, time.January, 1, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		prev time.Time
		rule model.RecurrenceRule
		want time.Time
	}{
		{
			name: "daily",
			prev: base,
			rule: model.RecurrenceRule{Frequency: model.FrequencyDaily},
			want: time.Date(2024, time.January, 2, 9, 0, 0, 0, time.UTC),
		},
		{
			name: "weekly",
			prev: base,
			rule: model.RecurrenceRule{Frequency: model.FrequencyWeekly},
			want: time.Date(2024, time.January, 8, 9, 0, 0, 0, time.UTC),
		},
		{
			name: "weekly with time of day",
			prev: base,
			rule: model.RecurrenceRule{Frequency: model.FrequencyWeekly, TimeOfDay: "09:00"},
			want: time.Date(2024, time.January, 8, 9, 0, 0, 0, time.UTC),
		},
		{
			name: "monthly",
			prev: base,
			rule: model.RecurrenceRule{Frequency: model.FrequencyMonthly},
			want: time.Date(2024, time.February, 1, 9, 0, 0, 0, time.UTC),
		},
		{
			name: "monthly day overflow rolls over",
			prev: time.Date(2024, time.January, 31, 9, 0, 0, 0, time.UTC),
			rule: model.RecurrenceRule{Frequency: model.FrequencyMonthly},
			want: time.Date(2024, time.March, 2, 9, 0, 0, 0, time.UTC),
		},
		{
			name: "time of day overrides clock and zeroes seconds",
			prev: time.Date(2024, time.January, 1, 17, 42, 31, 500, time.UTC),
			rule: model.RecurrenceRule{Frequency: model.FrequencyDaily, TimeOfDay: "09:30"},
			want: time.Date(2024, time.January, 2, 9, 30, 0, 0, time.UTC),
		},
		{
			name: "invalid time of day is ignored",
			prev: base,
			rule: model.RecurrenceRule{Frequency: model.FrequencyDaily, TimeOfDay: "25:99"},
			want: time.Date(2024, time.January, 2, 9, 0, 0, 0, time.UTC),
		},
		{
			name: "unknown frequency returns prev unchanged",
			prev: base,
			rule: model.RecurrenceRule{Frequency: "hourly"},
			want: base,
		},
		{
			name: "empty frequency returns prev unchanged",
			prev: base,
			rule: model.RecurrenceRule{},
			want: base,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Next(tt.prev, tt.rule)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNext_Deterministic(t *testing.T) {
	prev := time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)
	rule := model.RecurrenceRule{Frequency: model.FrequencyDaily, TimeOfDay: "08:15"}

	first := Next(prev, rule)
	second := Next(prev, rule)
	assert.Equal(t, first, second)
	assert.True(t, first.After(prev))
}
