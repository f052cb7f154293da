package activity_test

import (
	"testing"
	"time"

	"taskmaster/internal/activity"

	"github.com/stretchr/testify/assert"
)

func TestFormatFieldName(t *testing.T) {
	assert.Equal(t, "Sub-Status", activity.FormatFieldName(activity.FieldSubStatus))
	assert.Equal(t, "Focal Owner", activity.FormatFieldName(activity.FieldFocalOwner))
	assert.Equal(t, "Award Amount", activity.FormatFieldName(activity.FieldAwardAmount))

	// unknown fields fall back to camel-case splitting
	assert.Equal(t, "Risk Level", activity.FormatFieldName(activity.Field("riskLevel")))
	assert.Equal(t, "Foo", activity.FormatFieldName(activity.Field("foo")))
}

func TestFormatValue(t *testing.T) {
	tests := []struct {
		name  string
		value activity.Value
		field activity.Field
		want  string
	}{
		{"null renders as em dash", activity.Null(), activity.FieldTitle, "—"},
		{"empty string renders as em dash", activity.String(""), activity.FieldTitle, "—"},
		{"zero value renders as em dash", activity.Value{}, activity.FieldTitle, "—"},
		{"plain string", activity.String("Execution"), activity.FieldStatus, "Execution"},
		{
			"date renders short",
			activity.Date(time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)),
			activity.FieldStartDate,
			"May 1, 2024",
		},
		{"whole budget", activity.Number(50000), activity.FieldBudget, "$50,000"},
		{"fractional budget", activity.Number(1234.5), activity.FieldBudget, "$1,234.50"},
		{"award amount", activity.Number(999), activity.FieldAwardAmount, "$999"},
		{"percent", activity.Number(75), activity.FieldCompletion, "75%"},
		{"plain number", activity.Number(3), activity.Field("headcount"), "3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, activity.FormatValue(tt.value, tt.field))
		})
	}
}

func TestSummarize(t *testing.T) {
	created := activity.Record{Action: activity.ActionCreated}
	assert.Equal(t, "Project created", activity.Summarize(created))

	note := activity.Record{Action: activity.ActionNoteAdded}
	assert.Equal(t, "Note added", activity.Summarize(note))

	status := activity.Record{
		Action: activity.ActionStatusChanged,
		Changes: activity.Changes{{
			Field: activity.FieldStatus,
			From:  activity.String("Possible"),
			To:    activity.String("Scoping"),
		}},
	}
	assert.Equal(t, "Status changed from Possible to Scoping", activity.Summarize(status))

	one := activity.Record{
		Action: activity.ActionFieldsUpdated,
		Changes: activity.Changes{{
			Field: activity.FieldBudget,
			From:  activity.Number(1),
			To:    activity.Number(2),
		}},
	}
	assert.Equal(t, "1 field updated", activity.Summarize(one))

	three := activity.Record{
		Action: activity.ActionFieldsUpdated,
		Changes: activity.Changes{
			{Field: activity.FieldTitle},
			{Field: activity.FieldBudget},
			{Field: activity.FieldEndDate},
		},
	}
	assert.Equal(t, "3 fields updated", activity.Summarize(three))
}
