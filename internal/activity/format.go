package activity

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"
)

const unsetPlaceholder = "—"

var fieldLabels = map[Field]string{
	FieldTitle:       "Title",
	FieldStatus:      "Status",
	FieldSubStatus:   "Sub-Status",
	FieldDepartment:  "Department",
	FieldFocalOwner:  "Focal Owner",
	FieldBudget:      "Budget",
	FieldAwardAmount: "Award Amount",
	FieldAwardDate:   "Award Date",
	FieldStartDate:   "Start Date",
	FieldEndDate:     "End Date",
	FieldCompletion:  "Completion %",
}

// FormatFieldName maps a field identifier to its display label. Unknown
// fields fall back to splitting the camel case and title-casing the result.
func FormatFieldName(field Field) string {
	if label, ok := fieldLabels[field]; ok {
		return label
	}
	var b strings.Builder
	for i, r := range string(field) {
		if i == 0 {
			b.WriteRune(unicode.ToUpper(r))
			continue
		}
		if unicode.IsUpper(r) {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// FormatValue renders a value for display. Unset values become an em dash,
// dates render short, money fields render as currency and percent fields
// get a % suffix.
func FormatValue(v Value, field Field) string {
	if v.IsUnset() {
		return unsetPlaceholder
	}
	if v.Kind == KindDate {
		return v.Date.Format("Jan 2, 2006")
	}
	if v.Kind == KindNumber {
		switch {
		case isMoneyField(field):
			return formatCurrency(v.Num)
		case isPercentField(field):
			return strconv.FormatFloat(v.Num, 'f', -1, 64) + "%"
		}
	}
	return v.String()
}

func isMoneyField(field Field) bool {
	name := strings.ToLower(string(field))
	return strings.Contains(name, "budget") || strings.Contains(name, "amount")
}

func isPercentField(field Field) bool {
	return strings.Contains(strings.ToLower(string(field)), "percent")
}

// formatCurrency renders with zero fraction digits for whole amounts and
// two otherwise, with thousands separators.
func formatCurrency(n float64) string {
	neg := n < 0
	if neg {
		n = -n
	}
	cents := int64(math.Round(n * 100))
	frac := ""
	if cents%100 != 0 {
		frac = fmt.Sprintf(".%02d", cents%100)
	}
	intPart := strconv.FormatInt(cents/100, 10)
	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	b.WriteByte('$')
	for i, d := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(d)
	}
	b.WriteString(frac)
	return b.String()
}

// Summarize produces the one-line human summary for a record. The same
// phrasing is used at write time for Record.Description, so inline display
// and export never disagree.
func Summarize(r Record) string {
	return describe(r.Action, r.Changes)
}

func describe(action Action, changes Changes) string {
	switch action {
	case ActionCreated:
		return "Project created"
	case ActionNoteAdded:
		return "Note added"
	case ActionStatusChanged:
		return fmt.Sprintf("Status changed from %s to %s",
			FormatValue(changes[0].From, FieldStatus),
			FormatValue(changes[0].To, FieldStatus))
	case ActionSubStatusChanged:
		return fmt.Sprintf("Sub-status changed from %s to %s",
			FormatValue(changes[0].From, FieldSubStatus),
			FormatValue(changes[0].To, FieldSubStatus))
	case ActionFieldsUpdated:
		if len(changes) == 1 {
			return "1 field updated"
		}
		return fmt.Sprintf("%d fields updated", len(changes))
	}
	return string(action)
}
