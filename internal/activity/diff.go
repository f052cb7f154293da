package activity

// Snapshot holds a project's trackable field values at one point in time.
// Missing keys read as unset.
type Snapshot map[Field]Value

// trackableFields is the allow-list; its order is the order changes appear
// in on a record. Bookkeeping fields (ids, timestamps) are deliberately
// absent.
var trackableFields = []Field{
	FieldTitle,
	FieldStatus,
	FieldSubStatus,
	FieldDepartment,
	FieldFocalOwner,
	FieldBudget,
	FieldAwardAmount,
	FieldAwardDate,
	FieldStartDate,
	FieldEndDate,
	FieldCompletion,
}

// Diff compares two snapshots and returns the per-field changes. An empty
// result means the update was a no-op and no record should be written.
func Diff(prev, next Snapshot) Changes {
	var changes Changes
	for _, f := range trackableFields {
		from, to := prev[f], next[f]
		if from.Equal(to) {
			continue
		}
		changes = append(changes, FieldChange{Field: f, From: from, To: to})
	}
	return changes
}

// ActionFor picks the record kind for a non-empty diff: a lone status or
// sub-status change gets its own kind, anything else is a plain update.
func (cs Changes) ActionFor() Action {
	if len(cs) == 1 {
		switch cs[0].Field {
		case FieldStatus:
			return ActionStatusChanged
		case FieldSubStatus:
			return ActionSubStatusChanged
		}
	}
	return ActionFieldsUpdated
}
