// Package activity is the audit trail for project mutations: it computes
// field-level diffs, writes them as immutable log records and provides the
// read-side filtering, grouping and export helpers.
//
// Records are append-only. There is no update, delete or retention path;
// the trail is kept indefinitely.
package activity

import "time"

type Action string

const (
	ActionCreated          Action = "created"
	ActionFieldsUpdated    Action = "fields_updated"
	ActionStatusChanged    Action = "status_changed"
	ActionSubStatusChanged Action = "sub_status_changed"
	ActionNoteAdded        Action = "note_added"
)

// Field names a trackable project attribute. Only fields on the allow-list
// in diff.go can ever appear in a record's changes.
type Field string

const (
	FieldTitle       Field = "title"
	FieldStatus      Field = "status"
	FieldSubStatus   Field = "subStatus"
	FieldDepartment  Field = "department"
	FieldFocalOwner  Field = "focalOwner"
	FieldBudget      Field = "budget"
	FieldAwardAmount Field = "awardAmount"
	FieldAwardDate   Field = "awardDate"
	FieldStartDate   Field = "startDate"
	FieldEndDate     Field = "endDate"
	FieldCompletion  Field = "completionPercent"
)

type FieldChange struct {
	Field Field `json:"field"`
	From  Value `json:"from"`
	To    Value `json:"to"`
}

// Changes is ordered: entries follow the allow-list order in diff.go, so a
// record renders the same way every time it is read.
type Changes []FieldChange

// Record is one immutable audit fact. Actor name and entity title are
// point-in-time copies, not live references, so listings stay meaningful
// after a user is renamed or a project is deleted.
type Record struct {
	ID          string    `gorm:"primaryKey;size:36" json:"id"`
	EntityID    uint      `gorm:"index;not null" json:"entityId"`
	EntityTitle string    `gorm:"size:255" json:"entityTitle"`
	Action      Action    `gorm:"size:50;not null" json:"action"`
	Description string    `gorm:"type:text" json:"description"`
	Changes     Changes   `gorm:"type:text;serializer:json" json:"changes,omitempty"`
	Note        string    `gorm:"type:text" json:"note,omitempty"`
	ActorID     uint      `json:"actorId"`
	ActorName   string    `gorm:"size:255" json:"actorName"`
	CreatedAt   time.Time `json:"createdAt"`
}

func (Record) TableName() string { return "logs" }
