package activity

import (
	"github.com/sirupsen/logrus"
)

// RecordStore is the slice of Store the recorder needs; kept small so tests
// can substitute a fake.
type RecordStore interface {
	Append(r *Record) error
}

// Recorder is the write-side facade mutation handlers call. The entity
// mutation itself is allowed to succeed even when the append fails, but the
// failure is logged and returned so audit gaps stay visible.
type Recorder struct {
	store RecordStore
	log   *logrus.Logger
}

func NewRecorder(store RecordStore, log *logrus.Logger) *Recorder {
	return &Recorder{store: store, log: log}
}

// EntityCreated appends a Created record with empty changes.
func (rec *Recorder) EntityCreated(entityID uint, title string, actorID uint, actorName string) (*Record, error) {
	if err := validateIdentity(entityID, title); err != nil {
		return nil, err
	}
	r := &Record{
		EntityID:    entityID,
		EntityTitle: title,
		Action:      ActionCreated,
		Description: describe(ActionCreated, nil),
		ActorID:     actorID,
		ActorName:   actorName,
	}
	return rec.append(r)
}

// EntityUpdated diffs the two snapshots and appends the matching record.
// A no-op update with no note returns (nil, nil) and writes nothing; a
// note with no field changes becomes a NoteAdded record.
func (rec *Recorder) EntityUpdated(entityID uint, title string, prev, next Snapshot, actorID uint, actorName, note string) (*Record, error) {
	if err := validateIdentity(entityID, title); err != nil {
		return nil, err
	}
	changes := Diff(prev, next)
	if len(changes) == 0 {
		if note == "" {
			return nil, nil
		}
		return rec.NoteAdded(entityID, title, note, actorID, actorName)
	}
	action := changes.ActionFor()
	r := &Record{
		EntityID:    entityID,
		EntityTitle: title,
		Action:      action,
		Description: describe(action, changes),
		Changes:     changes,
		Note:        note,
		ActorID:     actorID,
		ActorName:   actorName,
	}
	return rec.append(r)
}

// NoteAdded appends a free-text annotation not tied to any field diff.
func (rec *Recorder) NoteAdded(entityID uint, title, note string, actorID uint, actorName string) (*Record, error) {
	if err := validateIdentity(entityID, title); err != nil {
		return nil, err
	}
	if note == "" {
		return nil, &ValidationError{Field: "note", Reason: "must not be empty"}
	}
	r := &Record{
		EntityID:    entityID,
		EntityTitle: title,
		Action:      ActionNoteAdded,
		Description: describe(ActionNoteAdded, nil),
		Note:        note,
		ActorID:     actorID,
		ActorName:   actorName,
	}
	return rec.append(r)
}

func (rec *Recorder) append(r *Record) (*Record, error) {
	if err := rec.store.Append(r); err != nil {
		rec.log.WithFields(logrus.Fields{
			"entity_id": r.EntityID,
			"action":    r.Action,
		}).WithError(err).Error("activity append failed, audit gap")
		return nil, err
	}
	return r, nil
}

func validateIdentity(entityID uint, title string) error {
	if entityID == 0 {
		return &ValidationError{Field: "entityId", Reason: "must not be empty"}
	}
	if title == "" {
		return &ValidationError{Field: "entityTitle", Reason: "must not be empty"}
	}
	return nil
}
