package activity

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ErrStoreUnavailable wraps any failure talking to the backing store, so
// callers can render "failed to load" distinctly from an empty trail.
var ErrStoreUnavailable = errors.New("activity store unavailable")

// ValidationError rejects a write before any store call is made.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// Store reads and appends log records. Append is the only write path;
// records are never updated or deleted.
type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Append writes one immutable record, assigning id and timestamp when the
// caller left them empty.
func (s *Store) Append(r *Record) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now()
	}
	if err := s.db.Create(r).Error; err != nil {
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return nil
}

// ListByEntity returns the entity's records newest first. No records is an
// empty slice, not an error. Two records written within the same timestamp
// granularity sort by id, which is arbitrary but at least stable.
func (s *Store) ListByEntity(entityID uint) ([]Record, error) {
	var records []Record
	err := s.db.
		Where("entity_id = ?", entityID).
		Order("created_at desc, id desc").
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return records, nil
}

// ListAll returns every record newest first. Callers wanting another
// ordering regroup client-side.
func (s *Store) ListAll() ([]Record, error) {
	var records []Record
	err := s.db.
		Order("created_at desc, id desc").
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return records, nil
}
