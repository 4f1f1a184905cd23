package table

import (
	"regexp"
	"sort"
)

// FieldErrors maps a column key to a validation message.
type FieldErrors map[string]string

var editAgePattern = regexp.MustCompile(`^\d+$`)

// Sessions tracks which records are currently being edited. Each editing
// record owns its own buffer of pending field values; buffers are never
// visible to view derivation until committed into the store.
type Sessions struct {
	store   *Store
	buffers map[string]Record
}

func NewSessions(store *Store) *Sessions {
	return &Sessions{
		store:   store,
		buffers: map[string]Record{},
	}
}

// Begin moves a record into editing state, seeding its buffer with the
// current field values. Beginning twice keeps the existing buffer.
func (s *Sessions) Begin(id string) error {
	if _, editing := s.buffers[id]; editing {
		return nil
	}

	record, exists := s.store.Get(id)
	if !exists {
		return ErrRecordNotFound
	}

	s.buffers[id] = record.Clone()
	return nil
}

// SetField mutates only the buffer, never the store. Null values stage as
// empty strings: a merge-patch null would remove the key from the record.
func (s *Sessions) SetField(id, key string, value any) error {
	buffer, editing := s.buffers[id]
	if !editing {
		return ErrNotEditing
	}
	if key == "id" {
		return nil
	}
	if value == nil {
		value = ""
	}

	buffer[key] = value
	return nil
}

// Commit validates the buffer and, if clean, merges it into the store and
// ends the session. On validation failure the record stays editing and the
// per-field errors are returned as data.
func (s *Sessions) Commit(id string) (FieldErrors, error) {
	buffer, editing := s.buffers[id]
	if !editing {
		return nil, ErrNotEditing
	}

	fieldErrors := validateBuffer(buffer)
	if len(fieldErrors) > 0 {
		return fieldErrors, nil
	}

	_, err := s.store.Update(id, buffer)
	if err != nil {
		return nil, err
	}

	delete(s.buffers, id)
	return nil, nil
}

// CommitAll commits every editing record using its own buffer. Records whose
// buffer fails validation stay editing and are reported by id.
func (s *Sessions) CommitAll() (map[string]FieldErrors, error) {
	failed := map[string]FieldErrors{}
	for _, id := range s.Editing() {
		fieldErrors, err := s.Commit(id)
		if err != nil {
			return nil, err
		}
		if len(fieldErrors) > 0 {
			failed[id] = fieldErrors
		}
	}
	return failed, nil
}

// Cancel discards the buffer without touching the store. Unknown ids are a
// no-op.
func (s *Sessions) Cancel(id string) {
	delete(s.buffers, id)
}

func (s *Sessions) CancelAll() {
	s.buffers = map[string]Record{}
}

func (s *Sessions) IsEditing(id string) bool {
	_, editing := s.buffers[id]
	return editing
}

// Editing lists the ids currently in editing state, sorted for determinism.
func (s *Sessions) Editing() []string {
	ids := []string{}
	for id := range s.buffers {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Buffer exposes a copy of the pending values for one editing record.
func (s *Sessions) Buffer(id string) (Record, bool) {
	buffer, editing := s.buffers[id]
	if !editing {
		return nil, false
	}
	return buffer.Clone(), true
}

func validateBuffer(buffer Record) FieldErrors {
	fieldErrors := FieldErrors{}

	age := Stringify(buffer["age"])
	if age != "" && !editAgePattern.MatchString(age) {
		fieldErrors["age"] = "Age must be a number"
	}

	return fieldErrors
}
