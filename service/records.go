package service

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"tableman/table"
)

var (
	emailPattern = regexp.MustCompile(`\S+@\S+\.\S+`)
	agePattern   = regexp.MustCompile(`^\d+$`)
)

// AddRecord validates the add-row form fields and inserts a new record with a
// fresh id. Validation failures come back as per-field data, not errors.
func (s *Service) AddRecord(fields map[string]any) (table.Record, table.FieldErrors, error) {
	fieldErrors := validateNewRecord(fields)
	if len(fieldErrors) > 0 {
		return nil, fieldErrors, nil
	}

	s.mutex.Lock()
	record := table.Record{
		"id": uuid.NewString(),
	}
	for _, column := range s.schema.Columns() {
		record[column.Key] = normalizeField(column.Key, fields[column.Key])
	}
	err := s.store.Insert(record)
	s.mutex.Unlock()
	if err != nil {
		return nil, nil, err
	}

	s.bridge.Notify()
	return record, nil, nil
}

func validateNewRecord(fields map[string]any) table.FieldErrors {
	fieldErrors := table.FieldErrors{}

	name := strings.TrimSpace(table.Stringify(fields["name"]))
	if name == "" {
		fieldErrors["name"] = "Name is required"
	}

	email := strings.TrimSpace(table.Stringify(fields["email"]))
	if email == "" {
		fieldErrors["email"] = "Email is required"
	} else if !emailPattern.MatchString(email) {
		fieldErrors["email"] = "Invalid email format"
	}

	age := strings.TrimSpace(table.Stringify(fields["age"]))
	if age != "" && !agePattern.MatchString(age) {
		fieldErrors["age"] = "Age must be a number"
	}

	return fieldErrors
}

func normalizeField(key string, value any) any {
	trimmed := strings.TrimSpace(table.Stringify(value))
	if key == "age" && trimmed != "" {
		age, _ := strconv.Atoi(trimmed)
		return age
	}
	return trimmed
}

func (s *Service) GetRecord(id string) (table.Record, error) {
	record, exists := s.store.Get(id)
	if !exists {
		return nil, table.ErrRecordNotFound
	}
	return record, nil
}

// UpdateRecord merges partial fields into an existing record.
func (s *Service) UpdateRecord(id string, partial map[string]any) (table.Record, error) {
	record, err := s.store.Update(id, partial)
	if err != nil {
		return nil, err
	}

	s.bridge.Notify()
	return record, nil
}

// DeleteRecord removes the record and discards any pending edit session for
// it. Deleting a missing id is a no-op.
func (s *Service) DeleteRecord(id string) {
	s.mutex.Lock()
	s.sessions.Cancel(id)
	s.mutex.Unlock()

	s.store.Delete(id)
	s.bridge.Notify()
}

// Records exposes the full store content in insertion order.
func (s *Service) Records() []table.Record {
	return s.store.Records()
}
