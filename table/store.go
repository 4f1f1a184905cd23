package table

import (
	"encoding/json"
	"fmt"
	"sync"

	jsonpatch "github.com/evanphx/json-patch"
)

// Store is the mutable record collection. Records keep insertion order; ids
// are unique and immutable. Mutations are serialized by an internal mutex so
// a half-applied merge is never observable.
type Store struct {
	rows      []Record
	rowsMutex *sync.Mutex
	ids       *idIndex
}

func NewStore() *Store {
	return &Store{
		rows:      []Record{},
		rowsMutex: &sync.Mutex{},
		ids:       newIDIndex(),
	}
}

// Load replaces the store content wholesale, typically from a restored
// snapshot or seed data.
func (s *Store) Load(records []Record) error {
	s.rowsMutex.Lock()
	defer s.rowsMutex.Unlock()

	rows := make([]Record, 0, len(records))
	ids := newIDIndex()
	for _, record := range records {
		err := ids.Add(record)
		if err != nil {
			return fmt.Errorf("load record '%s': %w", record.ID(), err)
		}
		rows = append(rows, record)
	}

	s.rows = rows
	s.ids = ids
	return nil
}

func (s *Store) Insert(record Record) error {
	s.rowsMutex.Lock()
	defer s.rowsMutex.Unlock()
	return s.insert(record)
}

func (s *Store) insert(record Record) error {
	err := s.ids.Add(record)
	if err != nil {
		return err
	}
	s.rows = append(s.rows, record)
	return nil
}

// BulkInsert appends all records. Ids must be pre-generated and unique; the
// batch is expected to be pre-validated, so a duplicate here is a programmer
// error and aborts the remainder.
func (s *Store) BulkInsert(records []Record) error {
	s.rowsMutex.Lock()
	defer s.rowsMutex.Unlock()

	for _, record := range records {
		err := s.insert(record)
		if err != nil {
			return err
		}
	}
	return nil
}

// Update merges partial fields into the record with the given id, RFC 7386
// style. The id field itself is immutable and survives any patch.
func (s *Store) Update(id string, partial map[string]any) (Record, error) {
	s.rowsMutex.Lock()
	defer s.rowsMutex.Unlock()

	current, exists := s.ids.Get(id)
	if !exists {
		return nil, ErrRecordNotFound
	}

	currentPayload, err := json.Marshal(current)
	if err != nil {
		return nil, fmt.Errorf("json encode record: %w", err)
	}
	patchPayload, err := json.Marshal(partial)
	if err != nil {
		return nil, fmt.Errorf("json encode patch: %w", err)
	}

	mergedPayload, err := jsonpatch.MergePatch(currentPayload, patchPayload)
	if err != nil {
		return nil, fmt.Errorf("cannot apply patch: %w", err)
	}

	merged := Record{}
	err = json.Unmarshal(mergedPayload, &merged)
	if err != nil {
		return nil, fmt.Errorf("json decode merged record: %w", err)
	}
	merged["id"] = id

	for i := range s.rows {
		if s.rows[i].ID() == id {
			s.rows[i] = merged
			break
		}
	}
	s.ids.Replace(merged)

	return merged, nil
}

// Delete removes the record with that id. Deleting a missing id is a no-op.
func (s *Store) Delete(id string) {
	s.rowsMutex.Lock()
	defer s.rowsMutex.Unlock()

	if _, exists := s.ids.Get(id); !exists {
		return
	}

	for i := range s.rows {
		if s.rows[i].ID() == id {
			s.rows = append(s.rows[:i], s.rows[i+1:]...)
			break
		}
	}
	s.ids.Remove(id)
}

func (s *Store) Get(id string) (Record, bool) {
	s.rowsMutex.Lock()
	defer s.rowsMutex.Unlock()
	return s.ids.Get(id)
}

// Records returns the full sequence in insertion order. The slice is a copy,
// the records are shared: callers must not mutate them.
func (s *Store) Records() []Record {
	s.rowsMutex.Lock()
	defer s.rowsMutex.Unlock()

	records := make([]Record, len(s.rows))
	copy(records, s.rows)
	return records
}

func (s *Store) Len() int {
	s.rowsMutex.Lock()
	defer s.rowsMutex.Unlock()
	return len(s.rows)
}

// Backfill gives every record that lacks the key an empty value. Runs when a
// column is added after records already exist. Records are replaced, never
// mutated in place, so rows handed out earlier stay safe to read.
func (s *Store) Backfill(key string) {
	s.rowsMutex.Lock()
	defer s.rowsMutex.Unlock()

	for i, record := range s.rows {
		if _, exists := record[key]; exists {
			continue
		}
		filled := record.Clone()
		filled[key] = ""
		s.rows[i] = filled
		s.ids.Replace(filled)
	}
}
