package table

import (
	"testing"

	. "github.com/fulldump/biff"
)

func TestStoreInsert(t *testing.T) {

	// Setup
	s := NewStore()

	// Run
	err := s.Insert(Record{"id": "1", "name": "Pablo"})

	// Check
	AssertNil(err)
	AssertEqual(s.Len(), 1)
	record, exists := s.Get("1")
	AssertEqual(exists, true)
	AssertEqual(record["name"], "Pablo")
}

func TestStoreInsertDuplicateID(t *testing.T) {

	// Setup
	s := NewStore()
	s.Insert(Record{"id": "1", "name": "Pablo"})

	// Run
	err := s.Insert(Record{"id": "1", "name": "Sara"})

	// Check
	AssertEqual(err, ErrDuplicateID)
	AssertEqual(s.Len(), 1)
}

func TestStoreInsertMissingID(t *testing.T) {
	s := NewStore()
	AssertEqual(s.Insert(Record{"name": "Pablo"}), ErrMissingID)
}

func TestStoreInsertionOrder(t *testing.T) {

	// Setup
	s := NewStore()
	s.Insert(Record{"id": "b", "name": "Beta"})
	s.Insert(Record{"id": "a", "name": "Alpha"})
	s.Insert(Record{"id": "c", "name": "Gamma"})

	// Run
	records := s.Records()

	// Check: enumeration follows insertion, not id order
	AssertEqual(records[0].ID(), "b")
	AssertEqual(records[1].ID(), "a")
	AssertEqual(records[2].ID(), "c")
}

func TestStoreUpdateMerge(t *testing.T) {

	// Setup
	s := NewStore()
	s.Insert(Record{"id": "1", "name": "Pablo", "age": 30, "role": "Developer"})

	// Run
	merged, err := s.Update("1", map[string]any{"age": 31})

	// Check: untouched fields survive the merge
	AssertNil(err)
	AssertEqualJson(merged["age"], 31)
	AssertEqual(merged["name"], "Pablo")
	AssertEqual(merged["role"], "Developer")
}

func TestStoreUpdateIDImmutable(t *testing.T) {

	// Setup
	s := NewStore()
	s.Insert(Record{"id": "1", "name": "Pablo"})

	// Run
	merged, err := s.Update("1", map[string]any{"id": "evil", "name": "Sara"})

	// Check
	AssertNil(err)
	AssertEqual(merged.ID(), "1")
	AssertEqual(merged["name"], "Sara")
	_, exists := s.Get("evil")
	AssertEqual(exists, false)
}

func TestStoreUpdateNotFound(t *testing.T) {
	s := NewStore()
	_, err := s.Update("invented", map[string]any{"name": "Nope"})
	AssertEqual(err, ErrRecordNotFound)
}

func TestStoreDelete(t *testing.T) {

	// Setup
	s := NewStore()
	s.Insert(Record{"id": "1", "name": "Pablo"})
	s.Insert(Record{"id": "2", "name": "Sara"})
	s.Insert(Record{"id": "3", "name": "Ana"})

	// Run
	s.Delete("2")
	s.Delete("2") // deleting twice is a no-op

	// Check: remaining records keep their order
	records := s.Records()
	AssertEqual(len(records), 2)
	AssertEqual(records[0].ID(), "1")
	AssertEqual(records[1].ID(), "3")
}

func TestStoreBulkInsert(t *testing.T) {

	// Setup
	s := NewStore()
	s.Insert(Record{"id": "1", "name": "Pablo"})

	// Run
	err := s.BulkInsert([]Record{
		{"id": "2", "name": "Sara"},
		{"id": "3", "name": "Ana"},
	})

	// Check
	AssertNil(err)
	AssertEqual(s.Len(), 3)
}

func TestStoreBackfill(t *testing.T) {

	// Setup
	s := NewStore()
	s.Insert(Record{"id": "1", "name": "Pablo"})
	s.Insert(Record{"id": "2", "name": "Sara", "salary": "1000"})

	// Run
	s.Backfill("salary")

	// Check: missing values filled, present values untouched
	first, _ := s.Get("1")
	second, _ := s.Get("2")
	AssertEqual(first["salary"], "")
	AssertEqual(second["salary"], "1000")
}

func TestStoreBackfillCloneOnWrite(t *testing.T) {

	// Setup
	s := NewStore()
	s.Insert(Record{"id": "1", "name": "Pablo"})
	before := s.Records()

	// Run
	s.Backfill("salary")

	// Check: rows handed out earlier are never mutated in place
	_, exists := before[0]["salary"]
	AssertEqual(exists, false)
	current, _ := s.Get("1")
	AssertEqual(current["salary"], "")
}

func TestStoreLoad(t *testing.T) {

	// Setup
	s := NewStore()
	s.Insert(Record{"id": "old"})

	// Run
	err := s.Load(SeedRecords())

	// Check
	AssertNil(err)
	AssertEqual(s.Len(), 8)
	_, exists := s.Get("old")
	AssertEqual(exists, false)
}
