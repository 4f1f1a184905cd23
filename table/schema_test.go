package table

import (
	"testing"

	. "github.com/fulldump/biff"
)

func TestDeriveKey(t *testing.T) {
	AssertEqual(DeriveKey("Phone Number"), "phone_number")
	AssertEqual(DeriveKey("  Start   Date "), "start_date")
	AssertEqual(DeriveKey("Salary"), "salary")
}

func TestSchemaAddColumn(t *testing.T) {

	// Setup
	s := NewSchema(SeedColumns())

	// Run
	column, err := s.AddColumn("Phone Number")

	// Check
	AssertNil(err)
	AssertEqual(column.Key, "phone_number")
	AssertEqual(column.Label, "Phone Number")
	AssertEqual(column.Visible, true)
	AssertEqual(len(s.Columns()), 7)
}

func TestSchemaAddColumnDuplicate(t *testing.T) {

	// Setup
	s := NewSchema(SeedColumns())

	// Run
	_, err := s.AddColumn("Email")

	// Check
	AssertEqual(err, ErrDuplicateColumn)
	AssertEqual(len(s.Columns()), 6)
}

func TestSchemaToggleVisibility(t *testing.T) {

	// Setup
	s := NewSchema(SeedColumns())
	AssertEqual(len(s.Visible()), 4)

	// Run
	s.ToggleVisibility("department")
	s.ToggleVisibility("name")
	s.ToggleVisibility("invented") // no-op

	// Check
	visible := s.Visible()
	AssertEqual(len(visible), 4)
	AssertEqual(visible[0].Key, "email")
	AssertEqual(len(s.Columns()), 6)
}

func TestSchemaReorder(t *testing.T) {

	// Setup
	s := NewSchema(SeedColumns())

	// Run
	err := s.Reorder([]string{"email", "name", "age", "role", "location", "department"})

	// Check
	AssertNil(err)
	columns := s.Columns()
	AssertEqual(columns[0].Key, "email")
	AssertEqual(columns[1].Key, "name")
	AssertEqual(columns[5].Key, "department")
}

func TestSchemaReorderInvalid(t *testing.T) {

	// Setup
	s := NewSchema(SeedColumns())

	// Run & Check
	AssertEqual(s.Reorder([]string{"name", "email"}), ErrInvalidPermutation)
	AssertEqual(s.Reorder([]string{"name", "email", "age", "role", "department", "invented"}), ErrInvalidPermutation)
	AssertEqual(s.Reorder([]string{"name", "name", "age", "role", "department", "location"}), ErrInvalidPermutation)

	// Failed reorders leave the sequence untouched
	AssertEqual(s.Columns()[0].Key, "name")
}

func TestSchemaSetLabel(t *testing.T) {

	// Setup
	s := NewSchema(SeedColumns())

	// Run
	err := s.SetLabel("role", "Job Title")

	// Check
	AssertNil(err)
	columns := s.Columns()
	AssertEqual(columns[3].Key, "role") // key is immutable
	AssertEqual(columns[3].Label, "Job Title")

	AssertEqual(s.SetLabel("invented", "Nope"), ErrColumnNotFound)
}
