package csvio

import (
	"bytes"
	"strings"
	"testing"

	. "github.com/fulldump/biff"

	"tableman/table"
)

func TestExport(t *testing.T) {

	// Setup
	records := []table.Record{
		{"id": "1", "name": "Pablo", "email": "pablo@example.com", "age": 30, "role": "Developer"},
		{"id": "2", "name": "Sara", "email": "sara@example.com", "age": 28, "role": "Designer"},
	}
	columns := []table.Column{
		{Key: "name", Label: "Name", Visible: true},
		{Key: "email", Label: "Email", Visible: true},
		{Key: "age", Label: "Age", Visible: true},
	}

	// Run
	buffer := &bytes.Buffer{}
	err := Export(buffer, records, columns)

	// Check: header carries keys, hidden fields stay out
	AssertNil(err)
	AssertEqual(buffer.String(), "name,email,age\n"+
		"Pablo,pablo@example.com,30\n"+
		"Sara,sara@example.com,28\n")
}

func TestExportMissingValues(t *testing.T) {

	// Setup: a record without the column renders an empty cell
	records := []table.Record{
		{"id": "1", "name": "Pablo"},
	}
	columns := []table.Column{
		{Key: "name"},
		{Key: "email"},
	}

	// Run
	buffer := &bytes.Buffer{}
	err := Export(buffer, records, columns)

	// Check
	AssertNil(err)
	AssertEqual(buffer.String(), "name,email\nPablo,\n")
}

func TestExportQuoting(t *testing.T) {

	// Setup
	records := []table.Record{
		{"id": "1", "name": "Doe, John", "role": "He said \"hi\""},
	}
	columns := []table.Column{
		{Key: "name"},
		{Key: "role"},
	}

	// Run
	buffer := &bytes.Buffer{}
	Export(buffer, records, columns)

	// Check
	AssertEqual(buffer.String(), "name,role\n\"Doe, John\",\"He said \"\"hi\"\"\"\n")
}

func TestExportRoundTrip(t *testing.T) {

	// Setup
	records := table.SeedRecords()
	columns := table.SeedColumns() // only the visible subset exports
	visible := []table.Column{}
	for _, column := range columns {
		if column.Visible {
			visible = append(visible, column)
		}
	}

	// Run: export then import the result back
	buffer := &bytes.Buffer{}
	AssertNil(Export(buffer, records, visible))
	result := Import("export.csv", strings.NewReader(buffer.String()))

	// Check: every exported row re-imports cleanly with fresh ids
	AssertEqual(result.OK(), true)
	AssertEqual(result.Valid, len(records))
	AssertEqual(result.Records[0]["name"], "John Doe")
	AssertEqual(result.Records[0]["age"], 30)
	AssertNotEqual(result.Records[0].ID(), "1")
}
