package csvio

import (
	"encoding/csv"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"tableman/table"
)

// RowError locates one validation failure: 1-based data row and column key.
// Row 0 with field "file" is the synthetic entry for file-level failures.
type RowError struct {
	Row     int    `json:"row"`
	Field   string `json:"field"`
	Message string `json:"message"`
}

type Result struct {
	Total   int            `json:"total"`
	Valid   int            `json:"valid"`
	Invalid int            `json:"invalid"`
	Errors  []RowError     `json:"errors"`
	Records []table.Record `json:"-"`
}

// OK reports whether the whole batch may be committed. The import is
// all-or-nothing: a single invalid row rejects every row.
func (r *Result) OK() bool {
	return len(r.Errors) == 0
}

var emailPattern = regexp.MustCompile(`\S+@\S+\.\S+`)

var baseFields = []string{"name", "email", "age", "role", "department", "location"}

// Import parses a delimited payload with a header row and validates every
// data row independently. All failures are reported as data; the returned
// records are only meant to be inserted when Result.OK().
func Import(filename string, payload io.Reader) *Result {
	result := &Result{Errors: []RowError{}}

	if !strings.HasSuffix(strings.ToLower(filename), ".csv") {
		result.Errors = append(result.Errors, RowError{Row: 0, Field: "file", Message: "Please select a valid CSV file"})
		return result
	}

	reader := csv.NewReader(payload)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		result.Errors = append(result.Errors, RowError{Row: 0, Field: "file", Message: "Failed to parse CSV: " + parseMessage(err)})
		return result
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	for {
		fields, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// A corrupt payload rejects the whole import, partial parse
			// results are discarded.
			return &Result{
				Errors: []RowError{{Row: 0, Field: "file", Message: "Failed to parse CSV: " + parseMessage(err)}},
			}
		}

		result.Total++
		row := map[string]string{}
		for i, value := range fields {
			if i < len(header) {
				row[header[i]] = value
			}
		}

		rowErrors := validateRow(row, result.Total)
		if len(rowErrors) > 0 {
			result.Invalid++
			result.Errors = append(result.Errors, rowErrors...)
			continue
		}

		result.Valid++
		result.Records = append(result.Records, normalizeRow(row, header))
	}

	return result
}

func validateRow(row map[string]string, n int) []RowError {
	rowErrors := []RowError{}

	if strings.TrimSpace(row["name"]) == "" {
		rowErrors = append(rowErrors, RowError{Row: n, Field: "name", Message: "Name is required"})
	}

	email := strings.TrimSpace(row["email"])
	if email == "" {
		rowErrors = append(rowErrors, RowError{Row: n, Field: "email", Message: "Email is required"})
	} else if !emailPattern.MatchString(email) {
		rowErrors = append(rowErrors, RowError{Row: n, Field: "email", Message: "Invalid email format"})
	}

	if age := strings.TrimSpace(row["age"]); age != "" {
		value, err := strconv.Atoi(age)
		if err != nil || value < 0 {
			rowErrors = append(rowErrors, RowError{Row: n, Field: "age", Message: "Age must be a valid positive number"})
		}
	}

	return rowErrors
}

// normalizeRow trims every value, coerces age to a number, defaults missing
// base fields to the empty string and assigns a fresh id.
func normalizeRow(row map[string]string, header []string) table.Record {
	record := table.Record{
		"id": uuid.NewString(),
	}

	for _, key := range header {
		if key == "" || key == "id" {
			continue
		}
		record[key] = strings.TrimSpace(row[key])
	}

	if age := strings.TrimSpace(row["age"]); age != "" {
		value, _ := strconv.Atoi(age)
		record["age"] = value
	}

	for _, key := range baseFields {
		if _, exists := record[key]; !exists {
			record[key] = ""
		}
	}

	return record
}

func parseMessage(err error) string {
	if parseErr, ok := err.(*csv.ParseError); ok {
		return parseErr.Err.Error()
	}
	return err.Error()
}
