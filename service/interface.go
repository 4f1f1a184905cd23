package service

import (
	"io"

	"tableman/csvio"
	"tableman/table"
)

// Servicer is the operations surface the API builds on.
type Servicer interface {
	GetStatus() string

	View() table.ViewResult
	Params() table.ViewParams
	SetSearch(term string)
	SetPage(page int)
	SetRowsPerPage(rowsPerPage int) error
	SetSort(config table.SortConfig) error
	SortOn(key string) table.SortConfig
	GetStats() Stats

	AddRecord(fields map[string]any) (table.Record, table.FieldErrors, error)
	GetRecord(id string) (table.Record, error)
	UpdateRecord(id string, partial map[string]any) (table.Record, error)
	DeleteRecord(id string)
	Records() []table.Record

	AddColumn(label string) (table.Column, error)
	ToggleColumn(key string)
	ReorderColumns(keys []string) error
	SetColumnLabel(key, label string) error
	Columns() []table.Column
	VisibleColumns() []table.Column

	BeginEdit(id string) error
	SetEditField(id, key string, value any) error
	CommitEdit(id string) (table.FieldErrors, error)
	CancelEdit(id string)
	CommitAll() (map[string]table.FieldErrors, error)
	CancelAll()
	Editing() []string
	EditBuffer(id string) (table.Record, error)

	Import(filename string, payload io.Reader) (*csvio.Result, error)
	Export(w io.Writer) error

	DarkMode() bool
	ToggleDarkMode() bool
}
