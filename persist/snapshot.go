package persist

import (
	"tableman/table"
)

// Snapshot is the durable payload: the whole table state plus ui preferences.
// View parameters ride along for session continuity even though they are not
// record data.
type Snapshot struct {
	Table TableState `json:"table"`
	UI    UIState    `json:"ui"`
}

type TableState struct {
	Data           []table.Record    `json:"data"`
	VisibleColumns []table.Column    `json:"visibleColumns"`
	SearchTerm     string            `json:"searchTerm"`
	Page           int               `json:"page"`
	RowsPerPage    int               `json:"rowsPerPage"`
	SortConfig     table.SortConfig  `json:"sortConfig"`
}

type UIState struct {
	IsDarkMode bool `json:"isDarkMode"`
}
