package table

import (
	"sort"
	"strings"
)

const (
	DirectionAsc  = "asc"
	DirectionDesc = "desc"
)

// RowsPerPageOptions are the page sizes the pagination control offers.
var RowsPerPageOptions = []int{5, 10, 25, 50}

type SortConfig struct {
	Key       string `json:"key"`
	Direction string `json:"direction"`
}

type ViewParams struct {
	SearchTerm  string     `json:"searchTerm"`
	Sort        SortConfig `json:"sortConfig"`
	Page        int        `json:"page"`
	RowsPerPage int        `json:"rowsPerPage"`
}

type ViewResult struct {
	Rows          []Record `json:"rows"`
	FilteredCount int      `json:"filteredCount"`
	TotalCount    int      `json:"totalCount"`
}

// View derives the exact page to display: filter, stable sort, paginate. Pure
// function, no side effects; both the unfiltered total and the filtered count
// are exposed.
func View(records []Record, params ViewParams) ViewResult {
	filtered := Filter(records, params.SearchTerm)
	sorted := Sort(filtered, params.Sort)

	return ViewResult{
		Rows:          Paginate(sorted, params.Page, params.RowsPerPage),
		FilteredCount: len(filtered),
		TotalCount:    len(records),
	}
}

// Filter keeps a record iff any of its field values, stringified, contains
// the term as a case-insensitive substring. An empty term keeps everything.
func Filter(records []Record, term string) []Record {
	if term == "" {
		return records
	}

	needle := strings.ToLower(term)
	filtered := []Record{}
	for _, record := range records {
		for _, value := range record {
			if strings.Contains(strings.ToLower(Stringify(value)), needle) {
				filtered = append(filtered, record)
				break
			}
		}
	}
	return filtered
}

// Sort orders records by the configured field. The sort is stable: ties keep
// their prior relative order, so repeated sorts are deterministic and
// reversing the direction reverses only non-tied elements.
func Sort(records []Record, config SortConfig) []Record {
	if config.Key == "" {
		return records
	}

	sorted := make([]Record, len(records))
	copy(sorted, records)

	sort.SliceStable(sorted, func(i, j int) bool {
		result := Compare(sorted[i][config.Key], sorted[j][config.Key])
		if config.Direction == DirectionDesc {
			return result > 0
		}
		return result < 0
	})

	return sorted
}

// Paginate slices [page*rowsPerPage, page*rowsPerPage+rowsPerPage). An
// out-of-range page yields an empty slice, no error and no clamping.
func Paginate(records []Record, page, rowsPerPage int) []Record {
	if page < 0 || rowsPerPage <= 0 {
		return []Record{}
	}

	start := page * rowsPerPage
	if start >= len(records) {
		return []Record{}
	}

	end := start + rowsPerPage
	if end > len(records) {
		end = len(records)
	}

	return records[start:end]
}
