package api

import (
	"context"

	"tableman/table"
)

type setViewRequest struct {
	SearchTerm  *string           `json:"searchTerm"`
	Page        *int              `json:"page"`
	RowsPerPage *int              `json:"rowsPerPage"`
	SortConfig  *table.SortConfig `json:"sortConfig"`
}

// setView applies the provided view parameters. Changing the page size or the
// search term resets pagination to the first page.
func setView(ctx context.Context, input *setViewRequest) (*table.ViewParams, error) {
	s := GetServicer(ctx)

	if input.SearchTerm != nil {
		s.SetSearch(*input.SearchTerm)
	}
	if input.RowsPerPage != nil {
		err := s.SetRowsPerPage(*input.RowsPerPage)
		if err != nil {
			return nil, err
		}
	}
	if input.SortConfig != nil {
		err := s.SetSort(*input.SortConfig)
		if err != nil {
			return nil, err
		}
	}
	if input.Page != nil {
		s.SetPage(*input.Page)
	}

	params := s.Params()
	return &params, nil
}
