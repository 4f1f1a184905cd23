package api

import (
	"context"

	"tableman/table"
)

type sortOnRequest struct {
	Key string `json:"key"`
}

// sortOn sorts by a column, toggling to descending when the column is
// already the ascending sort key.
func sortOn(ctx context.Context, input *sortOnRequest) (*table.SortConfig, error) {
	s := GetServicer(ctx)

	config := s.SortOn(input.Key)
	return &config, nil
}
