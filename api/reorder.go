package api

import (
	"context"

	"tableman/table"
)

type reorderRequest struct {
	Keys []string `json:"keys"`
}

// reorder replaces the column sequence wholesale. The keys must be a
// permutation of the current set; the drag gesture itself is a client
// concern.
func reorder(ctx context.Context, input *reorderRequest) ([]table.Column, error) {
	s := GetServicer(ctx)

	err := s.ReorderColumns(input.Keys)
	if err != nil {
		return nil, err
	}

	return s.Columns(), nil
}
