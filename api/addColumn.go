package api

import (
	"context"
	"net/http"

	"tableman/table"
)

type addColumnRequest struct {
	Label string `json:"label"`
}

// addColumn registers a new column; its key is derived from the label and
// every existing record is backfilled with an empty value.
func addColumn(ctx context.Context, w http.ResponseWriter, input *addColumnRequest) (*table.Column, error) {
	s := GetServicer(ctx)

	column, err := s.AddColumn(input.Label)
	if err != nil {
		return nil, err
	}

	w.WriteHeader(http.StatusCreated)
	return &column, nil
}
