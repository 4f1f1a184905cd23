package api

import (
	"context"

	"tableman/table"
)

// getTable returns the derived view: the current page plus both counts.
func getTable(ctx context.Context) (*table.ViewResult, error) {
	s := GetServicer(ctx)

	result := s.View()
	return &result, nil
}
