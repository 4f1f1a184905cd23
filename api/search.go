package api

import (
	"context"

	"tableman/table"
)

type searchRequest struct {
	Term string `json:"term"`
}

// search sets the live substring filter and returns the re-derived view.
func search(ctx context.Context, input *searchRequest) (*table.ViewResult, error) {
	s := GetServicer(ctx)

	s.SetSearch(input.Term)

	result := s.View()
	return &result, nil
}
