package api

import (
	"context"

	"tableman/table"
)

func getView(ctx context.Context) (*table.ViewParams, error) {
	s := GetServicer(ctx)

	params := s.Params()
	return &params, nil
}
