package api

import (
	"context"

	"github.com/fulldump/box"

	"tableman/table"
)

type setLabelRequest struct {
	Label string `json:"label"`
}

func setLabel(ctx context.Context, input *setLabelRequest) ([]table.Column, error) {
	s := GetServicer(ctx)

	err := s.SetColumnLabel(box.GetUrlParameter(ctx, "columnKey"), input.Label)
	if err != nil {
		return nil, err
	}

	return s.Columns(), nil
}
