package api

import (
	"context"

	"github.com/fulldump/box"

	"tableman/table"
)

type setFieldRequest struct {
	Key   string `json:"key"`
	Value any    `json:"value"`
}

// setField stages a pending value in the edit buffer. The store is untouched
// until commit.
func setField(ctx context.Context, input *setFieldRequest) (table.Record, error) {
	s := GetServicer(ctx)

	id := box.GetUrlParameter(ctx, "recordId")
	err := s.SetEditField(id, input.Key, input.Value)
	if err != nil {
		return nil, err
	}

	return s.EditBuffer(id)
}
