package api

import (
	"context"

	"github.com/fulldump/box"

	"tableman/table"
)

// beginEdit opens an edit session for the record and returns the buffer,
// seeded with the current field values.
func beginEdit(ctx context.Context) (table.Record, error) {
	s := GetServicer(ctx)

	id := box.GetUrlParameter(ctx, "recordId")
	err := s.BeginEdit(id)
	if err != nil {
		return nil, err
	}

	return s.EditBuffer(id)
}
