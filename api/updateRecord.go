package api

import (
	"context"

	"github.com/fulldump/box"

	"tableman/table"
)

// updateRecord merges partial fields into an existing record. The id field is
// immutable and survives any patch.
func updateRecord(ctx context.Context, input *map[string]any) (table.Record, error) {
	s := GetServicer(ctx)

	return s.UpdateRecord(box.GetUrlParameter(ctx, "recordId"), *input)
}
