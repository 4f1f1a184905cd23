package api

import (
	"context"

	"tableman/table"
)

// listRecords returns the full store in insertion order, ignoring the view
// parameters.
func listRecords(ctx context.Context) ([]table.Record, error) {
	s := GetServicer(ctx)
	return s.Records(), nil
}
