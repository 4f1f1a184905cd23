package api

import (
	"context"

	"github.com/fulldump/box"

	"tableman/table"
)

// listColumns returns the registry in sequence order. With ?visible=true only
// the visible subset comes back, in display order.
func listColumns(ctx context.Context) ([]table.Column, error) {
	s := GetServicer(ctx)

	if box.GetRequest(ctx).URL.Query().Get("visible") == "true" {
		return s.VisibleColumns(), nil
	}
	return s.Columns(), nil
}
