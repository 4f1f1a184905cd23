package api

import (
	"context"

	"github.com/fulldump/box"

	"tableman/table"
)

// toggle flips a column's visibility. Unknown keys are a no-op, matching the
// column manager behavior.
func toggle(ctx context.Context) ([]table.Column, error) {
	s := GetServicer(ctx)

	s.ToggleColumn(box.GetUrlParameter(ctx, "columnKey"))
	return s.Columns(), nil
}
