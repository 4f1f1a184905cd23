package api

import (
	"context"

	"github.com/fulldump/box"

	"tableman/table"
)

func getRecord(ctx context.Context) (table.Record, error) {
	s := GetServicer(ctx)

	return s.GetRecord(box.GetUrlParameter(ctx, "recordId"))
}
