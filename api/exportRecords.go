package api

import (
	"context"
	"net/http"
)

// exportRecords streams the current filtered view, visible columns only, as
// a CSV download.
func exportRecords(ctx context.Context, w http.ResponseWriter) error {
	s := GetServicer(ctx)

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="table-data.csv"`)

	return s.Export(w)
}
