package api

import (
	"context"
	"net/http"

	"github.com/fulldump/box"
)

// deleteRecord removes the record. Deleting a missing id is a no-op, so the
// operation is idempotent.
func deleteRecord(ctx context.Context, w http.ResponseWriter) error {
	s := GetServicer(ctx)

	s.DeleteRecord(box.GetUrlParameter(ctx, "recordId"))

	w.WriteHeader(http.StatusNoContent)
	return nil
}
