package api

import (
	"context"
	"net/http"

	"github.com/fulldump/box"
)

func cancelEdit(ctx context.Context, w http.ResponseWriter) error {
	s := GetServicer(ctx)

	s.CancelEdit(box.GetUrlParameter(ctx, "recordId"))

	w.WriteHeader(http.StatusNoContent)
	return nil
}
