package api

import (
	"context"
	"net/http"
)

func cancelAll(ctx context.Context, w http.ResponseWriter) error {
	s := GetServicer(ctx)

	s.CancelAll()

	w.WriteHeader(http.StatusNoContent)
	return nil
}
