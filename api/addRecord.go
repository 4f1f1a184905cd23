package api

import (
	"context"
	"net/http"
)

type addRecordResponse struct {
	Record      map[string]any    `json:"record,omitempty"`
	FieldErrors map[string]string `json:"fieldErrors,omitempty"`
}

// addRecord validates the add-row form and inserts a record with a fresh id.
// Validation failures are returned per field, never as a fatal error.
func addRecord(ctx context.Context, w http.ResponseWriter, input *map[string]any) (*addRecordResponse, error) {
	s := GetServicer(ctx)

	record, fieldErrors, err := s.AddRecord(*input)
	if err != nil {
		return nil, err
	}
	if len(fieldErrors) > 0 {
		w.WriteHeader(http.StatusBadRequest)
		return &addRecordResponse{FieldErrors: fieldErrors}, nil
	}

	w.WriteHeader(http.StatusCreated)
	return &addRecordResponse{Record: record}, nil
}
