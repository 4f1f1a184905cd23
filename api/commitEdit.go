package api

import (
	"context"
	"net/http"

	"github.com/fulldump/box"
)

type commitEditResponse struct {
	Record      map[string]any    `json:"record,omitempty"`
	FieldErrors map[string]string `json:"fieldErrors,omitempty"`
}

// commitEdit validates the buffer and merges it into the store. On validation
// failure the record stays editing and the field errors come back as data.
func commitEdit(ctx context.Context, w http.ResponseWriter) (*commitEditResponse, error) {
	s := GetServicer(ctx)

	id := box.GetUrlParameter(ctx, "recordId")
	fieldErrors, err := s.CommitEdit(id)
	if err != nil {
		return nil, err
	}
	if len(fieldErrors) > 0 {
		w.WriteHeader(http.StatusBadRequest)
		return &commitEditResponse{FieldErrors: fieldErrors}, nil
	}

	record, err := s.GetRecord(id)
	if err != nil {
		return nil, err
	}
	return &commitEditResponse{Record: record}, nil
}
