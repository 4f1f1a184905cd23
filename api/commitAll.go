package api

import (
	"context"

	"tableman/table"
)

type commitAllResponse struct {
	Failed  map[string]table.FieldErrors `json:"failed"`
	Editing []string                     `json:"editing"`
}

// commitAll commits every editing record with its own buffer. Records whose
// buffer fails validation stay editing and are reported by id.
func commitAll(ctx context.Context) (*commitAllResponse, error) {
	s := GetServicer(ctx)

	failed, err := s.CommitAll()
	if err != nil {
		return nil, err
	}

	return &commitAllResponse{
		Failed:  failed,
		Editing: s.Editing(),
	}, nil
}
