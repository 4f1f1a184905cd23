package api

import (
	"context"
)

// listEdits returns the ids of records currently in editing state.
func listEdits(ctx context.Context) ([]string, error) {
	s := GetServicer(ctx)
	return s.Editing(), nil
}
