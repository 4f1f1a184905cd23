package api

import (
	"context"
	"encoding/json"
	"net/http"
)

// importRecords takes a raw CSV payload and commits it all-or-nothing. The
// response always carries the summary counts and every row error.
func importRecords(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	s := GetServicer(ctx)

	filename := r.URL.Query().Get("filename")
	if filename == "" {
		filename = "import.csv"
	}

	result, err := s.Import(filename, r.Body)
	if err != nil {
		return err
	}

	if !result.OK() {
		w.WriteHeader(http.StatusBadRequest)
	} else {
		w.WriteHeader(http.StatusCreated)
	}

	return json.NewEncoder(w).Encode(result)
}
