package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/SierraSoftworks/connor"
)

// find runs a structured filter over the full store, beyond the substring
// search of the view pipeline. Matching records stream out one JSON document
// per line.
func find(ctx context.Context, w http.ResponseWriter, r *http.Request) error {

	requestBody, err := io.ReadAll(r.Body)
	if err != nil {
		return err
	}

	params := &struct {
		Filter map[string]interface{} `json:"filter"`
		Skip   int64                  `json:"skip"`
		Limit  int64                  `json:"limit"`
	}{
		Filter: map[string]interface{}{},
		Skip:   0,
		Limit:  16,
	}
	if len(requestBody) > 0 {
		err = json.Unmarshal(requestBody, params)
		if err != nil {
			return err
		}
	}

	s := GetServicer(ctx)

	hasFilter := len(params.Filter) > 0
	skip := params.Skip
	limit := params.Limit

	jsonWriter := json.NewEncoder(w)
	for _, record := range s.Records() {

		if limit == 0 {
			break
		}

		if hasFilter {
			match, err := connor.Match(params.Filter, map[string]interface{}(record))
			if err != nil {
				return fmt.Errorf("match: %w", err)
			}
			if !match {
				continue
			}
		}

		if skip > 0 {
			skip--
			continue
		}

		limit--
		jsonWriter.Encode(record)
	}

	return nil
}
