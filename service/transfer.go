package service

import (
	"io"

	"tableman/csvio"
	"tableman/table"
)

// Import runs the whole batch through validation and commits it only when
// every row is valid. An invalid batch leaves the store untouched and the
// result carries every row error.
func (s *Service) Import(filename string, payload io.Reader) (*csvio.Result, error) {
	result := csvio.Import(filename, payload)
	if !result.OK() || len(result.Records) == 0 {
		return result, nil
	}

	err := s.store.BulkInsert(result.Records)
	if err != nil {
		return nil, err
	}

	s.bridge.Notify()
	return result, nil
}

// Export writes the current filtered record set, visible columns only, in
// display order. The sort and pagination of the view do not apply.
func (s *Service) Export(w io.Writer) error {
	s.mutex.RLock()
	term := s.params.SearchTerm
	columns := s.schema.Visible()
	s.mutex.RUnlock()

	filtered := table.Filter(s.store.Records(), term)
	return csvio.Export(w, filtered, columns)
}
