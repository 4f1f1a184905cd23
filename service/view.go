package service

import (
	"tableman/table"
)

// View derives the current page from the live store and view parameters.
func (s *Service) View() table.ViewResult {
	s.mutex.RLock()
	params := s.params
	s.mutex.RUnlock()

	return table.View(s.store.Records(), params)
}

func (s *Service) Params() table.ViewParams {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.params
}

// SetSearch updates the live search term and resets pagination to the first
// page.
func (s *Service) SetSearch(term string) {
	s.mutex.Lock()
	s.params.SearchTerm = term
	s.params.Page = 0
	s.mutex.Unlock()

	s.bridge.Notify()
}

func (s *Service) SetPage(page int) {
	if page < 0 {
		page = 0
	}

	s.mutex.Lock()
	s.params.Page = page
	s.mutex.Unlock()

	s.bridge.Notify()
}

// SetRowsPerPage switches the page size and resets to the first page.
func (s *Service) SetRowsPerPage(rowsPerPage int) error {
	valid := false
	for _, option := range table.RowsPerPageOptions {
		if rowsPerPage == option {
			valid = true
			break
		}
	}
	if !valid {
		return ErrInvalidRowsPerPage
	}

	s.mutex.Lock()
	s.params.RowsPerPage = rowsPerPage
	s.params.Page = 0
	s.mutex.Unlock()

	s.bridge.Notify()
	return nil
}

func (s *Service) SetSort(config table.SortConfig) error {
	if config.Key != "" && config.Direction != table.DirectionAsc && config.Direction != table.DirectionDesc {
		return ErrInvalidDirection
	}
	if config.Direction == "" {
		config.Direction = table.DirectionAsc
	}

	s.mutex.Lock()
	s.params.Sort = config
	s.mutex.Unlock()

	s.bridge.Notify()
	return nil
}

// SortOn sorts by the given column, toggling to descending when it is already
// the ascending sort key.
func (s *Service) SortOn(key string) table.SortConfig {
	s.mutex.Lock()
	direction := table.DirectionAsc
	if s.params.Sort.Key == key && s.params.Sort.Direction == table.DirectionAsc {
		direction = table.DirectionDesc
	}
	s.params.Sort = table.SortConfig{Key: key, Direction: direction}
	config := s.params.Sort
	s.mutex.Unlock()

	s.bridge.Notify()
	return config
}

type Stats struct {
	TotalRecords    int `json:"totalRecords"`
	VisibleColumns  int `json:"visibleColumns"`
	FilteredResults int `json:"filteredResults"`
}

// GetStats backs the header cards: total records, visible column count and
// the filtered result count for the live search term.
func (s *Service) GetStats() Stats {
	s.mutex.RLock()
	term := s.params.SearchTerm
	visible := len(s.schema.Visible())
	s.mutex.RUnlock()

	records := s.store.Records()

	return Stats{
		TotalRecords:    len(records),
		VisibleColumns:  visible,
		FilteredResults: len(table.Filter(records, term)),
	}
}
