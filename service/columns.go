package service

import (
	"tableman/table"
)

// AddColumn registers a new column and backfills every existing record with
// an empty value for it.
func (s *Service) AddColumn(label string) (table.Column, error) {
	s.mutex.Lock()
	column, err := s.schema.AddColumn(label)
	s.mutex.Unlock()
	if err != nil {
		return table.Column{}, err
	}

	s.store.Backfill(column.Key)
	s.bridge.Notify()
	return column, nil
}

func (s *Service) ToggleColumn(key string) {
	s.mutex.Lock()
	s.schema.ToggleVisibility(key)
	s.mutex.Unlock()

	s.bridge.Notify()
}

func (s *Service) ReorderColumns(keys []string) error {
	s.mutex.Lock()
	err := s.schema.Reorder(keys)
	s.mutex.Unlock()
	if err != nil {
		return err
	}

	s.bridge.Notify()
	return nil
}

func (s *Service) SetColumnLabel(key, label string) error {
	s.mutex.Lock()
	err := s.schema.SetLabel(key, label)
	s.mutex.Unlock()
	if err != nil {
		return err
	}

	s.bridge.Notify()
	return nil
}

func (s *Service) Columns() []table.Column {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.schema.Columns()
}

func (s *Service) VisibleColumns() []table.Column {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.schema.Visible()
}
