package service

import (
	"tableman/table"
)

func (s *Service) BeginEdit(id string) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return s.sessions.Begin(id)
}

func (s *Service) SetEditField(id, key string, value any) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return s.sessions.SetField(id, key, value)
}

func (s *Service) CommitEdit(id string) (table.FieldErrors, error) {
	s.mutex.Lock()
	fieldErrors, err := s.sessions.Commit(id)
	s.mutex.Unlock()
	if err != nil {
		return nil, err
	}
	if len(fieldErrors) > 0 {
		return fieldErrors, nil
	}

	s.bridge.Notify()
	return nil, nil
}

func (s *Service) CancelEdit(id string) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.sessions.Cancel(id)
}

// CommitAll commits every editing record with its own buffer; rows that fail
// validation stay editing and are reported by id.
func (s *Service) CommitAll() (map[string]table.FieldErrors, error) {
	s.mutex.Lock()
	failed, err := s.sessions.CommitAll()
	s.mutex.Unlock()
	if err != nil {
		return nil, err
	}

	s.bridge.Notify()
	return failed, nil
}

func (s *Service) CancelAll() {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.sessions.CancelAll()
}

func (s *Service) Editing() []string {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.sessions.Editing()
}

func (s *Service) EditBuffer(id string) (table.Record, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	buffer, editing := s.sessions.Buffer(id)
	if !editing {
		return nil, table.ErrNotEditing
	}
	return buffer, nil
}
