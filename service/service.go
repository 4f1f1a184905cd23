package service

import (
	"errors"
	"log/slog"
	"sync"
	"time"

	"tableman/persist"
	"tableman/table"
)

const (
	StatusOpening   = "opening"
	StatusOperating = "operating"
	StatusClosing   = "closing"
)

var (
	ErrInvalidRowsPerPage = errors.New("rows per page must be one of 5, 10, 25, 50")
	ErrInvalidDirection   = errors.New("sort direction must be 'asc' or 'desc'")
)

type Config struct {
	DataFile string
	Debounce time.Duration
}

// Service is the single coordinating state container: it owns the schema, the
// record store, the edit sessions, the view parameters and the ui state, and
// serializes every mutation through one mutex. Each successful mutation
// schedules a debounced snapshot; snapshot failures never reach callers.
type Service struct {
	config *Config
	logger *slog.Logger

	mutex    *sync.RWMutex
	schema   *table.Schema
	store    *table.Store
	sessions *table.Sessions
	params   table.ViewParams
	darkMode bool

	bridge *persist.Bridge
	status string
	exit   chan struct{}
}

func NewService(config *Config, logger *slog.Logger) *Service {
	if config.Debounce == 0 {
		config.Debounce = persist.DefaultDebounce
	}

	store := table.NewStore()
	s := &Service{
		config:   config,
		logger:   logger,
		mutex:    &sync.RWMutex{},
		schema:   table.NewSchema(table.SeedColumns()),
		store:    store,
		sessions: table.NewSessions(store),
		params:   defaultParams(),
		status:   StatusOpening,
		exit:     make(chan struct{}),
	}
	s.bridge = persist.NewBridge(config.DataFile, config.Debounce, s.snapshot, logger)

	return s
}

func defaultParams() table.ViewParams {
	return table.ViewParams{
		SearchTerm:  "",
		Sort:        table.SortConfig{Key: "", Direction: table.DirectionAsc},
		Page:        0,
		RowsPerPage: 10,
	}
}

// Load restores the persisted snapshot, falling back to seed data when the
// snapshot is missing or corrupt. First run is not an error.
func (s *Service) Load() error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	snapshot, err := s.bridge.Load()
	if err == nil {
		err = s.restore(snapshot)
	}
	if err != nil {
		s.logger.Info("starting from seed data", "reason", err.Error())
		s.schema = table.NewSchema(table.SeedColumns())
		s.sessions = table.NewSessions(s.store)
		s.params = defaultParams()
		s.darkMode = false
		loadErr := s.store.Load(table.SeedRecords())
		if loadErr != nil {
			return loadErr
		}
	}

	s.status = StatusOperating
	return nil
}

func (s *Service) restore(snapshot *persist.Snapshot) error {
	if len(snapshot.Table.VisibleColumns) == 0 {
		return errors.New("snapshot has no columns")
	}

	err := s.store.Load(snapshot.Table.Data)
	if err != nil {
		return err
	}

	s.schema = table.NewSchema(snapshot.Table.VisibleColumns)
	s.sessions = table.NewSessions(s.store)
	s.params = table.ViewParams{
		SearchTerm:  snapshot.Table.SearchTerm,
		Sort:        snapshot.Table.SortConfig,
		Page:        snapshot.Table.Page,
		RowsPerPage: snapshot.Table.RowsPerPage,
	}
	valid := false
	for _, option := range table.RowsPerPageOptions {
		if s.params.RowsPerPage == option {
			valid = true
			break
		}
	}
	if !valid {
		s.params.RowsPerPage = 10
	}
	s.darkMode = snapshot.UI.IsDarkMode

	return nil
}

func (s *Service) snapshot() *persist.Snapshot {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	return &persist.Snapshot{
		Table: persist.TableState{
			Data:           s.store.Records(),
			VisibleColumns: s.schema.Columns(),
			SearchTerm:     s.params.SearchTerm,
			Page:           s.params.Page,
			RowsPerPage:    s.params.RowsPerPage,
			SortConfig:     s.params.Sort,
		},
		UI: persist.UIState{
			IsDarkMode: s.darkMode,
		},
	}
}

func (s *Service) GetStatus() string {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.status
}

func (s *Service) Start() error {
	err := s.Load()
	if err != nil {
		return err
	}

	<-s.exit
	return nil
}

// Stop flushes the pending snapshot and releases Start.
func (s *Service) Stop() {
	s.mutex.Lock()
	s.status = StatusClosing
	s.mutex.Unlock()

	s.bridge.Stop()
	close(s.exit)
}

func (s *Service) DarkMode() bool {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.darkMode
}

func (s *Service) ToggleDarkMode() bool {
	s.mutex.Lock()
	s.darkMode = !s.darkMode
	mode := s.darkMode
	s.mutex.Unlock()

	s.bridge.Notify()
	return mode
}
