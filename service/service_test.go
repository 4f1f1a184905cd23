package service

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	. "github.com/fulldump/biff"

	"tableman/persist"
	"tableman/table"
)

func testService(t *testing.T) *Service {
	return NewService(&Config{
		DataFile: filepath.Join(t.TempDir(), "tableman.json"),
		Debounce: 10 * time.Millisecond,
	}, slog.New(slog.DiscardHandler))
}

func TestServiceSeedsOnFirstRun(t *testing.T) {

	// Setup
	s := testService(t)

	// Run
	err := s.Load()

	// Check
	AssertNil(err)
	AssertEqual(s.GetStatus(), StatusOperating)
	AssertEqual(len(s.Records()), 8)
	AssertEqual(len(s.Columns()), 6)
	AssertEqual(s.Params().RowsPerPage, 10)
	AssertEqual(s.DarkMode(), false)
}

func TestServiceRestoresSnapshot(t *testing.T) {

	// Setup: mutate state and wait for the debounced snapshot
	filename := filepath.Join(t.TempDir(), "tableman.json")
	logger := slog.New(slog.DiscardHandler)

	first := NewService(&Config{DataFile: filename, Debounce: 10 * time.Millisecond}, logger)
	AssertNil(first.Load())
	first.SetSearch("developer")
	AssertNil(first.SetRowsPerPage(25))
	first.SortOn("age")
	first.ToggleDarkMode()
	first.DeleteRecord("3")
	time.Sleep(100 * time.Millisecond)

	// Run: a fresh service over the same file
	second := NewService(&Config{DataFile: filename}, logger)
	AssertNil(second.Load())

	// Check
	AssertEqual(len(second.Records()), 7)
	params := second.Params()
	AssertEqual(params.SearchTerm, "developer")
	AssertEqual(params.RowsPerPage, 25)
	AssertEqual(params.Sort, table.SortConfig{Key: "age", Direction: table.DirectionAsc})
	AssertEqual(second.DarkMode(), true)
}

func TestServiceConcurrentColumnAddsWhileFlushing(t *testing.T) {

	// Setup: an aggressive debounce keeps snapshot serialization running
	// while columns backfill the records
	filename := filepath.Join(t.TempDir(), "tableman.json")
	logger := slog.New(slog.DiscardHandler)
	s := NewService(&Config{DataFile: filename, Debounce: time.Nanosecond}, logger)
	AssertNil(s.Load())

	// Run
	wg := &sync.WaitGroup{}
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := s.AddColumn(fmt.Sprintf("Extra %d", i))
			AssertNil(err)
		}(i)
	}
	wg.Wait()
	s.Stop()

	// Check
	AssertEqual(len(s.Columns()), 56)
	record, err := s.GetRecord("1")
	AssertNil(err)
	AssertEqual(record["extra_0"], "")
}

func TestServiceRestoreSanitizesRowsPerPage(t *testing.T) {

	// Setup: a hand-edited snapshot with a page size outside the options
	filename := filepath.Join(t.TempDir(), "tableman.json")
	payload, _ := json.Marshal(persist.Snapshot{
		Table: persist.TableState{
			Data:           table.SeedRecords(),
			VisibleColumns: table.SeedColumns(),
			RowsPerPage:    7,
		},
	})
	os.WriteFile(filename, payload, 0666)
	s := NewService(&Config{DataFile: filename}, slog.New(slog.DiscardHandler))

	// Run
	err := s.Load()

	// Check: the snapshot restores, the page size falls back
	AssertNil(err)
	AssertEqual(s.Params().RowsPerPage, 10)
	AssertEqual(len(s.Records()), 8)
}

func TestServiceFallsBackOnCorruptSnapshot(t *testing.T) {

	// Setup
	filename := filepath.Join(t.TempDir(), "tableman.json")
	os.WriteFile(filename, []byte("{definitely not json"), 0666)
	s := NewService(&Config{DataFile: filename}, slog.New(slog.DiscardHandler))

	// Run
	err := s.Load()

	// Check: corrupt snapshots never reach the user
	AssertNil(err)
	AssertEqual(s.GetStatus(), StatusOperating)
	AssertEqual(len(s.Records()), 8)
}

func TestServiceStopFlushes(t *testing.T) {

	// Setup
	filename := filepath.Join(t.TempDir(), "tableman.json")
	logger := slog.New(slog.DiscardHandler)
	s := NewService(&Config{DataFile: filename, Debounce: time.Hour}, logger)
	AssertNil(s.Load())
	s.SetSearch("pending") // would only flush in an hour

	// Run
	s.Stop()

	// Check: shutdown does not lose the pending state
	restored := NewService(&Config{DataFile: filename}, logger)
	AssertNil(restored.Load())
	AssertEqual(restored.Params().SearchTerm, "pending")
}

func TestServiceEditSessionsAreNotPersisted(t *testing.T) {

	// Setup
	filename := filepath.Join(t.TempDir(), "tableman.json")
	logger := slog.New(slog.DiscardHandler)
	s := NewService(&Config{DataFile: filename, Debounce: 10 * time.Millisecond}, logger)
	AssertNil(s.Load())
	AssertNil(s.BeginEdit("1"))
	AssertNil(s.SetEditField("1", "name", "Johnny"))
	s.Stop()

	// Run
	restored := NewService(&Config{DataFile: filename}, logger)
	AssertNil(restored.Load())

	// Check: buffers are runtime state, the restored record is untouched
	AssertEqual(len(restored.Editing()), 0)
	record, err := restored.GetRecord("1")
	AssertNil(err)
	AssertEqual(record["name"], "John Doe")
}
