package persist

import (
	"fmt"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/go-json-experiment/json"
)

// DefaultDebounce coalesces mutation bursts into one snapshot write.
const DefaultDebounce = 500 * time.Millisecond

// Bridge mirrors the in-memory state to a durable file slot. Writes are
// debounced, fire-and-forget and best-effort: a failed write is logged and
// swallowed, the in-memory model stays the source of truth. Last write wins.
type Bridge struct {
	filename string
	delay    time.Duration
	capture  func() *Snapshot
	logger   *slog.Logger

	mutex sync.Mutex
	timer *time.Timer
}

// NewBridge creates a bridge that persists to filename. capture is invoked at
// flush time to take a consistent copy of the current state.
func NewBridge(filename string, delay time.Duration, capture func() *Snapshot, logger *slog.Logger) *Bridge {
	return &Bridge{
		filename: filename,
		delay:    delay,
		capture:  capture,
		logger:   logger,
	}
}

// Notify schedules a snapshot. Calls within the debounce window coalesce into
// a single write. Never blocks the mutation that triggered it.
func (b *Bridge) Notify() {
	b.mutex.Lock()
	defer b.mutex.Unlock()

	if b.timer != nil {
		b.timer.Reset(b.delay)
		return
	}
	b.timer = time.AfterFunc(b.delay, func() {
		b.Flush()
	})
}

// Flush writes a snapshot immediately. Errors are logged, never surfaced.
func (b *Bridge) Flush() {
	err := b.write(b.capture())
	if err != nil {
		b.logger.Warn("snapshot write failed", "filename", b.filename, "error", err.Error())
	}
}

func (b *Bridge) write(snapshot *Snapshot) error {
	b.mutex.Lock()
	defer b.mutex.Unlock()

	tmp := b.filename + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("create: %w", err)
	}

	err = json.MarshalWrite(f, snapshot)
	if err != nil {
		f.Close()
		return fmt.Errorf("encode: %w", err)
	}

	err = f.Close()
	if err != nil {
		return fmt.Errorf("close: %w", err)
	}

	return os.Rename(tmp, b.filename)
}

// Load reads the persisted snapshot. A missing or corrupt file returns an
// error and the caller falls back to seed data, never the user.
func (b *Bridge) Load() (*Snapshot, error) {
	f, err := os.Open(b.filename)
	if err != nil {
		return nil, fmt.Errorf("open: %w", err)
	}
	defer f.Close()

	snapshot := &Snapshot{}
	err = json.UnmarshalRead(f, snapshot)
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}

	return snapshot, nil
}

// Stop cancels any pending write and flushes once, for shutdown.
func (b *Bridge) Stop() {
	b.mutex.Lock()
	if b.timer != nil {
		b.timer.Stop()
		b.timer = nil
	}
	b.mutex.Unlock()

	b.Flush()
}
