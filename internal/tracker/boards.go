package tracker

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// ErrBoardNotFound is returned for unknown or expired board ids.
var ErrBoardNotFound = errors.New("map board not found")

const (
	defaultBoardTTL  = 30 * time.Minute
	defaultMaxBoards = 10000
)

// BoardsConfig tunes the in-memory board registry.
type BoardsConfig struct {
	// TTL is how long an untouched board survives.
	TTL time.Duration
	// MaxBoards caps live boards; the least recently touched board is
	// evicted to make room.
	MaxBoards int
	Now       func() time.Time
}

type boardEntry struct {
	board   *Board
	touched time.Time
}

// Boards holds the transient map boards of current visitors. Nothing is
// persisted: a board lives until it expires or the process exits.
type Boards struct {
	mu      sync.Mutex
	entries map[string]*boardEntry
	ttl     time.Duration
	max     int
	now     func() time.Time
	newID   func() string
}

// NewBoards returns an empty registry.
func NewBoards(cfg BoardsConfig) *Boards {
	if cfg.TTL <= 0 {
		cfg.TTL = defaultBoardTTL
	}
	if cfg.MaxBoards <= 0 {
		cfg.MaxBoards = defaultMaxBoards
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &Boards{
		entries: make(map[string]*boardEntry),
		ttl:     cfg.TTL,
		max:     cfg.MaxBoards,
		now:     cfg.Now,
		newID:   uuid.NewString,
	}
}

// Create registers a fresh board and returns its state.
func (r *Boards) Create() State {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	r.sweepLocked(now)
	if len(r.entries) >= r.max {
		r.evictOldestLocked()
	}
	id := r.newID()
	board := NewBoard()
	r.entries[id] = &boardEntry{board: board, touched: now}
	return board.Snapshot(id)
}

// Get returns the state of board id.
func (r *Boards) Get(id string) (State, error) {
	return r.Update(id, nil)
}

// Update applies fn to board id under the registry lock and returns the
// resulting state. A nil fn only refreshes the board's idle timer.
func (r *Boards) Update(id string, fn func(*Board)) (State, error) {
	id = strings.TrimSpace(id)
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	entry, ok := r.entries[id]
	if !ok || r.expired(entry, now) {
		delete(r.entries, id)
		return State{}, ErrBoardNotFound
	}
	if fn != nil {
		fn(entry.board)
	}
	entry.touched = now
	return entry.board.Snapshot(id), nil
}

// Len returns the number of live boards.
func (r *Boards) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sweepLocked(r.now())
	return len(r.entries)
}

// Sweep drops expired boards and returns how many were removed.
func (r *Boards) Sweep() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.sweepLocked(r.now())
}

// Run sweeps expired boards every interval until ctx is done.
func (r *Boards) Run(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = r.ttl / 2
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.Sweep()
		}
	}
}

func (r *Boards) expired(entry *boardEntry, now time.Time) bool {
	return now.Sub(entry.touched) > r.ttl
}

func (r *Boards) sweepLocked(now time.Time) int {
	removed := 0
	for id, entry := range r.entries {
		if r.expired(entry, now) {
			delete(r.entries, id)
			removed++
		}
	}
	return removed
}

func (r *Boards) evictOldestLocked() {
	var oldestID string
	var oldest time.Time
	for id, entry := range r.entries {
		if oldestID == "" || entry.touched.Before(oldest) {
			oldestID, oldest = id, entry.touched
		}
	}
	if oldestID != "" {
		delete(r.entries, oldestID)
	}
}
