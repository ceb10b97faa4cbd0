package reviews

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/Vovarama1992/review-reply/internal/database"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fakeAI records prompts and answers with a canned reply or error.
type fakeAI struct {
	mu         sync.Mutex
	reply      string
	err        error
	calls      int
	lastSystem string
	lastUser   string
}

func (f *fakeAI) GetReply(_ context.Context, systemPrompt, userPrompt string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	f.lastSystem = systemPrompt
	f.lastUser = userPrompt
	return f.reply, f.err
}

func (f *fakeAI) Calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

var errUpstream = errors.New("upstream: 429 quota exceeded")

// brokenRepo fails every call the way an unreachable database would.
type brokenRepo struct{}

func (brokenRepo) Create(context.Context, string, string, Tone) (Exchange, error) {
	return Exchange{}, &StorageError{Op: "create", Err: errors.New("connection refused")}
}

func (brokenRepo) List(context.Context) ([]Exchange, error) {
	return nil, &StorageError{Op: "list", Err: errors.New("connection refused")}
}

// newTestDB returns a migrated in-memory SQLite database.
func newTestDB(t *testing.T) *sqlx.DB {
	t.Helper()
	db, err := database.Open(context.Background(), "sqlite://:memory:", discardLogger())
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

// stepClock returns a clock that advances by one second per call.
func stepClock(start time.Time) func() time.Time {
	var mu sync.Mutex
	next := start
	return func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		t := next
		next = next.Add(time.Second)
		return t
	}
}

func newTestRepo(t *testing.T) *repo {
	t.Helper()
	r := NewRepo(newTestDB(t)).(*repo)
	r.now = stepClock(time.Date(2026, 10, 18, 9, 0, 0, 0, time.UTC))
	return r
}
