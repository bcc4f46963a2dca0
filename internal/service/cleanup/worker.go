package cleanup

import (
	"context"
	"log"
	"time"
)

// SessionStore is the part of the session manager the worker prunes.
type SessionStore interface {
	CleanupOldSessions(now time.Time) int
}

type Worker struct {
	Sessions SessionStore
	Interval time.Duration
	now      func() time.Time
}

func NewWorker(sessions SessionStore, interval time.Duration) *Worker {
	return &Worker{Sessions: sessions, Interval: interval, now: time.Now}
}

// Start runs a cleanup immediately and then every Interval until ctx is done.
func (w *Worker) Start(ctx context.Context) {
	log.Println("[CLEANUP] Background worker started")
	w.runCleanup()

	ticker := time.NewTicker(w.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("[CLEANUP] Background worker stopped")
			return
		case <-ticker.C:
			w.runCleanup()
		}
	}
}

// runCleanup executes the actual cleanup logic
func (w *Worker) runCleanup() {
	removed := w.Sessions.CleanupOldSessions(w.now())
	if removed > 0 {
		log.Printf("[CLEANUP] Removed %d stale sessions", removed)
	}
}
