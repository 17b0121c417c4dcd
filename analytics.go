package main

import (
	"sync"
	"time"
)

// Event types for stats tracking
const (
	EvtConnect           = "connect"
	EvtDisconnect        = "disconnect"
	EvtBulletFired       = "bullet_fired"
	EvtAsteroidDestroyed = "asteroid_destroyed"
	EvtShipDestroyed     = "ship_destroyed"
)

// StatsEvent represents a single trackable event
type StatsEvent struct {
	Type      string
	Timestamp time.Time
}

// Analytics handles event tracking with batched background writes, so the
// game loop never waits on the database.
type Analytics struct {
	db     *DB
	events chan StatsEvent
	stop   chan struct{}
	wg     sync.WaitGroup

	mu                sync.RWMutex
	concurrentPlayers int
}

// NewAnalytics creates and starts the analytics background writer
func NewAnalytics(db *DB) *Analytics {
	a := &Analytics{
		db:     db,
		events: make(chan StatsEvent, 1024),
		stop:   make(chan struct{}),
	}
	a.wg.Add(1)
	go a.writer()
	return a
}

// Track enqueues an event for async persistence (non-blocking)
func (a *Analytics) Track(evtType string) {
	select {
	case a.events <- StatsEvent{Type: evtType, Timestamp: time.Now().UTC()}:
	default:
		// Channel full — drop event rather than blocking game loop
	}
}

// SetConcurrentPlayers updates the live player count metric
func (a *Analytics) SetConcurrentPlayers(n int) {
	a.mu.Lock()
	a.concurrentPlayers = n
	a.mu.Unlock()
}

// ConcurrentPlayers returns the live player count metric
func (a *Analytics) ConcurrentPlayers() int {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.concurrentPlayers
}

// Stop gracefully shuts down the analytics writer
func (a *Analytics) Stop() {
	close(a.stop)
	a.wg.Wait()
}

// writer is the background goroutine that batches and writes events to DB
func (a *Analytics) writer() {
	defer a.wg.Done()

	batch := make([]StatsEvent, 0, 64)
	ticker := time.NewTicker(5 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case evt := <-a.events:
			batch = append(batch, evt)
			// Flush immediately if batch is large
			if len(batch) >= 50 {
				a.db.InsertEvents(batch)
				batch = batch[:0]
			}
		case <-ticker.C:
			if len(batch) > 0 {
				a.db.InsertEvents(batch)
				batch = batch[:0]
			}
		case <-a.stop:
			// Drain remaining events
			close(a.events)
			for evt := range a.events {
				batch = append(batch, evt)
			}
			if len(batch) > 0 {
				a.db.InsertEvents(batch)
			}
			return
		}
	}
}
