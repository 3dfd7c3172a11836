package run

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/amc-dataeng/hospgen/internal/hospgen/catalog"
	"github.com/amc-dataeng/hospgen/internal/hospgen/gen"
	"github.com/amc-dataeng/hospgen/internal/hospgen/logger"
	"github.com/amc-dataeng/hospgen/internal/hospgen/sink"
	"github.com/amc-dataeng/hospgen/internal/hospgen/status"
)

// Live is the background feed worker. Start and Stop are idempotent and safe
// to call from concurrent HTTP handlers; only one worker goroutine runs at a
// time.
type Live struct {
	Catalog  *catalog.Catalog
	Files    *sink.Files
	Store    *status.Store
	DB       *sink.DB // nil when no database is reachable
	Interval time.Duration
	Patients int
	Admits   int

	running atomic.Bool
	mu      sync.Mutex
	stopCh  chan struct{}
	done    chan struct{}
}

// Running reports whether the worker goroutine is active. It stays true
// between Stop and the worker finishing its in-flight tick.
func (l *Live) Running() bool {
	return l.running.Load()
}

// Start launches the worker. Returns false if one is already running.
func (l *Live) Start() bool {
	if !l.running.CompareAndSwap(false, true) {
		return false
	}
	l.mu.Lock()
	l.stopCh = make(chan struct{})
	l.done = make(chan struct{})
	stop, done := l.stopCh, l.done
	l.mu.Unlock()

	l.Store.Reset("live", l.Files.Outdir)
	l.Store.SetStep("tick_init")
	l.Store.Log("Live feed started: %d patients and %d admissions every %s",
		l.Patients, l.Admits, l.Interval)
	logger.L().Infow("live feed started", "interval", l.Interval,
		"patients", l.Patients, "admissions", l.Admits)

	if l.DB != nil {
		if err := l.DB.EnsureSchema(context.Background()); err != nil {
			l.Store.Log("Live DB schema setup failed: %v", err)
			l.DB = nil
		}
	}

	go l.loop(stop, done)
	return true
}

// Stop signals the worker and waits for its in-flight tick to finish.
// Returns false if no worker was running.
func (l *Live) Stop() bool {
	if !l.running.Load() {
		return false
	}
	l.mu.Lock()
	stop, done := l.stopCh, l.done
	l.mu.Unlock()
	if stop == nil {
		return false
	}

	select {
	case <-stop:
		// already closed by a concurrent Stop
	default:
		close(stop)
	}
	<-done

	l.Store.Log("Live feed stopped")
	logger.L().Infow("live feed stopped")
	return true
}

func (l *Live) loop(stop, done chan struct{}) {
	defer func() {
		l.running.Store(false)
		close(done)
	}()

	g := gen.New(l.Catalog)
	batch := 0
	for {
		// Stop wins over a simultaneously expired timer, so no tick starts
		// after the stop signal.
		select {
		case <-stop:
			return
		default:
		}

		batch++
		l.tick(g, batch)

		select {
		case <-stop:
			return
		case <-time.After(l.Interval):
		}
	}
}

// tick generates and persists one live batch. A panic inside a tick is
// contained so the feed keeps running.
func (l *Live) tick(g *gen.Generator, batch int) {
	defer func() {
		if r := recover(); r != nil {
			l.Store.Log("Live tick error: %v", r)
			logger.L().Errorw("live tick panicked", "batch", batch, "err", r)
		}
	}()

	l.Store.Update(func(r *status.Record) {
		r.Step = "tick"
		r.Batch = batch
	})

	ctx := context.Background()
	today := time.Now().UTC().Truncate(24 * time.Hour)

	patients := g.LivePatients(batch, l.Patients)
	admissions := g.LiveAdmissions(batch, l.Admits, patients, today)

	if _, err := sink.SaveTable(ctx, l.Files, sink.LiveBase("patients", batch), patients); err != nil {
		l.Store.Log("Live tick error: %v", err)
		logger.L().Errorw("live patients save failed", "batch", batch, "err", err)
		return
	}
	if _, err := sink.SaveTable(ctx, l.Files, sink.LiveBase("admissions", batch), admissions); err != nil {
		l.Store.Log("Live tick error: %v", err)
		logger.L().Errorw("live admissions save failed", "batch", batch, "err", err)
		return
	}

	if l.DB != nil {
		if err := l.DB.InsertPatients(ctx, patients); err != nil {
			l.Store.Log("Live DB write failed: %v", err)
		} else if err := l.DB.InsertAdmissions(ctx, admissions); err != nil {
			l.Store.Log("Live DB write failed: %v", err)
		}
	}

	l.Store.Update(func(r *status.Record) {
		r.LastLiveCounts = &status.LiveCounts{
			Patients:   len(patients),
			Admissions: len(admissions),
		}
	})
	l.Store.Log("Live batch %d: %d patients, %d admissions", batch, len(patients), len(admissions))
}
