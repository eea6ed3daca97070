package session

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"coupon-portal/internal/pkg/clock"
	"coupon-portal/internal/pkg/config"
	"coupon-portal/internal/pkg/errs"
	"coupon-portal/internal/usecase"

	"github.com/google/uuid"
)

type entry struct {
	workflow  *usecase.Workflow
	expiresAt time.Time
}

// Store keeps one workflow per browser session in memory. Sessions slide: every Get
// pushes the expiry out by the TTL. Ending a session closes its workflow.
type Store struct {
	mu          sync.Mutex
	sessions    map[string]*entry
	newWorkflow usecase.WorkflowFactory
	clock       clock.Clock
	ttl         time.Duration
	log         *slog.Logger
}

func NewStore(cfg config.SessionConfig, factory usecase.WorkflowFactory, clk clock.Clock, log *slog.Logger) *Store {
	return &Store{
		sessions:    make(map[string]*entry),
		newWorkflow: factory,
		clock:       clk,
		ttl:         cfg.TTL,
		log:         log,
	}
}

// Create opens a session and starts its catalog request. The request outlives ctx's
// cancellation but keeps its values (trace context).
func (s *Store) Create(ctx context.Context) (string, *usecase.Workflow) {
	id := uuid.NewString()
	wf := s.newWorkflow()

	s.mu.Lock()
	s.sessions[id] = &entry{workflow: wf, expiresAt: s.clock.Now().Add(s.ttl)}
	s.mu.Unlock()

	wf.Start(context.WithoutCancel(ctx))
	s.log.Debug("session created", "session_id", id)
	return id, wf
}

// Get returns the session's workflow and extends its lifetime.
func (s *Store) Get(id string) (*usecase.Workflow, error) {
	if id == "" {
		return nil, errs.ErrSessionNotFound
	}

	s.mu.Lock()
	e, ok := s.sessions[id]
	if !ok {
		s.mu.Unlock()
		return nil, errs.ErrSessionNotFound
	}
	now := s.clock.Now()
	if !now.Before(e.expiresAt) {
		delete(s.sessions, id)
		s.mu.Unlock()
		e.workflow.Close()
		return nil, errs.Wrapf(errs.ErrSessionExpired, "session %s", id)
	}
	e.expiresAt = now.Add(s.ttl)
	s.mu.Unlock()

	return e.workflow, nil
}

// Delete ends a session. Unknown ids are ignored.
func (s *Store) Delete(id string) {
	s.mu.Lock()
	e, ok := s.sessions[id]
	delete(s.sessions, id)
	s.mu.Unlock()

	if ok {
		e.workflow.Close()
	}
}

// Sweep ends every expired session and reports how many were removed.
func (s *Store) Sweep() int {
	now := s.clock.Now()

	s.mu.Lock()
	var expired []*usecase.Workflow
	for id, e := range s.sessions {
		if !now.Before(e.expiresAt) {
			expired = append(expired, e.workflow)
			delete(s.sessions, id)
		}
	}
	s.mu.Unlock()

	for _, wf := range expired {
		wf.Close()
	}
	if len(expired) > 0 {
		s.log.Info("expired sessions removed", "count", len(expired))
	}
	return len(expired)
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// RunSweeper calls Sweep every interval until ctx is done. A non-positive interval
// disables sweeping; expired sessions are then only dropped when they are next looked up.
func (s *Store) RunSweeper(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		s.log.Warn("session sweeper disabled", "interval", interval.String())
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Sweep()
		}
	}
}

// Close ends every session.
func (s *Store) Close() {
	s.mu.Lock()
	all := s.sessions
	s.sessions = make(map[string]*entry)
	s.mu.Unlock()

	for _, e := range all {
		e.workflow.Close()
	}
}
