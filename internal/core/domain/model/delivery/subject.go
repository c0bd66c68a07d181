package delivery

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"
)

// Subject is an ordered, duplicate-free registry of observers.
//
// Attach and Detach may be called from any goroutine. NotifyAll iterates over
// a copy taken at call time, so observers attached or detached during a
// fan-out only affect the next one.
type Subject struct {
	mu        sync.RWMutex
	observers []Observer
	failures  FailureListener
	logger    *slog.Logger
}

// NewSubject creates an empty subject. A nil logger discards failure logs.
func NewSubject(logger *slog.Logger) *Subject {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Subject{logger: logger}
}

// Attach adds the observer unless it is already present.
func (s *Subject) Attach(observer Observer) {
	if observer == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if slices.Contains(s.observers, observer) {
		return
	}
	s.observers = append(s.observers, observer)
}

// Detach removes the observer. Removing an absent observer is a no-op.
func (s *Subject) Detach(observer Observer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i := slices.Index(s.observers, observer); i >= 0 {
		s.observers = slices.Delete(s.observers, i, i+1)
	}
}

// Observers returns the attached observers in attachment order.
func (s *Subject) Observers() []Observer {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.observers)
}

// Len returns the number of attached observers.
func (s *Subject) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.observers)
}

// SetFailureListener registers the listener told about failing observers.
func (s *Subject) SetFailureListener(l FailureListener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures = l
}

// NotifyAll calls every observer once with the snapshot. A failing or
// panicking observer is logged and skipped; the rest still run. The joined
// observer errors are returned.
func (s *Subject) NotifyAll(ctx context.Context, snapshot Snapshot) error {
	s.mu.RLock()
	observers := slices.Clone(s.observers)
	failures := s.failures
	s.mu.RUnlock()

	var joined []error
	for _, observer := range observers {
		if err := notifyOne(ctx, observer, snapshot); err != nil {
			name := fmt.Sprintf("%T", observer)
			s.logger.ErrorContext(ctx, "observer failed",
				"delivery_id", snapshot.DeliveryID.String(),
				"observer", name,
				"status", snapshot.Status.Code(),
				"error", err,
			)
			if failures != nil {
				failures.ObserverFailed(ctx, snapshot, name, err)
			}
			joined = append(joined, fmt.Errorf("%s: %w", name, err))
		}
	}
	return errors.Join(joined...)
}

func notifyOne(ctx context.Context, observer Observer, snapshot Snapshot) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("observer panicked: %v", r)
		}
	}()
	return observer.Notify(ctx, snapshot)
}
