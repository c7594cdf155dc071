package order

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/HackerKing5128/voicecart/pkg/Logger"
)

// Simulator advances each tracked order one status per tick until it reaches
// a terminal status. It is deliberately dumb: the store is the source of
// truth, and the simulator re-reads it before every step so an external
// cancel (or a deleted database) just makes it stop. Failures are logged and
// never surfaced to the session that placed the order.
type Simulator struct {
	repository Repository
	publisher  EventPublisher
	logger     *Logger.Logger
	tick       time.Duration

	mu      sync.Mutex
	cancels map[string]context.CancelFunc
	wg      sync.WaitGroup
}

// Track implements Tracker. Tracking an already-tracked order is a no-op.
func (s *Simulator) Track(orderID string) {
	ctx, cancel := context.WithCancel(context.Background())

	s.mu.Lock()
	if _, exists := s.cancels[orderID]; exists {
		s.mu.Unlock()
		cancel()
		return
	}
	s.cancels[orderID] = cancel
	s.mu.Unlock()

	s.wg.Add(1)
	go s.run(ctx, orderID)
}

func (s *Simulator) run(ctx context.Context, orderID string) {
	defer s.wg.Done()
	defer s.untrack(orderID)

	ticker := time.NewTicker(s.tick)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}

		status, done, err := s.Step(ctx, orderID)
		if err != nil {
			s.logger.Errorf("delivery simulation for %s stopped: %v", orderID, err)
			return
		}
		if done {
			s.logger.Infof("delivery simulation for %s finished at %s", orderID, status)
			return
		}
	}
}

// Step performs exactly one transition: re-read the order, stop if it is
// gone or terminal, otherwise advance one status and persist it. done=true
// means there is nothing left to do.
func (s *Simulator) Step(ctx context.Context, orderID string) (Status, bool, error) {
	o, err := s.repository.GetByID(orderID)
	if err != nil {
		if errors.Is(err, ErrOrderNotFound) {
			// order vanished underneath us; stop silently
			return "", true, nil
		}
		return "", true, err
	}

	if o.Status.Terminal() {
		return o.Status, true, nil
	}

	next, ok := o.Status.Next()
	if !ok {
		// unknown status written by someone else; not ours to fix
		return o.Status, true, nil
	}

	if _, err := s.repository.UpdateStatus(orderID, next); err != nil {
		return o.Status, true, err
	}

	if s.publisher != nil {
		s.publisher.PublishStatusChange(orderID, next)
	}
	s.logger.Infof("order %s: %s -> %s", orderID, o.Status, next)

	return next, next.Terminal(), nil
}

// Stop cancels tracking for one order. The persisted status is untouched.
func (s *Simulator) Stop(orderID string) {
	s.mu.Lock()
	cancel, exists := s.cancels[orderID]
	s.mu.Unlock()
	if exists {
		cancel()
	}
}

// Shutdown cancels every tracked order and waits for the goroutines to exit.
func (s *Simulator) Shutdown() {
	s.mu.Lock()
	for _, cancel := range s.cancels {
		cancel()
	}
	s.mu.Unlock()
	s.wg.Wait()
}

// Tracking returns the number of orders currently being advanced.
func (s *Simulator) Tracking() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.cancels)
}

func (s *Simulator) untrack(orderID string) {
	s.mu.Lock()
	if cancel, exists := s.cancels[orderID]; exists {
		delete(s.cancels, orderID)
		s.mu.Unlock()
		cancel()
		return
	}
	s.mu.Unlock()
}

// NewSimulator creates a delivery simulator. publisher may be nil.
func NewSimulator(repository Repository, publisher EventPublisher, tick time.Duration, logger *Logger.Logger) *Simulator {
	if tick <= 0 {
		tick = 10 * time.Second
	}
	return &Simulator{
		repository: repository,
		publisher:  publisher,
		logger:     logger,
		tick:       tick,
		cancels:    make(map[string]context.CancelFunc),
	}
}
