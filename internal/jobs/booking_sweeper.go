package jobs

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/yookve/api/internal/model"
)

// BookingStore is the slice of the booking repository the sweeper needs
type BookingStore interface {
	GetStalePending(ctx context.Context, cutoff time.Time) ([]*model.Booking, error)
	UpdateStatus(ctx context.Context, id string, status model.BookingStatus) (*model.Booking, bool, error)
}

// BookingSweeper periodically cancels bookings that stayed pending and
// unpaid past their allowed age, so abandoned checkouts do not pile up.
type BookingSweeper struct {
	bookings BookingStore
	interval time.Duration
	maxAge   time.Duration
	stopCh   chan struct{}
	wg       sync.WaitGroup
	running  bool
	mu       sync.Mutex
}

// NewBookingSweeper creates a new booking sweeper job
func NewBookingSweeper(bookings BookingStore, interval, maxAge time.Duration) *BookingSweeper {
	if interval == 0 {
		interval = 1 * time.Hour
	}
	if maxAge == 0 {
		maxAge = 48 * time.Hour
	}
	return &BookingSweeper{
		bookings: bookings,
		interval: interval,
		maxAge:   maxAge,
		stopCh:   make(chan struct{}),
	}
}

// Start begins the sweeper job
func (s *BookingSweeper) Start() {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return
	}
	s.running = true
	s.mu.Unlock()

	s.wg.Add(1)
	go s.run()
	slog.Info("booking sweeper started",
		slog.Duration("interval", s.interval),
		slog.Duration("max_age", s.maxAge),
	)
}

// Stop gracefully stops the sweeper job
func (s *BookingSweeper) Stop() {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}
	s.running = false
	s.mu.Unlock()

	close(s.stopCh)
	s.wg.Wait()
	slog.Info("booking sweeper stopped")
}

// run is the main loop
func (s *BookingSweeper) run() {
	defer s.wg.Done()

	// Run immediately on start
	s.sweep()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.sweep()
		case <-s.stopCh:
			return
		}
	}
}

// sweep runs one pass with a bounded timeout
func (s *BookingSweeper) sweep() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	if err := s.RunOnce(ctx); err != nil {
		slog.Error("booking sweep failed", slog.String("error", err.Error()))
	}
}

// RunOnce cancels all stale pending bookings once (also used for manual
// triggering in tests).
func (s *BookingSweeper) RunOnce(ctx context.Context) error {
	cutoff := time.Now().Add(-s.maxAge)

	stale, err := s.bookings.GetStalePending(ctx, cutoff)
	if err != nil {
		return err
	}
	if len(stale) == 0 {
		return nil
	}

	slog.Info("cancelling stale pending bookings", slog.Int("count", len(stale)))

	for _, booking := range stale {
		_, found, err := s.bookings.UpdateStatus(ctx, booking.ID, model.BookingStatusCancelled)
		if err != nil {
			slog.Error("failed to cancel stale booking",
				slog.String("booking_id", booking.ID),
				slog.String("error", err.Error()),
			)
			continue
		}
		if !found {
			continue
		}
		slog.Info("cancelled stale booking",
			slog.String("booking_id", booking.ID),
			slog.Time("booking_date", booking.BookingDate),
		)
	}

	return nil
}

// IsRunning returns whether the sweeper is running
func (s *BookingSweeper) IsRunning() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}
