// Package worker runs periodic maintenance next to the HTTP server.
package worker

import (
	"context"
	"log/slog"
	"time"

	"court-reservation/internal/pkg/config"
	"court-reservation/internal/usecase/commands"

	"golang.org/x/sync/errgroup"
)

// Sweeper completes past bookings and repairs stale venue ratings on a fixed interval.
type Sweeper struct {
	bookings commands.BookingCommands
	ratings  commands.RatingCommands
	cfg      config.SweeperConfig
	logger   *slog.Logger
}

func NewSweeper(bookings commands.BookingCommands, ratings commands.RatingCommands, cfg config.Config, logger *slog.Logger) *Sweeper {
	return &Sweeper{
		bookings: bookings,
		ratings:  ratings,
		cfg:      cfg.Sweeper,
		logger:   logger,
	}
}

func (s *Sweeper) Enabled() bool {
	return s.cfg.Interval > 0
}

// Run blocks until ctx is cancelled, sweeping once per interval.
func (s *Sweeper) Run(ctx context.Context) {
	ticker := time.NewTicker(s.cfg.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := s.Sweep(ctx); err != nil {
				s.logger.ErrorContext(ctx, "sweep failed", slog.String("error", err.Error()))
			}
		}
	}
}

// Sweep runs both maintenance tasks concurrently and returns the first error.
func (s *Sweeper) Sweep(ctx context.Context) error {
	if s.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.Timeout)
		defer cancel()
	}

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		n, err := s.bookings.CompletePastBookings(gCtx)
		if err != nil {
			return err
		}
		if n > 0 {
			s.logger.InfoContext(gCtx, "completed past bookings", slog.Int64("count", n))
		}
		return nil
	})

	g.Go(func() error {
		n, err := s.ratings.RepairStaleAggregates(gCtx)
		if err != nil {
			return err
		}
		if n > 0 {
			s.logger.InfoContext(gCtx, "repaired stale venue ratings", slog.Int("count", n))
		}
		return nil
	})

	return g.Wait()
}
