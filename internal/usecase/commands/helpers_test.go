//go:build unit

package commands_test

import (
	"context"

	"court-reservation/internal/usecase/shared"
	sharedmock "court-reservation/tests/mock/shared"

	"go.uber.org/mock/gomock"
)

// txHarness wires a mock unit of work whose transactions hand out the mock repositories.
type txHarness struct {
	uow      *sharedmock.MockUnitOfWork
	tx       *sharedmock.MockTx
	bookings *sharedmock.MockBookingRepository
	ratings  *sharedmock.MockRatingRepository
	venues   *sharedmock.MockVenueRepository
	catalog  *sharedmock.MockCatalog
}

func newTxHarness(ctrl *gomock.Controller) *txHarness {
	h := &txHarness{
		uow:      sharedmock.NewMockUnitOfWork(ctrl),
		tx:       sharedmock.NewMockTx(ctrl),
		bookings: sharedmock.NewMockBookingRepository(ctrl),
		ratings:  sharedmock.NewMockRatingRepository(ctrl),
		venues:   sharedmock.NewMockVenueRepository(ctrl),
		catalog:  sharedmock.NewMockCatalog(ctrl),
	}
	h.tx.EXPECT().Bookings().Return(h.bookings).AnyTimes()
	h.tx.EXPECT().Ratings().Return(h.ratings).AnyTimes()
	h.tx.EXPECT().Venues().Return(h.venues).AnyTimes()
	h.tx.EXPECT().DB().Return(nil).AnyTimes()
	return h
}

func (h *txHarness) run(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return fn(ctx, h.tx)
}

// expectWithin lets n read-committed transactions run against the mock tx.
func (h *txHarness) expectWithin(n int) {
	h.uow.EXPECT().Within(gomock.Any(), gomock.Any()).DoAndReturn(h.run).Times(n)
}

func (h *txHarness) expectSerializable(n int) {
	h.uow.EXPECT().WithinSerializable(gomock.Any(), gomock.Any()).DoAndReturn(h.run).Times(n)
}
