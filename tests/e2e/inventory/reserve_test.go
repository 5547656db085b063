//go:build e2e

package inventory_test

import (
	"context"
	"testing"
	"time"

	"hotel-booking-core/internal/domain/room"
	"hotel-booking-core/internal/infra"
	"hotel-booking-core/internal/infra/db"
	"hotel-booking-core/internal/infra/repository"
	"hotel-booking-core/internal/usecase/shared"
	"hotel-booking-core/tests/common/dbtest"
	"hotel-booking-core/tests/e2e"

	"github.com/stretchr/testify/suite"
)

type ReserveSuite struct {
	e2e.SharedSuite
}

func TestReserveSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(ReserveSuite))
}

// Pins the check-then-reserve closure: overlapping transactions must never
// push stock below zero, losers must fail with a conflict.
func (s *ReserveSuite) TestConcurrentReservations() {
	s.Run("overlapping reservations never oversell a night", func() {
		t := s.T()
		hotelID := dbtest.CreateTestHotel(t, s.DB, "Race Hotel")
		roomID := dbtest.CreateTestRoom(t, s.DB, hotelID, "Twin", 2, 1, 5)
		dbtest.SetInventory(t, s.DB, roomID, "2026-09-15", nil, nil, 5, "available")

		rm, err := room.NewRoom(roomID, hotelID, "Twin", 2, 1, 5, true)
		s.Require().NoError(err)

		night := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
		txm := shared.NewPgxTxManager(s.DB)
		repo := repository.NewInventoryRepository(s.DB)

		const workers = 10
		results := make(chan error, workers)
		start := make(chan struct{})
		for range workers {
			go func() {
				<-start
				results <- txm.Do(context.Background(), func(tx db.DBTX) error {
					return repo.ReserveNights(context.Background(), tx, rm, []time.Time{night}, 1)
				})
			}()
		}
		close(start)

		conflicts := 0
		for range workers {
			if err := <-results; err != nil {
				s.True(infra.IsKind(err, infra.KindConflict), "loser must surface a conflict, got %v", err)
				conflicts++
			}
		}

		s.Equal(workers-5, conflicts)
		s.Equal(0, dbtest.GetRemainingStock(t, s.DB, roomID, "2026-09-15"))
	})

	s.Run("reserving more rooms than remain fails atomically", func() {
		t := s.T()
		hotelID := dbtest.CreateTestHotel(t, s.DB, "Race Hotel")
		roomID := dbtest.CreateTestRoom(t, s.DB, hotelID, "Twin", 2, 1, 5)
		dbtest.SetInventory(t, s.DB, roomID, "2026-09-15", nil, nil, 5, "available")
		dbtest.SetInventory(t, s.DB, roomID, "2026-09-16", nil, nil, 1, "limited")

		rm, err := room.NewRoom(roomID, hotelID, "Twin", 2, 1, 5, true)
		s.Require().NoError(err)

		nights := []time.Time{
			time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
			time.Date(2026, 9, 16, 0, 0, 0, 0, time.UTC),
		}
		txm := shared.NewPgxTxManager(s.DB)
		repo := repository.NewInventoryRepository(s.DB)

		err = txm.Do(context.Background(), func(tx db.DBTX) error {
			return repo.ReserveNights(context.Background(), tx, rm, nights, 2)
		})
		s.Require().Error(err)
		s.True(infra.IsKind(err, infra.KindConflict))

		// Rollback must undo the first night's decrement.
		s.Equal(5, dbtest.GetRemainingStock(t, s.DB, roomID, "2026-09-15"))
		s.Equal(1, dbtest.GetRemainingStock(t, s.DB, roomID, "2026-09-16"))
	})
}
