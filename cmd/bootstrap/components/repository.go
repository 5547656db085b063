package components

import (
	"hotel-booking-core/internal/infra/db"
	"hotel-booking-core/internal/infra/readstore"
	"hotel-booking-core/internal/infra/repository"
	"hotel-booking-core/internal/usecase/commands"
	"hotel-booking-core/internal/usecase/queries"
	"hotel-booking-core/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		NewDBTX,
		fx.Annotate(
			shared.NewPgxTxManager,
			fx.As(new(shared.TxManager)),
		),
		fx.Annotate(
			repository.NewHotelRepository,
			fx.As(new(commands.HotelRepo)),
			fx.As(new(queries.HotelReader)),
		),
		fx.Annotate(
			repository.NewRoomRepository,
			fx.As(new(commands.RoomRepo)),
			fx.As(new(queries.RoomReader)),
		),
		fx.Annotate(
			repository.NewSurchargeRepository,
			fx.As(new(commands.SurchargeRepo)),
			fx.As(new(queries.SurchargeReader)),
		),
		fx.Annotate(
			repository.NewInventoryRepository,
			fx.As(new(commands.InventoryRepo)),
			fx.As(new(queries.InventoryReader)),
		),
		fx.Annotate(
			repository.NewBookingRepository,
			fx.As(new(commands.BookingRepo)),
		),
		// Read-side store for queries
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.BookingViewRepo)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
