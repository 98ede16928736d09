package components

import (
	"court-reservation/internal/infra/catalog"
	"court-reservation/internal/infra/query"
	infraredis "court-reservation/internal/infra/redis"
	"court-reservation/internal/infra/readstore"
	"court-reservation/internal/infra/uow"
	"court-reservation/internal/pkg/config"
	"court-reservation/internal/usecase/queries"
	"court-reservation/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	catalogModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
	uow.NewPostgresUoW,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Booking
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.BookingViewQueries)),
		),
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.BookingReadStore)),
		),
		// Rating
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.RatingViewQueries)),
		),
		fx.Annotate(
			readstore.NewRatingReadStore,
			fx.As(new(queries.RatingReadStore)),
		),
	),
)

var catalogModule = fx.Module("persistence/catalog",
	fx.Provide(
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(catalog.CatalogQueries)),
		),
		NewCatalog,
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *query.Queries {
	return query.New()
}

func NewDBTX(pool *pgxpool.Pool) query.DBTX {
	return pool
}

// NewCatalog layers the Redis read-through cache over Postgres when a client is configured.
func NewCatalog(q catalog.CatalogQueries, db query.DBTX, rdb *redis.Client, cfg config.Config) shared.Catalog {
	pg := catalog.NewPostgresCatalog(q, db)
	if rdb == nil {
		return pg
	}
	return catalog.NewCachedCatalog(pg, infraredis.NewCache(rdb), cfg.Redis.CacheTTL)
}
