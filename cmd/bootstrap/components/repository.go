package components

import (
	"food-preorder/internal/infra/db"
	"food-preorder/internal/infra/repository"
	"food-preorder/internal/usecase"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		NewQueries,
		NewDBTX,
		fx.Annotate(
			repository.NewUserRepository,
			fx.As(new(usecase.UserRepository)),
		),
		fx.Annotate(
			repository.NewMenuRepository,
			fx.As(new(usecase.MenuRepository)),
		),
		fx.Annotate(
			repository.NewSlotRepository,
			fx.As(new(usecase.SlotRepository)),
		),
		fx.Annotate(
			repository.NewOrderRepository,
			fx.As(new(usecase.OrderRepository)),
		),
		fx.Annotate(
			repository.NewNotificationRepository,
			fx.As(new(usecase.NotificationRepository)),
		),
	),
)

func NewQueries(_ *pgxpool.Pool) *db.Queries {
	return db.New()
}

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
