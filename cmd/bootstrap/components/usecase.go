package components

import (
	"food-preorder/internal/pkg/clock"
	"food-preorder/internal/usecase"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
		usecase.NewTokenValidator,
		usecase.NewAuthUseCase,
		usecase.NewMenuUseCase,
		usecase.NewSlotUseCase,
		usecase.NewOrderUseCase,
	),
)
