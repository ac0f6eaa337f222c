package usecase

import (
	"context"
	"errors"
	"time"

	"food-preorder/internal/domain/slot"
	reqdto "food-preorder/internal/handler/dto/request"
	"food-preorder/internal/infra"
	"food-preorder/internal/pkg/clock"
	"food-preorder/internal/pkg/errs"
	"food-preorder/internal/usecase/readmodel"
)

var ErrSlotConflict = errors.New("time slot already exists")

type SlotUseCase interface {
	ListSlots(ctx context.Context) ([]readmodel.TimeSlotRM, error)
	CreateSlot(ctx context.Context, req reqdto.CreateSlotRequest) (*readmodel.TimeSlotRM, error)
}

type slotUseCaseImpl struct {
	slotRepo SlotRepository
	clock    clock.Clock
}

func NewSlotUseCase(slotRepo SlotRepository, clock clock.Clock) SlotUseCase {
	return &slotUseCaseImpl{
		slotRepo: slotRepo,
		clock:    clock,
	}
}

func (s *slotUseCaseImpl) ListSlots(ctx context.Context) ([]readmodel.TimeSlotRM, error) {
	slots, err := s.slotRepo.List(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	now := s.clock.Now()
	result := make([]readmodel.TimeSlotRM, len(slots))
	for i, entity := range slots {
		result[i] = toTimeSlotRM(entity, now)
	}
	return result, nil
}

func (s *slotUseCaseImpl) CreateSlot(ctx context.Context, req reqdto.CreateSlotRequest) (*readmodel.TimeSlotRM, error) {
	entity, err := req.ToDomain()
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidationFailed)
	}

	created, err := s.slotRepo.Create(ctx, entity)
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, ErrSlotConflict
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	rm := toTimeSlotRM(created, s.clock.Now())
	return &rm, nil
}

func toTimeSlotRM(entity *slot.TimeSlot, now time.Time) readmodel.TimeSlotRM {
	status := entity.Status(now)
	return readmodel.TimeSlotRM{
		ID:            entity.ID(),
		Date:          entity.Date(),
		StartTime:     slot.FormatTimeOfDay(entity.StartTime()),
		EndTime:       slot.FormatTimeOfDay(entity.EndTime()),
		MaxOrders:     entity.MaxOrders(),
		CurrentOrders: entity.CurrentOrders(),
		Remaining:     entity.Remaining(),
		Status:        status.String(),
		StatusColor:   status.Color(),
	}
}
