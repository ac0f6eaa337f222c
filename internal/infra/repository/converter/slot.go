package converter

import (
	"food-preorder/internal/domain/slot"
	"food-preorder/internal/infra/db"
	"food-preorder/internal/pkg/pgconv"
)

func TimeSlotToCreateParams(s *slot.TimeSlot) db.CreateTimeSlotParams {
	return db.CreateTimeSlotParams{
		ID:        s.ID(),
		SlotDate:  pgconv.DateToPgtype(s.Date()),
		StartTime: pgconv.TimeOfDayToPgtype(s.StartTime()),
		EndTime:   pgconv.TimeOfDayToPgtype(s.EndTime()),
		MaxOrders: s.MaxOrders(),
	}
}

func TimeSlotFromRow(row db.TimeSlots) *slot.TimeSlot {
	return slot.ReconstructTimeSlot(
		row.ID,
		pgconv.DateFromPgtype(row.SlotDate),
		pgconv.TimeOfDayFromPgtype(row.StartTime),
		pgconv.TimeOfDayFromPgtype(row.EndTime),
		row.MaxOrders,
		row.CurrentOrders,
		pgconv.TimeFromPgtype(row.CreatedAt),
	)
}
