package repository

import (
	"context"
	"time"

	"food-preorder/internal/infra"
	"food-preorder/internal/infra/db"
	"food-preorder/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type NotificationQueries interface {
	CreateNotificationJob(ctx context.Context, db db.DBTX, arg db.CreateNotificationJobParams) error
	MarkNotificationJobSent(ctx context.Context, db db.DBTX, id uuid.UUID) error
	MarkNotificationJobFailed(ctx context.Context, db db.DBTX, arg db.MarkNotificationJobFailedParams) error
}

type NotificationRepository struct {
	queries NotificationQueries
	db      db.DBTX
}

func NewNotificationRepository(queries *db.Queries, pool db.DBTX) *NotificationRepository {
	return &NotificationRepository{
		queries: queries,
		db:      pool,
	}
}

// CreateJob enqueues a job inside tx so it commits or rolls back with the
// business write.
func (r *NotificationRepository) CreateJob(ctx context.Context, tx db.DBTX, kind, topic string, payload []byte, runAt time.Time) (uuid.UUID, error) {
	id := uuid.New()
	err := r.queries.CreateNotificationJob(ctx, tx, db.CreateNotificationJobParams{
		ID:      id,
		Kind:    kind,
		Topic:   topic,
		Payload: payload,
		RunAt:   pgconv.TimeToPgtype(runAt),
	})
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create notification job", err)
	}
	return id, nil
}

func (r *NotificationRepository) MarkSent(ctx context.Context, id uuid.UUID) error {
	if err := r.queries.MarkNotificationJobSent(ctx, r.db, id); err != nil {
		return infra.WrapRepoErr("failed to mark notification job sent", err)
	}
	return nil
}

func (r *NotificationRepository) MarkFailed(ctx context.Context, id uuid.UUID, cause string) error {
	err := r.queries.MarkNotificationJobFailed(ctx, r.db, db.MarkNotificationJobFailedParams{
		ID:        id,
		LastError: pgconv.StringToPgtype(cause),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to mark notification job failed", err)
	}
	return nil
}
