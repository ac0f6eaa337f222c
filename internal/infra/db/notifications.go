package db

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type CreateNotificationJobParams struct {
	ID      uuid.UUID
	Kind    string
	Topic   string
	Payload []byte
	RunAt   pgtype.Timestamptz
}

func (q *Queries) CreateNotificationJob(ctx context.Context, db DBTX, arg CreateNotificationJobParams) error {
	_, err := db.Exec(ctx, `
		INSERT INTO notification_jobs (id, kind, topic, payload, run_at, attempts, status)
		VALUES ($1, $2, $3, $4, $5, 0, 'pending')`,
		arg.ID, arg.Kind, arg.Topic, arg.Payload, arg.RunAt,
	)
	return err
}

func (q *Queries) MarkNotificationJobSent(ctx context.Context, db DBTX, id uuid.UUID) error {
	_, err := db.Exec(ctx, `
		UPDATE notification_jobs
		SET status = 'sent', attempts = attempts + 1, updated_at = now()
		WHERE id = $1`,
		id,
	)
	return err
}

type MarkNotificationJobFailedParams struct {
	ID        uuid.UUID
	LastError pgtype.Text
}

func (q *Queries) MarkNotificationJobFailed(ctx context.Context, db DBTX, arg MarkNotificationJobFailedParams) error {
	_, err := db.Exec(ctx, `
		UPDATE notification_jobs
		SET status = 'failed', attempts = attempts + 1, last_error = $2, updated_at = now()
		WHERE id = $1`,
		arg.ID, arg.LastError,
	)
	return err
}
