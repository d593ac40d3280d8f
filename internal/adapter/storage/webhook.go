package storage

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// WebhookJob is one queued delivery attempt.
type WebhookJob struct {
	ID       uuid.UUID
	URL      string
	Payload  []byte
	Attempts int
}

// WebhookQueue persists outbound webhook jobs so deliveries survive a crash
// and can be retried by the background worker.
type WebhookQueue struct {
	db *pgxpool.Pool
}

func NewWebhookQueue(db *pgxpool.Pool) *WebhookQueue {
	return &WebhookQueue{db: db}
}

func (q *WebhookQueue) Enqueue(ctx context.Context, url string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	_, err = q.db.Exec(ctx, `INSERT INTO webhook_jobs (url, payload) VALUES ($1, $2)`, url, body)
	if err != nil {
		return dbErr(err)
	}
	return nil
}

// Claim picks the oldest due job and marks it SENDING in one statement, so
// concurrent workers never grab the same job. Returns nil when nothing is
// due.
//
// Claiming pushes next_run_at forward as a visibility timeout: a SENDING row
// left behind by a worker that died before finishing becomes due again once
// that deadline passes and is simply claimed anew.
func (q *WebhookQueue) Claim(ctx context.Context) (*WebhookJob, error) {
	query := `
		UPDATE webhook_jobs SET status = 'SENDING', next_run_at = NOW() + INTERVAL '1 minute'
		WHERE id = (
			SELECT id FROM webhook_jobs
			WHERE status IN ('PENDING', 'SENDING') AND next_run_at <= NOW()
			ORDER BY created_at ASC
			LIMIT 1
			FOR UPDATE SKIP LOCKED
		)
		RETURNING id, url, payload, attempts
	`

	rows, err := q.db.Query(ctx, query)
	if err != nil {
		return nil, dbErr(err)
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, rows.Err()
	}

	var job WebhookJob
	if err := rows.Scan(&job.ID, &job.URL, &job.Payload, &job.Attempts); err != nil {
		return nil, dbErr(err)
	}
	return &job, nil
}

func (q *WebhookQueue) Complete(ctx context.Context, id uuid.UUID) error {
	_, err := q.db.Exec(ctx, `UPDATE webhook_jobs SET status = 'COMPLETED' WHERE id = $1`, id)
	return err
}

func (q *WebhookQueue) Fail(ctx context.Context, id uuid.UUID) error {
	_, err := q.db.Exec(ctx, `UPDATE webhook_jobs SET status = 'FAILED' WHERE id = $1`, id)
	return err
}

func (q *WebhookQueue) Reschedule(ctx context.Context, id uuid.UUID, nextRun time.Time) error {
	_, err := q.db.Exec(ctx,
		`UPDATE webhook_jobs SET status = 'PENDING', attempts = attempts + 1, next_run_at = $2 WHERE id = $1`,
		id, nextRun)
	return err
}
