package worker

import (
	"context"
	"log/slog"
	"time"

	"github.com/Coca162/Denarius/internal/adapter/storage"
	"github.com/Coca162/Denarius/internal/core/notifications"
)

const (
	pollInterval = 5 * time.Second
	maxAttempts  = 5
)

// StartWebhookWorker runs the delivery loop in the background until ctx is
// cancelled. Jobs that keep failing are retried with a linear backoff and
// marked FAILED after maxAttempts.
func StartWebhookWorker(ctx context.Context, queue *storage.WebhookQueue, secret string) {
	go func() {
		slog.Info("webhook worker started")
		ticker := time.NewTicker(pollInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				slog.Info("webhook worker stopped")
				return
			case <-ticker.C:
				processJobs(ctx, queue, secret)
			}
		}
	}()
}

func processJobs(ctx context.Context, queue *storage.WebhookQueue, secret string) {
	for {
		job, err := queue.Claim(ctx)
		if err != nil {
			slog.Error("webhook worker: claim failed", "error", err)
			return
		}
		if job == nil {
			return
		}

		slog.Info("webhook worker: processing job", "job_id", job.ID, "url", job.URL, "attempts", job.Attempts)

		if err := notifications.SendWebhook(job.URL, job.Payload, secret); err != nil {
			if job.Attempts+1 >= maxAttempts {
				slog.Error("webhook worker: giving up on job", "job_id", job.ID, "error", err)
				if err := queue.Fail(ctx, job.ID); err != nil {
					slog.Error("webhook worker: could not mark job failed", "job_id", job.ID, "error", err)
				}
				continue
			}

			nextRun := time.Now().Add(time.Duration(job.Attempts*10+10) * time.Second)
			slog.Warn("webhook worker: delivery failed, rescheduling", "job_id", job.ID, "next_run", nextRun, "error", err)
			if err := queue.Reschedule(ctx, job.ID, nextRun); err != nil {
				slog.Error("webhook worker: could not reschedule job", "job_id", job.ID, "error", err)
			}
			continue
		}

		if err := queue.Complete(ctx, job.ID); err != nil {
			slog.Error("webhook worker: could not mark job completed", "job_id", job.ID, "error", err)
		}
	}
}
