package worker

import (
	"context"
	"log/slog"
	"time"

	"github.com/muyun-chen/stroke-sort/internal/collation"
	"github.com/muyun-chen/stroke-sort/pkg/kafka"
	"github.com/muyun-chen/stroke-sort/pkg/metrics"
	"github.com/muyun-chen/stroke-sort/pkg/resilience"
)

// Publisher is the subset of the Kafka producer the worker needs.
type Publisher interface {
	Publish(ctx context.Context, event kafka.Event) error
}

// Worker turns SortJob messages into SortResult messages.
type Worker struct {
	collator *collation.Collator
	producer Publisher
	metrics  *metrics.Metrics
	logger   *slog.Logger
}

// New creates a Worker publishing results through producer. m may be nil in
// tests.
func New(collator *collation.Collator, producer Publisher, m *metrics.Metrics) *Worker {
	return &Worker{
		collator: collator,
		producer: producer,
		metrics:  m,
		logger:   slog.Default().With("component", "sort-worker"),
	}
}

// Handle is the kafka.MessageHandler for the sort-jobs topic. Malformed
// payloads are logged and dropped; a rejected job still produces a result
// message so the submitter learns about the failure.
func (w *Worker) Handle(ctx context.Context, key, value []byte) error {
	job, err := kafka.DecodeJSON[SortJob](value)
	if err != nil {
		w.logger.Error("dropping undecodable job", "key", string(key), "error", err)
		w.count("malformed")
		return nil
	}

	result := SortResult{
		JobID:       job.JobID,
		ProcessedAt: time.Now().UTC(),
	}
	sorted := make([]string, len(job.Names))
	copy(sorted, job.Names)
	if err := w.collator.Sort(sorted); err != nil {
		result.Error = err.Error()
		w.count("rejected")
		w.logger.Warn("job rejected", "job_id", job.JobID, "error", err)
	} else {
		result.Sorted = sorted
		w.count("ok")
		if w.metrics != nil {
			w.metrics.NamesSortedTotal.Add(float64(len(sorted)))
		}
	}

	publish := func() error {
		return w.producer.Publish(ctx, kafka.Event{Key: job.JobID, Value: result})
	}
	if err := resilience.Retry(ctx, "publish-sort-result", resilience.RetryConfig{}, publish); err != nil {
		return err
	}
	w.logger.Info("job processed", "job_id", job.JobID, "names", len(job.Names), "rejected", result.Error != "")
	return nil
}

func (w *Worker) count(status string) {
	if w.metrics != nil {
		w.metrics.JobsConsumedTotal.WithLabelValues(status).Inc()
	}
}
