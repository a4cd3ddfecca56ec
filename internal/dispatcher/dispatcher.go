// Package dispatcher fans one notification out to an arbitrary number of
// device tokens through a batch-limited push transport.
package dispatcher

import (
	"context"
	"sync"

	"github.com/wb-go/wbf/zlog"

	"github.com/pushworks/push-scheduler/internal/metrics"
	"github.com/pushworks/push-scheduler/internal/model"
	"github.com/pushworks/push-scheduler/internal/push"
)

//go:generate mockgen -source=dispatcher.go -destination=../mocks/dispatcher/mock.go -package=mocks

// tokenRegistry prunes device tokens the transport reported as permanently
// invalid.
type tokenRegistry interface {
	DeleteByToken(ctx context.Context, token string) error
}

// Outcome is the aggregated result of one multicast dispatch.
type Outcome struct {
	SuccessCount int `json:"success_count"`
	FailureCount int `json:"failure_count"`
	TotalDevices int `json:"total_devices"`
}

// Dispatcher partitions recipient lists into transport-sized batches, sends
// them, and reconciles per-token results into permanent-failure token
// removal.
type Dispatcher struct {
	transport push.Transport
	devices   tokenRegistry
}

// New creates a dispatcher on top of a push transport and a token registry.
func New(transport push.Transport, devices tokenRegistry) *Dispatcher {
	return &Dispatcher{transport: transport, devices: devices}
}

// batchResult is the immutable per-batch value reduced after fan-out.
type batchResult struct {
	success int
	failure int
	invalid []string
}

// Dispatch sends content to every token and returns the aggregated counts.
//
// Partial failure never surfaces as an error: a transport-level batch failure
// counts every token in that batch as failed, a per-token permanent failure
// additionally queues the token for deletion, and anything transient is left
// for a future send. Callers decide what the counts mean for the
// notification as a whole. Duplicate tokens are counted independently.
func (d *Dispatcher) Dispatch(ctx context.Context, tokens []string, content model.NotificationContent) Outcome {
	if len(tokens) == 0 {
		return Outcome{}
	}

	// Content is batch-invariant, so the payload is built once.
	msg := push.BuildMessage(content)

	batches := splitBatches(tokens, push.MaxBatchSize)
	results := make(chan batchResult, len(batches))

	var wg sync.WaitGroup
	wg.Add(len(batches))
	for _, batch := range batches {
		go func(batch []string) {
			defer wg.Done()
			results <- d.sendBatch(ctx, msg, batch)
		}(batch)
	}
	wg.Wait()
	close(results)

	outcome := Outcome{TotalDevices: len(tokens)}
	var prune []string
	for res := range results {
		outcome.SuccessCount += res.success
		outcome.FailureCount += res.failure
		prune = append(prune, res.invalid...)
	}

	// Deletion is best effort per token; one failure must not stop the rest.
	for _, token := range prune {
		if err := d.devices.DeleteByToken(ctx, token); err != nil {
			zlog.Logger.Error().Err(err).Msg("failed to prune invalid device token")
			continue
		}
		metrics.TokensPruned.Inc()
	}

	metrics.DevicesReached.WithLabelValues("success").Add(float64(outcome.SuccessCount))
	metrics.DevicesReached.WithLabelValues("failure").Add(float64(outcome.FailureCount))

	return outcome
}

func (d *Dispatcher) sendBatch(ctx context.Context, msg *push.Message, batch []string) batchResult {
	res, err := d.transport.SendBatch(ctx, msg, batch)
	if err != nil {
		// The whole batch call failed: every token counts as a failure, none
		// is pruned, and retry is left to the next scheduler tick.
		zlog.Logger.Error().Err(err).Int("batch_size", len(batch)).Msg("push transport batch failed")
		return batchResult{failure: len(batch)}
	}

	var out batchResult
	for _, r := range res.Results {
		if r.Success {
			out.success++
			continue
		}
		out.failure++
		if r.Permanent {
			out.invalid = append(out.invalid, r.Token)
		}
	}

	return out
}

// splitBatches partitions tokens into contiguous slices of at most size,
// preserving input order.
func splitBatches(tokens []string, size int) [][]string {
	batches := make([][]string, 0, (len(tokens)+size-1)/size)
	for start := 0; start < len(tokens); start += size {
		end := start + size
		if end > len(tokens) {
			end = len(tokens)
		}
		batches = append(batches, tokens[start:end])
	}
	return batches
}
