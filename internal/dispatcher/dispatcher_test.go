package dispatcher

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dispmocks "github.com/pushworks/push-scheduler/internal/mocks/dispatcher"
	pushmocks "github.com/pushworks/push-scheduler/internal/mocks/push"
	"github.com/pushworks/push-scheduler/internal/model"
	"github.com/pushworks/push-scheduler/internal/push"
)

func setupDispatcher(t *testing.T) (*Dispatcher, *pushmocks.MockTransport, *dispmocks.MocktokenRegistry) {
	ctrl := gomock.NewController(t)
	transport := pushmocks.NewMockTransport(ctrl)
	registry := dispmocks.NewMocktokenRegistry(ctrl)

	return New(transport, registry), transport, registry
}

func allSuccess(tokens []string) *push.BatchResult {
	res := &push.BatchResult{SuccessCount: len(tokens)}
	for _, token := range tokens {
		res.Results = append(res.Results, push.Result{Token: token, Success: true})
	}
	return res
}

func TestDispatch_SplitsIntoBatches(t *testing.T) {
	d, transport, _ := setupDispatcher(t)

	tokens := make([]string, 1200)
	for i := range tokens {
		tokens[i] = fmt.Sprintf("token-%04d", i)
	}

	var (
		mu    sync.Mutex
		sizes []int
		seen  []string
	)
	transport.EXPECT().
		SendBatch(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ *push.Message, batch []string) (*push.BatchResult, error) {
			mu.Lock()
			sizes = append(sizes, len(batch))
			seen = append(seen, batch...)
			mu.Unlock()
			return allSuccess(batch), nil
		}).
		Times(3)

	out := d.Dispatch(context.Background(), tokens, model.NotificationContent{Title: "t", Body: "b"})

	assert.Equal(t, Outcome{SuccessCount: 1200, FailureCount: 0, TotalDevices: 1200}, out)

	// Batches run concurrently, so only the multiset of sizes is stable.
	sort.Ints(sizes)
	assert.Equal(t, []int{200, 500, 500}, sizes)

	// Every token is sent exactly once.
	sort.Strings(seen)
	require.Len(t, seen, 1200)
	assert.Equal(t, tokens, seen)
}

func TestDispatch_PrunesPermanentFailures(t *testing.T) {
	d, transport, registry := setupDispatcher(t)

	tokens := []string{"alive", "gone", "flaky"}

	transport.EXPECT().
		SendBatch(gomock.Any(), gomock.Any(), tokens).
		Return(&push.BatchResult{
			SuccessCount: 1,
			FailureCount: 2,
			Results: []push.Result{
				{Token: "alive", Success: true},
				{Token: "gone", Permanent: true, Error: "unregistered"},
				{Token: "flaky", Error: "unavailable"},
			},
		}, nil)

	// Only the permanently invalid token is removed.
	registry.EXPECT().DeleteByToken(gomock.Any(), "gone").Return(nil)

	out := d.Dispatch(context.Background(), tokens, model.NotificationContent{Title: "t", Body: "b"})

	assert.Equal(t, Outcome{SuccessCount: 1, FailureCount: 2, TotalDevices: 3}, out)
}

func TestDispatch_PruneErrorDoesNotStopOthers(t *testing.T) {
	d, transport, registry := setupDispatcher(t)

	tokens := []string{"a", "b"}

	transport.EXPECT().
		SendBatch(gomock.Any(), gomock.Any(), tokens).
		Return(&push.BatchResult{
			FailureCount: 2,
			Results: []push.Result{
				{Token: "a", Permanent: true, Error: "unregistered"},
				{Token: "b", Permanent: true, Error: "unregistered"},
			},
		}, nil)

	registry.EXPECT().DeleteByToken(gomock.Any(), "a").Return(errors.New("db down"))
	registry.EXPECT().DeleteByToken(gomock.Any(), "b").Return(nil)

	out := d.Dispatch(context.Background(), tokens, model.NotificationContent{Title: "t", Body: "b"})

	assert.Equal(t, Outcome{SuccessCount: 0, FailureCount: 2, TotalDevices: 2}, out)
}

func TestDispatch_BatchErrorCountsAllFailed(t *testing.T) {
	d, transport, _ := setupDispatcher(t)

	tokens := []string{"a", "b", "c"}

	transport.EXPECT().
		SendBatch(gomock.Any(), gomock.Any(), tokens).
		Return(nil, errors.New("transport unavailable"))

	// No DeleteByToken expectation: a batch-level failure prunes nothing.
	out := d.Dispatch(context.Background(), tokens, model.NotificationContent{Title: "t", Body: "b"})

	assert.Equal(t, Outcome{SuccessCount: 0, FailureCount: 3, TotalDevices: 3}, out)
}

func TestDispatch_NoTokens(t *testing.T) {
	d, _, _ := setupDispatcher(t)

	out := d.Dispatch(context.Background(), nil, model.NotificationContent{Title: "t", Body: "b"})

	assert.Equal(t, Outcome{}, out)
}

func TestSplitBatches(t *testing.T) {
	batches := splitBatches([]string{"a", "b", "c", "d", "e"}, 2)

	require.Len(t, batches, 3)
	assert.Equal(t, []string{"a", "b"}, batches[0])
	assert.Equal(t, []string{"c", "d"}, batches[1])
	assert.Equal(t, []string{"e"}, batches[2])
}
