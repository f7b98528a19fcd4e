package stake

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/meerkat-millionaires/kat-staking/app"
	"github.com/meerkat-millionaires/kat-staking/models"
	solMocks "github.com/meerkat-millionaires/kat-staking/sol/mocks"
)

type manualTimer struct {
	ticks     chan time.Time
	durations chan time.Duration
}

func newManualTimer() *manualTimer {
	return &manualTimer{
		ticks:     make(chan time.Time),
		durations: make(chan time.Duration, 16),
	}
}

func (m *manualTimer) After(d time.Duration) <-chan time.Time {
	m.durations <- d
	return m.ticks
}

func waitFor(t *testing.T, ch <-chan struct{}) {
	t.Helper()
	select {
	case <-ch:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for fetch")
	}
}

func assertNoFetch(t *testing.T, ch <-chan struct{}) {
	t.Helper()
	select {
	case <-ch:
		t.Fatal("unexpected fetch")
	case <-time.After(50 * time.Millisecond):
	}
}

func testCandyMachine(redeemed uint64) *models.CandyMachineState {
	return &models.CandyMachineState{
		Address:        solana.NewWallet().PublicKey(),
		Price:          1_500_000_000,
		ItemsAvailable: 100,
		ItemsRedeemed:  redeemed,
	}
}

func TestMintPoller_Cadence(t *testing.T) {
	app.Config.CandyMachine.PollIntervalMs = 10000
	app.Config.Solana.RPCTimeoutMillis = 1000

	state := solMocks.NewMockRemoteState(t)
	timer := newManualTimer()
	poller := NewMintPollerWithTimer(state, timer.After)

	fetched := make(chan struct{}, 16)
	state.EXPECT().FetchCandyMachine(mock.Anything).
		Run(func(ctx context.Context) { fetched <- struct{}{} }).
		Return(testCandyMachine(10), nil)

	assert.False(t, poller.Polling())
	assert.Nil(t, poller.State())

	poller.Enable()
	poller.Enable()
	waitFor(t, fetched)
	assertNoFetch(t, fetched)
	assert.Equal(t, 10*time.Second, <-timer.durations)

	timer.ticks <- time.Now()
	waitFor(t, fetched)
	assertNoFetch(t, fetched)

	timer.ticks <- time.Now()
	waitFor(t, fetched)

	poller.Disable()
	assert.False(t, poller.Polling())
	assertNoFetch(t, fetched)

	state.AssertNumberOfCalls(t, "FetchCandyMachine", 3)
	assert.Equal(t, uint64(10), poller.State().ItemsRedeemed)
	assert.True(t, poller.Health().Healthy)
	assert.Equal(t, MintPollerName, poller.Health().Name)
}

func TestMintPoller_FailureKeepsState(t *testing.T) {
	app.Config.CandyMachine.PollIntervalMs = 10000

	state := solMocks.NewMockRemoteState(t)
	timer := newManualTimer()
	poller := NewMintPollerWithTimer(state, timer.After)

	fetched := make(chan struct{}, 16)
	state.EXPECT().FetchCandyMachine(mock.Anything).
		Run(func(ctx context.Context) { fetched <- struct{}{} }).
		Return(testCandyMachine(99), nil).Once()
	state.EXPECT().FetchCandyMachine(mock.Anything).
		Run(func(ctx context.Context) { fetched <- struct{}{} }).
		Return(nil, errors.New("rpc down")).Once()

	poller.Enable()
	waitFor(t, fetched)
	timer.ticks <- time.Now()
	waitFor(t, fetched)
	poller.Disable()

	assert.Equal(t, uint64(99), poller.State().ItemsRedeemed)
	health := poller.Health()
	assert.False(t, health.Healthy)
	assert.Equal(t, "rpc down", health.Detail)
}

func TestMintPoller_FetchIfUnset(t *testing.T) {
	state := solMocks.NewMockRemoteState(t)
	poller := NewMintPollerWithTimer(state, newManualTimer().After)

	state.EXPECT().FetchCandyMachine(mock.Anything).Return(testCandyMachine(100), nil).Once()

	first, err := poller.FetchIfUnset(context.Background())
	assert.Nil(t, err)
	second, err := poller.FetchIfUnset(context.Background())
	assert.Nil(t, err)

	assert.Same(t, first, second)
	view := poller.View()
	assert.True(t, view.SoldOut)
	assert.Equal(t, uint64(0), view.ItemsRemaining)
	assert.Equal(t, "1.5", view.PriceSOL)
	assert.False(t, view.Polling)
}

func TestMintPoller_FetchIfUnsetError(t *testing.T) {
	state := solMocks.NewMockRemoteState(t)
	poller := NewMintPollerWithTimer(state, newManualTimer().After)

	state.EXPECT().FetchCandyMachine(mock.Anything).Return(nil, errors.New("rpc down"))

	got, err := poller.FetchIfUnset(context.Background())

	assert.NotNil(t, err)
	assert.Nil(t, got)
	assert.Nil(t, poller.View().State)
}

func TestMintPoller_StartDate(t *testing.T) {
	app.Config.CandyMachine.StartDate = 1633125660
	defer func() { app.Config.CandyMachine.StartDate = 0 }()

	poller := NewMintPollerWithTimer(solMocks.NewMockRemoteState(t), newManualTimer().After)

	assert.Equal(t, time.Date(2021, 10, 1, 22, 1, 0, 0, time.UTC), *poller.StartDate())
	assert.Equal(t, poller.StartDate(), poller.View().StartDate)

	app.Config.CandyMachine.StartDate = 0
	assert.Nil(t, NewMintPollerWithTimer(solMocks.NewMockRemoteState(t), newManualTimer().After).StartDate())
}

func TestMintPoller_IdleHealth(t *testing.T) {
	poller := NewMintPollerWithTimer(solMocks.NewMockRemoteState(t), newManualTimer().After)

	poller.Disable()

	health := poller.Health()
	assert.Equal(t, MintPollerName, health.Name)
	assert.True(t, health.Healthy)
}

func TestMintPoller_LastHealth(t *testing.T) {
	last := models.ServiceHealth{Name: MintPollerName, Healthy: false, Detail: "rpc down"}
	poller := NewMintPollerWithLastHealth(solMocks.NewMockRemoteState(t), last)

	assert.Equal(t, last, poller.Health())
	assert.False(t, poller.Polling())
}
