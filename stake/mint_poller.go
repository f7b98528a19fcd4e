package stake

import (
	"context"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/meerkat-millionaires/kat-staking/app"
	"github.com/meerkat-millionaires/kat-staking/models"
	"github.com/meerkat-millionaires/kat-staking/sol"
)

const (
	MintPollerName = "mint poller"
)

// CandyMachineSource is the mint state the orchestrator reads.
type CandyMachineSource interface {
	Enable()
	Disable()
	State() *models.CandyMachineState
	FetchIfUnset(ctx context.Context) (*models.CandyMachineState, error)
	View() models.CandyMachineView
	Health() models.ServiceHealth
}

// MintPoller keeps the candy machine state fresh while enabled. It starts
// idle; Enable fetches once immediately and then once per interval.
type MintPoller struct {
	state     sol.RemoteState
	interval  time.Duration
	timeout   time.Duration
	after     app.Timer
	startDate *time.Time

	mu           sync.RWMutex
	candyMachine *models.CandyMachineState
	lastErr      error
	service      app.Service
	wg           *sync.WaitGroup
	lastHealth   models.ServiceHealth
}

var _ app.Runner = &MintPoller{}
var _ CandyMachineSource = &MintPoller{}

// Run fetches the candy machine once. Failures keep the last known state.
func (x *MintPoller) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), x.timeout)
	defer cancel()
	x.fetch(ctx)
}

func (x *MintPoller) Status() models.RunnerStatus {
	x.mu.RLock()
	defer x.mu.RUnlock()
	if x.lastErr != nil {
		return models.RunnerStatus{Healthy: false, Detail: x.lastErr.Error()}
	}
	return models.RunnerStatus{Healthy: true}
}

func (x *MintPoller) fetch(ctx context.Context) (*models.CandyMachineState, error) {
	state, err := x.state.FetchCandyMachine(ctx)

	x.mu.Lock()
	defer x.mu.Unlock()
	x.lastErr = err
	if err != nil {
		log.Debugln("[MINT POLLER]", "Failed to fetch candy machine:", err)
		return x.candyMachine, err
	}
	x.candyMachine = state
	log.Debugln("[MINT POLLER]", "Fetched candy machine", state.Address, "redeemed", state.ItemsRedeemed, "of", state.ItemsAvailable)
	return state, nil
}

// Enable starts polling. It is a no-op while already polling.
func (x *MintPoller) Enable() {
	x.mu.Lock()
	if x.service != nil {
		x.mu.Unlock()
		return
	}
	wg := &sync.WaitGroup{}
	service := app.NewRunnerServiceWithTimer(MintPollerName, x, wg, x.interval, x.after)
	x.service = service
	x.wg = wg
	wg.Add(1)
	x.mu.Unlock()

	log.Infoln("[MINT POLLER]", "Polling enabled every", x.interval)
	go service.Start()
}

// Disable stops polling and waits for an in-flight fetch to finish.
func (x *MintPoller) Disable() {
	x.mu.Lock()
	service, wg := x.service, x.wg
	x.service, x.wg = nil, nil
	x.mu.Unlock()

	if service == nil {
		return
	}
	service.Stop()
	wg.Wait()

	x.mu.Lock()
	x.lastHealth = service.Health()
	x.mu.Unlock()
	log.Infoln("[MINT POLLER]", "Polling disabled")
}

func (x *MintPoller) Polling() bool {
	x.mu.RLock()
	defer x.mu.RUnlock()
	return x.service != nil
}

func (x *MintPoller) State() *models.CandyMachineState {
	x.mu.RLock()
	defer x.mu.RUnlock()
	return x.candyMachine
}

// FetchIfUnset fetches immediately when no state is known yet.
func (x *MintPoller) FetchIfUnset(ctx context.Context) (*models.CandyMachineState, error) {
	if state := x.State(); state != nil {
		return state, nil
	}
	return x.fetch(ctx)
}

// StartDate is the configured mint opening time, nil when unset.
func (x *MintPoller) StartDate() *time.Time {
	return x.startDate
}

func (x *MintPoller) View() models.CandyMachineView {
	state := x.State()
	view := models.CandyMachineView{
		State:     state,
		StartDate: x.startDate,
		Polling:   x.Polling(),
	}
	if state != nil {
		view.SoldOut = state.SoldOut()
		view.ItemsRemaining = state.ItemsRemaining()
		view.PriceSOL = state.PriceSOL().String()
	}
	return view
}

func (x *MintPoller) Health() models.ServiceHealth {
	x.mu.RLock()
	service, last := x.service, x.lastHealth
	x.mu.RUnlock()

	if service != nil {
		return service.Health()
	}
	if last.Name == "" {
		last = models.ServiceHealth{Name: MintPollerName, Healthy: true}
	}
	return last
}

// Start and Stop let the poller sit alongside the other services.
func (x *MintPoller) Start() {
	x.Enable()
}

func (x *MintPoller) Stop() {
	x.Disable()
}

func NewMintPoller(state sol.RemoteState) *MintPoller {
	return NewMintPollerWithTimer(state, time.After)
}

// NewMintPollerWithLastHealth reports lastHealth until polling is first
// enabled.
func NewMintPollerWithLastHealth(state sol.RemoteState, lastHealth models.ServiceHealth) *MintPoller {
	x := NewMintPoller(state)
	x.lastHealth = lastHealth
	return x
}

func NewMintPollerWithTimer(state sol.RemoteState, after app.Timer) *MintPoller {
	var startDate *time.Time
	if app.Config.CandyMachine.StartDate > 0 {
		date := time.Unix(app.Config.CandyMachine.StartDate, 0).UTC()
		startDate = &date
	}

	interval := time.Duration(app.Config.CandyMachine.PollIntervalMs) * time.Millisecond
	if interval <= 0 {
		interval = app.DefaultPollIntervalMillis * time.Millisecond
	}
	timeout := time.Duration(app.Config.Solana.RPCTimeoutMillis) * time.Millisecond
	if timeout <= 0 {
		timeout = interval
	}

	return &MintPoller{
		state:     state,
		interval:  interval,
		timeout:   timeout,
		after:     after,
		startDate: startDate,
	}
}
