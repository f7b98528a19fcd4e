package app

import (
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/meerkat-millionaires/kat-staking/models"
)

// MockRunner counts its runs and reports them as status detail.
type MockRunner struct {
	mu   sync.Mutex
	runs int
}

func (m *MockRunner) Run() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.runs += 1
}

func (m *MockRunner) Status() models.RunnerStatus {
	m.mu.Lock()
	defer m.mu.Unlock()
	return models.RunnerStatus{
		Healthy: m.runs%2 == 1,
		Detail:  strconv.Itoa(m.runs),
	}
}

type tickTimer struct {
	ticks chan time.Time
	calls chan time.Duration
}

func (x *tickTimer) After(d time.Duration) <-chan time.Time {
	x.calls <- d
	return x.ticks
}

func TestRunnerService(t *testing.T) {
	mockRunner := &MockRunner{}
	interval := 10 * time.Second
	timer := &tickTimer{ticks: make(chan time.Time), calls: make(chan time.Duration, 8)}
	wg := &sync.WaitGroup{}
	service := NewRunnerServiceWithTimer("TestService", mockRunner, wg, interval, timer.After)
	wg.Add(1)

	go service.Start()

	assert.Equal(t, interval, <-timer.calls)
	timer.ticks <- time.Now()
	assert.Equal(t, interval, <-timer.calls)
	timer.ticks <- time.Now()
	assert.Equal(t, interval, <-timer.calls)

	service.Stop()
	wg.Wait()

	health := service.Health()
	assert.True(t, health.Healthy)
	assert.Equal(t, "TestService", health.Name)
	assert.Equal(t, "3", health.Detail)
	assert.Equal(t, interval, health.NextSyncTime.Sub(health.LastSyncTime))
}

func TestRunnerServiceRealTimer(t *testing.T) {
	mockRunner := &MockRunner{}
	wg := &sync.WaitGroup{}
	service := NewRunnerService("TestService", mockRunner, wg, 20*time.Millisecond)
	wg.Add(1)

	go service.Start()
	time.Sleep(110 * time.Millisecond)
	service.Stop()
	wg.Wait()

	runs, err := strconv.Atoi(service.Health().Detail)
	assert.NoError(t, err)
	assert.GreaterOrEqual(t, runs, 2)
}

func TestNewRunnerServiceInvalidParameters(t *testing.T) {
	wg := &sync.WaitGroup{}
	assert.Nil(t, NewRunnerService("", nil, wg, 0))
	assert.Nil(t, NewRunnerService("TestService", &MockRunner{}, nil, time.Second))
	assert.Nil(t, NewRunnerServiceWithTimer("TestService", &MockRunner{}, wg, time.Second, nil))
}

func TestRunnerServiceStop(t *testing.T) {
	wg := &sync.WaitGroup{}
	service := NewRunnerService("TestService", &MockRunner{}, wg, 100*time.Millisecond)

	service.Stop()
	service.Stop()

	wg.Add(1)
	service.Start()
	wg.Wait()
	assert.Equal(t, "1", service.Health().Detail)
}

func TestEmptyService(t *testing.T) {
	wg := &sync.WaitGroup{}
	service := NewEmptyService(wg)

	wg.Add(1)
	service.Start()
	wg.Wait()
	service.Stop()

	health := service.Health()
	assert.Equal(t, EmptyServiceName, health.Name)
	assert.True(t, health.Healthy)
}
