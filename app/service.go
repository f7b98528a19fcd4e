package app

import (
	"sync"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/meerkat-millionaires/kat-staking/models"
)

type Service interface {
	Start()
	Stop()
	Health() models.ServiceHealth
}

type Runner interface {
	Run()
	Status() models.RunnerStatus
}

// Timer returns a channel that fires once after d.
type Timer func(d time.Duration) <-chan time.Time

type RunnerService struct {
	name     string
	runner   Runner
	wg       *sync.WaitGroup
	interval time.Duration
	after    Timer

	stop     chan struct{}
	stopOnce sync.Once

	mu           sync.RWMutex
	lastSyncTime time.Time
	status       models.RunnerStatus
}

func (x *RunnerService) Start() {
	log.Infof("[%s] Starting service", x.name)
	defer x.wg.Done()
	for {
		log.Debugf("[%s] Starting run", x.name)
		x.runner.Run()

		x.mu.Lock()
		x.lastSyncTime = time.Now()
		x.status = x.runner.Status()
		x.mu.Unlock()

		log.Debugf("[%s] Finished run, sleeping for %s", x.name, x.interval)

		select {
		case <-x.stop:
			log.Infof("[%s] Stopped service", x.name)
			return
		case <-x.after(x.interval):
		}
	}
}

func (x *RunnerService) Stop() {
	log.Debugf("[%s] Stopping service", x.name)
	x.stopOnce.Do(func() { close(x.stop) })
}

func (x *RunnerService) Health() models.ServiceHealth {
	x.mu.RLock()
	defer x.mu.RUnlock()
	return models.ServiceHealth{
		Name:         x.name,
		LastSyncTime: x.lastSyncTime,
		NextSyncTime: x.lastSyncTime.Add(x.interval),
		Healthy:      x.status.Healthy,
		Detail:       x.status.Detail,
	}
}

func NewRunnerService(name string, runner Runner, wg *sync.WaitGroup, interval time.Duration) Service {
	return NewRunnerServiceWithTimer(name, runner, wg, interval, time.After)
}

// NewRunnerServiceWithTimer is NewRunnerService with a custom sleep source.
func NewRunnerServiceWithTimer(name string, runner Runner, wg *sync.WaitGroup, interval time.Duration, after Timer) Service {
	if name == "" || runner == nil || wg == nil || interval <= 0 || after == nil {
		log.Debug("[RUNNER] Invalid parameters")
		return nil
	}

	return &RunnerService{
		name:     name,
		runner:   runner,
		wg:       wg,
		interval: interval,
		after:    after,
		stop:     make(chan struct{}),
	}
}

const EmptyServiceName = "empty"

type EmptyService struct {
	wg *sync.WaitGroup
}

func (e *EmptyService) Start() {
	e.wg.Done()
}

func (e *EmptyService) Stop() {}

func (e *EmptyService) Health() models.ServiceHealth {
	return models.ServiceHealth{
		Name:         EmptyServiceName,
		LastSyncTime: time.Now(),
		NextSyncTime: time.Now(),
		Healthy:      true,
	}
}

func NewEmptyService(wg *sync.WaitGroup) Service {
	return &EmptyService{wg: wg}
}
