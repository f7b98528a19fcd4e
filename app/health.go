package app

import (
	"os"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/meerkat-millionaires/kat-staking/models"
)

const (
	HealthServiceName = "health"
)

type HealthCheckRunner struct {
	walletAddress string
	hostname      string
	network       string

	mu       sync.Mutex
	services []Service
}

func (x *HealthCheckRunner) Run() {
	x.PostHealth()
}

func (x *HealthCheckRunner) Status() models.RunnerStatus {
	return models.RunnerStatus{Healthy: true}
}

func (x *HealthCheckRunner) FindLastHealth() (models.Health, error) {
	var health models.Health
	filter := bson.M{
		"wallet_address": x.walletAddress,
		"hostname":       x.hostname,
	}
	err := DB.FindOne(models.CollectionHealthChecks, filter, &health)
	return health, err
}

// ServiceHealths returns the health of every registered service except the
// empty placeholders.
func (x *HealthCheckRunner) ServiceHealths() []models.ServiceHealth {
	x.mu.Lock()
	defer x.mu.Unlock()
	var serviceHealths []models.ServiceHealth
	for _, service := range x.services {
		health := service.Health()
		if health.Name == EmptyServiceName {
			continue
		}
		serviceHealths = append(serviceHealths, health)
	}
	return serviceHealths
}

func (x *HealthCheckRunner) PostHealth() bool {
	log.Debug("[HEALTH] Posting health")

	serviceHealths := x.ServiceHealths()
	healthy := true
	for _, health := range serviceHealths {
		healthy = healthy && health.Healthy
	}

	if DB == nil {
		log.Debug("[HEALTH] Persistence disabled, skipping post")
		return true
	}

	filter := bson.M{
		"wallet_address": x.walletAddress,
		"hostname":       x.hostname,
	}

	onInsert := bson.M{
		"wallet_address": x.walletAddress,
		"hostname":       x.hostname,
		"network":        x.network,
		"created_at":     time.Now(),
	}

	onUpdate := bson.M{
		"healthy":         healthy,
		"service_healths": serviceHealths,
		"updated_at":      time.Now(),
	}

	update := bson.M{"$set": onUpdate, "$setOnInsert": onInsert}

	if _, err := DB.UpsertOne(models.CollectionHealthChecks, filter, update); err != nil {
		log.Error("[HEALTH] Error posting health: ", err)
		return false
	}

	log.Info("[HEALTH] Posted health")
	return true
}

func (x *HealthCheckRunner) SetServices(services []Service) {
	x.mu.Lock()
	defer x.mu.Unlock()
	x.services = services
}

func NewHealthCheck(walletAddress string) *HealthCheckRunner {
	log.Debug("[HEALTH] Initializing health")

	hostname, err := os.Hostname()
	if err != nil {
		log.Fatal("[HEALTH] Error getting hostname: ", err)
	}

	x := &HealthCheckRunner{
		walletAddress: walletAddress,
		hostname:      hostname,
		network:       Config.Solana.Network,
	}

	log.Info("[HEALTH] Initialized health")

	return x
}

func NewHealthService(x *HealthCheckRunner, wg *sync.WaitGroup) Service {
	return NewRunnerService(HealthServiceName, x, wg, time.Duration(Config.HealthCheck.IntervalMillis)*time.Millisecond)
}
