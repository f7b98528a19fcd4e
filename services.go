package main

import (
	"regexp"
	"sync"

	log "github.com/sirupsen/logrus"

	"github.com/meerkat-millionaires/kat-staking/api"
	"github.com/meerkat-millionaires/kat-staking/app"
	"github.com/meerkat-millionaires/kat-staking/common"
	"github.com/meerkat-millionaires/kat-staking/models"
	"github.com/meerkat-millionaires/kat-staking/sol"
	"github.com/meerkat-millionaires/kat-staking/sol/client"
	"github.com/meerkat-millionaires/kat-staking/stake"
)

// Runtime holds the components shared by every command.
type Runtime struct {
	Signer       common.Signer
	Client       client.SolanaClient
	Poller       *stake.MintPoller
	Orchestrator *stake.Orchestrator
	Feed         *stake.Feed
	Ledger       stake.HistoryLedger
}

func NewRuntime(signer common.Signer, serviceHealthMap map[string]models.ServiceHealth) *Runtime {
	solanaClient := client.NewClient()
	solanaClient.ValidateNetwork()

	addrs, err := sol.AddressesFromConfig()
	if err != nil {
		log.Fatal("[MAIN] Invalid addresses: ", err)
	}

	state := sol.NewRemoteState(solanaClient, addrs)
	poller := CreateMintPoller(state, serviceHealthMap)
	feed := stake.NewFeed(stake.DefaultFeedSize)
	ledger := stake.NewLedger()

	orchestrator := stake.NewOrchestrator(stake.OrchestratorOptions{
		Reconciler:   stake.NewReconciler(state, regexp.MustCompile(app.Config.Collection.NamePattern)),
		Submitter:    sol.NewSubmitter(solanaClient, signer, addrs),
		Images:       sol.NewMetadataStore(),
		CandyMachine: poller,
		Notifier:     stake.Notifiers{stake.LogNotifier{}, feed},
		Ledger:       ledger,
	})

	return &Runtime{
		Signer:       signer,
		Client:       solanaClient,
		Poller:       poller,
		Orchestrator: orchestrator,
		Feed:         feed,
		Ledger:       ledger,
	}
}

func CreateMintPoller(state sol.RemoteState, serviceHealthMap map[string]models.ServiceHealth) *stake.MintPoller {
	if serviceHealth, ok := serviceHealthMap[stake.MintPollerName]; ok {
		return stake.NewMintPollerWithLastHealth(state, serviceHealth)
	}
	return stake.NewMintPoller(state)
}

// LastServiceHealths loads the healths posted by a previous run of this host.
func LastServiceHealths(healthcheck *app.HealthCheckRunner) map[string]models.ServiceHealth {
	serviceHealthMap := make(map[string]models.ServiceHealth)
	if app.DB == nil {
		return serviceHealthMap
	}
	lastHealth, err := healthcheck.FindLastHealth()
	if err != nil {
		log.Debug("[MAIN] No last health found: ", err)
		return serviceHealthMap
	}
	for _, serviceHealth := range lastHealth.ServiceHealths {
		serviceHealthMap[serviceHealth.Name] = serviceHealth
	}
	return serviceHealthMap
}

// CreateAPIService returns the HTTP server, or an empty service when the API
// is disabled.
func CreateAPIService(rt *Runtime, healthcheck *app.HealthCheckRunner, wg *sync.WaitGroup) app.Service {
	if !app.Config.API.Enabled {
		log.Info("[MAIN] API disabled")
		return app.NewEmptyService(wg)
	}
	return api.NewServer(rt.Orchestrator, healthcheck, rt.Feed, rt.Ledger, wg)
}
