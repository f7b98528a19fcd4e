package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gagliardetto/solana-go"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	log "github.com/sirupsen/logrus"

	"github.com/meerkat-millionaires/kat-staking/app"
	"github.com/meerkat-millionaires/kat-staking/models"
	"github.com/meerkat-millionaires/kat-staking/stake"
)

const (
	ServerName          = "api"
	DefaultListenAddr   = ":8080"
	shutdownTimeout     = 5 * time.Second
	maxRequestBodyBytes = 1 << 16
)

type Orchestrator interface {
	View() models.View
	OnWalletChange(ctx context.Context, wallet *solana.PublicKey) error
	StakeMint(ctx context.Context, mint solana.PublicKey) stake.ActionResult
	Unstake(ctx context.Context, mint solana.PublicKey) stake.ActionResult
	CreateVault(ctx context.Context) stake.ActionResult
	Mint(ctx context.Context) stake.ActionResult
}

type HealthSource interface {
	ServiceHealths() []models.ServiceHealth
}

type NotificationSource interface {
	Recent() []models.Notification
}

type HistorySource interface {
	History(wallet solana.PublicKey, limit int64) ([]models.ActionRecord, error)
}

// Server exposes the orchestrator over HTTP. It runs as an app.Service.
type Server struct {
	orchestrator  Orchestrator
	health        HealthSource
	notifications NotificationSource
	history       HistorySource

	server *http.Server
	wg     *sync.WaitGroup

	mu        sync.RWMutex
	startedAt time.Time
	lastErr   error
}

type walletRequest struct {
	Address string `json:"address"`
}

type errorResponse struct {
	Error string `json:"error"`
}

type healthResponse struct {
	Healthy        bool                   `json:"healthy"`
	ServiceHealths []models.ServiceHealth `json:"service_healths"`
}

type actionResponse struct {
	Result       stake.ActionResult   `json:"result"`
	Notification *models.Notification `json:"notification,omitempty"`
}

func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(requestLogger)

	r.Get("/health", s.getHealth)
	r.Get("/view", s.getView)
	r.Put("/wallet", s.putWallet)
	r.Delete("/wallet", s.deleteWallet)
	r.Post("/nfts/{mint}/stake", s.postStake)
	r.Post("/nfts/{mint}/unstake", s.postUnstake)
	r.Post("/vault", s.postVault)
	r.Post("/mint", s.postMint)
	r.Get("/candy-machine", s.getCandyMachine)
	r.Get("/notifications", s.getNotifications)
	r.Get("/actions", s.getActions)

	return r
}

func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		log.WithFields(log.Fields{
			"method":   r.Method,
			"path":     r.URL.Path,
			"status":   ww.Status(),
			"duration": time.Since(start),
		}).Debug("[API] Handled request")
	})
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Warnln("[API]", "Failed to encode response:", err)
	}
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, errorResponse{Error: err.Error()})
}

func (s *Server) getHealth(w http.ResponseWriter, r *http.Request) {
	healths := s.health.ServiceHealths()
	healthy := true
	for _, health := range healths {
		healthy = healthy && health.Healthy
	}
	status := http.StatusOK
	if !healthy {
		status = http.StatusServiceUnavailable
	}
	writeJSON(w, status, healthResponse{Healthy: healthy, ServiceHealths: healths})
}

func (s *Server) getView(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.orchestrator.View())
}

func (s *Server) putWallet(w http.ResponseWriter, r *http.Request) {
	var req walletRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBodyBytes)).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	wallet, err := solana.PublicKeyFromBase58(req.Address)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	if err := s.orchestrator.OnWalletChange(context.WithoutCancel(r.Context()), &wallet); err != nil {
		writeError(w, http.StatusBadGateway, err)
		return
	}
	writeJSON(w, http.StatusOK, s.orchestrator.View())
}

func (s *Server) deleteWallet(w http.ResponseWriter, r *http.Request) {
	if err := s.orchestrator.OnWalletChange(r.Context(), nil); err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, s.orchestrator.View())
}

func mintParam(r *http.Request) (solana.PublicKey, error) {
	return solana.PublicKeyFromBase58(chi.URLParam(r, "mint"))
}

// Actions keep running when the client goes away so that a submitted
// transaction is always reported and recorded.
func (s *Server) postStake(w http.ResponseWriter, r *http.Request) {
	mint, err := mintParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeAction(w, s.orchestrator.StakeMint(context.WithoutCancel(r.Context()), mint))
}

func (s *Server) postUnstake(w http.ResponseWriter, r *http.Request) {
	mint, err := mintParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeAction(w, s.orchestrator.Unstake(context.WithoutCancel(r.Context()), mint))
}

func (s *Server) postVault(w http.ResponseWriter, r *http.Request) {
	writeAction(w, s.orchestrator.CreateVault(context.WithoutCancel(r.Context())))
}

func (s *Server) postMint(w http.ResponseWriter, r *http.Request) {
	writeAction(w, s.orchestrator.Mint(context.WithoutCancel(r.Context())))
}

func writeAction(w http.ResponseWriter, result stake.ActionResult) {
	status := http.StatusOK
	switch result.Status {
	case models.ActionStatusSkipped:
		status = http.StatusConflict
	case models.ActionStatusFailed:
		status = http.StatusUnprocessableEntity
	}
	writeJSON(w, status, actionResponse{Result: result, Notification: result.Notification()})
}

func (s *Server) getCandyMachine(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.orchestrator.View().CandyMachine)
}

func (s *Server) getNotifications(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.notifications.Recent())
}

// getActions lists recorded actions for the wallet query parameter, or the
// connected wallet when it is omitted.
func (s *Server) getActions(w http.ResponseWriter, r *http.Request) {
	address := r.URL.Query().Get("wallet")
	if address == "" {
		address = s.orchestrator.View().Wallet
	}
	if address == "" {
		writeError(w, http.StatusBadRequest, errors.New("no wallet connected"))
		return
	}
	wallet, err := solana.PublicKeyFromBase58(address)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	var limit int64
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if limit, err = strconv.ParseInt(raw, 10, 64); err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
	}

	records, err := s.history.History(wallet, limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, records)
}

func (s *Server) Start() {
	defer s.wg.Done()

	s.mu.Lock()
	s.startedAt = time.Now()
	s.mu.Unlock()

	log.Info("[API] Listening on ", s.server.Addr)
	err := s.server.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Error("[API] Server failed: ", err)
		s.mu.Lock()
		s.lastErr = err
		s.mu.Unlock()
		return
	}
	log.Info("[API] Stopped server")
}

func (s *Server) Stop() {
	log.Debug("[API] Stopping server")
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := s.server.Shutdown(ctx); err != nil {
		log.Warn("[API] Error shutting down server: ", err)
	}
}

func (s *Server) Health() models.ServiceHealth {
	s.mu.RLock()
	defer s.mu.RUnlock()
	health := models.ServiceHealth{
		Name:         ServerName,
		LastSyncTime: s.startedAt,
		NextSyncTime: s.startedAt,
		Healthy:      s.lastErr == nil,
	}
	if s.lastErr != nil {
		health.Detail = s.lastErr.Error()
	}
	return health
}

func NewServer(orchestrator Orchestrator, health HealthSource, notifications NotificationSource, history HistorySource, wg *sync.WaitGroup) *Server {
	addr := app.Config.API.ListenAddress
	if addr == "" {
		addr = DefaultListenAddr
	}

	s := &Server{
		orchestrator:  orchestrator,
		health:        health,
		notifications: notifications,
		history:       history,
		wg:            wg,
	}
	s.server = &http.Server{
		Addr:              addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}
