package stake

import (
	"context"
	"sync"
	"time"

	"github.com/gagliardetto/solana-go"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/meerkat-millionaires/kat-staking/app"
	"github.com/meerkat-millionaires/kat-staking/common"
	"github.com/meerkat-millionaires/kat-staking/models"
	"github.com/meerkat-millionaires/kat-staking/sol"
)

// Orchestrator owns the per-wallet view and runs the user actions against it.
// All state is guarded by mu and mutated only after an external call returns.
type Orchestrator struct {
	reconciler   *Reconciler
	submitter    sol.Submitter
	images       sol.MetadataStore
	candyMachine CandyMachineSource
	notifier     Notifier
	ledger       Ledger
	workers      int
	explorerURL  string

	mu       sync.Mutex
	seq      uint64
	wallet   *solana.PublicKey
	vault    models.VaultState
	fetching bool
	starting bool
	minting  bool
	unstaked []models.NFT
	staked   []models.NFT
	// unresolved is the number of staked NFTs left out for missing metadata.
	unresolved int
	items      map[solana.PublicKey]models.ItemState
	imageMap   map[solana.PublicKey]string
	// withdrawn holds mints returned to the wallet's associated token
	// account during this session.
	withdrawn map[solana.PublicKey]bool

	background sync.WaitGroup
}

// OnWalletChange reconciles the given wallet, or resets all state when wallet
// is nil. A pass superseded by a later call is discarded.
func (o *Orchestrator) OnWalletChange(ctx context.Context, wallet *solana.PublicKey) error {
	o.mu.Lock()
	o.seq++
	seq := o.seq

	if wallet == nil {
		o.resetLocked()
		o.mu.Unlock()
		log.Infoln("[ORCHESTRATOR]", "Wallet disconnected")
		return nil
	}

	address := *wallet
	o.resetLocked()
	o.wallet = &address
	o.fetching = true
	o.mu.Unlock()

	o.candyMachine.Enable()

	log.Infoln("[ORCHESTRATOR]", "Wallet changed to", common.ShortAddress(address))
	result, err := o.reconciler.Reconcile(ctx, address)

	o.mu.Lock()
	if seq != o.seq {
		o.mu.Unlock()
		log.Debugln("[ORCHESTRATOR]", "Discarding stale reconciliation for", address)
		return nil
	}
	o.fetching = false
	if err != nil {
		o.unstaked, o.staked = nil, nil
		o.vault = models.VaultNotChecked()
		o.items = map[solana.PublicKey]models.ItemState{}
		o.withdrawn = map[solana.PublicKey]bool{}
		o.mu.Unlock()
		log.Warnln("[ORCHESTRATOR]", "Reconciliation failed:", err)
		return err
	}

	o.vault = result.Vault
	o.unstaked = result.Unstaked
	o.staked = result.Staked
	o.unresolved = result.Unresolved
	o.items = make(map[solana.PublicKey]models.ItemState, len(result.Staked))
	for _, nft := range result.Staked {
		o.items[nft.Mint] = models.ItemState{Staked: true}
	}
	unstaked := append([]models.NFT(nil), result.Unstaked...)
	o.mu.Unlock()

	o.resolveImages(context.WithoutCancel(ctx), seq, unstaked)
	return nil
}

func (o *Orchestrator) resetLocked() {
	o.wallet = nil
	o.vault = models.VaultNotChecked()
	o.fetching = false
	o.starting = false
	o.unstaked = nil
	o.staked = nil
	o.unresolved = 0
	o.items = map[solana.PublicKey]models.ItemState{}
	o.imageMap = map[solana.PublicKey]string{}
	o.withdrawn = map[solana.PublicKey]bool{}
}

// resolveImages fetches images for nfts in the background with a bounded
// number of workers. Failures leave the image unresolved.
func (o *Orchestrator) resolveImages(ctx context.Context, seq uint64, nfts []models.NFT) {
	if len(nfts) == 0 {
		return
	}

	o.background.Add(1)
	go func() {
		defer o.background.Done()

		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(o.workers)
		for _, nft := range nfts {
			if nft.URI == "" {
				continue
			}
			g.Go(func() error {
				image, err := o.images.FetchImage(gctx, nft.URI)
				if err != nil {
					log.Debugln("[ORCHESTRATOR]", "Failed to resolve image for", nft.Mint, err)
					return nil
				}
				o.mu.Lock()
				if seq == o.seq {
					o.imageMap[nft.Mint] = image
				}
				o.mu.Unlock()
				return nil
			})
		}
		_ = g.Wait()
	}()
}

// Wait blocks until background image resolution has finished.
func (o *Orchestrator) Wait() {
	o.background.Wait()
}

// beginLocked checks the common action preconditions and returns the connected
// wallet. A false result means the action should be skipped.
func (o *Orchestrator) beginLocked(action models.ActionKind) (ActionResult, bool) {
	result := ActionResult{
		ID:        uuid.NewString(),
		Action:    action,
		StartedAt: time.Now(),
	}
	if o.wallet == nil {
		return skipped(action, "no wallet connected"), false
	}
	result.Wallet = *o.wallet
	return result, true
}

func (o *Orchestrator) checkSigner(result ActionResult) error {
	if o.submitter.Wallet() != result.Wallet {
		return sol.ErrSignerMismatch
	}
	return nil
}

func (o *Orchestrator) complete(result ActionResult) ActionResult {
	if n := result.Notification(); n != nil {
		o.notifier.Notify(*n)
	}
	if !result.Skipped() {
		if err := o.ledger.Record(result); err != nil {
			log.Warnln("[ORCHESTRATOR]", "Failed to record action", result.ID, err)
		}
	}
	return result
}

// Stake deposits mint into the wallet's vault. The vault must exist and the
// mint must not have an action in flight.
func (o *Orchestrator) Stake(ctx context.Context, mint solana.PublicKey, creator solana.PublicKey, source solana.PublicKey) ActionResult {
	return o.runItemAction(ctx, models.ActionStake, mint, func(vault solana.PublicKey) (solana.Signature, error) {
		return o.submitter.Deposit(ctx, vault, mint, creator, source)
	})
}

// Unstake withdraws mint from the wallet's vault back to the wallet.
func (o *Orchestrator) Unstake(ctx context.Context, mint solana.PublicKey) ActionResult {
	return o.runItemAction(ctx, models.ActionUnstake, mint, func(vault solana.PublicKey) (solana.Signature, error) {
		return o.submitter.Withdraw(ctx, vault, mint)
	})
}

// StakeMint stakes any listed NFT using its first creator. Items that were
// in the vault at reconciliation, or were withdrawn since, are taken from the
// wallet's associated token account.
func (o *Orchestrator) StakeMint(ctx context.Context, mint solana.PublicKey) ActionResult {
	o.mu.Lock()
	nft, source, found := o.findLocked(mint)
	o.mu.Unlock()

	if !found {
		return skipped(models.ActionStake, "unknown mint")
	}
	creator, ok := nft.Creator()
	if !ok {
		return skipped(models.ActionStake, "mint has no creator")
	}
	return o.Stake(ctx, mint, creator, source)
}

func (o *Orchestrator) findLocked(mint solana.PublicKey) (models.NFT, solana.PublicKey, bool) {
	for _, nft := range o.unstaked {
		if nft.Mint == mint {
			if o.withdrawn[mint] {
				return nft, solana.PublicKey{}, true
			}
			return nft, nft.TokenAccount, true
		}
	}
	for _, nft := range o.staked {
		if nft.Mint == mint {
			return nft, solana.PublicKey{}, true
		}
	}
	return models.NFT{}, solana.PublicKey{}, false
}

func (o *Orchestrator) runItemAction(ctx context.Context, action models.ActionKind, mint solana.PublicKey, submit func(vault solana.PublicKey) (solana.Signature, error)) ActionResult {
	o.mu.Lock()
	result, ok := o.beginLocked(action)
	if !ok {
		o.mu.Unlock()
		return result
	}
	vault, exists := o.vault.Address()
	if !exists {
		o.mu.Unlock()
		return skipped(action, "vault does not exist")
	}
	state := o.items[mint]
	if state.Loading {
		o.mu.Unlock()
		return skipped(action, "action in progress")
	}
	if staking := action == models.ActionStake; state.Staked == staking {
		o.mu.Unlock()
		if staking {
			return skipped(action, "mint is already staked")
		}
		return skipped(action, "mint is not staked")
	}
	state.Loading = true
	o.items[mint] = state
	seq := o.seq
	o.mu.Unlock()

	result.Mint = mint
	result.Vault = vault

	sig, err := o.submitItem(result, submit, vault)

	o.mu.Lock()
	if seq == o.seq {
		state := o.items[mint]
		state.Loading = false
		if err == nil {
			state.Staked = action == models.ActionStake
			if !state.Staked {
				o.withdrawn[mint] = true
			}
		}
		o.items[mint] = state
	}
	o.mu.Unlock()

	return o.complete(result.finish(sig, err, o.explorerURL))
}

func (o *Orchestrator) submitItem(result ActionResult, submit func(vault solana.PublicKey) (solana.Signature, error), vault solana.PublicKey) (solana.Signature, error) {
	if err := o.checkSigner(result); err != nil {
		return solana.Signature{}, err
	}
	unlock, err := o.ledger.Lock(result.Mint)
	if err != nil {
		return solana.Signature{}, err
	}
	defer unlock()

	log.Infoln("[ORCHESTRATOR]", "Submitting", result.Action, "for", result.Mint)
	return submit(vault)
}

// CreateVault initializes the wallet's vault. The vault must be known to be
// missing.
func (o *Orchestrator) CreateVault(ctx context.Context) ActionResult {
	o.mu.Lock()
	result, ok := o.beginLocked(models.ActionCreateVault)
	if !ok {
		o.mu.Unlock()
		return result
	}
	if !o.vault.Missing() {
		o.mu.Unlock()
		return skipped(models.ActionCreateVault, "vault is not missing")
	}
	if o.starting {
		o.mu.Unlock()
		return skipped(models.ActionCreateVault, "vault creation in progress")
	}
	o.starting = true
	seq := o.seq
	o.mu.Unlock()

	var (
		sig   solana.Signature
		vault solana.PublicKey
		err   = o.checkSigner(result)
	)
	if err == nil {
		log.Infoln("[ORCHESTRATOR]", "Creating vault for", result.Wallet)
		sig, vault, err = o.submitter.InitVault(ctx)
	}

	o.mu.Lock()
	if seq == o.seq {
		o.starting = false
		if err == nil {
			o.vault = models.VaultExists(vault)
		}
	}
	o.mu.Unlock()

	result.Vault = vault
	return o.complete(result.finish(sig, err, o.explorerURL))
}

// Mint mints one NFT from the candy machine into the wallet.
func (o *Orchestrator) Mint(ctx context.Context) ActionResult {
	o.mu.Lock()
	result, ok := o.beginLocked(models.ActionMint)
	if !ok {
		o.mu.Unlock()
		return result
	}
	if o.minting {
		o.mu.Unlock()
		return skipped(models.ActionMint, "mint in progress")
	}
	o.minting = true
	o.mu.Unlock()

	defer func() {
		o.mu.Lock()
		o.minting = false
		o.mu.Unlock()
	}()

	var (
		sig  solana.Signature
		mint solana.PublicKey
		err  = o.checkSigner(result)
	)
	if err == nil {
		var state *models.CandyMachineState
		if state, err = o.candyMachine.FetchIfUnset(ctx); err == nil {
			log.Infoln("[ORCHESTRATOR]", "Minting from", state.Address)
			sig, mint, err = o.submitter.Mint(ctx, state)
		}
	}

	result.Mint = mint
	return o.complete(result.finish(sig, err, o.explorerURL))
}

// View returns a snapshot of the current state.
func (o *Orchestrator) View() models.View {
	o.mu.Lock()
	defer o.mu.Unlock()

	view := models.View{
		Vault:        o.vault,
		Fetching:     o.fetching,
		Starting:     o.starting,
		Unresolved:   o.unresolved,
		CandyMachine: o.candyMachine.View(),
	}
	view.CandyMachine.Minting = o.minting
	if o.wallet != nil {
		view.Wallet = o.wallet.String()
	}

	items := make([]models.ViewItem, 0, len(o.unstaked)+len(o.staked))
	for _, nft := range o.unstaked {
		items = append(items, models.ViewItem{NFT: nft, ItemState: o.items[nft.Mint], Image: o.imageMap[nft.Mint]})
	}
	for _, nft := range o.staked {
		items = append(items, models.ViewItem{NFT: nft, ItemState: o.items[nft.Mint], Image: o.imageMap[nft.Mint]})
	}
	SortItems(items)
	view.Items = items

	return view
}

func (o *Orchestrator) Wallet() *solana.PublicKey {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.wallet == nil {
		return nil
	}
	wallet := *o.wallet
	return &wallet
}

type OrchestratorOptions struct {
	Reconciler   *Reconciler
	Submitter    sol.Submitter
	Images       sol.MetadataStore
	CandyMachine CandyMachineSource
	Notifier     Notifier
	Ledger       Ledger
}

func NewOrchestrator(opts OrchestratorOptions) *Orchestrator {
	workers := app.Config.Metadata.ImageWorkers
	if workers <= 0 {
		workers = 1
	}
	notifier := opts.Notifier
	if notifier == nil {
		notifier = LogNotifier{}
	}
	ledger := opts.Ledger
	if ledger == nil {
		ledger = NopLedger{}
	}

	o := &Orchestrator{
		reconciler:   opts.Reconciler,
		submitter:    opts.Submitter,
		images:       opts.Images,
		candyMachine: opts.CandyMachine,
		notifier:     notifier,
		ledger:       ledger,
		workers:      workers,
		explorerURL:  app.Config.Solana.ExplorerURL,
	}
	o.resetLocked()
	return o
}
