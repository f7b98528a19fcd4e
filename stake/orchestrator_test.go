package stake

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/meerkat-millionaires/kat-staking/app"
	"github.com/meerkat-millionaires/kat-staking/common"
	"github.com/meerkat-millionaires/kat-staking/models"
	"github.com/meerkat-millionaires/kat-staking/sol"
	"github.com/meerkat-millionaires/kat-staking/sol/client"
	solMocks "github.com/meerkat-millionaires/kat-staking/sol/mocks"
	stakeMocks "github.com/meerkat-millionaires/kat-staking/stake/mocks"
)

type fakeLedger struct {
	mu      sync.Mutex
	lockErr error
	locked  []solana.PublicKey
	records []ActionResult
}

func (l *fakeLedger) Lock(mint solana.PublicKey) (func(), error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.lockErr != nil {
		return nil, l.lockErr
	}
	l.locked = append(l.locked, mint)
	return func() {}, nil
}

func (l *fakeLedger) Record(result ActionResult) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.records = append(l.records, result)
	return nil
}

type harness struct {
	state     *solMocks.MockRemoteState
	submitter *solMocks.MockSubmitter
	images    *solMocks.MockMetadataStore
	candy     *stakeMocks.MockCandyMachineSource
	feed      *Feed
	ledger    *fakeLedger
	o         *Orchestrator
	wallet    solana.PublicKey
	vault     solana.PublicKey
}

func newHarness(t *testing.T) *harness {
	app.Config.Metadata.ImageWorkers = 2
	app.Config.Solana.ExplorerURL = "https://solscan.io"

	h := &harness{
		state:     solMocks.NewMockRemoteState(t),
		submitter: solMocks.NewMockSubmitter(t),
		images:    solMocks.NewMockMetadataStore(t),
		candy:     stakeMocks.NewMockCandyMachineSource(t),
		feed:      NewFeed(10),
		ledger:    &fakeLedger{},
		wallet:    solana.NewWallet().PublicKey(),
		vault:     solana.NewWallet().PublicKey(),
	}
	h.candy.EXPECT().Enable().Maybe()
	h.candy.EXPECT().View().Return(models.CandyMachineView{}).Maybe()
	h.submitter.EXPECT().Wallet().Return(h.wallet).Maybe()
	h.images.EXPECT().FetchImage(mock.Anything, mock.Anything).Return("https://arweave.net/image.png", nil).Maybe()

	h.o = NewOrchestrator(OrchestratorOptions{
		Reconciler:   NewReconciler(h.state, collectionPattern),
		Submitter:    h.submitter,
		Images:       h.images,
		CandyMachine: h.candy,
		Notifier:     h.feed,
		Ledger:       h.ledger,
	})
	return h
}

// connect reconciles the harness wallet. A nil staked slice means the wallet
// has no vault.
func (h *harness) connect(t *testing.T, owned []models.NFT, staked []models.NFT) {
	h.state.EXPECT().FetchOwnedNFTs(mock.Anything, h.wallet).Return(owned, nil).Once()
	h.state.EXPECT().VaultAddress(h.wallet).Return(h.vault, nil).Once()
	if staked == nil {
		h.state.EXPECT().FetchVault(mock.Anything, h.vault).Return(nil, client.ErrAccountNotFound).Once()
	} else {
		h.state.EXPECT().FetchVault(mock.Anything, h.vault).Return(&models.Vault{Owner: h.wallet}, nil).Once()
		records := make([]models.DepositRecord, len(staked))
		mints := make([]solana.PublicKey, len(staked))
		metadata := make([]*models.NFT, len(staked))
		for i := range staked {
			records[i] = models.DepositRecord{Vault: h.vault, GemMint: staked[i].Mint, GemCount: 1}
			mints[i] = staked[i].Mint
			metadata[i] = &staked[i]
		}
		h.state.EXPECT().FetchDepositRecords(mock.Anything, h.vault).Return(records, nil).Once()
		if len(staked) > 0 {
			h.state.EXPECT().FetchMetadata(mock.Anything, mints).Return(metadata, nil).Once()
		}
	}

	wallet := h.wallet
	assert.Nil(t, h.o.OnWalletChange(context.Background(), &wallet))
	h.o.Wait()
}

func itemState(view models.View, mint solana.PublicKey) (models.ViewItem, bool) {
	for _, item := range view.Items {
		if item.Mint == mint {
			return item, true
		}
	}
	return models.ViewItem{}, false
}

func TestOrchestrator_InitialView(t *testing.T) {
	h := newHarness(t)

	view := h.o.View()

	assert.Equal(t, models.VaultStatusNotChecked, view.Vault.Status())
	assert.Empty(t, view.Items)
	assert.Empty(t, view.Wallet)
	assert.Nil(t, h.o.Wallet())
}

func TestOrchestrator_WalletChangeAndReset(t *testing.T) {
	h := newHarness(t)
	owned := []models.NFT{newNFT("Meerkat #3"), newNFT("Meerkat #1")}
	staked := []models.NFT{newNFT("Meerkat #20")}

	h.connect(t, owned, staked)

	view := h.o.View()
	assert.Equal(t, h.wallet.String(), view.Wallet)
	assert.True(t, view.Vault.Exists())
	assert.False(t, view.Fetching)
	assert.Equal(t, []string{"Meerkat #1", "Meerkat #3", "Meerkat #20"}, names(view.Items))
	assert.Equal(t, "https://arweave.net/image.png", view.Items[0].Image)
	assert.True(t, view.Items[2].Staked)
	assert.Empty(t, view.Items[2].Image)

	for i := 0; i < 2; i++ {
		assert.Nil(t, h.o.OnWalletChange(context.Background(), nil))

		view = h.o.View()
		assert.Empty(t, view.Items)
		assert.Equal(t, models.VaultStatusNotChecked, view.Vault.Status())
		assert.Empty(t, view.Wallet)
	}
}

func TestOrchestrator_UnresolvedStaked(t *testing.T) {
	h := newHarness(t)
	mint := solana.NewWallet().PublicKey()
	h.state.EXPECT().FetchOwnedNFTs(mock.Anything, h.wallet).Return(nil, nil)
	h.state.EXPECT().VaultAddress(h.wallet).Return(h.vault, nil)
	h.state.EXPECT().FetchVault(mock.Anything, h.vault).Return(&models.Vault{Owner: h.wallet}, nil)
	h.state.EXPECT().FetchDepositRecords(mock.Anything, h.vault).
		Return([]models.DepositRecord{{Vault: h.vault, GemMint: mint, GemCount: 1}}, nil)
	h.state.EXPECT().FetchMetadata(mock.Anything, []solana.PublicKey{mint}).Return(nil, errors.New("rpc down"))

	wallet := h.wallet
	assert.Nil(t, h.o.OnWalletChange(context.Background(), &wallet))

	view := h.o.View()
	assert.Empty(t, view.Items)
	assert.Equal(t, 1, view.Unresolved)

	assert.Nil(t, h.o.OnWalletChange(context.Background(), nil))
	assert.Zero(t, h.o.View().Unresolved)
}

func TestOrchestrator_VaultNotCheckedWhileFetching(t *testing.T) {
	h := newHarness(t)

	h.state.EXPECT().FetchOwnedNFTs(mock.Anything, h.wallet).
		Run(func(ctx context.Context, owner solana.PublicKey) {
			view := h.o.View()
			assert.True(t, view.Fetching)
			assert.Equal(t, models.VaultStatusNotChecked, view.Vault.Status())
		}).
		Return(nil, nil)
	h.state.EXPECT().VaultAddress(h.wallet).Return(h.vault, nil)
	h.state.EXPECT().FetchVault(mock.Anything, h.vault).Return(nil, client.ErrAccountNotFound)

	wallet := h.wallet
	assert.Nil(t, h.o.OnWalletChange(context.Background(), &wallet))

	assert.Equal(t, models.VaultStatusMissing, h.o.View().Vault.Status())
}

func TestOrchestrator_ReconciliationFailureClearsState(t *testing.T) {
	h := newHarness(t)
	h.connect(t, []models.NFT{newNFT("Meerkat #1")}, nil)

	h.state.EXPECT().FetchOwnedNFTs(mock.Anything, h.wallet).Return(nil, errors.New("rpc down"))

	wallet := h.wallet
	err := h.o.OnWalletChange(context.Background(), &wallet)

	assert.NotNil(t, err)
	view := h.o.View()
	assert.Empty(t, view.Items)
	assert.Equal(t, models.VaultStatusNotChecked, view.Vault.Status())
	assert.False(t, view.Fetching)
	assert.Empty(t, h.feed.Recent())
}

func TestOrchestrator_StaleReconciliationDiscarded(t *testing.T) {
	h := newHarness(t)
	first := solana.NewWallet().PublicKey()
	second := h.wallet
	firstNFT := newNFT("Meerkat #1")
	secondNFT := newNFT("Meerkat #2")

	release := make(chan struct{})
	started := make(chan struct{})
	h.state.EXPECT().FetchOwnedNFTs(mock.Anything, first).
		Run(func(ctx context.Context, owner solana.PublicKey) {
			close(started)
			<-release
		}).
		Return([]models.NFT{firstNFT}, nil)
	h.state.EXPECT().VaultAddress(first).Return(h.vault, nil)
	h.state.EXPECT().FetchVault(mock.Anything, h.vault).Return(nil, client.ErrAccountNotFound)

	done := make(chan error)
	go func() {
		done <- h.o.OnWalletChange(context.Background(), &first)
	}()
	<-started

	h.state.EXPECT().FetchOwnedNFTs(mock.Anything, second).Return([]models.NFT{secondNFT}, nil)
	h.state.EXPECT().VaultAddress(second).Return(h.vault, nil)
	assert.Nil(t, h.o.OnWalletChange(context.Background(), &second))

	close(release)
	assert.Nil(t, <-done)
	h.o.Wait()

	view := h.o.View()
	assert.Equal(t, second.String(), view.Wallet)
	assert.Equal(t, []string{"Meerkat #2"}, names(view.Items))
}

func TestOrchestrator_Stake(t *testing.T) {
	h := newHarness(t)
	nft := newNFT("Meerkat #1")
	h.connect(t, []models.NFT{nft}, []models.NFT{})

	sig := solana.Signature{5}
	creator, _ := nft.Creator()
	h.submitter.EXPECT().Deposit(mock.Anything, h.vault, nft.Mint, creator, nft.TokenAccount).
		Run(func(ctx context.Context, vault, mint, creator, source solana.PublicKey) {
			item, _ := itemState(h.o.View(), nft.Mint)
			assert.True(t, item.Loading)
		}).
		Return(sig, nil)

	result := h.o.StakeMint(context.Background(), nft.Mint)

	assert.True(t, result.Succeeded())
	assert.Equal(t, "Mint staked successfully!", result.Message)
	assert.Equal(t, "https://solscan.io/tx/"+sig.String(), result.Link)

	item, ok := itemState(h.o.View(), nft.Mint)
	assert.True(t, ok)
	assert.True(t, item.Staked)
	assert.False(t, item.Loading)

	notifications := h.feed.Recent()
	assert.Len(t, notifications, 1)
	assert.Equal(t, models.NotificationSuccess, notifications[0].Level)
	assert.Equal(t, []solana.PublicKey{nft.Mint}, h.ledger.locked)
	assert.Len(t, h.ledger.records, 1)
}

func TestOrchestrator_StakeFailure(t *testing.T) {
	h := newHarness(t)
	nft := newNFT("Meerkat #1")
	h.connect(t, []models.NFT{nft}, []models.NFT{})

	h.submitter.EXPECT().Deposit(mock.Anything, h.vault, nft.Mint, mock.Anything, mock.Anything).
		Return(solana.Signature{}, common.ErrSignatureDenied)

	result := h.o.StakeMint(context.Background(), nft.Mint)

	assert.Equal(t, models.ActionStatusFailed, result.Status)
	item, _ := itemState(h.o.View(), nft.Mint)
	assert.False(t, item.Staked)
	assert.False(t, item.Loading)

	n := h.feed.Recent()
	assert.Len(t, n, 1)
	assert.Equal(t, models.NotificationError, n[0].Level)
	assert.Equal(t, "Signature request denied!", n[0].Message)
}

func TestOrchestrator_StakeGuards(t *testing.T) {
	t.Run("no wallet", func(t *testing.T) {
		h := newHarness(t)

		result := h.o.Stake(context.Background(), solana.NewWallet().PublicKey(), solana.PublicKey{}, solana.PublicKey{})

		assert.True(t, result.Skipped())
		assert.Nil(t, result.Notification())
	})

	t.Run("no vault", func(t *testing.T) {
		h := newHarness(t)
		nft := newNFT("Meerkat #1")
		h.connect(t, []models.NFT{nft}, nil)

		result := h.o.StakeMint(context.Background(), nft.Mint)

		assert.True(t, result.Skipped())
		assert.Empty(t, h.feed.Recent())
		assert.Empty(t, h.ledger.records)
	})

	t.Run("unknown mint", func(t *testing.T) {
		h := newHarness(t)
		h.connect(t, nil, []models.NFT{})

		result := h.o.StakeMint(context.Background(), solana.NewWallet().PublicKey())

		assert.True(t, result.Skipped())
	})

	t.Run("already loading", func(t *testing.T) {
		h := newHarness(t)
		nft := newNFT("Meerkat #1")
		h.connect(t, []models.NFT{nft}, []models.NFT{})

		var nested ActionResult
		h.submitter.EXPECT().Deposit(mock.Anything, h.vault, nft.Mint, mock.Anything, mock.Anything).
			Run(func(ctx context.Context, vault, mint, creator, source solana.PublicKey) {
				nested = h.o.StakeMint(ctx, nft.Mint)
			}).
			Return(solana.Signature{1}, nil).Once()

		result := h.o.StakeMint(context.Background(), nft.Mint)

		assert.True(t, result.Succeeded())
		assert.True(t, nested.Skipped())
		assert.Len(t, h.feed.Recent(), 1)
	})
}

func TestOrchestrator_Unstake(t *testing.T) {
	h := newHarness(t)
	nft := newNFT("Meerkat #4")
	h.connect(t, nil, []models.NFT{nft})

	h.submitter.EXPECT().Withdraw(mock.Anything, h.vault, nft.Mint).Return(solana.Signature{2}, nil)

	result := h.o.Unstake(context.Background(), nft.Mint)

	assert.True(t, result.Succeeded())
	assert.Equal(t, "Mint unstaked successfully!", result.Message)
	item, _ := itemState(h.o.View(), nft.Mint)
	assert.False(t, item.Staked)
	assert.False(t, item.Loading)
}

func TestOrchestrator_StakedStateGuards(t *testing.T) {
	t.Run("stake already staked", func(t *testing.T) {
		h := newHarness(t)
		nft := newNFT("Meerkat #1")
		h.connect(t, []models.NFT{nft}, []models.NFT{})
		h.submitter.EXPECT().Deposit(mock.Anything, h.vault, nft.Mint, mock.Anything, mock.Anything).
			Return(solana.Signature{1}, nil).Once()

		assert.True(t, h.o.StakeMint(context.Background(), nft.Mint).Succeeded())
		result := h.o.StakeMint(context.Background(), nft.Mint)

		assert.True(t, result.Skipped())
		assert.Equal(t, "mint is already staked", result.Message)
		assert.Len(t, h.ledger.records, 1)
	})

	t.Run("stake staked at reconciliation", func(t *testing.T) {
		h := newHarness(t)
		nft := newNFT("Meerkat #4")
		h.connect(t, nil, []models.NFT{nft})

		result := h.o.StakeMint(context.Background(), nft.Mint)

		assert.True(t, result.Skipped())
		assert.Empty(t, h.ledger.locked)
	})

	t.Run("unstake never staked", func(t *testing.T) {
		h := newHarness(t)
		nft := newNFT("Meerkat #1")
		h.connect(t, []models.NFT{nft}, []models.NFT{})

		result := h.o.Unstake(context.Background(), nft.Mint)

		assert.True(t, result.Skipped())
		assert.Equal(t, "mint is not staked", result.Message)
		assert.Empty(t, h.ledger.locked)
		assert.Empty(t, h.feed.Recent())
	})
}

func TestOrchestrator_UnstakeThenRestake(t *testing.T) {
	t.Run("staked at reconciliation", func(t *testing.T) {
		h := newHarness(t)
		nft := newNFT("Meerkat #4")
		h.connect(t, nil, []models.NFT{nft})
		creator, _ := nft.Creator()
		h.submitter.EXPECT().Withdraw(mock.Anything, h.vault, nft.Mint).Return(solana.Signature{2}, nil).Once()
		h.submitter.EXPECT().Deposit(mock.Anything, h.vault, nft.Mint, creator, solana.PublicKey{}).
			Return(solana.Signature{3}, nil).Once()

		assert.True(t, h.o.Unstake(context.Background(), nft.Mint).Succeeded())
		result := h.o.StakeMint(context.Background(), nft.Mint)

		assert.True(t, result.Succeeded())
		item, _ := itemState(h.o.View(), nft.Mint)
		assert.True(t, item.Staked)
	})

	t.Run("staked in session", func(t *testing.T) {
		h := newHarness(t)
		nft := newNFT("Meerkat #1")
		h.connect(t, []models.NFT{nft}, []models.NFT{})
		h.submitter.EXPECT().Deposit(mock.Anything, h.vault, nft.Mint, mock.Anything, nft.TokenAccount).
			Return(solana.Signature{1}, nil).Once()
		h.submitter.EXPECT().Withdraw(mock.Anything, h.vault, nft.Mint).Return(solana.Signature{2}, nil).Once()
		h.submitter.EXPECT().Deposit(mock.Anything, h.vault, nft.Mint, mock.Anything, solana.PublicKey{}).
			Return(solana.Signature{3}, nil).Once()

		assert.True(t, h.o.StakeMint(context.Background(), nft.Mint).Succeeded())
		assert.True(t, h.o.Unstake(context.Background(), nft.Mint).Succeeded())
		assert.True(t, h.o.StakeMint(context.Background(), nft.Mint).Succeeded())
		assert.Len(t, h.ledger.records, 3)
	})
}

func TestOrchestrator_UnstakeLocked(t *testing.T) {
	h := newHarness(t)
	nft := newNFT("Meerkat #4")
	h.connect(t, nil, []models.NFT{nft})
	h.ledger.lockErr = errors.New("mint " + nft.Mint.String() + " is being processed")

	result := h.o.Unstake(context.Background(), nft.Mint)

	assert.Equal(t, models.ActionStatusFailed, result.Status)
	assert.Contains(t, result.Message, "is being processed")
	item, _ := itemState(h.o.View(), nft.Mint)
	assert.True(t, item.Staked)
	assert.False(t, item.Loading)
}

func TestOrchestrator_SignerMismatch(t *testing.T) {
	h := newHarness(t)
	nft := newNFT("Meerkat #4")
	h.connect(t, nil, []models.NFT{nft})

	other := solana.NewWallet().PublicKey()
	wallet := other
	h.state.EXPECT().FetchOwnedNFTs(mock.Anything, other).Return(nil, nil)
	h.state.EXPECT().VaultAddress(other).Return(h.vault, nil)
	h.state.EXPECT().FetchVault(mock.Anything, h.vault).Return(&models.Vault{}, nil)
	h.state.EXPECT().FetchDepositRecords(mock.Anything, h.vault).
		Return([]models.DepositRecord{{Vault: h.vault, GemMint: nft.Mint, GemCount: 1}}, nil)
	h.state.EXPECT().FetchMetadata(mock.Anything, []solana.PublicKey{nft.Mint}).Return([]*models.NFT{&nft}, nil)
	assert.Nil(t, h.o.OnWalletChange(context.Background(), &wallet))

	result := h.o.Unstake(context.Background(), nft.Mint)

	assert.Equal(t, models.ActionStatusFailed, result.Status)
	assert.Equal(t, "Please make sure to sign with the connected address.", result.Message)
	assert.ErrorIs(t, result.Err, sol.ErrSignerMismatch)
}

func TestOrchestrator_CreateVault(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		h := newHarness(t)
		h.connect(t, nil, nil)

		h.submitter.EXPECT().InitVault(mock.Anything).
			Run(func(ctx context.Context) {
				assert.True(t, h.o.View().Starting)
			}).
			Return(solana.Signature{8}, h.vault, nil)

		result := h.o.CreateVault(context.Background())

		assert.True(t, result.Succeeded())
		assert.Equal(t, "Success!", result.Message)
		view := h.o.View()
		assert.False(t, view.Starting)
		address, ok := view.Vault.Address()
		assert.True(t, ok)
		assert.Equal(t, h.vault, address)
	})

	t.Run("failure", func(t *testing.T) {
		h := newHarness(t)
		h.connect(t, nil, nil)

		h.submitter.EXPECT().InitVault(mock.Anything).Return(solana.Signature{}, solana.PublicKey{}, errors.New("blockhash not found"))

		result := h.o.CreateVault(context.Background())

		assert.Equal(t, models.ActionStatusFailed, result.Status)
		assert.Equal(t, "blockhash not found", h.feed.Recent()[0].Message)
		view := h.o.View()
		assert.False(t, view.Starting)
		assert.True(t, view.Vault.Missing())
	})

	t.Run("vault exists", func(t *testing.T) {
		h := newHarness(t)
		h.connect(t, nil, []models.NFT{})

		result := h.o.CreateVault(context.Background())

		assert.True(t, result.Skipped())
		assert.Empty(t, h.feed.Recent())
	})

	t.Run("not checked", func(t *testing.T) {
		h := newHarness(t)

		result := h.o.CreateVault(context.Background())

		assert.True(t, result.Skipped())
	})
}

func TestOrchestrator_Mint(t *testing.T) {
	t.Run("sold out", func(t *testing.T) {
		h := newHarness(t)
		h.connect(t, nil, nil)

		state := testCandyMachine(100)
		h.candy.EXPECT().FetchIfUnset(mock.Anything).Return(state, nil)
		h.submitter.EXPECT().Mint(mock.Anything, state).
			Return(solana.Signature{}, solana.PublicKey{}, &sol.ProgramError{Instruction: 4, Code: sol.ErrorCodeSoldOut})

		result := h.o.Mint(context.Background())

		assert.Equal(t, models.ActionStatusFailed, result.Status)
		assert.Equal(t, "Sorry we've sold out!", result.Message)
		assert.False(t, h.o.View().CandyMachine.Minting)
	})

	t.Run("success", func(t *testing.T) {
		h := newHarness(t)
		h.connect(t, nil, nil)

		state := testCandyMachine(1)
		mint := solana.NewWallet().PublicKey()
		h.candy.EXPECT().FetchIfUnset(mock.Anything).Return(state, nil)
		h.submitter.EXPECT().Mint(mock.Anything, state).
			Run(func(ctx context.Context, candyMachine *models.CandyMachineState) {
				assert.True(t, h.o.View().CandyMachine.Minting)
			}).
			Return(solana.Signature{4}, mint, nil)

		result := h.o.Mint(context.Background())

		assert.True(t, result.Succeeded())
		assert.Equal(t, "Congratulations! Mint succeeded!", result.Message)
		assert.Equal(t, mint, result.Mint)
		assert.False(t, h.o.View().CandyMachine.Minting)
	})

	t.Run("unknown candy machine", func(t *testing.T) {
		h := newHarness(t)
		h.connect(t, nil, nil)

		h.candy.EXPECT().FetchIfUnset(mock.Anything).Return(nil, errors.New("rpc down"))

		result := h.o.Mint(context.Background())

		assert.Equal(t, models.ActionStatusFailed, result.Status)
		assert.Equal(t, "rpc down", result.Message)
	})
}
