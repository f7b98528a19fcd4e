package stake

import (
	"context"
	"errors"
	"io"
	"regexp"
	"testing"

	"github.com/gagliardetto/solana-go"
	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/meerkat-millionaires/kat-staking/models"
	"github.com/meerkat-millionaires/kat-staking/sol/client"
	solMocks "github.com/meerkat-millionaires/kat-staking/sol/mocks"
)

func init() {
	log.SetOutput(io.Discard)
}

var collectionPattern = regexp.MustCompile("^Meerkat")

func newNFT(name string) models.NFT {
	return models.NFT{
		Mint:         solana.NewWallet().PublicKey(),
		TokenAccount: solana.NewWallet().PublicKey(),
		Name:         name,
		URI:          "https://arweave.net/" + name,
		Creators:     []models.Creator{{Address: solana.NewWallet().PublicKey(), Verified: true, Share: 100}},
	}
}

func names(items []models.ViewItem) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = item.Name
	}
	return out
}

func TestSortItems(t *testing.T) {
	items := []models.ViewItem{
		{NFT: models.NFT{Name: "Meerkat #3"}},
		{NFT: models.NFT{Name: "Meerkat Special"}},
		{NFT: models.NFT{Name: "Meerkat #1"}},
		{NFT: models.NFT{Name: "Meerkat #20"}, ItemState: models.ItemState{Staked: true}},
		{NFT: models.NFT{Name: "Meerkat Other"}},
		{NFT: models.NFT{Name: "Meerkat #3"}, ItemState: models.ItemState{Staked: true}},
	}

	SortItems(items)

	assert.Equal(t, []string{"Meerkat #1", "Meerkat #3", "Meerkat #3", "Meerkat #20", "Meerkat Special", "Meerkat Other"}, names(items))
	assert.False(t, items[1].Staked)
	assert.True(t, items[2].Staked)
}

func TestReconciler_NoVault(t *testing.T) {
	state := solMocks.NewMockRemoteState(t)
	reconciler := NewReconciler(state, collectionPattern)

	wallet := solana.NewWallet().PublicKey()
	vault := solana.NewWallet().PublicKey()
	owned := []models.NFT{newNFT("Meerkat #3"), newNFT("Other #1"), newNFT("Meerkat #1")}

	state.EXPECT().FetchOwnedNFTs(mock.Anything, wallet).Return(owned, nil)
	state.EXPECT().VaultAddress(wallet).Return(vault, nil)
	state.EXPECT().FetchVault(mock.Anything, vault).Return(nil, client.ErrAccountNotFound)

	result, err := reconciler.Reconcile(context.Background(), wallet)

	assert.Nil(t, err)
	assert.True(t, result.Vault.Missing())
	assert.Empty(t, result.Staked)
	assert.Equal(t, []string{"Meerkat #1", "Meerkat #3"}, names(result.Items()))
}

func TestReconciler_VaultFetchError(t *testing.T) {
	state := solMocks.NewMockRemoteState(t)
	reconciler := NewReconciler(state, collectionPattern)

	wallet := solana.NewWallet().PublicKey()
	vault := solana.NewWallet().PublicKey()

	state.EXPECT().FetchOwnedNFTs(mock.Anything, wallet).Return(nil, nil)
	state.EXPECT().VaultAddress(wallet).Return(vault, nil)
	state.EXPECT().FetchVault(mock.Anything, vault).Return(nil, errors.New("rpc down"))

	result, err := reconciler.Reconcile(context.Background(), wallet)

	assert.Nil(t, err)
	assert.Equal(t, models.VaultStatusMissing, result.Vault.Status())
}

func TestReconciler_WithVault(t *testing.T) {
	state := solMocks.NewMockRemoteState(t)
	reconciler := NewReconciler(state, collectionPattern)

	wallet := solana.NewWallet().PublicKey()
	vault := solana.NewWallet().PublicKey()
	unstaked := newNFT("Meerkat #20")
	duplicate := newNFT("Meerkat #1")
	staked := newNFT("Meerkat #3")
	broken := solana.NewWallet().PublicKey()

	state.EXPECT().FetchOwnedNFTs(mock.Anything, wallet).Return([]models.NFT{unstaked, duplicate}, nil)
	state.EXPECT().VaultAddress(wallet).Return(vault, nil)
	state.EXPECT().FetchVault(mock.Anything, vault).Return(&models.Vault{Owner: wallet}, nil)
	state.EXPECT().FetchDepositRecords(mock.Anything, vault).Return([]models.DepositRecord{
		{Vault: vault, GemMint: staked.Mint, GemCount: 1},
		{Vault: vault, GemMint: broken, GemCount: 1},
		{Vault: vault, GemMint: duplicate.Mint, GemCount: 1},
	}, nil)
	state.EXPECT().FetchMetadata(mock.Anything, []solana.PublicKey{staked.Mint, broken, duplicate.Mint}).
		Return([]*models.NFT{&staked, nil, &duplicate}, nil)

	result, err := reconciler.Reconcile(context.Background(), wallet)

	assert.Nil(t, err)
	address, ok := result.Vault.Address()
	assert.True(t, ok)
	assert.Equal(t, vault, address)

	items := result.Items()
	assert.Equal(t, []string{"Meerkat #1", "Meerkat #3", "Meerkat #20"}, names(items))
	assert.True(t, items[0].Staked)
	assert.True(t, items[1].Staked)
	assert.False(t, items[2].Staked)

	seen := map[solana.PublicKey]bool{}
	for _, item := range items {
		assert.False(t, seen[item.Mint])
		seen[item.Mint] = true
	}
}

func TestReconciler_StakedMetadataFailure(t *testing.T) {
	state := solMocks.NewMockRemoteState(t)
	reconciler := NewReconciler(state, collectionPattern)

	wallet := solana.NewWallet().PublicKey()
	vault := solana.NewWallet().PublicKey()
	owned := newNFT("Meerkat #2")
	mint := solana.NewWallet().PublicKey()

	state.EXPECT().FetchOwnedNFTs(mock.Anything, wallet).Return([]models.NFT{owned}, nil)
	state.EXPECT().VaultAddress(wallet).Return(vault, nil)
	state.EXPECT().FetchVault(mock.Anything, vault).Return(&models.Vault{}, nil)
	state.EXPECT().FetchDepositRecords(mock.Anything, vault).Return([]models.DepositRecord{{GemMint: mint}}, nil)
	state.EXPECT().FetchMetadata(mock.Anything, []solana.PublicKey{mint}).Return(nil, errors.New("rpc down"))

	result, err := reconciler.Reconcile(context.Background(), wallet)

	assert.Nil(t, err)
	assert.Empty(t, result.Staked)
	assert.Len(t, result.Unstaked, 1)
	assert.Equal(t, 1, result.Unresolved)
}

func TestReconciler_StakedMetadataPartial(t *testing.T) {
	state := solMocks.NewMockRemoteState(t)
	reconciler := NewReconciler(state, collectionPattern)

	wallet := solana.NewWallet().PublicKey()
	vault := solana.NewWallet().PublicKey()
	staked := newNFT("Meerkat #7")
	missing := solana.NewWallet().PublicKey()

	state.EXPECT().FetchOwnedNFTs(mock.Anything, wallet).Return(nil, nil)
	state.EXPECT().VaultAddress(wallet).Return(vault, nil)
	state.EXPECT().FetchVault(mock.Anything, vault).Return(&models.Vault{}, nil)
	state.EXPECT().FetchDepositRecords(mock.Anything, vault).
		Return([]models.DepositRecord{{GemMint: staked.Mint}, {GemMint: missing}}, nil)
	state.EXPECT().FetchMetadata(mock.Anything, []solana.PublicKey{staked.Mint, missing}).
		Return([]*models.NFT{&staked, nil}, nil)

	result, err := reconciler.Reconcile(context.Background(), wallet)

	assert.Nil(t, err)
	assert.Equal(t, []string{"Meerkat #7"}, names(result.Items()))
	assert.Equal(t, 1, result.Unresolved)
}

func TestReconciler_Failures(t *testing.T) {
	wallet := solana.NewWallet().PublicKey()
	vault := solana.NewWallet().PublicKey()

	t.Run("owned nfts", func(t *testing.T) {
		state := solMocks.NewMockRemoteState(t)
		state.EXPECT().FetchOwnedNFTs(mock.Anything, wallet).Return(nil, errors.New("rpc down"))

		result, err := NewReconciler(state, collectionPattern).Reconcile(context.Background(), wallet)

		assert.NotNil(t, err)
		assert.Nil(t, result)
	})

	t.Run("vault derivation", func(t *testing.T) {
		state := solMocks.NewMockRemoteState(t)
		state.EXPECT().FetchOwnedNFTs(mock.Anything, wallet).Return(nil, nil)
		state.EXPECT().VaultAddress(wallet).Return(solana.PublicKey{}, errors.New("no viable bump"))

		result, err := NewReconciler(state, collectionPattern).Reconcile(context.Background(), wallet)

		assert.NotNil(t, err)
		assert.Nil(t, result)
	})

	t.Run("deposit records", func(t *testing.T) {
		state := solMocks.NewMockRemoteState(t)
		state.EXPECT().FetchOwnedNFTs(mock.Anything, wallet).Return(nil, nil)
		state.EXPECT().VaultAddress(wallet).Return(vault, nil)
		state.EXPECT().FetchVault(mock.Anything, vault).Return(&models.Vault{}, nil)
		state.EXPECT().FetchDepositRecords(mock.Anything, vault).Return(nil, errors.New("rpc down"))

		result, err := NewReconciler(state, collectionPattern).Reconcile(context.Background(), wallet)

		assert.NotNil(t, err)
		assert.Nil(t, result)
	})
}
