package stake

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"sort"

	"github.com/gagliardetto/solana-go"
	log "github.com/sirupsen/logrus"

	"github.com/meerkat-millionaires/kat-staking/models"
	"github.com/meerkat-millionaires/kat-staking/sol"
	"github.com/meerkat-millionaires/kat-staking/sol/client"
)

// Reconciliation is the result of one reconciliation pass. Unstaked and
// Staked are disjoint by mint.
type Reconciliation struct {
	Wallet   solana.PublicKey
	Vault    models.VaultState
	Unstaked []models.NFT
	Staked   []models.NFT
	// Unresolved counts deposit records left out of Staked because their
	// metadata could not be loaded.
	Unresolved int
}

// Items merges both sets into one list sorted by collection number.
func (r *Reconciliation) Items() []models.ViewItem {
	items := make([]models.ViewItem, 0, len(r.Unstaked)+len(r.Staked))
	for _, nft := range r.Unstaked {
		items = append(items, models.ViewItem{NFT: nft})
	}
	for _, nft := range r.Staked {
		items = append(items, models.ViewItem{NFT: nft, ItemState: models.ItemState{Staked: true}})
	}
	SortItems(items)
	return items
}

type Reconciler struct {
	state   sol.RemoteState
	pattern *regexp.Regexp
}

// Reconcile loads the wallet's collection NFTs and the NFTs it has staked.
func (r *Reconciler) Reconcile(ctx context.Context, wallet solana.PublicKey) (*Reconciliation, error) {
	log.Debugln("[RECONCILER]", "Reconciling wallet", wallet)

	owned, err := r.state.FetchOwnedNFTs(ctx, wallet)
	if err != nil {
		return nil, fmt.Errorf("fetch owned nfts: %w", err)
	}

	result := &Reconciliation{
		Wallet:   wallet,
		Vault:    models.VaultNotChecked(),
		Unstaked: r.filter(owned),
	}

	vault, err := r.state.VaultAddress(wallet)
	if err != nil {
		return nil, fmt.Errorf("derive vault: %w", err)
	}
	if _, err := r.state.FetchVault(ctx, vault); err != nil {
		if !errors.Is(err, client.ErrAccountNotFound) {
			log.Warnln("[RECONCILER]", "Failed to fetch vault", vault, err)
		}
		result.Vault = models.VaultMissing()
		log.Debugln("[RECONCILER]", "No vault for wallet", wallet)
		return result, nil
	}
	result.Vault = models.VaultExists(vault)

	records, err := r.state.FetchDepositRecords(ctx, vault)
	if err != nil {
		return nil, fmt.Errorf("fetch deposit records: %w", err)
	}

	if len(records) > 0 {
		mints := make([]solana.PublicKey, len(records))
		for i, record := range records {
			mints[i] = record.GemMint
		}
		metadata, err := r.state.FetchMetadata(ctx, mints)
		if err != nil {
			log.Warnln("[RECONCILER]", "Failed to resolve staked metadata, staked view empty this pass:", err)
		}
		for _, nft := range metadata {
			if nft == nil {
				continue
			}
			result.Staked = append(result.Staked, *nft)
		}
		result.Unresolved = len(records) - len(result.Staked)
		if result.Unresolved > 0 {
			log.Warnln("[RECONCILER]", "Omitting", result.Unresolved, "of", len(records), "staked NFTs without metadata")
		}
	}

	result.Unstaked, result.Staked = dedupe(result.Unstaked, result.Staked)

	log.Infoln("[RECONCILER]", "Reconciled wallet", wallet, "unstaked", len(result.Unstaked), "staked", len(result.Staked))
	return result, nil
}

func (r *Reconciler) filter(nfts []models.NFT) []models.NFT {
	out := make([]models.NFT, 0, len(nfts))
	for _, nft := range nfts {
		if r.pattern == nil || r.pattern.MatchString(nft.Name) {
			out = append(out, nft)
		}
	}
	return out
}

// dedupe drops repeated mints within each set and removes staked mints from
// the unstaked set.
func dedupe(unstaked, staked []models.NFT) ([]models.NFT, []models.NFT) {
	seen := map[solana.PublicKey]bool{}

	outStaked := make([]models.NFT, 0, len(staked))
	for _, nft := range staked {
		if seen[nft.Mint] {
			continue
		}
		seen[nft.Mint] = true
		outStaked = append(outStaked, nft)
	}

	outUnstaked := make([]models.NFT, 0, len(unstaked))
	for _, nft := range unstaked {
		if seen[nft.Mint] {
			continue
		}
		seen[nft.Mint] = true
		outUnstaked = append(outUnstaked, nft)
	}

	return outUnstaked, outStaked
}

// SortItems orders items by the number after '#' in their name. Items without
// a number go last. Ties keep their input order.
func SortItems(items []models.ViewItem) {
	sort.SliceStable(items, func(i, j int) bool {
		a, aok := items[i].Number()
		b, bok := items[j].Number()
		if aok != bok {
			return aok
		}
		return aok && a < b
	})
}

func NewReconciler(state sol.RemoteState, pattern *regexp.Regexp) *Reconciler {
	return &Reconciler{
		state:   state,
		pattern: pattern,
	}
}
