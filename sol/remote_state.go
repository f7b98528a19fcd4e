package sol

import (
	"context"
	"errors"
	"fmt"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	log "github.com/sirupsen/logrus"

	"github.com/meerkat-millionaires/kat-staking/models"
	"github.com/meerkat-millionaires/kat-staking/sol/client"
	"github.com/meerkat-millionaires/kat-staking/sol/util"
)

const (
	// DepositRecordSize is the length of a gem deposit receipt account.
	DepositRecordSize = util.DiscriminatorLength + 3*solana.PublicKeyLength + 8
)

// RemoteState reads candy machine, wallet and vault state from the chain.
type RemoteState interface {
	CandyMachineAddress() (solana.PublicKey, error)
	FetchCandyMachine(ctx context.Context) (*models.CandyMachineState, error)
	FetchOwnedNFTs(ctx context.Context, owner solana.PublicKey) ([]models.NFT, error)
	VaultAddress(owner solana.PublicKey) (solana.PublicKey, error)
	FetchVault(ctx context.Context, vault solana.PublicKey) (*models.Vault, error)
	FetchDepositRecords(ctx context.Context, vault solana.PublicKey) ([]models.DepositRecord, error)
	FetchMetadata(ctx context.Context, mints []solana.PublicKey) ([]*models.NFT, error)
}

type remoteState struct {
	client client.SolanaClient
	addrs  Addresses
}

var _ RemoteState = &remoteState{}

func (s *remoteState) CandyMachineAddress() (solana.PublicKey, error) {
	address, _, err := util.FindCandyMachineAddress(s.addrs.CandyMachineConfig, s.addrs.CandyMachineUUID, s.addrs.CandyMachineProgram)
	return address, err
}

func (s *remoteState) FetchCandyMachine(ctx context.Context) (*models.CandyMachineState, error) {
	address, err := s.CandyMachineAddress()
	if err != nil {
		return nil, fmt.Errorf("derive candy machine: %w", err)
	}
	data, err := s.client.GetAccountData(ctx, address)
	if err != nil {
		return nil, fmt.Errorf("fetch candy machine %s: %w", address, err)
	}
	return util.DecodeCandyMachine(address, data)
}

// FetchOwnedNFTs returns the NFTs held by owner that carry Metaplex metadata.
// Token accounts that do not hold exactly one unit of a zero decimal mint are
// skipped.
func (s *remoteState) FetchOwnedNFTs(ctx context.Context, owner solana.PublicKey) ([]models.NFT, error) {
	accounts, err := s.client.GetTokenAccountsByOwner(ctx, owner)
	if err != nil {
		return nil, fmt.Errorf("fetch token accounts: %w", err)
	}

	var (
		mints         []solana.PublicKey
		tokenAccounts = map[solana.PublicKey]solana.PublicKey{}
	)
	for _, account := range accounts {
		if account.Amount != 1 || account.Decimals != 0 {
			continue
		}
		if _, ok := tokenAccounts[account.Mint]; ok {
			continue
		}
		tokenAccounts[account.Mint] = account.Pubkey
		mints = append(mints, account.Mint)
	}

	metadata, err := s.FetchMetadata(ctx, mints)
	if err != nil {
		return nil, err
	}

	nfts := make([]models.NFT, 0, len(metadata))
	for i, nft := range metadata {
		if nft == nil {
			continue
		}
		nft.TokenAccount = tokenAccounts[mints[i]]
		nfts = append(nfts, *nft)
	}
	return nfts, nil
}

func (s *remoteState) VaultAddress(owner solana.PublicKey) (solana.PublicKey, error) {
	address, _, err := util.FindVaultAddress(s.addrs.Bank, owner, s.addrs.GemBankProgram)
	return address, err
}

// FetchVault returns client.ErrAccountNotFound when the vault does not exist.
func (s *remoteState) FetchVault(ctx context.Context, vault solana.PublicKey) (*models.Vault, error) {
	data, err := s.client.GetAccountData(ctx, vault)
	if err != nil {
		return nil, err
	}
	return util.DecodeVault(vault, data)
}

func (s *remoteState) FetchDepositRecords(ctx context.Context, vault solana.PublicKey) ([]models.DepositRecord, error) {
	filters := []rpc.RPCFilter{
		{DataSize: DepositRecordSize},
		{Memcmp: &rpc.RPCFilterMemcmp{Offset: 0, Bytes: solana.Base58(util.DepositRecordDiscriminator[:])}},
		{Memcmp: &rpc.RPCFilterMemcmp{Offset: util.DepositRecordVaultOffset, Bytes: solana.Base58(vault[:])}},
	}
	accounts, err := s.client.GetProgramAccounts(ctx, s.addrs.GemBankProgram, filters)
	if err != nil {
		return nil, fmt.Errorf("fetch deposit records: %w", err)
	}

	records := make([]models.DepositRecord, 0, len(accounts))
	for _, account := range accounts {
		record, err := util.DecodeDepositRecord(account.Pubkey, account.Data)
		if err != nil {
			log.Debugln("[SOLANA]", "Skipping deposit record:", err)
			continue
		}
		if record.Vault != vault {
			continue
		}
		records = append(records, *record)
	}
	return records, nil
}

// FetchMetadata resolves the metadata of each mint. The result is aligned
// with mints and holds nil where the metadata is missing or malformed.
func (s *remoteState) FetchMetadata(ctx context.Context, mints []solana.PublicKey) ([]*models.NFT, error) {
	if len(mints) == 0 {
		return nil, nil
	}

	addresses := make([]solana.PublicKey, len(mints))
	for i, mint := range mints {
		address, err := util.FindMetadataAddress(mint)
		if err != nil {
			return nil, fmt.Errorf("derive metadata for %s: %w", mint, err)
		}
		addresses[i] = address
	}

	datas, err := s.client.GetMultipleAccountsData(ctx, addresses)
	if err != nil {
		return nil, fmt.Errorf("fetch metadata: %w", err)
	}
	if len(datas) != len(mints) {
		return nil, errors.New("fetch metadata: result length mismatch")
	}

	out := make([]*models.NFT, len(mints))
	for i, data := range datas {
		if data == nil {
			log.Debugln("[SOLANA]", "No metadata for mint", mints[i])
			continue
		}
		nft, err := util.DecodeMetadata(addresses[i], data)
		if err != nil {
			log.Debugln("[SOLANA]", "Invalid metadata for mint", mints[i], err)
			continue
		}
		if nft.Mint != mints[i] {
			log.Debugln("[SOLANA]", "Metadata mint mismatch for", mints[i])
			continue
		}
		out[i] = nft
	}
	return out, nil
}

func NewRemoteState(client client.SolanaClient, addrs Addresses) RemoteState {
	return &remoteState{
		client: client,
		addrs:  addrs,
	}
}
