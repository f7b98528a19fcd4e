package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	log "github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	"github.com/meerkat-millionaires/kat-staking/app"
)

const (
	MaxMultipleAccounts = 100
)

var (
	ErrAccountNotFound = errors.New("account not found")

	GenesisHashes = map[string]string{
		app.NetworkMainnet: "5eykt4UsFv8P8NJdTREpY1vzqKqZKvdpKuc147dw2N9d",
		app.NetworkDevnet:  "EtWTRABZaYq6iMfeYKouRu166VU2xqa1wcaWoxPkrZBG",
	}
)

type ProgramAccount struct {
	Pubkey solana.PublicKey
	Data   []byte
}

type TokenAccount struct {
	Pubkey   solana.PublicKey
	Mint     solana.PublicKey
	Owner    solana.PublicKey
	Amount   uint64
	Decimals uint8
}

type SolanaClient interface {
	ValidateNetwork()
	GetGenesisHash(ctx context.Context) (solana.Hash, error)
	GetAccountData(ctx context.Context, account solana.PublicKey) ([]byte, error)
	GetMultipleAccountsData(ctx context.Context, accounts []solana.PublicKey) ([][]byte, error)
	GetProgramAccounts(ctx context.Context, program solana.PublicKey, filters []rpc.RPCFilter) ([]ProgramAccount, error)
	GetTokenAccountsByOwner(ctx context.Context, owner solana.PublicKey) ([]TokenAccount, error)
	GetMinimumBalanceForRentExemption(ctx context.Context, dataSize uint64) (uint64, error)
	GetLatestBlockhash(ctx context.Context) (solana.Hash, error)
	SendTransaction(ctx context.Context, tx *solana.Transaction) (solana.Signature, error)
}

type solanaClient struct {
	client  *rpc.Client
	limiter *rate.Limiter
	timeout time.Duration
	network string
}

var _ SolanaClient = &solanaClient{}

// wait blocks on the rate limiter and bounds the call by the configured
// rpc timeout.
func (c *solanaClient) wait(ctx context.Context) (context.Context, context.CancelFunc, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, nil, err
		}
	}
	if c.timeout <= 0 {
		ctx, cancel := context.WithCancel(ctx)
		return ctx, cancel, nil
	}
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	return ctx, cancel, nil
}

func (c *solanaClient) GetGenesisHash(ctx context.Context) (solana.Hash, error) {
	ctx, cancel, err := c.wait(ctx)
	if err != nil {
		return solana.Hash{}, err
	}
	defer cancel()

	return c.client.GetGenesisHash(ctx)
}

func (c *solanaClient) ValidateNetwork() {
	log.Debugln("[SOLANA]", "Validating network")
	log.Debugln("[SOLANA]", "network", c.network)

	if app.Config.Solana.SkipNetworkValidation {
		log.Warnln("[SOLANA]", "Skipping network validation")
		return
	}

	hash, err := c.GetGenesisHash(context.Background())
	if err != nil {
		log.Fatalln("[SOLANA]", "Failed to get genesis hash:", err)
	}

	log.Debugln("[SOLANA]", "genesis hash", hash)

	if expected, ok := GenesisHashes[c.network]; ok && expected != hash.String() {
		log.Fatalln("[SOLANA]", "Genesis Hash Mismatch", "expected", expected, "got", hash)
	}

	log.Infoln("[SOLANA]", "Validated network")
}

func (c *solanaClient) GetAccountData(ctx context.Context, account solana.PublicKey) ([]byte, error) {
	ctx, cancel, err := c.wait(ctx)
	if err != nil {
		return nil, err
	}
	defer cancel()

	out, err := c.client.GetAccountInfoWithOpts(ctx, account, &rpc.GetAccountInfoOpts{
		Commitment: rpc.CommitmentConfirmed,
		Encoding:   solana.EncodingBase64,
	})
	if errors.Is(err, rpc.ErrNotFound) {
		return nil, fmt.Errorf("%s: %w", account, ErrAccountNotFound)
	}
	if err != nil {
		return nil, err
	}
	if out == nil || out.Value == nil || out.Value.Data == nil {
		return nil, fmt.Errorf("%s: %w", account, ErrAccountNotFound)
	}
	return out.Value.Data.GetBinary(), nil
}

// GetMultipleAccountsData returns the data of every account in order, with a
// nil entry for accounts that do not exist. Requests are chunked to the rpc
// limit.
func (c *solanaClient) GetMultipleAccountsData(ctx context.Context, accounts []solana.PublicKey) ([][]byte, error) {
	result := make([][]byte, 0, len(accounts))

	for start := 0; start < len(accounts); start += MaxMultipleAccounts {
		end := start + MaxMultipleAccounts
		if end > len(accounts) {
			end = len(accounts)
		}

		chunk, err := c.getMultipleAccountsData(ctx, accounts[start:end])
		if err != nil {
			return nil, err
		}
		result = append(result, chunk...)
	}

	return result, nil
}

func (c *solanaClient) getMultipleAccountsData(ctx context.Context, accounts []solana.PublicKey) ([][]byte, error) {
	ctx, cancel, err := c.wait(ctx)
	if err != nil {
		return nil, err
	}
	defer cancel()

	out, err := c.client.GetMultipleAccountsWithOpts(ctx, accounts, &rpc.GetMultipleAccountsOpts{
		Commitment: rpc.CommitmentConfirmed,
		Encoding:   solana.EncodingBase64,
	})
	if err != nil {
		return nil, err
	}
	if out == nil || len(out.Value) != len(accounts) {
		return nil, fmt.Errorf("expected %d accounts in response", len(accounts))
	}

	result := make([][]byte, len(accounts))
	for i, account := range out.Value {
		if account == nil || account.Data == nil {
			continue
		}
		result[i] = account.Data.GetBinary()
	}
	return result, nil
}

func (c *solanaClient) GetProgramAccounts(ctx context.Context, program solana.PublicKey, filters []rpc.RPCFilter) ([]ProgramAccount, error) {
	ctx, cancel, err := c.wait(ctx)
	if err != nil {
		return nil, err
	}
	defer cancel()

	out, err := c.client.GetProgramAccountsWithOpts(ctx, program, &rpc.GetProgramAccountsOpts{
		Commitment: rpc.CommitmentConfirmed,
		Encoding:   solana.EncodingBase64,
		Filters:    filters,
	})
	if err != nil {
		return nil, err
	}

	accounts := make([]ProgramAccount, 0, len(out))
	for _, keyed := range out {
		if keyed == nil || keyed.Account == nil || keyed.Account.Data == nil {
			continue
		}
		accounts = append(accounts, ProgramAccount{
			Pubkey: keyed.Pubkey,
			Data:   keyed.Account.Data.GetBinary(),
		})
	}
	return accounts, nil
}

// value.account.data of a jsonParsed spl-token account
type tokenAccountData struct {
	Parsed struct {
		Info struct {
			Mint        string `json:"mint"`
			Owner       string `json:"owner"`
			TokenAmount struct {
				Amount   string `json:"amount"`
				Decimals uint8  `json:"decimals"`
			} `json:"tokenAmount"`
		} `json:"info"`
		Type string `json:"type"`
	} `json:"parsed"`
	Program string `json:"program"`
}

func parseTokenAccount(pubkey solana.PublicKey, data *rpc.DataBytesOrJSON) (TokenAccount, error) {
	rawJson, err := data.MarshalJSON()
	if err != nil {
		return TokenAccount{}, fmt.Errorf("could not read token account %s: %w", pubkey, err)
	}
	var parsed tokenAccountData
	if err := json.Unmarshal(rawJson, &parsed); err != nil {
		return TokenAccount{}, fmt.Errorf("could not parse token account %s: %w", pubkey, err)
	}

	info := parsed.Parsed.Info
	mint, err := solana.PublicKeyFromBase58(info.Mint)
	if err != nil {
		return TokenAccount{}, fmt.Errorf("invalid mint in token account %s: %w", pubkey, err)
	}
	owner, err := solana.PublicKeyFromBase58(info.Owner)
	if err != nil {
		return TokenAccount{}, fmt.Errorf("invalid owner in token account %s: %w", pubkey, err)
	}
	amount, err := strconv.ParseUint(info.TokenAmount.Amount, 10, 64)
	if err != nil {
		return TokenAccount{}, fmt.Errorf("invalid amount in token account %s: %w", pubkey, err)
	}

	return TokenAccount{
		Pubkey:   pubkey,
		Mint:     mint,
		Owner:    owner,
		Amount:   amount,
		Decimals: info.TokenAmount.Decimals,
	}, nil
}

func (c *solanaClient) GetTokenAccountsByOwner(ctx context.Context, owner solana.PublicKey) ([]TokenAccount, error) {
	ctx, cancel, err := c.wait(ctx)
	if err != nil {
		return nil, err
	}
	defer cancel()

	programID := solana.TokenProgramID
	out, err := c.client.GetTokenAccountsByOwner(ctx, owner,
		&rpc.GetTokenAccountsConfig{ProgramId: &programID},
		&rpc.GetTokenAccountsOpts{
			Commitment: rpc.CommitmentConfirmed,
			Encoding:   solana.EncodingJSONParsed,
		},
	)
	if err != nil {
		return nil, err
	}
	if out == nil {
		return nil, nil
	}

	accounts := make([]TokenAccount, 0, len(out.Value))
	for _, acc := range out.Value {
		if acc == nil || acc.Account.Data == nil {
			continue
		}
		account, err := parseTokenAccount(acc.Pubkey, acc.Account.Data)
		if err != nil {
			return nil, err
		}
		accounts = append(accounts, account)
	}
	return accounts, nil
}

func (c *solanaClient) GetMinimumBalanceForRentExemption(ctx context.Context, dataSize uint64) (uint64, error) {
	ctx, cancel, err := c.wait(ctx)
	if err != nil {
		return 0, err
	}
	defer cancel()

	return c.client.GetMinimumBalanceForRentExemption(ctx, dataSize, rpc.CommitmentConfirmed)
}

func (c *solanaClient) GetLatestBlockhash(ctx context.Context) (solana.Hash, error) {
	ctx, cancel, err := c.wait(ctx)
	if err != nil {
		return solana.Hash{}, err
	}
	defer cancel()

	out, err := c.client.GetLatestBlockhash(ctx, rpc.CommitmentFinalized)
	if err != nil {
		return solana.Hash{}, err
	}
	if out == nil || out.Value == nil {
		return solana.Hash{}, fmt.Errorf("empty blockhash response")
	}
	return out.Value.Blockhash, nil
}

// SendTransaction submits with preflight so program failures come back as
// simulation errors.
func (c *solanaClient) SendTransaction(ctx context.Context, tx *solana.Transaction) (solana.Signature, error) {
	ctx, cancel, err := c.wait(ctx)
	if err != nil {
		return solana.Signature{}, err
	}
	defer cancel()

	return c.client.SendTransactionWithOpts(ctx, tx, rpc.TransactionOpts{
		SkipPreflight:       false,
		PreflightCommitment: rpc.CommitmentConfirmed,
	})
}

func NewClient() SolanaClient {
	return NewClientWithURL(app.RPCURL())
}

func NewClientWithURL(url string) SolanaClient {
	var limiter *rate.Limiter
	if rps := app.Config.Solana.RPCRequestsPerSecond; rps > 0 {
		limiter = rate.NewLimiter(rate.Limit(rps), 1)
	}
	return &solanaClient{
		client:  rpc.New(url),
		limiter: limiter,
		timeout: time.Duration(app.Config.Solana.RPCTimeoutMillis) * time.Millisecond,
		network: app.Config.Solana.Network,
	}
}
