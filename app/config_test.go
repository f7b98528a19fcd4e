package app

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/meerkat-millionaires/kat-staking/models"

	log "github.com/sirupsen/logrus"
)

func init() {
	log.SetOutput(io.Discard)
}

func exitPanics() func() {
	log.StandardLogger().ExitFunc = func(num int) { panic(fmt.Sprintf("exit %d", num)) }
	return func() { log.StandardLogger().ExitFunc = nil }
}

func validTestConfig() models.Config {
	return models.Config{
		Solana: models.SolanaConfig{
			Network:      NetworkDevnet,
			DevnetRPCURL: "https://api.devnet.solana.com",
		},
		Wallet: models.WalletConfig{
			PrivateKey: "key",
		},
		CandyMachine: models.CandyMachineConfig{
			ProgramID:     DefaultCandyMachineProgramID,
			ConfigAddress: "Hzn3n914JaSpnxo5mBbmuCDmGL6mxWN9Ac2HzEXFSGtb",
			UUID:          "Hzn3n9",
		},
		Staking: models.StakingConfig{
			GemBankProgramID: DefaultGemBankProgramID,
			BankAddress:      "4zMMC9srt5Ri5X14GAgXhaHii3GnPAEERYPJgZJDncDU",
		},
		Collection: models.CollectionConfig{
			NamePattern: DefaultCollectionPattern,
		},
	}
}

func TestReadConfigFromConfigFile(t *testing.T) {
	t.Run("Config File Provided", func(t *testing.T) {
		Config = models.Config{}

		read := readConfigFromConfigFile("../config.sample.yml")

		assert.True(t, read)
		assert.Equal(t, "kat-staking", Config.MongoDB.Database)
		assert.Equal(t, int64(30000), Config.MongoDB.TimeoutMillis)
		assert.Equal(t, NetworkDevnet, Config.Solana.Network)
		assert.Equal(t, int64(10000), Config.CandyMachine.PollIntervalMs)
		assert.Equal(t, "test_vault", Config.Staking.VaultName)
		assert.Equal(t, 4, Config.Metadata.ImageWorkers)
		assert.True(t, Config.API.Enabled)
	})

	t.Run("No Config File Provided", func(t *testing.T) {
		assert.False(t, readConfigFromConfigFile(""))
	})

	t.Run("Invalid Config File Path", func(t *testing.T) {
		defer exitPanics()()

		assert.Panics(t, func() { readConfigFromConfigFile("../config.sample.invalid.yml") })
	})

	t.Run("Invalid Config File Contents", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yml")
		assert.Nil(t, os.WriteFile(path, []byte("solana: [unterminated"), 0600))
		defer exitPanics()()

		assert.Panics(t, func() { readConfigFromConfigFile(path) })
	})
}

func TestReadConfigFromENV(t *testing.T) {
	Config = models.Config{}
	t.Setenv("SOLANA_NETWORK", NetworkMainnet)
	t.Setenv("SOLANA_RPC_TIMEOUT_MS", "1500")
	t.Setenv("SOLANA_RPC_REQUESTS_PER_SECOND", "bad")
	t.Setenv("CANDY_MACHINE_POLL_INTERVAL_MS", "5000")
	t.Setenv("GEM_BANK_VAULT_NAME", "my_vault")
	t.Setenv("API_ENABLED", "true")

	readConfigFromENV("")

	assert.Equal(t, NetworkMainnet, Config.Solana.Network)
	assert.Equal(t, int64(1500), Config.Solana.RPCTimeoutMillis)
	assert.Equal(t, float64(0), Config.Solana.RPCRequestsPerSecond)
	assert.Equal(t, int64(5000), Config.CandyMachine.PollIntervalMs)
	assert.Equal(t, "my_vault", Config.Staking.VaultName)
	assert.True(t, Config.API.Enabled)
}

func TestSetConfigDefaults(t *testing.T) {
	Config = models.Config{}

	setConfigDefaults()

	assert.Equal(t, NetworkDevnet, Config.Solana.Network)
	assert.Equal(t, DefaultCandyMachineProgramID, Config.CandyMachine.ProgramID)
	assert.Equal(t, DefaultGemBankProgramID, Config.Staking.GemBankProgramID)
	assert.Equal(t, DefaultCollectionPattern, Config.Collection.NamePattern)
	assert.Equal(t, int64(DefaultPollIntervalMillis), Config.CandyMachine.PollIntervalMs)
	assert.Equal(t, DefaultExplorerURL, Config.Solana.ExplorerURL)
	assert.Equal(t, DefaultVaultName, Config.Staking.VaultName)
	assert.Equal(t, 4, Config.Metadata.ImageWorkers)
}

func TestRPCURL(t *testing.T) {
	Config.Solana.MainnetRPCURL = "https://mainnet"
	Config.Solana.DevnetRPCURL = "https://devnet"

	Config.Solana.Network = NetworkMainnet
	assert.Equal(t, "https://mainnet", RPCURL())

	Config.Solana.Network = NetworkDevnet
	assert.Equal(t, "https://devnet", RPCURL())
}

func TestInitConfig(t *testing.T) {
	t.Run("Sample Files With Required Values", func(t *testing.T) {
		Config = models.Config{}
		valid := validTestConfig()
		t.Setenv("CANDY_MACHINE_CONFIG", valid.CandyMachine.ConfigAddress)
		t.Setenv("CANDY_MACHINE_UUID", valid.CandyMachine.UUID)
		t.Setenv("GEM_BANK_ADDRESS", valid.Staking.BankAddress)

		InitConfig("../config.sample.yml", "../sample.env")

		assert.Equal(t, valid.Staking.BankAddress, Config.Staking.BankAddress)
		assert.Equal(t, "debug", Config.Logger.Level)
	})

	t.Run("Sample Files Missing Required Values", func(t *testing.T) {
		Config = models.Config{}
		defer exitPanics()()

		assert.Panics(t, func() { InitConfig("../config.sample.yml", "") })
	})
}

func TestValidateConfig(t *testing.T) {
	t.Run("Valid Configuration", func(t *testing.T) {
		Config = validTestConfig()

		assert.NotPanics(t, validateConfig)
	})

	testCases := []struct {
		name   string
		modify func(c *models.Config)
	}{
		{"Empty Configuration", func(c *models.Config) { *c = models.Config{} }},
		{"Unknown Network", func(c *models.Config) { c.Solana.Network = "testnet" }},
		{"Missing RPC URL", func(c *models.Config) { c.Solana.DevnetRPCURL = "" }},
		{"Missing Wallet", func(c *models.Config) { c.Wallet = models.WalletConfig{} }},
		{"Missing Candy Machine Config", func(c *models.Config) { c.CandyMachine.ConfigAddress = "" }},
		{"Missing Candy Machine UUID", func(c *models.Config) { c.CandyMachine.UUID = "" }},
		{"Invalid Bank Address", func(c *models.Config) { c.Staking.BankAddress = "not-a-key" }},
		{"Invalid Program ID", func(c *models.Config) { c.Staking.GemBankProgramID = "0x1234" }},
		{"Invalid Name Pattern", func(c *models.Config) { c.Collection.NamePattern = "(" }},
		{"Mongo Without Database", func(c *models.Config) { c.MongoDB.URI = "mongodb://localhost" }},
		{"Negative Image Workers", func(c *models.Config) { c.Metadata.ImageWorkers = -1 }},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			Config = validTestConfig()
			tc.modify(&Config)
			defer exitPanics()()

			assert.Panics(t, validateConfig)
		})
	}
}
