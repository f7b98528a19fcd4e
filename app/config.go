package app

import (
	"os"
	"regexp"
	"strings"

	"github.com/gagliardetto/solana-go"
	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"

	"github.com/meerkat-millionaires/kat-staking/models"
)

var (
	Config models.Config
)

const (
	NetworkMainnet = "mainnet"
	NetworkDevnet  = "devnet"

	DefaultCandyMachineProgramID = "cndyAnrLdpjq1Ssp1z8xxDsB8dxe7u4HL5Nxi2K5WXZ"
	DefaultGemBankProgramID      = "bankHHdqMuaaST4qQk6mkzxGeKPHWmqdgor6Gs8r88m"
	DefaultCollectionPattern     = "^Meerkat"
	DefaultPollIntervalMillis    = 10000
	DefaultExplorerURL           = "https://solscan.io"
	DefaultVaultName             = "test_vault"
)

func InitConfig(configFile string, envFile string) {
	log.Debug("[CONFIG] Initializing config")
	readConfigFromConfigFile(configFile)
	readConfigFromENV(envFile)
	readKeysFromGSM()
	setConfigDefaults()
	validateConfig()
}

func readConfigFromConfigFile(configFile string) bool {
	if configFile == "" {
		log.Debug("[CONFIG] No config file provided")
		return false
	}
	log.Debug("[CONFIG] Reading config file")
	var yamlFile, err = os.ReadFile(configFile)
	if err != nil {
		log.Fatalf("[CONFIG] Error reading config file %q: %s\n", configFile, err.Error())
	}
	err = yaml.Unmarshal(yamlFile, &Config)
	if err != nil {
		log.Fatalf("[CONFIG] Error unmarshalling config file %q: %s\n", configFile, err.Error())
	}
	log.Debug("[CONFIG] Config loaded from file")
	return true
}

func setConfigDefaults() {
	if Config.Solana.Network == "" {
		Config.Solana.Network = NetworkDevnet
	}
	Config.Solana.Network = strings.ToLower(Config.Solana.Network)
	if Config.Solana.ExplorerURL == "" {
		Config.Solana.ExplorerURL = DefaultExplorerURL
	}
	if Config.Solana.RPCTimeoutMillis == 0 {
		Config.Solana.RPCTimeoutMillis = 30000
	}
	if Config.CandyMachine.ProgramID == "" {
		Config.CandyMachine.ProgramID = DefaultCandyMachineProgramID
	}
	if Config.CandyMachine.PollIntervalMs == 0 {
		Config.CandyMachine.PollIntervalMs = DefaultPollIntervalMillis
	}
	if Config.Staking.GemBankProgramID == "" {
		Config.Staking.GemBankProgramID = DefaultGemBankProgramID
	}
	if Config.Staking.VaultName == "" {
		Config.Staking.VaultName = DefaultVaultName
	}
	if Config.Collection.NamePattern == "" {
		Config.Collection.NamePattern = DefaultCollectionPattern
	}
	if Config.Metadata.HTTPTimeoutMillis == 0 {
		Config.Metadata.HTTPTimeoutMillis = 10000
	}
	if Config.Metadata.ImageWorkers == 0 {
		Config.Metadata.ImageWorkers = 4
	}
	if Config.MongoDB.TimeoutMillis == 0 {
		Config.MongoDB.TimeoutMillis = 5000
	}
	if Config.HealthCheck.IntervalMillis == 0 {
		Config.HealthCheck.IntervalMillis = 60000
	}
	if Config.API.ListenAddress == "" {
		Config.API.ListenAddress = ":8080"
	}
}

// RPCURL returns the endpoint of the configured network.
func RPCURL() string {
	if Config.Solana.Network == NetworkMainnet {
		return Config.Solana.MainnetRPCURL
	}
	return Config.Solana.DevnetRPCURL
}

func validateConfig() {
	log.Debug("[CONFIG] Validating config")

	if Config.Solana.Network != NetworkMainnet && Config.Solana.Network != NetworkDevnet {
		log.Fatal("[CONFIG] Solana.Network must be mainnet or devnet")
	}
	if RPCURL() == "" {
		log.Fatalf("[CONFIG] Solana RPC URL for %s is required", Config.Solana.Network)
	}
	if Config.Solana.RPCRequestsPerSecond < 0 {
		log.Fatal("[CONFIG] Solana.RPCRequestsPerSecond must not be negative")
	}

	if Config.Wallet.KeypairPath == "" && Config.Wallet.PrivateKey == "" &&
		Config.Wallet.Mnemonic == "" && Config.Wallet.GcpKmsKeyName == "" {
		log.Fatal("[CONFIG] Wallet keypair path, private key, mnemonic or GCP KMS key name is required")
	}

	if Config.CandyMachine.ConfigAddress == "" {
		log.Fatal("[CONFIG] CandyMachine.ConfigAddress is required")
	}
	if Config.CandyMachine.UUID == "" {
		log.Fatal("[CONFIG] CandyMachine.UUID is required")
	}
	if Config.CandyMachine.PollIntervalMs < 0 {
		log.Fatal("[CONFIG] CandyMachine.PollIntervalMs must be positive")
	}

	if Config.Staking.BankAddress == "" {
		log.Fatal("[CONFIG] Staking.BankAddress is required")
	}

	for name, value := range map[string]string{
		"CandyMachine.ProgramID":     Config.CandyMachine.ProgramID,
		"CandyMachine.ConfigAddress": Config.CandyMachine.ConfigAddress,
		"Staking.GemBankProgramID":   Config.Staking.GemBankProgramID,
		"Staking.BankAddress":        Config.Staking.BankAddress,
	} {
		if _, err := solana.PublicKeyFromBase58(value); err != nil {
			log.Fatalf("[CONFIG] %s is not a valid public key: %s", name, err.Error())
		}
	}

	if _, err := regexp.Compile(Config.Collection.NamePattern); err != nil {
		log.Fatalf("[CONFIG] Collection.NamePattern is invalid: %s", err.Error())
	}

	if Config.MongoDB.URI != "" && Config.MongoDB.Database == "" {
		log.Fatal("[CONFIG] MongoDB.Database is required when MongoDB.URI is set")
	}

	if Config.Metadata.ImageWorkers < 0 {
		log.Fatal("[CONFIG] Metadata.ImageWorkers must not be negative")
	}

	log.Debug("[CONFIG] Config validated")
}
