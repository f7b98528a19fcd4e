package app

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

func readConfigFromENV(envFile string) {
	if envFile != "" {
		err := godotenv.Load(envFile)
		if err != nil {
			log.Warn("[ENV] Error loading .env file: ", err.Error())
		}
	}

	// mongodb
	if os.Getenv("MONGODB_URI") != "" {
		Config.MongoDB.URI = os.Getenv("MONGODB_URI")
	}
	if os.Getenv("MONGODB_DATABASE") != "" {
		Config.MongoDB.Database = os.Getenv("MONGODB_DATABASE")
	}
	if os.Getenv("MONGODB_TIMEOUT_MS") != "" {
		timeoutMs, err := strconv.ParseInt(os.Getenv("MONGODB_TIMEOUT_MS"), 10, 64)
		if err != nil {
			log.Warn("[ENV] Error parsing MONGODB_TIMEOUT_MS: ", err.Error())
		} else {
			Config.MongoDB.TimeoutMillis = timeoutMs
		}
	}

	// solana
	if os.Getenv("SOLANA_NETWORK") != "" {
		Config.Solana.Network = os.Getenv("SOLANA_NETWORK")
	}
	if os.Getenv("SOLANA_MAINNET_RPC_URL") != "" {
		Config.Solana.MainnetRPCURL = os.Getenv("SOLANA_MAINNET_RPC_URL")
	}
	if os.Getenv("SOLANA_DEVNET_RPC_URL") != "" {
		Config.Solana.DevnetRPCURL = os.Getenv("SOLANA_DEVNET_RPC_URL")
	}
	if os.Getenv("SOLANA_RPC_TIMEOUT_MS") != "" {
		timeoutMs, err := strconv.ParseInt(os.Getenv("SOLANA_RPC_TIMEOUT_MS"), 10, 64)
		if err != nil {
			log.Warn("[ENV] Error parsing SOLANA_RPC_TIMEOUT_MS: ", err.Error())
		} else {
			Config.Solana.RPCTimeoutMillis = timeoutMs
		}
	}
	if os.Getenv("SOLANA_RPC_REQUESTS_PER_SECOND") != "" {
		rps, err := strconv.ParseFloat(os.Getenv("SOLANA_RPC_REQUESTS_PER_SECOND"), 64)
		if err != nil {
			log.Warn("[ENV] Error parsing SOLANA_RPC_REQUESTS_PER_SECOND: ", err.Error())
		} else {
			Config.Solana.RPCRequestsPerSecond = rps
		}
	}
	if os.Getenv("SOLANA_EXPLORER_URL") != "" {
		Config.Solana.ExplorerURL = os.Getenv("SOLANA_EXPLORER_URL")
	}

	// wallet
	if os.Getenv("WALLET_KEYPAIR_PATH") != "" {
		Config.Wallet.KeypairPath = os.Getenv("WALLET_KEYPAIR_PATH")
	}
	if os.Getenv("WALLET_PRIVATE_KEY") != "" {
		Config.Wallet.PrivateKey = os.Getenv("WALLET_PRIVATE_KEY")
	}
	if os.Getenv("WALLET_MNEMONIC") != "" {
		Config.Wallet.Mnemonic = os.Getenv("WALLET_MNEMONIC")
	}
	if os.Getenv("WALLET_GCP_KMS_KEY_NAME") != "" {
		Config.Wallet.GcpKmsKeyName = os.Getenv("WALLET_GCP_KMS_KEY_NAME")
	}
	if os.Getenv("WALLET_CONFIRM_SIGNING") != "" {
		confirm, err := strconv.ParseBool(os.Getenv("WALLET_CONFIRM_SIGNING"))
		if err != nil {
			log.Warn("[ENV] Error parsing WALLET_CONFIRM_SIGNING: ", err.Error())
		} else {
			Config.Wallet.ConfirmSigning = confirm
		}
	}

	// candy machine
	if os.Getenv("CANDY_MACHINE_PROGRAM_ID") != "" {
		Config.CandyMachine.ProgramID = os.Getenv("CANDY_MACHINE_PROGRAM_ID")
	}
	if os.Getenv("CANDY_MACHINE_CONFIG") != "" {
		Config.CandyMachine.ConfigAddress = os.Getenv("CANDY_MACHINE_CONFIG")
	}
	if os.Getenv("CANDY_MACHINE_UUID") != "" {
		Config.CandyMachine.UUID = os.Getenv("CANDY_MACHINE_UUID")
	}
	if os.Getenv("CANDY_MACHINE_START_DATE") != "" {
		startDate, err := strconv.ParseInt(os.Getenv("CANDY_MACHINE_START_DATE"), 10, 64)
		if err != nil {
			log.Warn("[ENV] Error parsing CANDY_MACHINE_START_DATE: ", err.Error())
		} else {
			Config.CandyMachine.StartDate = startDate
		}
	}
	if os.Getenv("CANDY_MACHINE_POLL_INTERVAL_MS") != "" {
		intervalMs, err := strconv.ParseInt(os.Getenv("CANDY_MACHINE_POLL_INTERVAL_MS"), 10, 64)
		if err != nil {
			log.Warn("[ENV] Error parsing CANDY_MACHINE_POLL_INTERVAL_MS: ", err.Error())
		} else {
			Config.CandyMachine.PollIntervalMs = intervalMs
		}
	}

	// staking
	if os.Getenv("GEM_BANK_PROGRAM_ID") != "" {
		Config.Staking.GemBankProgramID = os.Getenv("GEM_BANK_PROGRAM_ID")
	}
	if os.Getenv("GEM_BANK_ADDRESS") != "" {
		Config.Staking.BankAddress = os.Getenv("GEM_BANK_ADDRESS")
	}
	if os.Getenv("GEM_BANK_VAULT_NAME") != "" {
		Config.Staking.VaultName = os.Getenv("GEM_BANK_VAULT_NAME")
	}

	// collection
	if os.Getenv("COLLECTION_NAME_PATTERN") != "" {
		Config.Collection.NamePattern = os.Getenv("COLLECTION_NAME_PATTERN")
	}

	// metadata
	if os.Getenv("METADATA_HTTP_TIMEOUT_MS") != "" {
		timeoutMs, err := strconv.ParseInt(os.Getenv("METADATA_HTTP_TIMEOUT_MS"), 10, 64)
		if err != nil {
			log.Warn("[ENV] Error parsing METADATA_HTTP_TIMEOUT_MS: ", err.Error())
		} else {
			Config.Metadata.HTTPTimeoutMillis = timeoutMs
		}
	}
	if os.Getenv("METADATA_IMAGE_WORKERS") != "" {
		workers, err := strconv.Atoi(os.Getenv("METADATA_IMAGE_WORKERS"))
		if err != nil {
			log.Warn("[ENV] Error parsing METADATA_IMAGE_WORKERS: ", err.Error())
		} else {
			Config.Metadata.ImageWorkers = workers
		}
	}

	// api
	if os.Getenv("API_ENABLED") != "" {
		enabled, err := strconv.ParseBool(os.Getenv("API_ENABLED"))
		if err != nil {
			log.Warn("[ENV] Error parsing API_ENABLED: ", err.Error())
		} else {
			Config.API.Enabled = enabled
		}
	}
	if os.Getenv("API_LISTEN_ADDRESS") != "" {
		Config.API.ListenAddress = os.Getenv("API_LISTEN_ADDRESS")
	}

	// health check
	if os.Getenv("HEALTH_CHECK_INTERVAL_MS") != "" {
		intervalMs, err := strconv.ParseInt(os.Getenv("HEALTH_CHECK_INTERVAL_MS"), 10, 64)
		if err != nil {
			log.Warn("[ENV] Error parsing HEALTH_CHECK_INTERVAL_MS: ", err.Error())
		} else {
			Config.HealthCheck.IntervalMillis = intervalMs
		}
	}

	// logging
	if os.Getenv("LOG_LEVEL") != "" {
		Config.Logger.Level = os.Getenv("LOG_LEVEL")
	}

	// google secret manager
	if os.Getenv("GOOGLE_SECRET_MANAGER_ENABLED") != "" {
		enabled, err := strconv.ParseBool(os.Getenv("GOOGLE_SECRET_MANAGER_ENABLED"))
		if err != nil {
			log.Warn("[ENV] Error parsing GOOGLE_SECRET_MANAGER_ENABLED: ", err.Error())
		} else {
			Config.GoogleSecretManager.Enabled = enabled
		}
	}
	if os.Getenv("GOOGLE_PROJECT_ID") != "" {
		Config.GoogleSecretManager.ProjectID = os.Getenv("GOOGLE_PROJECT_ID")
	}
	if os.Getenv("GOOGLE_MONGO_SECRET_NAME") != "" {
		Config.GoogleSecretManager.MongoSecretName = os.Getenv("GOOGLE_MONGO_SECRET_NAME")
	}
	if os.Getenv("GOOGLE_WALLET_SECRET_NAME") != "" {
		Config.GoogleSecretManager.WalletSecretName = os.Getenv("GOOGLE_WALLET_SECRET_NAME")
	}
}
