package models

type Config struct {
	GoogleSecretManager GoogleSecretManagerConfig `yaml:"google_secret_manager" json:"google_secret_manager"`
	HealthCheck         HealthCheckConfig         `yaml:"health_check" json:"health_check"`
	Logger              LoggerConfig              `yaml:"logger" json:"logger"`
	MongoDB             MongoConfig               `yaml:"mongodb" json:"mongo_db"`
	Solana              SolanaConfig              `yaml:"solana" json:"solana"`
	Wallet              WalletConfig              `yaml:"wallet" json:"wallet"`
	CandyMachine        CandyMachineConfig        `yaml:"candy_machine" json:"candy_machine"`
	Staking             StakingConfig             `yaml:"staking" json:"staking"`
	Collection          CollectionConfig          `yaml:"collection" json:"collection"`
	Metadata            MetadataConfig            `yaml:"metadata" json:"metadata"`
	API                 APIConfig                 `yaml:"api" json:"api"`
}

type GoogleSecretManagerConfig struct {
	Enabled          bool   `yaml:"enabled" json:"enabled"`
	ProjectID        string `yaml:"project_id" json:"project_id"`
	MongoSecretName  string `yaml:"mongo_secret_name" json:"mongo_secret_name"`
	WalletSecretName string `yaml:"wallet_secret_name" json:"wallet_secret_name"`
}

type HealthCheckConfig struct {
	IntervalMillis int64 `yaml:"interval_ms" json:"interval_ms"`
}

type LoggerConfig struct {
	Level string `yaml:"level" json:"level"`
}

type MongoConfig struct {
	URI           string `yaml:"uri" json:"uri"`
	Database      string `yaml:"database" json:"database"`
	TimeoutMillis int64  `yaml:"timeout_ms" json:"timeout_ms"`
}

type SolanaConfig struct {
	Network               string  `yaml:"network" json:"network"`
	MainnetRPCURL         string  `yaml:"mainnet_rpc_url" json:"mainnet_rpc_url"`
	DevnetRPCURL          string  `yaml:"devnet_rpc_url" json:"devnet_rpc_url"`
	RPCTimeoutMillis      int64   `yaml:"rpc_timeout_ms" json:"rpc_timeout_ms"`
	RPCRequestsPerSecond  float64 `yaml:"rpc_requests_per_second" json:"rpc_requests_per_second"`
	ExplorerURL           string  `yaml:"explorer_url" json:"explorer_url"`
	SkipNetworkValidation bool    `yaml:"skip_network_validation" json:"skip_network_validation"`
}

// WalletConfig selects the signer acting as the connected wallet. Exactly one
// of the key sources is expected to be set.
type WalletConfig struct {
	KeypairPath    string `yaml:"keypair_path" json:"keypair_path"`
	PrivateKey     string `yaml:"private_key" json:"private_key"`
	Mnemonic       string `yaml:"mnemonic" json:"mnemonic"`
	GcpKmsKeyName  string `yaml:"gcp_kms_key_name" json:"gcp_kms_key_name"`
	ConfirmSigning bool   `yaml:"confirm_signing" json:"confirm_signing"`
}

type CandyMachineConfig struct {
	ProgramID      string `yaml:"program_id" json:"program_id"`
	ConfigAddress  string `yaml:"config_address" json:"config_address"`
	UUID           string `yaml:"uuid" json:"uuid"`
	StartDate      int64  `yaml:"start_date" json:"start_date"`
	PollIntervalMs int64  `yaml:"poll_interval_ms" json:"poll_interval_ms"`
}

type StakingConfig struct {
	GemBankProgramID string `yaml:"gem_bank_program_id" json:"gem_bank_program_id"`
	BankAddress      string `yaml:"bank_address" json:"bank_address"`
	VaultName        string `yaml:"vault_name" json:"vault_name"`
}

type CollectionConfig struct {
	NamePattern string `yaml:"name_pattern" json:"name_pattern"`
}

type MetadataConfig struct {
	HTTPTimeoutMillis int64 `yaml:"http_timeout_ms" json:"http_timeout_ms"`
	ImageWorkers      int   `yaml:"image_workers" json:"image_workers"`
}

type APIConfig struct {
	Enabled       bool   `yaml:"enabled" json:"enabled"`
	ListenAddress string `yaml:"listen_address" json:"listen_address"`
}
