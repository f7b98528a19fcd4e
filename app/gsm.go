package app

import (
	"context"
	"fmt"
	"strings"

	secretmanager "cloud.google.com/go/secretmanager/apiv1"
	"cloud.google.com/go/secretmanager/apiv1/secretmanagerpb"
	"github.com/googleapis/gax-go/v2"
	log "github.com/sirupsen/logrus"
)

type SecretAccessor interface {
	AccessSecretVersion(ctx context.Context, req *secretmanagerpb.AccessSecretVersionRequest, opts ...gax.CallOption) (*secretmanagerpb.AccessSecretVersionResponse, error)
}

func accessSecretVersion(client SecretAccessor, name string) (string, error) {
	req := &secretmanagerpb.AccessSecretVersionRequest{
		Name: fmt.Sprintf("projects/%s/secrets/%s/versions/latest", Config.GoogleSecretManager.ProjectID, name),
	}

	result, err := client.AccessSecretVersion(context.Background(), req)
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(string(result.Payload.Data)), nil
}

// readSecrets fills the wallet key and the mongo uri from the secret manager
// when they were not provided by file or environment.
func readSecrets(client SecretAccessor) error {
	var err error

	if Config.Wallet.PrivateKey == "" && Config.Wallet.Mnemonic == "" &&
		Config.Wallet.KeypairPath == "" && Config.Wallet.GcpKmsKeyName == "" {
		if Config.GoogleSecretManager.WalletSecretName == "" {
			return fmt.Errorf("wallet secret name is empty")
		}

		log.Debug("[GSM] Reading wallet private key")
		Config.Wallet.PrivateKey, err = accessSecretVersion(client, Config.GoogleSecretManager.WalletSecretName)
		if err != nil {
			return fmt.Errorf("failed to access wallet private key: %w", err)
		}
		log.Info("[GSM] Successfully read wallet private key")
	}

	if Config.MongoDB.URI == "" && Config.GoogleSecretManager.MongoSecretName != "" {
		log.Debug("[GSM] Reading mongo uri")
		Config.MongoDB.URI, err = accessSecretVersion(client, Config.GoogleSecretManager.MongoSecretName)
		if err != nil {
			return fmt.Errorf("failed to access mongo uri: %w", err)
		}
		log.Info("[GSM] Successfully read mongo uri")
	}

	return nil
}

func readKeysFromGSM() {
	if !Config.GoogleSecretManager.Enabled {
		log.Debug("[GSM] Google Secret Manager is disabled")
		return
	}

	if Config.GoogleSecretManager.ProjectID == "" {
		log.Fatalf("[GSM] ProjectID is empty")
	}

	ctx := context.Background()
	client, err := secretmanager.NewClient(ctx)
	if err != nil {
		log.Fatalf("[GSM] Failed to create secretmanager client: %v", err)
	}
	defer client.Close()

	if err := readSecrets(client); err != nil {
		log.Fatalf("[GSM] %v", err)
	}
}
