package config

import (
	"context"
	"fmt"
	"os"

	"github.com/hashicorp/vault/api"
)

// Vault secret keys recognized in the configured KV v2 secret.
const (
	vaultKeyAIAPIKey  = "ai_api_key"
	vaultKeyDSN       = "database_dsn"
	vaultKeyBrokerURL = "broker_url"
)

// loadVaultSecrets reads credentials from Vault and overlays them onto the
// configuration. Vault is the highest-priority source: values found there
// replace whatever the file or environment provided.
func (c *Config) loadVaultSecrets() error {
	vaultConfig := api.DefaultConfig()
	if c.Vault.Address != "" {
		vaultConfig.Address = c.Vault.Address
	}
	if c.Vault.Timeout > 0 {
		vaultConfig.Timeout = c.Vault.Timeout
	}

	client, err := api.NewClient(vaultConfig)
	if err != nil {
		return fmt.Errorf("failed to create Vault client: %w", err)
	}

	token := c.Vault.Token
	if token == "" {
		token = os.Getenv("VAULT_TOKEN")
	}
	if token == "" {
		return fmt.Errorf("vault is enabled but no token is configured (set vault.token or VAULT_TOKEN)")
	}
	client.SetToken(token)

	ctx := context.Background()
	if c.Vault.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.Vault.Timeout)
		defer cancel()
	}

	secret, err := client.KVv2(c.Vault.MountPath).Get(ctx, c.Vault.SecretPath)
	if err != nil {
		return fmt.Errorf("failed to read Vault secret %s/%s: %w", c.Vault.MountPath, c.Vault.SecretPath, err)
	}
	if secret == nil || secret.Data == nil {
		return fmt.Errorf("vault secret %s/%s is empty", c.Vault.MountPath, c.Vault.SecretPath)
	}

	if v, ok := secret.Data[vaultKeyAIAPIKey].(string); ok && v != "" {
		c.AI.APIKey = v
	}
	if v, ok := secret.Data[vaultKeyDSN].(string); ok && v != "" {
		c.Database.DSN = v
	}
	if v, ok := secret.Data[vaultKeyBrokerURL].(string); ok && v != "" {
		c.Broker.URL = v
	}

	return nil
}
