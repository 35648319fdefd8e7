package config

import (
	"context"
	"fmt"
	"sync"

	"github.com/cleitonmarx/symbiont/config"
	"github.com/hashicorp/vault/api"
)

// VaultProvider serves configuration values from a single KV v2 secret in HashiCorp Vault.
//
// The secret is read on the first lookup and cached, so resolving many keys costs one round trip.
// Scalar values (numbers, booleans) are returned in their string form.
type VaultProvider struct {
	client     *api.Client
	mountPath  string
	secretPath string

	mu   sync.Mutex
	data map[string]any
}

// NewVaultProvider creates a new VaultProvider for secretPath under the KV mount mountPath.
func NewVaultProvider(server, token, mountPath, secretPath string) (*VaultProvider, error) {
	switch {
	case server == "":
		return nil, fmt.Errorf("server is required")
	case token == "" || token == "-":
		return nil, fmt.Errorf("token is required")
	case mountPath == "":
		return nil, fmt.Errorf("mountPath is required")
	case secretPath == "":
		return nil, fmt.Errorf("secretPath is required")
	}

	cfg := api.DefaultConfig()
	cfg.Address = server

	client, err := api.NewClient(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create vault client: %w", err)
	}
	client.SetToken(token)

	return &VaultProvider{
		client:     client,
		mountPath:  mountPath,
		secretPath: secretPath,
	}, nil
}

// Get returns the value stored under key in the configured secret.
func (vp *VaultProvider) Get(ctx context.Context, key string) (string, error) {
	data, err := vp.secret(ctx)
	if err != nil {
		return "", err
	}

	value, ok := data[key]
	if !ok {
		return "", fmt.Errorf("vault secret %s does not contain key %s", vp.secretPath, key)
	}

	switch v := value.(type) {
	case string:
		return v, nil
	case map[string]any, []any, nil:
		return "", fmt.Errorf("vault secret %s: key %s is not a scalar value", vp.secretPath, key)
	default:
		return fmt.Sprint(v), nil
	}
}

func (vp *VaultProvider) secret(ctx context.Context) (map[string]any, error) {
	vp.mu.Lock()
	defer vp.mu.Unlock()

	if vp.data != nil {
		return vp.data, nil
	}

	secret, err := vp.client.KVv2(vp.mountPath).Get(ctx, vp.secretPath)
	if err != nil {
		return nil, fmt.Errorf("read vault secret %s: %w", vp.secretPath, err)
	}
	if secret == nil || secret.Data == nil {
		return nil, fmt.Errorf("vault secret %s not found", vp.secretPath)
	}

	vp.data = secret.Data
	return vp.data, nil
}

var _ config.Provider = (*VaultProvider)(nil)

// InitVaultProvider layers a Vault secret under the environment as the global config provider,
// which lets FDC_API_KEY live in Vault instead of the process environment.
// When VAULT_ADDR is "-" only environment variables are consulted.
type InitVaultProvider struct {
	Server     string `config:"VAULT_ADDR" default:"-"`
	Token      string `config:"VAULT_TOKEN" default:"-"`
	MountPath  string `config:"VAULT_MOUNT_PATH" default:"secret"`
	SecretPath string `config:"VAULT_SECRET_PATH" default:"interaction-api"`
}

// Initialize registers the composite provider.
func (ivp InitVaultProvider) Initialize(ctx context.Context) (context.Context, error) {
	if ivp.Server == "-" || ivp.Server == "" {
		return ctx, nil
	}

	vaultProvider, err := NewVaultProvider(ivp.Server, ivp.Token, ivp.MountPath, ivp.SecretPath)
	if err != nil {
		return ctx, fmt.Errorf("failed to initialize Vault provider: %w", err)
	}

	config.SetGlobalProvider(
		config.NewCompositeProvider(
			config.EnvVarProvider{},
			vaultProvider,
		),
	)

	return ctx, nil
}
