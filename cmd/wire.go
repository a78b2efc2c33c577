package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	authadapter "github.com/tyler-dunkel/vendo/internal/adapters/auth"
	catalogtoml "github.com/tyler-dunkel/vendo/internal/adapters/catalog/toml"
	filestore "github.com/tyler-dunkel/vendo/internal/adapters/secrets/file"
	"github.com/tyler-dunkel/vendo/internal/ports"
)

const (
	configDirName      = ".vendo"
	environmentKey     = "environment"
	secretsPathKey     = "secrets.path"
	adminHashKeyPrefix = "admin.hash."
)

type app struct {
	verifier      ports.CredentialVerifier
	secretStore   ports.SecretStore
	clock         ports.Clock
	environment   string
	catalogSource func(override string) (ports.CatalogSource, error)
}

func wireApp() (*app, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	environment := cfg.GetString(environmentKey)
	secretStore := filestore.NewStore(cfg.GetString(secretsPathKey))

	// The config file override wins; otherwise the reference hash comes out
	// of the secret store. Neither existing just means nobody is admin.
	referenceHash := cfg.GetString(adminHashKeyPrefix + environment)
	if referenceHash == "" {
		if stored, storeErr := secretStore.Get(context.Background(), authadapter.SecretKey(environment)); storeErr == nil {
			referenceHash = stored
		}
	}

	return &app{
		verifier:    authadapter.NewVerifier(referenceHash),
		secretStore: secretStore,
		clock:       ports.SystemClock{},
		environment: environment,
		catalogSource: func(override string) (ports.CatalogSource, error) {
			source, err := catalogtoml.NewSource(viper.New(), override)
			if err != nil {
				return nil, fmt.Errorf("wire catalog source: %w", err)
			}
			return source, nil
		},
	}, nil
}

func loadConfig() (*viper.Viper, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}

	cfg := viper.New()
	cfg.SetConfigName("config")
	cfg.SetConfigType("toml")
	cfg.AddConfigPath(filepath.Join(homeDir, configDirName))
	cfg.SetDefault(environmentKey, envOrDefault("VENDO_ENV", "dev"))
	cfg.SetDefault(secretsPathKey, filepath.Join(homeDir, configDirName, "secrets.toml"))

	if err := cfg.ReadInConfig(); err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	return cfg, nil
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
