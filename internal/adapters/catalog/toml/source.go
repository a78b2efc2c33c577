package toml

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"

	"github.com/tyler-dunkel/vendo/internal/domain"
	"github.com/tyler-dunkel/vendo/internal/ports"
)

const (
	configName      = "config"
	configType      = "toml"
	catalogPathKey  = "catalog.path"
	configDirName   = ".vendo"
	catalogFileName = "catalog.toml"
)

// Source reads catalog entries from a TOML file.
type Source struct {
	path string
}

var _ ports.CatalogSource = (*Source)(nil)

// NewSource resolves the catalog path. An explicit override wins; otherwise
// the path comes from the config file, falling back to ~/.vendo/catalog.toml.
func NewSource(cfg *viper.Viper, override string) (*Source, error) {
	if override != "" {
		path, err := normalizeCatalogPath(override)
		if err != nil {
			return nil, err
		}
		return &Source{path: path}, nil
	}

	if cfg == nil {
		cfg = viper.New()
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}

	defaultPath := filepath.Join(homeDir, configDirName, catalogFileName)

	cfg.SetConfigName(configName)
	cfg.SetConfigType(configType)
	cfg.AddConfigPath(filepath.Join(homeDir, configDirName))
	cfg.SetDefault(catalogPathKey, defaultPath)

	if err := cfg.ReadInConfig(); err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	path := cfg.GetString(catalogPathKey)
	if path == "" {
		return nil, errors.New("catalog path is empty")
	}
	path, err = normalizeCatalogPath(path)
	if err != nil {
		return nil, err
	}

	return &Source{path: path}, nil
}

// Path is the resolved catalog file location.
func (s *Source) Path() string {
	return s.path
}

// Load reads and validates the catalog file into load entries.
func (s *Source) Load(ctx context.Context) ([]domain.CatalogEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("catalog file %q not found: %w", s.path, err)
		}
		return nil, fmt.Errorf("read catalog file: %w", err)
	}

	var file fileSchema
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("decode catalog file: %w", err)
	}
	file.applyDefaults()
	if err := file.validateVersion(); err != nil {
		return nil, err
	}

	entries := make([]domain.CatalogEntry, 0, len(file.Products))
	seen := make(map[string]struct{}, len(file.Products))
	for i, product := range file.Products {
		name := strings.TrimSpace(product.Name)
		if name == "" {
			return nil, fmt.Errorf("catalog entry %d: name is required", i)
		}
		if _, dup := seen[name]; dup {
			return nil, fmt.Errorf("catalog entry %d: duplicate name %q", i, name)
		}
		if product.Price < 0 {
			return nil, fmt.Errorf("catalog entry %q: price must be non-negative", name)
		}
		if product.Amount < 0 {
			return nil, fmt.Errorf("catalog entry %q: amount must be non-negative", name)
		}

		seen[name] = struct{}{}
		entries = append(entries, domain.CatalogEntry{
			Name:   name,
			Price:  product.Price,
			Amount: product.Amount,
		})
	}

	return entries, nil
}

func normalizeCatalogPath(path string) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve catalog path: %w", err)
	}

	return filepath.Clean(absPath), nil
}
