package ports

import (
	"context"

	"github.com/tyler-dunkel/vendo/internal/domain"
)

// CatalogSource supplies the entries for a catalog load.
type CatalogSource interface {
	Load(ctx context.Context) ([]domain.CatalogEntry, error)
}
