package sale

import (
	"context"

	"silzey-pos/internal/domain"
)

// Repository stores finalized sales. GetByID is for audits and tests only.
type Repository interface {
	Create(ctx context.Context, sale domain.Sale) error
	GetByID(ctx context.Context, id string) (*domain.Sale, error)
}
