package journal

import (
	"context"
	"fmt"

	"silzey-pos/internal/domain"
	salerepo "silzey-pos/internal/repository/sale"
)

// Postgres stores sales through the sale repository.
type Postgres struct {
	repo salerepo.Repository
}

func NewPostgres(repo salerepo.Repository) *Postgres {
	return &Postgres{repo: repo}
}

func (p *Postgres) Record(ctx context.Context, sale domain.Sale) error {
	if err := p.repo.Create(ctx, sale); err != nil {
		return fmt.Errorf("store sale %s: %w", sale.ID, err)
	}
	return nil
}
