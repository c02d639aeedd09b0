package sale

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"silzey-pos/internal/domain"
)

type postgresRepo struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) Repository {
	return &postgresRepo{pool: pool}
}

func (r *postgresRepo) Create(ctx context.Context, sale domain.Sale) error {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `
INSERT INTO sales (id, first_name, last_name, date_of_birth, phone_number, total_cents, points_earned, rewards_points, finalized_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
`,
		sale.ID,
		sale.Customer.FirstName,
		sale.Customer.LastName,
		sale.Customer.DateOfBirth,
		sale.Customer.PhoneNumber,
		toCents(sale.Total),
		sale.PointsEarned,
		sale.RewardsPoints,
		sale.FinalizedAt,
	); err != nil {
		return err
	}

	for i, line := range sale.Lines {
		if _, err := tx.Exec(ctx, `
INSERT INTO sale_lines (sale_id, position, product_id, name, image, tag, unit_price_cents, quantity, total_cents)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
`, sale.ID, i, line.ID, line.Name, line.Image, line.Tag, toCents(line.Price), line.Quantity, toCents(line.Subtotal())); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

// GetByID reads a stored sale back. The register never calls it; it serves
// audits and the journal round-trip test.
func (r *postgresRepo) GetByID(ctx context.Context, id string) (*domain.Sale, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, fmt.Errorf("sale %q: %w", id, domain.ErrNotFound)
	}
	const saleQuery = `
SELECT id::text, first_name, last_name, date_of_birth, phone_number, total_cents, points_earned, rewards_points, finalized_at
FROM sales
WHERE id = $1
`
	var (
		sale       domain.Sale
		totalCents int64
	)
	if err := r.pool.QueryRow(ctx, saleQuery, id).Scan(
		&sale.ID,
		&sale.Customer.FirstName,
		&sale.Customer.LastName,
		&sale.Customer.DateOfBirth,
		&sale.Customer.PhoneNumber,
		&totalCents,
		&sale.PointsEarned,
		&sale.RewardsPoints,
		&sale.FinalizedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	sale.Total = fromCents(totalCents)

	rows, err := r.pool.Query(ctx, `
SELECT product_id, name, image, tag, unit_price_cents, quantity
FROM sale_lines
WHERE sale_id = $1
ORDER BY position
`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			line  domain.CartLine
			cents int64
		)
		if err := rows.Scan(&line.ID, &line.Name, &line.Image, &line.Tag, &cents, &line.Quantity); err != nil {
			return nil, err
		}
		line.Price = fromCents(cents)
		sale.Lines = append(sale.Lines, line)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return &sale, nil
}

func toCents(d decimal.Decimal) int64 {
	return d.Shift(2).Round(0).IntPart()
}

func fromCents(cents int64) decimal.Decimal {
	return decimal.New(cents, -2)
}
