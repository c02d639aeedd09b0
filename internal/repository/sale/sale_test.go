package sale

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"silzey-pos/internal/domain"
	"silzey-pos/internal/migrate"
)

func TestCents(t *testing.T) {
	cases := map[string]int64{"0": 0, "20.00": 2000, "12.345": 1235, "59.99": 5999}
	for in, want := range cases {
		if got := toCents(decimal.RequireFromString(in)); got != want {
			t.Fatalf("toCents(%s) = %d, want %d", in, got, want)
		}
	}
	if got := fromCents(4000).StringFixed(2); got != "40.00" {
		t.Fatalf("fromCents(4000) = %s", got)
	}
}

func TestPostgres_GetByIDRejectsMalformedID(t *testing.T) {
	repo := &postgresRepo{}
	for _, id := range []string{"", "sale-1", "Flower-1"} {
		if _, err := repo.GetByID(context.Background(), id); !errors.Is(err, domain.ErrNotFound) {
			t.Fatalf("GetByID(%q): expected not found, got %v", id, err)
		}
	}
}

func TestPostgres_CreateAndGet(t *testing.T) {
	ctx := context.Background()
	pool := testPool(ctx, t)
	defer pool.Close()

	if err := migrate.Apply(ctx, pool, zerolog.Nop()); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}
	if _, err := pool.Exec(ctx, `TRUNCATE sale_lines, sales CASCADE`); err != nil {
		t.Fatalf("truncate tables: %v", err)
	}

	repo := NewPostgres(pool)
	in := domain.Sale{
		ID:       uuid.NewString(),
		Customer: domain.CheckoutDraft{FirstName: "Ada", LastName: "Lovelace", DateOfBirth: "1990-12-10", PhoneNumber: "555"},
		Lines: []domain.CartLine{
			{Product: domain.Product{ID: "Flower-1", Name: "Flower Product 1", Tag: domain.TagOrganic, Price: decimal.RequireFromString("20.00")}, Quantity: 2},
			{Product: domain.Product{ID: "Vapes-2", Name: "Vapes Product 2", Tag: domain.TagHybrid, Price: decimal.RequireFromString("11.25")}, Quantity: 1},
		},
		Total:         decimal.RequireFromString("51.25"),
		PointsEarned:  51,
		RewardsPoints: 51,
		FinalizedAt:   time.Now().UTC().Truncate(time.Microsecond),
	}
	if err := repo.Create(ctx, in); err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := repo.GetByID(ctx, in.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Total.StringFixed(2) != "51.25" || got.PointsEarned != 51 || len(got.Lines) != 2 {
		t.Fatalf("unexpected sale %+v", got)
	}
	if got.Lines[0].ID != "Flower-1" || got.Lines[0].Quantity != 2 || got.Lines[1].Price.StringFixed(2) != "11.25" {
		t.Fatalf("unexpected lines %+v", got.Lines)
	}

	if _, err := repo.GetByID(ctx, uuid.NewString()); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func testPool(ctx context.Context, t *testing.T) *pgxpool.Pool {
	t.Helper()
	dsn := os.Getenv("TEST_DB_DSN")
	if dsn == "" {
		t.Skip("TEST_DB_DSN not set")
	}
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		t.Fatalf("connect db: %v", err)
	}
	return pool
}
