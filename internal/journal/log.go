package journal

import (
	"context"

	"github.com/rs/zerolog"

	"silzey-pos/internal/domain"
)

// Log writes a receipt line per sale.
type Log struct {
	logger zerolog.Logger
}

func NewLog(logger zerolog.Logger) *Log {
	return &Log{logger: logger}
}

func (l *Log) Record(_ context.Context, sale domain.Sale) error {
	l.logger.Info().
		Str("sale_id", sale.ID).
		Str("customer", sale.Customer.FirstName+" "+sale.Customer.LastName).
		Str("total", sale.Total.StringFixed(2)).
		Int("lines", len(sale.Lines)).
		Int64("points_earned", sale.PointsEarned).
		Int64("rewards_points", sale.RewardsPoints).
		Time("finalized_at", sale.FinalizedAt).
		Msg("sale finalized")
	return nil
}
