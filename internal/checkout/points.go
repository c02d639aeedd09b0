package checkout

import "github.com/shopspring/decimal"

// PointsFor awards one point per whole currency unit of total.
func PointsFor(total decimal.Decimal) int64 {
	if total.IsNegative() {
		return 0
	}
	return total.Floor().IntPart()
}
