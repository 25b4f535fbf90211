package accounting

import (
	"fmt"

	"github.com/finanzapp/finanzas_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ErrInsufficientQuantity is returned when a sell exceeds the held quantity.
var ErrInsufficientQuantity = fmt.Errorf("insufficient quantity to sell")

// Position is a crypto holding reduced to the two figures cost-basis
// accounting cares about.
type Position struct {
	Quantity     decimal.Decimal
	AveragePrice decimal.Decimal
}

// NextPosition applies one trade to a position and returns the resulting
// position plus the trade's USD value. The average price moves only on buys
// (weighted by quantity); sells and earns leave it untouched.
func NextPosition(current Position, tradeType domain.TradeType, quantity, unitPrice decimal.Decimal) (Position, decimal.Decimal, error) {
	if quantity.LessThanOrEqual(decimal.Zero) {
		return Position{}, decimal.Zero, fmt.Errorf("trade quantity must be positive, got %s", quantity.String())
	}
	if unitPrice.IsNegative() {
		return Position{}, decimal.Zero, fmt.Errorf("unit price must not be negative, got %s", unitPrice.String())
	}

	switch tradeType {
	case domain.Buy:
		newQty := current.Quantity.Add(quantity)
		costBefore := current.Quantity.Mul(current.AveragePrice)
		costOfBuy := quantity.Mul(unitPrice)
		newAvg := decimal.Zero
		if newQty.IsPositive() {
			newAvg = costBefore.Add(costOfBuy).Div(newQty)
		}
		return Position{Quantity: newQty, AveragePrice: newAvg}, costOfBuy, nil

	case domain.Sell:
		if quantity.GreaterThan(current.Quantity) {
			return Position{}, decimal.Zero, fmt.Errorf("%w: have %s, want to sell %s",
				ErrInsufficientQuantity, current.Quantity.String(), quantity.String())
		}
		newQty := current.Quantity.Sub(quantity)
		return Position{Quantity: newQty, AveragePrice: current.AveragePrice}, quantity.Mul(unitPrice), nil

	case domain.Earn:
		// Rewards carry no cost: quantity grows, the basis stays put.
		newQty := current.Quantity.Add(quantity)
		return Position{Quantity: newQty, AveragePrice: current.AveragePrice}, decimal.Zero, nil

	default:
		return Position{}, decimal.Zero, fmt.Errorf("unknown trade type %q", tradeType)
	}
}
