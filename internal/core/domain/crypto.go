package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// TradeType classifies a crypto trade.
type TradeType string

const (
	Buy  TradeType = "COMPRA"
	Sell TradeType = "VENTA"
	Earn TradeType = "EARN"
)

// ParseTradeType rejects unrecognized trade types at the boundary.
func ParseTradeType(s string) (TradeType, error) {
	switch TradeType(s) {
	case Buy, Sell, Earn:
		return TradeType(s), nil
	default:
		return "", fmt.Errorf("unknown trade type %q", s)
	}
}

// CryptoAsset is a single cost-basis position: the quantity held and the
// weighted-average price paid for it. AveragePrice only moves on buys.
type CryptoAsset struct {
	AssetID      string
	Name         string
	Symbol       string
	Quantity     decimal.Decimal
	AveragePrice decimal.Decimal
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// CryptoTrade is an immutable trade log entry against one asset.
type CryptoTrade struct {
	TradeID   string
	AssetID   string
	Type      TradeType
	Quantity  decimal.Decimal // always positive
	UnitPrice decimal.Decimal // zero for EARN trades
	TotalUSD  decimal.Decimal
	Date      time.Time
	CreatedAt time.Time
}
