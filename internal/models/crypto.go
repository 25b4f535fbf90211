package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TradeType mirrors domain.TradeType for storage.
type TradeType string

const (
	Buy  TradeType = "BUY"
	Sell TradeType = "SELL"
	Earn TradeType = "EARN"
)

// CryptoAsset is the database shape of a cost-basis position.
type CryptoAsset struct {
	AssetID      string          `db:"asset_id"`
	Name         string          `db:"name"`
	Symbol       string          `db:"symbol"`
	Quantity     decimal.Decimal `db:"quantity"`
	AveragePrice decimal.Decimal `db:"average_price"`
	CreatedAt    time.Time       `db:"created_at"`
	UpdatedAt    time.Time       `db:"updated_at"`
}

// CryptoTrade is the database shape of a trade log entry.
type CryptoTrade struct {
	TradeID   string          `db:"trade_id"`
	AssetID   string          `db:"asset_id"`
	Type      TradeType       `db:"type"`
	Quantity  decimal.Decimal `db:"quantity"`
	UnitPrice decimal.Decimal `db:"unit_price"`
	TotalUSD  decimal.Decimal `db:"total_usd"`
	Date      time.Time       `db:"date"`
	CreatedAt time.Time       `db:"created_at"`
}
