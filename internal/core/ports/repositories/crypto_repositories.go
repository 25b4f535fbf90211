package repositories

import (
	"context"
	"time"

	"github.com/finanzapp/finanzas_backend/internal/core/domain"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// CryptoReader defines read operations for crypto positions and trades
type CryptoReader interface {
	// FindAssetByID retrieves a specific asset position.
	FindAssetByID(ctx context.Context, assetID string) (*domain.CryptoAsset, error)

	// ListAssets retrieves all asset positions ordered by name.
	ListAssets(ctx context.Context) ([]domain.CryptoAsset, error)

	// ListTrades retrieves the trade log, most recent date first.
	ListTrades(ctx context.Context) ([]domain.CryptoTrade, error)
}

// CryptoWriter defines write operations for crypto positions
type CryptoWriter interface {
	// SaveAsset persists a new asset position.
	SaveAsset(ctx context.Context, asset domain.CryptoAsset) error
}

// CryptoTxSupport defines operations that participate in atomic units.
// A trade insert and its position update are inseparable.
type CryptoTxSupport interface {
	// FindAssetForUpdate locks the asset row for update within a transaction,
	// serializing concurrent trades on the same position.
	FindAssetForUpdate(ctx context.Context, tx pgx.Tx, assetID string) (*domain.CryptoAsset, error)

	// InsertTradeInTx persists a new trade row within a transaction.
	InsertTradeInTx(ctx context.Context, tx pgx.Tx, trade domain.CryptoTrade) error

	// UpdateAssetPositionInTx overwrites quantity and average price within a
	// transaction, bumping updated_at.
	UpdateAssetPositionInTx(ctx context.Context, tx pgx.Tx, assetID string, quantity, averagePrice decimal.Decimal, now time.Time) error
}

// CryptoRepositoryFacade combines all crypto-related repository interfaces
type CryptoRepositoryFacade interface {
	CryptoReader
	CryptoWriter
	CryptoTxSupport
}
