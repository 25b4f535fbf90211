package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/finanzapp/finanzas_backend/internal/apperrors"
	"github.com/finanzapp/finanzas_backend/internal/core/domain"
	portsrepo "github.com/finanzapp/finanzas_backend/internal/core/ports/repositories"
	"github.com/finanzapp/finanzas_backend/internal/models"
	"github.com/finanzapp/finanzas_backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type PgxCryptoRepository struct {
	pool *pgxpool.Pool
}

// newPgxCryptoRepository creates a new repository for crypto positions and trades.
func newPgxCryptoRepository(pool *pgxpool.Pool) portsrepo.CryptoRepositoryFacade {
	return &PgxCryptoRepository{pool: pool}
}

var _ portsrepo.CryptoRepositoryFacade = (*PgxCryptoRepository)(nil)

const assetColumns = `asset_id, name, symbol, quantity, average_price, created_at, updated_at`

func scanAsset(row pgx.Row) (models.CryptoAsset, error) {
	var m models.CryptoAsset
	err := row.Scan(
		&m.AssetID,
		&m.Name,
		&m.Symbol,
		&m.Quantity,
		&m.AveragePrice,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	return m, err
}

// FindAssetByID retrieves a specific asset position.
func (r *PgxCryptoRepository) FindAssetByID(ctx context.Context, assetID string) (*domain.CryptoAsset, error) {
	query := `SELECT ` + assetColumns + ` FROM crypto_assets WHERE asset_id = $1;`

	m, err := scanAsset(r.pool.QueryRow(ctx, query, assetID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find asset by ID %s: %w", assetID, err)
	}

	d := mapping.ToDomainCryptoAsset(m)
	return &d, nil
}

// ListAssets retrieves all asset positions ordered by name.
func (r *PgxCryptoRepository) ListAssets(ctx context.Context) ([]domain.CryptoAsset, error) {
	query := `SELECT ` + assetColumns + ` FROM crypto_assets ORDER BY name;`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query crypto assets: %w", err)
	}
	defer rows.Close()

	assets := []domain.CryptoAsset{}
	for rows.Next() {
		m, err := scanAsset(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan asset row: %w", err)
		}
		assets = append(assets, mapping.ToDomainCryptoAsset(m))
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating asset rows: %w", rows.Err())
	}
	return assets, nil
}

// ListTrades retrieves the trade log, most recent date first.
func (r *PgxCryptoRepository) ListTrades(ctx context.Context) ([]domain.CryptoTrade, error) {
	query := `
		SELECT trade_id, asset_id, type, quantity, unit_price, total_usd, date, created_at
		FROM crypto_trades
		ORDER BY date DESC, created_at DESC;
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query crypto trades: %w", err)
	}
	defer rows.Close()

	trades := []domain.CryptoTrade{}
	for rows.Next() {
		var m models.CryptoTrade
		err := rows.Scan(
			&m.TradeID,
			&m.AssetID,
			&m.Type,
			&m.Quantity,
			&m.UnitPrice,
			&m.TotalUSD,
			&m.Date,
			&m.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan trade row: %w", err)
		}
		trades = append(trades, mapping.ToDomainCryptoTrade(m))
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating trade rows: %w", rows.Err())
	}
	return trades, nil
}

// SaveAsset persists a new asset position.
func (r *PgxCryptoRepository) SaveAsset(ctx context.Context, asset domain.CryptoAsset) error {
	m := mapping.ToModelCryptoAsset(asset)

	query := `
		INSERT INTO crypto_assets (asset_id, name, symbol, quantity, average_price, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err := r.pool.Exec(ctx, query,
		m.AssetID,
		m.Name,
		m.Symbol,
		m.Quantity,
		m.AveragePrice,
		m.CreatedAt,
		m.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: asset with symbol %s already exists", apperrors.ErrDuplicate, m.Symbol)
		}
		return fmt.Errorf("failed to save asset %s: %w", m.AssetID, err)
	}
	return nil
}

// FindAssetForUpdate locks the asset row within a transaction.
func (r *PgxCryptoRepository) FindAssetForUpdate(ctx context.Context, tx pgx.Tx, assetID string) (*domain.CryptoAsset, error) {
	query := `SELECT ` + assetColumns + ` FROM crypto_assets WHERE asset_id = $1 FOR UPDATE;`

	m, err := scanAsset(tx.QueryRow(ctx, query, assetID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to lock asset %s: %w", assetID, err)
	}

	d := mapping.ToDomainCryptoAsset(m)
	return &d, nil
}

// InsertTradeInTx persists a new trade row within a transaction.
func (r *PgxCryptoRepository) InsertTradeInTx(ctx context.Context, tx pgx.Tx, trade domain.CryptoTrade) error {
	m := mapping.ToModelCryptoTrade(trade)

	query := `
		INSERT INTO crypto_trades (trade_id, asset_id, type, quantity, unit_price, total_usd, date, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := tx.Exec(ctx, query,
		m.TradeID,
		m.AssetID,
		m.Type,
		m.Quantity,
		m.UnitPrice,
		m.TotalUSD,
		m.Date,
		m.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: trade with ID %s already exists", apperrors.ErrDuplicate, m.TradeID)
		}
		return fmt.Errorf("failed to insert trade %s: %w", m.TradeID, err)
	}
	return nil
}

// UpdateAssetPositionInTx overwrites quantity and average price within a transaction.
func (r *PgxCryptoRepository) UpdateAssetPositionInTx(ctx context.Context, tx pgx.Tx, assetID string, quantity, averagePrice decimal.Decimal, now time.Time) error {
	cmdTag, err := tx.Exec(ctx,
		`UPDATE crypto_assets SET quantity = $2, average_price = $3, updated_at = $4 WHERE asset_id = $1;`,
		assetID, quantity, averagePrice, now,
	)
	if err != nil {
		return fmt.Errorf("failed to update asset position %s: %w", assetID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
