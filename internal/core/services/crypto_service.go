package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/finanzapp/finanzas_backend/internal/apperrors"
	"github.com/finanzapp/finanzas_backend/internal/core/domain"
	portsrepo "github.com/finanzapp/finanzas_backend/internal/core/ports/repositories"
	portssvc "github.com/finanzapp/finanzas_backend/internal/core/ports/services"
	"github.com/finanzapp/finanzas_backend/internal/dto"
	"github.com/finanzapp/finanzas_backend/internal/middleware"
	"github.com/finanzapp/finanzas_backend/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

// cryptoService provides asset position and trade operations. A trade and
// its effect on the position are one atomic unit: the trade log and the
// weighted average can never drift apart.
type cryptoService struct {
	transactor portsrepo.Transactor
	cryptoRepo portsrepo.CryptoRepositoryFacade
}

// NewCryptoService creates a new CryptoService.
func NewCryptoService(transactor portsrepo.Transactor, cryptoRepo portsrepo.CryptoRepositoryFacade) portssvc.CryptoSvcFacade {
	return &cryptoService{transactor: transactor, cryptoRepo: cryptoRepo}
}

var _ portssvc.CryptoSvcFacade = (*cryptoService)(nil)

// GetAssetByID retrieves a specific asset position.
func (s *cryptoService) GetAssetByID(ctx context.Context, assetID string) (*domain.CryptoAsset, error) {
	return s.cryptoRepo.FindAssetByID(ctx, assetID)
}

// ListAssets retrieves all asset positions.
func (s *cryptoService) ListAssets(ctx context.Context) ([]domain.CryptoAsset, error) {
	return s.cryptoRepo.ListAssets(ctx)
}

// ListTrades retrieves the full trade log.
func (s *cryptoService) ListTrades(ctx context.Context) ([]domain.CryptoTrade, error) {
	return s.cryptoRepo.ListTrades(ctx)
}

// CreateAsset registers a new asset with an empty position.
func (s *cryptoService) CreateAsset(ctx context.Context, req dto.CreateAssetRequest) (*domain.CryptoAsset, error) {
	now := time.Now().UTC()
	asset := domain.CryptoAsset{
		AssetID:      uuid.NewString(),
		Name:         req.Name,
		Symbol:       req.Symbol,
		Quantity:     decimal.Zero,
		AveragePrice: decimal.Zero,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.cryptoRepo.SaveAsset(ctx, asset); err != nil {
		return nil, fmt.Errorf("failed to create asset: %w", err)
	}

	middleware.GetLoggerFromCtx(ctx).Info("Crypto asset created", "asset_id", asset.AssetID, "symbol", asset.Symbol)
	return &asset, nil
}

// RecordTrade appends a trade and moves the position atomically. The asset
// row is locked first, so concurrent trades on the same asset serialize and
// each one sees the position the previous one left behind.
func (s *cryptoService) RecordTrade(ctx context.Context, req dto.RecordTradeRequest) (*domain.CryptoTrade, error) {
	tradeType, err := domain.ParseTradeType(req.Type)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err)
	}
	if req.Quantity.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: quantity must be positive", apperrors.ErrValidation)
	}

	unitPrice := req.UnitPrice
	if tradeType == domain.Earn {
		// Earned quantity carries no cost
		unitPrice = decimal.Zero
	} else if unitPrice.IsNegative() {
		return nil, fmt.Errorf("%w: unit price must not be negative", apperrors.ErrValidation)
	}

	now := time.Now().UTC()
	trade := domain.CryptoTrade{
		TradeID:   uuid.NewString(),
		AssetID:   req.AssetID,
		Type:      tradeType,
		Quantity:  req.Quantity,
		UnitPrice: unitPrice,
		Date:      req.Date,
		CreatedAt: now,
	}

	err = s.transactor.WithTx(ctx, func(tx pgx.Tx) error {
		asset, err := s.cryptoRepo.FindAssetForUpdate(ctx, tx, req.AssetID)
		if err != nil {
			return err
		}

		current := accounting.Position{Quantity: asset.Quantity, AveragePrice: asset.AveragePrice}
		next, total, err := accounting.NextPosition(current, tradeType, req.Quantity, unitPrice)
		if err != nil {
			if errors.Is(err, accounting.ErrInsufficientQuantity) {
				return fmt.Errorf("%w: %w", apperrors.ErrConflict, err)
			}
			return fmt.Errorf("%w: %s", apperrors.ErrValidation, err)
		}
		trade.TotalUSD = total

		if err := s.cryptoRepo.InsertTradeInTx(ctx, tx, trade); err != nil {
			return err
		}
		return s.cryptoRepo.UpdateAssetPositionInTx(ctx, tx, req.AssetID, next.Quantity, next.AveragePrice, now)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to record trade: %w", err)
	}

	middleware.GetLoggerFromCtx(ctx).Info("Trade recorded",
		"trade_id", trade.TradeID,
		"asset_id", trade.AssetID,
		"type", string(trade.Type),
	)
	return &trade, nil
}
