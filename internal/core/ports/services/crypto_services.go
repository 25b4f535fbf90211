package services

import (
	"context"

	"github.com/finanzapp/finanzas_backend/internal/core/domain"
	"github.com/finanzapp/finanzas_backend/internal/dto"
)

// CryptoReaderSvc defines read operations for crypto positions
type CryptoReaderSvc interface {
	// GetAssetByID retrieves a specific asset position.
	GetAssetByID(ctx context.Context, assetID string) (*domain.CryptoAsset, error)

	// ListAssets retrieves all asset positions.
	ListAssets(ctx context.Context) ([]domain.CryptoAsset, error)

	// ListTrades retrieves the full trade log, most recent first.
	ListTrades(ctx context.Context) ([]domain.CryptoTrade, error)
}

// CryptoWriterSvc defines write operations for crypto positions
type CryptoWriterSvc interface {
	// CreateAsset registers a new asset with an empty position.
	CreateAsset(ctx context.Context, req dto.CreateAssetRequest) (*domain.CryptoAsset, error)

	// RecordTrade appends a trade and moves the asset's quantity and weighted
	// average price in one atomic unit.
	RecordTrade(ctx context.Context, req dto.RecordTradeRequest) (*domain.CryptoTrade, error)
}

// CryptoSvcFacade combines all crypto-related service interfaces
type CryptoSvcFacade interface {
	CryptoReaderSvc
	CryptoWriterSvc
}
