package dto

import (
	"time"

	"github.com/finanzapp/finanzas_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateAssetRequest defines the data needed to register a crypto asset.
type CreateAssetRequest struct {
	Name   string `json:"name" binding:"required"`
	Symbol string `json:"symbol" binding:"required"`
}

// AssetResponse defines the data returned for an asset position.
type AssetResponse struct {
	AssetID      string          `json:"assetID"`
	Name         string          `json:"name"`
	Symbol       string          `json:"symbol"`
	Quantity     decimal.Decimal `json:"quantity"`
	AveragePrice decimal.Decimal `json:"averagePrice"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}

// RecordTradeRequest defines the data needed to record a trade.
// EARN trades credit quantity at zero cost, so unitPrice may be omitted then.
type RecordTradeRequest struct {
	AssetID   string          `json:"assetID" binding:"required"`
	Type      string          `json:"type" binding:"required,oneof=COMPRA VENTA EARN"`
	Quantity  decimal.Decimal `json:"quantity" binding:"required,decimalgt0"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	Date      time.Time       `json:"date" binding:"required"`
}

// TradeResponse defines the data returned for a recorded trade.
type TradeResponse struct {
	TradeID   string          `json:"tradeID"`
	AssetID   string          `json:"assetID"`
	Type      string          `json:"type"`
	Quantity  decimal.Decimal `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	TotalUSD  decimal.Decimal `json:"totalUSD"`
	Date      time.Time       `json:"date"`
	CreatedAt time.Time       `json:"createdAt"`
}

// ToAssetResponse converts a domain.CryptoAsset to AssetResponse DTO
func ToAssetResponse(asset *domain.CryptoAsset) AssetResponse {
	return AssetResponse{
		AssetID:      asset.AssetID,
		Name:         asset.Name,
		Symbol:       asset.Symbol,
		Quantity:     asset.Quantity,
		AveragePrice: asset.AveragePrice,
		CreatedAt:    asset.CreatedAt,
		UpdatedAt:    asset.UpdatedAt,
	}
}

// ToListAssetResponse converts a slice of domain.CryptoAsset to DTOs
func ToListAssetResponse(assets []domain.CryptoAsset) []AssetResponse {
	res := make([]AssetResponse, len(assets))
	for i, asset := range assets {
		res[i] = ToAssetResponse(&asset)
	}
	return res
}

// ToTradeResponse converts a domain.CryptoTrade to TradeResponse DTO
func ToTradeResponse(trade *domain.CryptoTrade) TradeResponse {
	return TradeResponse{
		TradeID:   trade.TradeID,
		AssetID:   trade.AssetID,
		Type:      string(trade.Type),
		Quantity:  trade.Quantity,
		UnitPrice: trade.UnitPrice,
		TotalUSD:  trade.TotalUSD,
		Date:      trade.Date,
		CreatedAt: trade.CreatedAt,
	}
}

// ToListTradeResponse converts a slice of domain.CryptoTrade to DTOs
func ToListTradeResponse(trades []domain.CryptoTrade) []TradeResponse {
	res := make([]TradeResponse, len(trades))
	for i, trade := range trades {
		res[i] = ToTradeResponse(&trade)
	}
	return res
}
