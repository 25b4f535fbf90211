package mapping

import (
	"github.com/finanzapp/finanzas_backend/internal/core/domain"
	"github.com/finanzapp/finanzas_backend/internal/models"
)

// ToModelCryptoAsset converts a domain CryptoAsset to a model CryptoAsset
func ToModelCryptoAsset(d domain.CryptoAsset) models.CryptoAsset {
	return models.CryptoAsset{
		AssetID:      d.AssetID,
		Name:         d.Name,
		Symbol:       d.Symbol,
		Quantity:     d.Quantity,
		AveragePrice: d.AveragePrice,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}
}

// ToDomainCryptoAsset converts a model CryptoAsset to a domain CryptoAsset
func ToDomainCryptoAsset(m models.CryptoAsset) domain.CryptoAsset {
	return domain.CryptoAsset{
		AssetID:      m.AssetID,
		Name:         m.Name,
		Symbol:       m.Symbol,
		Quantity:     m.Quantity,
		AveragePrice: m.AveragePrice,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

// ToDomainCryptoAssetSlice converts model CryptoAssets to domain CryptoAssets
func ToDomainCryptoAssetSlice(ms []models.CryptoAsset) []domain.CryptoAsset {
	ds := make([]domain.CryptoAsset, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainCryptoAsset(m)
	}
	return ds
}

// ToModelCryptoTrade converts a domain CryptoTrade to a model CryptoTrade
func ToModelCryptoTrade(d domain.CryptoTrade) models.CryptoTrade {
	return models.CryptoTrade{
		TradeID:   d.TradeID,
		AssetID:   d.AssetID,
		Type:      models.TradeType(d.Type),
		Quantity:  d.Quantity,
		UnitPrice: d.UnitPrice,
		TotalUSD:  d.TotalUSD,
		Date:      d.Date,
		CreatedAt: d.CreatedAt,
	}
}

// ToDomainCryptoTrade converts a model CryptoTrade to a domain CryptoTrade
func ToDomainCryptoTrade(m models.CryptoTrade) domain.CryptoTrade {
	return domain.CryptoTrade{
		TradeID:   m.TradeID,
		AssetID:   m.AssetID,
		Type:      domain.TradeType(m.Type),
		Quantity:  m.Quantity,
		UnitPrice: m.UnitPrice,
		TotalUSD:  m.TotalUSD,
		Date:      m.Date,
		CreatedAt: m.CreatedAt,
	}
}

// ToDomainCryptoTradeSlice converts model CryptoTrades to domain CryptoTrades
func ToDomainCryptoTradeSlice(ms []models.CryptoTrade) []domain.CryptoTrade {
	ds := make([]domain.CryptoTrade, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainCryptoTrade(m)
	}
	return ds
}
