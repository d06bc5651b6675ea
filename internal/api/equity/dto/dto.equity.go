// Package dto - DTO cho domain equity.
package dto

// EquityAnalyzeInput dữ liệu phân tích equity thủ công cho một asset,
// khi caller đã có sẵn giá trị thị trường và số dư nợ.
type EquityAnalyzeInput struct {
	AssetID         string  `json:"assetId" validate:"required" transform:"str_objectid"`
	ContactID       string  `json:"contactId" validate:"required" transform:"str_objectid"`
	MarketValue     float64 `json:"marketValue" validate:"required,gt=0"`
	PayoffAmount    float64 `json:"payoffAmount" validate:"min=0"`
	ValuationSource string  `json:"valuationSource,omitempty"`
}
