// Package dto - DTO cho domain deal.
package dto

// DealSheetGenerateInput dữ liệu sinh deal sheet mới từ một bản phân tích equity.
type DealSheetGenerateInput struct {
	EquityAnalysisID string `json:"equityAnalysisId" validate:"required" transform:"str_objectid"`
}

// PresentInput dữ liệu đánh dấu deal sheet đã present cho khách.
type PresentInput struct {
	PresentedBy string `json:"presentedBy,omitempty" maxLength:"120"`
}
