// Package models - EquityAnalysis thuộc domain equity (equity_analyses).
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Phân loại equity.
const (
	EquityTypePositive  = "positive"
	EquityTypeBreakeven = "breakeven"
	EquityTypeNegative  = "negative"
)

// Band là dải breakeven [Low, High] tính trên equityAmount, bao gồm cả hai đầu.
type Band struct {
	Low  float64 `json:"low"`
	High float64 `json:"high"`
}

// DefaultBand là dải breakeven mặc định: equity trong [-500, 500] coi là hoà vốn.
var DefaultBand = Band{Low: -500, High: 500}

// EquityAnalysis lưu một lần phân tích equity (equity_analyses).
// Immutable sau khi tạo: sửa sai bằng cách insert bản ghi mới, không update.
// "Mới nhất" của một asset = bản ghi có createdAt lớn nhất.
type EquityAnalysis struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`

	AssetID        primitive.ObjectID `json:"assetId" bson:"assetId" index:"single:1"`
	ContactID      primitive.ObjectID `json:"contactId" bson:"contactId"`
	OrganizationID primitive.ObjectID `json:"organizationId" bson:"organizationId"`

	MarketValue   float64 `json:"marketValue" bson:"marketValue"`
	PayoffAmount  float64 `json:"payoffAmount" bson:"payoffAmount"`
	EquityAmount  float64 `json:"equityAmount" bson:"equityAmount"`
	EquityPercent float64 `json:"equityPercent" bson:"equityPercent"`
	EquityType    string  `json:"equityType" bson:"equityType"`

	// Nhãn nguồn định giá, ví dụ "composite:kbb_mock+nada_mock+blackbook_mock"
	ValuationSource string `json:"valuationSource" bson:"valuationSource"`

	CreatedAt int64 `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}
