// Package models - DealSheet và ClientOfferToken thuộc domain deal.
//
// Deal sheet đóng băng toàn bộ dữ liệu tại thời điểm generate (specs xe,
// breakdown định giá, equity). Client offer về sau render lại từ snapshot
// này, không định giá lại.
package models

import (
	valmodels "github.com/Whointhefkisthatguy/trade-up/internal/api/valuation/models"
	"github.com/Whointhefkisthatguy/trade-up/internal/vin"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// VehicleSnapshot là specs xe tại thời điểm generate deal sheet.
type VehicleSnapshot struct {
	vin.Specs `json:",inline" bson:",inline"`

	Mileage int    `json:"mileage" bson:"mileage"`
	Color   string `json:"color,omitempty" bson:"color,omitempty"`
}

// EquitySnapshot là kết quả phân tích equity tại thời điểm generate.
type EquitySnapshot struct {
	MarketValue   float64 `json:"marketValue" bson:"marketValue"`
	PayoffAmount  float64 `json:"payoffAmount" bson:"payoffAmount"`
	EquityAmount  float64 `json:"equityAmount" bson:"equityAmount"`
	EquityPercent float64 `json:"equityPercent" bson:"equityPercent"`
	EquityType    string  `json:"equityType" bson:"equityType"`
}

// DealSheet lưu deal sheet nội bộ cho sales (deal_sheets).
type DealSheet struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`

	// Quan hệ
	EquityAnalysisID primitive.ObjectID `json:"equityAnalysisId" bson:"equityAnalysisId" index:"single:1"`
	AssetID          primitive.ObjectID `json:"assetId" bson:"assetId" index:"single:1"`
	ContactID        primitive.ObjectID `json:"contactId" bson:"contactId"`
	OrganizationID   primitive.ObjectID `json:"organizationId" bson:"organizationId" index:"single:1"`

	// Snapshot đóng băng tại thời điểm generate
	Vehicle   VehicleSnapshot                `json:"vehicle" bson:"vehicle"`
	Valuation valmodels.MultiSourceValuation `json:"valuation" bson:"valuation"`
	Equity    EquitySnapshot                 `json:"equity" bson:"equity"`

	RecommendedApproach string `json:"recommendedApproach" bson:"recommendedApproach"`
	RenderedHtml        string `json:"renderedHtml,omitempty" bson:"renderedHtml,omitempty"`

	// Vòng đời
	Status      string `json:"status" bson:"status"`
	ViewedAt    int64  `json:"viewedAt,omitempty" bson:"viewedAt,omitempty"`
	PresentedAt int64  `json:"presentedAt,omitempty" bson:"presentedAt,omitempty"`
	PresentedBy string `json:"presentedBy,omitempty" bson:"presentedBy,omitempty"`

	// Metadata
	CreatedAt int64 `json:"createdAt" bson:"createdAt" index:"single:1"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}
