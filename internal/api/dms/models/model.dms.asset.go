// Package models - Asset thuộc domain DMS (assets).
// Lưu xe khách đang sở hữu, là gốc của một opportunity trade-up.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Asset lưu xe của khách (assets). Một asset + một contact = một opportunity.
type Asset struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`

	// Quan hệ
	OrganizationID primitive.ObjectID `json:"organizationId" bson:"organizationId" index:"single:1,compound:asset_org_vin_unique"`
	ContactID      primitive.ObjectID `json:"contactId" bson:"contactId" index:"single:1"`

	// Định danh xe
	Vin   string `json:"vin" bson:"vin" index:"compound:asset_org_vin_unique"`
	Year  int    `json:"year" bson:"year"`
	Make  string `json:"make" bson:"make"`
	Model string `json:"model" bson:"model"`
	Trim  string `json:"trim,omitempty" bson:"trim,omitempty"`
	Color string `json:"color,omitempty" bson:"color,omitempty"`

	// Tình trạng
	Mileage int `json:"mileage" bson:"mileage"`

	// Metadata
	CreatedAt int64 `json:"createdAt" bson:"createdAt" index:"single:1"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}
