// Package models - Organization thuộc domain DMS (organizations).
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Organization lưu dealer/tổ chức (organizations). Brand fields dùng khi render trang offer.
type Organization struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`

	Name string `json:"name" bson:"name"`
	Slug string `json:"slug" bson:"slug" index:"unique"`

	Phone   string `json:"phone,omitempty" bson:"phone,omitempty"`
	Website string `json:"website,omitempty" bson:"website,omitempty"`

	// Brand profile — đổ vào template deal sheet và trang offer
	PrimaryColor   string `json:"primaryColor,omitempty" bson:"primaryColor,omitempty"`
	SecondaryColor string `json:"secondaryColor,omitempty" bson:"secondaryColor,omitempty"`
	LogoUrl        string `json:"logoUrl,omitempty" bson:"logoUrl,omitempty"`

	CreatedAt int64 `json:"createdAt" bson:"createdAt" index:"single:1"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}

// BrandPrimaryColor trả về màu chính của brand, fallback màu mặc định.
func (o *Organization) BrandPrimaryColor() string {
	if o.PrimaryColor != "" {
		return o.PrimaryColor
	}
	return "#333333"
}

// DisplayName trả về tên hiển thị của dealer, fallback "Dealership".
func (o *Organization) DisplayName() string {
	if o.Name != "" {
		return o.Name
	}
	return "Dealership"
}
