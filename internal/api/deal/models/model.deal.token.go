package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ClientOfferToken là token truy cập trang offer public của khách
// (client_offer_tokens). Token là UUID v4, nhúng thẳng trong URL.
type ClientOfferToken struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`

	DealSheetID primitive.ObjectID `json:"dealSheetId" bson:"dealSheetId" index:"single:1"`
	Token       string             `json:"token" bson:"token" index:"unique"`
	Status      string             `json:"status" bson:"status"`
	ExpiresAt   int64              `json:"expiresAt" bson:"expiresAt"`

	// Theo dõi truy cập
	FirstAccessedAt int64 `json:"firstAccessedAt,omitempty" bson:"firstAccessedAt,omitempty"`
	LastAccessedAt  int64 `json:"lastAccessedAt,omitempty" bson:"lastAccessedAt,omitempty"`
	AccessCount     int64 `json:"accessCount" bson:"accessCount"`

	// Metadata
	CreatedAt int64 `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}
