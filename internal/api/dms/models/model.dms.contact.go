// Package models - Contact thuộc domain DMS (contacts).
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Contact lưu khách hàng sở hữu xe (contacts).
type Contact struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`

	OrganizationID primitive.ObjectID `json:"organizationId" bson:"organizationId" index:"single:1"`

	FirstName string `json:"firstName" bson:"firstName"`
	LastName  string `json:"lastName" bson:"lastName"`
	Email     string `json:"email,omitempty" bson:"email,omitempty"`
	Phone     string `json:"phone,omitempty" bson:"phone,omitempty"`

	CreatedAt int64 `json:"createdAt" bson:"createdAt" index:"single:1"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}

// FullName trả về họ tên đầy đủ của khách.
func (c *Contact) FullName() string {
	if c.FirstName == "" {
		return c.LastName
	}
	if c.LastName == "" {
		return c.FirstName
	}
	return c.FirstName + " " + c.LastName
}
