// Package dto - DTO cho domain DMS (contact).
package dto

// ContactCreateInput dữ liệu tạo contact mới.
type ContactCreateInput struct {
	OrganizationID string `json:"organizationId" validate:"required" transform:"str_objectid"`
	FirstName      string `json:"firstName" validate:"required"`
	LastName       string `json:"lastName" validate:"required"`
	Email          string `json:"email,omitempty" validate:"omitempty,email"`
	Phone          string `json:"phone,omitempty"`
}

// ContactUpdateInput dữ liệu cập nhật contact.
type ContactUpdateInput struct {
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
	Email     string `json:"email,omitempty" validate:"omitempty,email"`
	Phone     string `json:"phone,omitempty"`
}
