// Package dto - DTO cho domain DMS (organization).
package dto

// OrganizationCreateInput dữ liệu tạo organization mới.
type OrganizationCreateInput struct {
	Name           string `json:"name" validate:"required"`
	Slug           string `json:"slug" validate:"required,lowercase"`
	Phone          string `json:"phone,omitempty"`
	Website        string `json:"website,omitempty"`
	PrimaryColor   string `json:"primaryColor,omitempty"`
	SecondaryColor string `json:"secondaryColor,omitempty"`
	LogoUrl        string `json:"logoUrl,omitempty"`
}

// OrganizationUpdateInput dữ liệu cập nhật organization.
type OrganizationUpdateInput struct {
	Name           string `json:"name,omitempty"`
	Phone          string `json:"phone,omitempty"`
	Website        string `json:"website,omitempty"`
	PrimaryColor   string `json:"primaryColor,omitempty"`
	SecondaryColor string `json:"secondaryColor,omitempty"`
	LogoUrl        string `json:"logoUrl,omitempty"`
}
