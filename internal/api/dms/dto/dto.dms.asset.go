// Package dto - DTO cho domain DMS (asset).
package dto

// AssetCreateInput dữ liệu tạo asset mới.
type AssetCreateInput struct {
	OrganizationID string `json:"organizationId" validate:"required" transform:"str_objectid"`
	ContactID      string `json:"contactId" validate:"required" transform:"str_objectid"`
	Vin            string `json:"vin" validate:"required,vin"`
	Year           int    `json:"year" validate:"required,min=1980,max=2040"`
	Make           string `json:"make" validate:"required"`
	Model          string `json:"model" validate:"required"`
	Trim           string `json:"trim,omitempty"`
	Color          string `json:"color,omitempty"`
	Mileage        int    `json:"mileage" validate:"min=0"`
}

// AssetUpdateInput dữ liệu cập nhật asset. Field rỗng không được cập nhật.
type AssetUpdateInput struct {
	Vin     string `json:"vin,omitempty" validate:"omitempty,vin"`
	Year    int    `json:"year,omitempty" validate:"omitempty,min=1980,max=2040"`
	Make    string `json:"make,omitempty"`
	Model   string `json:"model,omitempty"`
	Trim    string `json:"trim,omitempty"`
	Color   string `json:"color,omitempty"`
	Mileage int    `json:"mileage,omitempty" validate:"omitempty,min=0"`
}
