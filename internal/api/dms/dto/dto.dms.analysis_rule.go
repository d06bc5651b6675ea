// Package dto - DTO cho domain DMS (analysis rule).
package dto

// AnalysisRuleCreateInput dữ liệu tạo rule điều kiện phân tích.
// OrganizationID rỗng = rule mặc định toàn hệ thống.
type AnalysisRuleCreateInput struct {
	OrganizationID     string `json:"organizationId,omitempty" transform:"str_objectid,optional"`
	MinVehicleAgeYears *int   `json:"minVehicleAgeYears,omitempty" validate:"omitempty,min=0"`
	MaxVehicleAgeYears *int   `json:"maxVehicleAgeYears,omitempty" validate:"omitempty,min=0"`
	MinMileage         *int   `json:"minMileage,omitempty" validate:"omitempty,min=0"`
	MaxMileage         *int   `json:"maxMileage,omitempty" validate:"omitempty,min=0"`
}

// AnalysisRuleUpdateInput dữ liệu cập nhật rule.
type AnalysisRuleUpdateInput struct {
	MinVehicleAgeYears *int `json:"minVehicleAgeYears,omitempty" validate:"omitempty,min=0"`
	MaxVehicleAgeYears *int `json:"maxVehicleAgeYears,omitempty" validate:"omitempty,min=0"`
	MinMileage         *int `json:"minMileage,omitempty" validate:"omitempty,min=0"`
	MaxMileage         *int `json:"maxMileage,omitempty" validate:"omitempty,min=0"`
}
