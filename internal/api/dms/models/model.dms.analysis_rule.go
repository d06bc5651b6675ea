// Package models - AnalysisRule thuộc domain DMS (analysis_rules).
// Quy định điều kiện asset được đưa vào batch phân tích equity.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AnalysisRule lưu điều kiện phân tích (analysis_rules).
// OrganizationID rỗng (NilObjectID) = rule mặc định toàn hệ thống.
// Field nil = không override, lấy theo rule mặc định.
type AnalysisRule struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`

	OrganizationID primitive.ObjectID `json:"organizationId,omitempty" bson:"organizationId,omitempty" index:"unique,sparse"`

	MinVehicleAgeYears *int `json:"minVehicleAgeYears,omitempty" bson:"minVehicleAgeYears,omitempty"`
	MaxVehicleAgeYears *int `json:"maxVehicleAgeYears,omitempty" bson:"maxVehicleAgeYears,omitempty"`
	MinMileage         *int `json:"minMileage,omitempty" bson:"minMileage,omitempty"`
	MaxMileage         *int `json:"maxMileage,omitempty" bson:"maxMileage,omitempty"`

	CreatedAt int64 `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}

// ResolvedAnalysisRule là rule đã merge xong, mọi ngưỡng đều có giá trị cụ thể.
type ResolvedAnalysisRule struct {
	MinVehicleAgeYears int `json:"minVehicleAgeYears"`
	MaxVehicleAgeYears int `json:"maxVehicleAgeYears"`
	MinMileage         int `json:"minMileage"`
	MaxMileage         int `json:"maxMileage"`
}
