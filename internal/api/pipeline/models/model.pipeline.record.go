// Package models - PipelineRecord thuộc domain pipeline (pipeline_records).
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PipelineRecord lưu vị trí hiện tại của một asset trong pipeline.
// Mỗi asset có đúng một record cho một pipeline; advance mutate tại chỗ,
// không bao giờ insert bản ghi thứ hai.
type PipelineRecord struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`

	AssetID        primitive.ObjectID `json:"assetId" bson:"assetId" index:"unique"`
	OrganizationID primitive.ObjectID `json:"organizationId" bson:"organizationId"`

	PipelineName   string `json:"pipelineName" bson:"pipelineName"`
	CurrentStageID string `json:"currentStageId" bson:"currentStageId" index:"single:1"`
	EnteredStageAt int64  `json:"enteredStageAt" bson:"enteredStageAt"`

	CreatedAt int64 `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}
