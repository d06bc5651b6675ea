// Package models - PipelineStage thuộc domain pipeline (pipeline_stages).
package models

// PipelineStage là một bậc trong catalog pipeline. ID là mã stage dạng chuỗi
// ("ps-eq-01"...), cố định từ lúc seed, không phải ObjectID.
type PipelineStage struct {
	ID           string `json:"id" bson:"_id"`
	PipelineName string `json:"pipelineName" bson:"pipelineName" index:"single:1"`
	StageName    string `json:"stageName" bson:"stageName"`
	Order        int    `json:"order" bson:"order"`
	Description  string `json:"description,omitempty" bson:"description,omitempty"`
}
