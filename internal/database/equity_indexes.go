// Package database - Index bổ sung cho equity pipeline (compound với sort) không thể định nghĩa qua model tags.
package database

import (
	"context"
	"strings"

	"github.com/Whointhefkisthatguy/trade-up/internal/global"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CreateEquityAdditionalIndexes tạo các index bổ sung cho equity pipeline.
// Gọi sau CreateIndexes cho từng collection.
func CreateEquityAdditionalIndexes(ctx context.Context, db *mongo.Database) error {
	// equity_analyses: (assetId, createdAt desc) — lookup phân tích mới nhất theo asset
	equityAnalyses := db.Collection(global.MongoDB_ColNames.EquityAnalyses)
	if _, err := equityAnalyses.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "assetId", Value: 1},
			{Key: "createdAt", Value: -1},
		},
		Options: options.Index().SetName("equity_analysis_asset_created"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// equity_analyses: (organizationId, equityType, createdAt desc) — equity summary dashboard
	if _, err := equityAnalyses.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "organizationId", Value: 1},
			{Key: "equityType", Value: 1},
			{Key: "createdAt", Value: -1},
		},
		Options: options.Index().SetName("equity_analysis_org_type"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// pipeline_records: (organizationId, currentStageId) — đếm asset theo stage
	pipelineRecords := db.Collection(global.MongoDB_ColNames.PipelineRecords)
	if _, err := pipelineRecords.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "organizationId", Value: 1},
			{Key: "currentStageId", Value: 1},
		},
		Options: options.Index().SetName("pipeline_record_org_stage"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// deal_sheets: (assetId, status) — tra cứu deal sheet đang mở theo asset
	dealSheets := db.Collection(global.MongoDB_ColNames.DealSheets)
	if _, err := dealSheets.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "assetId", Value: 1},
			{Key: "status", Value: 1},
		},
		Options: options.Index().SetName("deal_sheet_asset_status"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// client_offer_tokens: (dealSheetId, status) — tra cứu token đang hiệu lực của deal sheet
	offerTokens := db.Collection(global.MongoDB_ColNames.ClientOfferTokens)
	if _, err := offerTokens.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "dealSheetId", Value: 1},
			{Key: "status", Value: 1},
		},
		Options: options.Index().SetName("offer_token_sheet_status"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	return nil
}

func isIndexExistsError(err error) bool {
	if err == nil {
		return false
	}
	s := err.Error()
	return strings.Contains(s, "already exists") || strings.Contains(s, "duplicate")
}
