package main

import (
	"context"
	"time"

	dmssvc "github.com/Whointhefkisthatguy/trade-up/internal/api/dms/service"
	pipelinemodels "github.com/Whointhefkisthatguy/trade-up/internal/api/pipeline/models"
	"github.com/Whointhefkisthatguy/trade-up/internal/global"
	"github.com/Whointhefkisthatguy/trade-up/internal/logger"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func InitDefaultData() {
	log := logger.GetAppLogger()
	log.Info("🔄 [INIT] Starting InitDefaultData...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// 1. Seed catalog 10 stage của pipeline equity (upsert theo _id)
	log.Info("🔄 [INIT] Step 1: Seeding equity pipeline stages...")
	if err := seedPipelineStages(ctx); err != nil {
		log.Fatalf("Failed to seed pipeline stages: %v", err)
	}
	log.Info("✅ [INIT] Step 1: Equity pipeline stages seeded")

	// 2. Đảm bảo tồn tại analysis rule mặc định toàn hệ thống
	log.Info("🔄 [INIT] Step 2: Ensuring global analysis rule...")
	if err := ensureGlobalAnalysisRule(ctx); err != nil {
		log.WithError(err).Error("❌ [INIT] Step 2: Failed to ensure global analysis rule")
		log.Warnf("Failed to ensure global analysis rule: %v", err)
	} else {
		log.Info("✅ [INIT] Step 2: Global analysis rule ensured")
	}

	log.Info("✅ [INIT] InitDefaultData completed successfully")
}

// seedPipelineStages ghi catalog stage vào DB. Upsert theo _id nên chạy lại
// bao nhiêu lần cũng được, và sửa tên stage trong code sẽ tự sync xuống DB.
func seedPipelineStages(ctx context.Context) error {
	coll, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.PipelineStages)
	if !exist {
		return nil
	}

	for _, stage := range pipelinemodels.EquityStages() {
		_, err := coll.UpdateOne(ctx,
			bson.M{"_id": stage.ID},
			bson.M{"$set": bson.M{
				"pipelineName": stage.PipelineName,
				"stageName":    stage.StageName,
				"order":        stage.Order,
				"description":  stage.Description,
			}},
			options.Update().SetUpsert(true),
		)
		if err != nil {
			return err
		}
	}
	return nil
}

// ensureGlobalAnalysisRule tạo rule mặc định (document không có organizationId)
// nếu chưa có. Không ghi đè rule đã được admin chỉnh.
func ensureGlobalAnalysisRule(ctx context.Context) error {
	coll, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.AnalysisRules)
	if !exist {
		return nil
	}

	nowMs := time.Now().UnixMilli()
	defaults := dmssvc.DefaultResolvedRule()
	_, err := coll.UpdateOne(ctx,
		bson.M{"organizationId": bson.M{"$exists": false}},
		bson.M{"$setOnInsert": bson.M{
			"minVehicleAgeYears": defaults.MinVehicleAgeYears,
			"maxVehicleAgeYears": defaults.MaxVehicleAgeYears,
			"minMileage":         defaults.MinMileage,
			"maxMileage":         defaults.MaxMileage,
			"createdAt":          nowMs,
			"updatedAt":          nowMs,
		}},
		options.Update().SetUpsert(true),
	)
	return err
}
