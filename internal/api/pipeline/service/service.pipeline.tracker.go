// Package pipelinesvc - Theo dõi vị trí của asset trong pipeline equity.
//
// Advance là thao tác duy nhất mutate PipelineRecord: update có điều kiện trên
// (assetId, currentStageId) nên gọi lặp lại là no-op an toàn. AdvanceToStage
// diễn đạt ý "advance từ bất kỳ stage nguồn hợp lệ nào" bằng bảng transition
// tường minh thay vì chuỗi lệnh Advance rời rạc ở phía caller.
package pipelinesvc

import (
	"context"
	"fmt"
	"time"

	basesvc "github.com/Whointhefkisthatguy/trade-up/internal/api/base/service"
	pipelinemodels "github.com/Whointhefkisthatguy/trade-up/internal/api/pipeline/models"
	"github.com/Whointhefkisthatguy/trade-up/internal/common"
	"github.com/Whointhefkisthatguy/trade-up/internal/global"
	"github.com/Whointhefkisthatguy/trade-up/internal/logger"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// advanceSources là bảng transition: stage đích → các stage nguồn được phép.
// Advance chỉ khớp đúng một nguồn tại một thời điểm; các nguồn còn lại là no-op.
var advanceSources = map[string][]string{
	pipelinemodels.StageDataEnriched:      {pipelinemodels.StageIdentified},
	pipelinemodels.StageValuationComplete: {pipelinemodels.StageDataEnriched},
	pipelinemodels.StageEquityCalculated:  {pipelinemodels.StageValuationComplete},
	pipelinemodels.StageOfferGenerated: {
		pipelinemodels.StageIdentified,
		pipelinemodels.StageDataEnriched,
		pipelinemodels.StageValuationComplete,
		pipelinemodels.StageEquityCalculated,
	},
	pipelinemodels.StageOfferSent: {
		pipelinemodels.StageEquityCalculated,
		pipelinemodels.StageOfferGenerated,
	},
	pipelinemodels.StageOfferOpened:       {pipelinemodels.StageOfferSent},
	pipelinemodels.StageCustomerResponded: {pipelinemodels.StageOfferOpened},
	pipelinemodels.StageAppointmentSet:    {pipelinemodels.StageCustomerResponded},
	pipelinemodels.StageConverted:         {pipelinemodels.StageAppointmentSet},
}

// TransitionSources trả về danh sách stage nguồn được phép advance tới target,
// theo thứ tự thử. Target lạ trả về nil.
func TransitionSources(targetStageID string) []string {
	return advanceSources[targetStageID]
}

// PipelineService xử lý record và catalog stage của pipeline equity.
type PipelineService struct {
	records *basesvc.BaseServiceMongoImpl[pipelinemodels.PipelineRecord]
	stages  *basesvc.BaseServiceMongoImpl[pipelinemodels.PipelineStage]

	now func() time.Time
}

// NewPipelineService tạo PipelineService mới.
func NewPipelineService() (*PipelineService, error) {
	recordColl, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.PipelineRecords)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.PipelineRecords, common.ErrNotFound)
	}
	stageColl, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.PipelineStages)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.PipelineStages, common.ErrNotFound)
	}
	return &PipelineService{
		records: basesvc.NewBaseServiceMongo[pipelinemodels.PipelineRecord](recordColl),
		stages:  basesvc.NewBaseServiceMongo[pipelinemodels.PipelineStage](stageColl),
		now:     time.Now,
	}, nil
}

// EnsureRecord đảm bảo asset có record trong pipeline equity.
// Chưa có thì tạo mới ở stage identified; đã có thì không đụng tới.
func (s *PipelineService) EnsureRecord(ctx context.Context, assetID, orgID primitive.ObjectID) error {
	nowMs := s.now().UnixMilli()
	_, err := s.records.Collection().UpdateOne(ctx,
		bson.M{"assetId": assetID},
		bson.M{"$setOnInsert": bson.M{
			"assetId":        assetID,
			"organizationId": orgID,
			"pipelineName":   pipelinemodels.PipelineNameEquity,
			"currentStageId": pipelinemodels.StageIdentified,
			"enteredStageAt": nowMs,
			"createdAt":      nowMs,
			"updatedAt":      nowMs,
		}},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return common.ConvertMongoError(err)
	}
	return nil
}

// advanceFilter pin cả currentStageId nên update chỉ khớp khi record còn đứng
// đúng stage nguồn. Gọi lặp lại sau khi đã chuyển stage sẽ không khớp gì nữa.
func advanceFilter(assetID primitive.ObjectID, fromStageID string) bson.M {
	return bson.M{
		"assetId":        assetID,
		"currentStageId": fromStageID,
	}
}

func advanceUpdate(toStageID string, nowMs int64) bson.M {
	return bson.M{"$set": bson.M{
		"currentStageId": toStageID,
		"enteredStageAt": nowMs,
		"updatedAt":      nowMs,
	}}
}

// Advance chuyển record của asset từ fromStageID sang toStageID.
// Record không đang ở fromStageID thì không ghi gì và trả về false.
func (s *PipelineService) Advance(ctx context.Context, assetID primitive.ObjectID, fromStageID, toStageID string) (bool, error) {
	result, err := s.records.Collection().UpdateOne(ctx,
		advanceFilter(assetID, fromStageID),
		advanceUpdate(toStageID, s.now().UnixMilli()),
	)
	if err != nil {
		return false, common.ConvertMongoError(err)
	}
	advanced := result.MatchedCount > 0
	if advanced {
		logger.WithModuleAndCollection("pipeline", global.MongoDB_ColNames.PipelineRecords).
			Debugf("Advance asset %s: %s -> %s", assetID.Hex(), fromStageID, toStageID)
	}
	return advanced, nil
}

// AdvanceToStage chuyển record của asset tới targetStageID từ bất kỳ stage
// nguồn hợp lệ nào theo bảng transition. Trả về true nếu có một transition khớp.
func (s *PipelineService) AdvanceToStage(ctx context.Context, assetID primitive.ObjectID, targetStageID string) (bool, error) {
	sources := TransitionSources(targetStageID)
	if len(sources) == 0 {
		return false, common.NewError(common.ErrCodeValidationInput,
			fmt.Sprintf("Stage đích không hợp lệ: %s", targetStageID), common.StatusBadRequest, nil)
	}
	for _, from := range sources {
		advanced, err := s.Advance(ctx, assetID, from, targetStageID)
		if err != nil {
			return false, err
		}
		if advanced {
			return true, nil
		}
	}
	return false, nil
}

// CurrentStage trả về record pipeline của asset.
func (s *PipelineService) CurrentStage(ctx context.Context, assetID primitive.ObjectID) (pipelinemodels.PipelineRecord, error) {
	return s.records.FindOne(ctx, bson.M{"assetId": assetID}, nil)
}

// StageCount là số record đang đứng ở một stage.
type StageCount struct {
	StageID     string `json:"stageId"`
	StageName   string `json:"stageName"`
	Order       int    `json:"order"`
	Description string `json:"description,omitempty"`
	RecordCount int64  `json:"recordCount"`
}

// StageCounts trả về toàn bộ stage của pipeline equity kèm số record của org
// đang đứng ở từng stage, theo đúng thứ tự pipeline.
func (s *PipelineService) StageCounts(ctx context.Context, orgID primitive.ObjectID) ([]StageCount, error) {
	stageOpts := options.Find().SetSort(bson.D{{Key: "order", Value: 1}})
	stages, err := s.stages.Find(ctx, bson.M{"pipelineName": pipelinemodels.PipelineNameEquity}, stageOpts)
	if err != nil {
		return nil, err
	}

	cursor, err := s.records.Collection().Aggregate(ctx, []bson.M{
		{"$match": bson.M{"organizationId": orgID}},
		{"$group": bson.M{
			"_id":   "$currentStageId",
			"count": bson.M{"$sum": 1},
		}},
	})
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}
	defer cursor.Close(ctx)

	counts := map[string]int64{}
	for cursor.Next(ctx) {
		var row struct {
			ID    string `bson:"_id"`
			Count int64  `bson:"count"`
		}
		if err := cursor.Decode(&row); err != nil {
			return nil, common.ConvertMongoError(err)
		}
		counts[row.ID] = row.Count
	}

	result := make([]StageCount, 0, len(stages))
	for _, stage := range stages {
		result = append(result, StageCount{
			StageID:     stage.ID,
			StageName:   stage.StageName,
			Order:       stage.Order,
			Description: stage.Description,
			RecordCount: counts[stage.ID],
		})
	}
	return result, nil
}
