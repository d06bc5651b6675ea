package equitysvc

import (
	"context"
	"fmt"
	"time"

	basesvc "github.com/Whointhefkisthatguy/trade-up/internal/api/base/service"
	dmssvc "github.com/Whointhefkisthatguy/trade-up/internal/api/dms/service"
	equitymodels "github.com/Whointhefkisthatguy/trade-up/internal/api/equity/models"
	pipelinemodels "github.com/Whointhefkisthatguy/trade-up/internal/api/pipeline/models"
	pipelinesvc "github.com/Whointhefkisthatguy/trade-up/internal/api/pipeline/service"
	valsvc "github.com/Whointhefkisthatguy/trade-up/internal/api/valuation/service"
	"github.com/Whointhefkisthatguy/trade-up/internal/common"
	"github.com/Whointhefkisthatguy/trade-up/internal/global"
	"github.com/Whointhefkisthatguy/trade-up/internal/logger"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EquityAnalysisService phân tích equity cho asset và lưu kết quả bất biến:
// mỗi lần phân tích là một document mới, không update document cũ.
type EquityAnalysisService struct {
	*basesvc.BaseServiceMongoImpl[equitymodels.EquityAnalysis]

	assets     *dmssvc.AssetService
	rules      *dmssvc.AnalysisRuleService
	pipeline   *pipelinesvc.PipelineService
	aggregator *valsvc.Aggregator
	band       equitymodels.Band

	now func() time.Time
}

// NewEquityAnalysisService tạo EquityAnalysisService mới với band mặc định.
func NewEquityAnalysisService(
	assets *dmssvc.AssetService,
	rules *dmssvc.AnalysisRuleService,
	pipeline *pipelinesvc.PipelineService,
	aggregator *valsvc.Aggregator,
) (*EquityAnalysisService, error) {
	coll, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.EquityAnalyses)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.EquityAnalyses, common.ErrNotFound)
	}
	return &EquityAnalysisService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[equitymodels.EquityAnalysis](coll),
		assets:               assets,
		rules:                rules,
		pipeline:             pipeline,
		aggregator:           aggregator,
		band:                 equitymodels.DefaultBand,
		now:                  time.Now,
	}, nil
}

// AnalyzeEquity phân loại equity từ giá trị thị trường và số dư nợ cho trước
// rồi lưu một bản ghi phân tích mới. Organization lấy từ asset.
func (s *EquityAnalysisService) AnalyzeEquity(
	ctx context.Context,
	assetID, contactID primitive.ObjectID,
	marketValue, payoffAmount float64,
	valuationSource string,
) (equitymodels.EquityAnalysis, error) {
	var zero equitymodels.EquityAnalysis

	asset, err := s.assets.FindOneById(ctx, assetID)
	if err != nil {
		return zero, err
	}

	classification, err := Classify(marketValue, payoffAmount, s.band)
	if err != nil {
		return zero, err
	}

	analysis := equitymodels.EquityAnalysis{
		AssetID:         assetID,
		ContactID:       contactID,
		OrganizationID:  asset.OrganizationID,
		MarketValue:     marketValue,
		PayoffAmount:    payoffAmount,
		EquityAmount:    classification.EquityAmount,
		EquityPercent:   classification.EquityPercent,
		EquityType:      classification.EquityType,
		ValuationSource: valuationSource,
	}
	return s.InsertOne(ctx, analysis)
}

// LatestForAsset trả về bản phân tích gần nhất của asset.
func (s *EquityAnalysisService) LatestForAsset(ctx context.Context, assetID primitive.ObjectID) (equitymodels.EquityAnalysis, error) {
	opts := options.FindOne().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	return s.FindOne(ctx, bson.M{"assetId": assetID}, opts)
}

// BatchResult là kết quả chạy batch phân tích cho một organization.
// OpportunityCount và ErrorCount luôn bằng độ dài mảng tương ứng,
// giữ cho caller chỉ cần số liệu không phải đếm lại.
type BatchResult struct {
	Processed        int                           `json:"processed"`
	OpportunityCount int                           `json:"opportunityCount"`
	ErrorCount       int                           `json:"errorCount"`
	Skipped          int                           `json:"skipped"`
	Opportunities    []equitymodels.EquityAnalysis `json:"opportunities"`
	Errors           []BatchError                  `json:"errors"`
}

func (r *BatchResult) finalize() {
	r.OpportunityCount = len(r.Opportunities)
	r.ErrorCount = len(r.Errors)
}

// BatchError là lỗi của một asset trong batch, không làm dừng cả batch.
type BatchError struct {
	AssetID string `json:"assetId"`
	Vin     string `json:"vin,omitempty"`
	Message string `json:"message"`
}

// BatchAnalyze chạy phân tích equity cho toàn bộ asset đủ điều kiện của org:
// định giá đa nguồn, ước lượng payoff, phân loại, lưu kết quả và đẩy pipeline
// qua các stage data_enriched, valuation_complete, equity_calculated.
// Lỗi của một asset chỉ vào danh sách errors, các asset còn lại vẫn chạy tiếp.
func (s *EquityAnalysisService) BatchAnalyze(ctx context.Context, orgID primitive.ObjectID) (*BatchResult, error) {
	assets, err := s.assets.FindByOrganization(ctx, orgID)
	if err != nil {
		return nil, err
	}
	rule, err := s.rules.ResolveForOrganization(ctx, orgID)
	if err != nil {
		return nil, err
	}

	log := logger.WithModule("equity")
	currentYear := s.now().Year()
	result := &BatchResult{
		Opportunities: []equitymodels.EquityAnalysis{},
		Errors:        []BatchError{},
	}

	for i := range assets {
		asset := &assets[i]
		if !IsEligible(asset, rule, currentYear) {
			result.Skipped++
			continue
		}

		if err := s.pipeline.EnsureRecord(ctx, asset.ID, orgID); err != nil {
			result.Errors = append(result.Errors, batchError(asset.ID, asset.Vin, err))
			continue
		}

		valuation, err := s.aggregator.Aggregate(ctx, asset.Vin, asset.Mileage)
		if err != nil {
			log.WithError(err).Errorf("Định giá asset %s thất bại", asset.ID.Hex())
			result.Errors = append(result.Errors, batchError(asset.ID, asset.Vin, err))
			continue
		}

		payoff := EstimatePayoff(valuation.Composite.Retail, currentYear-asset.Year)
		classification, err := Classify(valuation.Composite.TradeIn, payoff, s.band)
		if err != nil {
			result.Errors = append(result.Errors, batchError(asset.ID, asset.Vin, err))
			continue
		}

		analysis := equitymodels.EquityAnalysis{
			AssetID:         asset.ID,
			ContactID:       asset.ContactID,
			OrganizationID:  orgID,
			MarketValue:     valuation.Composite.TradeIn,
			PayoffAmount:    payoff,
			EquityAmount:    classification.EquityAmount,
			EquityPercent:   classification.EquityPercent,
			EquityType:      classification.EquityType,
			ValuationSource: valuation.SourceLabel(),
		}
		saved, err := s.InsertOne(ctx, analysis)
		if err != nil {
			result.Errors = append(result.Errors, batchError(asset.ID, asset.Vin, err))
			continue
		}

		for _, target := range []string{
			pipelinemodels.StageDataEnriched,
			pipelinemodels.StageValuationComplete,
			pipelinemodels.StageEquityCalculated,
		} {
			if _, err := s.pipeline.AdvanceToStage(ctx, asset.ID, target); err != nil {
				log.WithError(err).Warnf("Không advance được asset %s tới %s", asset.ID.Hex(), target)
				break
			}
		}

		result.Processed++
		if saved.EquityType == equitymodels.EquityTypePositive {
			result.Opportunities = append(result.Opportunities, saved)
		}
	}

	result.finalize()
	log.Infof("Batch analyze org %s: processed=%d, opportunities=%d, errors=%d, skipped=%d",
		orgID.Hex(), result.Processed, result.OpportunityCount, result.ErrorCount, result.Skipped)
	return result, nil
}

func batchError(assetID primitive.ObjectID, vin string, err error) BatchError {
	return BatchError{
		AssetID: assetID.Hex(),
		Vin:     vin,
		Message: err.Error(),
	}
}
