package dealsvc

import (
	"context"
	"fmt"
	"strings"
	"time"

	basesvc "github.com/Whointhefkisthatguy/trade-up/internal/api/base/service"
	dealmodels "github.com/Whointhefkisthatguy/trade-up/internal/api/deal/models"
	dmsmodels "github.com/Whointhefkisthatguy/trade-up/internal/api/dms/models"
	dmssvc "github.com/Whointhefkisthatguy/trade-up/internal/api/dms/service"
	equitymodels "github.com/Whointhefkisthatguy/trade-up/internal/api/equity/models"
	pipelinemodels "github.com/Whointhefkisthatguy/trade-up/internal/api/pipeline/models"
	pipelinesvc "github.com/Whointhefkisthatguy/trade-up/internal/api/pipeline/service"
	valsvc "github.com/Whointhefkisthatguy/trade-up/internal/api/valuation/service"
	"github.com/Whointhefkisthatguy/trade-up/internal/common"
	"github.com/Whointhefkisthatguy/trade-up/internal/global"
	"github.com/Whointhefkisthatguy/trade-up/internal/logger"
	"github.com/Whointhefkisthatguy/trade-up/internal/renderer"
	"github.com/Whointhefkisthatguy/trade-up/internal/vin"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const dateLayout = "January 2, 2006"

// DealSheetService sinh và quản lý vòng đời deal sheet.
type DealSheetService struct {
	*basesvc.BaseServiceMongoImpl[dealmodels.DealSheet]

	tokens   *basesvc.BaseServiceMongoImpl[dealmodels.ClientOfferToken]
	analyses *basesvc.BaseServiceMongoImpl[equitymodels.EquityAnalysis]

	assets     *dmssvc.AssetService
	contacts   *dmssvc.ContactService
	orgs       *dmssvc.OrganizationService
	pipeline   *pipelinesvc.PipelineService
	aggregator *valsvc.Aggregator
	decoder    vin.Decoder

	now func() time.Time
}

// NewDealSheetService tạo DealSheetService mới.
func NewDealSheetService(
	assets *dmssvc.AssetService,
	contacts *dmssvc.ContactService,
	orgs *dmssvc.OrganizationService,
	pipeline *pipelinesvc.PipelineService,
	aggregator *valsvc.Aggregator,
	decoder vin.Decoder,
) (*DealSheetService, error) {
	sheetColl, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.DealSheets)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.DealSheets, common.ErrNotFound)
	}
	tokenColl, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.ClientOfferTokens)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.ClientOfferTokens, common.ErrNotFound)
	}
	analysisColl, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.EquityAnalyses)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.EquityAnalyses, common.ErrNotFound)
	}
	return &DealSheetService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[dealmodels.DealSheet](sheetColl),
		tokens:               basesvc.NewBaseServiceMongo[dealmodels.ClientOfferToken](tokenColl),
		analyses:             basesvc.NewBaseServiceMongo[equitymodels.EquityAnalysis](analysisColl),
		assets:               assets,
		contacts:             contacts,
		orgs:                 orgs,
		pipeline:             pipeline,
		aggregator:           aggregator,
		decoder:              decoder,
		now:                  time.Now,
	}, nil
}

// Generate sinh deal sheet mới từ một bản phân tích equity: decode VIN, định
// giá đa nguồn mới, render HTML nội bộ và đóng băng toàn bộ vào snapshot.
func (s *DealSheetService) Generate(ctx context.Context, equityAnalysisID primitive.ObjectID) (dealmodels.DealSheet, error) {
	var zero dealmodels.DealSheet

	analysis, err := s.analyses.FindOneById(ctx, equityAnalysisID)
	if err != nil {
		return zero, err
	}
	asset, err := s.assets.FindOneById(ctx, analysis.AssetID)
	if err != nil {
		return zero, err
	}
	contact, err := s.contacts.FindOneById(ctx, analysis.ContactID)
	if err != nil {
		return zero, err
	}
	org, err := s.orgs.FindOneById(ctx, analysis.OrganizationID)
	if err != nil {
		return zero, err
	}

	vehicle := s.buildVehicleSnapshot(ctx, &asset)

	valuation, err := s.aggregator.Aggregate(ctx, asset.Vin, asset.Mileage)
	if err != nil {
		return zero, err
	}

	vehicleDesc := fmt.Sprintf("%d %s %s", vehicle.Year, vehicle.Make, vehicle.Model)
	recommendation := BuildRecommendation(analysis.EquityType, analysis.EquityAmount, contact.FullName(), vehicleDesc)

	sheet := dealmodels.DealSheet{
		EquityAnalysisID: equityAnalysisID,
		AssetID:          analysis.AssetID,
		ContactID:        analysis.ContactID,
		OrganizationID:   analysis.OrganizationID,
		Vehicle:          vehicle,
		Valuation:        *valuation,
		Equity: dealmodels.EquitySnapshot{
			MarketValue:   analysis.MarketValue,
			PayoffAmount:  analysis.PayoffAmount,
			EquityAmount:  analysis.EquityAmount,
			EquityPercent: analysis.EquityPercent,
			EquityType:    analysis.EquityType,
		},
		RecommendedApproach: recommendation,
		Status:              dealmodels.SheetStatusGenerated,
	}

	html, err := renderer.Render(renderer.TemplateInternalDealSheet,
		internalSheetData(&sheet, &contact, &org, s.now().Format(dateLayout)))
	if err != nil {
		return zero, err
	}
	sheet.RenderedHtml = html

	return s.InsertOne(ctx, sheet)
}

// buildVehicleSnapshot decode VIN để làm giàu specs. Decode lỗi thì dùng
// dữ liệu sẵn có trên asset, không chặn việc sinh deal sheet.
func (s *DealSheetService) buildVehicleSnapshot(ctx context.Context, asset *dmsmodels.Asset) dealmodels.VehicleSnapshot {
	snapshot := dealmodels.VehicleSnapshot{
		Specs: vin.Specs{
			Vin:   asset.Vin,
			Year:  asset.Year,
			Make:  asset.Make,
			Model: asset.Model,
			Trim:  asset.Trim,
		},
		Mileage: asset.Mileage,
		Color:   asset.Color,
	}

	specs, err := s.decoder.Decode(ctx, asset.Vin)
	if err != nil {
		logger.WithModule("deal").WithError(err).
			Warnf("Decode VIN %s thất bại, dùng dữ liệu trên asset", asset.Vin)
		return snapshot
	}

	snapshot.Specs = *specs
	// Dữ liệu nhập tay trên asset luôn thắng dữ liệu suy ra từ VIN
	if asset.Year > 0 {
		snapshot.Year = asset.Year
	}
	if asset.Make != "" {
		snapshot.Make = asset.Make
	}
	if asset.Model != "" {
		snapshot.Model = asset.Model
	}
	if asset.Trim != "" {
		snapshot.Trim = asset.Trim
	}
	return snapshot
}

// Get trả về deal sheet theo id. Lần đọc đầu tiên của sheet mới sinh sẽ
// chuyển trạng thái generated sang viewed.
func (s *DealSheetService) Get(ctx context.Context, id primitive.ObjectID) (dealmodels.DealSheet, error) {
	sheet, err := s.FindOneById(ctx, id)
	if err != nil {
		return sheet, err
	}
	if sheet.Status != dealmodels.SheetStatusGenerated {
		return sheet, nil
	}

	nowMs := s.now().UnixMilli()
	_, err = s.Collection().UpdateOne(ctx,
		bson.M{"_id": id, "status": dealmodels.SheetStatusGenerated},
		bson.M{"$set": bson.M{
			"status":    dealmodels.SheetStatusViewed,
			"viewedAt":  nowMs,
			"updatedAt": nowMs,
		}},
	)
	if err != nil {
		return sheet, common.ConvertMongoError(err)
	}
	sheet.Status = dealmodels.SheetStatusViewed
	sheet.ViewedAt = nowMs
	sheet.UpdatedAt = nowMs
	return sheet, nil
}

// MarkPresented đánh dấu deal sheet đã được present cho khách và đẩy pipeline
// của asset tới offer_generated. Sheet đã presented rồi thì là no-op.
func (s *DealSheetService) MarkPresented(ctx context.Context, id primitive.ObjectID, presentedBy string) (dealmodels.DealSheet, error) {
	sheet, err := s.FindOneById(ctx, id)
	if err != nil {
		return sheet, err
	}
	switch sheet.Status {
	case dealmodels.SheetStatusPresented:
		return sheet, nil
	case dealmodels.SheetStatusClientOfferSent:
		return sheet, common.NewError(common.ErrCodeBusinessState,
			"Deal sheet đã phát hành client offer, không quay lại presented được",
			common.StatusConflict, nil)
	}

	nowMs := s.now().UnixMilli()
	_, err = s.Collection().UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{
			"status":      dealmodels.SheetStatusPresented,
			"presentedAt": nowMs,
			"presentedBy": presentedBy,
			"updatedAt":   nowMs,
		}},
	)
	if err != nil {
		return sheet, common.ConvertMongoError(err)
	}

	if _, err := s.pipeline.AdvanceToStage(ctx, sheet.AssetID, pipelinemodels.StageOfferGenerated); err != nil {
		logger.WithModule("deal").WithError(err).
			Warnf("Không advance được asset %s tới offer_generated", sheet.AssetID.Hex())
	}

	sheet.Status = dealmodels.SheetStatusPresented
	sheet.PresentedAt = nowMs
	sheet.PresentedBy = presentedBy
	sheet.UpdatedAt = nowMs
	return sheet, nil
}

// ClientOfferIssue là kết quả phát hành client offer.
type ClientOfferIssue struct {
	Token     string `json:"token"`
	Url       string `json:"url"`
	ExpiresAt int64  `json:"expiresAt"`
	Html      string `json:"html"`
}

// GenerateClientOffer phát hành client offer cho deal sheet đã presented:
// sinh token UUID v4, render trang offer từ snapshot và chuyển sheet sang
// client_offer_sent. Sheet chưa presented, kể cả đã client_offer_sent,
// đều bị từ chối.
func (s *DealSheetService) GenerateClientOffer(ctx context.Context, sheetID primitive.ObjectID) (*ClientOfferIssue, error) {
	sheet, err := s.FindOneById(ctx, sheetID)
	if err != nil {
		return nil, err
	}
	if !dealmodels.CanGenerateClientOffer(sheet.Status) {
		return nil, common.NewError(common.ErrCodeBusinessState,
			fmt.Sprintf("Deal sheet phải ở trạng thái presented mới phát hành được client offer, hiện là %s", sheet.Status),
			common.StatusConflict, nil)
	}

	contact, err := s.contacts.FindOneById(ctx, sheet.ContactID)
	if err != nil {
		return nil, err
	}
	org, err := s.orgs.FindOneById(ctx, sheet.OrganizationID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	tokenStr := uuid.NewString()
	expiresAt := now.AddDate(0, 0, global.MongoDB_ServerConfig.OfferTokenTTLDays).UnixMilli()

	html, err := renderClientOffer(&sheet, &contact, &org, tokenStr, expiresAt)
	if err != nil {
		return nil, err
	}

	token := dealmodels.ClientOfferToken{
		DealSheetID: sheet.ID,
		Token:       tokenStr,
		Status:      dealmodels.TokenStatusActive,
		ExpiresAt:   expiresAt,
	}
	if _, err := s.tokens.InsertOne(ctx, token); err != nil {
		return nil, err
	}

	nowMs := now.UnixMilli()
	_, err = s.Collection().UpdateOne(ctx,
		bson.M{"_id": sheet.ID},
		bson.M{"$set": bson.M{
			"status":    dealmodels.SheetStatusClientOfferSent,
			"updatedAt": nowMs,
		}},
	)
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}

	if _, err := s.pipeline.AdvanceToStage(ctx, sheet.AssetID, pipelinemodels.StageOfferSent); err != nil {
		logger.WithModule("deal").WithError(err).
			Warnf("Không advance được asset %s tới offer_sent", sheet.AssetID.Hex())
	}

	baseURL := strings.TrimRight(global.MongoDB_ServerConfig.PublicBaseURL, "/")
	return &ClientOfferIssue{
		Token:     tokenStr,
		Url:       baseURL + "/offer/" + tokenStr,
		ExpiresAt: expiresAt,
		Html:      html,
	}, nil
}

// internalSheetData chuẩn bị dữ liệu render template deal sheet nội bộ.
// Mọi giá trị tiền đều format sẵn phía Go.
func internalSheetData(sheet *dealmodels.DealSheet, contact *dmsmodels.Contact, org *dmsmodels.Organization, generatedDate string) map[string]interface{} {
	sources := make([]map[string]interface{}, 0, len(sheet.Valuation.Sources))
	for _, src := range sheet.Valuation.Sources {
		sources = append(sources, map[string]interface{}{
			"sourceName": SourceDisplayName(src.Source),
			"wholesale":  renderer.FormatCurrency(src.Wholesale),
			"retail":     renderer.FormatCurrency(src.Retail),
			"tradeIn":    renderer.FormatCurrency(src.TradeIn),
		})
	}

	return map[string]interface{}{
		"firstName":           contact.FirstName,
		"lastName":            contact.LastName,
		"email":               contact.Email,
		"phone":               contact.Phone,
		"year":                sheet.Vehicle.Year,
		"make":                sheet.Vehicle.Make,
		"model":               sheet.Vehicle.Model,
		"trim":                sheet.Vehicle.Trim,
		"vin":                 sheet.Vehicle.Vin,
		"mileage":             sheet.Vehicle.Mileage,
		"bodyClass":           sheet.Vehicle.BodyClass,
		"fuelType":            sheet.Vehicle.FuelType,
		"driveType":           sheet.Vehicle.DriveType,
		"plantCountry":        sheet.Vehicle.PlantCountry,
		"valuationSources":    sources,
		"compositeWholesale":  renderer.FormatCurrency(sheet.Valuation.Composite.Wholesale),
		"compositeRetail":     renderer.FormatCurrency(sheet.Valuation.Composite.Retail),
		"compositeTradeIn":    renderer.FormatCurrency(sheet.Valuation.Composite.TradeIn),
		"marketValue":         renderer.FormatCurrency(sheet.Equity.MarketValue),
		"payoffAmount":        renderer.FormatCurrency(sheet.Equity.PayoffAmount),
		"equityAmount":        renderer.FormatCurrency(sheet.Equity.EquityAmount),
		"equityPercent":       sheet.Equity.EquityPercent,
		"equityType":          sheet.Equity.EquityType,
		"recommendedApproach": sheet.RecommendedApproach,
		"brandPrimaryColor":   org.BrandPrimaryColor(),
		"dealershipName":      org.DisplayName(),
		"generatedDate":       generatedDate,
	}
}

// renderClientOffer render trang offer public từ snapshot của deal sheet.
// Dùng cho cả lúc phát hành lẫn lúc khách mở link về sau.
func renderClientOffer(sheet *dealmodels.DealSheet, contact *dmsmodels.Contact, org *dmsmodels.Organization, tokenStr string, expiresAt int64) (string, error) {
	clientMessage := BuildClientMessage(sheet.Equity.EquityType, sheet.Equity.EquityAmount)
	showEquity := sheet.Equity.EquityType == equitymodels.EquityTypePositive

	return renderer.Render(renderer.TemplateClientOffer, map[string]interface{}{
		"firstName":         contact.FirstName,
		"lastName":          contact.LastName,
		"year":              sheet.Vehicle.Year,
		"make":              sheet.Vehicle.Make,
		"model":             sheet.Vehicle.Model,
		"marketValue":       renderer.FormatCurrency(sheet.Equity.MarketValue),
		"equityAmount":      renderer.FormatCurrency(sheet.Equity.EquityAmount),
		"showEquity":        showEquity,
		"clientMessage":     clientMessage,
		"token":             tokenStr,
		"expiresAt":         time.UnixMilli(expiresAt).Format(dateLayout),
		"brandPrimaryColor": org.BrandPrimaryColor(),
		"dealershipName":    org.DisplayName(),
		"dealershipPhone":   org.Phone,
		"dealershipWebsite": org.Website,
	})
}
