// Package equityhdl chứa HTTP handler cho domain equity.
package equityhdl

import (
	"fmt"

	basehdl "github.com/Whointhefkisthatguy/trade-up/internal/api/base/handler"
	dmssvc "github.com/Whointhefkisthatguy/trade-up/internal/api/dms/service"
	equitydto "github.com/Whointhefkisthatguy/trade-up/internal/api/equity/dto"
	equitymodels "github.com/Whointhefkisthatguy/trade-up/internal/api/equity/models"
	equitysvc "github.com/Whointhefkisthatguy/trade-up/internal/api/equity/service"
	"github.com/Whointhefkisthatguy/trade-up/internal/api/middleware"
	pipelinesvc "github.com/Whointhefkisthatguy/trade-up/internal/api/pipeline/service"
	valsvc "github.com/Whointhefkisthatguy/trade-up/internal/api/valuation/service"
	"github.com/Whointhefkisthatguy/trade-up/internal/common"
	"github.com/Whointhefkisthatguy/trade-up/internal/utility"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// EquityHandler xử lý các request phân tích equity. CRUD trên bản ghi phân
// tích chỉ mở đường đọc, bản ghi là bất biến sau khi insert.
type EquityHandler struct {
	basehdl.BaseHandler[equitymodels.EquityAnalysis, equitydto.EquityAnalyzeInput, equitydto.EquityAnalyzeInput]
	EquityService *equitysvc.EquityAnalysisService
}

// NewEquityHandler tạo EquityHandler mới cùng toàn bộ service phụ thuộc.
func NewEquityHandler() (*EquityHandler, error) {
	assetService, err := dmssvc.NewAssetService()
	if err != nil {
		return nil, fmt.Errorf("tạo AssetService: %w", err)
	}
	ruleService, err := dmssvc.NewAnalysisRuleService()
	if err != nil {
		return nil, fmt.Errorf("tạo AnalysisRuleService: %w", err)
	}
	pipelineService, err := pipelinesvc.NewPipelineService()
	if err != nil {
		return nil, fmt.Errorf("tạo PipelineService: %w", err)
	}
	aggregator := valsvc.NewAggregator(valsvc.DefaultMockProviders()...)

	equityService, err := equitysvc.NewEquityAnalysisService(assetService, ruleService, pipelineService, aggregator)
	if err != nil {
		return nil, fmt.Errorf("tạo EquityAnalysisService: %w", err)
	}

	baseHandler := basehdl.NewBaseHandler[equitymodels.EquityAnalysis, equitydto.EquityAnalyzeInput, equitydto.EquityAnalyzeInput](equityService)
	return &EquityHandler{
		BaseHandler:   *baseHandler,
		EquityService: equityService,
	}, nil
}

// HandleAnalyze xử lý POST /equity/analyze.
// Phân loại equity từ marketValue và payoffAmount do caller cung cấp.
func (h *EquityHandler) HandleAnalyze(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		input := new(equitydto.EquityAnalyzeInput)
		if err := h.ParseRequestBody(c, input); err != nil {
			middleware.HandleErrorResponse(c, err)
			return nil
		}
		if err := h.ValidateInput(input); err != nil {
			middleware.HandleErrorResponse(c, err)
			return nil
		}

		assetID := utility.String2ObjectID(input.AssetID)
		contactID := utility.String2ObjectID(input.ContactID)
		source := input.ValuationSource
		if source == "" {
			source = "manual"
		}

		analysis, err := h.EquityService.AnalyzeEquity(c.Context(), assetID, contactID,
			input.MarketValue, input.PayoffAmount, source)
		if err != nil {
			middleware.HandleErrorResponse(c, err)
			return nil
		}
		c.Status(common.StatusCreated).JSON(fiber.Map{
			"code": common.StatusCreated, "message": common.MsgSuccess, "data": analysis, "status": "success",
		})
		return nil
	})
}

// HandleBatchAnalyze xử lý POST /organizations/:id/batch-analyze.
func (h *EquityHandler) HandleBatchAnalyze(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		orgID, ok := h.orgIDParam(c)
		if !ok {
			return nil
		}
		result, err := h.EquityService.BatchAnalyze(c.Context(), orgID)
		if err != nil {
			middleware.HandleErrorResponse(c, err)
			return nil
		}
		c.Status(common.StatusOK).JSON(fiber.Map{
			"code": common.StatusOK, "message": common.MsgSuccess, "data": result, "status": "success",
		})
		return nil
	})
}

// HandleEquitySummary xử lý GET /organizations/:id/equity-summary.
func (h *EquityHandler) HandleEquitySummary(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		orgID, ok := h.orgIDParam(c)
		if !ok {
			return nil
		}
		summary, err := h.EquityService.Summarize(c.Context(), orgID)
		if err != nil {
			middleware.HandleErrorResponse(c, err)
			return nil
		}
		c.Status(common.StatusOK).JSON(fiber.Map{
			"code": common.StatusOK, "message": common.MsgSuccess, "data": summary, "status": "success",
		})
		return nil
	})
}

// HandleAssetsWithAnalysis xử lý GET /organizations/:id/assets.
// Danh sách asset của org kèm contact và bản phân tích gần nhất.
func (h *EquityHandler) HandleAssetsWithAnalysis(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		orgID, ok := h.orgIDParam(c)
		if !ok {
			return nil
		}
		rows, err := h.EquityService.AssetsWithLatestAnalysis(c.Context(), orgID)
		if err != nil {
			middleware.HandleErrorResponse(c, err)
			return nil
		}
		c.Status(common.StatusOK).JSON(fiber.Map{
			"code": common.StatusOK, "message": common.MsgSuccess, "data": rows, "status": "success",
		})
		return nil
	})
}

func (h *EquityHandler) orgIDParam(c fiber.Ctx) (primitive.ObjectID, bool) {
	idStr := c.Params("id")
	if !primitive.IsValidObjectID(idStr) {
		c.Status(common.StatusBadRequest).JSON(fiber.Map{
			"code": common.ErrCodeValidationFormat.Code, "message": "organizationId không hợp lệ", "status": "error",
		})
		return primitive.NilObjectID, false
	}
	return utility.String2ObjectID(idStr), true
}
