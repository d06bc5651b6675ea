// Package dealhdl chứa HTTP handler cho domain deal.
package dealhdl

import (
	"fmt"

	basehdl "github.com/Whointhefkisthatguy/trade-up/internal/api/base/handler"
	dealdto "github.com/Whointhefkisthatguy/trade-up/internal/api/deal/dto"
	dealmodels "github.com/Whointhefkisthatguy/trade-up/internal/api/deal/models"
	dealsvc "github.com/Whointhefkisthatguy/trade-up/internal/api/deal/service"
	dmssvc "github.com/Whointhefkisthatguy/trade-up/internal/api/dms/service"
	"github.com/Whointhefkisthatguy/trade-up/internal/api/middleware"
	pipelinesvc "github.com/Whointhefkisthatguy/trade-up/internal/api/pipeline/service"
	valsvc "github.com/Whointhefkisthatguy/trade-up/internal/api/valuation/service"
	"github.com/Whointhefkisthatguy/trade-up/internal/common"
	"github.com/Whointhefkisthatguy/trade-up/internal/logger"
	"github.com/Whointhefkisthatguy/trade-up/internal/utility"
	"github.com/Whointhefkisthatguy/trade-up/internal/vin"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DealSheetHandler xử lý các request về deal sheet và client offer.
type DealSheetHandler struct {
	basehdl.BaseHandler[dealmodels.DealSheet, dealdto.DealSheetGenerateInput, dealdto.PresentInput]
	SheetService *dealsvc.DealSheetService
	TokenService *dealsvc.OfferTokenService
}

// NewDealSheetHandler tạo DealSheetHandler mới cùng toàn bộ service phụ thuộc.
func NewDealSheetHandler() (*DealSheetHandler, error) {
	assetService, err := dmssvc.NewAssetService()
	if err != nil {
		return nil, fmt.Errorf("tạo AssetService: %w", err)
	}
	contactService, err := dmssvc.NewContactService()
	if err != nil {
		return nil, fmt.Errorf("tạo ContactService: %w", err)
	}
	orgService, err := dmssvc.NewOrganizationService()
	if err != nil {
		return nil, fmt.Errorf("tạo OrganizationService: %w", err)
	}
	pipelineService, err := pipelinesvc.NewPipelineService()
	if err != nil {
		return nil, fmt.Errorf("tạo PipelineService: %w", err)
	}
	aggregator := valsvc.NewAggregator(valsvc.DefaultMockProviders()...)

	sheetService, err := dealsvc.NewDealSheetService(
		assetService, contactService, orgService, pipelineService, aggregator, vin.NewOfflineDecoder())
	if err != nil {
		return nil, fmt.Errorf("tạo DealSheetService: %w", err)
	}
	tokenService, err := dealsvc.NewOfferTokenService(contactService, orgService, pipelineService)
	if err != nil {
		return nil, fmt.Errorf("tạo OfferTokenService: %w", err)
	}

	baseHandler := basehdl.NewBaseHandler[dealmodels.DealSheet, dealdto.DealSheetGenerateInput, dealdto.PresentInput](sheetService)
	return &DealSheetHandler{
		BaseHandler:  *baseHandler,
		SheetService: sheetService,
		TokenService: tokenService,
	}, nil
}

// HandleGenerate xử lý POST /deal-sheets.
// Sinh deal sheet mới từ một bản phân tích equity.
func (h *DealSheetHandler) HandleGenerate(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		input := new(dealdto.DealSheetGenerateInput)
		if err := h.ParseRequestBody(c, input); err != nil {
			middleware.HandleErrorResponse(c, err)
			return nil
		}
		if err := h.ValidateInput(input); err != nil {
			middleware.HandleErrorResponse(c, err)
			return nil
		}

		analysisID := utility.String2ObjectID(input.EquityAnalysisID)
		sheet, err := h.SheetService.Generate(c.Context(), analysisID)
		if err != nil {
			middleware.HandleErrorResponse(c, err)
			return nil
		}
		c.Status(common.StatusCreated).JSON(fiber.Map{
			"code": common.StatusCreated, "message": common.MsgSuccess, "data": sheet, "status": "success",
		})
		return nil
	})
}

// HandleGet xử lý GET /deal-sheets/:id.
// Lần đọc đầu của sheet mới sinh sẽ chuyển trạng thái sang viewed.
func (h *DealSheetHandler) HandleGet(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		sheetID, ok := h.sheetIDParam(c)
		if !ok {
			return nil
		}
		sheet, err := h.SheetService.Get(c.Context(), sheetID)
		if err != nil {
			middleware.HandleErrorResponse(c, err)
			return nil
		}
		c.Status(common.StatusOK).JSON(fiber.Map{
			"code": common.StatusOK, "message": common.MsgSuccess, "data": sheet, "status": "success",
		})
		return nil
	})
}

// HandlePresent xử lý POST /deal-sheets/:id/present.
func (h *DealSheetHandler) HandlePresent(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		sheetID, ok := h.sheetIDParam(c)
		if !ok {
			return nil
		}
		input := new(dealdto.PresentInput)
		if len(c.Body()) > 0 {
			if err := h.ParseRequestBody(c, input); err != nil {
				middleware.HandleErrorResponse(c, err)
				return nil
			}
		}

		sheet, err := h.SheetService.MarkPresented(c.Context(), sheetID, input.PresentedBy)
		if err != nil {
			middleware.HandleErrorResponse(c, err)
			return nil
		}
		logger.LogAction("deal_sheet_present", c, map[string]interface{}{
			"deal_sheet_id": sheet.ID.Hex(),
			"presented_by":  input.PresentedBy,
		})
		c.Status(common.StatusOK).JSON(fiber.Map{
			"code": common.StatusOK, "message": common.MsgSuccess, "data": sheet, "status": "success",
		})
		return nil
	})
}

// HandleGenerateClientOffer xử lý POST /deal-sheets/:id/client-offer.
// Chỉ sheet đã presented mới phát hành được.
func (h *DealSheetHandler) HandleGenerateClientOffer(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		sheetID, ok := h.sheetIDParam(c)
		if !ok {
			return nil
		}
		issue, err := h.SheetService.GenerateClientOffer(c.Context(), sheetID)
		if err != nil {
			middleware.HandleErrorResponse(c, err)
			return nil
		}
		logger.LogAction("client_offer_issue", c, map[string]interface{}{
			"deal_sheet_id": sheetID.Hex(),
			"token":         issue.Token,
		})
		c.Status(common.StatusCreated).JSON(fiber.Map{
			"code": common.StatusCreated, "message": common.MsgSuccess, "data": issue, "status": "success",
		})
		return nil
	})
}

// HandleRevokeToken xử lý POST /offer-tokens/:id/revoke.
func (h *DealSheetHandler) HandleRevokeToken(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		idStr := c.Params("id")
		if !primitive.IsValidObjectID(idStr) {
			c.Status(common.StatusBadRequest).JSON(fiber.Map{
				"code": common.ErrCodeValidationFormat.Code, "message": "tokenId không hợp lệ", "status": "error",
			})
			return nil
		}
		tokenID := utility.String2ObjectID(idStr)

		token, err := h.TokenService.Revoke(c.Context(), tokenID)
		if err != nil {
			middleware.HandleErrorResponse(c, err)
			return nil
		}
		logger.LogAction("offer_token_revoke", c, map[string]interface{}{
			"token_id": token.ID.Hex(),
			"token":    token.Token,
		})
		c.Status(common.StatusOK).JSON(fiber.Map{
			"code": common.StatusOK, "message": common.MsgSuccess, "data": token, "status": "success",
		})
		return nil
	})
}

func (h *DealSheetHandler) sheetIDParam(c fiber.Ctx) (primitive.ObjectID, bool) {
	idStr := c.Params("id")
	if !primitive.IsValidObjectID(idStr) {
		c.Status(common.StatusBadRequest).JSON(fiber.Map{
			"code": common.ErrCodeValidationFormat.Code, "message": "dealSheetId không hợp lệ", "status": "error",
		})
		return primitive.NilObjectID, false
	}
	return utility.String2ObjectID(idStr), true
}
