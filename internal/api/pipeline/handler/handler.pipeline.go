// Package pipelinehdl chứa HTTP handler cho domain pipeline.
package pipelinehdl

import (
	"fmt"

	basehdl "github.com/Whointhefkisthatguy/trade-up/internal/api/base/handler"
	"github.com/Whointhefkisthatguy/trade-up/internal/api/middleware"
	pipelinesvc "github.com/Whointhefkisthatguy/trade-up/internal/api/pipeline/service"
	"github.com/Whointhefkisthatguy/trade-up/internal/common"
	"github.com/Whointhefkisthatguy/trade-up/internal/utility"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PipelineHandler xử lý các request về pipeline equity.
type PipelineHandler struct {
	PipelineService *pipelinesvc.PipelineService
}

// NewPipelineHandler tạo PipelineHandler mới.
func NewPipelineHandler() (*PipelineHandler, error) {
	pipelineSvc, err := pipelinesvc.NewPipelineService()
	if err != nil {
		return nil, fmt.Errorf("tạo PipelineService: %w", err)
	}
	return &PipelineHandler{PipelineService: pipelineSvc}, nil
}

// HandleStageCounts xử lý GET /organizations/:id/pipeline.
// Trả về 10 stage của pipeline equity kèm số asset của org đang ở từng stage.
func (h *PipelineHandler) HandleStageCounts(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		idStr := c.Params("id")
		if !primitive.IsValidObjectID(idStr) {
			c.Status(common.StatusBadRequest).JSON(fiber.Map{
				"code": common.ErrCodeValidationFormat.Code, "message": "organizationId không hợp lệ", "status": "error",
			})
			return nil
		}
		orgID := utility.String2ObjectID(idStr)

		counts, err := h.PipelineService.StageCounts(c.Context(), orgID)
		if err != nil {
			middleware.HandleErrorResponse(c, err)
			return nil
		}
		c.Status(common.StatusOK).JSON(fiber.Map{
			"code": common.StatusOK, "message": common.MsgSuccess, "data": counts, "status": "success",
		})
		return nil
	})
}
