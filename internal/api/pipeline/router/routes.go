// Package router đăng ký các route thuộc domain pipeline.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	pipelinehdl "github.com/Whointhefkisthatguy/trade-up/internal/api/pipeline/handler"
	apirouter "github.com/Whointhefkisthatguy/trade-up/internal/api/router"
)

// Register đăng ký tất cả route pipeline lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	pipelineHandler, err := pipelinehdl.NewPipelineHandler()
	if err != nil {
		return fmt.Errorf("tạo PipelineHandler: %w", err)
	}

	// GET /organizations/:id/pipeline — stage counts của pipeline equity
	apirouter.RegisterRouteWithMiddleware(v1, "/organizations", "GET", "/:id/pipeline", nil, pipelineHandler.HandleStageCounts)

	return nil
}
