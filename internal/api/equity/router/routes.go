// Package router đăng ký các route thuộc domain equity.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	equityhdl "github.com/Whointhefkisthatguy/trade-up/internal/api/equity/handler"
	apirouter "github.com/Whointhefkisthatguy/trade-up/internal/api/router"
)

// Register đăng ký tất cả route equity lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	equityHandler, err := equityhdl.NewEquityHandler()
	if err != nil {
		return fmt.Errorf("tạo EquityHandler: %w", err)
	}

	// Bản ghi phân tích là bất biến, chỉ mở đường đọc qua CRUD.
	r.RegisterCRUDRoutes(v1, "/equity-analyses", equityHandler, apirouter.ReadOnlyConfig, nil)

	apirouter.RegisterRouteWithMiddleware(v1, "/equity", "POST", "/analyze", nil, equityHandler.HandleAnalyze)
	apirouter.RegisterRouteWithMiddleware(v1, "/organizations", "POST", "/:id/batch-analyze", nil, equityHandler.HandleBatchAnalyze)
	apirouter.RegisterRouteWithMiddleware(v1, "/organizations", "GET", "/:id/equity-summary", nil, equityHandler.HandleEquitySummary)
	apirouter.RegisterRouteWithMiddleware(v1, "/organizations", "GET", "/:id/assets", nil, equityHandler.HandleAssetsWithAnalysis)

	return nil
}
