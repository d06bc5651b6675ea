// Package router đăng ký các route thuộc domain deal.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	dealhdl "github.com/Whointhefkisthatguy/trade-up/internal/api/deal/handler"
	apirouter "github.com/Whointhefkisthatguy/trade-up/internal/api/router"
)

// Register đăng ký tất cả route deal lên v1 và route offer public lên app gốc.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	dealHandler, err := dealhdl.NewDealSheetHandler()
	if err != nil {
		return fmt.Errorf("tạo DealSheetHandler: %w", err)
	}

	// CRUD chỉ đường đọc, vòng đời deal sheet đi qua các route nghiệp vụ bên dưới.
	r.RegisterCRUDRoutes(v1, "/deal-sheets", dealHandler, apirouter.ReadOnlyConfig, nil)

	apirouter.RegisterRouteWithMiddleware(v1, "/deal-sheets", "POST", "/", nil, dealHandler.HandleGenerate)
	apirouter.RegisterRouteWithMiddleware(v1, "/deal-sheets", "GET", "/:id", nil, dealHandler.HandleGet)
	apirouter.RegisterRouteWithMiddleware(v1, "/deal-sheets", "POST", "/:id/present", nil, dealHandler.HandlePresent)
	apirouter.RegisterRouteWithMiddleware(v1, "/deal-sheets", "POST", "/:id/client-offer", nil, dealHandler.HandleGenerateClientOffer)
	apirouter.RegisterRouteWithMiddleware(v1, "/offer-tokens", "POST", "/:id/revoke", nil, dealHandler.HandleRevokeToken)

	// Trang offer của khách, ngoài /api/v1, trả HTML trực tiếp.
	apirouter.RegisterRouteWithMiddleware(r.App(), "/offer", "GET", "/:token", nil, dealHandler.HandlePublicOffer)

	return nil
}
