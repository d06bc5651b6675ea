package dealhdl

import (
	"errors"

	basehdl "github.com/Whointhefkisthatguy/trade-up/internal/api/base/handler"
	"github.com/Whointhefkisthatguy/trade-up/internal/api/middleware"
	"github.com/Whointhefkisthatguy/trade-up/internal/common"
	"github.com/Whointhefkisthatguy/trade-up/internal/logger"

	"github.com/gofiber/fiber/v3"
)

const offerExpiredPage = `<!DOCTYPE html>
<html lang="en">
<head><meta charset="utf-8"><title>Offer Expired</title></head>
<body style="font-family: Arial, sans-serif; text-align: center; margin-top: 80px; color: #555;">
<h1>This offer is no longer available</h1>
<p>The offer you are looking for has expired. Please contact your dealership for a new one.</p>
</body>
</html>`

const offerNotFoundPage = `<!DOCTYPE html>
<html lang="en">
<head><meta charset="utf-8"><title>Offer Not Found</title></head>
<body style="font-family: Arial, sans-serif; text-align: center; margin-top: 80px; color: #555;">
<h1>Offer not found</h1>
<p>The link you followed is not valid. Please check the link or contact your dealership.</p>
</body>
</html>`

// HandlePublicOffer xử lý GET /offer/:token, route public duy nhất của server.
// Trả thẳng HTML cho khách, không bọc envelope JSON.
func (h *DealSheetHandler) HandlePublicOffer(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		tokenStr := c.Params("token")
		c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)

		resolution, err := h.TokenService.ResolveByToken(c.Context(), tokenStr)
		if err != nil {
			if errors.Is(err, common.ErrNotFound) {
				logger.LogOfferAccess(tokenStr, "not_found", c, nil)
				c.Status(common.StatusNotFound).SendString(offerNotFoundPage)
				return nil
			}
			middleware.HandleErrorResponse(c, err)
			return nil
		}

		if resolution.Expired {
			logger.LogOfferAccess(tokenStr, "expired", c, nil)
			c.Status(common.StatusGone).SendString(offerExpiredPage)
			return nil
		}

		logger.LogOfferAccess(tokenStr, "accessed", c, nil)
		c.Status(common.StatusOK).SendString(resolution.Html)
		return nil
	})
}
