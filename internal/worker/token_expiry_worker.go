package worker

import (
	"context"
	"time"

	dealsvc "github.com/Whointhefkisthatguy/trade-up/internal/api/deal/service"
	dmssvc "github.com/Whointhefkisthatguy/trade-up/internal/api/dms/service"
	pipelinesvc "github.com/Whointhefkisthatguy/trade-up/internal/api/pipeline/service"
	"github.com/Whointhefkisthatguy/trade-up/internal/logger"
)

// TokenExpiryWorker worker để tự động đánh dấu expired các offer token quá hạn
// Chạy định kỳ để thống kê theo status luôn phản ánh đúng hạn token
type TokenExpiryWorker struct {
	tokenService *dealsvc.OfferTokenService
	interval     time.Duration // Khoảng thời gian giữa các lần chạy
}

// NewTokenExpiryWorker tạo mới TokenExpiryWorker
// Tham số:
//   - interval: Khoảng thời gian giữa các lần chạy (mặc định: 1 giờ)
//
// Trả về:
//   - *TokenExpiryWorker: Instance mới của TokenExpiryWorker
//   - error: Lỗi nếu có trong quá trình khởi tạo
func NewTokenExpiryWorker(interval time.Duration) (*TokenExpiryWorker, error) {
	contactService, err := dmssvc.NewContactService()
	if err != nil {
		return nil, err
	}
	orgService, err := dmssvc.NewOrganizationService()
	if err != nil {
		return nil, err
	}
	pipelineService, err := pipelinesvc.NewPipelineService()
	if err != nil {
		return nil, err
	}
	tokenService, err := dealsvc.NewOfferTokenService(contactService, orgService, pipelineService)
	if err != nil {
		return nil, err
	}

	if interval < time.Minute {
		interval = time.Hour // Mặc định 1 giờ
	}

	return &TokenExpiryWorker{
		tokenService: tokenService,
		interval:     interval,
	}, nil
}

// Start bắt đầu background worker quét token quá hạn
// Worker chạy định kỳ theo interval cho tới khi context bị cancel
func (w *TokenExpiryWorker) Start(ctx context.Context) {
	log := logger.GetAppLogger()

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	log.WithFields(map[string]interface{}{
		"interval": w.interval.String(),
	}).Info("⏱️ [TOKEN_EXPIRY] Starting Token Expiry Worker...")

	for {
		select {
		case <-ctx.Done():
			log.Info("⏱️ [TOKEN_EXPIRY] Token Expiry Worker stopped")
			return
		case <-ticker.C:
			func() {
				defer func() {
					if r := recover(); r != nil {
						log.WithFields(map[string]interface{}{
							"panic": r,
						}).Error("⏱️ [TOKEN_EXPIRY] Panic khi quét token quá hạn, sẽ tiếp tục ở lần chạy tiếp theo")
					}
				}()

				expiredCount, err := w.tokenService.ExpireOverdue(ctx)
				if err != nil {
					log.WithError(err).Error("⏱️ [TOKEN_EXPIRY] Failed to expire overdue tokens")
					return
				}

				if expiredCount > 0 {
					log.WithFields(map[string]interface{}{
						"expiredCount": expiredCount,
					}).Info("⏱️ [TOKEN_EXPIRY] Expired overdue offer tokens")
				}
				// Nếu expiredCount = 0, không log (giảm log noise)
			}()
		}
	}
}
