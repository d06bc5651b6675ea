// Package valsvc - Tổng hợp báo giá đa nguồn.
package valsvc

import (
	"context"
	"fmt"

	valmodels "github.com/Whointhefkisthatguy/trade-up/internal/api/valuation/models"
	"github.com/Whointhefkisthatguy/trade-up/internal/common"
	"github.com/Whointhefkisthatguy/trade-up/internal/logger"
	"github.com/Whointhefkisthatguy/trade-up/internal/utility"
)

// Aggregator hỏi giá tất cả nguồn đã cấu hình và tính composite.
// Chính sách: TẤT CẢ nguồn phải trả lời. Một nguồn lỗi là cả phép định giá lỗi,
// không lấy trung bình một phần vì sẽ làm lệch composite.
type Aggregator struct {
	providers []PricingProvider
}

// NewAggregator tạo Aggregator với danh sách nguồn định giá.
func NewAggregator(providers ...PricingProvider) *Aggregator {
	return &Aggregator{providers: providers}
}

// Aggregate hỏi giá từng nguồn tuần tự rồi tính composite = trung bình cộng
// từng mức giá, làm tròn 2 chữ số. Hỗ trợ cả trường hợp chỉ có một nguồn.
func (a *Aggregator) Aggregate(ctx context.Context, vinStr string, mileage int) (*valmodels.MultiSourceValuation, error) {
	if len(a.providers) == 0 {
		return nil, common.ErrProviderUnavailable
	}

	sources := make([]valmodels.SourceQuote, 0, len(a.providers))
	var sumWholesale, sumRetail, sumTradeIn float64

	for _, p := range a.providers {
		quote, err := p.Quote(ctx, vinStr, mileage)
		if err != nil {
			logger.WithModule("valuation").WithError(err).
				Errorf("Nguồn định giá %s lỗi, hủy phép định giá", p.Source())
			return nil, common.NewError(common.ErrCodeProviderUnavailable,
				fmt.Sprintf("Nguồn định giá %s không trả lời", p.Source()),
				common.StatusBadGateway, err.Error())
		}
		sources = append(sources, valmodels.SourceQuote{
			Source:    p.Source(),
			Wholesale: quote.Wholesale,
			Retail:    quote.Retail,
			TradeIn:   quote.TradeIn,
		})
		sumWholesale += quote.Wholesale
		sumRetail += quote.Retail
		sumTradeIn += quote.TradeIn
	}

	n := float64(len(sources))
	return &valmodels.MultiSourceValuation{
		Composite: valmodels.Quote{
			Wholesale: utility.RoundTo(sumWholesale/n, 2),
			Retail:    utility.RoundTo(sumRetail/n, 2),
			TradeIn:   utility.RoundTo(sumTradeIn/n, 2),
		},
		Sources: sources,
	}, nil
}
