// Package valsvc - Nguồn định giá xe.
// PricingProvider là seam cắm nguồn thật (KBB, NADA, vAuto...). MockProvider
// trả giá deterministic tính từ VIN + mileage, dùng cho dev/test/demo.
package valsvc

import (
	"context"
	"time"

	valmodels "github.com/Whointhefkisthatguy/trade-up/internal/api/valuation/models"
	"github.com/Whointhefkisthatguy/trade-up/internal/utility"
	"github.com/Whointhefkisthatguy/trade-up/internal/vin"
)

// PricingProvider trả về báo giá ba mức cho một xe.
type PricingProvider interface {
	Source() string
	Quote(ctx context.Context, vinStr string, mileage int) (*valmodels.Quote, error)
}

// MockProvider tính giá offline từ VIN + mileage, không gọi API ngoài.
// Mỗi nguồn mock áp một hệ số riêng lên giá gốc để tạo chênh lệch giữa các nguồn.
type MockProvider struct {
	source string
	factor float64

	now func() time.Time
}

// NewMockProvider tạo MockProvider với tên nguồn và hệ số giá.
func NewMockProvider(source string, factor float64) *MockProvider {
	return &MockProvider{
		source: source,
		factor: factor,
		now:    time.Now,
	}
}

// DefaultMockProviders trả về bộ ba nguồn mock chuẩn:
// kbb_mock ×1.00, nada_mock ×1.03, blackbook_mock ×0.97.
func DefaultMockProviders() []PricingProvider {
	return []PricingProvider{
		NewMockProvider("kbb_mock", 1.00),
		NewMockProvider("nada_mock", 1.03),
		NewMockProvider("blackbook_mock", 0.97),
	}
}

// Source trả về tên nguồn.
func (p *MockProvider) Source() string {
	return p.source
}

// Quote tính báo giá: giá gốc wholesale nhân hệ số nguồn,
// retail = wholesale × 1.18, tradeIn = wholesale × 1.06.
func (p *MockProvider) Quote(ctx context.Context, vinStr string, mileage int) (*valmodels.Quote, error) {
	base := computeBaseValue(vinStr, mileage, p.now().Year())
	wholesale := utility.RoundTo(base*p.factor, 2)
	return &valmodels.Quote{
		Wholesale: wholesale,
		Retail:    utility.RoundTo(wholesale*1.18, 2),
		TradeIn:   utility.RoundTo(wholesale*1.06, 2),
	}, nil
}

// vinHash băm VIN thành số nguyên không âm (biến thể DJB2, tràn theo int32).
func vinHash(vinStr string) int64 {
	var h int32
	for i := 0; i < len(vinStr); i++ {
		h = h*31 + int32(vinStr[i])
	}
	v := int64(h)
	if v < 0 {
		v = -v
	}
	return v
}

// computeBaseValue tính giá wholesale gốc đã khấu hao từ VIN + mileage:
//  1. MSRP gốc deterministic từ hash VIN: $22k-$55k
//  2. Khấu hao: 15% năm đầu, 10% năm 2-5, 7% từ năm 6
//  3. Trừ mileage: $800 cho mỗi 15k miles
//
// Sàn $1,000 để không bao giờ ra giá âm.
func computeBaseValue(vinStr string, mileage int, currentYear int) float64 {
	baseMsrp := 22000 + float64(vinHash(vinStr)%33001)

	age := currentYear - vin.ModelYear(vinStr)
	if age < 0 {
		age = 0
	}

	value := baseMsrp
	for y := 1; y <= age; y++ {
		switch {
		case y == 1:
			value *= 0.85
		case y <= 5:
			value *= 0.90
		default:
			value *= 0.93
		}
	}

	value -= float64(mileage/15000) * 800

	value = utility.RoundTo(value, 2)
	if value < 1000 {
		value = 1000
	}
	return value
}
