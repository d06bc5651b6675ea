// Package equitysvc - Phân loại equity.
// Classify là pure function, không side effect: mọi tính toán equity trong hệ
// thống đều đi qua đây để đảm bảo một công thức duy nhất.
package equitysvc

import (
	equitymodels "github.com/Whointhefkisthatguy/trade-up/internal/api/equity/models"
	"github.com/Whointhefkisthatguy/trade-up/internal/common"
	"github.com/Whointhefkisthatguy/trade-up/internal/utility"
)

// Classification là kết quả phân loại equity.
type Classification struct {
	EquityAmount  float64 `json:"equityAmount"`
	EquityPercent float64 `json:"equityPercent"`
	EquityType    string  `json:"equityType"`
}

// Classify tính equity = marketValue − payoff và phân loại theo dải breakeven:
// positive nếu equity > band.High, negative nếu equity < band.Low, còn lại breakeven.
// marketValue ≤ 0 trả về lỗi thay vì chia cho 0.
func Classify(marketValue, payoff float64, band equitymodels.Band) (Classification, error) {
	if marketValue <= 0 {
		return Classification{}, common.NewError(common.ErrCodeValidationInput,
			"marketValue phải lớn hơn 0", common.StatusBadRequest, nil)
	}

	amount := marketValue - payoff
	percent := utility.RoundTo(amount/marketValue*100, 2)

	var equityType string
	switch {
	case amount > band.High:
		equityType = equitymodels.EquityTypePositive
	case amount < band.Low:
		equityType = equitymodels.EquityTypeNegative
	default:
		equityType = equitymodels.EquityTypeBreakeven
	}

	return Classification{
		EquityAmount:  amount,
		EquityPercent: percent,
		EquityType:    equityType,
	}, nil
}
