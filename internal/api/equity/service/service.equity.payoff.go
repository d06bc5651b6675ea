// Package equitysvc - Ước lượng số dư khoản vay còn lại.
package equitysvc

import (
	"github.com/Whointhefkisthatguy/trade-up/internal/utility"
)

// Chính sách ước lượng payoff khi không có số liệu vay thật:
// khoản vay 60 tháng, gốc vay = 90% giá retail lúc mua.
const (
	payoffLoanTermMonths  = 60
	payoffLoanToValueRate = 0.90
)

// EstimatePayoff ước lượng số dư còn lại của khoản vay theo tuổi xe:
// remaining = gốc vay × (1 − số tháng đã trả / 60), số tháng = tuổi xe × 12, chặn tại 60.
// Xe từ 5 năm tuổi trở lên coi như đã trả hết, payoff = 0.
func EstimatePayoff(retailValue float64, vehicleAgeYears int) float64 {
	original := retailValue * payoffLoanToValueRate

	elapsedMonths := vehicleAgeYears * 12
	if elapsedMonths > payoffLoanTermMonths {
		elapsedMonths = payoffLoanTermMonths
	}
	if elapsedMonths < 0 {
		elapsedMonths = 0
	}

	remaining := original * (1 - float64(elapsedMonths)/float64(payoffLoanTermMonths))
	return utility.RoundTo(remaining, 2)
}
