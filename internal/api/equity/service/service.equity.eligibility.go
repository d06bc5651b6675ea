// Package equitysvc - Điều kiện asset được đưa vào batch phân tích.
package equitysvc

import (
	dmsmodels "github.com/Whointhefkisthatguy/trade-up/internal/api/dms/models"
)

// IsEligible kiểm tra asset có đủ điều kiện phân tích equity không:
// phải có VIN và mileage, tuổi xe và mileage nằm trong ngưỡng của rule.
// Asset không đạt bị đếm là "skipped", không phải lỗi.
func IsEligible(asset *dmsmodels.Asset, rule dmsmodels.ResolvedAnalysisRule, currentYear int) bool {
	if asset.Vin == "" || asset.Mileage <= 0 {
		return false
	}
	age := currentYear - asset.Year
	if age < rule.MinVehicleAgeYears || age > rule.MaxVehicleAgeYears {
		return false
	}
	if asset.Mileage < rule.MinMileage || asset.Mileage > rule.MaxMileage {
		return false
	}
	return true
}
