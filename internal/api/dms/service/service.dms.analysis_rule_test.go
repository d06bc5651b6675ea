// Package dmssvc - Test merge rule điều kiện phân tích: override từng field, field nil giữ mặc định.
package dmssvc

import (
	"testing"

	dmsmodels "github.com/Whointhefkisthatguy/trade-up/internal/api/dms/models"
)

func intPtr(v int) *int { return &v }

func TestMergeRule_NilGiuNguyenBase(t *testing.T) {
	base := DefaultResolvedRule()
	got := MergeRule(base, nil)
	if got != base {
		t.Errorf("MergeRule(base, nil) = %+v, muốn %+v", got, base)
	}
}

func TestMergeRule_OverrideTungField(t *testing.T) {
	base := DefaultResolvedRule()
	override := &dmsmodels.AnalysisRule{
		MaxMileage: intPtr(200000),
	}
	got := MergeRule(base, override)
	if got.MaxMileage != 200000 {
		t.Errorf("MaxMileage = %d, muốn 200000 (override)", got.MaxMileage)
	}
	if got.MinVehicleAgeYears != DefaultMinVehicleAgeYears {
		t.Errorf("MinVehicleAgeYears = %d, muốn giữ mặc định %d", got.MinVehicleAgeYears, DefaultMinVehicleAgeYears)
	}
	if got.MinMileage != DefaultMinMileage {
		t.Errorf("MinMileage = %d, muốn giữ mặc định %d", got.MinMileage, DefaultMinMileage)
	}
}

func TestMergeRule_OverrideDayDu(t *testing.T) {
	base := DefaultResolvedRule()
	override := &dmsmodels.AnalysisRule{
		MinVehicleAgeYears: intPtr(2),
		MaxVehicleAgeYears: intPtr(8),
		MinMileage:         intPtr(10000),
		MaxMileage:         intPtr(120000),
	}
	got := MergeRule(base, override)
	want := dmsmodels.ResolvedAnalysisRule{
		MinVehicleAgeYears: 2,
		MaxVehicleAgeYears: 8,
		MinMileage:         10000,
		MaxMileage:         120000,
	}
	if got != want {
		t.Errorf("MergeRule = %+v, muốn %+v", got, want)
	}
}

func TestMergeRule_HaiTang(t *testing.T) {
	// Tầng 1: rule mặc định toàn hệ thống override MaxVehicleAgeYears.
	// Tầng 2: rule org override MinMileage. Kết quả phải giữ cả hai.
	resolved := MergeRule(DefaultResolvedRule(), &dmsmodels.AnalysisRule{
		MaxVehicleAgeYears: intPtr(10),
	})
	resolved = MergeRule(resolved, &dmsmodels.AnalysisRule{
		MinMileage: intPtr(8000),
	})
	if resolved.MaxVehicleAgeYears != 10 {
		t.Errorf("MaxVehicleAgeYears = %d, muốn 10 (từ rule hệ thống)", resolved.MaxVehicleAgeYears)
	}
	if resolved.MinMileage != 8000 {
		t.Errorf("MinMileage = %d, muốn 8000 (từ rule org)", resolved.MinMileage)
	}
	if resolved.MinVehicleAgeYears != DefaultMinVehicleAgeYears {
		t.Errorf("MinVehicleAgeYears = %d, muốn giữ mặc định", resolved.MinVehicleAgeYears)
	}
}
