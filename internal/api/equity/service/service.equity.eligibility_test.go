package equitysvc

import (
	"testing"

	dmsmodels "github.com/Whointhefkisthatguy/trade-up/internal/api/dms/models"
	dmssvc "github.com/Whointhefkisthatguy/trade-up/internal/api/dms/service"
)

func TestIsEligible(t *testing.T) {
	rule := dmssvc.DefaultResolvedRule()
	currentYear := 2026

	tests := []struct {
		name  string
		asset dmsmodels.Asset
		want  bool
	}{
		{
			name:  "asset hợp lệ nằm giữa mọi ngưỡng",
			asset: dmsmodels.Asset{Vin: "1HGCM8263L0043521", Year: 2021, Mileage: 60000},
			want:  true,
		},
		{
			name:  "thiếu VIN thì loại",
			asset: dmsmodels.Asset{Vin: "", Year: 2021, Mileage: 60000},
			want:  false,
		},
		{
			name:  "mileage bằng không thì loại",
			asset: dmsmodels.Asset{Vin: "1HGCM8263L0043521", Year: 2021, Mileage: 0},
			want:  false,
		},
		{
			name:  "xe quá mới dưới tuổi tối thiểu",
			asset: dmsmodels.Asset{Vin: "1HGCM8263L0043521", Year: 2026, Mileage: 60000},
			want:  false,
		},
		{
			name:  "đúng tuổi tối thiểu thì nhận",
			asset: dmsmodels.Asset{Vin: "1HGCM8263L0043521", Year: 2025, Mileage: 60000},
			want:  true,
		},
		{
			name:  "đúng tuổi tối đa thì nhận",
			asset: dmsmodels.Asset{Vin: "1HGCM8263L0043521", Year: 2014, Mileage: 60000},
			want:  true,
		},
		{
			name:  "quá tuổi tối đa thì loại",
			asset: dmsmodels.Asset{Vin: "1HGCM8263L0043521", Year: 2013, Mileage: 60000},
			want:  false,
		},
		{
			name:  "mileage dưới ngưỡng tối thiểu thì loại",
			asset: dmsmodels.Asset{Vin: "1HGCM8263L0043521", Year: 2021, Mileage: 4999},
			want:  false,
		},
		{
			name:  "mileage đúng ngưỡng tối thiểu thì nhận",
			asset: dmsmodels.Asset{Vin: "1HGCM8263L0043521", Year: 2021, Mileage: 5000},
			want:  true,
		},
		{
			name:  "mileage đúng ngưỡng tối đa thì nhận",
			asset: dmsmodels.Asset{Vin: "1HGCM8263L0043521", Year: 2021, Mileage: 150000},
			want:  true,
		},
		{
			name:  "mileage vượt ngưỡng tối đa thì loại",
			asset: dmsmodels.Asset{Vin: "1HGCM8263L0043521", Year: 2021, Mileage: 150001},
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := IsEligible(&tt.asset, rule, currentYear)
			if got != tt.want {
				t.Errorf("IsEligible = %v, muốn %v", got, tt.want)
			}
		})
	}
}
