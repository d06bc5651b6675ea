package equitysvc

import (
	"errors"
	"testing"

	equitymodels "github.com/Whointhefkisthatguy/trade-up/internal/api/equity/models"
	"github.com/Whointhefkisthatguy/trade-up/internal/common"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name        string
		marketValue float64
		payoff      float64
		band        equitymodels.Band
		wantAmount  float64
		wantPercent float64
		wantType    string
	}{
		{
			name:        "equity dương rõ ràng",
			marketValue: 25000, payoff: 18000, band: equitymodels.DefaultBand,
			wantAmount: 7000, wantPercent: 28.0, wantType: equitymodels.EquityTypePositive,
		},
		{
			name:        "chạm biên dưới vẫn là breakeven",
			marketValue: 20000, payoff: 20500, band: equitymodels.DefaultBand,
			wantAmount: -500, wantPercent: -2.5, wantType: equitymodels.EquityTypeBreakeven,
		},
		{
			name:        "chạm biên trên vẫn là breakeven",
			marketValue: 20000, payoff: 19500, band: equitymodels.DefaultBand,
			wantAmount: 500, wantPercent: 2.5, wantType: equitymodels.EquityTypeBreakeven,
		},
		{
			name:        "vượt biên trên là positive",
			marketValue: 20000, payoff: 19499.5, band: equitymodels.DefaultBand,
			wantAmount: 500.5, wantPercent: 2.5, wantType: equitymodels.EquityTypePositive,
		},
		{
			name:        "dưới biên dưới là negative",
			marketValue: 15000, payoff: 20000, band: equitymodels.DefaultBand,
			wantAmount: -5000, wantPercent: -33.33, wantType: equitymodels.EquityTypeNegative,
		},
		{
			name:        "band tùy chỉnh nới rộng vùng breakeven",
			marketValue: 25000, payoff: 18000, band: equitymodels.Band{Low: -10000, High: 10000},
			wantAmount: 7000, wantPercent: 28.0, wantType: equitymodels.EquityTypeBreakeven,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Classify(tt.marketValue, tt.payoff, tt.band)
			if err != nil {
				t.Fatalf("Classify trả về lỗi không mong đợi: %v", err)
			}
			if got.EquityAmount != tt.wantAmount {
				t.Errorf("EquityAmount = %v, muốn %v", got.EquityAmount, tt.wantAmount)
			}
			if got.EquityPercent != tt.wantPercent {
				t.Errorf("EquityPercent = %v, muốn %v", got.EquityPercent, tt.wantPercent)
			}
			if got.EquityType != tt.wantType {
				t.Errorf("EquityType = %q, muốn %q", got.EquityType, tt.wantType)
			}
		})
	}
}

func TestClassifyMarketValueKhongHopLe(t *testing.T) {
	for _, marketValue := range []float64{0, -1000} {
		_, err := Classify(marketValue, 5000, equitymodels.DefaultBand)
		if err == nil {
			t.Fatalf("Classify(%v) phải trả về lỗi", marketValue)
		}
		var appErr *common.Error
		if !errors.As(err, &appErr) || appErr.Code != common.ErrCodeValidationInput {
			t.Errorf("Classify(%v) phải trả về lỗi validation, nhận %v", marketValue, err)
		}
	}
}

func TestEstimatePayoff(t *testing.T) {
	tests := []struct {
		name     string
		retail   float64
		ageYears int
		want     float64
	}{
		{name: "xe mới chưa trả kỳ nào", retail: 30000, ageYears: 0, want: 27000},
		{name: "hai năm đã trả 24 trên 60 kỳ", retail: 30000, ageYears: 2, want: 16200},
		{name: "đúng năm năm là hết nợ", retail: 30000, ageYears: 5, want: 0},
		{name: "quá năm năm vẫn là không", retail: 30000, ageYears: 12, want: 0},
		{name: "tuổi âm coi như chưa trả", retail: 20000, ageYears: -1, want: 18000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EstimatePayoff(tt.retail, tt.ageYears)
			if got != tt.want {
				t.Errorf("EstimatePayoff(%v, %d) = %v, muốn %v", tt.retail, tt.ageYears, got, tt.want)
			}
		})
	}
}
