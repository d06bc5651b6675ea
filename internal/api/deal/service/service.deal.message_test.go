package dealsvc

import (
	"strings"
	"testing"

	equitymodels "github.com/Whointhefkisthatguy/trade-up/internal/api/equity/models"
)

func TestBuildRecommendation(t *testing.T) {
	tests := []struct {
		name         string
		equityType   string
		equityAmount float64
		wantContains []string
	}{
		{
			name:       "equity dương nêu đúng con số và tên khách",
			equityType: equitymodels.EquityTypePositive, equityAmount: 7000,
			wantContains: []string{"John Doe", "$7,000.00", "positive equity", "2021 Honda Accord", "strong trade-up candidate"},
		},
		{
			name:       "breakeven không nêu con số",
			equityType: equitymodels.EquityTypeBreakeven, equityAmount: -300,
			wantContains: []string{"John Doe", "near breakeven", "2021 Honda Accord", "small incentive"},
		},
		{
			name:       "equity âm nêu con số dương tuyệt đối",
			equityType: equitymodels.EquityTypeNegative, equityAmount: -5000,
			wantContains: []string{"John Doe", "$5,000.00", "negative equity", "Proceed with caution"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BuildRecommendation(tt.equityType, tt.equityAmount, "John Doe", "2021 Honda Accord")
			for _, want := range tt.wantContains {
				if !strings.Contains(got, want) {
					t.Errorf("recommendation thiếu %q:\n%s", want, got)
				}
			}
			if !strings.Contains(got, "Talking points:") {
				t.Errorf("recommendation phải có mục Talking points")
			}
		})
	}
}

func TestBuildRecommendationBreakevenKhongLoSo(t *testing.T) {
	got := BuildRecommendation(equitymodels.EquityTypeBreakeven, -300, "John Doe", "2021 Honda Accord")
	if strings.Contains(got, "$300.00") {
		t.Errorf("recommendation breakeven không được nêu con số equity:\n%s", got)
	}
}

func TestBuildClientMessage(t *testing.T) {
	t.Run("equity dương được nêu con số cho khách", func(t *testing.T) {
		got := BuildClientMessage(equitymodels.EquityTypePositive, 7000)
		if !strings.Contains(got, "$7,000.00") {
			t.Errorf("client message positive phải nêu con số equity:\n%s", got)
		}
		if !strings.Contains(got, "Great news!") {
			t.Errorf("client message positive sai mở đầu:\n%s", got)
		}
	})

	t.Run("equity âm tuyệt đối không lộ con số", func(t *testing.T) {
		got := BuildClientMessage(equitymodels.EquityTypeNegative, -5000)
		if strings.Contains(got, "5,000") || strings.Contains(got, "5000") {
			t.Errorf("client message negative không được lộ con số equity:\n%s", got)
		}
		if strings.Contains(got, "negative") {
			t.Errorf("client message negative không được nhắc tới từ negative:\n%s", got)
		}
	})

	t.Run("breakeven không lộ con số", func(t *testing.T) {
		got := BuildClientMessage(equitymodels.EquityTypeBreakeven, -200)
		if strings.Contains(got, "$200.00") {
			t.Errorf("client message breakeven không được lộ con số equity:\n%s", got)
		}
		if !strings.Contains(got, "closely matches") {
			t.Errorf("client message breakeven sai nội dung:\n%s", got)
		}
	})
}

func TestSourceDisplayName(t *testing.T) {
	tests := []struct {
		source string
		want   string
	}{
		{"kbb_mock", "KBB"},
		{"nada_mock", "NADA"},
		{"blackbook_mock", "Blackbook"},
		{"carfax", "carfax"},
	}
	for _, tt := range tests {
		if got := SourceDisplayName(tt.source); got != tt.want {
			t.Errorf("SourceDisplayName(%q) = %q, muốn %q", tt.source, got, tt.want)
		}
	}
}
