// Package valsvc - Test aggregator: composite trung bình, chính sách tất-cả-nguồn-phải-trả-lời.
package valsvc

import (
	"context"
	"errors"
	"testing"

	valmodels "github.com/Whointhefkisthatguy/trade-up/internal/api/valuation/models"
	"github.com/Whointhefkisthatguy/trade-up/internal/common"
)

// stubProvider trả báo giá cố định hoặc lỗi, dùng cho test aggregator.
type stubProvider struct {
	source string
	quote  *valmodels.Quote
	err    error
}

func (p *stubProvider) Source() string { return p.source }

func (p *stubProvider) Quote(ctx context.Context, vinStr string, mileage int) (*valmodels.Quote, error) {
	if p.err != nil {
		return nil, p.err
	}
	return p.quote, nil
}

func TestAggregate_CompositeTrungBinh(t *testing.T) {
	agg := NewAggregator(
		&stubProvider{source: "a", quote: &valmodels.Quote{Wholesale: 10000, Retail: 11800, TradeIn: 10600}},
		&stubProvider{source: "b", quote: &valmodels.Quote{Wholesale: 10300, Retail: 12154, TradeIn: 10918}},
		&stubProvider{source: "c", quote: &valmodels.Quote{Wholesale: 9700, Retail: 11446, TradeIn: 10282}},
	)
	result, err := agg.Aggregate(context.Background(), "1HGCM8263L0043521", 45000)
	if err != nil {
		t.Fatalf("Aggregate trả về lỗi: %v", err)
	}
	if result.Composite.Wholesale != 10000 {
		t.Errorf("Composite.Wholesale = %v, muốn 10000 (trung bình 10000/10300/9700)", result.Composite.Wholesale)
	}
	if result.Composite.Retail != 11800 {
		t.Errorf("Composite.Retail = %v, muốn 11800", result.Composite.Retail)
	}
	if result.Composite.TradeIn != 10600 {
		t.Errorf("Composite.TradeIn = %v, muốn 10600", result.Composite.TradeIn)
	}
	if len(result.Sources) != 3 {
		t.Errorf("Sources có %d phần tử, muốn 3", len(result.Sources))
	}
}

func TestAggregate_LamTron2ChuSo(t *testing.T) {
	// 100 + 100 + 101 = 301; 301/3 = 100.333... → 100.33
	agg := NewAggregator(
		&stubProvider{source: "a", quote: &valmodels.Quote{Wholesale: 100, Retail: 100, TradeIn: 100}},
		&stubProvider{source: "b", quote: &valmodels.Quote{Wholesale: 100, Retail: 100, TradeIn: 100}},
		&stubProvider{source: "c", quote: &valmodels.Quote{Wholesale: 101, Retail: 101, TradeIn: 101}},
	)
	result, err := agg.Aggregate(context.Background(), "1HGCM8263L0043521", 0)
	if err != nil {
		t.Fatalf("Aggregate trả về lỗi: %v", err)
	}
	if result.Composite.Wholesale != 100.33 {
		t.Errorf("Composite.Wholesale = %v, muốn 100.33", result.Composite.Wholesale)
	}
}

func TestAggregate_MotNguonVanChay(t *testing.T) {
	agg := NewAggregator(
		&stubProvider{source: "only", quote: &valmodels.Quote{Wholesale: 5000, Retail: 5900, TradeIn: 5300}},
	)
	result, err := agg.Aggregate(context.Background(), "1HGCM8263L0043521", 0)
	if err != nil {
		t.Fatalf("Aggregate với 1 nguồn trả về lỗi: %v", err)
	}
	if result.Composite.Wholesale != 5000 {
		t.Errorf("Composite.Wholesale = %v, muốn 5000 (trung bình của chính nó)", result.Composite.Wholesale)
	}
}

func TestAggregate_MotNguonLoiLaHuyCa(t *testing.T) {
	agg := NewAggregator(
		&stubProvider{source: "ok", quote: &valmodels.Quote{Wholesale: 5000, Retail: 5900, TradeIn: 5300}},
		&stubProvider{source: "down", err: errors.New("timeout")},
	)
	_, err := agg.Aggregate(context.Background(), "1HGCM8263L0043521", 0)
	if err == nil {
		t.Fatal("một nguồn lỗi thì Aggregate phải trả về lỗi, không lấy trung bình một phần")
	}
	var customErr *common.Error
	if !errors.As(err, &customErr) || customErr.Code != common.ErrCodeProviderUnavailable {
		t.Errorf("lỗi phải mang code %s, nhận được: %v", common.ErrCodeProviderUnavailable.Code, err)
	}
}

func TestAggregate_KhongCoNguon(t *testing.T) {
	agg := NewAggregator()
	_, err := agg.Aggregate(context.Background(), "1HGCM8263L0043521", 0)
	if !errors.Is(err, common.ErrProviderUnavailable) {
		t.Errorf("không có nguồn nào phải trả về ErrProviderUnavailable, nhận được: %v", err)
	}
}

func TestAggregate_BoNguonMockMacDinh(t *testing.T) {
	providers := DefaultMockProviders()
	if len(providers) != 3 {
		t.Fatalf("DefaultMockProviders trả về %d nguồn, muốn 3", len(providers))
	}
	agg := NewAggregator(providers...)
	result, err := agg.Aggregate(context.Background(), "1HGCM8263L0043521", 45000)
	if err != nil {
		t.Fatalf("Aggregate trả về lỗi: %v", err)
	}
	wantSources := map[string]bool{"kbb_mock": true, "nada_mock": true, "blackbook_mock": true}
	for _, s := range result.Sources {
		if !wantSources[s.Source] {
			t.Errorf("nguồn lạ trong kết quả: %s", s.Source)
		}
	}
	if result.SourceLabel() != "composite:kbb_mock+nada_mock+blackbook_mock" {
		t.Errorf("SourceLabel = %q", result.SourceLabel())
	}
}
