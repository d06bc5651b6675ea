// Package valsvc - Test nguồn mock: deterministic, khấu hao, sàn giá.
package valsvc

import (
	"context"
	"testing"
	"time"

	"github.com/Whointhefkisthatguy/trade-up/internal/utility"
)

func fixedClock(year int) func() time.Time {
	return func() time.Time {
		return time.Date(year, time.June, 15, 12, 0, 0, 0, time.UTC)
	}
}

func TestMockProvider_Deterministic(t *testing.T) {
	p := NewMockProvider("kbb_mock", 1.00)
	p.now = fixedClock(2026)

	a, err := p.Quote(context.Background(), "1HGCM8263L0043521", 45000)
	if err != nil {
		t.Fatalf("Quote trả về lỗi: %v", err)
	}
	b, err := p.Quote(context.Background(), "1HGCM8263L0043521", 45000)
	if err != nil {
		t.Fatalf("Quote lần 2 trả về lỗi: %v", err)
	}
	if *a != *b {
		t.Errorf("cùng VIN + mileage phải cho cùng báo giá: %+v != %+v", a, b)
	}
}

func TestMockProvider_TyLeRetailTradeIn(t *testing.T) {
	p := NewMockProvider("kbb_mock", 1.00)
	p.now = fixedClock(2026)

	q, err := p.Quote(context.Background(), "1HGCM8263L0043521", 45000)
	if err != nil {
		t.Fatalf("Quote trả về lỗi: %v", err)
	}
	wantRetail := utility.RoundTo(q.Wholesale*1.18, 2)
	if q.Retail != wantRetail {
		t.Errorf("Retail = %v, muốn wholesale×1.18 = %v", q.Retail, wantRetail)
	}
	wantTradeIn := utility.RoundTo(q.Wholesale*1.06, 2)
	if q.TradeIn != wantTradeIn {
		t.Errorf("TradeIn = %v, muốn wholesale×1.06 = %v", q.TradeIn, wantTradeIn)
	}
}

func TestMockProvider_HeSoNguon(t *testing.T) {
	// nada_mock ×1.03 phải cho giá cao hơn kbb_mock ×1.00 trên cùng một xe
	kbb := NewMockProvider("kbb_mock", 1.00)
	kbb.now = fixedClock(2026)
	nada := NewMockProvider("nada_mock", 1.03)
	nada.now = fixedClock(2026)

	qKbb, err := kbb.Quote(context.Background(), "1HGCM8263L0043521", 45000)
	if err != nil {
		t.Fatalf("Quote kbb trả về lỗi: %v", err)
	}
	qNada, err := nada.Quote(context.Background(), "1HGCM8263L0043521", 45000)
	if err != nil {
		t.Fatalf("Quote nada trả về lỗi: %v", err)
	}
	if qNada.Wholesale <= qKbb.Wholesale {
		t.Errorf("nada_mock (×1.03) = %v phải cao hơn kbb_mock (×1.00) = %v", qNada.Wholesale, qKbb.Wholesale)
	}
}

func TestComputeBaseValue_KhauHaoTheoTuoi(t *testing.T) {
	// Xe đời 2020 (ký tự L) — xe càng cũ giá càng thấp trên cùng VIN gốc
	newer := computeBaseValue("1HGCM8263L0043521", 0, 2021) // 1 năm tuổi
	older := computeBaseValue("1HGCM8263L0043521", 0, 2026) // 6 năm tuổi
	if older >= newer {
		t.Errorf("xe 6 năm tuổi (%v) phải rẻ hơn xe 1 năm tuổi (%v)", older, newer)
	}
}

func TestComputeBaseValue_TruMileage(t *testing.T) {
	low := computeBaseValue("1HGCM8263L0043521", 10000, 2026)
	high := computeBaseValue("1HGCM8263L0043521", 100000, 2026)
	if high >= low {
		t.Errorf("mileage cao (%v) phải rẻ hơn mileage thấp (%v)", high, low)
	}
	// Cùng bậc 15k miles thì trừ như nhau
	a := computeBaseValue("1HGCM8263L0043521", 15000, 2026)
	b := computeBaseValue("1HGCM8263L0043521", 29999, 2026)
	if a != b {
		t.Errorf("mileage 15000 và 29999 cùng bậc trừ, giá phải bằng nhau: %v != %v", a, b)
	}
}

func TestComputeBaseValue_SanGia(t *testing.T) {
	// Mileage cực cao không bao giờ kéo giá xuống dưới sàn $1,000
	v := computeBaseValue("1HGCM8263A0043521", 2000000, 2026)
	if v < 1000 {
		t.Errorf("giá = %v, không được thấp hơn sàn 1000", v)
	}
}

func TestComputeBaseValue_MsrpTrongKhoang(t *testing.T) {
	// MSRP gốc từ hash nằm trong [22000, 55000]; xe 0 tuổi 0 miles giữ nguyên MSRP
	for _, vinStr := range []string{"1HGCM8263S0043521", "5YJ3E1EA7SF000316", "KNDJ23AU4S7000001"} {
		v := computeBaseValue(vinStr, 0, 2025) // 2025 = đời S, 0 tuổi
		if v < 22000 || v > 55000 {
			t.Errorf("computeBaseValue(%q) = %v, phải nằm trong [22000, 55000]", vinStr, v)
		}
	}
}
