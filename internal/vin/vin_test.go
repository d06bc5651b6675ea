// Package vin - Test giải mã VIN offline: năm sản xuất, hãng xe, validate định dạng.
package vin

import (
	"context"
	"testing"
)

func TestModelYear_TheoKyTuViTri10(t *testing.T) {
	cases := []struct {
		vin  string
		want int
	}{
		{"1HGCM8263A0043521", 2010}, // A
		{"1HGCM8263L0043521", 2020}, // L
		{"1HGCM8263R0043521", 2024}, // R
		{"1HGCM826350043521", 2035}, // 5
		{"1HGCM8263U0043521", DefaultYear}, // U không có trong bảng
		{"SHORT", DefaultYear},
	}
	for _, c := range cases {
		if got := ModelYear(c.vin); got != c.want {
			t.Errorf("ModelYear(%q) = %d, muốn %d", c.vin, got, c.want)
		}
	}
}

func TestOfflineDecoder_Decode(t *testing.T) {
	d := NewOfflineDecoder()
	specs, err := d.Decode(context.Background(), "1HGCM8263L0043521")
	if err != nil {
		t.Fatalf("Decode trả về lỗi: %v", err)
	}
	if specs.Year != 2020 {
		t.Errorf("Year = %d, muốn 2020", specs.Year)
	}
	if specs.Make != "Honda" {
		t.Errorf("Make = %q, muốn Honda (WMI 1HG)", specs.Make)
	}
	if specs.PlantCountry != "United States" {
		t.Errorf("PlantCountry = %q, muốn United States", specs.PlantCountry)
	}
}

func TestOfflineDecoder_Deterministic(t *testing.T) {
	d := NewOfflineDecoder()
	a, err := d.Decode(context.Background(), "5YJ3E1EA7KF000316")
	if err != nil {
		t.Fatalf("Decode trả về lỗi: %v", err)
	}
	b, err := d.Decode(context.Background(), "5YJ3E1EA7KF000316")
	if err != nil {
		t.Fatalf("Decode lần 2 trả về lỗi: %v", err)
	}
	if *a != *b {
		t.Errorf("cùng VIN phải cho cùng kết quả: %+v != %+v", a, b)
	}
	if a.Make != "Tesla" {
		t.Errorf("Make = %q, muốn Tesla (WMI 5YJ)", a.Make)
	}
}

func TestOfflineDecoder_VinSaiDinhDang(t *testing.T) {
	d := NewOfflineDecoder()
	for _, bad := range []string{"", "TOOSHORT", "1HGCM82633A00435Q", "1HGCM82633A00435!"} {
		if _, err := d.Decode(context.Background(), bad); err == nil {
			t.Errorf("Decode(%q) phải trả về lỗi", bad)
		}
	}
}

func TestIsValid(t *testing.T) {
	cases := []struct {
		vin  string
		want bool
	}{
		{"1HGCM82633A004352", true},
		{"1hgcm82633a004352", true}, // chữ thường vẫn hợp lệ
		{"1HGCM82633A00435", false}, // 16 ký tự
		{"1HGCM82633I004352", false}, // chứa I
		{"1HGCM82633O004352", false}, // chứa O
		{"1HGCM82633Q004352", false}, // chứa Q
	}
	for _, c := range cases {
		if got := IsValid(c.vin); got != c.want {
			t.Errorf("IsValid(%q) = %v, muốn %v", c.vin, got, c.want)
		}
	}
}
