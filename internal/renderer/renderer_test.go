// Package renderer - Test render deterministic và escape dữ liệu.
package renderer

import (
	"strings"
	"testing"
)

func clientOfferData() map[string]interface{} {
	return map[string]interface{}{
		"firstName":          "Sarah",
		"lastName":           "Chen",
		"year":               2021,
		"make":               "Honda",
		"model":              "CR-V",
		"marketValue":        "$25,000.00",
		"equityAmount":       "$7,000.00",
		"showEquity":         true,
		"clientMessage":      "Great news! Your vehicle has built up $7,000.00 in equity.",
		"token":              "7f9c2ba4-e88f-4a1e-9b3d-000000000001",
		"expiresAt":          "October 1, 2026",
		"brandPrimaryColor":  "#1a3c6e",
		"dealershipName":     "Hilltop Motors",
		"dealershipPhone":    "(555) 010-2030",
		"dealershipWebsite":  "hilltopmotors.example",
	}
}

func TestRender_CungDataChoCungByte(t *testing.T) {
	data := clientOfferData()
	a, err := Render(TemplateClientOffer, data)
	if err != nil {
		t.Fatalf("Render lần 1 trả về lỗi: %v", err)
	}
	b, err := Render(TemplateClientOffer, clientOfferData())
	if err != nil {
		t.Fatalf("Render lần 2 trả về lỗi: %v", err)
	}
	if a != b {
		t.Error("cùng snapshot data phải render ra HTML giống hệt nhau từng byte")
	}
	if !strings.Contains(a, "$7,000.00") {
		t.Error("HTML phải chứa số tiền equity từ snapshot")
	}
	if !strings.Contains(a, "Sarah") {
		t.Error("HTML phải chứa tên khách")
	}
}

func TestRender_EscapeDuLieuKhach(t *testing.T) {
	data := clientOfferData()
	data["firstName"] = `<script>alert("x")</script>`
	html, err := Render(TemplateClientOffer, data)
	if err != nil {
		t.Fatalf("Render trả về lỗi: %v", err)
	}
	if strings.Contains(html, "<script>alert") {
		t.Error("dữ liệu khách nhập phải được escape, không được chèn thẳng vào HTML")
	}
}

func TestRender_AnEquityKhiKhongPositive(t *testing.T) {
	data := clientOfferData()
	data["showEquity"] = false
	html, err := Render(TemplateClientOffer, data)
	if err != nil {
		t.Fatalf("Render trả về lỗi: %v", err)
	}
	if strings.Contains(html, "Estimated equity") {
		t.Error("showEquity=false thì không được hiển thị banner equity")
	}
}

func TestRender_TemplateKhongTonTai(t *testing.T) {
	if _, err := Render("khong-ton-tai", nil); err == nil {
		t.Error("template không tồn tại phải trả về lỗi")
	}
}

func TestFormatCurrency(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{7000, "$7,000.00"},
		{-500, "-$500.00"},
		{25000.5, "$25,000.50"},
		{1234567.89, "$1,234,567.89"},
		{0, "$0.00"},
		{999.99, "$999.99"},
	}
	for _, c := range cases {
		if got := FormatCurrency(c.in); got != c.want {
			t.Errorf("FormatCurrency(%v) = %q, muốn %q", c.in, got, c.want)
		}
	}
}
