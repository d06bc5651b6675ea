// Package models - Kết quả định giá thuộc domain valuation.
// Các struct này cũng được nhúng nguyên vẹn vào snapshot của deal sheet.
package models

// Quote là báo giá ba mức của một nguồn: giá sỉ, giá bán lẻ, giá thu trade-in.
type Quote struct {
	Wholesale float64 `json:"wholesale" bson:"wholesale"`
	Retail    float64 `json:"retail" bson:"retail"`
	TradeIn   float64 `json:"tradeIn" bson:"tradeIn"`
}

// SourceQuote là báo giá kèm tên nguồn.
type SourceQuote struct {
	Source    string  `json:"source" bson:"source"`
	Wholesale float64 `json:"wholesale" bson:"wholesale"`
	Retail    float64 `json:"retail" bson:"retail"`
	TradeIn   float64 `json:"tradeIn" bson:"tradeIn"`
}

// MultiSourceValuation là kết quả tổng hợp: composite = trung bình cộng từng mức
// trên tất cả nguồn, kèm báo giá gốc của từng nguồn.
type MultiSourceValuation struct {
	Composite Quote         `json:"composite" bson:"composite"`
	Sources   []SourceQuote `json:"sources" bson:"sources"`
}

// SourceLabel trả về nhãn nguồn cho field valuationSource của equity analysis,
// dạng "composite:kbb_mock+nada_mock+blackbook_mock".
func (v *MultiSourceValuation) SourceLabel() string {
	label := "composite:"
	for i, s := range v.Sources {
		if i > 0 {
			label += "+"
		}
		label += s.Source
	}
	return label
}
