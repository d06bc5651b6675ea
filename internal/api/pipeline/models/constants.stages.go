// Package models - Hằng số stage của pipeline "equity".
package models

// PipelineNameEquity là tên pipeline theo dõi opportunity trade-up.
const PipelineNameEquity = "equity"

// Stage ID của pipeline equity, theo đúng thứ tự nghiệp vụ.
const (
	StageIdentified        = "ps-eq-01"
	StageDataEnriched      = "ps-eq-02"
	StageValuationComplete = "ps-eq-03"
	StageEquityCalculated  = "ps-eq-04"
	StageOfferGenerated    = "ps-eq-05"
	StageOfferSent         = "ps-eq-06"
	StageOfferOpened       = "ps-eq-07"
	StageCustomerResponded = "ps-eq-08"
	StageAppointmentSet    = "ps-eq-09"
	StageConverted         = "ps-eq-10"
)

// EquityStages trả về catalog đầy đủ 10 stage của pipeline equity, dùng để seed.
func EquityStages() []PipelineStage {
	return []PipelineStage{
		{ID: StageIdentified, PipelineName: PipelineNameEquity, StageName: "identified", Order: 1, Description: "Asset được nhận diện là opportunity tiềm năng"},
		{ID: StageDataEnriched, PipelineName: PipelineNameEquity, StageName: "data_enriched", Order: 2, Description: "Đã bổ sung thông số xe và dữ liệu khách"},
		{ID: StageValuationComplete, PipelineName: PipelineNameEquity, StageName: "valuation_complete", Order: 3, Description: "Đã có định giá đa nguồn"},
		{ID: StageEquityCalculated, PipelineName: PipelineNameEquity, StageName: "equity_calculated", Order: 4, Description: "Đã tính và phân loại equity"},
		{ID: StageOfferGenerated, PipelineName: PipelineNameEquity, StageName: "offer_generated", Order: 5, Description: "Deal sheet đã được trình bày cho khách"},
		{ID: StageOfferSent, PipelineName: PipelineNameEquity, StageName: "offer_sent", Order: 6, Description: "Đã phát hành offer gửi khách"},
		{ID: StageOfferOpened, PipelineName: PipelineNameEquity, StageName: "offer_opened", Order: 7, Description: "Khách đã mở trang offer lần đầu"},
		{ID: StageCustomerResponded, PipelineName: PipelineNameEquity, StageName: "customer_responded", Order: 8, Description: "Khách đã phản hồi offer"},
		{ID: StageAppointmentSet, PipelineName: PipelineNameEquity, StageName: "appointment_set", Order: 9, Description: "Đã đặt lịch hẹn với khách"},
		{ID: StageConverted, PipelineName: PipelineNameEquity, StageName: "converted", Order: 10, Description: "Đã chốt deal trade-up"},
	}
}

// StageOrder trả về thứ tự của stage trong pipeline equity, 0 nếu stage lạ.
func StageOrder(stageID string) int {
	for _, s := range EquityStages() {
		if s.ID == stageID {
			return s.Order
		}
	}
	return 0
}
