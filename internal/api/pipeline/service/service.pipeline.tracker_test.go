// Package pipelinesvc - Test bảng transition: chỉ tiến không lùi, nguồn hợp lệ cho từng đích.
package pipelinesvc

import (
	"testing"

	pipelinemodels "github.com/Whointhefkisthatguy/trade-up/internal/api/pipeline/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// recordMatches và applyAdvance mô phỏng UpdateOne của Mongo trên một record:
// filter khớp thì áp $set, không khớp thì record giữ nguyên.
func recordMatches(rec *pipelinemodels.PipelineRecord, filter bson.M) bool {
	return rec.AssetID == filter["assetId"] && rec.CurrentStageID == filter["currentStageId"]
}

func applyAdvance(rec *pipelinemodels.PipelineRecord, filter, update bson.M) bool {
	if !recordMatches(rec, filter) {
		return false
	}
	set := update["$set"].(bson.M)
	rec.CurrentStageID = set["currentStageId"].(string)
	rec.EnteredStageAt = set["enteredStageAt"].(int64)
	rec.UpdatedAt = set["updatedAt"].(int64)
	return true
}

func TestAdvance_LanHaiKhongKhopKhongGhi(t *testing.T) {
	assetID := primitive.NewObjectID()
	rec := &pipelinemodels.PipelineRecord{
		AssetID:        assetID,
		CurrentStageID: pipelinemodels.StageIdentified,
		EnteredStageAt: 1000,
		UpdatedAt:      1000,
	}

	filter := advanceFilter(assetID, pipelinemodels.StageIdentified)
	update := advanceUpdate(pipelinemodels.StageDataEnriched, 2000)

	if !applyAdvance(rec, filter, update) {
		t.Fatal("advance lần đầu phải khớp record đang ở stage nguồn")
	}
	if rec.CurrentStageID != pipelinemodels.StageDataEnriched {
		t.Errorf("currentStageId = %s, muốn %s", rec.CurrentStageID, pipelinemodels.StageDataEnriched)
	}
	if rec.EnteredStageAt != 2000 || rec.UpdatedAt != 2000 {
		t.Errorf("enteredStageAt/updatedAt = %d/%d, muốn 2000/2000", rec.EnteredStageAt, rec.UpdatedAt)
	}

	// Record đã rời stage nguồn, gọi lại cùng filter phải là no-op
	if applyAdvance(rec, filter, advanceUpdate(pipelinemodels.StageDataEnriched, 3000)) {
		t.Error("advance lần hai với cùng stage nguồn phải không khớp gì")
	}
	if rec.EnteredStageAt != 2000 {
		t.Errorf("no-op không được đổi enteredStageAt, nhận %d", rec.EnteredStageAt)
	}
}

func TestAdvanceFilter_KhongKhopAssetKhac(t *testing.T) {
	rec := &pipelinemodels.PipelineRecord{
		AssetID:        primitive.NewObjectID(),
		CurrentStageID: pipelinemodels.StageIdentified,
	}
	filter := advanceFilter(primitive.NewObjectID(), pipelinemodels.StageIdentified)
	if recordMatches(rec, filter) {
		t.Error("filter phải pin assetId, không được khớp asset khác")
	}
}

func TestTransitionSources_KhongCoTransitionLui(t *testing.T) {
	for target, sources := range advanceSources {
		targetOrder := pipelinemodels.StageOrder(target)
		if targetOrder == 0 {
			t.Fatalf("stage đích %s không có trong catalog", target)
		}
		for _, from := range sources {
			fromOrder := pipelinemodels.StageOrder(from)
			if fromOrder == 0 {
				t.Fatalf("stage nguồn %s không có trong catalog", from)
			}
			if fromOrder >= targetOrder {
				t.Errorf("transition %s (order %d) -> %s (order %d) đi lùi hoặc đứng yên",
					from, fromOrder, target, targetOrder)
			}
		}
	}
}

func TestTransitionSources_OfferGeneratedNhanTuStage1Den4(t *testing.T) {
	// markPresented phải advance được từ bất kỳ stage 1-4 nào lên offer_generated
	sources := TransitionSources(pipelinemodels.StageOfferGenerated)
	want := []string{
		pipelinemodels.StageIdentified,
		pipelinemodels.StageDataEnriched,
		pipelinemodels.StageValuationComplete,
		pipelinemodels.StageEquityCalculated,
	}
	if len(sources) != len(want) {
		t.Fatalf("offer_generated có %d nguồn, muốn %d", len(sources), len(want))
	}
	for i, s := range want {
		if sources[i] != s {
			t.Errorf("nguồn thứ %d = %s, muốn %s", i, sources[i], s)
		}
	}
}

func TestTransitionSources_OfferSentNhanTuStage4Va5(t *testing.T) {
	sources := TransitionSources(pipelinemodels.StageOfferSent)
	want := []string{
		pipelinemodels.StageEquityCalculated,
		pipelinemodels.StageOfferGenerated,
	}
	if len(sources) != len(want) {
		t.Fatalf("offer_sent có %d nguồn, muốn %d", len(sources), len(want))
	}
	for i, s := range want {
		if sources[i] != s {
			t.Errorf("nguồn thứ %d = %s, muốn %s", i, sources[i], s)
		}
	}
}

func TestTransitionSources_OfferOpenedChiTuOfferSent(t *testing.T) {
	sources := TransitionSources(pipelinemodels.StageOfferOpened)
	if len(sources) != 1 || sources[0] != pipelinemodels.StageOfferSent {
		t.Errorf("offer_opened phải chỉ nhận từ offer_sent, nhận được: %v", sources)
	}
}

func TestTransitionSources_StageDauKhongLaDich(t *testing.T) {
	// identified là stage khởi đầu, không stage nào advance tới nó
	if sources := TransitionSources(pipelinemodels.StageIdentified); sources != nil {
		t.Errorf("identified không được là stage đích, nhận được nguồn: %v", sources)
	}
}

func TestTransitionSources_StageLa(t *testing.T) {
	if sources := TransitionSources("ps-eq-99"); sources != nil {
		t.Errorf("stage lạ phải trả về nil, nhận được: %v", sources)
	}
}

func TestEquityStages_Du10StageDungThuTu(t *testing.T) {
	stages := pipelinemodels.EquityStages()
	if len(stages) != 10 {
		t.Fatalf("catalog có %d stage, muốn 10", len(stages))
	}
	for i, s := range stages {
		if s.Order != i+1 {
			t.Errorf("stage %s có order %d, muốn %d", s.ID, s.Order, i+1)
		}
		if s.PipelineName != pipelinemodels.PipelineNameEquity {
			t.Errorf("stage %s thuộc pipeline %q, muốn %q", s.ID, s.PipelineName, pipelinemodels.PipelineNameEquity)
		}
	}
	if stages[0].StageName != "identified" || stages[9].StageName != "converted" {
		t.Errorf("thứ tự catalog sai: đầu %s, cuối %s", stages[0].StageName, stages[9].StageName)
	}
}
