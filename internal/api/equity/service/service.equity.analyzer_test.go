package equitysvc

import (
	"testing"

	equitymodels "github.com/Whointhefkisthatguy/trade-up/internal/api/equity/models"
)

func TestBatchResultFinalize(t *testing.T) {
	result := &BatchResult{
		Processed: 3,
		Skipped:   1,
		Opportunities: []equitymodels.EquityAnalysis{
			{EquityType: equitymodels.EquityTypePositive},
			{EquityType: equitymodels.EquityTypePositive},
		},
		Errors: []BatchError{
			{AssetID: "a", Message: "định giá thất bại"},
		},
	}
	result.finalize()

	if result.OpportunityCount != 2 {
		t.Errorf("OpportunityCount = %d, muốn 2", result.OpportunityCount)
	}
	if result.ErrorCount != 1 {
		t.Errorf("ErrorCount = %d, muốn 1", result.ErrorCount)
	}

	empty := &BatchResult{Opportunities: []equitymodels.EquityAnalysis{}, Errors: []BatchError{}}
	empty.finalize()
	if empty.OpportunityCount != 0 || empty.ErrorCount != 0 {
		t.Errorf("batch rỗng phải cho count 0, nhận %d/%d", empty.OpportunityCount, empty.ErrorCount)
	}
}
