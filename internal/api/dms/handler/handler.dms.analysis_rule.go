// Package dmshdl - Handler analysis rule.
package dmshdl

import (
	"fmt"

	basehdl "github.com/Whointhefkisthatguy/trade-up/internal/api/base/handler"
	dmsdto "github.com/Whointhefkisthatguy/trade-up/internal/api/dms/dto"
	dmsmodels "github.com/Whointhefkisthatguy/trade-up/internal/api/dms/models"
	dmssvc "github.com/Whointhefkisthatguy/trade-up/internal/api/dms/service"
)

// AnalysisRuleHandler xử lý các request CRUD cho analysis rule.
type AnalysisRuleHandler struct {
	basehdl.BaseHandler[dmsmodels.AnalysisRule, dmsdto.AnalysisRuleCreateInput, dmsdto.AnalysisRuleUpdateInput]
}

// NewAnalysisRuleHandler tạo mới AnalysisRuleHandler.
func NewAnalysisRuleHandler() (*AnalysisRuleHandler, error) {
	ruleService, err := dmssvc.NewAnalysisRuleService()
	if err != nil {
		return nil, fmt.Errorf("tạo AnalysisRuleService: %w", err)
	}

	baseHandler := basehdl.NewBaseHandler[dmsmodels.AnalysisRule, dmsdto.AnalysisRuleCreateInput, dmsdto.AnalysisRuleUpdateInput](ruleService)
	return &AnalysisRuleHandler{
		BaseHandler: *baseHandler,
	}, nil
}
