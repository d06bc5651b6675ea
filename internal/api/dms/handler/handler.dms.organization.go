// Package dmshdl - Handler organization.
package dmshdl

import (
	"fmt"

	basehdl "github.com/Whointhefkisthatguy/trade-up/internal/api/base/handler"
	dmsdto "github.com/Whointhefkisthatguy/trade-up/internal/api/dms/dto"
	dmsmodels "github.com/Whointhefkisthatguy/trade-up/internal/api/dms/models"
	dmssvc "github.com/Whointhefkisthatguy/trade-up/internal/api/dms/service"
)

// OrganizationHandler xử lý các request CRUD cho organization.
type OrganizationHandler struct {
	basehdl.BaseHandler[dmsmodels.Organization, dmsdto.OrganizationCreateInput, dmsdto.OrganizationUpdateInput]
}

// NewOrganizationHandler tạo mới OrganizationHandler.
func NewOrganizationHandler() (*OrganizationHandler, error) {
	orgService, err := dmssvc.NewOrganizationService()
	if err != nil {
		return nil, fmt.Errorf("tạo OrganizationService: %w", err)
	}

	baseHandler := basehdl.NewBaseHandler[dmsmodels.Organization, dmsdto.OrganizationCreateInput, dmsdto.OrganizationUpdateInput](orgService)
	return &OrganizationHandler{
		BaseHandler: *baseHandler,
	}, nil
}
