// Package dmshdl - Handler contact.
package dmshdl

import (
	"fmt"

	basehdl "github.com/Whointhefkisthatguy/trade-up/internal/api/base/handler"
	dmsdto "github.com/Whointhefkisthatguy/trade-up/internal/api/dms/dto"
	dmsmodels "github.com/Whointhefkisthatguy/trade-up/internal/api/dms/models"
	dmssvc "github.com/Whointhefkisthatguy/trade-up/internal/api/dms/service"
)

// ContactHandler xử lý các request CRUD cho contact.
type ContactHandler struct {
	basehdl.BaseHandler[dmsmodels.Contact, dmsdto.ContactCreateInput, dmsdto.ContactUpdateInput]
}

// NewContactHandler tạo mới ContactHandler.
func NewContactHandler() (*ContactHandler, error) {
	contactService, err := dmssvc.NewContactService()
	if err != nil {
		return nil, fmt.Errorf("tạo ContactService: %w", err)
	}

	baseHandler := basehdl.NewBaseHandler[dmsmodels.Contact, dmsdto.ContactCreateInput, dmsdto.ContactUpdateInput](contactService)
	return &ContactHandler{
		BaseHandler: *baseHandler,
	}, nil
}
