// Package dmshdl chứa HTTP handler cho domain DMS (assets, contacts, organizations, analysis rules).
package dmshdl

import (
	"fmt"

	basehdl "github.com/Whointhefkisthatguy/trade-up/internal/api/base/handler"
	dmsdto "github.com/Whointhefkisthatguy/trade-up/internal/api/dms/dto"
	dmsmodels "github.com/Whointhefkisthatguy/trade-up/internal/api/dms/models"
	dmssvc "github.com/Whointhefkisthatguy/trade-up/internal/api/dms/service"
)

// AssetHandler xử lý các request CRUD cho asset.
type AssetHandler struct {
	basehdl.BaseHandler[dmsmodels.Asset, dmsdto.AssetCreateInput, dmsdto.AssetUpdateInput]
}

// NewAssetHandler tạo mới AssetHandler.
func NewAssetHandler() (*AssetHandler, error) {
	assetService, err := dmssvc.NewAssetService()
	if err != nil {
		return nil, fmt.Errorf("tạo AssetService: %w", err)
	}

	baseHandler := basehdl.NewBaseHandler[dmsmodels.Asset, dmsdto.AssetCreateInput, dmsdto.AssetUpdateInput](assetService)
	return &AssetHandler{
		BaseHandler: *baseHandler,
	}, nil
}
