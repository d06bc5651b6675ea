// Package router đăng ký các route thuộc domain DMS: assets, contacts, organizations, analysis rules.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	dmshdl "github.com/Whointhefkisthatguy/trade-up/internal/api/dms/handler"
	apirouter "github.com/Whointhefkisthatguy/trade-up/internal/api/router"
)

// Register đăng ký tất cả route DMS lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	assetHandler, err := dmshdl.NewAssetHandler()
	if err != nil {
		return fmt.Errorf("tạo AssetHandler: %w", err)
	}
	contactHandler, err := dmshdl.NewContactHandler()
	if err != nil {
		return fmt.Errorf("tạo ContactHandler: %w", err)
	}
	orgHandler, err := dmshdl.NewOrganizationHandler()
	if err != nil {
		return fmt.Errorf("tạo OrganizationHandler: %w", err)
	}
	ruleHandler, err := dmshdl.NewAnalysisRuleHandler()
	if err != nil {
		return fmt.Errorf("tạo AnalysisRuleHandler: %w", err)
	}

	r.RegisterCRUDRoutes(v1, "/assets", assetHandler, apirouter.ReadWriteConfig, nil)
	r.RegisterCRUDRoutes(v1, "/contacts", contactHandler, apirouter.ReadWriteConfig, nil)
	r.RegisterCRUDRoutes(v1, "/organizations", orgHandler, apirouter.ReadWriteConfig, nil)
	r.RegisterCRUDRoutes(v1, "/analysis-rules", ruleHandler, apirouter.ReadWriteConfig, nil)

	return nil
}
