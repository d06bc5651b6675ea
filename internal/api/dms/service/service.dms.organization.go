// Package dmssvc - Service organization (organizations).
package dmssvc

import (
	"fmt"

	dmsmodels "github.com/Whointhefkisthatguy/trade-up/internal/api/dms/models"
	basesvc "github.com/Whointhefkisthatguy/trade-up/internal/api/base/service"
	"github.com/Whointhefkisthatguy/trade-up/internal/common"
	"github.com/Whointhefkisthatguy/trade-up/internal/global"
)

// OrganizationService xử lý CRUD dealer/tổ chức.
type OrganizationService struct {
	*basesvc.BaseServiceMongoImpl[dmsmodels.Organization]
}

// NewOrganizationService tạo OrganizationService mới.
func NewOrganizationService() (*OrganizationService, error) {
	coll, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Organizations)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.Organizations, common.ErrNotFound)
	}
	return &OrganizationService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[dmsmodels.Organization](coll),
	}, nil
}
