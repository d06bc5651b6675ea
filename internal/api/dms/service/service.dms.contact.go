// Package dmssvc - Service contact (contacts).
package dmssvc

import (
	"fmt"

	dmsmodels "github.com/Whointhefkisthatguy/trade-up/internal/api/dms/models"
	basesvc "github.com/Whointhefkisthatguy/trade-up/internal/api/base/service"
	"github.com/Whointhefkisthatguy/trade-up/internal/common"
	"github.com/Whointhefkisthatguy/trade-up/internal/global"
)

// ContactService xử lý CRUD khách hàng.
type ContactService struct {
	*basesvc.BaseServiceMongoImpl[dmsmodels.Contact]
}

// NewContactService tạo ContactService mới.
func NewContactService() (*ContactService, error) {
	coll, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Contacts)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.Contacts, common.ErrNotFound)
	}
	return &ContactService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[dmsmodels.Contact](coll),
	}, nil
}
