// Package dmssvc - Service cho domain DMS: assets, contacts, organizations, analysis rules.
package dmssvc

import (
	"context"
	"fmt"

	dmsmodels "github.com/Whointhefkisthatguy/trade-up/internal/api/dms/models"
	basesvc "github.com/Whointhefkisthatguy/trade-up/internal/api/base/service"
	"github.com/Whointhefkisthatguy/trade-up/internal/common"
	"github.com/Whointhefkisthatguy/trade-up/internal/global"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// AssetService xử lý CRUD xe của khách.
type AssetService struct {
	*basesvc.BaseServiceMongoImpl[dmsmodels.Asset]
}

// NewAssetService tạo AssetService mới.
func NewAssetService() (*AssetService, error) {
	coll, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Assets)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.Assets, common.ErrNotFound)
	}
	return &AssetService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[dmsmodels.Asset](coll),
	}, nil
}

// FindByOrganization trả về tất cả asset của một organization.
func (s *AssetService) FindByOrganization(ctx context.Context, orgID primitive.ObjectID) ([]dmsmodels.Asset, error) {
	opts := options.Find().SetSort(bson.D{
		{Key: "year", Value: -1},
		{Key: "make", Value: 1},
		{Key: "model", Value: 1},
	})
	return s.Find(ctx, bson.M{"organizationId": orgID}, opts)
}
