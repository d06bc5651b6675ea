// Package dmssvc - Service analysis rule (analysis_rules).
// Resolve rule theo org: rule mặc định toàn hệ thống merge từng ngưỡng với rule riêng của org.
package dmssvc

import (
	"context"
	"errors"
	"fmt"

	dmsmodels "github.com/Whointhefkisthatguy/trade-up/internal/api/dms/models"
	basesvc "github.com/Whointhefkisthatguy/trade-up/internal/api/base/service"
	"github.com/Whointhefkisthatguy/trade-up/internal/common"
	"github.com/Whointhefkisthatguy/trade-up/internal/global"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Ngưỡng mặc định khi chưa seed rule nào.
const (
	DefaultMinVehicleAgeYears = 1
	DefaultMaxVehicleAgeYears = 12
	DefaultMinMileage         = 5000
	DefaultMaxMileage         = 150000
)

// AnalysisRuleService xử lý rule điều kiện phân tích equity.
type AnalysisRuleService struct {
	*basesvc.BaseServiceMongoImpl[dmsmodels.AnalysisRule]
}

// NewAnalysisRuleService tạo AnalysisRuleService mới.
func NewAnalysisRuleService() (*AnalysisRuleService, error) {
	coll, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.AnalysisRules)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.AnalysisRules, common.ErrNotFound)
	}
	return &AnalysisRuleService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[dmsmodels.AnalysisRule](coll),
	}, nil
}

// DefaultResolvedRule trả về rule mặc định cứng trong code.
func DefaultResolvedRule() dmsmodels.ResolvedAnalysisRule {
	return dmsmodels.ResolvedAnalysisRule{
		MinVehicleAgeYears: DefaultMinVehicleAgeYears,
		MaxVehicleAgeYears: DefaultMaxVehicleAgeYears,
		MinMileage:         DefaultMinMileage,
		MaxMileage:         DefaultMaxMileage,
	}
}

// MergeRule áp override của một rule lên base, từng field một. Field nil giữ giá trị base.
func MergeRule(base dmsmodels.ResolvedAnalysisRule, override *dmsmodels.AnalysisRule) dmsmodels.ResolvedAnalysisRule {
	if override == nil {
		return base
	}
	if override.MinVehicleAgeYears != nil {
		base.MinVehicleAgeYears = *override.MinVehicleAgeYears
	}
	if override.MaxVehicleAgeYears != nil {
		base.MaxVehicleAgeYears = *override.MaxVehicleAgeYears
	}
	if override.MinMileage != nil {
		base.MinMileage = *override.MinMileage
	}
	if override.MaxMileage != nil {
		base.MaxMileage = *override.MaxMileage
	}
	return base
}

// ResolveForOrganization trả về rule đã merge cho một org:
// mặc định cứng trong code → rule mặc định toàn hệ thống (nếu có) → rule riêng của org (nếu có).
func (s *AnalysisRuleService) ResolveForOrganization(ctx context.Context, orgID primitive.ObjectID) (dmsmodels.ResolvedAnalysisRule, error) {
	resolved := DefaultResolvedRule()

	globalRule, err := s.FindOne(ctx, bson.M{"organizationId": bson.M{"$exists": false}}, nil)
	if err == nil {
		resolved = MergeRule(resolved, &globalRule)
	} else if !errors.Is(err, common.ErrNotFound) {
		return resolved, err
	}

	orgRule, err := s.FindOne(ctx, bson.M{"organizationId": orgID}, nil)
	if err == nil {
		resolved = MergeRule(resolved, &orgRule)
	} else if !errors.Is(err, common.ErrNotFound) {
		return resolved, err
	}

	return resolved, nil
}
