package dealsvc

import (
	"context"
	"fmt"
	"time"

	basesvc "github.com/Whointhefkisthatguy/trade-up/internal/api/base/service"
	dealmodels "github.com/Whointhefkisthatguy/trade-up/internal/api/deal/models"
	dmssvc "github.com/Whointhefkisthatguy/trade-up/internal/api/dms/service"
	pipelinemodels "github.com/Whointhefkisthatguy/trade-up/internal/api/pipeline/models"
	pipelinesvc "github.com/Whointhefkisthatguy/trade-up/internal/api/pipeline/service"
	"github.com/Whointhefkisthatguy/trade-up/internal/common"
	"github.com/Whointhefkisthatguy/trade-up/internal/global"
	"github.com/Whointhefkisthatguy/trade-up/internal/logger"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AccessDecision là kết quả đánh giá một lượt truy cập token.
type AccessDecision int

const (
	// AccessGranted token còn hiệu lực, được xem offer.
	AccessGranted AccessDecision = iota
	// AccessExpired token đã hết hạn theo thời gian hoặc đã bị đánh dấu expired.
	AccessExpired
	// AccessRevoked token đã bị admin thu hồi.
	AccessRevoked
)

// EvaluateAccess đánh giá token tại thời điểm now. Hàm thuần, không side effect.
func EvaluateAccess(token *dealmodels.ClientOfferToken, now time.Time) AccessDecision {
	switch token.Status {
	case dealmodels.TokenStatusRevoked:
		return AccessRevoked
	case dealmodels.TokenStatusExpired:
		return AccessExpired
	}
	if token.ExpiresAt < now.UnixMilli() {
		return AccessExpired
	}
	return AccessGranted
}

// OfferResolution là kết quả resolve một token offer.
// Expired=true nghĩa là token hết hạn hoặc bị thu hồi, Html khi đó rỗng.
type OfferResolution struct {
	Html    string `json:"html,omitempty"`
	Expired bool   `json:"expired"`
}

// OfferTokenService resolve token offer public và theo dõi truy cập.
type OfferTokenService struct {
	*basesvc.BaseServiceMongoImpl[dealmodels.ClientOfferToken]

	sheets   *basesvc.BaseServiceMongoImpl[dealmodels.DealSheet]
	contacts *dmssvc.ContactService
	orgs     *dmssvc.OrganizationService
	pipeline *pipelinesvc.PipelineService

	now func() time.Time
}

// NewOfferTokenService tạo OfferTokenService mới.
func NewOfferTokenService(
	contacts *dmssvc.ContactService,
	orgs *dmssvc.OrganizationService,
	pipeline *pipelinesvc.PipelineService,
) (*OfferTokenService, error) {
	tokenColl, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.ClientOfferTokens)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.ClientOfferTokens, common.ErrNotFound)
	}
	sheetColl, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.DealSheets)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.DealSheets, common.ErrNotFound)
	}
	return &OfferTokenService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[dealmodels.ClientOfferToken](tokenColl),
		sheets:               basesvc.NewBaseServiceMongo[dealmodels.DealSheet](sheetColl),
		contacts:             contacts,
		orgs:                 orgs,
		pipeline:             pipeline,
		now:                  time.Now,
	}, nil
}

// ResolveByToken resolve token từ URL offer của khách.
//   - Token không tồn tại: trả về ErrNotFound.
//   - Token revoked: trả về Expired=true, không ghi gì.
//   - Token hết hạn theo thời gian: đánh dấu expired trong DB rồi trả về
//     Expired=true, không đụng tới accessCount.
//   - Token hợp lệ: ghi nhận lượt truy cập rồi render lại trang offer từ
//     snapshot đã đóng băng. Lượt truy cập đầu tiên đẩy pipeline sang
//     offer_opened.
func (s *OfferTokenService) ResolveByToken(ctx context.Context, tokenStr string) (*OfferResolution, error) {
	token, err := s.FindOne(ctx, bson.M{"token": tokenStr}, nil)
	if err != nil {
		return nil, err
	}

	now := s.now()
	switch EvaluateAccess(&token, now) {
	case AccessRevoked:
		return &OfferResolution{Expired: true}, nil
	case AccessExpired:
		if token.Status != dealmodels.TokenStatusExpired {
			_, err := s.Collection().UpdateOne(ctx,
				bson.M{"_id": token.ID},
				bson.M{"$set": bson.M{
					"status":    dealmodels.TokenStatusExpired,
					"updatedAt": now.UnixMilli(),
				}},
			)
			if err != nil {
				return nil, common.ConvertMongoError(err)
			}
		}
		return &OfferResolution{Expired: true}, nil
	}

	firstAccess := token.AccessCount == 0
	if err := s.recordAccess(ctx, &token, now, firstAccess); err != nil {
		return nil, err
	}

	sheet, err := s.sheets.FindOneById(ctx, token.DealSheetID)
	if err != nil {
		return nil, err
	}
	contact, err := s.contacts.FindOneById(ctx, sheet.ContactID)
	if err != nil {
		return nil, err
	}
	org, err := s.orgs.FindOneById(ctx, sheet.OrganizationID)
	if err != nil {
		return nil, err
	}

	html, err := renderClientOffer(&sheet, &contact, &org, token.Token, token.ExpiresAt)
	if err != nil {
		return nil, err
	}

	if firstAccess {
		if _, err := s.pipeline.AdvanceToStage(ctx, sheet.AssetID, pipelinemodels.StageOfferOpened); err != nil {
			logger.WithModule("deal").WithError(err).
				Warnf("Không advance được asset %s tới offer_opened", sheet.AssetID.Hex())
		}
	}

	return &OfferResolution{Html: html}, nil
}

// accessUpdate xây update ghi nhận một lượt truy cập.
// firstAccessedAt chỉ xuất hiện trong update của lượt đầu, accessCount
// luôn tăng đúng 1.
func accessUpdate(firstAccess bool, nowMs int64) bson.M {
	set := bson.M{
		"lastAccessedAt": nowMs,
		"updatedAt":      nowMs,
	}
	if firstAccess {
		set["firstAccessedAt"] = nowMs
	}
	return bson.M{
		"$set": set,
		"$inc": bson.M{"accessCount": 1},
	}
}

// recordAccess ghi nhận một lượt truy cập hợp lệ.
// firstAccessedAt chỉ được set đúng một lần, lastAccessedAt set mọi lượt.
func (s *OfferTokenService) recordAccess(ctx context.Context, token *dealmodels.ClientOfferToken, now time.Time, firstAccess bool) error {
	_, err := s.Collection().UpdateOne(ctx,
		bson.M{"_id": token.ID},
		accessUpdate(firstAccess, now.UnixMilli()),
	)
	if err != nil {
		return common.ConvertMongoError(err)
	}
	return nil
}

// ExpireOverdue quét các token active đã quá hạn và đánh dấu expired hàng
// loạt. Resolve vẫn tự xử lý token quá hạn, sweep này chỉ giữ DB sạch để
// truy vấn thống kê theo status không phải tính lại hạn.
func (s *OfferTokenService) ExpireOverdue(ctx context.Context) (int64, error) {
	nowMs := s.now().UnixMilli()
	result, err := s.Collection().UpdateMany(ctx,
		bson.M{
			"status":    dealmodels.TokenStatusActive,
			"expiresAt": bson.M{"$lt": nowMs},
		},
		bson.M{"$set": bson.M{
			"status":    dealmodels.TokenStatusExpired,
			"updatedAt": nowMs,
		}},
	)
	if err != nil {
		return 0, common.ConvertMongoError(err)
	}
	return result.ModifiedCount, nil
}

// Revoke thu hồi token theo id. Token revoked không resolve được nữa nhưng
// vẫn giữ nguyên số liệu truy cập đã ghi.
func (s *OfferTokenService) Revoke(ctx context.Context, tokenID primitive.ObjectID) (dealmodels.ClientOfferToken, error) {
	token, err := s.FindOneById(ctx, tokenID)
	if err != nil {
		return token, err
	}

	nowMs := s.now().UnixMilli()
	_, err = s.Collection().UpdateOne(ctx,
		bson.M{"_id": tokenID},
		bson.M{"$set": bson.M{
			"status":    dealmodels.TokenStatusRevoked,
			"updatedAt": nowMs,
		}},
	)
	if err != nil {
		return token, common.ConvertMongoError(err)
	}
	token.Status = dealmodels.TokenStatusRevoked
	token.UpdatedAt = nowMs
	return token, nil
}
