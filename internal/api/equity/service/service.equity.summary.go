package equitysvc

import (
	"context"

	equitymodels "github.com/Whointhefkisthatguy/trade-up/internal/api/equity/models"
	"github.com/Whointhefkisthatguy/trade-up/internal/common"
	"github.com/Whointhefkisthatguy/trade-up/internal/global"
	"github.com/Whointhefkisthatguy/trade-up/internal/utility"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// EquitySummary là thống kê equity của một organization, tính trên bản
// phân tích gần nhất của từng asset.
type EquitySummary struct {
	Total          int64   `json:"total"`
	PositiveCount  int64   `json:"positiveCount"`
	NegativeCount  int64   `json:"negativeCount"`
	BreakevenCount int64   `json:"breakevenCount"`
	TotalEquity    float64 `json:"totalEquity"`
	AvgEquity      float64 `json:"avgEquity"`
}

// Summarize tính EquitySummary cho một organization. Mỗi asset chỉ tính một
// lần theo bản phân tích mới nhất.
func (s *EquityAnalysisService) Summarize(ctx context.Context, orgID primitive.ObjectID) (*EquitySummary, error) {
	cursor, err := s.Collection().Aggregate(ctx, []bson.M{
		{"$match": bson.M{"organizationId": orgID}},
		{"$sort": bson.M{"assetId": 1, "createdAt": -1}},
		{"$group": bson.M{
			"_id":          "$assetId",
			"equityAmount": bson.M{"$first": "$equityAmount"},
			"equityType":   bson.M{"$first": "$equityType"},
		}},
		{"$group": bson.M{
			"_id":   nil,
			"total": bson.M{"$sum": 1},
			"positiveCount": bson.M{"$sum": bson.M{
				"$cond": []interface{}{bson.M{"$eq": []interface{}{"$equityType", equitymodels.EquityTypePositive}}, 1, 0},
			}},
			"negativeCount": bson.M{"$sum": bson.M{
				"$cond": []interface{}{bson.M{"$eq": []interface{}{"$equityType", equitymodels.EquityTypeNegative}}, 1, 0},
			}},
			"breakevenCount": bson.M{"$sum": bson.M{
				"$cond": []interface{}{bson.M{"$eq": []interface{}{"$equityType", equitymodels.EquityTypeBreakeven}}, 1, 0},
			}},
			"totalEquity": bson.M{"$sum": "$equityAmount"},
		}},
	})
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}
	defer cursor.Close(ctx)

	summary := &EquitySummary{}
	if cursor.Next(ctx) {
		var row struct {
			Total          int64   `bson:"total"`
			PositiveCount  int64   `bson:"positiveCount"`
			NegativeCount  int64   `bson:"negativeCount"`
			BreakevenCount int64   `bson:"breakevenCount"`
			TotalEquity    float64 `bson:"totalEquity"`
		}
		if err := cursor.Decode(&row); err != nil {
			return nil, common.ConvertMongoError(err)
		}
		summary.Total = row.Total
		summary.PositiveCount = row.PositiveCount
		summary.NegativeCount = row.NegativeCount
		summary.BreakevenCount = row.BreakevenCount
		summary.TotalEquity = utility.RoundTo(row.TotalEquity, 2)
		if row.Total > 0 {
			summary.AvgEquity = utility.RoundTo(row.TotalEquity/float64(row.Total), 2)
		}
	}
	return summary, nil
}

// AssetWithAnalysis là asset kèm contact và bản phân tích equity gần nhất
// (nếu có), dùng cho màn hình danh sách cơ hội.
type AssetWithAnalysis struct {
	Asset          bson.M `json:"asset" bson:"asset"`
	Contact        bson.M `json:"contact,omitempty" bson:"contact,omitempty"`
	LatestAnalysis bson.M `json:"latestAnalysis,omitempty" bson:"latestAnalysis,omitempty"`
}

// AssetsWithLatestAnalysis trả về tất cả asset của org, join với contact và
// bản phân tích gần nhất của từng asset.
func (s *EquityAnalysisService) AssetsWithLatestAnalysis(ctx context.Context, orgID primitive.ObjectID) ([]AssetWithAnalysis, error) {
	cursor, err := s.assets.Collection().Aggregate(ctx, []bson.M{
		{"$match": bson.M{"organizationId": orgID}},
		{"$sort": bson.M{"year": -1, "make": 1, "model": 1}},
		{"$lookup": bson.M{
			"from":         global.MongoDB_ColNames.EquityAnalyses,
			"localField":   "_id",
			"foreignField": "assetId",
			"as":           "analyses",
		}},
		{"$lookup": bson.M{
			"from":         global.MongoDB_ColNames.Contacts,
			"localField":   "contactId",
			"foreignField": "_id",
			"as":           "contacts",
		}},
		{"$project": bson.M{
			"asset":   "$$ROOT",
			"contact": bson.M{"$arrayElemAt": []interface{}{"$contacts", 0}},
			"latestAnalysis": bson.M{"$arrayElemAt": []interface{}{
				bson.M{"$sortArray": bson.M{
					"input":  "$analyses",
					"sortBy": bson.M{"createdAt": -1},
				}}, 0,
			}},
		}},
		{"$project": bson.M{
			"asset.analyses": 0,
			"asset.contacts": 0,
		}},
	})
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}
	defer cursor.Close(ctx)

	rows := []AssetWithAnalysis{}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, common.ConvertMongoError(err)
	}
	return rows, nil
}
