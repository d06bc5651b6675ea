package dealsvc

import (
	"testing"
	"time"

	dealmodels "github.com/Whointhefkisthatguy/trade-up/internal/api/deal/models"

	"go.mongodb.org/mongo-driver/bson"
)

func TestEvaluateAccess(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		token dealmodels.ClientOfferToken
		want  AccessDecision
	}{
		{
			name: "token active còn hạn",
			token: dealmodels.ClientOfferToken{
				Status:    dealmodels.TokenStatusActive,
				ExpiresAt: now.Add(24 * time.Hour).UnixMilli(),
			},
			want: AccessGranted,
		},
		{
			name: "token active nhưng đã quá hạn theo thời gian",
			token: dealmodels.ClientOfferToken{
				Status:    dealmodels.TokenStatusActive,
				ExpiresAt: now.Add(-time.Minute).UnixMilli(),
			},
			want: AccessExpired,
		},
		{
			name: "token đã bị đánh dấu expired",
			token: dealmodels.ClientOfferToken{
				Status:    dealmodels.TokenStatusExpired,
				ExpiresAt: now.Add(24 * time.Hour).UnixMilli(),
			},
			want: AccessExpired,
		},
		{
			name: "token revoked thắng mọi thứ kể cả còn hạn",
			token: dealmodels.ClientOfferToken{
				Status:    dealmodels.TokenStatusRevoked,
				ExpiresAt: now.Add(24 * time.Hour).UnixMilli(),
			},
			want: AccessRevoked,
		},
		{
			name: "hết hạn đúng thời điểm now vẫn được xem",
			token: dealmodels.ClientOfferToken{
				Status:    dealmodels.TokenStatusActive,
				ExpiresAt: now.UnixMilli(),
			},
			want: AccessGranted,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EvaluateAccess(&tt.token, now); got != tt.want {
				t.Errorf("EvaluateAccess = %v, muốn %v", got, tt.want)
			}
		})
	}
}

// applyAccess mô phỏng UpdateOne áp update của accessUpdate lên token.
func applyAccess(token *dealmodels.ClientOfferToken, update bson.M) {
	set := update["$set"].(bson.M)
	token.LastAccessedAt = set["lastAccessedAt"].(int64)
	token.UpdatedAt = set["updatedAt"].(int64)
	if first, ok := set["firstAccessedAt"]; ok {
		token.FirstAccessedAt = first.(int64)
	}
	token.AccessCount += int64(update["$inc"].(bson.M)["accessCount"].(int))
}

func TestAccessUpdate_HaiLuotTruyCap(t *testing.T) {
	token := &dealmodels.ClientOfferToken{
		Status: dealmodels.TokenStatusActive,
	}

	// Lượt đầu: firstAccessedAt được set, accessCount lên 1
	applyAccess(token, accessUpdate(token.AccessCount == 0, 1000))
	if token.AccessCount != 1 {
		t.Errorf("sau lượt đầu accessCount = %d, muốn 1", token.AccessCount)
	}
	if token.FirstAccessedAt != 1000 || token.LastAccessedAt != 1000 {
		t.Errorf("firstAccessedAt/lastAccessedAt = %d/%d, muốn 1000/1000",
			token.FirstAccessedAt, token.LastAccessedAt)
	}

	// Lượt hai: firstAccessedAt giữ nguyên, lastAccessedAt và accessCount tiến
	applyAccess(token, accessUpdate(token.AccessCount == 0, 2000))
	if token.AccessCount != 2 {
		t.Errorf("sau lượt hai accessCount = %d, muốn 2", token.AccessCount)
	}
	if token.FirstAccessedAt != 1000 {
		t.Errorf("firstAccessedAt = %d, phải giữ nguyên 1000", token.FirstAccessedAt)
	}
	if token.LastAccessedAt != 2000 {
		t.Errorf("lastAccessedAt = %d, muốn 2000", token.LastAccessedAt)
	}
}

func TestAccessUpdate_LuotSauKhongCoFirstAccessedAt(t *testing.T) {
	update := accessUpdate(false, 5000)
	set := update["$set"].(bson.M)
	if _, ok := set["firstAccessedAt"]; ok {
		t.Error("update của lượt sau không được chứa firstAccessedAt")
	}
	if inc := update["$inc"].(bson.M)["accessCount"]; inc != 1 {
		t.Errorf("$inc accessCount = %v, muốn 1", inc)
	}
}

func TestCanGenerateClientOffer(t *testing.T) {
	tests := []struct {
		status string
		want   bool
	}{
		{dealmodels.SheetStatusGenerated, false},
		{dealmodels.SheetStatusViewed, false},
		{dealmodels.SheetStatusPresented, true},
		{dealmodels.SheetStatusClientOfferSent, false},
		{"", false},
	}
	for _, tt := range tests {
		if got := dealmodels.CanGenerateClientOffer(tt.status); got != tt.want {
			t.Errorf("CanGenerateClientOffer(%q) = %v, muốn %v", tt.status, got, tt.want)
		}
	}
}
