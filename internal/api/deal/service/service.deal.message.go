// Package dealsvc - Sinh deal sheet nội bộ và client offer có token.
package dealsvc

import (
	"fmt"
	"math"

	equitymodels "github.com/Whointhefkisthatguy/trade-up/internal/api/equity/models"
	"github.com/Whointhefkisthatguy/trade-up/internal/renderer"
)

// sourceDisplayNames ánh xạ mã nguồn định giá sang tên hiển thị trên deal sheet.
var sourceDisplayNames = map[string]string{
	"kbb_mock":       "KBB",
	"nada_mock":      "NADA",
	"blackbook_mock": "Blackbook",
}

// SourceDisplayName trả về tên hiển thị của một nguồn định giá.
// Nguồn lạ giữ nguyên mã.
func SourceDisplayName(source string) string {
	if name, ok := sourceDisplayNames[source]; ok {
		return name
	}
	return source
}

// BuildRecommendation sinh đoạn tư vấn cho sales theo loại equity.
// Nội dung là tiếng Anh vì deal sheet dành cho thị trường Mỹ.
func BuildRecommendation(equityType string, equityAmount float64, customerName, vehicleDesc string) string {
	absEquity := renderer.FormatCurrency(math.Abs(equityAmount))

	switch equityType {
	case equitymodels.EquityTypePositive:
		return fmt.Sprintf("%s has %s in positive equity on their %s. This is a strong trade-up candidate.\n\n"+
			"Talking points:\n"+
			"- Their vehicle is worth more than they owe — they can apply equity toward a new purchase\n"+
			"- Current market conditions favor pre-owned vehicles like theirs\n"+
			"- Highlight monthly payment reduction potential or upgrade options\n"+
			"- Create urgency: market values fluctuate, now is a great time to act",
			customerName, absEquity, vehicleDesc)
	case equitymodels.EquityTypeBreakeven:
		return fmt.Sprintf("%s is near breakeven on their %s. With the right incentive, this is still a viable opportunity.\n\n"+
			"Talking points:\n"+
			"- Their loan is nearly paid down to the vehicle's current value\n"+
			"- Even a small incentive or rebate could tip the balance\n"+
			"- Focus on the benefits of a newer vehicle (warranty, features, safety)\n"+
			"- Present as a low-pressure \"no cost to switch\" opportunity",
			customerName, vehicleDesc)
	default:
		return fmt.Sprintf("%s has %s in negative equity on their %s. Proceed with caution.\n\n"+
			"Talking points:\n"+
			"- Negative equity can be rolled into a new loan if the customer is motivated\n"+
			"- Focus on situations where the customer needs a different vehicle (growing family, commute change)\n"+
			"- Manufacturer rebates or dealer incentives may offset the gap\n"+
			"- Only pursue if the customer expresses genuine interest in upgrading",
			customerName, absEquity, vehicleDesc)
	}
}

// BuildClientMessage sinh lời chào gửi khách trên trang offer.
// Chỉ equity dương mới được nêu con số; equity âm tuyệt đối không lộ số liệu.
func BuildClientMessage(equityType string, equityAmount float64) string {
	switch equityType {
	case equitymodels.EquityTypePositive:
		absEquity := renderer.FormatCurrency(math.Abs(equityAmount))
		return fmt.Sprintf("Great news! Based on our analysis, your vehicle has built up %s in equity. "+
			"This means your vehicle is worth more than what you owe on it. "+
			"You could use this equity toward a newer model, lower your monthly payments, or both. "+
			"Now is an excellent time to take advantage of strong market demand for pre-owned vehicles like yours.",
			absEquity)
	case equitymodels.EquityTypeBreakeven:
		return "Based on current market conditions, your vehicle's value closely matches your remaining balance. " +
			"This puts you in a great position to upgrade to a newer model with little to no additional cost. " +
			"We'd love to show you what's possible — stop by for a test drive and let us walk you through your options."
	default:
		return "We've been keeping an eye on market conditions for vehicles like yours. " +
			"While the market continues to evolve, we have some exciting options that could work well for your situation. " +
			"We'd love to sit down with you and explore the possibilities — schedule a visit to see what we can do for you."
	}
}
