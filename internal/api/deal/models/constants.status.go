package models

// Trạng thái của deal sheet. Chỉ đi tiến theo đúng thứ tự:
// generated -> viewed -> presented -> client_offer_sent.
const (
	SheetStatusGenerated       = "generated"
	SheetStatusViewed          = "viewed"
	SheetStatusPresented       = "presented"
	SheetStatusClientOfferSent = "client_offer_sent"
)

// Trạng thái của client offer token.
const (
	TokenStatusActive  = "active"
	TokenStatusExpired = "expired"
	TokenStatusRevoked = "revoked"
)

// CanGenerateClientOffer cho biết deal sheet ở trạng thái này có được phép
// phát hành client offer không. Chỉ sheet đã presented mới được phát hành,
// kể cả sheet đã client_offer_sent cũng không được phát hành lại.
func CanGenerateClientOffer(sheetStatus string) bool {
	return sheetStatus == SheetStatusPresented
}
