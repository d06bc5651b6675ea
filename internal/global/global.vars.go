package global

import (
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Whointhefkisthatguy/trade-up/config"
	"github.com/Whointhefkisthatguy/trade-up/internal/registry"

	"github.com/go-playground/validator/v10"
)

// MongoDB_CollectionName chứa tên các collection trong MongoDB
type MongoDB_CollectionName struct {
	Assets            string // Tên collection cho xe khách đang sở hữu (DMS)
	Contacts          string // Tên collection cho khách hàng
	Organizations     string // Tên collection cho dealer/tổ chức
	AnalysisRules     string // Tên collection cho rule điều kiện phân tích equity
	EquityAnalyses    string // Tên collection cho kết quả phân tích equity
	PipelineStages    string // Tên collection cho định nghĩa stage pipeline
	PipelineRecords   string // Tên collection cho vị trí hiện tại của asset trong pipeline
	DealSheets        string // Tên collection cho deal sheet
	ClientOfferTokens string // Tên collection cho token offer gửi khách
}

// Các biến toàn cục
var Validate *validator.Validate                                                // Biến để xác thực dữ liệu
var MongoDB_Session *mongo.Client                                               // Phiên kết nối tới MongoDB
var MongoDB_ServerConfig *config.Configuration                                  // Cấu hình của server
var MongoDB_ColNames MongoDB_CollectionName = *new(MongoDB_CollectionName)      // Tên các collection

// Các Registry
var RegistryCollections = registry.NewRegistry[*mongo.Collection]() // Registry chứa các collections
var RegistryDatabase = registry.NewRegistry[*mongo.Database]()      // Registry chứa các databases
