package main

import (
	"context"

	"github.com/Whointhefkisthatguy/trade-up/config"
	dealmodels "github.com/Whointhefkisthatguy/trade-up/internal/api/deal/models"
	dmsmodels "github.com/Whointhefkisthatguy/trade-up/internal/api/dms/models"
	equitymodels "github.com/Whointhefkisthatguy/trade-up/internal/api/equity/models"
	pipelinemodels "github.com/Whointhefkisthatguy/trade-up/internal/api/pipeline/models"
	"github.com/Whointhefkisthatguy/trade-up/internal/database"
	"github.com/Whointhefkisthatguy/trade-up/internal/global"

	"github.com/sirupsen/logrus"
)

// Hàm khởi tạo các biến toàn cục
func InitGlobal() {
	initColNames()         // Khởi tạo tên các collection trong database
	initValidator()        // Khởi tạo validator
	initConfig()           // Khởi tạo cấu hình server
	initDatabase_MongoDB() // Khởi tạo kết nối database
}

// Hàm khởi tạo tên các collection trong database
func initColNames() {
	global.MongoDB_ColNames.Assets = "assets"
	global.MongoDB_ColNames.Contacts = "contacts"
	global.MongoDB_ColNames.Organizations = "organizations"
	global.MongoDB_ColNames.AnalysisRules = "analysis_rules"
	global.MongoDB_ColNames.EquityAnalyses = "equity_analyses"
	global.MongoDB_ColNames.PipelineStages = "pipeline_stages"
	global.MongoDB_ColNames.PipelineRecords = "pipeline_records"
	global.MongoDB_ColNames.DealSheets = "deal_sheets"
	global.MongoDB_ColNames.ClientOfferTokens = "client_offer_tokens"

	logrus.Info("Initialized collection names") // Ghi log thông báo đã khởi tạo tên các collection
}

// Hàm khởi tạo validator (dùng global.InitValidator để đăng ký custom validators: no_xss, vin, ...)
func initValidator() {
	global.InitValidator()
	logrus.Info("Initialized validator") // Ghi log thông báo đã khởi tạo validator
}

// Hàm khởi tạo cấu hình server
func initConfig() {
	global.MongoDB_ServerConfig = config.NewConfig()
	if global.MongoDB_ServerConfig == nil {
		logrus.Fatalf("Failed to initialize config: config is nil") // Ghi log lỗi nếu khởi tạo cấu hình thất bại
	}
	logrus.Info("Initialized server config") // Ghi log thông báo đã khởi tạo cấu hình server
}

// Hàm khởi tạo kết nối database
func initDatabase_MongoDB() {
	var err error
	global.MongoDB_Session, err = database.GetInstance(global.MongoDB_ServerConfig)
	if err != nil {
		logrus.Fatalf("Failed to get database instance: %v", err) // Ghi log lỗi nếu kết nối database thất bại
	}
	logrus.Info("Connected to MongoDB") // Ghi log thông báo đã kết nối database thành công

	// Khởi tạo các db và collections nếu chưa có
	database.EnsureDatabaseAndCollections(global.MongoDB_Session)
	logrus.Info("Ensured database and collections") // Ghi log thông báo đã đảm bảo database và các collection

	// Khởi tạo các index cho các collection
	dbName := global.MongoDB_ServerConfig.MongoDB_DBName
	db := global.MongoDB_Session.Database(dbName)
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.Assets), dmsmodels.Asset{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.Contacts), dmsmodels.Contact{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.Organizations), dmsmodels.Organization{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.AnalysisRules), dmsmodels.AnalysisRule{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.EquityAnalyses), equitymodels.EquityAnalysis{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.PipelineStages), pipelinemodels.PipelineStage{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.PipelineRecords), pipelinemodels.PipelineRecord{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.DealSheets), dealmodels.DealSheet{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.ClientOfferTokens), dealmodels.ClientOfferToken{})

	// Các index compound nhiều field không tả được bằng tag
	if err := database.CreateEquityAdditionalIndexes(context.TODO(), db); err != nil {
		logrus.Errorf("Failed to create additional indexes: %v", err)
	}
}
