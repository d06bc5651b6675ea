package main

import (
	"github.com/Whointhefkisthatguy/trade-up/config"
	"github.com/Whointhefkisthatguy/trade-up/internal/global"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
)

func InitRegistry() {
	// Khởi tạo registry và đăng ký các collections
	err := InitCollections(global.MongoDB_Session, global.MongoDB_ServerConfig)
	if err != nil {
		logrus.Fatalf("Failed to initialize collections: %v", err)
	}
	logrus.Info("Initialized collection registry")
}

// InitCollections khởi tạo và đăng ký các collections MongoDB
func InitCollections(client *mongo.Client, cfg *config.Configuration) error {
	db := client.Database(cfg.MongoDB_DBName)
	colNames := []string{
		global.MongoDB_ColNames.Assets,
		global.MongoDB_ColNames.Contacts,
		global.MongoDB_ColNames.Organizations,
		global.MongoDB_ColNames.AnalysisRules,
		global.MongoDB_ColNames.EquityAnalyses,
		global.MongoDB_ColNames.PipelineStages,
		global.MongoDB_ColNames.PipelineRecords,
		global.MongoDB_ColNames.DealSheets,
		global.MongoDB_ColNames.ClientOfferTokens,
	}

	for _, name := range colNames {
		registered, err := global.RegistryCollections.Register(name, db.Collection(name))
		if err != nil {
			logrus.Errorf("Failed to register collection %s: %v", name, err)
			return err
		}

		if registered {
			logrus.Infof("Collection %s registered successfully", name)
		} else {
			logrus.Errorf("Collection %s already registered", name)
		}
	}

	return nil
}
