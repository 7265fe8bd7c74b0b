package config

import (
	"fmt"

	"connconfigapi/models"
	"connconfigapi/pkg/logger"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// DB is the global GORM database instance used throughout the application.
var DB *gorm.DB

// ConnectDB establishes database connection using GORM with configured MySQL credentials.
func ConnectDB() error {
	logger.Infof("Connecting to database %s@%s:%d/%s", Cfg.DBUser, Cfg.DBHost, Cfg.DBPort, Cfg.DBName)

	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		Cfg.DBUser,
		Cfg.DBPass,
		Cfg.DBHost,
		Cfg.DBPort,
		Cfg.DBName,
	)
	return ConnectDSN(dsn)
}

// ConnectDSN opens a GORM connection against an explicit MySQL DSN.
// Used directly by embedded mode and tests, where the address is dynamic.
func ConnectDSN(dsn string) error {
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		logger.Errorf("GORM connection failed: %v", err)
		return err
	}
	logger.Infof("GORM connected successfully")

	DB = db
	return nil
}

// MigrateDB creates or updates the catalog tables from the model definitions.
// Model tags are the single source of truth for column sizes, nullability,
// the unique key index and the ON DELETE CASCADE foreign key.
func MigrateDB() error {
	if DB == nil {
		return fmt.Errorf("database is not connected")
	}
	if err := DB.AutoMigrate(&models.ConfigType{}, &models.ConfigField{}); err != nil {
		logger.Errorf("Schema migration failed: %v", err)
		return err
	}
	logger.Infof("Schema migration completed")
	return nil
}
