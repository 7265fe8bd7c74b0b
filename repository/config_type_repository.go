package repository

import (
	"connconfigapi/config"
	"connconfigapi/models"

	"gorm.io/gorm"
)

// ConfigTypeRepository provides data access operations for configuration type records.
type ConfigTypeRepository interface {
	Create(tx *gorm.DB, configType *models.ConfigType) error
	GetByID(tx *gorm.DB, id uint) (*models.ConfigType, error)
	GetByKey(tx *gorm.DB, key string) (*models.ConfigType, error)
	GetByKeyWithFields(tx *gorm.DB, key string) (*models.ConfigType, error)
	GetAll(tx *gorm.DB) ([]models.ConfigType, error)
	CountByKey(tx *gorm.DB, key string) (int64, error)
	DeleteByID(tx *gorm.DB, id uint) error
}

type configTypeRepository struct {
	db *gorm.DB
}

// NewConfigTypeRepository creates a new configuration type repository instance.
func NewConfigTypeRepository() ConfigTypeRepository {
	return &configTypeRepository{
		db: config.DB,
	}
}

func (r *configTypeRepository) Create(tx *gorm.DB, configType *models.ConfigType) error {
	db := tx
	if db == nil {
		db = r.db
	}
	return db.Create(configType).Error
}

func (r *configTypeRepository) GetByID(tx *gorm.DB, id uint) (*models.ConfigType, error) {
	db := tx
	if db == nil {
		db = r.db
	}
	var ct models.ConfigType
	if err := db.Where("id = ?", id).First(&ct).Error; err != nil {
		return nil, err
	}
	return &ct, nil
}

func (r *configTypeRepository) GetByKey(tx *gorm.DB, key string) (*models.ConfigType, error) {
	db := tx
	if db == nil {
		db = r.db
	}
	var ct models.ConfigType
	if err := db.Where("config_key = ?", key).First(&ct).Error; err != nil {
		return nil, err
	}
	return &ct, nil
}

// GetByKeyWithFields loads a configuration type and its fields in insertion
// order. Field id order is the display order contract.
func (r *configTypeRepository) GetByKeyWithFields(tx *gorm.DB, key string) (*models.ConfigType, error) {
	db := tx
	if db == nil {
		db = r.db
	}
	var ct models.ConfigType
	if err := db.Preload("Fields", func(db *gorm.DB) *gorm.DB {
		return db.Order("config_field.id ASC")
	}).Where("config_key = ?", key).First(&ct).Error; err != nil {
		return nil, err
	}
	return &ct, nil
}

func (r *configTypeRepository) GetAll(tx *gorm.DB) ([]models.ConfigType, error) {
	db := tx
	if db == nil {
		db = r.db
	}
	var cts []models.ConfigType
	if err := db.Order("id ASC").Find(&cts).Error; err != nil {
		return nil, err
	}
	return cts, nil
}

func (r *configTypeRepository) CountByKey(tx *gorm.DB, key string) (int64, error) {
	db := tx
	if db == nil {
		db = r.db
	}
	var count int64
	if err := db.Model(&models.ConfigType{}).Where("config_key = ?", key).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *configTypeRepository) DeleteByID(tx *gorm.DB, id uint) error {
	db := tx
	if db == nil {
		db = r.db
	}
	return db.Delete(&models.ConfigType{}, id).Error
}
