package repository

import (
	"connconfigapi/config"
	"connconfigapi/models"

	"gorm.io/gorm"
)

// ConfigFieldRepository provides data access operations for configuration field records.
type ConfigFieldRepository interface {
	Create(tx *gorm.DB, field *models.ConfigField) error
	GetByID(tx *gorm.DB, id uint) (*models.ConfigField, error)
	GetByConfigTypeID(tx *gorm.DB, configTypeID uint) ([]models.ConfigField, error)
	CountByConfigTypeIDAndName(tx *gorm.DB, configTypeID uint, name string) (int64, error)
}

type configFieldRepository struct {
	db *gorm.DB
}

// NewConfigFieldRepository creates a new configuration field repository instance.
func NewConfigFieldRepository() ConfigFieldRepository {
	return &configFieldRepository{
		db: config.DB,
	}
}

func (r *configFieldRepository) Create(tx *gorm.DB, field *models.ConfigField) error {
	db := tx
	if db == nil {
		db = r.db
	}
	return db.Create(field).Error
}

func (r *configFieldRepository) GetByID(tx *gorm.DB, id uint) (*models.ConfigField, error) {
	db := tx
	if db == nil {
		db = r.db
	}
	var field models.ConfigField
	if err := db.Where("id = ?", id).First(&field).Error; err != nil {
		return nil, err
	}
	return &field, nil
}

func (r *configFieldRepository) GetByConfigTypeID(tx *gorm.DB, configTypeID uint) ([]models.ConfigField, error) {
	db := tx
	if db == nil {
		db = r.db
	}
	var fields []models.ConfigField
	if err := db.Where("config_type_id = ?", configTypeID).Order("id ASC").Find(&fields).Error; err != nil {
		return nil, err
	}
	return fields, nil
}

func (r *configFieldRepository) CountByConfigTypeIDAndName(tx *gorm.DB, configTypeID uint, name string) (int64, error) {
	db := tx
	if db == nil {
		db = r.db
	}
	var count int64
	if err := db.Model(&models.ConfigField{}).
		Where("config_type_id = ? AND name = ?", configTypeID, name).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
