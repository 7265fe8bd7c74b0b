package models

import "gorm.io/datatypes"

// ConfigField represents one user-facing form input belonging to a ConfigType.
// Name is the placeholder key used inside the owning type's connection
// template; it is unique within the owning type (composite index with the
// foreign key). Attributes carries open-ended rendering metadata (placeholder
// text, help text, numeric bounds, option lists) opaque to the store.
type ConfigField struct {
	ID           uint              `gorm:"primaryKey;column:id" json:"id"`
	ConfigTypeID uint              `gorm:"column:config_type_id;not null;uniqueIndex:idx_config_field_type_name" json:"config_type_id"`
	Name         string            `gorm:"column:name;size:100;not null;uniqueIndex:idx_config_field_type_name" json:"name" validate:"required,max=100"`
	Label        string            `gorm:"column:label;size:255;not null" json:"label" validate:"required,max=255"`
	FieldType    string            `gorm:"column:field_type;size:50;not null" json:"field_type" validate:"required,max=50"` // text, number, password, select, checkbox, textarea by convention
	IsRequired   bool              `gorm:"column:is_required;default:false" json:"is_required"`
	DefaultValue *string           `gorm:"column:default_value;size:255" json:"default_value,omitempty"`
	Attributes   datatypes.JSONMap `gorm:"column:attributes" json:"attributes,omitempty"`
}

// TableName specifies the static table name for GORM.
// Required to override GORM's default pluralization behavior.
func (ConfigField) TableName() string {
	return "config_field"
}
