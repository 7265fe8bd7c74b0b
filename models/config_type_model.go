package models

import "gorm.io/datatypes"

// ConfigType represents one kind of connectable data source and its
// connection metadata template. Key is the stable external identifier;
// consumers look types up by key, never by numeric ID.
// ConnectionTemplate holds {placeholder} names interpolated by consumers,
// it is never evaluated here.
type ConfigType struct {
	ID                 uint              `gorm:"primaryKey;column:id" json:"id"`
	Key                string            `gorm:"column:config_key;size:50;not null;uniqueIndex" json:"key" validate:"required,max=50"`
	DisplayName        string            `gorm:"column:display_name;size:100;not null" json:"display_name" validate:"required,max=100"`
	Icon               *string           `gorm:"column:icon;size:100" json:"icon,omitempty"`
	Color              *string           `gorm:"column:color;size:20" json:"color,omitempty"`
	Driver             *string           `gorm:"column:driver;size:100" json:"driver,omitempty"` // nil for non-driver sources (file_system, sftp)
	DefaultPort        *string           `gorm:"column:default_port;size:10" json:"default_port,omitempty"`
	ConnectionTemplate *string           `gorm:"column:connection_template;type:text" json:"connection_template,omitempty"`
	ExtraProperties    datatypes.JSONMap `gorm:"column:extra_properties" json:"extra_properties,omitempty"`

	// Field order is insertion order; reads always sort by id.
	Fields []ConfigField `gorm:"foreignKey:ConfigTypeID;constraint:OnDelete:CASCADE" json:"fields,omitempty"`
}

// TableName specifies the static table name for GORM.
// Required to override GORM's default pluralization behavior.
func (ConfigType) TableName() string {
	return "config_type"
}
