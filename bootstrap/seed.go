package bootstrap

import (
	"fmt"

	"connconfigapi/models"
	"connconfigapi/pkg/logger"
	"connconfigapi/repository"

	"gorm.io/datatypes"
)

// seedBlock groups one configuration type with its fields. Each block is
// loaded in its own transaction: either the type and every field land, or
// nothing does. Field slice order defines display order.
type seedBlock struct {
	configType models.ConfigType
	fields     []models.ConfigField
}

// LoadData seeds the five reference configuration types on first start and
// logs the catalog inventory. Blocks whose key already exists are skipped,
// so restarts are no-ops.
func LoadData() error {
	logger.Infof("Starting catalog seed loading...")

	baseRepo := repository.NewBaseRepository()
	typeRepo := repository.NewConfigTypeRepository()
	fieldRepo := repository.NewConfigFieldRepository()

	for _, block := range referenceCatalog() {
		count, err := typeRepo.CountByKey(nil, block.configType.Key)
		if err != nil {
			return fmt.Errorf("failed to check config type %q: %v", block.configType.Key, err)
		}
		if count > 0 {
			logger.Debugf("Config type %q already seeded, skipping", block.configType.Key)
			continue
		}

		tx := baseRepo.Begin()
		if err := typeRepo.Create(tx, &block.configType); err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to seed config type %q: %v", block.configType.Key, err)
		}
		for i := range block.fields {
			block.fields[i].ConfigTypeID = block.configType.ID
			if err := fieldRepo.Create(tx, &block.fields[i]); err != nil {
				tx.Rollback()
				return fmt.Errorf("failed to seed field %q of %q: %v",
					block.fields[i].Name, block.configType.Key, err)
			}
		}
		if err := tx.Commit().Error; err != nil {
			return fmt.Errorf("failed to commit seed block %q: %v", block.configType.Key, err)
		}
		logger.Infof("Seeded config type %q with %d fields", block.configType.Key, len(block.fields))
	}

	types, err := typeRepo.GetAll(nil)
	if err != nil {
		return fmt.Errorf("failed to load config types: %v", err)
	}
	logger.Infof("Catalog seed loading completed, %d config types available", len(types))
	return nil
}

// referenceCatalog returns the fixture describing the five supported data
// sources. This is reference data consumed by form-rendering clients, not an
// illustrative example: names, labels, defaults and attribute payloads are
// load-bearing and locked by the seed tests.
func referenceCatalog() []seedBlock {
	return []seedBlock{
		redshiftBlock(),
		mssqlLocalBlock(),
		azureSQLBlock(),
		fileSystemBlock(),
		sftpBlock(),
	}
}

func redshiftBlock() seedBlock {
	return seedBlock{
		configType: models.ConfigType{
			Key:                "redshift",
			DisplayName:        "Amazon Redshift",
			Icon:               str("redshift.svg"),
			Color:              str("#205b97"),
			Driver:             str("redshift"),
			DefaultPort:        str("5439"),
			ConnectionTemplate: str("redshift://{username}:{password}@{hostname}:{port}/{database}"),
		},
		fields: []models.ConfigField{
			{
				Name: "hostname", Label: "Cluster Endpoint", FieldType: "text", IsRequired: true,
				Attributes: datatypes.JSONMap{
					"placeholder": "examplecluster.abc123xyz789.us-west-2.redshift.amazonaws.com",
				},
			},
			{
				Name: "port", Label: "Port", FieldType: "number", IsRequired: true,
				DefaultValue: str("5439"),
				Attributes:   datatypes.JSONMap{"min": 1150, "max": 65535},
			},
			{
				Name: "database", Label: "Database", FieldType: "text", IsRequired: true,
				Attributes: datatypes.JSONMap{"placeholder": "dev"},
			},
			{Name: "username", Label: "Username", FieldType: "text", IsRequired: true},
			{Name: "password", Label: "Password", FieldType: "password", IsRequired: true},
			{
				Name: "timeout", Label: "Connection Timeout (seconds)", FieldType: "number",
				DefaultValue: str("30"),
				Attributes: datatypes.JSONMap{
					"min":  0,
					"help": "0 disables the connection timeout",
				},
			},
			{
				Name: "sslmode", Label: "SSL Mode", FieldType: "select",
				DefaultValue: str("require"),
				Attributes: datatypes.JSONMap{
					"options": []string{"disable", "allow", "prefer", "require"},
				},
			},
		},
	}
}

func mssqlLocalBlock() seedBlock {
	return seedBlock{
		configType: models.ConfigType{
			Key:                "mssql_local",
			DisplayName:        "SQL Server",
			Icon:               str("sqlserver.svg"),
			Color:              str("#a91d22"),
			Driver:             str("sqlserver"),
			DefaultPort:        str("1433"),
			ConnectionTemplate: str("sqlserver://{username}:{password}@{hostname}:{port}?database={database}"),
		},
		fields: []models.ConfigField{
			{Name: "hostname", Label: "Host", FieldType: "text", IsRequired: true},
			{
				Name: "port", Label: "Port", FieldType: "number", IsRequired: true,
				DefaultValue: str("1433"),
				Attributes:   datatypes.JSONMap{"min": 1, "max": 65535},
			},
			{
				Name: "instance", Label: "Instance Name", FieldType: "text",
				Attributes: datatypes.JSONMap{
					"placeholder": "SQLEXPRESS",
					"help":        "Leave empty to connect to the default instance",
				},
			},
			{Name: "database", Label: "Database", FieldType: "text", IsRequired: true},
			{Name: "username", Label: "Username", FieldType: "text", IsRequired: true},
			{Name: "password", Label: "Password", FieldType: "password", IsRequired: true},
			{
				Name: "encrypt", Label: "Encrypt Connection", FieldType: "checkbox",
				DefaultValue: str("false"),
			},
		},
	}
}

func azureSQLBlock() seedBlock {
	return seedBlock{
		configType: models.ConfigType{
			Key:                "azure_sql",
			DisplayName:        "Azure SQL Database",
			Icon:               str("azuresql.svg"),
			Color:              str("#0089d6"),
			Driver:             str("sqlserver"),
			DefaultPort:        str("1433"),
			ConnectionTemplate: str("sqlserver://{username}:{password}@{hostname}:{port}?database={database}&encrypt=true"),
		},
		fields: []models.ConfigField{
			{
				Name: "hostname", Label: "Server Name", FieldType: "text", IsRequired: true,
				Attributes: datatypes.JSONMap{"placeholder": "myserver.database.windows.net"},
			},
			{
				Name: "port", Label: "Port", FieldType: "number", IsRequired: true,
				DefaultValue: str("1433"),
				Attributes:   datatypes.JSONMap{"min": 1, "max": 65535},
			},
			{Name: "database", Label: "Database", FieldType: "text", IsRequired: true},
			{
				Name: "username", Label: "Username", FieldType: "text", IsRequired: true,
				Attributes: datatypes.JSONMap{"placeholder": "user@myserver"},
			},
			{Name: "password", Label: "Password", FieldType: "password", IsRequired: true},
			{
				Name: "authentication", Label: "Authentication Method", FieldType: "select",
				DefaultValue: str("sql_password"),
				Attributes: datatypes.JSONMap{
					"options": []string{"sql_password", "active_directory_password"},
				},
			},
		},
	}
}

func fileSystemBlock() seedBlock {
	return seedBlock{
		configType: models.ConfigType{
			Key:                "file_system",
			DisplayName:        "File System",
			Icon:               str("folder.svg"),
			Color:              str("#f5a623"),
			ConnectionTemplate: str("file://{path}"),
			ExtraProperties: datatypes.JSONMap{
				"fileTypes": []string{"txt", "csv", "parquet"},
			},
		},
		fields: []models.ConfigField{
			{
				Name: "path", Label: "Directory Path", FieldType: "text", IsRequired: true,
				Attributes: datatypes.JSONMap{"placeholder": "/data/input"},
			},
			{
				Name: "file_pattern", Label: "File Pattern", FieldType: "text",
				DefaultValue: str("*"),
				Attributes:   datatypes.JSONMap{"help": "Glob pattern matched against file names"},
			},
			{
				Name: "recursive", Label: "Include Subdirectories", FieldType: "checkbox",
				DefaultValue: str("false"),
			},
			{
				Name: "encoding", Label: "File Encoding", FieldType: "select",
				DefaultValue: str("utf-8"),
				Attributes: datatypes.JSONMap{
					"options": []string{"utf-8", "utf-16", "latin-1"},
				},
			},
		},
	}
}

func sftpBlock() seedBlock {
	return seedBlock{
		configType: models.ConfigType{
			Key:                "sftp",
			DisplayName:        "SFTP",
			Icon:               str("sftp.svg"),
			Color:              str("#4a90d9"),
			DefaultPort:        str("22"),
			ConnectionTemplate: str("sftp://{username}@{hostname}:{port}/{remote_path}"),
		},
		fields: []models.ConfigField{
			{Name: "hostname", Label: "Host", FieldType: "text", IsRequired: true},
			{
				Name: "port", Label: "Port", FieldType: "number", IsRequired: true,
				DefaultValue: str("22"),
				Attributes:   datatypes.JSONMap{"min": 1, "max": 65535},
			},
			{Name: "username", Label: "Username", FieldType: "text", IsRequired: true},
			{
				Name: "password", Label: "Password", FieldType: "password",
				Attributes: datatypes.JSONMap{"help": "Leave empty when authenticating with a private key"},
			},
			{
				Name: "private_key", Label: "Private Key", FieldType: "textarea",
				Attributes: datatypes.JSONMap{"help": "PEM-encoded private key"},
			},
			{
				Name: "remote_path", Label: "Remote Path", FieldType: "text",
				DefaultValue: str("/"),
			},
		},
	}
}

func str(s string) *string {
	return &s
}
