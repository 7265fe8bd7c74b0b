package bootstrap

import (
	"context"
	"log"
	"os"
	"testing"

	"connconfigapi/config"
	"connconfigapi/models"
	"connconfigapi/repository"
	"connconfigapi/services/embedded"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	srv, err := embedded.Start(context.Background(), "connconfig_seed_test")
	if err != nil {
		log.Fatalf("embedded server: %v", err)
	}
	if err := config.ConnectDSN(srv.DSN()); err != nil {
		log.Fatalf("connect: %v", err)
	}
	if err := config.MigrateDB(); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	code := m.Run()
	srv.Close()
	os.Exit(code)
}

func TestLoadData_SeedsFiveReferenceTypes(t *testing.T) {
	require.NoError(t, LoadData())

	typeRepo := repository.NewConfigTypeRepository()
	types, err := typeRepo.GetAll(nil)
	require.NoError(t, err)
	require.Len(t, types, 5)

	keys := make([]string, 0, len(types))
	for _, ct := range types {
		keys = append(keys, ct.Key)
	}
	assert.ElementsMatch(t, []string{"redshift", "mssql_local", "azure_sql", "file_system", "sftp"}, keys)
}

func TestLoadData_Idempotent(t *testing.T) {
	require.NoError(t, LoadData())
	require.NoError(t, LoadData())

	typeRepo := repository.NewConfigTypeRepository()
	types, err := typeRepo.GetAll(nil)
	require.NoError(t, err)
	assert.Len(t, types, 5)
}

func TestSeededRedshift_FieldSet(t *testing.T) {
	require.NoError(t, LoadData())

	typeRepo := repository.NewConfigTypeRepository()
	ct, err := typeRepo.GetByKeyWithFields(nil, "redshift")
	require.NoError(t, err)

	require.NotNil(t, ct.Driver)
	assert.Equal(t, "redshift", *ct.Driver)
	require.NotNil(t, ct.DefaultPort)
	assert.Equal(t, "5439", *ct.DefaultPort)

	require.Len(t, ct.Fields, 7)
	wantOrder := []string{"hostname", "port", "database", "username", "password", "timeout", "sslmode"}
	for i, field := range ct.Fields {
		assert.Equal(t, wantOrder[i], field.Name)
	}

	var sslmode *models.ConfigField
	for i := range ct.Fields {
		if ct.Fields[i].Name == "sslmode" {
			sslmode = &ct.Fields[i]
		}
	}
	require.NotNil(t, sslmode)
	assert.Equal(t, "select", sslmode.FieldType)
	require.NotNil(t, sslmode.DefaultValue)
	assert.Equal(t, "require", *sslmode.DefaultValue)

	options, ok := sslmode.Attributes["options"].([]interface{})
	require.True(t, ok, "sslmode options should be a JSON array")
	require.Len(t, options, 4)
	got := make([]string, 0, len(options))
	for _, opt := range options {
		s, ok := opt.(string)
		require.True(t, ok)
		got = append(got, s)
	}
	assert.ElementsMatch(t, []string{"disable", "allow", "prefer", "require"}, got)
}

func TestSeededFileSystem_NoDriverWithFileTypes(t *testing.T) {
	require.NoError(t, LoadData())

	typeRepo := repository.NewConfigTypeRepository()
	ct, err := typeRepo.GetByKeyWithFields(nil, "file_system")
	require.NoError(t, err)

	assert.Nil(t, ct.Driver)
	assert.Nil(t, ct.DefaultPort)

	require.NotNil(t, ct.ExtraProperties)
	fileTypes, ok := ct.ExtraProperties["fileTypes"].([]interface{})
	require.True(t, ok, "fileTypes should be a JSON array")
	got := make([]string, 0, len(fileTypes))
	for _, ft := range fileTypes {
		s, ok := ft.(string)
		require.True(t, ok)
		got = append(got, s)
	}
	assert.ElementsMatch(t, []string{"txt", "csv", "parquet"}, got)
}

func TestSeededTypes_RequiredFlagsAndTemplates(t *testing.T) {
	require.NoError(t, LoadData())

	typeRepo := repository.NewConfigTypeRepository()

	sftp, err := typeRepo.GetByKeyWithFields(nil, "sftp")
	require.NoError(t, err)
	assert.Nil(t, sftp.Driver)
	require.NotNil(t, sftp.DefaultPort)
	assert.Equal(t, "22", *sftp.DefaultPort)
	require.NotNil(t, sftp.ConnectionTemplate)
	assert.Contains(t, *sftp.ConnectionTemplate, "{hostname}")

	byName := map[string]models.ConfigField{}
	for _, field := range sftp.Fields {
		byName[field.Name] = field
	}
	assert.True(t, byName["hostname"].IsRequired)
	assert.True(t, byName["username"].IsRequired)
	assert.False(t, byName["password"].IsRequired, "password is optional when a private key is used")
	assert.False(t, byName["private_key"].IsRequired)

	for _, key := range []string{"mssql_local", "azure_sql"} {
		ct, err := typeRepo.GetByKeyWithFields(nil, key)
		require.NoError(t, err)
		require.NotNil(t, ct.Driver, key)
		assert.Equal(t, "sqlserver", *ct.Driver, key)
		require.NotNil(t, ct.DefaultPort, key)
		assert.Equal(t, "1433", *ct.DefaultPort, key)
		require.NotNil(t, ct.ConnectionTemplate, key)
		assert.Contains(t, *ct.ConnectionTemplate, "sqlserver://", key)
	}
}
