package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"connconfigapi/config"
	"connconfigapi/models"
	"connconfigapi/services"
	"connconfigapi/services/embedded"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testRouter *gin.Engine

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)

	srv, err := embedded.Start(context.Background(), "connconfig_http_test")
	if err != nil {
		log.Fatalf("embedded server: %v", err)
	}
	if err := config.ConnectDSN(srv.DSN()); err != nil {
		log.Fatalf("connect: %v", err)
	}
	if err := config.MigrateDB(); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	SetCatalogService(services.NewCatalogService())

	testRouter = gin.New()
	v1 := testRouter.Group("/api")
	RegisterCatalogRoutes(v1)

	code := m.Run()
	srv.Close()
	os.Exit(code)
}

func doRequest(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	testRouter.ServeHTTP(w, req)
	return w
}

func createTypeViaAPI(t *testing.T, key string) uint {
	t.Helper()
	w := doRequest(t, http.MethodPost, "/api/catalog/types", models.ConfigType{
		Key:         key,
		DisplayName: "Type " + key,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp struct {
		ID uint `json:"id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotZero(t, resp.ID)
	return resp.ID
}

func TestCreateConfigTypeEndpoint(t *testing.T) {
	id := createTypeViaAPI(t, "http_create")

	w := doRequest(t, http.MethodGet, "/api/catalog/types/http_create", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var ct models.ConfigType
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &ct))
	assert.Equal(t, id, ct.ID)
	assert.Equal(t, "http_create", ct.Key)
}

func TestCreateConfigTypeEndpoint_DuplicateKeyConflict(t *testing.T) {
	createTypeViaAPI(t, "http_dup")

	w := doRequest(t, http.MethodPost, "/api/catalog/types", models.ConfigType{
		Key:         "http_dup",
		DisplayName: "Second",
	})
	assert.Equal(t, http.StatusConflict, w.Code, w.Body.String())
}

func TestCreateConfigTypeEndpoint_InvalidBody(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/catalog/types", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	testRouter.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetConfigTypeEndpoint_UnknownKey(t *testing.T) {
	w := doRequest(t, http.MethodGet, "/api/catalog/types/no_such_key", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAddFieldEndpoint_OrderAndLookup(t *testing.T) {
	id := createTypeViaAPI(t, "http_fields")

	for _, name := range []string{"hostname", "port"} {
		w := doRequest(t, http.MethodPost, fmt.Sprintf("/api/catalog/types/%d/fields", id), models.ConfigField{
			Name:      name,
			Label:     name,
			FieldType: "text",
		})
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	}

	w := doRequest(t, http.MethodGet, "/api/catalog/types/http_fields", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var ct models.ConfigType
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &ct))
	require.Len(t, ct.Fields, 2)
	assert.Equal(t, "hostname", ct.Fields[0].Name)
	assert.Equal(t, "port", ct.Fields[1].Name)

	fieldURL := fmt.Sprintf("/api/catalog/fields/%d", ct.Fields[0].ID)
	w = doRequest(t, http.MethodGet, fieldURL, nil)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestAddFieldEndpoint_UnknownTypeNotFound(t *testing.T) {
	w := doRequest(t, http.MethodPost, "/api/catalog/types/999999/fields", models.ConfigField{
		Name:      "hostname",
		Label:     "Host",
		FieldType: "text",
	})
	assert.Equal(t, http.StatusNotFound, w.Code, w.Body.String())
}

func TestDeleteConfigTypeEndpoint_Cascades(t *testing.T) {
	id := createTypeViaAPI(t, "http_delete")

	w := doRequest(t, http.MethodPost, fmt.Sprintf("/api/catalog/types/%d/fields", id), models.ConfigField{
		Name: "hostname", Label: "Host", FieldType: "text",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var created struct {
		ID uint `json:"id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	w = doRequest(t, http.MethodDelete, fmt.Sprintf("/api/catalog/types/%d", id), nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = doRequest(t, http.MethodGet, "/api/catalog/types/http_delete", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doRequest(t, http.MethodGet, fmt.Sprintf("/api/catalog/fields/%d", created.ID), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteConfigTypeEndpoint_UnknownID(t *testing.T) {
	w := doRequest(t, http.MethodDelete, "/api/catalog/types/999999", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListConfigTypesEndpoint(t *testing.T) {
	createTypeViaAPI(t, "http_list_a")
	createTypeViaAPI(t, "http_list_b")

	w := doRequest(t, http.MethodGet, "/api/catalog/types", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		ConfigTypes []models.ConfigType `json:"config_types"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	keys := map[string]bool{}
	for _, ct := range resp.ConfigTypes {
		keys[ct.Key] = true
		assert.Empty(t, ct.Fields, "summaries must not include fields")
	}
	assert.True(t, keys["http_list_a"])
	assert.True(t, keys["http_list_b"])
}
