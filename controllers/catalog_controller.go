package controllers

import (
	"fmt"
	"net/http"
	"strconv"

	"connconfigapi/models"
	"connconfigapi/pkg/apperrors"
	"connconfigapi/pkg/logger"
	"connconfigapi/services"
	"connconfigapi/utils"

	"github.com/gin-gonic/gin"
)

var catalogSrv services.CatalogService

// SetCatalogService initializes the catalog service instance.
// Used for dependency injection in tests to provide mock implementations.
func SetCatalogService(s services.CatalogService) {
	catalogSrv = s
}

// ListConfigTypes lists all configuration types
// @Summary List configuration types
// @Description Returns all configuration type summaries without fields, ordered by id
// @Tags Catalog
// @Produce json
// @Success 200 {object} ConfigTypeListResponse "Configuration types"
// @Failure 500 {object} StandardErrorResponse "Internal server error"
// @Router /api/catalog/types [get]
func listConfigTypes(c *gin.Context) {
	types, err := catalogSrv.ListConfigTypes(c.Request.Context())
	if err != nil {
		logger.Errorf("Failed to list config types: %v", err)
		utils.ErrorResponse(c, err)
		return
	}
	utils.JSONResponse(c, http.StatusOK, gin.H{
		"config_types": types,
	})
}

// GetConfigType returns one configuration type with its fields
// @Summary Get configuration type by key
// @Description Returns the configuration type identified by its stable key, fields in insertion order
// @Tags Catalog
// @Produce json
// @Param key path string true "Configuration type key"
// @Success 200 {object} models.ConfigType "Configuration type with fields"
// @Failure 404 {object} StandardErrorResponse "Configuration type not found"
// @Router /api/catalog/types/{key} [get]
func getConfigType(c *gin.Context) {
	key := c.Param("key")

	ct, err := catalogSrv.GetConfigType(c.Request.Context(), key)
	if err != nil {
		logger.Errorf("Failed to get config type %q: %v", key, err)
		utils.ErrorResponse(c, err)
		return
	}
	utils.JSONResponse(c, http.StatusOK, ct)
}

// CreateConfigType registers a new configuration type
// @Summary Create configuration type
// @Description Creates a new configuration type; the key must be unique
// @Tags Catalog
// @Accept json
// @Produce json
// @Param config_type body models.ConfigType true "Configuration type object"
// @Success 201 {object} CreatedResponse "Configuration type created"
// @Failure 400 {object} StandardErrorResponse "Invalid request body or validation error"
// @Failure 409 {object} StandardErrorResponse "Key already exists"
// @Router /api/catalog/types [post]
func createConfigType(c *gin.Context) {
	var data models.ConfigType
	if err := c.ShouldBindJSON(&data); err != nil {
		utils.ErrorResponse(c, fmt.Errorf("%w: %v", apperrors.ErrConstraintViolation, err))
		return
	}

	logger.Debugf("Creating config type: %s", data.Key)
	newObj, err := catalogSrv.CreateConfigType(c.Request.Context(), data)
	if err != nil {
		logger.Errorf("Failed to create config type %q: %v", data.Key, err)
		utils.ErrorResponse(c, err)
		return
	}
	logger.Infof("Successfully created config type %q with ID: %d", newObj.Key, newObj.ID)
	utils.JSONResponse(c, http.StatusCreated, gin.H{
		"message": "Config type was created successfully",
		"id":      newObj.ID,
	})
}

// AddConfigField appends a field to a configuration type
// @Summary Add configuration field
// @Description Adds a form field to an existing configuration type
// @Tags Catalog
// @Accept json
// @Produce json
// @Param id path int true "Configuration type ID"
// @Param field body models.ConfigField true "Configuration field object"
// @Success 201 {object} CreatedResponse "Field created"
// @Failure 400 {object} StandardErrorResponse "Invalid request body or validation error"
// @Failure 404 {object} StandardErrorResponse "Configuration type not found"
// @Failure 409 {object} StandardErrorResponse "Field name already used within this type"
// @Router /api/catalog/types/{id}/fields [post]
func addConfigField(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 0 {
		utils.ErrorResponse(c, fmt.Errorf("%w: invalid config type id %q", apperrors.ErrConstraintViolation, c.Param("id")))
		return
	}

	var data models.ConfigField
	if err := c.ShouldBindJSON(&data); err != nil {
		utils.ErrorResponse(c, fmt.Errorf("%w: %v", apperrors.ErrConstraintViolation, err))
		return
	}

	logger.Debugf("Adding field %q to config type id=%d", data.Name, id)
	newObj, err := catalogSrv.AddField(c.Request.Context(), utils.MustIntToUint(id), data)
	if err != nil {
		logger.Errorf("Failed to add field %q to config type id=%d: %v", data.Name, id, err)
		utils.ErrorResponse(c, err)
		return
	}
	logger.Infof("Successfully added field %q with ID: %d", newObj.Name, newObj.ID)
	utils.JSONResponse(c, http.StatusCreated, gin.H{
		"message": "Config field was created successfully",
		"id":      newObj.ID,
	})
}

// GetConfigField returns a single field by id
// @Summary Get configuration field
// @Description Returns a single configuration field by its numeric id
// @Tags Catalog
// @Produce json
// @Param id path int true "Configuration field ID"
// @Success 200 {object} models.ConfigField "Configuration field"
// @Failure 404 {object} StandardErrorResponse "Field not found"
// @Router /api/catalog/fields/{id} [get]
func getConfigField(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 0 {
		utils.ErrorResponse(c, fmt.Errorf("%w: invalid config field id %q", apperrors.ErrConstraintViolation, c.Param("id")))
		return
	}

	field, err := catalogSrv.GetField(c.Request.Context(), utils.MustIntToUint(id))
	if err != nil {
		logger.Errorf("Failed to get config field id=%d: %v", id, err)
		utils.ErrorResponse(c, err)
		return
	}
	utils.JSONResponse(c, http.StatusOK, field)
}

// DeleteConfigType deletes a configuration type and its fields
// @Summary Delete configuration type
// @Description Deletes a configuration type; all its fields are removed by cascade
// @Tags Catalog
// @Produce json
// @Param id path int true "Configuration type ID"
// @Success 200 {object} MessageResponse "Configuration type deleted"
// @Failure 404 {object} StandardErrorResponse "Configuration type not found"
// @Router /api/catalog/types/{id} [delete]
func deleteConfigType(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 0 {
		utils.ErrorResponse(c, fmt.Errorf("%w: invalid config type id %q", apperrors.ErrConstraintViolation, c.Param("id")))
		return
	}

	logger.Debugf("Deleting config type with ID: %d", id)
	if err := catalogSrv.DeleteConfigType(c.Request.Context(), utils.MustIntToUint(id)); err != nil {
		logger.Errorf("Failed to delete config type with ID %d: %v", id, err)
		utils.ErrorResponse(c, err)
		return
	}
	logger.Infof("Successfully deleted config type with ID: %d", id)
	utils.JSONResponse(c, http.StatusOK, gin.H{
		"message": "Config type was deleted successfully",
	})
}

// RegisterCatalogRoutes registers HTTP endpoints for catalog operations.
func RegisterCatalogRoutes(rg *gin.RouterGroup) {
	catalog := rg.Group("/catalog")
	{
		catalog.GET("/types", listConfigTypes)
		catalog.POST("/types", createConfigType)
		catalog.GET("/types/:key", getConfigType)
		catalog.POST("/types/:id/fields", addConfigField)
		catalog.DELETE("/types/:id", deleteConfigType)
		catalog.GET("/fields/:id", getConfigField)
	}
}
