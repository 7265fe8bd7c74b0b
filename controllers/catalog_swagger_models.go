package controllers

import "connconfigapi/models"

// ConfigTypeListResponse represents the list of configuration type summaries
type ConfigTypeListResponse struct {
	ConfigTypes []models.ConfigType `json:"config_types"`
}

// CreatedResponse represents a successful create response
type CreatedResponse struct {
	Message string `json:"message" example:"Config type was created successfully"`
	ID      uint   `json:"id" example:"1"`
}

// MessageResponse represents a plain confirmation response
type MessageResponse struct {
	Message string `json:"message" example:"Config type was deleted successfully"`
}

// StandardErrorResponse represents a standardized error response
type StandardErrorResponse struct {
	Error string `json:"error" example:"config type \"redshift\" already exists: duplicate key"`
}
