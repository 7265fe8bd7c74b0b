package services

import (
	"context"
	"fmt"

	"connconfigapi/models"
	"connconfigapi/pkg/apperrors"
	"connconfigapi/pkg/logger"
	"connconfigapi/repository"
	"connconfigapi/utils"
)

// CatalogService provides business logic for the configuration catalog:
// the set of supported data-source configuration types and the form fields
// each one exposes. Catalog entries are effectively immutable once created;
// there are no update operations.
type CatalogService interface {
	// CreateConfigType registers a new configuration type.
	// Returns apperrors.ErrDuplicateKey if the key is already taken.
	CreateConfigType(ctx context.Context, data models.ConfigType) (*models.ConfigType, error)

	// AddField appends a form field to an existing configuration type.
	// Returns apperrors.ErrNotFound if the type does not exist and
	// apperrors.ErrDuplicateKey if the field name is already used within it.
	// No record is created on failure.
	AddField(ctx context.Context, configTypeID uint, data models.ConfigField) (*models.ConfigField, error)

	// GetConfigType returns the type identified by its stable key together
	// with its fields in insertion order.
	GetConfigType(ctx context.Context, key string) (*models.ConfigType, error)

	// GetField returns a single field by id.
	GetField(ctx context.Context, id uint) (*models.ConfigField, error)

	// ListConfigTypes returns all type summaries (without fields) ordered by
	// id ascending.
	ListConfigTypes(ctx context.Context) ([]models.ConfigType, error)

	// DeleteConfigType removes a type and, through the cascade constraint,
	// every field it owns. Deleting an unknown id returns apperrors.ErrNotFound.
	DeleteConfigType(ctx context.Context, id uint) error
}

type catalogService struct {
	baseRepo  repository.BaseRepository
	typeRepo  repository.ConfigTypeRepository
	fieldRepo repository.ConfigFieldRepository
}

// NewCatalogService creates a new catalog service instance.
func NewCatalogService() CatalogService {
	return &catalogService{
		baseRepo:  repository.NewBaseRepository(),
		typeRepo:  repository.NewConfigTypeRepository(),
		fieldRepo: repository.NewConfigFieldRepository(),
	}
}

// NewCatalogServiceWithDeps creates a service instance with injected dependencies.
// Used for testing to provide mock implementations of repositories.
func NewCatalogServiceWithDeps(
	baseRepo repository.BaseRepository,
	typeRepo repository.ConfigTypeRepository,
	fieldRepo repository.ConfigFieldRepository,
) CatalogService {
	return &catalogService{
		baseRepo:  baseRepo,
		typeRepo:  typeRepo,
		fieldRepo: fieldRepo,
	}
}

func (s *catalogService) CreateConfigType(ctx context.Context, data models.ConfigType) (*models.ConfigType, error) {
	if err := utils.ValidateStruct(&data); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrConstraintViolation, err)
	}

	tx := s.baseRepo.Begin().WithContext(ctx)

	count, err := s.typeRepo.CountByKey(tx, data.Key)
	if err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("check key %q: %w", data.Key, apperrors.FromDB(err))
	}
	if count > 0 {
		tx.Rollback()
		return nil, fmt.Errorf("config type key %q already exists: %w", data.Key, apperrors.ErrDuplicateKey)
	}

	// The unique index on config_key is the backstop for a concurrent create
	// that slips past the count above: exactly one insert wins.
	data.ID = 0
	data.Fields = nil // fields are added one at a time through AddField
	if err := s.typeRepo.Create(tx, &data); err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("create config type %q: %w", data.Key, apperrors.FromDB(err))
	}

	if err := tx.Commit().Error; err != nil {
		return nil, fmt.Errorf("commit config type %q: %w", data.Key, apperrors.FromDB(err))
	}
	logger.Infof("Created config type %q with ID %d", data.Key, data.ID)
	return &data, nil
}

func (s *catalogService) AddField(ctx context.Context, configTypeID uint, data models.ConfigField) (*models.ConfigField, error) {
	data.ConfigTypeID = configTypeID
	if err := utils.ValidateStruct(&data); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrConstraintViolation, err)
	}

	tx := s.baseRepo.Begin().WithContext(ctx)

	parent, err := s.typeRepo.GetByID(tx, configTypeID)
	if err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("config type id=%d: %w", configTypeID, apperrors.FromDB(err))
	}

	count, err := s.fieldRepo.CountByConfigTypeIDAndName(tx, configTypeID, data.Name)
	if err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("check field %q of %q: %w", data.Name, parent.Key, apperrors.FromDB(err))
	}
	if count > 0 {
		tx.Rollback()
		return nil, fmt.Errorf("field %q already exists for config type %q: %w", data.Name, parent.Key, apperrors.ErrDuplicateKey)
	}

	data.ID = 0
	if err := s.fieldRepo.Create(tx, &data); err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("create field %q for %q: %w", data.Name, parent.Key, apperrors.FromDB(err))
	}

	if err := tx.Commit().Error; err != nil {
		return nil, fmt.Errorf("commit field %q for %q: %w", data.Name, parent.Key, apperrors.FromDB(err))
	}
	logger.Debugf("Added field %q to config type %q (id=%d)", data.Name, parent.Key, data.ID)
	return &data, nil
}

func (s *catalogService) GetConfigType(ctx context.Context, key string) (*models.ConfigType, error) {
	ct, err := s.typeRepo.GetByKeyWithFields(nil, key)
	if err != nil {
		return nil, fmt.Errorf("config type %q: %w", key, apperrors.FromDB(err))
	}
	return ct, nil
}

func (s *catalogService) GetField(ctx context.Context, id uint) (*models.ConfigField, error) {
	field, err := s.fieldRepo.GetByID(nil, id)
	if err != nil {
		return nil, fmt.Errorf("config field id=%d: %w", id, apperrors.FromDB(err))
	}
	return field, nil
}

func (s *catalogService) ListConfigTypes(ctx context.Context) ([]models.ConfigType, error) {
	cts, err := s.typeRepo.GetAll(nil)
	if err != nil {
		return nil, fmt.Errorf("list config types: %w", apperrors.FromDB(err))
	}
	return cts, nil
}

func (s *catalogService) DeleteConfigType(ctx context.Context, id uint) error {
	tx := s.baseRepo.Begin().WithContext(ctx)

	ct, err := s.typeRepo.GetByID(tx, id)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("config type id=%d: %w", id, apperrors.FromDB(err))
	}

	// ON DELETE CASCADE removes the fields in the same statement, so readers
	// never observe a type with a partial field set.
	if err := s.typeRepo.DeleteByID(tx, id); err != nil {
		tx.Rollback()
		return fmt.Errorf("delete config type %q: %w", ct.Key, apperrors.FromDB(err))
	}

	if err := tx.Commit().Error; err != nil {
		return fmt.Errorf("commit delete of config type %q: %w", ct.Key, apperrors.FromDB(err))
	}
	logger.Infof("Deleted config type %q (id=%d) and its fields", ct.Key, id)
	return nil
}
