package services

import (
	"encoding/json"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/barakatna/platform/backend/internal/models"
)

var (
	ErrClientTypeNotFound  = errors.New("client type not found")
	ErrClientTypeCodeTaken = errors.New("client type code already exists")
	ErrInvalidClientType   = errors.New("client type code and name are required")
	ErrInvalidConfigJSON   = errors.New("config is not valid JSON")
	ErrClientTypeInUse     = errors.New("client type is referenced by business rules")
)

type ClientTypeService struct {
	db *gorm.DB
}

func NewClientTypeService(db *gorm.DB) *ClientTypeService {
	return &ClientTypeService{db: db}
}

// Create validates and stores a new client type.
func (s *ClientTypeService) Create(ct *models.ClientType) error {
	if err := validateClientType(ct); err != nil {
		return err
	}

	var existing models.ClientType
	if err := s.db.Where("code = ?", ct.Code).First(&existing).Error; err == nil {
		return ErrClientTypeCodeTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	return s.db.Create(ct).Error
}

func (s *ClientTypeService) List() ([]models.ClientType, error) {
	var types []models.ClientType
	if err := s.db.Order("code asc").Find(&types).Error; err != nil {
		return nil, err
	}
	return types, nil
}

func (s *ClientTypeService) GetByCode(code string) (*models.ClientType, error) {
	var ct models.ClientType
	if err := s.db.Where("code = ?", code).First(&ct).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrClientTypeNotFound
		}
		return nil, err
	}
	return &ct, nil
}

// Update modifies name, description, config and enabled flag. The code is
// immutable once created because rules reference it.
func (s *ClientTypeService) Update(code string, updated *models.ClientType) (*models.ClientType, error) {
	ct, err := s.GetByCode(code)
	if err != nil {
		return nil, err
	}

	if updated.Name == "" {
		return nil, ErrInvalidClientType
	}
	if updated.Config != "" && !json.Valid([]byte(updated.Config)) {
		return nil, ErrInvalidConfigJSON
	}

	ct.Name = updated.Name
	ct.Description = updated.Description
	ct.Config = updated.Config
	ct.Enabled = updated.Enabled

	if err := s.db.Save(ct).Error; err != nil {
		return nil, err
	}
	return ct, nil
}

// Delete removes a client type unless business rules still reference it.
func (s *ClientTypeService) Delete(code string) error {
	ct, err := s.GetByCode(code)
	if err != nil {
		return err
	}

	var count int64
	if err := s.db.Model(&models.BusinessRule{}).Where("client_type_code = ?", code).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return ErrClientTypeInUse
	}

	return s.db.Delete(ct).Error
}

func validateClientType(ct *models.ClientType) error {
	if ct == nil || strings.TrimSpace(ct.Code) == "" || strings.TrimSpace(ct.Name) == "" {
		return ErrInvalidClientType
	}
	if ct.Config != "" && !json.Valid([]byte(ct.Config)) {
		return ErrInvalidConfigJSON
	}
	return nil
}
