package services

import (
	"encoding/json"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/barakatna/platform/backend/internal/models"
)

var (
	ErrRuleNotFound      = errors.New("business rule not found")
	ErrRuleNameTaken     = errors.New("business rule name already exists")
	ErrInvalidRule       = errors.New("business rule name is required")
	ErrInvalidConditions = errors.New("conditions is not valid JSON")
	ErrInvalidActions    = errors.New("actions is not valid JSON")
	ErrUnknownClientType = errors.New("rule references an unknown client type")
)

// RuleService stores business-rule configuration for the external rule
// engine. Condition and action documents are validated as JSON but never
// evaluated here.
type RuleService struct {
	db *gorm.DB
}

func NewRuleService(db *gorm.DB) *RuleService {
	return &RuleService{db: db}
}

func (s *RuleService) Create(rule *models.BusinessRule) error {
	if err := s.validate(rule); err != nil {
		return err
	}

	var existing models.BusinessRule
	if err := s.db.Where("name = ?", rule.Name).First(&existing).Error; err == nil {
		return ErrRuleNameTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	return s.db.Create(rule).Error
}

// List returns rules ordered by priority descending, optionally scoped to
// one client type.
func (s *RuleService) List(clientTypeCode string) ([]models.BusinessRule, error) {
	var rules []models.BusinessRule
	q := s.db.Order("priority desc, name asc")
	if clientTypeCode != "" {
		q = q.Where("client_type_code = ?", clientTypeCode)
	}
	if err := q.Find(&rules).Error; err != nil {
		return nil, err
	}
	return rules, nil
}

func (s *RuleService) Get(uuid string) (*models.BusinessRule, error) {
	var rule models.BusinessRule
	if err := s.db.Where("uuid = ?", uuid).First(&rule).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRuleNotFound
		}
		return nil, err
	}
	return &rule, nil
}

func (s *RuleService) Update(uuid string, updated *models.BusinessRule) (*models.BusinessRule, error) {
	rule, err := s.Get(uuid)
	if err != nil {
		return nil, err
	}

	updated.Name = strings.TrimSpace(updated.Name)
	if err := s.validate(updated); err != nil {
		return nil, err
	}

	// Renaming onto another rule's name is a conflict.
	var clash models.BusinessRule
	if err := s.db.Where("name = ? AND uuid <> ?", updated.Name, uuid).First(&clash).Error; err == nil {
		return nil, ErrRuleNameTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	rule.Name = updated.Name
	rule.Description = updated.Description
	rule.ClientTypeCode = updated.ClientTypeCode
	rule.Priority = updated.Priority
	rule.Enabled = updated.Enabled
	rule.Conditions = updated.Conditions
	rule.Actions = updated.Actions

	if err := s.db.Save(rule).Error; err != nil {
		return nil, err
	}
	return rule, nil
}

func (s *RuleService) Delete(uuid string) error {
	rule, err := s.Get(uuid)
	if err != nil {
		return err
	}
	return s.db.Delete(rule).Error
}

func (s *RuleService) validate(rule *models.BusinessRule) error {
	if rule == nil || strings.TrimSpace(rule.Name) == "" {
		return ErrInvalidRule
	}
	if rule.Conditions != "" && !json.Valid([]byte(rule.Conditions)) {
		return ErrInvalidConditions
	}
	if rule.Actions != "" && !json.Valid([]byte(rule.Actions)) {
		return ErrInvalidActions
	}
	if rule.ClientTypeCode != "" {
		var ct models.ClientType
		if err := s.db.Where("code = ?", rule.ClientTypeCode).First(&ct).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrUnknownClientType
			}
			return err
		}
	}
	return nil
}
