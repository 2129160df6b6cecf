package store

import (
	"context"
	"errors"
	"fmt"

	"food4u-api/models"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// AccountStore persists accounts and enforces that an active role is always a held role.
type AccountStore struct {
	db *gorm.DB
}

func NewAccountStore(db *gorm.DB) *AccountStore {
	return &AccountStore{db: db}
}

// FindByPhone returns the account registered under phone
func (s *AccountStore) FindByPhone(ctx context.Context, phone string) (*models.Account, error) {
	var acc models.Account
	if err := s.db.WithContext(ctx).Where("phone = ?", phone).First(&acc).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrAccountNotFound
		}
		return nil, fmt.Errorf("find account by phone: %w", err)
	}
	return &acc, nil
}

// FindByID returns the account with the given id
func (s *AccountStore) FindByID(ctx context.Context, id string) (*models.Account, error) {
	var acc models.Account
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&acc).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrAccountNotFound
		}
		return nil, fmt.Errorf("find account by id: %w", err)
	}
	return &acc, nil
}

// Create inserts a new idle account. The unique index on phone decides races
// between concurrent registrations; the loser gets ErrDuplicatePhone.
func (s *AccountStore) Create(ctx context.Context, acc *models.Account) error {
	if len(acc.Roles) == 0 {
		return models.NewValidationError("roles", "at least one role is required")
	}
	acc.ID = uuid.NewString()
	acc.ActiveRole = nil
	acc.Version = 0

	if err := s.db.WithContext(ctx).Create(acc).Error; err != nil {
		if isUniqueViolation(err) {
			return models.ErrDuplicatePhone
		}
		return fmt.Errorf("create account: %w", err)
	}
	return nil
}

// MergeRoles adds newRoles to the account's role set and writes profiles over the
// existing ones. The write only succeeds if nobody changed the account since acc
// was read; otherwise ErrStaleAccount is returned and acc is left untouched.
func (s *AccountStore) MergeRoles(ctx context.Context, acc *models.Account, newRoles []models.UserRole, profiles models.Profiles) (*models.Account, error) {
	roles := models.UnionRoles(acc.Roles, newRoles)
	merged := acc.Profiles.Data().Merge(profiles)

	res := s.db.WithContext(ctx).Model(&models.Account{}).
		Where("id = ? AND version = ?", acc.ID, acc.Version).
		Updates(map[string]any{
			"roles":    datatypes.JSONSlice[models.UserRole](roles),
			"profiles": datatypes.NewJSONType(merged),
			"version":  acc.Version + 1,
		})
	if res.Error != nil {
		return nil, fmt.Errorf("merge roles: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, models.ErrStaleAccount
	}

	updated := *acc
	updated.Roles = roles
	updated.Profiles = datatypes.NewJSONType(merged)
	updated.Version = acc.Version + 1
	return &updated, nil
}

// SetActiveRole overwrites the active role. A nil role closes the session.
func (s *AccountStore) SetActiveRole(ctx context.Context, acc *models.Account, role *models.UserRole) error {
	if role != nil && !acc.HasRole(*role) {
		return models.ErrInvalidRole
	}
	var value any = gorm.Expr("NULL")
	if role != nil {
		value = string(*role)
	}
	res := s.db.WithContext(ctx).Model(&models.Account{}).
		Where("id = ?", acc.ID).
		Update("active_role", value)
	if res.Error != nil {
		return fmt.Errorf("set active role: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return models.ErrAccountNotFound
	}
	acc.ActiveRole = role
	return nil
}

// ClaimActiveRole opens a session under role if the account is idle or already
// active under that same role. The check and the write are a single UPDATE, so
// two concurrent claims for different roles cannot both succeed.
func (s *AccountStore) ClaimActiveRole(ctx context.Context, acc *models.Account, role models.UserRole) error {
	if !acc.HasRole(role) {
		return models.ErrInvalidRole
	}
	res := s.db.WithContext(ctx).Model(&models.Account{}).
		Where("id = ? AND (active_role IS NULL OR active_role = ?)", acc.ID, string(role)).
		Update("active_role", string(role))
	if res.Error != nil {
		return fmt.Errorf("claim active role: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return models.ErrSessionConflict
	}
	acc.ActiveRole = &role
	return nil
}

// isUniqueViolation relies on TranslateError, which the sqlite dialector maps to ErrDuplicatedKey
func isUniqueViolation(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}
