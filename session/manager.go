// Package session implements registration, login and logout on top of the
// account store. An account runs at most one session, under one role, at a time.
package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"food4u-api/logger"
	"food4u-api/models"
	"food4u-api/statemachine"
	"food4u-api/token"

	"gorm.io/datatypes"
)

// maxMergeAttempts bounds retries when concurrent registrations race on one account
const maxMergeAttempts = 5

// AccountStore is the persistence the manager needs
type AccountStore interface {
	FindByPhone(ctx context.Context, phone string) (*models.Account, error)
	FindByID(ctx context.Context, id string) (*models.Account, error)
	Create(ctx context.Context, acc *models.Account) error
	MergeRoles(ctx context.Context, acc *models.Account, newRoles []models.UserRole, profiles models.Profiles) (*models.Account, error)
	SetActiveRole(ctx context.Context, acc *models.Account, role *models.UserRole) error
	ClaimActiveRole(ctx context.Context, acc *models.Account, role models.UserRole) error
}

// TokenCodec signs and verifies session tokens
type TokenCodec interface {
	Issue(accountID string, roles []models.UserRole, activeRole models.UserRole) (string, time.Time, error)
	Parse(tokenStr string) (*token.Claims, error)
}

type Manager struct {
	accounts AccountStore
	hasher   Hasher
	tokens   TokenCodec
}

func NewManager(accounts AccountStore, hasher Hasher, tokens TokenCodec) *Manager {
	return &Manager{accounts: accounts, hasher: hasher, tokens: tokens}
}

type RegisterInput struct {
	Name      string            `json:"name" validate:"required"`
	Phone     string            `json:"phone" validate:"required"`
	Password  string            `json:"password" validate:"required,min=6"`
	Roles     []models.UserRole `json:"roles" validate:"required,min=1,dive,oneof=customer driver restaurant"`
	ExtraData models.ExtraData  `json:"extraData"`
}

// RegisterStatus tells apart the three successful registration outcomes
type RegisterStatus string

const (
	StatusCreated    RegisterStatus = "created"
	StatusRolesAdded RegisterStatus = "roles_added"
	StatusNoNewRoles RegisterStatus = "no_new_roles"
)

type RegisterResult struct {
	AccountID string
	Roles     []models.UserRole
	Added     []models.UserRole
	Created   bool
	Status    RegisterStatus
}

// Register creates the account for a new phone, or merges the requested roles
// and their profiles into the existing one. Re-registering only held roles is a no-op.
func (m *Manager) Register(ctx context.Context, in RegisterInput) (*RegisterResult, error) {
	if err := checkInput(in); err != nil {
		return nil, err
	}

	for attempt := 0; attempt < maxMergeAttempts; attempt++ {
		acc, err := m.accounts.FindByPhone(ctx, in.Phone)
		switch {
		case errors.Is(err, models.ErrAccountNotFound):
			res, err := m.create(ctx, in)
			if errors.Is(err, models.ErrDuplicatePhone) {
				// lost the race against a concurrent registration; merge into the winner
				logger.Debugf("register %s: phone taken concurrently, retrying as merge", in.Phone)
				continue
			}
			return res, err
		case err != nil:
			return nil, err
		}

		res, err := m.merge(ctx, acc, in)
		if errors.Is(err, models.ErrStaleAccount) {
			continue
		}
		return res, err
	}
	return nil, fmt.Errorf("register %s: %w after %d attempts", in.Phone, models.ErrStaleAccount, maxMergeAttempts)
}

func (m *Manager) create(ctx context.Context, in RegisterInput) (*RegisterResult, error) {
	profiles, err := in.ExtraData.Apply(models.Profiles{}, in.Roles)
	if err != nil {
		return nil, err
	}
	hash, err := m.hasher.Hash(in.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	acc := &models.Account{
		Name:         in.Name,
		Phone:        in.Phone,
		PasswordHash: hash,
		Roles:        models.UnionRoles(nil, in.Roles),
		Profiles:     datatypes.NewJSONType(profiles),
	}
	if err := m.accounts.Create(ctx, acc); err != nil {
		return nil, err
	}
	logger.Infof("account %s created with roles %v", acc.ID, acc.Roles)
	return &RegisterResult{
		AccountID: acc.ID,
		Roles:     acc.RoleList(),
		Added:     acc.RoleList(),
		Created:   true,
		Status:    StatusCreated,
	}, nil
}

// merge adds the roles of in that acc lacks. Extra data for roles already held
// may be omitted, since the account has it on file; keys that are sent overwrite
// the stored ones whichever held role they belong to.
func (m *Manager) merge(ctx context.Context, acc *models.Account, in RegisterInput) (*RegisterResult, error) {
	added := acc.MissingRoles(in.Roles)
	if len(added) == 0 {
		return &RegisterResult{
			AccountID: acc.ID,
			Roles:     acc.RoleList(),
			Status:    StatusNoNewRoles,
		}, nil
	}
	profiles, err := in.ExtraData.Apply(acc.Profiles.Data(), models.UnionRoles(acc.Roles, added))
	if err != nil {
		return nil, err
	}
	updated, err := m.accounts.MergeRoles(ctx, acc, added, profiles)
	if err != nil {
		return nil, err
	}
	logger.Infof("account %s gained roles %v", updated.ID, added)
	return &RegisterResult{
		AccountID: updated.ID,
		Roles:     updated.RoleList(),
		Added:     added,
		Status:    StatusRolesAdded,
	}, nil
}

type LoginInput struct {
	Phone      string          `json:"phone" validate:"required"`
	Password   string          `json:"password" validate:"required"`
	ActiveRole models.UserRole `json:"activeRole" validate:"required"`
}

type LoginResult struct {
	Token      string
	AccountID  string
	ActiveRole models.UserRole
	Roles      []models.UserRole
	ExpiresAt  time.Time
}

// Login authenticates and opens a session under the requested role. It fails
// with ErrSessionConflict while the account is active under another role.
func (m *Manager) Login(ctx context.Context, in LoginInput) (*LoginResult, error) {
	if err := checkInput(in); err != nil {
		return nil, err
	}

	acc, err := m.accounts.FindByPhone(ctx, in.Phone)
	if errors.Is(err, models.ErrAccountNotFound) {
		return nil, models.ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	if !m.hasher.Verify(in.Password, acc.PasswordHash) {
		return nil, models.ErrInvalidCredentials
	}

	if !acc.HasRole(in.ActiveRole) {
		return nil, models.ErrInvalidRole
	}
	if err := statemachine.CanLogin(acc.ActiveRole, in.ActiveRole); err != nil {
		return nil, err
	}

	// signed before the claim; handed out only once the claim succeeds
	signed, expiresAt, err := m.tokens.Issue(acc.ID, acc.RoleList(), in.ActiveRole)
	if err != nil {
		return nil, err
	}
	// the claim re-checks the guard atomically against concurrent logins
	if err := m.accounts.ClaimActiveRole(ctx, acc, in.ActiveRole); err != nil {
		return nil, err
	}
	logger.Infof("account %s logged in as %s", acc.ID, in.ActiveRole)
	return &LoginResult{
		Token:      signed,
		AccountID:  acc.ID,
		ActiveRole: in.ActiveRole,
		Roles:      acc.RoleList(),
		ExpiresAt:  expiresAt,
	}, nil
}

// Logout clears the active role of the account named in the token, whatever it is.
func (m *Manager) Logout(ctx context.Context, tokenStr string) error {
	claims, err := m.tokens.Parse(tokenStr)
	if err != nil {
		return models.ErrInvalidToken
	}
	acc, err := m.accounts.FindByID(ctx, claims.AccountID)
	if errors.Is(err, models.ErrAccountNotFound) {
		return models.ErrInvalidToken
	}
	if err != nil {
		return err
	}
	if err := m.accounts.SetActiveRole(ctx, acc, nil); err != nil {
		return err
	}
	logger.Infof("account %s logged out", acc.ID)
	return nil
}

// Authorize checks that the session named by claims is still the account's
// current one: the account exists and is active under the token's role. A token
// outliving its Logout, or a login under another role, fails with ErrInvalidToken.
func (m *Manager) Authorize(ctx context.Context, claims *token.Claims) (*models.Account, error) {
	acc, err := m.accounts.FindByID(ctx, claims.AccountID)
	if errors.Is(err, models.ErrAccountNotFound) {
		return nil, models.ErrInvalidToken
	}
	if err != nil {
		return nil, err
	}
	if acc.IsIdle() || *acc.ActiveRole != claims.ActiveRole {
		return nil, models.ErrInvalidToken
	}
	return acc, nil
}

// Account returns the account with id
func (m *Manager) Account(ctx context.Context, id string) (*models.Account, error) {
	return m.accounts.FindByID(ctx, id)
}
