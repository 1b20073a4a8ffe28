package usecase

import (
	"context"
	"errors"
	"field_estimator/internal/domain/entities"
	"field_estimator/internal/infrastructure/logger"
	"field_estimator/internal/usecase/interfaces"
	"strings"
	"time"

	"go.uber.org/zap"
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUserNotFound       = errors.New("user not found")
)

type LoginResult struct {
	Token      string
	ExpiresAt  time.Time
	User       entities.User
	Membership entities.CompanyUser
}

type IAuthUseCase interface {
	Login(ctx context.Context, username, password string) (LoginResult, error)
	Me(ctx context.Context, p entities.Principal) (entities.User, entities.CompanyUser, error)
}

type AuthUseCase struct {
	users   interfaces.IUserRepository
	members interfaces.ICompanyUserRepository
	hasher  interfaces.IPasswordHasher
	tokens  interfaces.ITokenIssuer
	access  access
}

var _ IAuthUseCase = (*AuthUseCase)(nil)

func NewAuthUseCase(users interfaces.IUserRepository, members interfaces.ICompanyUserRepository, hasher interfaces.IPasswordHasher, tokens interfaces.ITokenIssuer) *AuthUseCase {
	return &AuthUseCase{users: users, members: members, hasher: hasher, tokens: tokens, access: access{members: members}}
}

func (u *AuthUseCase) Login(ctx context.Context, username, password string) (LoginResult, error) {
	log := logger.FromContext(ctx)
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return LoginResult{}, ErrInvalidCredentials
	}

	user, err := u.users.GetByUsername(ctx, username)
	if err != nil {
		return LoginResult{}, err
	}
	if user.ID == 0 {
		log.Info("[auth][usecase] login rejected: unknown user", zap.String("username", username))
		return LoginResult{}, ErrInvalidCredentials
	}
	if err := u.hasher.Compare(user.PasswordHash, password); err != nil {
		log.Info("[auth][usecase] login rejected: bad password", zap.Uint("user_id", user.ID))
		return LoginResult{}, ErrInvalidCredentials
	}

	m, err := u.members.GetActiveByUserID(ctx, user.ID)
	if err != nil {
		return LoginResult{}, err
	}
	if m.ID == 0 && !entities.IsSupportAdmin(user.Username, user.GlobalRole) {
		return LoginResult{}, ErrNotCompanyUser
	}
	return u.issue(user, m)
}

func (u *AuthUseCase) issue(user entities.User, m entities.CompanyUser) (LoginResult, error) {
	role := m.Role
	if m.ID == 0 {
		role = entities.RoleSupport
	}
	token, expiresAt, err := u.tokens.Issue(entities.Principal{
		UserID:     user.ID,
		CompanyID:  m.CompanyID,
		Username:   user.Username,
		Role:       role,
		GlobalRole: user.GlobalRole,
	})
	if err != nil {
		return LoginResult{}, err
	}
	return LoginResult{Token: token, ExpiresAt: expiresAt, User: user, Membership: m}, nil
}

func (u *AuthUseCase) Me(ctx context.Context, p entities.Principal) (entities.User, entities.CompanyUser, error) {
	user, err := u.users.GetByID(ctx, p.UserID)
	if err != nil {
		return entities.User{}, entities.CompanyUser{}, err
	}
	if user.ID == 0 {
		return entities.User{}, entities.CompanyUser{}, ErrUserNotFound
	}
	m, err := u.access.membership(ctx, p)
	if err != nil {
		return entities.User{}, entities.CompanyUser{}, err
	}
	return user, m, nil
}
