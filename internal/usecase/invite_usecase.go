package usecase

import (
	"context"
	"errors"
	"field_estimator/internal/domain/entities"
	"field_estimator/internal/infrastructure/logger"
	"field_estimator/internal/usecase/interfaces"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrInviteNotFound   = errors.New("invite not found")
	ErrInviteExpired    = errors.New("invite expired")
	ErrInviteUsed       = errors.New("invite already used")
	ErrInvalidInvite    = errors.New("invalid invite")
	ErrUsernameTaken    = errors.New("username already taken")
	ErrUsernameReserved = errors.New("username is reserved")
	ErrPasswordTooShort = errors.New("password must have at least 4 characters")
)

const maxInviteExpiryDays = 90

type InviteInput struct {
	Role        entities.Role
	ExpiresDays int
	Email       string
}

type InviteResult struct {
	Invite    entities.InviteToken
	URL       string
	EmailSent bool
}

type AcceptInviteInput struct {
	Token    string
	Username string
	Password string
}

// IInviteUseCase issues and redeems invite tokens.
//   - creating and listing needs canManageUsers
//   - an accepted invite provisions the membership with the role template
type IInviteUseCase interface {
	Create(ctx context.Context, p entities.Principal, in InviteInput) (InviteResult, error)
	List(ctx context.Context, p entities.Principal) ([]entities.InviteToken, error)
	Accept(ctx context.Context, in AcceptInviteInput) (LoginResult, error)
}

type InviteUseCase struct {
	invites   interfaces.IInviteRepository
	users     interfaces.IUserRepository
	companies interfaces.ICompanyRepository
	hasher    interfaces.IPasswordHasher
	auth      *AuthUseCase
	mailer    interfaces.IMailer
	baseURL   string
	access    access
	audit     auditTrail
}

var _ IInviteUseCase = (*InviteUseCase)(nil)

func NewInviteUseCase(
	invites interfaces.IInviteRepository,
	users interfaces.IUserRepository,
	companies interfaces.ICompanyRepository,
	members interfaces.ICompanyUserRepository,
	hasher interfaces.IPasswordHasher,
	tokens interfaces.ITokenIssuer,
	mailer interfaces.IMailer,
	audit interfaces.IAuditLogRepository,
	baseURL string,
) *InviteUseCase {
	return &InviteUseCase{
		invites:   invites,
		users:     users,
		companies: companies,
		hasher:    hasher,
		auth:      NewAuthUseCase(users, members, hasher, tokens),
		mailer:    mailer,
		baseURL:   strings.TrimRight(baseURL, "/"),
		access:    access{members: members},
		audit:     auditTrail{repo: audit},
	}
}

func (u *InviteUseCase) Create(ctx context.Context, p entities.Principal, in InviteInput) (InviteResult, error) {
	log := logger.FromContext(ctx)
	if _, err := u.access.require(ctx, p, canManageUsers); err != nil {
		return InviteResult{}, err
	}

	role := in.Role
	if role == "" {
		role = entities.RoleUser
	}
	if role == entities.RoleOwner {
		return InviteResult{}, fmt.Errorf("%w: owners cannot be invited", ErrInvalidInvite)
	}
	days := in.ExpiresDays
	if days == 0 {
		days = entities.DefaultInviteExpiryDays
	}
	if days < 0 || days > maxInviteExpiryDays {
		return InviteResult{}, fmt.Errorf("%w: expiresDays must be between 1 and %d", ErrInvalidInvite, maxInviteExpiryDays)
	}

	now := time.Now().UTC()
	invite, err := u.invites.Create(ctx, entities.InviteToken{
		Token:     uuid.NewString(),
		CompanyID: p.CompanyID,
		CreatedBy: p.UserID,
		Role:      role,
		Email:     strings.TrimSpace(in.Email),
		ExpiresAt: now.AddDate(0, 0, days),
		CreatedAt: now,
	})
	if err != nil {
		return InviteResult{}, err
	}

	res := InviteResult{Invite: invite, URL: u.inviteURL(invite.Token)}
	if invite.Email != "" && u.mailer != nil {
		if err := u.mailer.Send(ctx, u.inviteMail(ctx, invite, res.URL)); err != nil {
			log.Warn("[invite][usecase] invite e-mail failed", zap.Uint("invite_id", invite.ID), zap.Error(err))
		} else {
			res.EmailSent = true
		}
	}
	u.audit.record(ctx, p, entities.AuditInviteCreated, nil, map[string]string{"invite_id": fmt.Sprint(invite.ID), "role": string(role)})
	log.Info("[invite][usecase] created", zap.Uint("invite_id", invite.ID), zap.String("role", string(role)))
	return res, nil
}

func (u *InviteUseCase) List(ctx context.Context, p entities.Principal) ([]entities.InviteToken, error) {
	if _, err := u.access.require(ctx, p, canManageUsers); err != nil {
		return nil, err
	}
	return u.invites.ListByCompany(ctx, p.CompanyID)
}

func (u *InviteUseCase) Accept(ctx context.Context, in AcceptInviteInput) (LoginResult, error) {
	username := strings.TrimSpace(in.Username)
	if username == "" {
		return LoginResult{}, fmt.Errorf("%w: username is required", ErrInvalidInvite)
	}
	if entities.IsReservedUsername(username) {
		logger.FromContext(ctx).Warn("[invite][usecase] reserved username on accept", zap.String("username", username))
		return LoginResult{}, ErrUsernameReserved
	}
	if len(in.Password) < 4 {
		return LoginResult{}, ErrPasswordTooShort
	}

	invite, err := u.invites.GetByToken(ctx, strings.TrimSpace(in.Token))
	if err != nil {
		return LoginResult{}, err
	}
	if invite.ID == 0 {
		return LoginResult{}, ErrInviteNotFound
	}
	now := time.Now().UTC()
	if invite.UsedAt != nil {
		return LoginResult{}, ErrInviteUsed
	}
	if !invite.Usable(now) {
		return LoginResult{}, ErrInviteExpired
	}

	existing, err := u.users.GetByUsername(ctx, username)
	if err != nil {
		return LoginResult{}, err
	}
	if existing.ID != 0 {
		return LoginResult{}, ErrUsernameTaken
	}

	hash, err := u.hasher.Hash(in.Password)
	if err != nil {
		return LoginResult{}, err
	}
	user, member, err := u.invites.Redeem(ctx, invite.ID,
		entities.User{
			Username:     username,
			PasswordHash: hash,
			Role:         string(invite.Role),
			GlobalRole:   "user",
			CreatedAt:    now,
		},
		entities.CompanyUser{
			CompanyID:   invite.CompanyID,
			Role:        invite.Role,
			IsActive:    true,
			Permissions: entities.TemplateForRole(invite.Role),
		},
		now,
	)
	if errors.Is(err, interfaces.ErrDuplicateKey) {
		return LoginResult{}, ErrUsernameTaken
	}
	if err != nil {
		return LoginResult{}, err
	}
	if user.ID == 0 {
		return LoginResult{}, ErrInviteUsed
	}

	actor := entities.Principal{UserID: user.ID, CompanyID: invite.CompanyID, Username: user.Username, Role: invite.Role}
	u.audit.record(ctx, actor, entities.AuditInviteAccepted, nil, map[string]string{"invite_id": fmt.Sprint(invite.ID)})
	return u.auth.issue(user, member)
}

func (u *InviteUseCase) inviteURL(token string) string {
	return u.baseURL + "/invite/" + url.PathEscape(token)
}

func (u *InviteUseCase) inviteMail(ctx context.Context, invite entities.InviteToken, link string) interfaces.MailMessage {
	companyName := "your team"
	if u.companies != nil {
		if c, err := u.companies.GetByID(ctx, invite.CompanyID); err == nil && c.ID != 0 {
			companyName = c.Name
		}
	}
	return interfaces.MailMessage{
		To:      invite.Email,
		Subject: fmt.Sprintf("You have been invited to join %s", companyName),
		TextBody: fmt.Sprintf("You have been invited to join %s as %s.\n\nAccept the invite: %s\n\nThis link expires on %s.\n",
			companyName, strings.ToLower(string(invite.Role)), link, invite.ExpiresAt.Format("2006-01-02")),
	}
}
