package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"field_estimator/internal/domain/entities"
	"field_estimator/internal/usecase/interfaces"
	mock_interfaces "field_estimator/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type inviteFixture struct {
	invites   *mock_interfaces.MockIInviteRepository
	users     *mock_interfaces.MockIUserRepository
	companies *mock_interfaces.MockICompanyRepository
	members   *mock_interfaces.MockICompanyUserRepository
	hasher    *mock_interfaces.MockIPasswordHasher
	tokens    *mock_interfaces.MockITokenIssuer
	mailer    *mock_interfaces.MockIMailer
	uc        *InviteUseCase
}

func newInviteFixture(t *testing.T) inviteFixture {
	ctrl := gomock.NewController(t)
	f := inviteFixture{
		invites:   mock_interfaces.NewMockIInviteRepository(ctrl),
		users:     mock_interfaces.NewMockIUserRepository(ctrl),
		companies: mock_interfaces.NewMockICompanyRepository(ctrl),
		members:   mock_interfaces.NewMockICompanyUserRepository(ctrl),
		hasher:    mock_interfaces.NewMockIPasswordHasher(ctrl),
		tokens:    mock_interfaces.NewMockITokenIssuer(ctrl),
		mailer:    mock_interfaces.NewMockIMailer(ctrl),
	}
	f.uc = NewInviteUseCase(f.invites, f.users, f.companies, f.members, f.hasher, f.tokens, f.mailer, nil, "https://app.example.com/")
	return f
}

func TestInviteUseCase_Create(t *testing.T) {
	f := newInviteFixture(t)
	expectMember(f.members, ownerMember())
	f.invites.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, inv entities.InviteToken) (entities.InviteToken, error) {
		days := inv.ExpiresAt.Sub(inv.CreatedAt).Hours() / 24
		if inv.Role != entities.RoleUser || days != float64(entities.DefaultInviteExpiryDays) || inv.Token == "" {
			t.Fatalf("unexpected invite %+v", inv)
		}
		inv.ID = 6
		return inv, nil
	})
	f.companies.EXPECT().GetByID(gomock.Any(), testCompanyID).Return(entities.Company{ID: testCompanyID, Name: "Oak & Sons"}, nil)
	f.mailer.EXPECT().Send(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, msg interfaces.MailMessage) error {
		if msg.To != "new@example.com" || !strings.Contains(msg.Subject, "Oak & Sons") {
			t.Fatalf("unexpected mail %+v", msg)
		}
		return nil
	})

	got, err := f.uc.Create(context.Background(), ownerPrincipal, InviteInput{Email: " new@example.com "})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !got.EmailSent || !strings.HasPrefix(got.URL, "https://app.example.com/invite/") {
		t.Fatalf("unexpected result %+v", got)
	}
}

func TestInviteUseCase_CreateMailFailureIsNotFatal(t *testing.T) {
	f := newInviteFixture(t)
	expectMember(f.members, ownerMember())
	f.invites.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, inv entities.InviteToken) (entities.InviteToken, error) {
		inv.ID = 7
		return inv, nil
	})
	f.companies.EXPECT().GetByID(gomock.Any(), testCompanyID).Return(entities.Company{}, nil)
	f.mailer.EXPECT().Send(gomock.Any(), gomock.Any()).Return(errors.New("smtp refused"))

	got, err := f.uc.Create(context.Background(), ownerPrincipal, InviteInput{Role: entities.RoleAdmin, ExpiresDays: 3, Email: "a@example.com"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got.EmailSent {
		t.Fatalf("expected EmailSent=false")
	}
}

func TestInviteUseCase_CreateRejects(t *testing.T) {
	tests := []struct {
		name string
		in   InviteInput
	}{
		{"owner role", InviteInput{Role: entities.RoleOwner}},
		{"expiry too long", InviteInput{ExpiresDays: 91}},
		{"negative expiry", InviteInput{ExpiresDays: -1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newInviteFixture(t)
			expectMember(f.members, ownerMember())

			if _, err := f.uc.Create(context.Background(), ownerPrincipal, tt.in); !errors.Is(err, ErrInvalidInvite) {
				t.Fatalf("expected ErrInvalidInvite, got %v", err)
			}
		})
	}
}

func openInvite() entities.InviteToken {
	return entities.InviteToken{
		ID:        6,
		Token:     "tok",
		CompanyID: testCompanyID,
		CreatedBy: 1,
		Role:      entities.RoleUser,
		ExpiresAt: time.Now().Add(48 * time.Hour),
	}
}

func TestInviteUseCase_Accept(t *testing.T) {
	f := newInviteFixture(t)
	f.invites.EXPECT().GetByToken(gomock.Any(), "tok").Return(openInvite(), nil)
	f.users.EXPECT().GetByUsername(gomock.Any(), "newbie").Return(entities.User{}, nil)
	f.hasher.EXPECT().Hash("pass").Return("hashed", nil)
	f.invites.EXPECT().Redeem(gomock.Any(), uint(6), gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ uint, u entities.User, member entities.CompanyUser, _ time.Time) (entities.User, entities.CompanyUser, error) {
			if u.PasswordHash != "hashed" || member.Permissions != entities.DefaultEmployeePermissions || !member.IsActive {
				t.Fatalf("unexpected provisioning %+v %+v", u, member)
			}
			u.ID = 20
			member.ID = 30
			member.UserID = 20
			return u, member, nil
		})
	f.tokens.EXPECT().Issue(gomock.Any()).Return("jwt", time.Now().Add(time.Hour), nil)

	got, err := f.uc.Accept(context.Background(), AcceptInviteInput{Token: "tok", Username: "newbie", Password: "pass"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got.Token != "jwt" || got.User.ID != 20 || got.Membership.CompanyID != testCompanyID {
		t.Fatalf("unexpected result %+v", got)
	}
}

func TestInviteUseCase_AcceptFailures(t *testing.T) {
	used := openInvite()
	usedAt := time.Now().Add(-time.Hour)
	used.UsedAt = &usedAt
	expired := openInvite()
	expired.ExpiresAt = time.Now().Add(-time.Minute)

	tests := []struct {
		name   string
		invite entities.InviteToken
		want   error
	}{
		{"unknown", entities.InviteToken{}, ErrInviteNotFound},
		{"used", used, ErrInviteUsed},
		{"expired", expired, ErrInviteExpired},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newInviteFixture(t)
			f.invites.EXPECT().GetByToken(gomock.Any(), "tok").Return(tt.invite, nil)

			_, err := f.uc.Accept(context.Background(), AcceptInviteInput{Token: "tok", Username: "newbie", Password: "pass"})
			if !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
		})
	}

	t.Run("short password", func(t *testing.T) {
		f := newInviteFixture(t)
		_, err := f.uc.Accept(context.Background(), AcceptInviteInput{Token: "tok", Username: "newbie", Password: "abc"})
		if !errors.Is(err, ErrPasswordTooShort) {
			t.Fatalf("expected ErrPasswordTooShort, got %v", err)
		}
	})

	for _, name := range []string{"admin", "Mateus", " admin_test "} {
		t.Run("reserved username "+strings.TrimSpace(name), func(t *testing.T) {
			f := newInviteFixture(t)
			_, err := f.uc.Accept(context.Background(), AcceptInviteInput{Token: "tok", Username: name, Password: "pass"})
			if !errors.Is(err, ErrUsernameReserved) {
				t.Fatalf("expected ErrUsernameReserved, got %v", err)
			}
		})
	}

	t.Run("username taken at redeem", func(t *testing.T) {
		f := newInviteFixture(t)
		f.invites.EXPECT().GetByToken(gomock.Any(), "tok").Return(openInvite(), nil)
		f.users.EXPECT().GetByUsername(gomock.Any(), "newbie").Return(entities.User{}, nil)
		f.hasher.EXPECT().Hash("pass").Return("hashed", nil)
		f.invites.EXPECT().Redeem(gomock.Any(), uint(6), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(entities.User{}, entities.CompanyUser{}, interfaces.ErrDuplicateKey)

		_, err := f.uc.Accept(context.Background(), AcceptInviteInput{Token: "tok", Username: "newbie", Password: "pass"})
		if !errors.Is(err, ErrUsernameTaken) {
			t.Fatalf("expected ErrUsernameTaken, got %v", err)
		}
	})

	t.Run("concurrent redeem", func(t *testing.T) {
		f := newInviteFixture(t)
		f.invites.EXPECT().GetByToken(gomock.Any(), "tok").Return(openInvite(), nil)
		f.users.EXPECT().GetByUsername(gomock.Any(), "newbie").Return(entities.User{}, nil)
		f.hasher.EXPECT().Hash("pass").Return("hashed", nil)
		f.invites.EXPECT().Redeem(gomock.Any(), uint(6), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(entities.User{}, entities.CompanyUser{}, nil)

		_, err := f.uc.Accept(context.Background(), AcceptInviteInput{Token: "tok", Username: "newbie", Password: "pass"})
		if !errors.Is(err, ErrInviteUsed) {
			t.Fatalf("expected ErrInviteUsed, got %v", err)
		}
	})
}
