package handlers

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"field_estimator/internal/adapter/http/handlers/mocks"
	"field_estimator/internal/domain/entities"
	"field_estimator/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestAuthHandler_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIAuthUseCase(ctrl)
	h := NewAuthHandler(uc)
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/auth/login", h.Login)

	t.Run("missing password", func(t *testing.T) {
		w := do(r, http.MethodPost, "/api/auth/login", `{"username":"ann"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("bad credentials", func(t *testing.T) {
		uc.EXPECT().Login(gomock.Any(), "ann", "nope").Return(usecase.LoginResult{}, usecase.ErrInvalidCredentials)
		w := do(r, http.MethodPost, "/api/auth/login", `{"username":"ann","password":"nope"}`)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		uc.EXPECT().Login(gomock.Any(), "ann", "secret").Return(usecase.LoginResult{
			Token:      "jwt",
			ExpiresAt:  time.Now().Add(time.Hour),
			User:       entities.User{ID: 10, Username: "ann"},
			Membership: entities.CompanyUser{UserID: 10, CompanyID: 1, Role: entities.RoleOwner, IsActive: true},
		}, nil)
		w := do(r, http.MethodPost, "/api/auth/login", `{"username":"ann","password":"secret"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		body := decodeBody(t, w)
		if body["token"] != "jwt" || body["membership"].(map[string]any)["role"] != "OWNER" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestAuthHandler_Me(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIAuthUseCase(ctrl)
	h := NewAuthHandler(uc)

	t.Run("without principal", func(t *testing.T) {
		gin.SetMode(gin.TestMode)
		r := gin.New()
		r.GET("/api/auth/me", h.Me)
		if w := do(r, http.MethodGet, "/api/auth/me", ""); w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		r := newRouter(t)
		r.GET("/api/auth/me", h.Me)
		uc.EXPECT().Me(gomock.Any(), testPrincipal).Return(entities.User{ID: 10, Username: "owner"}, entities.CompanyUser{UserID: 10, Role: entities.RoleOwner}, nil)
		w := do(r, http.MethodGet, "/api/auth/me", "")
		if w.Code != http.StatusOK || decodeBody(t, w)["user"].(map[string]any)["username"] != "owner" {
			t.Fatalf("unexpected response %d: %s", w.Code, w.Body.String())
		}
	})
}

func TestMemberHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIMemberUseCase(ctrl)
	h := NewMemberHandler(uc)
	r := newRouter(t)
	r.GET("/api/admin/users", h.ListMembers)
	r.PATCH("/api/admin/users/:userId/permissions", h.UpdatePermissions)
	r.PUT("/api/employees/:userId/active", h.SetActive)

	t.Run("list forbidden", func(t *testing.T) {
		uc.EXPECT().List(gomock.Any(), testPrincipal).Return(nil, usecase.ErrForbidden)
		if w := do(r, http.MethodGet, "/api/admin/users", ""); w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("update permissions", func(t *testing.T) {
		perms := entities.Permissions{CanViewPrices: true, CanEditPrices: true}
		uc.EXPECT().UpdatePermissions(gomock.Any(), testPrincipal, uint(11), perms).
			Return(entities.CompanyUser{UserID: 11, Role: entities.RoleUser, Permissions: perms}, nil)
		w := do(r, http.MethodPatch, "/api/admin/users/11/permissions", `{"canViewPrices":true,"canEditPrices":true}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("own permissions", func(t *testing.T) {
		uc.EXPECT().UpdatePermissions(gomock.Any(), testPrincipal, testPrincipal.UserID, entities.OwnerPermissions).
			Return(entities.CompanyUser{}, usecase.ErrSelfPermissions)
		body := `{"canManageUsers":true,"canViewAllSpecialties":true,"canViewPrices":true,"canEditPrices":true,"canAudit":true}`
		w := do(r, http.MethodPatch, "/api/admin/users/10/permissions", body)
		if w.Code != http.StatusConflict || decodeBody(t, w)["code"] != "SELF_PERMISSIONS" {
			t.Fatalf("expected 409 SELF_PERMISSIONS, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("active flag required", func(t *testing.T) {
		if w := do(r, http.MethodPut, "/api/employees/11/active", `{}`); w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("owner cannot be deactivated", func(t *testing.T) {
		uc.EXPECT().SetActive(gomock.Any(), testPrincipal, uint(11), false).Return(entities.CompanyUser{}, usecase.ErrOwnerImmutable)
		if w := do(r, http.MethodPut, "/api/employees/11/active", `{"isActive":false}`); w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}

func TestInviteHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIInviteUseCase(ctrl)
	h := NewInviteHandler(uc)
	r := newRouter(t)
	r.POST("/api/invite/create", h.CreateInvite)
	r.GET("/api/invite/list", h.ListInvites)
	r.POST("/api/invite/accept", h.AcceptInvite)

	t.Run("create", func(t *testing.T) {
		uc.EXPECT().Create(gomock.Any(), testPrincipal, usecase.InviteInput{Role: entities.RoleUser, ExpiresDays: 3, Email: "new@test.com"}).
			Return(usecase.InviteResult{Invite: entities.InviteToken{ID: 1, Token: "tok", Role: entities.RoleUser}, URL: "http://app/invite/tok", EmailSent: true}, nil)
		w := do(r, http.MethodPost, "/api/invite/create", `{"role":"user","expiresDays":3,"email":"new@test.com"}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d body=%s", w.Code, w.Body.String())
		}
		body := decodeBody(t, w)
		if body["url"] != "http://app/invite/tok" || body["emailSent"] != true {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("create rejects unknown role", func(t *testing.T) {
		if w := do(r, http.MethodPost, "/api/invite/create", `{"role":"root"}`); w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("list", func(t *testing.T) {
		uc.EXPECT().List(gomock.Any(), testPrincipal).Return([]entities.InviteToken{{ID: 1}, {ID: 2}}, nil)
		w := do(r, http.MethodGet, "/api/invite/list", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("accept expired", func(t *testing.T) {
		uc.EXPECT().Accept(gomock.Any(), usecase.AcceptInviteInput{Token: "tok", Username: "bob", Password: "pw12"}).
			Return(usecase.LoginResult{}, usecase.ErrInviteExpired)
		w := do(r, http.MethodPost, "/api/invite/accept", `{"token":"tok","username":"bob","password":"pw12"}`)
		if w.Code != http.StatusGone {
			t.Fatalf("expected 410, got %d", w.Code)
		}
	})

	t.Run("accept reserved username", func(t *testing.T) {
		uc.EXPECT().Accept(gomock.Any(), usecase.AcceptInviteInput{Token: "tok", Username: "admin", Password: "pw12"}).
			Return(usecase.LoginResult{}, usecase.ErrUsernameReserved)
		w := do(r, http.MethodPost, "/api/invite/accept", `{"token":"tok","username":"admin","password":"pw12"}`)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
		if body := decodeBody(t, w); body["code"] != "USERNAME_RESERVED" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestMapInviteError(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{usecase.ErrInviteNotFound, http.StatusNotFound},
		{usecase.ErrInviteUsed, http.StatusGone},
		{usecase.ErrUsernameTaken, http.StatusConflict},
		{usecase.ErrUsernameReserved, http.StatusConflict},
		{usecase.ErrPasswordTooShort, http.StatusBadRequest},
		{usecase.ErrInvalidInvite, http.StatusBadRequest},
		{errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		if got := mapInviteError(tc.err); got.HTTPStatus != tc.code {
			t.Fatalf("for err %v expected %d got %d", tc.err, tc.code, got.HTTPStatus)
		}
	}
}
