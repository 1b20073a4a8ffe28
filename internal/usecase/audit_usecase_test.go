package usecase

import (
	"context"
	"errors"
	"testing"

	"field_estimator/internal/domain/entities"
	mock_interfaces "field_estimator/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestAuditUseCase_List(t *testing.T) {
	tests := []struct {
		name  string
		limit int
		want  int32
	}{
		{"default", 0, 50},
		{"explicit", 20, 20},
		{"clamped", 10000, 500},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := mock_interfaces.NewMockIAuditLogRepository(ctrl)
			members := mock_interfaces.NewMockICompanyUserRepository(ctrl)
			expectMember(members, ownerMember())
			repo.EXPECT().ListByCompany(gomock.Any(), testCompanyID, tt.want).Return([]entities.AuditLogEntry{{ID: "a"}}, nil)

			got, err := NewAuditUseCase(repo, members).List(context.Background(), ownerPrincipal, tt.limit)
			if err != nil || len(got) != 1 {
				t.Fatalf("unexpected result %v %v", got, err)
			}
		})
	}
}

func TestAuditUseCase_ListNeedsCanAudit(t *testing.T) {
	ctrl := gomock.NewController(t)
	members := mock_interfaces.NewMockICompanyUserRepository(ctrl)
	expectMember(members, workerMember(entities.DefaultEmployeePermissions))

	if _, err := NewAuditUseCase(nil, members).List(context.Background(), workerPrincipal, 10); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestAuditUseCase_SupportAdminWithoutMembership(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock_interfaces.NewMockIAuditLogRepository(ctrl)
	members := mock_interfaces.NewMockICompanyUserRepository(ctrl)
	p := entities.Principal{UserID: 50, CompanyID: testCompanyID, Username: "helpdesk", Role: entities.RoleSupport, GlobalRole: "support_admin"}
	members.EXPECT().Get(gomock.Any(), testCompanyID, uint(50)).Return(entities.CompanyUser{}, nil)
	repo.EXPECT().ListByCompany(gomock.Any(), testCompanyID, int32(50)).Return(nil, nil)

	if _, err := NewAuditUseCase(repo, members).List(context.Background(), p, 0); err != nil {
		t.Fatalf("support admins audit without a membership: %v", err)
	}
}
