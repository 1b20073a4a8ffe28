package usecase

import (
	"field_estimator/internal/domain/entities"
	mock_interfaces "field_estimator/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

const testCompanyID uint = 10

var (
	ownerPrincipal  = entities.Principal{UserID: 1, CompanyID: testCompanyID, Username: "owner", Role: entities.RoleOwner}
	workerPrincipal = entities.Principal{UserID: 2, CompanyID: testCompanyID, Username: "worker", Role: entities.RoleUser}
)

func ownerMember() entities.CompanyUser {
	return entities.CompanyUser{ID: 1, CompanyID: testCompanyID, UserID: 1, Role: entities.RoleOwner, IsActive: true, Permissions: entities.OwnerPermissions}
}

func workerMember(perms entities.Permissions) entities.CompanyUser {
	return entities.CompanyUser{ID: 2, CompanyID: testCompanyID, UserID: 2, Role: entities.RoleUser, IsActive: true, Permissions: perms}
}

func expectMember(members *mock_interfaces.MockICompanyUserRepository, m entities.CompanyUser) {
	members.EXPECT().Get(gomock.Any(), m.CompanyID, m.UserID).Return(m, nil).AnyTimes()
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func decRef(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

func uintPtr(v uint) *uint { return &v }
