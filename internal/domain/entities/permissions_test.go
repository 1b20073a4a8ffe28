package entities

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// allPermissions enumerates every one of the 32 flag combinations.
func allPermissions() []Permissions {
	out := make([]Permissions, 0, 32)
	for mask := 0; mask < 32; mask++ {
		out = append(out, Permissions{
			CanManageUsers:        mask&1 != 0,
			CanViewAllSpecialties: mask&2 != 0,
			CanViewPrices:         mask&4 != 0,
			CanEditPrices:         mask&8 != 0,
			CanAudit:              mask&16 != 0,
		})
	}
	return out
}

func TestCapPermissions_IsFlagwiseAnd(t *testing.T) {
	for _, job := range allPermissions() {
		for _, company := range allPermissions() {
			got := CapPermissions(job, company)
			assert.Equal(t, job.CanManageUsers && company.CanManageUsers, got.CanManageUsers)
			assert.Equal(t, job.CanViewAllSpecialties && company.CanViewAllSpecialties, got.CanViewAllSpecialties)
			assert.Equal(t, job.CanViewPrices && company.CanViewPrices, got.CanViewPrices)
			assert.Equal(t, job.CanEditPrices && company.CanEditPrices, got.CanEditPrices)
			assert.Equal(t, job.CanAudit && company.CanAudit, got.CanAudit)
		}
	}
}

func TestCapPermissions_CompanyIsCeiling(t *testing.T) {
	assert.Equal(t, DefaultEmployeePermissions, CapPermissions(OwnerPermissions, DefaultEmployeePermissions))
	assert.Equal(t, SupportPermissions, CapPermissions(OwnerPermissions, SupportPermissions))
	assert.Equal(t, Permissions{}, CapPermissions(OwnerPermissions, Permissions{}))

	capped := CapPermissions(OwnerPermissions, DefaultEmployeePermissions)
	assert.Equal(t, capped, CapPermissions(capped, DefaultEmployeePermissions), "capping twice changes nothing")
}

func TestParsePermissions(t *testing.T) {
	t.Run("empty blob uses employee default", func(t *testing.T) {
		p, err := ParsePermissions("  ")
		require.NoError(t, err)
		assert.Equal(t, DefaultEmployeePermissions, p)
	})

	t.Run("missing flags are false", func(t *testing.T) {
		p, err := ParsePermissions(`{"canAudit":true}`)
		require.NoError(t, err)
		assert.Equal(t, Permissions{CanAudit: true}, p)
	})

	t.Run("round trip", func(t *testing.T) {
		p, err := ParsePermissions(OwnerPermissions.Encode())
		require.NoError(t, err)
		assert.Equal(t, OwnerPermissions, p)
	})

	t.Run("unknown flag rejected", func(t *testing.T) {
		_, err := ParsePermissions(`{"canViewPrices":true,"canDeleteCompany":true}`)
		assert.True(t, errors.Is(err, ErrInvalidPermissions))
	})

	t.Run("non boolean rejected", func(t *testing.T) {
		_, err := ParsePermissions(`{"canViewPrices":"yes"}`)
		assert.True(t, errors.Is(err, ErrInvalidPermissions))
	})

	t.Run("not json", func(t *testing.T) {
		_, err := ParsePermissions(`{`)
		assert.True(t, errors.Is(err, ErrInvalidPermissions))
	})
}

func TestRoles(t *testing.T) {
	r, err := ParseRole(" admin ")
	require.NoError(t, err)
	assert.Equal(t, RoleAdmin, r)
	assert.True(t, r.IsManager())
	assert.False(t, RoleSupport.IsManager())

	_, err = ParseRole("janitor")
	assert.True(t, errors.Is(err, ErrInvalidRole))

	assert.Equal(t, OwnerPermissions, TemplateForRole(RoleOwner))
	assert.Equal(t, SupportPermissions, TemplateForRole(RoleSupport))
	assert.Equal(t, DefaultEmployeePermissions, TemplateForRole(RoleUser))
}

func TestIsSupportAdmin(t *testing.T) {
	assert.True(t, IsSupportAdmin("someone", "super_admin"))
	assert.True(t, IsSupportAdmin("Admin", "user"))
	assert.False(t, IsSupportAdmin("painter", "user"))
}

func TestIsReservedUsername(t *testing.T) {
	assert.True(t, IsReservedUsername(" ADMIN_test "))
	assert.True(t, IsReservedUsername("Mateus"))
	assert.False(t, IsReservedUsername("admin2"))
}
